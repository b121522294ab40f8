// Package scanner implements the external scanner of a tree-sitter grammar
// for HTML extended with Django Template Language constructs.
//
// The host parser's declarative grammar tables recognize well-delimited
// syntax (attributes, {{ ... }} expressions, numeric literals) on their own
// and only call into this package when they need context a regular-grammar
// table can't express: an open-element stack, HTML content-model closure
// rules, raw-text/RCDATA lexical modes, a dynamically captured verbatim
// suffix, or unbounded lookahead to validate a user-defined block tag.
//
// Entry points mirror the five functions a tree-sitter external scanner
// exposes to its host: Create, (*Scanner).Destroy, (*Scanner).Scan,
// (*Scanner).Serialize and (*Scanner).Deserialize. The host supplies a Lexer
// implementation giving the scanner a single character of lookahead, a way
// to advance through input, and a way to mark where the current token ends.
package scanner
