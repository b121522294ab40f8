// Command htmldjangoscan feeds a file through the scanner package and
// prints the token stream it produces, for manual inspection of how a
// given HTML+Django template would be externally scanned.
//
// It is a standalone driver, not a grammar: there is no real tree-sitter
// parser behind it, so the control flow below hand-rolls just enough of
// the decisions a host grammar would make (when to offer start-tag vs.
// end-tag symbols, when to treat {% ... %} as a recognized construct
// versus ordinary text) to exercise the scanner end to end on real input.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	scanner "github.com/dtlscan/htmldjango"
)

// byteLexer adapts an in-memory byte slice to scanner.Lexer.
type byteLexer struct {
	data       []byte
	pos        int
	tokenStart int
	markedEnd  int
}

func newByteLexer(data []byte) *byteLexer { return &byteLexer{data: data} }

func (l *byteLexer) Lookahead() rune {
	if l.pos >= len(l.data) {
		return scanner.EOF
	}
	return rune(l.data[l.pos])
}

func (l *byteLexer) Advance(skip bool) {
	if l.pos < len(l.data) {
		l.pos++
	}
	if skip {
		l.tokenStart = l.pos
		l.markedEnd = l.pos
	}
}

func (l *byteLexer) MarkEnd() { l.markedEnd = l.pos }

func (l *byteLexer) EOF() bool { return l.pos >= len(l.data) }

// runScan calls fn (a Scan invocation) and applies the host-rewind rule:
// on success the lexer's position becomes the last MarkEnd, on failure it
// reverts to where the call started.
func (l *byteLexer) runScan(fn func() (scanner.Symbol, bool)) (scanner.Symbol, bool, string) {
	entry := l.pos
	sym, ok := fn()
	var text string
	if ok {
		text = string(l.data[entry:l.markedEnd])
		l.pos = l.markedEnd
	} else {
		l.pos = entry
		l.markedEnd = entry
	}
	l.tokenStart = l.pos
	return sym, ok, text
}

func (l *byteLexer) hasPrefix(s string) bool {
	return l.pos+len(s) <= len(l.data) && string(l.data[l.pos:l.pos+len(s)]) == s
}

func (l *byteLexer) consumeLiteral(s string) {
	l.pos += len(s)
	l.tokenStart = l.pos
	l.markedEnd = l.pos
}

// skipToClosingPercentBrace advances past the rest of a `{% ... %}`
// construct once the driver has offered it to generic-tag validation,
// whatever the outcome (a built-in tag the scanner rejected, or a generic
// tag validated as BLOCK or SIMPLE), treating it as ordinary grammar text.
func (l *byteLexer) skipToClosingPercentBrace() {
	for !l.EOF() {
		if l.hasPrefix("%}") {
			l.consumeLiteral("%}")
			return
		}
		l.Advance(true)
	}
}

func startTagSymbols() scanner.ValidSymbols {
	var v scanner.ValidSymbols
	v[scanner.HTMLStartTagName] = true
	v[scanner.VoidStartTagName] = true
	v[scanner.ForeignStartTagName] = true
	v[scanner.ScriptStartTagName] = true
	v[scanner.StyleStartTagName] = true
	v[scanner.TitleStartTagName] = true
	v[scanner.TextareaStartTagName] = true
	v[scanner.PlaintextStartTagName] = true
	return v
}

func endTagSymbols() scanner.ValidSymbols {
	var v scanner.ValidSymbols
	v[scanner.EndTagName] = true
	v[scanner.ErroneousEndTagName] = true
	return v
}

// single builds a ValidSymbols vector offering exactly one symbol.
func single(s scanner.Symbol) scanner.ValidSymbols {
	return validSymbolsFor(s)
}

// validSymbolsFor builds a ValidSymbols vector offering exactly the given
// symbols, a small convenience for the driver's multi-symbol call sites.
func validSymbolsFor(symbols ...scanner.Symbol) scanner.ValidSymbols {
	var v scanner.ValidSymbols
	for _, sym := range symbols {
		v[sym] = true
	}
	return v
}

func readIdentifier(data []byte, pos int) string {
	start := pos
	for pos < len(data) {
		c := data[pos]
		isIdent := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' ||
			(pos > start && c >= '0' && c <= '9')
		if !isIdent {
			break
		}
		pos++
	}
	return string(data[start:pos])
}

func main() {
	path := flag.String("file", "", "path to an HTML+Django template (default: read stdin)")
	flag.Parse()

	var data []byte
	var err error
	if *path == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(*path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "htmldjangoscan: %v\n", err)
		os.Exit(1)
	}

	s := scanner.Create()
	defer s.Destroy()
	lx := newByteLexer(data)

	for !lx.EOF() {
		if advanceOneStep(s, lx) {
			continue
		}
		lx.Advance(true)
	}

	if scanErr := s.LastError(); scanErr != nil {
		fmt.Fprintf(os.Stderr, "htmldjangoscan: %v\n", scanErr)
	}
}

// advanceOneStep drives one grammar-level decision and reports whether it
// produced (and printed) a scanner token, leaving the lexer positioned
// past whatever it consumed either way.
func advanceOneStep(s *scanner.Scanner, lx *byteLexer) bool {
	switch {
	case lx.Lookahead() == '<':
		return scanTagContext(s, lx)
	case lx.hasPrefix("{%"):
		return scanDjangoTag(s, lx)
	default:
		return scanTextContent(s, lx)
	}
}

func scanTagContext(s *scanner.Scanner, lx *byteLexer) bool {
	if lx.pos+1 < len(lx.data) && lx.data[lx.pos+1] == '/' {
		lx.consumeLiteral("</")
		sym, ok, text := lx.runScan(func() (scanner.Symbol, bool) { return s.Scan(lx, endTagSymbols()) })
		if ok {
			fmt.Printf("%s(%q)\n", sym, text)
		}
		if lx.hasPrefix(">") {
			lx.consumeLiteral(">")
		}
		return ok
	}

	lx.consumeLiteral("<")
	sym, ok, text := lx.runScan(func() (scanner.Symbol, bool) { return s.Scan(lx, startTagSymbols()) })
	if !ok {
		return false
	}
	fmt.Printf("%s(%q)\n", sym, text)
	if lx.hasPrefix("/>") {
		sym, ok, _ = lx.runScan(func() (scanner.Symbol, bool) { return s.Scan(lx, single(scanner.SelfClosingTagDelimiter)) })
		if ok {
			fmt.Printf("%s\n", sym)
		}
	} else if lx.hasPrefix(">") {
		lx.consumeLiteral(">")
	}
	return true
}

func scanDjangoTag(s *scanner.Scanner, lx *byteLexer) bool {
	keyword := readIdentifier(lx.data, lx.pos+2)

	switch keyword {
	case "comment":
		lx.consumeLiteral("{% comment %}")
		_, ok, text := lx.runScan(func() (scanner.Symbol, bool) { return s.Scan(lx, single(scanner.DjangoCommentContent)) })
		if ok {
			fmt.Printf("DJANGO_COMMENT_CONTENT(%q)\n", text)
		}
		if lx.hasPrefix("{% endcomment %}") {
			lx.consumeLiteral("{% endcomment %}")
		}
		return ok

	case "verbatim":
		lx.consumeLiteral("{% verbatim")
		for lx.Lookahead() == ' ' {
			lx.Advance(true)
		}
		sym, ok, _ := lx.runScan(func() (scanner.Symbol, bool) { return s.Scan(lx, single(scanner.VerbatimStart)) })
		if !ok {
			return false
		}
		fmt.Printf("%s\n", sym)
		if lx.hasPrefix("%}") {
			lx.consumeLiteral("%}")
		}
		sym, ok, text := lx.runScan(func() (scanner.Symbol, bool) { return s.Scan(lx, single(scanner.VerbatimBlockContent)) })
		if ok {
			fmt.Printf("%s(%q)\n", sym, text)
		}
		return ok
	}

	lx.consumeLiteral("{%")
	for lx.Lookahead() == ' ' {
		lx.Advance(true)
	}
	sym, ok, _ := lx.runScan(func() (scanner.Symbol, bool) {
		return s.Scan(lx, validSymbolsFor(scanner.ValidateGenericBlock, scanner.ValidateGenericSimple))
	})
	if ok {
		fmt.Printf("%s\n", sym)
	}
	lx.skipToClosingPercentBrace()
	return ok
}

func scanTextContent(s *scanner.Scanner, lx *byteLexer) bool {
	switch s.TopKind() {
	case scanner.TagScript, scanner.TagStyle:
		sym, ok, text := lx.runScan(func() (scanner.Symbol, bool) { return s.Scan(lx, single(scanner.RawText)) })
		if ok {
			fmt.Printf("%s(%q)\n", sym, text)
		}
		return ok
	case scanner.TagTitle, scanner.TagTextarea:
		sym, ok, text := lx.runScan(func() (scanner.Symbol, bool) { return s.Scan(lx, single(scanner.RCDataText)) })
		if ok {
			fmt.Printf("%s(%q)\n", sym, text)
		}
		return ok
	case scanner.TagPlaintext:
		sym, ok, text := lx.runScan(func() (scanner.Symbol, bool) { return s.Scan(lx, single(scanner.PlaintextText)) })
		if ok {
			fmt.Printf("%s(%q)\n", sym, text)
		}
		return ok
	}
	return false
}
