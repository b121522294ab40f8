package scanner

// fakeLexer is an in-memory Lexer over a fixed byte slice, standing in for
// the tree-sitter host during tests: there is no real TSLexer available
// outside a compiled grammar, so every sub-scanner test drives this
// instead, asserting on the token text recovered between two markEnd
// calls rather than on any tree-sitter-specific state.
type fakeLexer struct {
	input []byte
	pos   int

	tokenStart int
	markedEnd  int
}

func newFakeLexer(input string) *fakeLexer {
	return &fakeLexer{input: []byte(input)}
}

func (l *fakeLexer) Lookahead() rune {
	if l.pos >= len(l.input) {
		return EOF
	}
	return rune(l.input[l.pos])
}

func (l *fakeLexer) Advance(skip bool) {
	if l.pos < len(l.input) {
		l.pos++
	}
	if skip {
		l.tokenStart = l.pos
		l.markedEnd = l.pos
	}
}

func (l *fakeLexer) MarkEnd() {
	l.markedEnd = l.pos
}

func (l *fakeLexer) EOF() bool {
	return l.pos >= len(l.input)
}

// token returns the bytes from the current token's start to its last
// MarkEnd call, i.e. what the host would actually capture as token text.
func (l *fakeLexer) token() string {
	return string(l.input[l.tokenStart:l.markedEnd])
}

// reset rewinds the lexer to the start of a fresh token at the current
// cursor position, the way the host does between Scan calls.
func (l *fakeLexer) reset() {
	l.tokenStart = l.pos
	l.markedEnd = l.pos
}

// remaining returns everything not yet advanced past, for assertions about
// where a sub-scanner left the cursor.
func (l *fakeLexer) remaining() string {
	return string(l.input[l.pos:])
}

// rewind emulates what the real tree-sitter host does between Scan calls:
// on success the next lex position is the last mark_end, not wherever
// Advance left the cursor mid-probe; on failure the host discards the
// attempt entirely and the position reverts to wherever it was when the
// call began. scanner_test.go's multi-call end-to-end cases go through
// this via callScan rather than touching pos directly.
func (l *fakeLexer) rewind(entryPos int, accepted bool) {
	if accepted {
		l.pos = l.markedEnd
	} else {
		l.pos = entryPos
		l.markedEnd = entryPos
	}
	l.tokenStart = l.pos
}

// callScan runs fn (a dispatch or sub-scanner call) with correct
// host-rewind semantics applied afterward, returning fn's result plus the
// text of the token actually produced (empty on failure).
func callScan(l *fakeLexer, fn func() (Symbol, bool)) (sym Symbol, ok bool, text string) {
	entryPos := l.pos
	sym, ok = fn()
	if ok {
		text = string(l.input[entryPos:l.markedEnd])
	}
	l.rewind(entryPos, ok)
	return sym, ok, text
}

