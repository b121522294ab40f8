package scanner

// selfClosingDelimiter implements spec.md §4.9. Called with lookahead '/';
// requires the next character to be '>'. On match, pops one frame if the
// current context is foreign (mirroring <tag/> closure in SVG/MathML).
func selfClosingDelimiter(state *State, lx Lexer) (Symbol, bool) {
	lx.Advance(false)
	if lx.Lookahead() != '>' {
		return 0, false
	}
	lx.Advance(false)
	lx.MarkEnd()

	if state.InForeignContent() {
		state.Pop()
	}
	return SelfClosingTagDelimiter, true
}
