package scanner

// plaintextText implements spec.md §4.6: valid only when the stack top is
// PLAINTEXT. Consumes all remaining bytes to EOF, pops the PLAINTEXT
// frame, and emits PLAINTEXT_TEXT.
func plaintextText(state *State, lx Lexer) (Symbol, bool) {
	top, ok := state.Top()
	if !ok || top.Kind != TagPlaintext {
		return 0, false
	}

	for lx.Lookahead() != EOF {
		lx.Advance(false)
		lx.MarkEnd()
	}

	state.Pop()
	return PlaintextText, true
}
