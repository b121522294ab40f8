package scanner

// rawText implements spec.md §4.5 for raw-text elements: valid only when
// the stack top is SCRIPT or STYLE.
func rawText(state *State, lx Lexer) (Symbol, bool) {
	top, ok := state.Top()
	if !ok {
		return 0, false
	}

	var endDelimiter string
	switch top.Kind {
	case TagScript:
		endDelimiter = "</SCRIPT"
	case TagStyle:
		endDelimiter = "</STYLE"
	default:
		return 0, false
	}

	if !scanTextUntilDelimiter(lx, endDelimiter) {
		return 0, false
	}
	return RawText, true
}
