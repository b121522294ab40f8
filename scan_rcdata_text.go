package scanner

// rcdataText implements spec.md §4.5 for RCDATA elements: valid only when
// the stack top is TITLE or TEXTAREA.
func rcdataText(state *State, lx Lexer) (Symbol, bool) {
	top, ok := state.Top()
	if !ok {
		return 0, false
	}

	var endDelimiter string
	switch top.Kind {
	case TagTitle:
		endDelimiter = "</TITLE"
	case TagTextarea:
		endDelimiter = "</TEXTAREA"
	default:
		return 0, false
	}

	if !scanTextUntilDelimiter(lx, endDelimiter) {
		return 0, false
	}
	return RCDataText, true
}
