package scanner

// filterColon implements spec.md §4.14. Emitted only when FILTER_COLON is
// offered: on lookahead ':', consumes it and emits only if the character
// following is one of '"', '\'', a digit, '+', '-', '.', a letter, or '_'.
// This distinguishes the Django filter argument syntax |default:"x" from
// other uses of a bare colon.
func filterColon(lx Lexer, valid ValidSymbols) (Symbol, bool) {
	if !valid.Offered(FilterColon) {
		return 0, false
	}
	if lx.Lookahead() != ':' {
		return 0, false
	}

	lx.Advance(false)
	next := lx.Lookahead()
	if !isFilterArgStart(next) {
		return 0, false
	}

	lx.MarkEnd()
	return FilterColon, true
}

func isFilterArgStart(r rune) bool {
	switch {
	case r == '"' || r == '\'':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '+' || r == '-' || r == '.':
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r == '_':
		return true
	}
	return false
}
