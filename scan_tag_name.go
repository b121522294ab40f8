package scanner

// scanTagName reads characters while they satisfy alnum | '-' | ':',
// returning the accumulated name. In non-foreign contexts bytes are
// ASCII-uppercased as they're read; in foreign contexts case is preserved
// (spec.md §4.2). Only ASCII letters are folded — non-ASCII tag names are
// out of scope (spec.md §1 Non-goals) and pass through as-is.
func scanTagName(lx Lexer, uppercase bool) []byte {
	var name []byte
	for isTagNameRune(lx.Lookahead()) {
		c := lx.Lookahead()
		if uppercase && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		name = append(name, byte(c))
		lx.Advance(false)
	}
	return name
}

func isTagNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-', r == ':':
		return true
	default:
		return false
	}
}
