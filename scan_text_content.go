package scanner

// scanTextUntilDelimiter is the shared walk behind raw_text and
// rcdata_text (spec.md §4.5): accumulate characters until an
// ASCII-case-insensitive match of endDelimiter is found (without consuming
// it) or a Django delimiter ({{, {%, {#) interrupts the run (stopping
// before the '{' so the grammar can parse it inline). A bare '{' not
// followed by one of those is ordinary content.
//
// Grounded on original_source/src/scanner.c's scan_raw_text/scan_rcdata_text
// delimiter_index walk: mark_end only advances past characters once
// they're confirmed not to be the start of (or mid-way through) the end
// delimiter, so a failed partial match is folded back into accepted
// content before the current character is re-evaluated from scratch.
func scanTextUntilDelimiter(lx Lexer, endDelimiter string) bool {
	delimIndex := 0
	accepted := false

	for {
		c := lx.Lookahead()
		if c == EOF {
			break
		}

		if upperASCII(c) == rune(endDelimiter[delimIndex]) {
			delimIndex++
			if delimIndex == len(endDelimiter) {
				break
			}
			lx.Advance(false)
			continue
		}

		if delimIndex > 0 {
			// The partial end-delimiter match didn't pan out: commit the
			// characters tentatively consumed for it, then re-evaluate
			// the current (not yet advanced-past) character fresh.
			delimIndex = 0
			lx.MarkEnd()
			accepted = true
			continue
		}

		if c == '{' {
			lx.Advance(false)
			next := lx.Lookahead()
			if next == '{' || next == '%' || next == '#' {
				break
			}
			lx.MarkEnd()
			accepted = true
			continue
		}

		lx.Advance(false)
		lx.MarkEnd()
		accepted = true
	}

	return accepted
}

func upperASCII(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
