package scanner

// verbatimStart implements spec.md §4.11. Called immediately after the
// grammar has consumed the keyword "verbatim". Reads up to the first "%}",
// capturing everything in between as the verbatim suffix: trailing
// horizontal whitespace is stripped, leading and internal whitespace is
// kept, and an embedded newline rejects the scan outright (the suffix is a
// single-line tag argument). The trimmed suffix is bounded to
// maxVerbatimSuffix bytes and stored in Scanner State; VERBATIM_START is
// emitted covering the suffix text (not the closing "%}", which the
// grammar matches itself).
//
// There is no original_source analogue; built from the spec's prose.
func verbatimStart(state *State, lx Lexer) (Symbol, bool) {
	var suffix []byte

	for {
		c := lx.Lookahead()
		if c == EOF {
			state.LastError = newScanError("verbatim_start", "reached EOF before closing %%}")
			return 0, false
		}
		if c == '\n' {
			state.LastError = newScanError("verbatim_start", "embedded newline in verbatim suffix")
			return 0, false
		}
		if c == '%' {
			lx.Advance(false)
			if lx.Lookahead() == '}' {
				break
			}
			if len(suffix) < maxVerbatimSuffix {
				suffix = append(suffix, '%')
			}
			lx.MarkEnd()
			continue
		}

		if len(suffix) < maxVerbatimSuffix {
			suffix = append(suffix, byte(c))
		}
		lx.Advance(false)
		lx.MarkEnd()
	}

	suffix = trimTrailingHorizontalWhitespace(suffix)
	state.VerbatimSuffix = suffix
	return VerbatimStart, true
}

func trimTrailingHorizontalWhitespace(b []byte) []byte {
	end := len(b)
	for end > 0 {
		c := b[end-1]
		if c == ' ' || c == '\t' || c == '\r' {
			end--
			continue
		}
		break
	}
	return b[:end]
}

// verbatimContent implements spec.md §4.12. Called inside a verbatim
// block, it consumes input verbatim (no markup recognized) searching for
// "{%" ws "endverbatim" <suffix> ws "%}" with the suffix exact-byte
// matched against Scanner State. On match, VERBATIM_BLOCK_CONTENT covers
// everything from the start of the call through the closing "%}"
// inclusive, and the stored verbatim suffix is cleared. EOF before a
// match is a scan failure.
//
// There is no original_source analogue; built from the spec's prose.
func verbatimContent(state *State, lx Lexer) (Symbol, bool) {
	for {
		c := lx.Lookahead()
		if c == EOF {
			state.LastError = newScanError("verbatim_content", "reached EOF before matching {%% endverbatim%s %%}", string(state.VerbatimSuffix))
			return 0, false
		}

		if c == '{' {
			if matchVerbatimCloser(lx, state.VerbatimSuffix) {
				lx.MarkEnd()
				state.VerbatimSuffix = nil
				return VerbatimBlockContent, true
			}
			// The failed probe already advanced past '{' and possibly
			// more; re-evaluate whatever it stopped on as a fresh
			// candidate '{' instead of blindly advancing past it.
			continue
		}

		lx.Advance(false)
	}
}

// matchVerbatimCloser probes whether the lexer sits at
// "{%" ws "endverbatim" <suffix> ws "%}", advancing past the entire closer
// on success and leaving the cursor wherever the probe gave up on failure
// (the caller never calls MarkEnd mid-probe, so a failed probe's advances
// are folded into the eventual accepted content by the next MarkEnd).
func matchVerbatimCloser(lx Lexer, suffix []byte) bool {
	if lx.Lookahead() != '{' {
		return false
	}
	lx.Advance(false)
	if lx.Lookahead() != '%' {
		return false
	}
	lx.Advance(false)

	for isWhitespace(lx.Lookahead()) {
		lx.Advance(false)
	}

	const keyword = "endverbatim"
	for i := 0; i < len(keyword); i++ {
		if lx.Lookahead() != rune(keyword[i]) {
			return false
		}
		lx.Advance(false)
	}

	if len(suffix) > 0 {
		for isWhitespace(lx.Lookahead()) {
			lx.Advance(false)
		}
	}

	for _, want := range suffix {
		if lx.Lookahead() != rune(want) {
			return false
		}
		lx.Advance(false)
	}

	for isWhitespace(lx.Lookahead()) {
		lx.Advance(false)
	}

	if lx.Lookahead() != '%' {
		return false
	}
	lx.Advance(false)
	if lx.Lookahead() != '}' {
		return false
	}
	lx.Advance(false)

	return true
}
