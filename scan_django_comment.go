package scanner

// djangoCommentContent implements spec.md §4.10. It is called inside
// {% comment %} ... {% endcomment %} and scans forward for "{%" possibly
// followed by whitespace and the literal keyword "endcomment". The token
// ends before the opening '{' of "{% endcomment %}" so the grammar can
// match the closer itself. Whitespace-trim markers ({%- -%}) are not
// recognized. EOF before a closer is found is a scan failure.
//
// There is no original_source analogue for this rule; it is built directly
// from the spec's prose description of the Django comment block.
func djangoCommentContent(state *State, lx Lexer) (Symbol, bool) {
	for {
		c := lx.Lookahead()
		if c == EOF {
			state.LastError = newScanError("django_comment_content", "reached EOF before {%% endcomment %%}")
			return 0, false
		}

		if c == '{' {
			if matchCommentCloser(lx) {
				return DjangoCommentContent, true
			}
			// The failed probe already advanced past '{' and possibly
			// more; commit those bytes as accepted content and
			// re-evaluate whatever it stopped on as a fresh candidate
			// '{' instead of blindly advancing past it.
			lx.MarkEnd()
			continue
		}

		lx.Advance(false)
		lx.MarkEnd()
	}
}

// matchCommentCloser probes, without committing, whether the lexer is
// sitting at "{%" ws "endcomment". It advances past candidate characters
// freely and relies on the caller folding a failed probe's advances back
// into accepted content (rather than re-consuming or skipping past them),
// so a failed probe is simply abandoned by returning false — the caller
// picks up exactly where the probe stopped.
func matchCommentCloser(lx Lexer) bool {
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

	const keyword = "endcomment"
	for i := 0; i < len(keyword); i++ {
		if lx.Lookahead() != rune(keyword[i]) {
			return false
		}
		lx.Advance(false)
	}

	return true
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}
