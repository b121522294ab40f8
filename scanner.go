package scanner

// Scanner is the external-scanner handle the host parser creates once per
// parse and threads through every Scan/Serialize/Deserialize call.
type Scanner struct {
	state *State
}

// Create implements spec.md §6's create() entry point: an opaque handle
// with an empty stack and empty verbatim suffix.
func Create() *Scanner {
	return &Scanner{state: NewState()}
}

// Destroy implements spec.md §6's destroy() entry point. The Go garbage
// collector reclaims the State; Destroy exists so the type mirrors the
// five-entry-point shape the host expects and so a future caller has a
// single place to add explicit teardown.
func (s *Scanner) Destroy() {
	s.state = nil
}

// Serialize implements spec.md §6's serialize() entry point and §4.3's
// wire format.
func (s *Scanner) Serialize(buf []byte) int {
	return Serialize(s.state, buf)
}

// Deserialize implements spec.md §6's deserialize() entry point. A zero-
// length buffer restores the empty state.
func (s *Scanner) Deserialize(buf []byte) {
	Deserialize(s.state, buf)
}

// TopKind reports the TagKind of the innermost open element, or TagHTML if
// the stack is empty. It exists for callers (the cmd/htmldjangoscan driver)
// that need to pick a text-content symbol to offer without reaching into
// the Scanner's private State directly.
func (s *Scanner) TopKind() TagKind {
	top, ok := s.state.Top()
	if !ok {
		return TagHTML
	}
	return top.Kind
}

// LastError returns the most recent documented ScanError a sub-scanner or
// Deserialize recorded, or nil if none has occurred since the last
// successful Deserialize. It exists for diagnostics only — it never
// changes what Scan/Serialize/Deserialize return to the host.
func (s *Scanner) LastError() *ScanError {
	return s.state.LastError
}

// Scan implements spec.md §6's scan() entry point, running the §4.15
// dispatcher priority chain. It returns true and leaves the emitted
// symbol retrievable via the returned Symbol when a sub-scanner produces a
// token; false tells the host to try another grammar rule or report a
// parse error.
func (s *Scanner) Scan(lx Lexer, valid ValidSymbols) (Symbol, bool) {
	return dispatch(s.state, lx, valid)
}

// dispatch implements spec.md §4.15. Rules are evaluated in order; the
// first whose guard holds selects the sub-scanner, and its result —
// success or failure — is returned directly without falling through to
// later rules.
func dispatch(state *State, lx Lexer, valid ValidSymbols) (Symbol, bool) {
	if valid.Offered(DjangoCommentContent) {
		return djangoCommentContent(state, lx)
	}

	if valid.Offered(VerbatimStart) {
		return verbatimStart(state, lx)
	}

	if valid.Offered(VerbatimBlockContent) {
		return verbatimContent(state, lx)
	}

	if valid.Offered(ValidateGenericBlock) || valid.Offered(ValidateGenericSimple) {
		return validateGenericTag(lx, valid)
	}

	if valid.Offered(FilterColon) && lx.Lookahead() == ':' {
		return filterColon(lx, valid)
	}

	competingTagSymbols := valid.anyStartTag() || valid.anyEndTag()

	if valid.Offered(RawText) && !competingTagSymbols {
		return rawText(state, lx)
	}

	if valid.Offered(RCDataText) && !competingTagSymbols {
		return rcdataText(state, lx)
	}

	if valid.Offered(PlaintextText) {
		return plaintextText(state, lx)
	}

	for isWhitespace(lx.Lookahead()) {
		lx.Advance(true)
	}

	c := lx.Lookahead()

	if c == '<' {
		lx.Advance(false)
		if lx.Lookahead() == '!' {
			lx.Advance(false)
			return htmlComment(lx)
		}
		if valid.Offered(ImplicitEndTag) {
			return implicitEndTag(state, lx)
		}
		return 0, false
	}

	if c == EOF && valid.Offered(ImplicitEndTag) {
		return implicitEndTag(state, lx)
	}

	if c == '/' && valid.Offered(SelfClosingTagDelimiter) {
		return selfClosingDelimiter(state, lx)
	}

	if !valid.Offered(RawText) && (valid.anyStartTag() || valid.anyEndTag()) {
		if valid.anyEndTag() {
			return endTagName(state, lx)
		}
		return startTagName(state, lx)
	}

	return 0, false
}
