package scanner

// implicitEndTag implements spec.md §4.8: a zero-width token instructing
// the host grammar to close the current element without a literal closing
// tag. It pops at most one frame per call; the host is expected to invoke
// Scan repeatedly (with IMPLICIT_END_TAG offered each time) until the stack
// reconciles with the lookahead.
//
// Ported rule-for-rule from original_source/src/scanner.c's
// scan_implicit_end_tag, which is the ground truth for the ordering and
// exact guards below — spec.md §4.8 describes the same five triggers, and
// SPEC_FULL.md's "supplemented behavior" section records where the prose
// needed the original to disambiguate (case handling, the `/`-branch).
func implicitEndTag(state *State, lx Lexer) (Symbol, bool) {
	foreign := state.InForeignContent()
	parent, hasParent := state.Top()

	// Rule 1: EOF with a non-empty, non-foreign stack always closes the
	// current element, regardless of its kind.
	if !foreign && hasParent && lx.EOF() {
		state.Pop()
		return ImplicitEndTag, true
	}

	isClosingTag := false
	if lx.Lookahead() == '/' {
		isClosingTag = true
		lx.Advance(false)
	} else if hasParent && IsVoid(parent) {
		// Rule 4: a start tag follows a void element still on top of the
		// stack (malformed input) — close the void frame so the grammar
		// can reparse the lookahead as a sibling start tag.
		state.Pop()
		return ImplicitEndTag, true
	}

	// Stay uppercase for the foreign-mode roots themselves; once a CUSTOM
	// foreign descendant is open, preserve case for the lookahead name too.
	uppercase := !foreign || (hasParent && parent.Kind != TagCustom)
	name := scanTagName(lx, uppercase)
	if len(name) == 0 && !lx.EOF() {
		return 0, false
	}

	nextTag := Classify(name, false)

	if isClosingTag {
		if hasParent && parent.Equal(nextTag) {
			// Exact match: end_tag_name handles this case directly, no
			// implicit close needed first.
			return 0, false
		}
		// Rule 3: the closing tag matches something deeper in the stack.
		// Pop one frame to work toward reconciliation; the host will call
		// again until the match reaches the top.
		for i := len(state.Stack) - 1; i >= 0; i-- {
			if state.Stack[i].Equal(nextTag) {
				state.Pop()
				return ImplicitEndTag, true
			}
		}
		return 0, false
	}

	// Rule 2 / Rule 5: the parent's content model rejects this child, or
	// (dead in practice given rule 1 always fires first, but kept to match
	// the original's own guard) the parent is HTML/HEAD/BODY at EOF.
	if hasParent && !foreign &&
		(!CanContain(parent, nextTag) ||
			((parent.Kind == TagHTML || parent.Kind == TagHead || parent.Kind == TagBody) && lx.EOF())) {
		state.Pop()
		return ImplicitEndTag, true
	}

	return 0, false
}
