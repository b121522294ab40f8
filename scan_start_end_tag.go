package scanner

// startTagName implements spec.md §4.7's start_tag_name: reads a tag name
// and either pushes it onto the stack (emitting a symbol naming its kind)
// or, for void elements, emits VOID_START_TAG_NAME without pushing
// anything at all.
func startTagName(state *State, lx Lexer) (Symbol, bool) {
	foreign := state.InForeignContent()
	name := scanTagName(lx, !foreign)
	if len(name) == 0 {
		return 0, false
	}
	lx.MarkEnd()

	if foreign {
		state.Push(Tag{Kind: TagCustom, Name: name})
		return ForeignStartTagName, true
	}

	tag := Classify(name, false)
	if IsVoid(tag) {
		return VoidStartTagName, true
	}

	state.Push(tag)
	switch tag.Kind {
	case TagScript:
		return ScriptStartTagName, true
	case TagStyle:
		return StyleStartTagName, true
	case TagTitle:
		return TitleStartTagName, true
	case TagTextarea:
		return TextareaStartTagName, true
	case TagPlaintext:
		return PlaintextStartTagName, true
	case TagSVG, TagMath:
		return ForeignStartTagName, true
	default:
		return HTMLStartTagName, true
	}
}

// endTagName implements spec.md §4.7's end_tag_name. If the scanned name
// matches the stack top exactly, it pops and emits END_TAG_NAME. If it
// matches some element deeper in the stack, it emits END_TAG_NAME without
// popping — the accommodation for Django's unbalanced conditional-branch
// tags (spec.md §9 open question 2). Otherwise it emits
// ERRONEOUS_END_TAG_NAME.
//
// Case handling mirrors original_source/src/scanner.c's scan_end_tag_name:
// uppercase unless we're in foreign content AND the current top is not
// itself SVG/MATH (i.e. stay uppercase for the foreign root tags
// themselves, preserve case once a CUSTOM foreign descendant is open).
func endTagName(state *State, lx Lexer) (Symbol, bool) {
	foreign := state.InForeignContent()
	top, hasTop := state.Top()
	uppercase := !foreign || (hasTop && (top.Kind == TagSVG || top.Kind == TagMath))

	name := scanTagName(lx, uppercase)
	if len(name) == 0 {
		return 0, false
	}
	lx.MarkEnd()

	var tag Tag
	if foreign && !uppercase {
		tag = Tag{Kind: TagCustom, Name: name}
	} else {
		tag = Classify(name, false)
	}

	if hasTop && top.Equal(tag) {
		state.Pop()
		return EndTagName, true
	}

	for i := len(state.Stack) - 1; i >= 0; i-- {
		if state.Stack[i].Equal(tag) {
			return EndTagName, true
		}
	}

	return ErroneousEndTagName, true
}
