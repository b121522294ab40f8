package scanner

import "testing"

func TestSelfClosingDelimiterNonForeignDoesNotPop(t *testing.T) {
	state := NewState()
	state.Push(Classify([]byte("DIV"), false))
	lx := newFakeLexer("/>")

	sym, ok := selfClosingDelimiter(state, lx)
	if !ok || sym != SelfClosingTagDelimiter {
		t.Fatalf("selfClosingDelimiter = %v, %v; want SelfClosingTagDelimiter, true", sym, ok)
	}
	if len(state.Stack) != 1 {
		t.Fatalf("non-foreign self-close should not pop, stack = %+v", state.Stack)
	}
}

func TestSelfClosingDelimiterForeignPops(t *testing.T) {
	state := NewState()
	state.Push(Classify([]byte("svg"), true))
	state.Push(Tag{Kind: TagCustom, Name: []byte("g")})
	lx := newFakeLexer("/>")

	sym, ok := selfClosingDelimiter(state, lx)
	if !ok || sym != SelfClosingTagDelimiter {
		t.Fatalf("selfClosingDelimiter = %v, %v; want SelfClosingTagDelimiter, true", sym, ok)
	}
	if len(state.Stack) != 1 {
		t.Fatalf("foreign self-close should pop one frame, stack = %+v", state.Stack)
	}
}

func TestSelfClosingDelimiterRejectsWithoutGT(t *testing.T) {
	state := NewState()
	lx := newFakeLexer("/x")
	_, ok := selfClosingDelimiter(state, lx)
	if ok {
		t.Fatalf("selfClosingDelimiter should reject '/' not followed by '>'")
	}
}
