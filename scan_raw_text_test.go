package scanner

import "testing"

// rawText (like rcdataText) speculatively advances past a candidate end
// delimiter before deciding whether it matched; MarkEnd is only called on
// confirmed ordinary content. So after a call, the fake lexer's raw pos
// may sit ahead of the token boundary exactly as it would on a real
// tree-sitter host — rewind(0, ok) restores what the host would actually
// expose for the *next* Scan call before we assert on it.

func TestRawTextStopsBeforeEndTagCaseInsensitive(t *testing.T) {
	state := NewState()
	state.Push(Classify([]byte("SCRIPT"), false))
	lx := newFakeLexer("x<1;</SCRIPT>")

	sym, ok := rawText(state, lx)
	text := lx.token()
	lx.rewind(0, ok)
	if !ok || sym != RawText {
		t.Fatalf("rawText = %v, %v; want RawText, true", sym, ok)
	}
	if text != "x<1;" {
		t.Fatalf("rawText token = %q, want %q", text, "x<1;")
	}
	if lx.remaining() != "</SCRIPT>" {
		t.Fatalf("remaining = %q, want %q", lx.remaining(), "</SCRIPT>")
	}
}

func TestRawTextCaseInsensitiveCloser(t *testing.T) {
	state := NewState()
	state.Push(Classify([]byte("SCRIPT"), false))
	lx := newFakeLexer("hi</script>")

	_, ok := rawText(state, lx)
	text := lx.token()
	if !ok {
		t.Fatalf("rawText should accept a lowercase </script> closer")
	}
	if text != "hi" {
		t.Fatalf("rawText token = %q, want hi", text)
	}
}

func TestRawTextStopsAtDjangoDelimiter(t *testing.T) {
	state := NewState()
	state.Push(Classify([]byte("SCRIPT"), false))
	lx := newFakeLexer("a{{ x }}b</script>")

	_, ok := rawText(state, lx)
	text := lx.token()
	lx.rewind(0, ok)
	if !ok {
		t.Fatalf("rawText should produce a token before the Django delimiter")
	}
	if text != "a" {
		t.Fatalf("rawText token = %q, want %q", text, "a")
	}
	if lx.remaining() != "{{ x }}b</script>" {
		t.Fatalf("remaining = %q, want content starting at {{", lx.remaining())
	}
}

func TestRawTextWrongTopRejects(t *testing.T) {
	state := NewState()
	state.Push(Classify([]byte("DIV"), false))
	lx := newFakeLexer("hello</div>")
	_, ok := rawText(state, lx)
	if ok {
		t.Fatalf("rawText should reject when top is not SCRIPT/STYLE")
	}
}

func TestRawTextEmptyBeforeCloserRejects(t *testing.T) {
	state := NewState()
	state.Push(Classify([]byte("SCRIPT"), false))
	lx := newFakeLexer("</script>")
	_, ok := rawText(state, lx)
	if ok {
		t.Fatalf("rawText with no content before the closer should reject (zero-length token)")
	}
}

func TestRawTextBareBraceIsOrdinaryContent(t *testing.T) {
	state := NewState()
	state.Push(Classify([]byte("STYLE"), false))
	lx := newFakeLexer("a{b</style>")

	_, ok := rawText(state, lx)
	text := lx.token()
	if !ok {
		t.Fatalf("rawText should accept a bare '{' not starting a Django delimiter")
	}
	if text != "a{b" {
		t.Fatalf("rawText token = %q, want a{b", text)
	}
}
