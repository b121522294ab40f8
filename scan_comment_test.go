package scanner

import "testing"

// htmlComment is entered right after the dispatcher has consumed "<!", so
// every fixture here starts with the "--" the sub-scanner itself requires.

func TestHTMLCommentPlainBody(t *testing.T) {
	lx := newFakeLexer("-- hello -->")
	sym, ok := htmlComment(lx)
	text := lx.token()
	if !ok || sym != Comment {
		t.Fatalf("htmlComment = %v, %v; want Comment, true", sym, ok)
	}
	if text != "-- hello -->" {
		t.Fatalf("htmlComment token = %q, want full input consumed", text)
	}
}

func TestHTMLCommentEarlyCloseFourDash(t *testing.T) {
	// "<!-->" : dispatcher already ate "<!", leaving "-->" for htmlComment.
	lx := newFakeLexer("-->")
	sym, ok := htmlComment(lx)
	text := lx.token()
	if !ok || sym != Comment {
		t.Fatalf("htmlComment(-->) = %v, %v; want Comment, true", sym, ok)
	}
	if text != "-->" {
		t.Fatalf("htmlComment token = %q, want %q", text, "-->")
	}
}

func TestHTMLCommentEarlyCloseFiveDash(t *testing.T) {
	// "<!--->" : dispatcher already ate "<!", leaving "--->" for htmlComment.
	lx := newFakeLexer("--->")
	sym, ok := htmlComment(lx)
	text := lx.token()
	if !ok || sym != Comment {
		t.Fatalf("htmlComment(--->) = %v, %v; want Comment, true", sym, ok)
	}
	if text != "--->" {
		t.Fatalf("htmlComment token = %q, want %q", text, "--->")
	}
}

func TestHTMLCommentBangTerminator(t *testing.T) {
	lx := newFakeLexer("-- a--!>")
	sym, ok := htmlComment(lx)
	text := lx.token()
	if !ok || sym != Comment {
		t.Fatalf("htmlComment(--!>) = %v, %v; want Comment, true", sym, ok)
	}
	if text != "-- a--!>" {
		t.Fatalf("htmlComment token = %q, want %q", text, "-- a--!>")
	}
}

func TestHTMLCommentNestedLTBangDashSequence(t *testing.T) {
	// A literal "<!--" inside the comment body is just text to the
	// tokenizer, not a nested comment; it should fall back into the body
	// state and the whole thing still closes at the real "-->".
	lx := newFakeLexer("-- <!--b-->")
	sym, ok := htmlComment(lx)
	text := lx.token()
	if !ok || sym != Comment {
		t.Fatalf("htmlComment(nested <!--) = %v, %v; want Comment, true", sym, ok)
	}
	if text != "-- <!--b-->" {
		t.Fatalf("htmlComment token = %q, want full input consumed", text)
	}
}

func TestHTMLCommentEOFTerminates(t *testing.T) {
	lx := newFakeLexer("-- unterminated")
	sym, ok := htmlComment(lx)
	text := lx.token()
	if !ok || sym != Comment {
		t.Fatalf("htmlComment at EOF = %v, %v; want Comment, true", sym, ok)
	}
	if text != "-- unterminated" {
		t.Fatalf("htmlComment token = %q, want full input consumed to EOF", text)
	}
}

func TestHTMLCommentRejectsWithoutDoubleDash(t *testing.T) {
	lx := newFakeLexer("-x-->")
	_, ok := htmlComment(lx)
	if ok {
		t.Fatalf("htmlComment should require '--' immediately after '<!'")
	}
}
