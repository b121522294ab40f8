package scanner

import "testing"

func TestFilterColonRejectsWhenNotOffered(t *testing.T) {
	lx := newFakeLexer(":\"x\"")
	_, ok := filterColon(lx, offering())
	if ok {
		t.Fatalf("filterColon should reject when FilterColon is not offered")
	}
}

func TestFilterColonRejectsNonColonLookahead(t *testing.T) {
	lx := newFakeLexer("x")
	_, ok := filterColon(lx, offering(FilterColon))
	if ok {
		t.Fatalf("filterColon should reject when lookahead is not ':'")
	}
}

func TestFilterColonAcceptsValidArgStarters(t *testing.T) {
	cases := []string{`:"quoted"`, `:'quoted'`, ":5", ":+1", ":-1", ":.5", ":arg", ":_arg"}
	for _, in := range cases {
		lx := newFakeLexer(in)
		sym, ok := filterColon(lx, offering(FilterColon))
		if !ok || sym != FilterColon {
			t.Errorf("filterColon(%q) = %v, %v; want FilterColon, true", in, sym, ok)
		}
	}
}

func TestFilterColonRejectsInvalidArgStart(t *testing.T) {
	lx := newFakeLexer(": x")
	_, ok := filterColon(lx, offering(FilterColon))
	if ok {
		t.Fatalf("filterColon should reject ':' followed by whitespace")
	}
}
