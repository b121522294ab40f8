package scanner

// maxVerbatimSuffix is the largest verbatim suffix this scanner will
// capture (spec.md §3/§4.11): the length prefix in the serialized form is a
// single byte, so 255 is also the hard upper bound on what Serialize can
// round-trip.
const maxVerbatimSuffix = 255

// State is the scanner's persistent datum (spec.md §3): the ordered stack
// of open element contexts, outermost first, and the verbatim suffix
// captured between a VerbatimStart and its paired VerbatimBlockContent.
//
// The stack is plain LIFO, grounded on the open-elements stack
// (dpotapov-go-pages/chtml/html/parse.go's nodeStack/p.oe): push by append,
// pop by reslicing, no back-pointers.
type State struct {
	Stack          []Tag
	VerbatimSuffix []byte

	// LastError records the most recent documented failure a sub-scanner
	// or Deserialize hit, for diagnostics only — it never changes what
	// Scan/Serialize/Deserialize return to the host (spec.md §6/§7).
	LastError *ScanError
}

// NewState returns an empty scanner state: no open elements, no captured
// verbatim suffix.
func NewState() *State {
	return &State{}
}

// Push adds tag as the new top of the open-element stack.
func (s *State) Push(tag Tag) {
	s.Stack = append(s.Stack, tag)
}

// Pop removes and discards the top of the open-element stack. It is a
// no-op on an empty stack (callers are expected to check Top/len first;
// this just keeps pop_tag-style call sites simple and panic-free).
func (s *State) Pop() {
	if len(s.Stack) == 0 {
		return
	}
	s.Stack = s.Stack[:len(s.Stack)-1]
}

// Top returns the current innermost open element and true, or the zero Tag
// and false if the stack is empty.
func (s *State) Top() (Tag, bool) {
	if len(s.Stack) == 0 {
		return Tag{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// InForeignContent reports whether an SVG or MATH element is open anywhere
// on the stack (spec.md §3 invariant: "SVG or MATH may appear at any depth;
// their presence anywhere in the stack defines foreign content mode").
func (s *State) InForeignContent() bool {
	for _, t := range s.Stack {
		if t.Kind == TagSVG || t.Kind == TagMath {
			return true
		}
	}
	return false
}

// Reset clears the state back to empty, as Deserialize does before
// reconstructing from a buffer.
func (s *State) Reset() {
	s.Stack = s.Stack[:0]
	s.VerbatimSuffix = nil
}
