package scanner

import "testing"

// FuzzSerializeRoundTrip checks that Deserialize never panics on arbitrary
// bytes and that whatever it produces is itself safe to re-serialize.
func FuzzSerializeRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0})
	f.Add([]byte{1, 'x'})
	f.Add([]byte{0, 0, 0, 1, 0})
	f.Add([]byte{0, 5, 0, 5, 0, byte(TagCustom), 3, 'f', 'o', 'o'})

	f.Fuzz(func(t *testing.T, buf []byte) {
		s := NewState()
		Deserialize(s, buf)

		out := make([]byte, 4096)
		n := Serialize(s, out)
		if n > len(out) {
			t.Fatalf("Serialize wrote more than the buffer capacity")
		}

		again := NewState()
		Deserialize(again, out[:n])
		if len(again.Stack) != len(s.Stack) {
			t.Fatalf("re-serialize/deserialize changed stack depth: %d vs %d", len(again.Stack), len(s.Stack))
		}
	})
}
