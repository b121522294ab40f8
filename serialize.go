package scanner

import "github.com/dtlscan/htmldjango/internal/wire"

// Serialize writes state into buf and returns the number of bytes written,
// following the layout from spec.md §4.3:
//
//	byte 0         : verbatim_suffix length L (0..255)
//	bytes 1..L     : verbatim_suffix bytes
//	bytes L+1..L+2 : serialized_tag_count (u16, little-endian)
//	bytes L+3..L+4 : total_tag_count (u16, little-endian)
//	then, per serialized tag:
//	    one byte   : tag kind discriminant
//	    if custom  : one byte name length N (0..255), then N bytes of name
//
// Serialization stops writing further tags as soon as the next entry would
// overflow buf; serialized_tag_count records how many were actually
// written while total_tag_count records the logical stack depth, so
// Deserialize can pad the tail back out to the true depth even when the
// buffer was too small to hold every frame.
func Serialize(state *State, buf []byte) int {
	w := wire.NewWriter(buf)

	suffixLen := len(state.VerbatimSuffix)
	if suffixLen > maxVerbatimSuffix {
		suffixLen = maxVerbatimSuffix
	}
	if !w.WriteByte(byte(suffixLen)) {
		return w.Len()
	}
	if !w.WriteBytes(state.VerbatimSuffix[:suffixLen]) {
		return w.Len()
	}

	countsOffset := w.Len()
	totalCount := len(state.Stack)
	if totalCount > 0xFFFF {
		totalCount = 0xFFFF
	}
	if !w.WriteUint16(0) { // serialized_tag_count, backfilled below
		return w.Len()
	}
	if !w.WriteUint16(uint16(totalCount)) {
		return w.Len()
	}

	serializedCount := 0
	for i := 0; i < totalCount; i++ {
		tag := state.Stack[i]
		if !writeTag(w, tag) {
			break
		}
		serializedCount++
	}

	w.PatchUint16(countsOffset, uint16(serializedCount))
	return w.Len()
}

func writeTag(w *wire.Writer, tag Tag) bool {
	if tag.Kind == TagCustom {
		nameLen := len(tag.Name)
		if nameLen > 0xFF {
			nameLen = 0xFF
		}
		if w.Remaining() < 2+nameLen {
			return false
		}
		w.WriteByte(byte(tag.Kind))
		w.WriteByte(byte(nameLen))
		w.WriteBytes(tag.Name[:nameLen])
		return true
	}
	if w.Remaining() < 1 {
		return false
	}
	w.WriteByte(byte(tag.Kind))
	return true
}

// Deserialize replaces state's contents by reading buf, first resetting to
// empty. Any short read aborts to empty state (spec.md §4.3/§7): a
// truncated or malformed buffer never leaves state partially populated.
func Deserialize(state *State, buf []byte) {
	state.Reset()
	state.LastError = nil
	if len(buf) == 0 {
		return
	}

	r := wire.NewReader(buf)

	suffixLen, err := r.ReadByte()
	if err != nil {
		state.LastError = newScanError("deserialize", "short read: %v", err)
		state.Reset()
		return
	}
	if suffixLen > 0 {
		suffix, err := r.ReadBytes(int(suffixLen))
		if err != nil {
			state.LastError = newScanError("deserialize", "short read on verbatim suffix: %v", err)
			state.Reset()
			return
		}
		state.VerbatimSuffix = append([]byte(nil), suffix...)
	}

	serializedCount, err := r.ReadUint16()
	if err != nil {
		state.LastError = newScanError("deserialize", "short read on serialized_tag_count: %v", err)
		state.Reset()
		return
	}
	totalCount, err := r.ReadUint16()
	if err != nil {
		state.LastError = newScanError("deserialize", "short read on total_tag_count: %v", err)
		state.Reset()
		return
	}

	stack := make([]Tag, 0, totalCount)
	var i uint16
	for ; i < serializedCount; i++ {
		tag, err := readTag(r)
		if err != nil {
			state.LastError = newScanError("deserialize", "short read on tag %d: %v", i, err)
			state.Reset()
			return
		}
		stack = append(stack, tag)
	}
	// Pad the tail so stack depth is preserved even though the buffer had
	// no room for every frame (spec.md §4.3, §9 open question 3).
	for ; i < totalCount; i++ {
		stack = append(stack, Tag{Kind: TagHTML})
	}

	state.Stack = stack
}

func readTag(r *wire.Reader) (Tag, error) {
	kindByte, err := r.ReadByte()
	if err != nil {
		return Tag{}, err
	}
	kind := TagKind(kindByte)
	if kind != TagCustom {
		return Tag{Kind: kind}, nil
	}

	nameLen, err := r.ReadByte()
	if err != nil {
		return Tag{}, err
	}
	name, err := r.ReadBytes(int(nameLen))
	if err != nil {
		return Tag{}, err
	}
	return Tag{Kind: TagCustom, Name: append([]byte(nil), name...)}, nil
}
