package wire

import "errors"

// ErrShortRead is returned whenever a read would run past the end of the
// buffer. Per spec.md §4.3/§7, any short read aborts to empty state rather
// than partially reconstructing the scanner stack.
var ErrShortRead = errors.New("wire: short read")

// Reader reads sequentially from a byte slice it does not own or copy.
type Reader struct {
	data []byte
	pos  int
}

// NewReader wraps data for sequential reading starting at offset 0.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// ReadByte reads and returns a single byte, or ErrShortRead if none remain.
func (r *Reader) ReadByte() (byte, error) {
	if r.Remaining() < 1 {
		return 0, ErrShortRead
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadBytes reads exactly n bytes, or ErrShortRead if fewer remain. The
// returned slice aliases the Reader's underlying data and must be copied by
// the caller before the data slice is mutated or reused.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, ErrShortRead
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadUint16 reads two little-endian bytes as a uint16, or ErrShortRead if
// fewer than two bytes remain.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0]) | uint16(b[1])<<8, nil
}
