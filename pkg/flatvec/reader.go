package flatvec

// reader is a cursor over an encoded buffer. Sub-slices handed out by
// take alias the input; decoders that keep data must copy it.
type reader struct {
	buf []byte
	off int
}

func newReader(b []byte) *reader {
	return &reader{buf: b}
}

// remaining returns the number of unconsumed bytes.
func (r *reader) remaining() int {
	return len(r.buf) - r.off
}

// take consumes exactly n bytes and returns them. It fails with
// ErrNotEnoughBytes when fewer than n bytes remain.
func (r *reader) take(n int) ([]byte, error) {
	if n > r.remaining() {
		return nil, errNotEnoughBytes(uint64(n), r.remaining())
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// readSize consumes one size prefix of the given width.
func (r *reader) readSize(width Width) (uint64, error) {
	b, err := r.take(width.Len())
	if err != nil {
		return 0, err
	}
	return width.Uint(b)
}
