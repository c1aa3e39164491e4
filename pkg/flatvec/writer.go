package flatvec

import "bytes"

// writer assembles an encoded buffer. It records the first error
// encountered and turns every later write into a no-op, so callers can
// batch writes and check once at the end.
type writer struct {
	buf bytes.Buffer
	err error
}

func newWriter() *writer {
	return &writer{}
}

// fail records the first error encountered.
func (w *writer) fail(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// writeSize writes n as a size prefix in the given width.
func (w *writer) writeSize(width Width, n uint64) {
	if w.err != nil {
		return
	}
	b, err := width.AppendUint(nil, n)
	if err != nil {
		w.fail(err)
		return
	}
	w.buf.Write(b)
}

// writeRaw writes p verbatim.
func (w *writer) writeRaw(p []byte) {
	if w.err != nil {
		return
	}
	w.buf.Write(p)
}

// bytes returns the assembled buffer, or the first recorded error.
func (w *writer) bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.buf.Bytes(), nil
}
