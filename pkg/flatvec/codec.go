package flatvec

// Codec bundles the encode and decode halves for one value shape.
//
// Encode produces a fresh buffer holding exactly the value's encoding.
// Decode is handed the exact byte span belonging to one value and must
// interpret all of it; the caller (a collection or record codec, or the
// application at the outermost level) is responsible for knowing where
// that span starts and ends, because the format carries no type or
// length markers of its own.
type Codec[T any] struct {
	Encode func(v T) ([]byte, error)
	Decode func(b []byte) (T, error)
}

// DecodeMax guards a decode entry point with a maximum buffer length.
// A buffer longer than limit is rejected with ErrBufferTooLarge before
// the underlying decode runs, so no allocation or recursion happens for
// oversized input. Otherwise the codec's result is returned unchanged.
func DecodeMax[T any](c Codec[T], buf []byte, limit int) (T, error) {
	if len(buf) > limit {
		var zero T
		return zero, errBufferTooLarge(len(buf), limit)
	}
	return c.Decode(buf)
}
