package flatvec

import (
	"errors"
	"fmt"
)

var (
	// ErrSizeMismatch reports a buffer whose length is not exactly the
	// length the target shape requires, including trailing bytes left
	// over after a collection or record body has been fully consumed.
	ErrSizeMismatch = errors.New("flatvec: buffer length does not match expected size")

	// ErrNotEnoughBytes reports a declared length or count that needs
	// more bytes than remain in the buffer.
	ErrNotEnoughBytes = errors.New("flatvec: not enough bytes remain")

	// ErrOverflow reports a count or byte length that cannot be
	// represented in the configured size width.
	ErrOverflow = errors.New("flatvec: value exceeds configured size width")

	// ErrInvalidEncoding reports malformed value content, such as text
	// that is not well-formed UTF-8.
	ErrInvalidEncoding = errors.New("flatvec: invalid encoded content")

	// ErrBufferTooLarge reports a buffer rejected by DecodeMax before
	// any decoding took place.
	ErrBufferTooLarge = errors.New("flatvec: buffer exceeds decode limit")
)

func errSizeMismatch(want, got int) error {
	return fmt.Errorf("%w: expected %d bytes, got %d", ErrSizeMismatch, want, got)
}

func errNotEnoughBytes(need uint64, have int) error {
	return fmt.Errorf("%w: need %d bytes, have %d", ErrNotEnoughBytes, need, have)
}

func errOverflow(n uint64, w Width) error {
	return fmt.Errorf("%w: %d does not fit in %s", ErrOverflow, n, w)
}

func errBufferTooLarge(got, limit int) error {
	return fmt.Errorf("%w: %d bytes, limit %d", ErrBufferTooLarge, got, limit)
}
