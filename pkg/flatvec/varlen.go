package flatvec

import (
	"fmt"
	"unicode/utf8"
)

// Text and raw byte values are encoded as their content alone, with no
// length marker or terminator. Their length is never self-describing:
// a container (or the application) must already know the exact byte
// span, so the decode half always consumes the entire slice it is
// given. The width parameter on the encode half rejects values that no
// container using that width could ever frame.

// EncodeString returns the raw UTF-8 bytes of s. It fails with
// ErrInvalidEncoding when s is not well-formed UTF-8 and with
// ErrOverflow when its byte length is not representable in w.
func EncodeString(w Width, s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: string is not valid UTF-8", ErrInvalidEncoding)
	}
	if uint64(len(s)) > w.Max() {
		return nil, errOverflow(uint64(len(s)), w)
	}
	return []byte(s), nil
}

// DecodeString interprets the entire buffer as one UTF-8 string.
func DecodeString(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: buffer is not valid UTF-8", ErrInvalidEncoding)
	}
	return string(b), nil
}

// EncodeBytes returns a copy of p. It fails with ErrOverflow when the
// length is not representable in w. Content is never validated.
func EncodeBytes(w Width, p []byte) ([]byte, error) {
	if uint64(len(p)) > w.Max() {
		return nil, errOverflow(uint64(len(p)), w)
	}
	return append([]byte(nil), p...), nil
}

// DecodeBytes returns a copy of the entire buffer. The result never
// aliases the input.
func DecodeBytes(b []byte) ([]byte, error) {
	return append([]byte(nil), b...), nil
}

// StringCodec returns the codec for UTF-8 text under the given width.
func StringCodec(w Width) Codec[string] {
	w.mustValid()
	return Codec[string]{
		Encode: func(v string) ([]byte, error) { return EncodeString(w, v) },
		Decode: DecodeString,
	}
}

// BytesCodec returns the codec for raw byte content under the given
// width.
func BytesCodec(w Width) Codec[[]byte] {
	w.mustValid()
	return Codec[[]byte]{
		Encode: func(v []byte) ([]byte, error) { return EncodeBytes(w, v) },
		Decode: DecodeBytes,
	}
}
