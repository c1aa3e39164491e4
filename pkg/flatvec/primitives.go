package flatvec

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"
)

// Fixed-width scalars occupy exactly their own byte size, little-endian,
// with no prefix. Containers record the length when one is needed, so a
// scalar decode demands a slice of exactly the right length.

// EncodeUint8 encodes v as one byte.
func EncodeUint8(v uint8) []byte {
	return []byte{v}
}

// DecodeUint8 decodes a single-byte buffer.
func DecodeUint8(b []byte) (uint8, error) {
	if len(b) != 1 {
		return 0, errSizeMismatch(1, len(b))
	}
	return b[0], nil
}

// EncodeUint16 encodes v as two little-endian bytes.
func EncodeUint16(v uint16) []byte {
	return binary.LittleEndian.AppendUint16(nil, v)
}

// DecodeUint16 decodes a two-byte little-endian buffer.
func DecodeUint16(b []byte) (uint16, error) {
	if len(b) != 2 {
		return 0, errSizeMismatch(2, len(b))
	}
	return binary.LittleEndian.Uint16(b), nil
}

// EncodeUint32 encodes v as four little-endian bytes.
func EncodeUint32(v uint32) []byte {
	return binary.LittleEndian.AppendUint32(nil, v)
}

// DecodeUint32 decodes a four-byte little-endian buffer.
func DecodeUint32(b []byte) (uint32, error) {
	if len(b) != 4 {
		return 0, errSizeMismatch(4, len(b))
	}
	return binary.LittleEndian.Uint32(b), nil
}

// EncodeUint64 encodes v as eight little-endian bytes.
func EncodeUint64(v uint64) []byte {
	return binary.LittleEndian.AppendUint64(nil, v)
}

// DecodeUint64 decodes an eight-byte little-endian buffer.
func DecodeUint64(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, errSizeMismatch(8, len(b))
	}
	return binary.LittleEndian.Uint64(b), nil
}

// Signed integers are stored as the two's-complement bit pattern of the
// matching unsigned type.

func EncodeInt8(v int8) []byte { return EncodeUint8(uint8(v)) }

func DecodeInt8(b []byte) (int8, error) {
	u, err := DecodeUint8(b)
	return int8(u), err
}

func EncodeInt16(v int16) []byte { return EncodeUint16(uint16(v)) }

func DecodeInt16(b []byte) (int16, error) {
	u, err := DecodeUint16(b)
	return int16(u), err
}

func EncodeInt32(v int32) []byte { return EncodeUint32(uint32(v)) }

func DecodeInt32(b []byte) (int32, error) {
	u, err := DecodeUint32(b)
	return int32(u), err
}

func EncodeInt64(v int64) []byte { return EncodeUint64(uint64(v)) }

func DecodeInt64(b []byte) (int64, error) {
	u, err := DecodeUint64(b)
	return int64(u), err
}

// Floats are stored as their IEEE 754 bit pattern. NaN and infinities
// round-trip bit-exactly; the format does not judge float values.

func EncodeFloat32(v float32) []byte { return EncodeUint32(math.Float32bits(v)) }

func DecodeFloat32(b []byte) (float32, error) {
	bits, err := DecodeUint32(b)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

func EncodeFloat64(v float64) []byte { return EncodeUint64(math.Float64bits(v)) }

func DecodeFloat64(b []byte) (float64, error) {
	bits, err := DecodeUint64(b)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// EncodeBool encodes true as 1 and false as 0 in a single byte.
func EncodeBool(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

// DecodeBool decodes a single-byte buffer holding 0 or 1.
func DecodeBool(b []byte) (bool, error) {
	u, err := DecodeUint8(b)
	if err != nil {
		return false, err
	}
	if u > 1 {
		return false, fmt.Errorf("%w: bool byte %#x", ErrInvalidEncoding, u)
	}
	return u == 1, nil
}

// EncodeRune encodes a Unicode scalar value as its code point in four
// little-endian bytes. Surrogates and out-of-range values fail with
// ErrInvalidEncoding.
func EncodeRune(v rune) ([]byte, error) {
	if !utf8.ValidRune(v) {
		return nil, fmt.Errorf("%w: invalid rune %#x", ErrInvalidEncoding, v)
	}
	return EncodeUint32(uint32(v)), nil
}

// DecodeRune decodes a four-byte code point and validates it is a
// Unicode scalar value.
func DecodeRune(b []byte) (rune, error) {
	u, err := DecodeUint32(b)
	if err != nil {
		return 0, err
	}
	r := rune(u)
	if u > utf8.MaxRune || !utf8.ValidRune(r) {
		return 0, fmt.Errorf("%w: invalid rune %#x", ErrInvalidEncoding, u)
	}
	return r, nil
}

// Codec constructors for the scalar shapes. These are what collection
// and record codecs compose over.

func Uint8Codec() Codec[uint8] {
	return Codec[uint8]{
		Encode: func(v uint8) ([]byte, error) { return EncodeUint8(v), nil },
		Decode: DecodeUint8,
	}
}

func Uint16Codec() Codec[uint16] {
	return Codec[uint16]{
		Encode: func(v uint16) ([]byte, error) { return EncodeUint16(v), nil },
		Decode: DecodeUint16,
	}
}

func Uint32Codec() Codec[uint32] {
	return Codec[uint32]{
		Encode: func(v uint32) ([]byte, error) { return EncodeUint32(v), nil },
		Decode: DecodeUint32,
	}
}

func Uint64Codec() Codec[uint64] {
	return Codec[uint64]{
		Encode: func(v uint64) ([]byte, error) { return EncodeUint64(v), nil },
		Decode: DecodeUint64,
	}
}

func Int8Codec() Codec[int8] {
	return Codec[int8]{
		Encode: func(v int8) ([]byte, error) { return EncodeInt8(v), nil },
		Decode: DecodeInt8,
	}
}

func Int16Codec() Codec[int16] {
	return Codec[int16]{
		Encode: func(v int16) ([]byte, error) { return EncodeInt16(v), nil },
		Decode: DecodeInt16,
	}
}

func Int32Codec() Codec[int32] {
	return Codec[int32]{
		Encode: func(v int32) ([]byte, error) { return EncodeInt32(v), nil },
		Decode: DecodeInt32,
	}
}

func Int64Codec() Codec[int64] {
	return Codec[int64]{
		Encode: func(v int64) ([]byte, error) { return EncodeInt64(v), nil },
		Decode: DecodeInt64,
	}
}

func Float32Codec() Codec[float32] {
	return Codec[float32]{
		Encode: func(v float32) ([]byte, error) { return EncodeFloat32(v), nil },
		Decode: DecodeFloat32,
	}
}

func Float64Codec() Codec[float64] {
	return Codec[float64]{
		Encode: func(v float64) ([]byte, error) { return EncodeFloat64(v), nil },
		Decode: DecodeFloat64,
	}
}

func BoolCodec() Codec[bool] {
	return Codec[bool]{
		Encode: func(v bool) ([]byte, error) { return EncodeBool(v), nil },
		Decode: DecodeBool,
	}
}

func RuneCodec() Codec[rune] {
	return Codec[rune]{
		Encode: EncodeRune,
		Decode: DecodeRune,
	}
}
