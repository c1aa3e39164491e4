package flatvec

import (
	"math"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip[T comparable](t *testing.T, c Codec[T], v T) {
	t.Helper()
	b, err := c.Encode(v)
	require.NoError(t, err)
	got, err := c.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestUnsignedRoundTrip(t *testing.T) {
	for _, v := range []uint8{0, 1, 0x7f, math.MaxUint8} {
		roundTrip(t, Uint8Codec(), v)
	}
	for _, v := range []uint16{0, 1, 0xbeef, math.MaxUint16} {
		roundTrip(t, Uint16Codec(), v)
	}
	for _, v := range []uint32{0, 1, 0xdeadbeef, math.MaxUint32} {
		roundTrip(t, Uint32Codec(), v)
	}
	for _, v := range []uint64{0, 1, 1 << 60, math.MaxUint64} {
		roundTrip(t, Uint64Codec(), v)
	}
}

func TestSignedRoundTrip(t *testing.T) {
	for _, v := range []int8{math.MinInt8, -1, 0, 1, math.MaxInt8} {
		roundTrip(t, Int8Codec(), v)
	}
	for _, v := range []int16{math.MinInt16, -1234, 0, math.MaxInt16} {
		roundTrip(t, Int16Codec(), v)
	}
	for _, v := range []int32{math.MinInt32, -1, 0, math.MaxInt32} {
		roundTrip(t, Int32Codec(), v)
	}
	for _, v := range []int64{math.MinInt64, -1, 0, math.MaxInt64} {
		roundTrip(t, Int64Codec(), v)
	}
}

func TestFloatRoundTrip(t *testing.T) {
	for _, v := range []float32{0, -0, 3.14, float32(math.Inf(1)), math.SmallestNonzeroFloat32} {
		roundTrip(t, Float32Codec(), v)
	}
	for _, v := range []float64{0, -6.28, math.Inf(-1), math.MaxFloat64} {
		roundTrip(t, Float64Codec(), v)
	}
}

func TestFloatNaNBitsPreserved(t *testing.T) {
	b, err := Float64Codec().Encode(math.NaN())
	require.NoError(t, err)
	got, err := Float64Codec().Decode(b)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))
	assert.Equal(t, math.Float64bits(math.NaN()), math.Float64bits(got))
}

func TestScalarLittleEndianLayout(t *testing.T) {
	assert.Equal(t, []byte{0xef, 0xbe, 0xad, 0xde}, EncodeUint32(0xdeadbeef))
	assert.Equal(t, []byte{0xff, 0xff}, EncodeInt16(-1))
}

func TestScalarSizeMismatch(t *testing.T) {
	// Decoding with any byte removed or added is a size mismatch.
	b := EncodeUint32(42)
	_, err := DecodeUint32(b[:3])
	assert.ErrorIs(t, err, ErrSizeMismatch)
	_, err = DecodeUint32(append(b, 0))
	assert.ErrorIs(t, err, ErrSizeMismatch)
	_, err = DecodeUint32(nil)
	assert.ErrorIs(t, err, ErrSizeMismatch)

	_, err = DecodeFloat64(make([]byte, 4))
	assert.ErrorIs(t, err, ErrSizeMismatch)
	_, err = DecodeUint8(make([]byte, 2))
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestBool(t *testing.T) {
	roundTrip(t, BoolCodec(), true)
	roundTrip(t, BoolCodec(), false)

	_, err := DecodeBool([]byte{2})
	assert.ErrorIs(t, err, ErrInvalidEncoding)
	_, err = DecodeBool([]byte{0, 1})
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestRune(t *testing.T) {
	for _, v := range []rune{0, 'a', 'é', '世', utf8.MaxRune} {
		roundTrip(t, RuneCodec(), v)
	}

	// Surrogate code points are not Unicode scalar values.
	_, err := EncodeRune(0xD800)
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	_, err = DecodeRune(EncodeUint32(0xD800))
	assert.ErrorIs(t, err, ErrInvalidEncoding)
	_, err = DecodeRune(EncodeUint32(0x110000))
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	_, err = DecodeRune([]byte{1, 2})
	assert.ErrorIs(t, err, ErrSizeMismatch)
}
