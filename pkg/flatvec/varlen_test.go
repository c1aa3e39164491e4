package flatvec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringRawContent(t *testing.T) {
	b, err := EncodeString(Width32, "hello")
	require.NoError(t, err)
	// No prefix, no terminator: just the UTF-8 bytes.
	assert.Equal(t, []byte("hello"), b)

	s, err := DecodeString(b)
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
}

func TestStringEmpty(t *testing.T) {
	b, err := EncodeString(Width8, "")
	require.NoError(t, err)
	assert.Empty(t, b)

	s, err := DecodeString(nil)
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestStringInvalidUTF8(t *testing.T) {
	_, err := EncodeString(Width32, string([]byte{0xff, 0xfe}))
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	_, err = DecodeString([]byte{0xff})
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestStringWidthOverflow(t *testing.T) {
	long := strings.Repeat("x", 300)
	_, err := EncodeString(Width8, long)
	assert.ErrorIs(t, err, ErrOverflow)

	// The same value is fine under a wider size type.
	b, err := EncodeString(Width16, long)
	require.NoError(t, err)
	assert.Len(t, b, 300)
}

func TestBytesRoundTripAndCopy(t *testing.T) {
	src := []byte{0x00, 0xff, 0x10}
	b, err := EncodeBytes(Width32, src)
	require.NoError(t, err)
	assert.Equal(t, src, b)

	// The encoded buffer must not alias the source.
	src[0] = 0xaa
	assert.Equal(t, byte(0x00), b[0])

	got, err := DecodeBytes(b)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xff, 0x10}, got)

	// Nor may the decoded value alias the input buffer.
	b[1] = 0x77
	assert.Equal(t, byte(0xff), got[1])
}

func TestBytesWidthOverflow(t *testing.T) {
	_, err := EncodeBytes(Width8, make([]byte, 256))
	assert.ErrorIs(t, err, ErrOverflow)
}
