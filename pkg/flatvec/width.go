package flatvec

import (
	"encoding/binary"
	"math"
)

// Width selects how many bytes every length and count prefix occupies.
// It is a compatibility contract between the two ends of the format:
// the stream carries no width marker, so an encoder and decoder
// configured with different widths will silently misinterpret each
// other's output. The constant values are the prefix byte lengths.
type Width uint8

const (
	Width8  Width = 1
	Width16 Width = 2
	Width32 Width = 4
	Width64 Width = 8
)

// Valid reports whether w is one of the four supported widths.
func (w Width) Valid() bool {
	switch w {
	case Width8, Width16, Width32, Width64:
		return true
	}
	return false
}

// Len returns the number of bytes a size prefix occupies.
func (w Width) Len() int {
	return int(w)
}

// Max returns the largest value representable in the width.
func (w Width) Max() uint64 {
	if w == Width64 {
		return math.MaxUint64
	}
	return 1<<(8*uint(w)) - 1
}

func (w Width) String() string {
	switch w {
	case Width8:
		return "u8"
	case Width16:
		return "u16"
	case Width32:
		return "u32"
	case Width64:
		return "u64"
	}
	return "invalid width"
}

func (w Width) mustValid() {
	if !w.Valid() {
		panic("flatvec: invalid Width, must be Width8, Width16, Width32 or Width64")
	}
}

// AppendUint appends n to dst as a little-endian prefix of the width's
// byte length. It fails with ErrOverflow when n is not representable.
func (w Width) AppendUint(dst []byte, n uint64) ([]byte, error) {
	w.mustValid()
	if n > w.Max() {
		return nil, errOverflow(n, w)
	}
	switch w {
	case Width8:
		return append(dst, byte(n)), nil
	case Width16:
		return binary.LittleEndian.AppendUint16(dst, uint16(n)), nil
	case Width32:
		return binary.LittleEndian.AppendUint32(dst, uint32(n)), nil
	default:
		return binary.LittleEndian.AppendUint64(dst, n), nil
	}
}

// Uint reads a little-endian prefix of the width's byte length. The
// slice must hold exactly Len() bytes, else ErrSizeMismatch.
func (w Width) Uint(b []byte) (uint64, error) {
	w.mustValid()
	if len(b) != w.Len() {
		return 0, errSizeMismatch(w.Len(), len(b))
	}
	switch w {
	case Width8:
		return uint64(b[0]), nil
	case Width16:
		return uint64(binary.LittleEndian.Uint16(b)), nil
	case Width32:
		return uint64(binary.LittleEndian.Uint32(b)), nil
	default:
		return binary.LittleEndian.Uint64(b), nil
	}
}
