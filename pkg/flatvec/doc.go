// Package flatvec implements a minimal, tagless binary codec: typed
// values in, a flat ordered byte sequence out, and back again. The
// format carries no type tags, no schema and no version header; the two
// ends of a stream agree out-of-band on a value shape and a size width,
// and the bytes are nothing but the value.
//
// # Wire format
//
// Every length and count prefix is a SizeValue: an unsigned integer of
// the configured Width (8, 16, 32 or 64 bits), little-endian. The width
// is shared configuration, not stream data; encoder and decoder using
// different widths silently misread each other, and no detection is
// attempted.
//
//	Scalars      sizeof(type) bytes, little-endian, no prefix
//	Text/bytes   raw content only, no prefix, no terminator
//	Collections  [count][len_1][elem_1]...[len_n][elem_n]
//	Records      [len_1]...[len_k][field_1]...[field_k]
//
// Shapes nest arbitrarily: a collection element or record field can
// itself be a collection, record, scalar or text value, and each level
// frames its children with SizeValues so decoding can hand every child
// its exact byte span.
//
// # Composition
//
// A Codec[T] pairs the encode and decode halves for one shape. Scalar
// constructors (Uint32Codec, Float64Codec, RuneCodec, ...) need no
// width; StringCodec, BytesCodec, SliceCodec, SetCodec, MapCodec and
// RecordCodec are bound to one at construction:
//
//	c := flatvec.SliceCodec(flatvec.Width32, flatvec.StringCodec(flatvec.Width32))
//	buf, _ := c.Encode([]string{"Rust", "Is", "Awesome!"})
//	vals, _ := c.Decode(buf)
//
// Records declare an ordered field list over a struct; the declaration
// may be a strict subset of the struct's fields, in which case the
// remaining fields never touch the stream:
//
//	type point struct{ X, Y, Z uint32 }
//	pc := flatvec.RecordCodec(flatvec.Width32, nil,
//		flatvec.FieldOf("x", flatvec.Uint32Codec(), func(p *point) *uint32 { return &p.X }),
//		flatvec.FieldOf("y", flatvec.Uint32Codec(), func(p *point) *uint32 { return &p.Y }),
//	)
//
// # Errors
//
// Failures are sentinel errors (ErrSizeMismatch, ErrNotEnoughBytes,
// ErrOverflow, ErrInvalidEncoding, ErrBufferTooLarge) matched with
// errors.Is. A failure at any nesting depth aborts the whole operation;
// partial results are never returned, and malformed input never causes
// a panic.
//
// # Concurrency
//
// All operations are pure functions. Codecs are immutable after
// construction and safe for concurrent use; decoded values never alias
// the input buffer.
package flatvec
