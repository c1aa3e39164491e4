package flatvec

import "fmt"

// Records are fixed-arity aggregates: a declared, ordered list of field
// slots over some Go struct (or struct-like) type R. The wire layout is
// every declared field's byte length, then every field's bytes, in
// declared order:
//
//	[len_1]...[len_k][field_1]...[field_k]
//
// k is a property of the declaration, never of the stream, and fields
// are matched by position only. A declaration may cover a strict subset
// of R's fields ("partial record"); undeclared fields never touch the
// stream and keep whatever the base value holds.

// Field is one declared record slot: a codec bound to an accessor into
// R. Name is used only in diagnostics and never written to the stream.
type Field[R any] struct {
	Name   string
	Encode func(r *R) ([]byte, error)
	Decode func(r *R, b []byte) error
}

// FieldOf binds a codec to a struct field through an accessor that
// returns the field's address. This explicit triple of shape, accessor
// and name is the record glue; there is no reflection in the core.
func FieldOf[R, T any](name string, c Codec[T], get func(*R) *T) Field[R] {
	return Field[R]{
		Name: name,
		Encode: func(r *R) ([]byte, error) {
			return c.Encode(*get(r))
		},
		Decode: func(r *R, b []byte) error {
			v, err := c.Decode(b)
			if err != nil {
				return err
			}
			*get(r) = v
			return nil
		},
	}
}

// RecordCodec returns the codec for R under the declared fields. base
// supplies the starting value for decode, which is what undeclared
// fields of a partial record end up holding; a nil base means the zero
// value.
func RecordCodec[R any](w Width, base func() R, fields ...Field[R]) Codec[R] {
	w.mustValid()
	return Codec[R]{
		Encode: func(v R) ([]byte, error) {
			bodies := make([][]byte, len(fields))
			for i, f := range fields {
				b, err := f.Encode(&v)
				if err != nil {
					return nil, err
				}
				bodies[i] = b
			}
			wr := newWriter()
			for _, b := range bodies {
				wr.writeSize(w, uint64(len(b)))
			}
			for _, b := range bodies {
				wr.writeRaw(b)
			}
			return wr.bytes()
		},
		Decode: func(b []byte) (R, error) {
			var out R
			if base != nil {
				out = base()
			}
			rd := newReader(b)
			sizes := make([]uint64, len(fields))
			for i := range fields {
				sz, err := rd.readSize(w)
				if err != nil {
					return out, err
				}
				sizes[i] = sz
			}
			for i, f := range fields {
				if sizes[i] > uint64(rd.remaining()) {
					return out, fmt.Errorf("%w: field %q needs %d bytes, have %d",
						ErrNotEnoughBytes, f.Name, sizes[i], rd.remaining())
				}
				fb, err := rd.take(int(sizes[i]))
				if err != nil {
					return out, err
				}
				if err := f.Decode(&out, fb); err != nil {
					return out, err
				}
			}
			if rd.remaining() != 0 {
				return out, fmt.Errorf("%w: %d trailing bytes after %d fields",
					ErrSizeMismatch, rd.remaining(), len(fields))
			}
			return out, nil
		},
	}
}

// Pair is the fixed two-field record used for map entries and generic
// 2-tuples.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// PairCodec returns the codec for a key/value pair, laid out as a
// two-field record.
func PairCodec[K, V any](w Width, key Codec[K], val Codec[V]) Codec[Pair[K, V]] {
	return RecordCodec(w, nil,
		FieldOf("key", key, func(p *Pair[K, V]) *K { return &p.Key }),
		FieldOf("value", val, func(p *Pair[K, V]) *V { return &p.Value }),
	)
}
