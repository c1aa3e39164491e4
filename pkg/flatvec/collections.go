package flatvec

import (
	"fmt"
	"math"
)

// Collections share one layout: an element count followed by, for each
// element in iteration order, that element's encoded byte length and
// then its bytes. Count and lengths are SizeValues in the configured
// width.
//
//	[count][len_1][elem_1]...[len_n][elem_n]

// encodeSeq writes the collection framing around n elements produced
// by encodeAt.
func encodeSeq(w Width, n int, encodeAt func(int) ([]byte, error)) ([]byte, error) {
	wr := newWriter()
	wr.writeSize(w, uint64(n))
	for i := 0; i < n; i++ {
		eb, err := encodeAt(i)
		if err != nil {
			return nil, err
		}
		wr.writeSize(w, uint64(len(eb)))
		wr.writeRaw(eb)
	}
	return wr.bytes()
}

// decodeSeq walks the collection framing, handing each element's exact
// byte span to elem in stream order. prepare runs once with the
// validated element count before any element is decoded.
func decodeSeq(w Width, b []byte, prepare func(n int), elem func(eb []byte) error) error {
	rd := newReader(b)
	count, err := rd.readSize(w)
	if err != nil {
		return err
	}
	n, err := seqCount(w, count, rd.remaining())
	if err != nil {
		return err
	}
	if prepare != nil {
		prepare(n)
	}
	for i := 0; i < n; i++ {
		sz, err := rd.readSize(w)
		if err != nil {
			return err
		}
		if sz > uint64(rd.remaining()) {
			return errNotEnoughBytes(sz, rd.remaining())
		}
		eb, err := rd.take(int(sz))
		if err != nil {
			return err
		}
		if err := elem(eb); err != nil {
			return err
		}
	}
	if rd.remaining() != 0 {
		return fmt.Errorf("%w: %d trailing bytes after %d elements", ErrSizeMismatch, rd.remaining(), n)
	}
	return nil
}

// seqCount validates a decoded element count before anything is
// allocated. Every element needs at least its own size prefix, so a
// count whose prefixes alone exceed the remaining bytes can never be
// satisfied.
func seqCount(w Width, count uint64, remaining int) (int, error) {
	if count > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: element count %d", ErrOverflow, count)
	}
	if int(count) > remaining/w.Len() {
		return 0, fmt.Errorf("%w: count %d cannot fit in %d remaining bytes",
			ErrNotEnoughBytes, count, remaining)
	}
	return int(count), nil
}

// SliceCodec returns the codec for an ordered sequence of elements.
// Element order is preserved exactly.
func SliceCodec[T any](w Width, elem Codec[T]) Codec[[]T] {
	w.mustValid()
	return Codec[[]T]{
		Encode: func(vs []T) ([]byte, error) {
			return encodeSeq(w, len(vs), func(i int) ([]byte, error) {
				return elem.Encode(vs[i])
			})
		},
		Decode: func(b []byte) ([]T, error) {
			var out []T
			err := decodeSeq(w, b,
				func(n int) { out = make([]T, 0, n) },
				func(eb []byte) error {
					v, err := elem.Decode(eb)
					if err != nil {
						return err
					}
					out = append(out, v)
					return nil
				})
			if err != nil {
				return nil, err
			}
			return out, nil
		},
	}
}

// SetCodec returns the codec for an unordered set. Elements are
// encoded in Go map iteration order; the stream order of a set is not
// a format guarantee.
func SetCodec[T comparable](w Width, elem Codec[T]) Codec[map[T]struct{}] {
	w.mustValid()
	return Codec[map[T]struct{}]{
		Encode: func(vs map[T]struct{}) ([]byte, error) {
			ordered := make([]T, 0, len(vs))
			for v := range vs {
				ordered = append(ordered, v)
			}
			return encodeSeq(w, len(ordered), func(i int) ([]byte, error) {
				return elem.Encode(ordered[i])
			})
		},
		Decode: func(b []byte) (map[T]struct{}, error) {
			var out map[T]struct{}
			err := decodeSeq(w, b,
				func(n int) { out = make(map[T]struct{}, n) },
				func(eb []byte) error {
					v, err := elem.Decode(eb)
					if err != nil {
						return err
					}
					out[v] = struct{}{}
					return nil
				})
			if err != nil {
				return nil, err
			}
			return out, nil
		},
	}
}

// MapCodec returns the codec for an associative map. Each entry is one
// collection element holding a key/value pair record, and the count is
// the number of entries. Entry order on the wire follows Go map
// iteration order and is not a format guarantee.
func MapCodec[K comparable, V any](w Width, key Codec[K], val Codec[V]) Codec[map[K]V] {
	w.mustValid()
	pair := PairCodec(w, key, val)
	return Codec[map[K]V]{
		Encode: func(vs map[K]V) ([]byte, error) {
			ordered := make([]Pair[K, V], 0, len(vs))
			for k, v := range vs {
				ordered = append(ordered, Pair[K, V]{Key: k, Value: v})
			}
			return encodeSeq(w, len(ordered), func(i int) ([]byte, error) {
				return pair.Encode(ordered[i])
			})
		},
		Decode: func(b []byte) (map[K]V, error) {
			var out map[K]V
			err := decodeSeq(w, b,
				func(n int) { out = make(map[K]V, n) },
				func(eb []byte) error {
					p, err := pair.Decode(eb)
					if err != nil {
						return err
					}
					out[p.Key] = p.Value
					return nil
				})
			if err != nil {
				return nil, err
			}
			return out, nil
		},
	}
}
