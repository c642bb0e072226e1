package ezjson

import (
	"math"

	"github.com/reoring/ezjson/internal/tree"
)

// codec converts one value between its in-memory slot and the document.
type codec interface {
	decode(r *Reader, n *tree.Node) error
	encode(w *Writer)
}

// Value is the set of primitive kinds a field or sequence element can hold.
type Value interface {
	bool | int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float64 | string
}

// valueCodec picks the codec for a primitive slot.
func valueCodec[T Value](p *T) codec {
	switch p := any(p).(type) {
	case *bool:
		return boolCodec{p}
	case *int:
		return intCodec[int]{p, math.MinInt, math.MaxInt, msgInt}
	case *int8:
		return intCodec[int8]{p, math.MinInt8, math.MaxInt8, msgInt8}
	case *int16:
		return intCodec[int16]{p, math.MinInt16, math.MaxInt16, msgInt16}
	case *int32:
		return intCodec[int32]{p, math.MinInt32, math.MaxInt32, msgInt32}
	case *int64:
		return intCodec[int64]{p, math.MinInt64, math.MaxInt64, msgInt64}
	case *uint:
		return uintCodec[uint]{p, math.MaxUint, msgUint}
	case *uint8:
		return uintCodec[uint8]{p, math.MaxUint8, msgUint8}
	case *uint16:
		return uintCodec[uint16]{p, math.MaxUint16, msgUint16}
	case *uint32:
		return uintCodec[uint32]{p, math.MaxUint32, msgUint32}
	case *uint64:
		return uintCodec[uint64]{p, math.MaxUint64, msgUint64}
	case *float64:
		return doubleCodec{p}
	case *string:
		return stringCodec{p}
	}
	panic("ezjson: unsupported value type")
}

type boolCodec struct{ v *bool }

func (c boolCodec) decode(_ *Reader, n *tree.Node) error {
	if n.Kind != tree.Bool {
		return newError(CodeInvalidType, msgBool)
	}
	*c.v = n.Bool
	return nil
}

func (c boolCodec) encode(w *Writer) { w.b.Bool(*c.v) }

// intCodec reads signed integers; bounds are inclusive.
type intCodec[T int | int8 | int16 | int32 | int64] struct {
	v      *T
	lo, hi int64
	msg    string
}

func (c intCodec[T]) decode(_ *Reader, n *tree.Node) error {
	switch n.Kind {
	case tree.Int:
		if n.Int < c.lo || n.Int > c.hi {
			return newError(CodeOutOfRange, c.msg)
		}
		*c.v = T(n.Int)
		return nil
	case tree.Uint:
		return newError(CodeOutOfRange, c.msg)
	}
	return newError(CodeInvalidType, c.msg)
}

func (c intCodec[T]) encode(w *Writer) { w.b.Int64(int64(*c.v)) }

// uintCodec reads unsigned integers; negative values are out of range.
type uintCodec[T uint | uint8 | uint16 | uint32 | uint64] struct {
	v   *T
	hi  uint64
	msg string
}

func (c uintCodec[T]) decode(_ *Reader, n *tree.Node) error {
	var u uint64
	switch n.Kind {
	case tree.Int:
		if n.Int < 0 {
			return newError(CodeOutOfRange, c.msg)
		}
		u = uint64(n.Int)
	case tree.Uint:
		u = n.Uint
	default:
		return newError(CodeInvalidType, c.msg)
	}
	if u > c.hi {
		return newError(CodeOutOfRange, c.msg)
	}
	*c.v = T(u)
	return nil
}

func (c uintCodec[T]) encode(w *Writer) { w.b.Uint64(uint64(*c.v)) }

// doubleCodec accepts only numbers the parser classified as doubles, which
// includes NaN and ±Infinity. Integer literals are rejected.
type doubleCodec struct{ v *float64 }

func (c doubleCodec) decode(_ *Reader, n *tree.Node) error {
	if n.Kind != tree.Double {
		return newError(CodeInvalidType, msgDouble)
	}
	*c.v = n.Double
	return nil
}

func (c doubleCodec) encode(w *Writer) { w.b.Float64(*c.v) }

type stringCodec struct{ v *string }

func (c stringCodec) decode(_ *Reader, n *tree.Node) error {
	if n.Kind != tree.String {
		return newError(CodeInvalidType, msgString)
	}
	*c.v = n.Str
	return nil
}

func (c stringCodec) encode(w *Writer) { w.b.String(*c.v) }

type objectCodec struct{ v Describer }

func (c objectCodec) decode(r *Reader, n *tree.Node) error { return r.object(n, c.v) }
func (c objectCodec) encode(w *Writer)                     { w.object(c.v) }
