package ezjson

import (
	"github.com/reoring/ezjson/internal/tree"
)

// DescriberPtr constrains PT to *T implementing Describer, so sequence
// helpers can allocate fresh elements.
type DescriberPtr[T any] interface {
	*T
	Describer
}

// Objects binds key to a slice of objects.
//
//	ezjson.Objects(ar, "v_o", &a.VO)
func Objects[T any, PT DescriberPtr[T]](ar Archive, key string, v *[]T) {
	ar.visit(key, objectsCodec[T, PT]{v})
}

// Values binds key to a slice of primitive values.
func Values[T Value](ar Archive, key string, v *[]T) {
	ar.visit(key, valuesCodec[T]{v})
}

// decodeArray replaces *dst with the decoded elements of n. Element failures
// are prefixed with their index; the elements decoded before the failure are
// kept.
func decodeArray[T any](n *tree.Node, dst *[]T, elem func(*T, *tree.Node) error) error {
	if n.Kind != tree.Array {
		return newError(CodeExpectedArray, msgArray)
	}
	out := make([]T, 0, n.Len())
	*dst = out
	for i, e := range n.Elems {
		var x T
		if err := elem(&x, e); err != nil {
			*dst = out
			return prepend(Index(i), err)
		}
		out = append(out, x)
	}
	*dst = out
	return nil
}

type objectsCodec[T any, PT DescriberPtr[T]] struct{ v *[]T }

func (c objectsCodec[T, PT]) decode(r *Reader, n *tree.Node) error {
	return decodeArray(n, c.v, func(x *T, e *tree.Node) error {
		return r.object(e, PT(x))
	})
}

func (c objectsCodec[T, PT]) encode(w *Writer) {
	w.b.BeginArray()
	for i := range *c.v {
		w.object(PT(&(*c.v)[i]))
	}
	w.b.EndArray()
}

type valuesCodec[T Value] struct{ v *[]T }

func (c valuesCodec[T]) decode(r *Reader, n *tree.Node) error {
	return decodeArray(n, c.v, func(x *T, e *tree.Node) error {
		return valueCodec(x).decode(r, e)
	})
}

func (c valuesCodec[T]) encode(w *Writer) {
	w.b.BeginArray()
	for i := range *c.v {
		valueCodec(&(*c.v)[i]).encode(w)
	}
	w.b.EndArray()
}
