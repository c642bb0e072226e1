package ezjson

import (
	"strconv"

	"github.com/reoring/ezjson/internal/tree"
)

// Enumerable is an integer type whose valid values run contiguously from 0
// up to, but excluding, a sentinel such as PulpLevelN.
type Enumerable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Enum binds key to an enum value stored on the wire as name(value).
// Reading scans 0..n-1 and accepts the first value whose name matches.
//
//	ezjson.Enum(ar, "pulp level", &z.Pulp, PulpLevelN, PulpLevel.String)
func Enum[E Enumerable](ar Archive, key string, v *E, n E, name func(E) string) {
	ar.visit(key, enumCodec[E]{v, n, name})
}

// Enums binds key to a slice of enum values.
func Enums[E Enumerable](ar Archive, key string, v *[]E, n E, name func(E) string) {
	ar.visit(key, enumsCodec[E]{v, n, name})
}

type enumCodec[E Enumerable] struct {
	v    *E
	n    E
	name func(E) string
}

func (c enumCodec[E]) decode(_ *Reader, node *tree.Node) error {
	if node.Kind != tree.String {
		return newError(CodeInvalidType, msgString)
	}
	e, ok := lookupEnum(node.Str, c.n, c.name)
	if !ok {
		return newError(CodeInvalidEnum, "bad enum value: "+strconv.Quote(node.Str))
	}
	*c.v = e
	return nil
}

func (c enumCodec[E]) encode(w *Writer) { w.b.String(c.name(*c.v)) }

func lookupEnum[E Enumerable](s string, n E, name func(E) string) (E, bool) {
	for e := E(0); e < n; e++ {
		if name(e) == s {
			return e, true
		}
	}
	return 0, false
}

type enumsCodec[E Enumerable] struct {
	v    *[]E
	n    E
	name func(E) string
}

func (c enumsCodec[E]) decode(r *Reader, n *tree.Node) error {
	return decodeArray(n, c.v, func(x *E, e *tree.Node) error {
		return enumCodec[E]{x, c.n, c.name}.decode(r, e)
	})
}

func (c enumsCodec[E]) encode(w *Writer) {
	w.b.BeginArray()
	for _, e := range *c.v {
		w.b.String(c.name(e))
	}
	w.b.EndArray()
}

// Text binds key to a value carried as a JSON string. parse failures are
// reported as the field's error message.
//
//	ezjson.Text(ar, "timeout", &cfg.Timeout, time.Duration.String, time.ParseDuration)
func Text[T any](ar Archive, key string, v *T, format func(T) string, parse func(string) (T, error)) {
	ar.visit(key, textCodec[T]{v, format, parse})
}

type textCodec[T any] struct {
	v      *T
	format func(T) string
	parse  func(string) (T, error)
}

func (c textCodec[T]) decode(_ *Reader, n *tree.Node) error {
	if n.Kind != tree.String {
		return newError(CodeInvalidType, msgString)
	}
	t, err := c.parse(n.Str)
	if err != nil {
		return &Error{Code: CodeInvalidFormat, Message: err.Error(), Cause: err}
	}
	*c.v = t
	return nil
}

func (c textCodec[T]) encode(w *Writer) { w.b.String(c.format(*c.v)) }
