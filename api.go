package ezjson

import (
	"github.com/reoring/ezjson/internal/tree"
)

// Read parses data and populates v. The document root must be an object.
func Read(data []byte, v Describer, opts ...ReadOpt) error {
	r, err := NewReader(data, opts...)
	if err != nil {
		return err
	}
	return r.Decode(v)
}

// Write prints v as a JSON object.
func Write(v Describer, indent Indent) ([]byte, error) {
	return NewWriter(indent).Encode(v)
}

// ReadObjects parses a root array of objects into *v, replacing its contents.
func ReadObjects[T any, PT DescriberPtr[T]](data []byte, v *[]T, opts ...ReadOpt) error {
	return readArray(data, objectsCodec[T, PT]{v}, opts)
}

// WriteObjects prints v as a root array of objects.
func WriteObjects[T any, PT DescriberPtr[T]](v []T, indent Indent) ([]byte, error) {
	return NewWriter(indent).encodeRoot(objectsCodec[T, PT]{&v})
}

// ReadValues parses a root array of primitive values into *v.
func ReadValues[T Value](data []byte, v *[]T, opts ...ReadOpt) error {
	return readArray(data, valuesCodec[T]{v}, opts)
}

// WriteValues prints v as a root array of primitive values.
func WriteValues[T Value](v []T, indent Indent) ([]byte, error) {
	return NewWriter(indent).encodeRoot(valuesCodec[T]{&v})
}

// ReadEnums parses a root array of enum names into *v. n is the exclusive
// upper bound of E and name maps a value to its wire text.
func ReadEnums[E Enumerable](data []byte, v *[]E, n E, name func(E) string, opts ...ReadOpt) error {
	return readArray(data, enumsCodec[E]{v, n, name}, opts)
}

// WriteEnums prints v as a root array of enum names.
func WriteEnums[E Enumerable](v []E, name func(E) string, indent Indent) ([]byte, error) {
	return NewWriter(indent).encodeRoot(enumsCodec[E]{v: &v, name: name})
}

func readArray(data []byte, c codec, opts []ReadOpt) error {
	r, err := NewReader(data, opts...)
	if err != nil {
		return err
	}
	return r.decodeRoot(tree.Array, c)
}
