// Package builder emits JSON text through a json-iterator Stream. Callers
// frame objects and arrays explicitly; the builder inserts separators and
// indentation, and writes empty containers as {} and [].
package builder

import (
	"errors"
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// MaxIndent is the widest supported indentation step.
const MaxIndent = 4

// One frozen config per indentation step; frozen configs are immutable and
// safe to share.
var apis = func() [MaxIndent + 1]jsoniter.API {
	var a [MaxIndent + 1]jsoniter.API
	for i := range a {
		a[i] = jsoniter.Config{IndentionStep: i}.Froze()
	}
	return a
}()

// ErrUnbalanced is returned by Bytes when a container was left open.
var ErrUnbalanced = errors.New("builder: unbalanced object/array framing")

type frame struct {
	array bool
	n     int // children written so far
}

// Builder accumulates one JSON document in memory.
type Builder struct {
	s     *jsoniter.Stream
	stack []frame
}

// New returns a Builder indenting by spaces per level; 0 is compact output.
func New(spaces int) *Builder {
	if spaces < 0 {
		spaces = 0
	}
	if spaces > MaxIndent {
		spaces = MaxIndent
	}
	return &Builder{s: jsoniter.NewStream(apis[spaces], nil, 512)}
}

// Depth returns the number of open containers.
func (b *Builder) Depth() int { return len(b.stack) }

func (b *Builder) BeginObject() {
	b.element()
	b.stack = append(b.stack, frame{})
}

func (b *Builder) EndObject() {
	if b.pop().n == 0 {
		b.s.WriteEmptyObject()
		return
	}
	b.s.WriteObjectEnd()
}

func (b *Builder) BeginArray() {
	b.element()
	b.stack = append(b.stack, frame{array: true})
}

func (b *Builder) EndArray() {
	if b.pop().n == 0 {
		b.s.WriteEmptyArray()
		return
	}
	b.s.WriteArrayEnd()
}

// Key writes an object member name; the next call must write its value.
func (b *Builder) Key(k string) {
	if n := len(b.stack); n > 0 && !b.stack[n-1].array {
		b.open(&b.stack[n-1])
	}
	b.s.WriteObjectField(k)
}

func (b *Builder) Bool(v bool) {
	b.element()
	b.s.WriteBool(v)
}

func (b *Builder) Int64(v int64) {
	b.element()
	b.s.WriteInt64(v)
}

func (b *Builder) Uint64(v uint64) {
	b.element()
	b.s.WriteUint64(v)
}

// Float64 writes v so that it reads back as a double: integral values keep a
// ".0" suffix and non-finite values use the bare NaN/Infinity literals.
func (b *Builder) Float64(v float64) {
	b.element()
	b.s.WriteRaw(FormatDouble(v))
}

func (b *Builder) String(v string) {
	b.element()
	b.s.WriteString(v)
}

// Bytes returns the document. It fails if framing is unbalanced or the
// stream recorded an error.
func (b *Builder) Bytes() ([]byte, error) {
	if b.Depth() != 0 {
		return nil, ErrUnbalanced
	}
	if b.s.Error != nil {
		return nil, b.s.Error
	}
	return b.s.Buffer(), nil
}

// element prepares an array slot for the next value. Inside objects the
// separator was already written by Key.
func (b *Builder) element() {
	if n := len(b.stack); n > 0 && b.stack[n-1].array {
		b.open(&b.stack[n-1])
	}
}

// open writes the deferred opening bracket before the first child, and a
// separator before every later one.
func (b *Builder) open(f *frame) {
	switch {
	case f.n > 0:
		b.s.WriteMore()
	case f.array:
		b.s.WriteArrayStart()
	default:
		b.s.WriteObjectStart()
	}
	f.n++
}

func (b *Builder) pop() frame {
	n := len(b.stack)
	if n == 0 {
		return frame{}
	}
	f := b.stack[n-1]
	b.stack = b.stack[:n-1]
	return f
}

// FormatDouble renders f in shortest round-trip form.
func FormatDouble(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	s := strconv.FormatFloat(f, format, -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
