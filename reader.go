package ezjson

import (
	"math"

	"github.com/reoring/ezjson/internal/engine"
	"github.com/reoring/ezjson/internal/tree"
)

// frame is one level of object nesting: the object's node and the version it
// was tagged with.
type frame struct {
	node    *tree.Node
	version uint
}

// Reader populates values from a parsed document. A Reader is bound to one
// document and decodes exactly one root value.
type Reader struct {
	fields
	root  *tree.Node
	stack []frame
	err   error
	used  bool
}

// NewReader parses data and returns a Reader bound to the document root.
// Parse failures and ReadOpt limit violations are returned as *Error.
func NewReader(data []byte, opts ...ReadOpt) (*Reader, error) {
	var opt ReadOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return nil, newError(CodeTruncated, "max bytes exceeded")
	}
	src := opt.driver().NewBytes(data)
	if eo := opt.enforceOptions(); eo.Enabled() {
		src = engine.WrapWithEnforcement(src, eo)
	}
	root, err := engine.BuildTree(src)
	if err != nil {
		return nil, toError(err)
	}
	r := &Reader{root: root}
	r.fields = fields{r}
	return r, nil
}

func (r *Reader) Reading() bool { return true }
func (r *Reader) Err() error    { return r.err }

// Since returns a view that skips fields introduced after the version of the
// object currently being read.
func (r *Reader) Since(version uint) Archive {
	if version == 0 {
		return r
	}
	return newGated(r, version)
}

// Decode populates v from the document root, which must be an object.
func (r *Reader) Decode(v Describer) error {
	return r.decodeRoot(tree.Object, objectCodec{v})
}

// Depth returns the current object nesting depth; it is 0 outside Decode.
func (r *Reader) Depth() int { return len(r.stack) }

func (r *Reader) decodeRoot(kind tree.Kind, c codec) error {
	if r.used {
		return newError(CodeArchiveUsed, msgArchiveReused)
	}
	r.used = true
	if r.root.Kind != kind {
		if kind == tree.Array {
			return newError(CodeRootShape, msgRootArray)
		}
		return newError(CodeRootShape, msgRootObject)
	}
	if err := c.decode(r, r.root); err != nil {
		r.err = err
	}
	return r.err
}

func (r *Reader) visit(key string, c codec) {
	if r.err != nil {
		return
	}
	n, ok := r.stack[len(r.stack)-1].node.Member(key)
	if !ok {
		r.err = prepend(Key(key), newError(CodeKeyNotFound, msgKeyNotFound))
		return
	}
	if err := c.decode(r, n); err != nil {
		r.err = prepend(Key(key), err)
	}
}

// object reads n into v inside a new frame. The frame is popped before the
// failure, if any, reaches the enclosing frame.
func (r *Reader) object(n *tree.Node, v Describer) error {
	if n.Kind != tree.Object {
		return newError(CodeInvalidType, msgObject)
	}
	ver, err := taggedVersion(n)
	if err != nil {
		return prepend(Key(VersionKey), err)
	}
	if ver > objectVersion(v) {
		return prepend(Key(VersionKey), newError(CodeObjectTooNew, msgTooNew))
	}
	r.stack = append(r.stack, frame{node: n, version: ver})
	defer func() { r.stack = r.stack[:len(r.stack)-1] }()
	v.Describe(r)
	return r.err
}

func (r *Reader) frameVersion() uint {
	if len(r.stack) == 0 {
		return 0
	}
	return r.stack[len(r.stack)-1].version
}

// taggedVersion reads the version tag of an object node. A missing or
// non-numeric tag means version 0; negative integers also read as 0. A double
// tag must be integral and non-negative.
func taggedVersion(n *tree.Node) (uint, error) {
	t, ok := n.Member(VersionKey)
	if !ok || !t.IsNumber() {
		return 0, nil
	}
	switch t.Kind {
	case tree.Int:
		if t.Int > 0 {
			return uint(t.Int), nil
		}
	case tree.Uint:
		return uint(t.Uint), nil
	case tree.Double:
		f := t.Double
		if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f != math.Trunc(f) {
			return 0, newError(CodeInvalidType, msgUint)
		}
		if f >= math.MaxUint64 {
			return math.MaxUint, nil
		}
		return uint(f), nil
	}
	return 0, nil
}
