package ezjson

import (
	"github.com/reoring/ezjson/internal/builder"
)

// Writer prints values as JSON text. A Writer produces exactly one document.
type Writer struct {
	fields
	b    *builder.Builder
	used bool
}

// NewWriter returns a Writer that formats its document with indent.
func NewWriter(indent Indent) *Writer {
	w := &Writer{b: builder.New(indent.Spaces())}
	w.fields = fields{w}
	return w
}

func (w *Writer) Reading() bool { return false }

// Err always returns nil: writing a field cannot fail. Stream errors are
// reported by Encode.
func (w *Writer) Err() error { return nil }

// Since returns w itself; writers emit every declared field.
func (w *Writer) Since(uint) Archive { return w }

// Encode prints v as the document root.
func (w *Writer) Encode(v Describer) ([]byte, error) {
	return w.encodeRoot(objectCodec{v})
}

func (w *Writer) encodeRoot(c codec) ([]byte, error) {
	if w.used {
		return nil, newError(CodeArchiveUsed, msgArchiveReused)
	}
	w.used = true
	c.encode(w)
	out, err := w.b.Bytes()
	if err != nil {
		return nil, &Error{Code: CodeInvalidFormat, Message: err.Error(), Cause: err}
	}
	return out, nil
}

func (w *Writer) visit(key string, c codec) {
	w.b.Key(key)
	c.encode(w)
}

// object frames v, writing the version tag ahead of any field.
func (w *Writer) object(v Describer) {
	w.b.BeginObject()
	if ver := objectVersion(v); ver > 0 {
		w.b.Key(VersionKey)
		w.b.Uint64(uint64(ver))
	}
	v.Describe(w)
	w.b.EndObject()
}
