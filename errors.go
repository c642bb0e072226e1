package ezjson

import (
	"errors"
	"strconv"
	"strings"

	eng "github.com/reoring/ezjson/internal/engine"
)

// Error codes (exported consts for IDE completion and type safety by convention).
// The code is informational; Error() text is what callers display.
const (
	CodeParseError    = "parse_error"
	CodeRootShape     = "root_shape"
	CodeKeyNotFound   = "key_not_found"
	CodeInvalidType   = "invalid_type"
	CodeOutOfRange    = "out_of_range"
	CodeInvalidEnum   = "invalid_enum"
	CodeExpectedArray = "expected_array"
	CodeObjectTooNew  = "object_too_new"
	CodeInvalidFormat = "invalid_format"
	CodeFileIO        = "file_io"
	CodeArchiveUsed   = "archive_used"
	// Parse-phase enforcement (see ReadOpt).
	CodeDuplicateKey = "duplicate_key"
	CodeMaxDepth     = "max_depth"
	CodeTruncated    = "truncated"
)

// Terminal messages. Path segments are prepended as a failure unwinds; the
// message itself is never rewritten.
const (
	msgKeyNotFound   = "key not found"
	msgObject        = "expected an object"
	msgArray         = "expected an array"
	msgBool          = "expected a bool"
	msgInt           = "expected an integer"
	msgInt8          = "expected an int8"
	msgInt16         = "expected an int16"
	msgInt32         = "expected an int32"
	msgInt64         = "expected an int64"
	msgUint          = "expected a uint"
	msgUint8         = "expected a uint8"
	msgUint16        = "expected a uint16"
	msgUint32        = "expected a uint32"
	msgUint64        = "expected a uint64"
	msgDouble        = "expected a double"
	msgString        = "expected a string"
	msgTooNew        = "object too new"
	msgRootObject    = "root must be an object"
	msgRootArray     = "root must be an array"
	msgFileOpen      = "file opening failed"
	msgArchiveReused = "archive already used"
)

// Segment is one step of an error path: an object key or a 0-based index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// Key returns a key segment.
func Key(k string) Segment { return Segment{Key: k} }

// Index returns an index segment.
func Index(i int) Segment { return Segment{Index: i, IsIndex: true} }

// String renders ["key"] or [index].
func (s Segment) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return `["` + s.Key + `"]`
}

// Error is the single failure a root-level operation reports.
type Error struct {
	Code    string    // One of the codes listed above.
	Path    []Segment // Outermost first.
	Message string
	Cause   error // Optional: underlying error.
}

// Error renders the path segments followed by the message, for example
// ["o"]["v_i"][1] expected an integer.
func (e *Error) Error() string {
	if len(e.Path) == 0 {
		return e.Message
	}
	b := &strings.Builder{}
	for _, s := range e.Path {
		b.WriteString(s.String())
	}
	b.WriteByte(' ')
	b.WriteString(e.Message)
	return b.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// Pointer renders Path as an RFC 6901 JSON Pointer ("/" for the root).
func (e *Error) Pointer() string {
	if len(e.Path) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, s := range e.Path {
		b.WriteByte('/')
		if s.IsIndex {
			b.WriteString(strconv.Itoa(s.Index))
		} else {
			b.WriteString(eng.EscapePointerToken(s.Key))
		}
	}
	return b.String()
}

// AsError extracts *Error from err using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func newError(code, msg string) *Error { return &Error{Code: code, Message: msg} }

// prepend returns err with seg added as its outermost path segment.
func prepend(seg Segment, err error) error {
	e, ok := err.(*Error)
	if !ok {
		e = &Error{Code: CodeInvalidFormat, Message: err.Error(), Cause: err}
	}
	path := make([]Segment, 0, len(e.Path)+1)
	path = append(path, seg)
	path = append(path, e.Path...)
	out := *e
	out.Path = path
	return &out
}

// toError maps driver and enforcement failures onto *Error.
func toError(err error) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return &Error{Code: ie.Code, Message: ie.Message + " at " + ie.Path, Cause: err}
	}
	return &Error{Code: CodeParseError, Message: err.Error(), Cause: err}
}
