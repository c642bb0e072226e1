package ezjson

import (
	"log/slog"

	eng "github.com/reoring/ezjson/internal/engine"
)

// Indent selects the output layout of writers.
type Indent int

const (
	TwoSpaces   Indent = iota // Default: newline per member, two spaces per level.
	Compact                   // No newlines or padding.
	OneSpace
	ThreeSpaces
	FourSpaces
)

// Spaces returns the number of spaces per nesting level (0 for Compact).
func (i Indent) Spaces() int {
	switch i {
	case Compact:
		return 0
	case OneSpace:
		return 1
	case ThreeSpaces:
		return 3
	case FourSpaces:
		return 4
	default:
		return 2
	}
}

// IndentOf maps a space count (0-4) to an Indent; other counts yield
// TwoSpaces and false.
func IndentOf(spaces int) (Indent, bool) {
	switch spaces {
	case 0:
		return Compact, true
	case 1:
		return OneSpace, true
	case 2:
		return TwoSpaces, true
	case 3:
		return ThreeSpaces, true
	case 4:
		return FourSpaces, true
	}
	return TwoSpaces, false
}

// Severity expresses how a parse-phase finding is handled.
type Severity int

const (
	Ignore Severity = iota
	Warn            // Log through ReadOpt.Logger and continue.
	Fail            // Fail the read.
)

// ReadOpt bundles reading options. Entry points take a variadic ReadOpt and
// use the last one supplied.
type ReadOpt struct {
	// Driver turns input bytes into tokens. Nil selects the driver installed
	// with SetJSONDriver.
	Driver JSONDriver
	// MaxDepth limits object/array nesting (0 = unlimited).
	MaxDepth int
	// MaxBytes limits the input size (0 = unlimited).
	MaxBytes int64
	// OnDuplicateKey controls repeated member names. With Ignore the first
	// occurrence is the one that is read.
	OnDuplicateKey Severity
	// Logger receives duplicate-key warnings and file operation traces.
	Logger *slog.Logger
}

func (o ReadOpt) driver() JSONDriver {
	if o.Driver == nil {
		return getJSONDriver()
	}
	return o.Driver
}

func (o ReadOpt) enforceOptions() eng.EnforceOptions {
	eo := eng.EnforceOptions{MaxDepth: o.MaxDepth, MaxBytes: o.MaxBytes}
	switch o.OnDuplicateKey {
	case Fail:
		eo.OnDuplicate = eng.DupError
	case Warn:
		eo.OnDuplicate = eng.DupWarn
		if o.Logger != nil {
			lg := o.Logger
			eo.IssueSink = func(si eng.SimpleIssue) {
				lg.Warn(si.Message, "code", si.Code, "path", si.Path)
			}
		}
	}
	return eo
}
