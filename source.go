package ezjson

import (
	"sync"

	eng "github.com/reoring/ezjson/internal/engine"
)

// TokenKind enumerates JSON token kinds produced by a Source.
type TokenKind = eng.Kind

const (
	TokenBeginObject = eng.KindBeginObject
	TokenEndObject   = eng.KindEndObject
	TokenBeginArray  = eng.KindBeginArray
	TokenEndArray    = eng.KindEndArray
	TokenKey         = eng.KindKey
	TokenString      = eng.KindString
	TokenNumber      = eng.KindNumber
	TokenBool        = eng.KindBool
	TokenNull        = eng.KindNull
)

// Token describes a token in the input stream. Number carries the literal
// text; NaN, Infinity and -Infinity are valid Number texts. Offset records the
// byte position when known (-1 otherwise).
type Token = eng.Token

// Source is a pull-based token stream over one document. NextToken returns
// io.EOF once the document is exhausted.
type Source interface {
	NextToken() (Token, error)
	Location() int64 // byte offset; -1 if unknown
}

// JSONDriver converts input bytes into a Source. The default driver is a
// lenient scanner that accepts the NaN/Infinity literals; the source/gojson
// and source/yaml packages provide alternatives.
type JSONDriver interface {
	NewBytes(b []byte) Source
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = defaultJSONDriver{}
)

// SetJSONDriver replaces the process-wide driver used when ReadOpt.Driver is
// nil; nil values are ignored. It is configuration meant to be set once at
// init time (see package source), not state carried between traversals.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the lenient built-in driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = defaultJSONDriver{}
	jsonDriverMu.Unlock()
}

func getJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

// DefaultDriver returns the built-in lenient driver.
func DefaultDriver() JSONDriver { return defaultJSONDriver{} }

type defaultJSONDriver struct{}

func (defaultJSONDriver) NewBytes(b []byte) Source { return eng.NewScanner(b) }
func (defaultJSONDriver) Name() string             { return "lenient" }
