// Package tree holds the parsed form of a JSON document: a tree of typed
// nodes that the traversal engine queries by key and index.
package tree

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Kind is the type of a node.
type Kind uint8

const (
	Null Kind = iota
	Bool
	Int    // integer literal representable as int64
	Uint   // integer literal above math.MaxInt64 that fits in uint64
	Double // fraction/exponent literal, NaN, ±Infinity, or an integer too wide for 64 bits
	String
	Array
	Object
)

var kindNames = [...]string{"null", "bool", "int", "uint", "double", "string", "array", "object"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Member is one key/value pair of an object. Members keep document order.
type Member struct {
	Key   string
	Value *Node
}

// Node is a single JSON value.
type Node struct {
	Kind    Kind
	Bool    bool
	Int     int64
	Uint    uint64
	Double  float64
	Str     string
	Members []Member
	Elems   []*Node
}

func NewNull() *Node              { return &Node{Kind: Null} }
func NewBool(b bool) *Node        { return &Node{Kind: Bool, Bool: b} }
func NewString(s string) *Node    { return &Node{Kind: String, Str: s} }
func NewObject() *Node            { return &Node{Kind: Object} }
func NewArray() *Node             { return &Node{Kind: Array} }
func NewDouble(f float64) *Node   { return &Node{Kind: Double, Double: f} }
func NewInt(i int64) *Node        { return &Node{Kind: Int, Int: i} }
func NewUint(u uint64) *Node      { return &Node{Kind: Uint, Uint: u} }
func (n *Node) IsObject() bool    { return n != nil && n.Kind == Object }
func (n *Node) IsArray() bool     { return n != nil && n.Kind == Array }
func (n *Node) IsNumber() bool    { return n != nil && (n.Kind == Int || n.Kind == Uint || n.Kind == Double) }
func (n *Node) Len() int          { return len(n.Elems) }
func (n *Node) Index(i int) *Node { return n.Elems[i] }

// Member returns the value stored under key. When a key occurs more than once
// the first occurrence wins.
func (n *Node) Member(key string) (*Node, bool) {
	if n == nil || n.Kind != Object {
		return nil, false
	}
	for i := range n.Members {
		if n.Members[i].Key == key {
			return n.Members[i].Value, true
		}
	}
	return nil, false
}

// ErrNumberTooBig reports a literal whose magnitude exceeds float64.
var ErrNumberTooBig = errors.New("number too big to be stored in double")

// NewNumber classifies a number literal. Integer literals become Int when they
// fit in int64, Uint when they fit only in uint64, and Double otherwise.
func NewNumber(text string) (*Node, error) {
	switch text {
	case "NaN":
		return NewDouble(math.NaN()), nil
	case "Infinity":
		return NewDouble(math.Inf(1)), nil
	case "-Infinity":
		return NewDouble(math.Inf(-1)), nil
	}
	if !strings.ContainsAny(text, ".eE") {
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return NewInt(i), nil
		}
		if text != "" && text[0] != '-' {
			if u, err := strconv.ParseUint(text, 10, 64); err == nil {
				return NewUint(u), nil
			}
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		var ne *strconv.NumError
		if !errors.As(err, &ne) || ne.Err != strconv.ErrRange {
			return nil, errors.New("invalid number " + strconv.Quote(text))
		}
		// Underflow rounds toward zero and is accepted; overflow is not.
		if math.IsInf(f, 0) {
			return nil, ErrNumberTooBig
		}
	}
	return NewDouble(f), nil
}
