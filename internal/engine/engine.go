package engine

import (
	"io"

	"github.com/reoring/ezjson/internal/tree"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents a streaming token with approximate input offset.
// Number holds the literal text, including the non-standard NaN, Infinity
// and -Infinity literals.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// BuildTree consumes every token of src and returns the parsed document.
// Exactly one root value is accepted; trailing tokens are a syntax error.
func BuildTree(src TokenSource) (*tree.Node, error) {
	tok, err := src.NextToken()
	if err != nil {
		if err == io.EOF {
			return nil, &SyntaxError{Offset: src.Location(), Msg: "the document is empty"}
		}
		return nil, err
	}
	root, err := buildValue(src, tok)
	if err != nil {
		return nil, err
	}
	if tok, err := src.NextToken(); err == nil {
		return nil, &SyntaxError{Offset: tok.Offset, Msg: "the document root must not be followed by other values"}
	} else if err != io.EOF {
		return nil, err
	}
	return root, nil
}

func buildValue(src TokenSource, tok Token) (*tree.Node, error) {
	switch tok.Kind {
	case KindBeginObject:
		return buildObject(src)
	case KindBeginArray:
		return buildArray(src)
	case KindString:
		return tree.NewString(tok.String), nil
	case KindNumber:
		n, err := tree.NewNumber(tok.Number)
		if err != nil {
			return nil, &SyntaxError{Offset: tok.Offset, Msg: err.Error()}
		}
		return n, nil
	case KindBool:
		return tree.NewBool(tok.Bool), nil
	case KindNull:
		return tree.NewNull(), nil
	default:
		return nil, io.ErrUnexpectedEOF
	}
}

func buildObject(src TokenSource) (*tree.Node, error) {
	obj := tree.NewObject()
	for {
		tok, err := next(src)
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndObject {
			return obj, nil
		}
		if tok.Kind != KindKey {
			return nil, io.ErrUnexpectedEOF
		}
		vt, err := next(src)
		if err != nil {
			return nil, err
		}
		v, err := buildValue(src, vt)
		if err != nil {
			return nil, err
		}
		obj.Members = append(obj.Members, tree.Member{Key: tok.String, Value: v})
	}
}

func buildArray(src TokenSource) (*tree.Node, error) {
	arr := tree.NewArray()
	for {
		tok, err := next(src)
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndArray {
			return arr, nil
		}
		v, err := buildValue(src, tok)
		if err != nil {
			return nil, err
		}
		arr.Elems = append(arr.Elems, v)
	}
}

// next reads a token inside a container, where end of input is never legal.
func next(src TokenSource) (Token, error) {
	tok, err := src.NextToken()
	if err == io.EOF {
		return Token{}, io.ErrUnexpectedEOF
	}
	return tok, err
}
