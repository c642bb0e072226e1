// Package gojson provides a strict ezjson.JSONDriver backed by
// github.com/goccy/go-json. It follows RFC 8259 exactly, so the NaN and
// Infinity literals are rejected.
package gojson

import (
	"bytes"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	"github.com/reoring/ezjson"
)

// Driver returns an ezjson.JSONDriver backed by goccy/go-json.
func Driver() ezjson.JSONDriver { return driverGoJSON{} }

type driverGoJSON struct{}

func (driverGoJSON) NewBytes(b []byte) ezjson.Source { return NewReader(bytes.NewReader(b)) }
func (driverGoJSON) Name() string                    { return "go-json" }

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
}

type source struct {
	dec   *j.Decoder
	stack []frame
}

// NewReader wraps an io.Reader into a token Source using go-json.
func NewReader(r io.Reader) ezjson.Source {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec}
}

func (s *source) Location() int64 { return s.dec.InputOffset() }

func (s *source) NextToken() (ezjson.Token, error) {
	off := s.dec.InputOffset()
	tok, err := s.dec.Token()
	if err != nil {
		return ezjson.Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, frame{kind: kindObject, expectingKey: true})
			return ezjson.Token{Kind: ezjson.TokenBeginObject, Offset: off}, nil
		case '}':
			s.pop()
			return ezjson.Token{Kind: ezjson.TokenEndObject, Offset: off}, nil
		case '[':
			s.stack = append(s.stack, frame{kind: kindArray})
			return ezjson.Token{Kind: ezjson.TokenBeginArray, Offset: off}, nil
		case ']':
			s.pop()
			return ezjson.Token{Kind: ezjson.TokenEndArray, Offset: off}, nil
		}
	case string:
		if n := len(s.stack); n > 0 {
			top := &s.stack[n-1]
			if top.kind == kindObject && top.expectingKey {
				top.expectingKey = false
				return ezjson.Token{Kind: ezjson.TokenKey, String: v, Offset: off}, nil
			}
		}
		s.valueDone()
		return ezjson.Token{Kind: ezjson.TokenString, String: v, Offset: off}, nil
	case bool:
		s.valueDone()
		return ezjson.Token{Kind: ezjson.TokenBool, Bool: v, Offset: off}, nil
	case j.Number:
		s.valueDone()
		return ezjson.Token{Kind: ezjson.TokenNumber, Number: string(v), Offset: off}, nil
	case float64:
		s.valueDone()
		return ezjson.Token{Kind: ezjson.TokenNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: off}, nil
	case nil:
		s.valueDone()
		return ezjson.Token{Kind: ezjson.TokenNull, Offset: off}, nil
	}
	s.valueDone()
	return ezjson.Token{Kind: ezjson.TokenNull, Offset: off}, nil
}

// pop closes the current container, which completes a member value when the
// parent is an object.
func (s *source) pop() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
	s.valueDone()
}

func (s *source) valueDone() {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.kind == kindObject && !top.expectingKey {
			top.expectingKey = true
		}
	}
}
