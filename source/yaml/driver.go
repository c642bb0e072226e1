// Package yaml provides an ezjson.JSONDriver that reads YAML documents. The
// document is decoded into a yaml.Node tree up front and replayed as tokens,
// so every Describe-based type can also be read from YAML configuration.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	yv3 "gopkg.in/yaml.v3"

	"github.com/reoring/ezjson"
	"github.com/reoring/ezjson/internal/builder"
)

// Driver returns an ezjson.JSONDriver backed by gopkg.in/yaml.v3.
func Driver() ezjson.JSONDriver { return driverYAML{} }

type driverYAML struct{}

func (driverYAML) NewBytes(b []byte) ezjson.Source { return newSource(b) }
func (driverYAML) Name() string                    { return "yaml.v3" }

// yamlSource materializes tokens from a decoded node tree. A decode failure
// is reported by the first NextToken call.
type yamlSource struct {
	tokens []ezjson.Token
	idx    int
	err    error
}

func newSource(b []byte) *yamlSource {
	var doc yv3.Node
	dec := yv3.NewDecoder(bytes.NewReader(b))
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty input: no tokens, BuildTree reports the empty document.
			return &yamlSource{}
		}
		return &yamlSource{err: err}
	}
	s := &yamlSource{tokens: make([]ezjson.Token, 0, 64)}
	s.err = s.appendNode(&doc)
	return s
}

func (s *yamlSource) NextToken() (ezjson.Token, error) {
	if s.err != nil {
		return ezjson.Token{}, s.err
	}
	if s.idx >= len(s.tokens) {
		return ezjson.Token{}, io.EOF
	}
	t := s.tokens[s.idx]
	s.idx++
	return t, nil
}

func (s *yamlSource) Location() int64 { return -1 }

func (s *yamlSource) emit(t ezjson.Token) {
	t.Offset = -1
	s.tokens = append(s.tokens, t)
}

func (s *yamlSource) appendNode(n *yv3.Node) error {
	switch n.Kind {
	case yv3.DocumentNode:
		if len(n.Content) == 0 {
			return nil
		}
		return s.appendNode(n.Content[0])
	case yv3.AliasNode:
		return s.appendNode(n.Alias)
	case yv3.MappingNode:
		s.emit(ezjson.Token{Kind: ezjson.TokenBeginObject})
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yv3.ScalarNode {
				return errors.New("yaml: line " + strconv.Itoa(k.Line) + ": mapping keys must be scalars")
			}
			s.emit(ezjson.Token{Kind: ezjson.TokenKey, String: k.Value})
			if err := s.appendNode(n.Content[i+1]); err != nil {
				return err
			}
		}
		s.emit(ezjson.Token{Kind: ezjson.TokenEndObject})
	case yv3.SequenceNode:
		s.emit(ezjson.Token{Kind: ezjson.TokenBeginArray})
		for _, c := range n.Content {
			if err := s.appendNode(c); err != nil {
				return err
			}
		}
		s.emit(ezjson.Token{Kind: ezjson.TokenEndArray})
	case yv3.ScalarNode:
		return s.appendScalar(n)
	}
	return nil
}

func (s *yamlSource) appendScalar(n *yv3.Node) error {
	switch n.ShortTag() {
	case "!!null":
		s.emit(ezjson.Token{Kind: ezjson.TokenNull})
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return err
		}
		s.emit(ezjson.Token{Kind: ezjson.TokenBool, Bool: b})
	case "!!int":
		text, err := intText(n)
		if err != nil {
			return err
		}
		s.emit(ezjson.Token{Kind: ezjson.TokenNumber, Number: text})
	case "!!float":
		// Integral floats keep a fractional part so they stay doubles.
		var f float64
		if err := n.Decode(&f); err != nil {
			return err
		}
		s.emit(ezjson.Token{Kind: ezjson.TokenNumber, Number: builder.FormatDouble(f)})
	default:
		s.emit(ezjson.Token{Kind: ezjson.TokenString, String: n.Value})
	}
	return nil
}

// intText renders a YAML integer (decimal, 0x, 0o or 0b forms) as a JSON
// integer literal. Values beyond int64 go through uint64.
func intText(n *yv3.Node) (string, error) {
	var i int64
	if err := n.Decode(&i); err == nil {
		return strconv.FormatInt(i, 10), nil
	}
	var u uint64
	if err := n.Decode(&u); err != nil {
		return "", err
	}
	return strconv.FormatUint(u, 10), nil
}
