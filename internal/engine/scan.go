package engine

import (
	"fmt"
	"io"
	"unicode/utf8"

	j "github.com/goccy/go-json"
)

// SyntaxError describes malformed input. Msg is reported verbatim to callers.
type SyntaxError struct {
	Offset int64
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.Msg, e.Offset)
}

type scanState uint8

const (
	stValue       scanState = iota // any value
	stFirstKey                     // member name or '}'
	stKey                          // member name
	stAfterMember                  // ',' or '}'
	stFirstElem                    // value or ']'
	stAfterElem                    // ',' or ']'
	stEnd                          // end of input only
)

// scanner is a pull tokenizer over a complete JSON text. Besides standard
// JSON it accepts the NaN, Infinity and -Infinity number literals.
type scanner struct {
	data  []byte
	pos   int
	state scanState
	stack []byte // '{' or '[' per open container
}

// NewScanner returns a TokenSource over data that accepts NaN and ±Infinity.
func NewScanner(data []byte) TokenSource {
	return &scanner{data: data}
}

func (s *scanner) Location() int64 { return int64(s.pos) }

func (s *scanner) NextToken() (Token, error) {
	for {
		s.skipSpace()
		if s.pos >= len(s.data) {
			if s.state == stEnd {
				return Token{}, io.EOF
			}
			if s.state == stValue && len(s.stack) == 0 {
				return Token{}, io.EOF
			}
			return Token{}, s.errorf("unexpected end of input")
		}
		c := s.data[s.pos]
		switch s.state {
		case stEnd:
			return Token{}, s.errorf("the document root must not be followed by other values")
		case stFirstKey, stKey:
			if c == '}' && s.state == stFirstKey {
				return s.closeContainer(KindEndObject), nil
			}
			if c != '"' {
				return Token{}, s.errorf("missing a name for object member")
			}
			off := int64(s.pos)
			key, err := s.readString()
			if err != nil {
				return Token{}, err
			}
			s.skipSpace()
			if s.pos >= len(s.data) || s.data[s.pos] != ':' {
				return Token{}, s.errorf("missing a colon after a name of object member")
			}
			s.pos++
			s.state = stValue
			return Token{Kind: KindKey, String: key, Offset: off}, nil
		case stAfterMember:
			switch c {
			case ',':
				s.pos++
				s.state = stKey
				continue
			case '}':
				return s.closeContainer(KindEndObject), nil
			}
			return Token{}, s.errorf("missing a comma or '}' after an object member")
		case stAfterElem:
			switch c {
			case ',':
				s.pos++
				s.state = stValue
				continue
			case ']':
				return s.closeContainer(KindEndArray), nil
			}
			return Token{}, s.errorf("missing a comma or ']' after an array element")
		case stFirstElem:
			if c == ']' {
				return s.closeContainer(KindEndArray), nil
			}
		}
		return s.readValue()
	}
}

func (s *scanner) readValue() (Token, error) {
	off := int64(s.pos)
	switch c := s.data[s.pos]; {
	case c == '{':
		s.pos++
		s.stack = append(s.stack, '{')
		s.state = stFirstKey
		return Token{Kind: KindBeginObject, Offset: off}, nil
	case c == '[':
		s.pos++
		s.stack = append(s.stack, '[')
		s.state = stFirstElem
		return Token{Kind: KindBeginArray, Offset: off}, nil
	case c == '"':
		str, err := s.readString()
		if err != nil {
			return Token{}, err
		}
		s.afterValue()
		return Token{Kind: KindString, String: str, Offset: off}, nil
	case c == 't':
		if err := s.literal("true"); err != nil {
			return Token{}, err
		}
		return Token{Kind: KindBool, Bool: true, Offset: off}, nil
	case c == 'f':
		if err := s.literal("false"); err != nil {
			return Token{}, err
		}
		return Token{Kind: KindBool, Bool: false, Offset: off}, nil
	case c == 'n':
		if err := s.literal("null"); err != nil {
			return Token{}, err
		}
		return Token{Kind: KindNull, Offset: off}, nil
	case c == 'N':
		if err := s.literal("NaN"); err != nil {
			return Token{}, err
		}
		return Token{Kind: KindNumber, Number: "NaN", Offset: off}, nil
	case c == 'I':
		if err := s.literal("Infinity"); err != nil {
			return Token{}, err
		}
		return Token{Kind: KindNumber, Number: "Infinity", Offset: off}, nil
	case c == '-' && s.pos+1 < len(s.data) && s.data[s.pos+1] == 'I':
		s.pos++
		if err := s.literal("Infinity"); err != nil {
			return Token{}, err
		}
		return Token{Kind: KindNumber, Number: "-Infinity", Offset: off}, nil
	case c == '-' || ('0' <= c && c <= '9'):
		num, err := s.readNumber()
		if err != nil {
			return Token{}, err
		}
		s.afterValue()
		return Token{Kind: KindNumber, Number: num, Offset: off}, nil
	}
	return Token{}, s.errorf("invalid value")
}

func (s *scanner) literal(word string) error {
	if len(s.data)-s.pos < len(word) || string(s.data[s.pos:s.pos+len(word)]) != word {
		return s.errorf("invalid value")
	}
	s.pos += len(word)
	s.afterValue()
	return nil
}

func (s *scanner) closeContainer(k Kind) Token {
	off := int64(s.pos)
	s.pos++
	s.stack = s.stack[:len(s.stack)-1]
	s.afterValue()
	return Token{Kind: k, Offset: off}
}

func (s *scanner) afterValue() {
	if len(s.stack) == 0 {
		s.state = stEnd
		return
	}
	if s.stack[len(s.stack)-1] == '{' {
		s.state = stAfterMember
	} else {
		s.state = stAfterElem
	}
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.data) {
		switch s.data[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

// readString consumes a quoted string starting at s.pos. The literal is
// validated here and unquoted by go-json.
func (s *scanner) readString() (string, error) {
	start := s.pos
	i := s.pos + 1
	escaped := false
	for ; i < len(s.data); i++ {
		c := s.data[i]
		switch {
		case c == '\\':
			if i+1 >= len(s.data) {
				return "", s.errorAt(i, "missing a closing quotation mark in string")
			}
			switch s.data[i+1] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				i++
			case 'u':
				if i+5 >= len(s.data) || !isHex4(s.data[i+2:i+6]) {
					return "", s.errorAt(i, "incorrect hex digit after \\u escape in string")
				}
				i += 5
			default:
				return "", s.errorAt(i, "invalid escape character in string")
			}
			escaped = true
		case c == '"':
			raw := s.data[start : i+1]
			s.pos = i + 1
			if !utf8.Valid(raw) {
				return "", s.errorAt(start, "invalid encoding in string")
			}
			if !escaped {
				return string(raw[1 : len(raw)-1]), nil
			}
			var out string
			if err := j.Unmarshal(raw, &out); err != nil {
				return "", s.errorAt(start, "invalid string: "+err.Error())
			}
			return out, nil
		case c < 0x20:
			return "", s.errorAt(i, "invalid control character in string")
		}
	}
	return "", s.errorAt(len(s.data), "missing a closing quotation mark in string")
}

func (s *scanner) readNumber() (string, error) {
	start := s.pos
	i := s.pos
	if s.data[i] == '-' {
		i++
	}
	switch {
	case i < len(s.data) && s.data[i] == '0':
		i++
	case i < len(s.data) && '1' <= s.data[i] && s.data[i] <= '9':
		i = skipDigits(s.data, i)
	default:
		return "", s.errorAt(i, "invalid value")
	}
	if i < len(s.data) && s.data[i] == '.' {
		i++
		d := skipDigits(s.data, i)
		if d == i {
			return "", s.errorAt(i, "missing fraction part in number")
		}
		i = d
	}
	if i < len(s.data) && (s.data[i] == 'e' || s.data[i] == 'E') {
		i++
		if i < len(s.data) && (s.data[i] == '+' || s.data[i] == '-') {
			i++
		}
		d := skipDigits(s.data, i)
		if d == i {
			return "", s.errorAt(i, "missing exponent in number")
		}
		i = d
	}
	s.pos = i
	return string(s.data[start:i]), nil
}

func skipDigits(b []byte, i int) int {
	for i < len(b) && '0' <= b[i] && b[i] <= '9' {
		i++
	}
	return i
}

func isHex4(b []byte) bool {
	for _, c := range b {
		switch {
		case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}

func (s *scanner) errorf(msg string) error { return s.errorAt(s.pos, msg) }

func (s *scanner) errorAt(pos int, msg string) error {
	return &SyntaxError{Offset: int64(pos), Msg: msg}
}
