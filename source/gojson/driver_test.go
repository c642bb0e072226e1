package gojson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/ezjson"
	"github.com/reoring/ezjson/source/gojson"
)

type rec struct {
	N  int64
	U  uint64
	D  float64
	S  string
	VB []bool
}

func (r *rec) Describe(ar ezjson.Archive) {
	ar.Int64("n", &r.N)
	ar.Uint64("u", &r.U)
	ar.Float64("d", &r.D)
	ar.String("s", &r.S)
	ezjson.Values(ar, "vb", &r.VB)
}

func TestDriver_ReadsStrictJSON(t *testing.T) {
	in := `{"n": -5, "u": 18446744073709551615, "d": 2.5, "s": "é", "vb": [true, false], "extra": {"k": [null]}}`
	var r rec
	require.NoError(t, ezjson.Read([]byte(in), &r, ezjson.ReadOpt{Driver: gojson.Driver()}))
	assert.Equal(t, rec{N: -5, U: 18446744073709551615, D: 2.5, S: "é", VB: []bool{true, false}}, r)
}

func TestDriver_RejectsNonFiniteLiterals(t *testing.T) {
	var r rec
	err := ezjson.Read([]byte(`{"n": 1, "u": 1, "d": NaN, "s": "", "vb": []}`), &r, ezjson.ReadOpt{Driver: gojson.Driver()})
	e, ok := ezjson.AsError(err)
	require.True(t, ok)
	assert.Equal(t, ezjson.CodeParseError, e.Code)

	require.NoError(t, ezjson.Read([]byte(`{"n": 1, "u": 1, "d": NaN, "s": "", "vb": []}`), &r))
}

func TestDriver_KeysAndValues(t *testing.T) {
	src := gojson.Driver().NewBytes([]byte(`{"a": "b", "c": ["d"]}`))
	var kinds []ezjson.TokenKind
	for {
		tok, err := src.NextToken()
		if err != nil {
			break
		}
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []ezjson.TokenKind{
		ezjson.TokenBeginObject,
		ezjson.TokenKey, ezjson.TokenString,
		ezjson.TokenKey, ezjson.TokenBeginArray, ezjson.TokenString, ezjson.TokenEndArray,
		ezjson.TokenEndObject,
	}, kinds)
	assert.Equal(t, "go-json", gojson.Driver().Name())
}
