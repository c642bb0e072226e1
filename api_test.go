package ezjson_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/ezjson"
)

type thing int

const (
	thing0 thing = iota
	thing1
	thing2
	thingN
)

func (t thing) String() string { return "enum thing " + strconv.Itoa(int(t)) }

type B struct {
	X  int
	S  string
	VI []int
}

func (b *B) Describe(ar ezjson.Archive) {
	ar.Int("x", &b.X)
	ar.String("s", &b.S)
	ezjson.Values(ar, "v_i", &b.VI)
}

type A struct {
	B  bool
	D  float64
	I  int
	O  B
	ET thing
	VO []B
}

func (a *A) Describe(ar ezjson.Archive) {
	ar.Bool("b", &a.B)
	ar.Float64("d", &a.D)
	ar.Int("i", &a.I)
	ar.Object("o", &a.O)
	ezjson.Enum(ar, "et", &a.ET, thingN, thing.String)
	ezjson.Objects(ar, "v_o", &a.VO)
}

const canonicalA = `{
  "b": true,
  "d": 3.14159265358979,
  "i": 2147483648,
  "o": {
    "x": 8,
    "s": "a string",
    "v_i": [
      1,
      2,
      3
    ]
  },
  "et": "enum thing 1",
  "v_o": [
    {
      "x": 65535,
      "s": "a string",
      "v_i": []
    },
    {
      "x": 65534,
      "s": "b string",
      "v_i": [
        3
      ]
    }
  ]
}`

func TestRead_Write_CanonicalRoundtrip(t *testing.T) {
	var a A
	require.NoError(t, ezjson.Read([]byte(canonicalA), &a))

	assert.True(t, a.B)
	assert.Equal(t, 3.14159265358979, a.D)
	assert.Equal(t, 2147483648, a.I)
	assert.Equal(t, B{X: 8, S: "a string", VI: []int{1, 2, 3}}, a.O)
	assert.Equal(t, thing1, a.ET)
	require.Len(t, a.VO, 2)
	assert.Empty(t, a.VO[0].VI)
	assert.Equal(t, []int{3}, a.VO[1].VI)

	out, err := ezjson.Write(&a, ezjson.TwoSpaces)
	require.NoError(t, err)
	assert.Equal(t, canonicalA, string(out))
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"root array", `[]`, "root must be an object"},
		{"bool from number", `{"b": 0, "d": NaN, "i": 9, "o": {"x": 8, "s": "s", "v_i": [1, 2, 3]}, "et": "enum thing 0"}`, `["b"] expected a bool`},
		{"bool from object", `{"b": {"grr": true}, "d": 4.4, "i": 9, "o": {"x": 8, "s": "s", "v_i": [1, 2, 3]}, "et": "enum thing 0"}`, `["b"] expected a bool`},
		{"int from bool", `{"b": false, "d": 6.6, "i": true, "o": {"x": 8, "s": "s", "v_i": [1, 2, 3]}, "et": "enum thing 0"}`, `["i"] expected an integer`},
		{"object from number", `{"b": false, "d": 8.8, "i": 1000, "o": 7, "et": "enum thing 0"}`, `["o"] expected an object`},
		{"first key missing", `{"i": true, "d": 8.8, "o": {"x": 8, "s": "s", "v_i": [1, 2, 3]}, "et": "enum thing 0"}`, `["b"] key not found`},
		{"object missing", `{"b": false, "d": 8.8, "i": 7, "et": "enum thing 0"}`, `["o"] key not found`},
		{"enum from object", `{"b": false, "d": 1.234567890123, "i": 7, "o": {"x": 8, "s": "s", "v_i": [1, 2, 3]}, "et": {"grr": true}}`, `["et"] expected a string`},
		{"bad enum", `{"b": false, "d": 1.234567890123, "i": 7, "o": {"x": 8, "s": "s", "v_i": [1, 2, 3]}, "et": "not an enum thing"}`, `["et"] bad enum value: "not an enum thing"`},
		{"array from double", `{"b": false, "d": 1.234567890123, "i": 7, "o": {"x": 8, "s": "s", "v_i": 0.1}, "et": "not an enum thing"}`, `["o"]["v_i"] expected an array`},
		{"array element", `{"b": false, "d": 1.234567890123, "i": 7, "o": {"x": 8, "s": "s", "v_i": [7, 0.1]}, "et": "not an enum thing"}`, `["o"]["v_i"][1] expected an integer`},
		{"sequence missing", `{"b": true, "d": 1.234567890123, "i": 9, "o": {"x": 8, "s": "a string", "v_i": []}, "et": "enum thing 1"}`, `["v_o"] key not found`},
		{"sequence element kind", `{"b": true, "d": 1.234567890123, "i": 9, "o": {"x": 8, "s": "a string", "v_i": []}, "et": "enum thing 1", "v_o": [{"x": 65535, "s": "a string", "v_i": []}, true]}`, `["v_o"][1] expected an object`},
		{"nested element field", `{"b": true, "d": 1.234567890123, "i": 9, "o": {"x": 8, "s": "a string", "v_i": []}, "et": "enum thing 1", "v_o": [{"x": 65535, "s": 3, "v_i": []}]}`, `["v_o"][0]["s"] expected a string`},
		{"double from integer", `{"b": true, "d": 1, "i": 9}`, `["d"] expected a double`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a A
			err := ezjson.Read([]byte(tt.json), &a)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestRead_ErrorCodes(t *testing.T) {
	tests := []struct {
		json string
		code string
	}{
		{`[]`, ezjson.CodeRootShape},
		{`{"b": 1}`, ezjson.CodeInvalidType},
		{`{"a": 1}`, ezjson.CodeKeyNotFound},
		{`{"b": true, "d": 1.5, "i": 99999999999999999999}`, ezjson.CodeInvalidType},
		{`{"b": true, "d": 1.5, "i": 18446744073709551615}`, ezjson.CodeOutOfRange},
		{`{"b": true, "d": 1.5, "i": 1, "o": {"x": 1, "s": "", "v_i": {}}}`, ezjson.CodeExpectedArray},
		{`{"b": true, "d": 1.5, "i": 1, "o": {"x": 1, "s": "", "v_i": []}, "et": "x"}`, ezjson.CodeInvalidEnum},
		{`{"b": tru}`, ezjson.CodeParseError},
	}
	for _, tt := range tests {
		var a A
		err := ezjson.Read([]byte(tt.json), &a)
		e, ok := ezjson.AsError(err)
		require.True(t, ok, tt.json)
		assert.Equal(t, tt.code, e.Code, tt.json)
	}
}

func TestRead_ParseErrorHasNoPath(t *testing.T) {
	var a A
	err := ezjson.Read([]byte(`{"b": true,}`), &a)
	e, ok := ezjson.AsError(err)
	require.True(t, ok)
	assert.Equal(t, ezjson.CodeParseError, e.Code)
	assert.Empty(t, e.Path)
	assert.Equal(t, "missing a name for object member (offset 11)", err.Error())
}

func TestRead_UnknownKeysIgnored(t *testing.T) {
	var b B
	require.NoError(t, ezjson.Read([]byte(`{"zzz": [1, {}], "x": 1, "s": "", "v_i": []}`), &b))
	assert.Equal(t, 1, b.X)
}

func TestRead_SequenceReplacesContents(t *testing.T) {
	b := B{VI: []int{9, 9, 9, 9}}
	require.NoError(t, ezjson.Read([]byte(`{"x": 1, "s": "", "v_i": [5]}`), &b))
	assert.Equal(t, []int{5}, b.VI)

	b.VI = []int{9, 9}
	require.NoError(t, ezjson.Read([]byte(`{"x": 1, "s": "", "v_i": []}`), &b))
	assert.NotNil(t, b.VI)
	assert.Empty(t, b.VI)
}

func TestRead_SequenceKeepsElementsBeforeFailure(t *testing.T) {
	var b B
	err := ezjson.Read([]byte(`{"x": 1, "s": "", "v_i": [1, 2, "3", 4]}`), &b)
	require.Error(t, err)
	assert.Equal(t, `["v_i"][2] expected an integer`, err.Error())
	assert.Equal(t, []int{1, 2}, b.VI)
}

func TestRead_FieldsBeforeFailureAreAssigned(t *testing.T) {
	var a A
	err := ezjson.Read([]byte(`{"b": true, "d": 2.5, "i": "x"}`), &a)
	require.Error(t, err)
	assert.True(t, a.B)
	assert.Equal(t, 2.5, a.D)
	assert.Zero(t, a.I)
}

func TestWrite_ZeroValue(t *testing.T) {
	var a A
	out, err := ezjson.Write(&a, ezjson.Compact)
	require.NoError(t, err)
	assert.Equal(t, `{"b":false,"d":0.0,"i":0,"o":{"x":0,"s":"","v_i":[]},"et":"enum thing 0","v_o":[]}`, string(out))
}

func TestWrite_Indents(t *testing.T) {
	b := B{X: 1, S: "s", VI: []int{2}}
	tests := []struct {
		indent ezjson.Indent
		want   string
	}{
		{ezjson.Compact, `{"x":1,"s":"s","v_i":[2]}`},
		{ezjson.OneSpace, "{\n \"x\": 1,\n \"s\": \"s\",\n \"v_i\": [\n  2\n ]\n}"},
		{ezjson.TwoSpaces, "{\n  \"x\": 1,\n  \"s\": \"s\",\n  \"v_i\": [\n    2\n  ]\n}"},
		{ezjson.ThreeSpaces, "{\n   \"x\": 1,\n   \"s\": \"s\",\n   \"v_i\": [\n      2\n   ]\n}"},
		{ezjson.FourSpaces, "{\n    \"x\": 1,\n    \"s\": \"s\",\n    \"v_i\": [\n        2\n    ]\n}"},
	}
	for _, tt := range tests {
		out, err := ezjson.Write(&b, tt.indent)
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(out), "indent %d", tt.indent.Spaces())
	}
}

func TestRoundtrip_Idempotent(t *testing.T) {
	in := `{"b":true,"d":-Infinity,"i":-7,"o":{"x":1,"s":"é\n","v_i":[1]},"et":"enum thing 2","v_o":[]}`
	var a A
	require.NoError(t, ezjson.Read([]byte(in), &a))
	first, err := ezjson.Write(&a, ezjson.Compact)
	require.NoError(t, err)

	var a2 A
	require.NoError(t, ezjson.Read(first, &a2))
	second, err := ezjson.Write(&a2, ezjson.Compact)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
	assert.Equal(t, `{"b":true,"d":-Infinity,"i":-7,"o":{"x":1,"s":"é\n","v_i":[1]},"et":"enum thing 2","v_o":[]}`, string(first))
}

func TestObjects_RootArray(t *testing.T) {
	in := []B{{X: 1, S: "a", VI: []int{}}, {X: 2, S: "b", VI: []int{3}}}
	out, err := ezjson.WriteObjects(in, ezjson.Compact)
	require.NoError(t, err)
	assert.Equal(t, `[{"x":1,"s":"a","v_i":[]},{"x":2,"s":"b","v_i":[3]}]`, string(out))

	var got []B
	require.NoError(t, ezjson.ReadObjects(out, &got))
	assert.Equal(t, in, got)

	err = ezjson.ReadObjects([]byte(`[{"x":1,"s":"a","v_i":[]},{"x":"2"}]`), &got)
	require.Error(t, err)
	assert.Equal(t, `[1]["x"] expected an integer`, err.Error())
}

func TestValues_RootArray(t *testing.T) {
	out, err := ezjson.WriteValues([]float64{0.5, 2}, ezjson.Compact)
	require.NoError(t, err)
	assert.Equal(t, `[0.5,2.0]`, string(out))

	var got []float64
	require.NoError(t, ezjson.ReadValues(out, &got))
	assert.Equal(t, []float64{0.5, 2}, got)

	var s []string
	err = ezjson.ReadValues([]byte(`{"a": 1}`), &s)
	require.Error(t, err)
	assert.Equal(t, "root must be an array", err.Error())
}

func TestEnums_RootArray(t *testing.T) {
	out, err := ezjson.WriteEnums([]thing{thing2, thing0}, thing.String, ezjson.Compact)
	require.NoError(t, err)
	assert.Equal(t, `["enum thing 2","enum thing 0"]`, string(out))

	var got []thing
	require.NoError(t, ezjson.ReadEnums(out, &got, thingN, thing.String))
	assert.Equal(t, []thing{thing2, thing0}, got)

	err = ezjson.ReadEnums([]byte(`["enum thing 1", "enum thing 3"]`), &got, thingN, thing.String)
	require.Error(t, err)
	assert.Equal(t, `[1] bad enum value: "enum thing 3"`, err.Error())
}

func TestArchive_SingleUse(t *testing.T) {
	r, err := ezjson.NewReader([]byte(`{"x": 1, "s": "", "v_i": []}`))
	require.NoError(t, err)
	var b B
	require.NoError(t, r.Decode(&b))
	err = r.Decode(&b)
	e, ok := ezjson.AsError(err)
	require.True(t, ok)
	assert.Equal(t, ezjson.CodeArchiveUsed, e.Code)

	w := ezjson.NewWriter(ezjson.Compact)
	_, err = w.Encode(&b)
	require.NoError(t, err)
	_, err = w.Encode(&b)
	require.Error(t, err)
}

func TestArchive_Reading(t *testing.T) {
	r, err := ezjson.NewReader([]byte(`{}`))
	require.NoError(t, err)
	assert.True(t, r.Reading())
	assert.False(t, ezjson.NewWriter(ezjson.Compact).Reading())
}

// depthLeaf records the reader's nesting depth each time it is described.
type depthLeaf struct {
	N      int
	depths *[]int
}

func (l *depthLeaf) Describe(ar ezjson.Archive) {
	if r, ok := ar.(*ezjson.Reader); ok && l.depths != nil {
		*l.depths = append(*l.depths, r.Depth())
	}
	ar.Int("n", &l.N)
}

type depthRoot struct {
	Leaf   depthLeaf
	Leaves []depthLeaf
	depths []int
}

func (d *depthRoot) Describe(ar ezjson.Archive) {
	if r, ok := ar.(*ezjson.Reader); ok {
		d.depths = append(d.depths, r.Depth())
	}
	d.Leaf.depths = &d.depths
	ar.Object("leaf", &d.Leaf)
	ezjson.Objects(ar, "leaves", &d.Leaves)
}

func TestReader_StackEmptyAroundDecode(t *testing.T) {
	r, err := ezjson.NewReader([]byte(`{"leaf": {"n": 1}, "leaves": [{"n": 2}, {"n": 3}]}`))
	require.NoError(t, err)
	assert.Zero(t, r.Depth())

	var d depthRoot
	require.NoError(t, r.Decode(&d))
	assert.Zero(t, r.Depth())
	assert.Equal(t, []int{1, 2}, d.depths)
	assert.Equal(t, 1, d.Leaf.N)
	require.Len(t, d.Leaves, 2)
	assert.Equal(t, 3, d.Leaves[1].N)
}

func TestReader_StackEmptyAfterFailure(t *testing.T) {
	for _, in := range []string{
		`{"leaf": {"n": "x"}, "leaves": []}`,
		`{"leaf": {"n": 1}, "leaves": [{"n": 2}, {"m": 3}]}`,
		`{"leaf": {"_objver": 4, "n": 1}, "leaves": []}`,
		`{"leaf": {"n": 1}, "leaves": [{"n": 2}, 7]}`,
	} {
		r, err := ezjson.NewReader([]byte(in))
		require.NoError(t, err, in)
		var d depthRoot
		require.Error(t, r.Decode(&d), in)
		assert.Zero(t, r.Depth(), in)
	}
}
