package ezjson_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/ezjson"
)

type widths struct {
	I   int
	I8  int8
	I16 int16
	I32 int32
	I64 int64
	U   uint
	U8  uint8
	U16 uint16
	U32 uint32
	U64 uint64
}

func (w *widths) Describe(ar ezjson.Archive) {
	ar.Int("i", &w.I)
	ar.Int8("i8", &w.I8)
	ar.Int16("i16", &w.I16)
	ar.Int32("i32", &w.I32)
	ar.Int64("i64", &w.I64)
	ar.Uint("u", &w.U)
	ar.Uint8("u8", &w.U8)
	ar.Uint16("u16", &w.U16)
	ar.Uint32("u32", &w.U32)
	ar.Uint64("u64", &w.U64)
}

// doc renders a widths document with one field replaced by a raw literal.
func doc(field, literal string) []byte {
	vals := map[string]string{
		"i": "0", "i8": "0", "i16": "0", "i32": "0", "i64": "0",
		"u": "0", "u8": "0", "u16": "0", "u32": "0", "u64": "0",
	}
	vals[field] = literal
	return []byte(fmt.Sprintf(`{"i":%s,"i8":%s,"i16":%s,"i32":%s,"i64":%s,"u":%s,"u8":%s,"u16":%s,"u32":%s,"u64":%s}`,
		vals["i"], vals["i8"], vals["i16"], vals["i32"], vals["i64"],
		vals["u"], vals["u8"], vals["u16"], vals["u32"], vals["u64"]))
}

func TestIntegerWidths_Bounds(t *testing.T) {
	tests := []struct {
		field    string
		min, max string
		below    string
		above    string
		msg      string
	}{
		{"i8", "-128", "127", "-129", "128", "expected an int8"},
		{"i16", "-32768", "32767", "-32769", "32768", "expected an int16"},
		{"i32", "-2147483648", "2147483647", "-2147483649", "2147483648", "expected an int32"},
		{"i64", "-9223372036854775808", "9223372036854775807", "", "9223372036854775808", "expected an int64"},
		{"i", "-9223372036854775808", "9223372036854775807", "", "9223372036854775808", "expected an integer"},
		{"u8", "0", "255", "-1", "256", "expected a uint8"},
		{"u16", "0", "65535", "-1", "65536", "expected a uint16"},
		{"u32", "0", "4294967295", "-1", "4294967296", "expected a uint32"},
		{"u64", "0", "18446744073709551615", "-1", "", "expected a uint64"},
		{"u", "0", "18446744073709551615", "-1", "", "expected a uint"},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			var w widths
			require.NoError(t, ezjson.Read(doc(tt.field, tt.min), &w))
			require.NoError(t, ezjson.Read(doc(tt.field, tt.max), &w))
			for _, lit := range []string{tt.below, tt.above} {
				if lit == "" {
					continue
				}
				err := ezjson.Read(doc(tt.field, lit), &w)
				require.Error(t, err, lit)
				assert.Equal(t, `["`+tt.field+`"] `+tt.msg, err.Error())
				e, _ := ezjson.AsError(err)
				assert.Equal(t, ezjson.CodeOutOfRange, e.Code)
			}
			for _, lit := range []string{"1.0", `"1"`, "true", "null", "NaN"} {
				err := ezjson.Read(doc(tt.field, lit), &w)
				require.Error(t, err, lit)
				assert.Equal(t, `["`+tt.field+`"] `+tt.msg, err.Error())
				e, _ := ezjson.AsError(err)
				assert.Equal(t, ezjson.CodeInvalidType, e.Code)
			}
		})
	}
}

func TestIntegerWidths_Extremes(t *testing.T) {
	w := widths{
		I: math.MinInt, I8: math.MinInt8, I16: math.MinInt16, I32: math.MinInt32, I64: math.MinInt64,
		U: math.MaxUint, U8: math.MaxUint8, U16: math.MaxUint16, U32: math.MaxUint32, U64: math.MaxUint64,
	}
	out, err := ezjson.Write(&w, ezjson.Compact)
	require.NoError(t, err)
	assert.Equal(t, `{"i":-9223372036854775808,"i8":-128,"i16":-32768,"i32":-2147483648,"i64":-9223372036854775808,`+
		`"u":18446744073709551615,"u8":255,"u16":65535,"u32":4294967295,"u64":18446744073709551615}`, string(out))

	var got widths
	require.NoError(t, ezjson.Read(out, &got))
	assert.Equal(t, w, got)
}

type doubles struct{ V []float64 }

func (d *doubles) Describe(ar ezjson.Archive) { ezjson.Values(ar, "v", &d.V) }

func TestDouble_NonFinite(t *testing.T) {
	var d doubles
	require.NoError(t, ezjson.Read([]byte(`{"v": [NaN, Infinity, -Infinity, 1e-400, 0.1]}`), &d))
	require.Len(t, d.V, 5)
	assert.True(t, math.IsNaN(d.V[0]))
	assert.True(t, math.IsInf(d.V[1], 1))
	assert.True(t, math.IsInf(d.V[2], -1))
	assert.Zero(t, d.V[3])

	out, err := ezjson.Write(&d, ezjson.Compact)
	require.NoError(t, err)
	assert.Equal(t, `{"v":[NaN,Infinity,-Infinity,0.0,0.1]}`, string(out))
}

func TestDouble_RejectsIntegersAndOverflow(t *testing.T) {
	var d doubles
	err := ezjson.Read([]byte(`{"v": [1.5, 2]}`), &d)
	require.Error(t, err)
	assert.Equal(t, `["v"][1] expected a double`, err.Error())

	err = ezjson.Read([]byte(`{"v": [1e400]}`), &d)
	e, ok := ezjson.AsError(err)
	require.True(t, ok)
	assert.Equal(t, ezjson.CodeParseError, e.Code)
}

type text struct {
	S  string
	VS []string
	VB []bool
}

func (x *text) Describe(ar ezjson.Archive) {
	ar.String("s", &x.S)
	ezjson.Values(ar, "vs", &x.VS)
	ezjson.Values(ar, "vb", &x.VB)
}

func TestString_Escapes(t *testing.T) {
	x := text{S: "tab\t\"quote\" \\   ü", VS: []string{""}, VB: []bool{true, false}}
	out, err := ezjson.Write(&x, ezjson.Compact)
	require.NoError(t, err)

	var got text
	require.NoError(t, ezjson.Read(out, &got))
	assert.Equal(t, x, got)

	err = ezjson.Read([]byte(`{"s": "", "vs": [""], "vb": [true, 1]}`), &got)
	require.Error(t, err)
	assert.Equal(t, `["vb"][1] expected a bool`, err.Error())
}
