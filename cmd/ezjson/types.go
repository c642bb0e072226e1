package main

import "github.com/reoring/ezjson"

//go:generate go tool stringer -type=PulpLevel -linecomment -output=pulplevel_string.go

// PulpLevel is the orange juice pulp level used by the demo documents.
type PulpLevel int

const (
	Low    PulpLevel = iota // low
	Medium                  // medium
	High                    // high

	// PulpLevelN is one past the last valid level.
	PulpLevelN
)

// Y is a small nested object.
type Y struct {
	I  int
	I2 int64
}

func (y *Y) Describe(ar ezjson.Archive) {
	ar.Int("i", &y.I)
	ar.Int64("i2", &y.I2)
}

// Z exercises every primitive kind, an enum, a nested object and a sequence
// of objects.
type Z struct {
	I8   int8
	I16  int16
	I32  int32
	I64  int64
	U8   uint8
	U16  uint16
	U32  uint32
	U64  uint64
	B    bool
	D    float64
	S    string
	Pulp PulpLevel
	Y    Y
	VY   []Y
}

func (z *Z) Describe(ar ezjson.Archive) {
	ar.Int8("i8", &z.I8)
	ar.Int16("i16", &z.I16)
	ar.Int32("i32", &z.I32)
	ar.Int64("i64", &z.I64)
	ar.Uint8("u8", &z.U8)
	ar.Uint16("u16", &z.U16)
	ar.Uint32("u32", &z.U32)
	ar.Uint64("u64", &z.U64)
	ar.Bool("b", &z.B)
	ar.Float64("d", &z.D)
	ar.String("s", &z.S)
	ezjson.Enum(ar, "pulp level", &z.Pulp, PulpLevelN, PulpLevel.String)
	ar.Object("y", &z.Y)
	ezjson.Objects(ar, "v_y", &z.VY)
}

func sampleZ() Z {
	return Z{
		I8: 127, I16: -32768, I32: 42, I64: -9,
		U8: 255, U16: 65535, U32: 196, U64: 327,
		B: true, D: 0.1, S: "grr",
		Pulp: Medium,
		Y:    Y{I: 1, I2: 2},
		VY:   []Y{{I: 3, I2: 4}, {I: 5, I2: 6}},
	}
}
