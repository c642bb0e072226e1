// Package ezjson binds Go values to JSON documents through a single
// hand-written Describe method that drives both reading and writing.
//
// A type lists its fields once:
//
//	type B struct {
//		X  int
//		S  string
//		VI []int
//	}
//
//	func (b *B) Describe(ar ezjson.Archive) {
//		ar.Int("x", &b.X)
//		ar.String("s", &b.S)
//		ezjson.Values(ar, "v_i", &b.VI)
//	}
//
// and is then read and written with the root entry points:
//
//	var b B
//	if err := ezjson.Read(data, &b); err != nil {
//		// ["v_i"][1] expected an integer
//	}
//	out, err := ezjson.Write(&b, ezjson.TwoSpaces)
//
// Reading is strict: every declared key must be present with a value of the
// declared kind and range. Failures carry the path to the offending value
// (see Error). Unknown keys are ignored.
//
// Schema evolution is handled per object with a version tag stored under
// VersionKey. A type that implements Versioned declares its current version
// and guards newer fields with Since:
//
//	func (z *Z) ObjectVersion() uint { return 1 }
//
//	func (z *Z) Describe(ar ezjson.Archive) {
//		ar.Bool("b", &z.B)
//		ar.Since(1).Int("i", &z.I)
//	}
//
// Documents produced before the field existed still read; documents tagged
// with a version newer than the reader's fail with "object too new".
//
// Input is tokenized by a pluggable JSONDriver. The default driver accepts the
// NaN, Infinity and -Infinity literals, which Write also emits for
// non-finite doubles.
package ezjson
