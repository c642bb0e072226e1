package ezjson

// VersionKey is reserved at every object level for the object version tag.
// It must not be used as an application field name.
const VersionKey = "_objver"

// Describer is implemented by every serializable type. Describe names each
// field once, in a fixed order, by calling the archive. That order is the key
// order on write and the set of required keys on read.
//
//	func (b *B) Describe(ar ezjson.Archive) {
//		ar.Int("x", &b.X)
//		ar.String("s", &b.S)
//		ezjson.Values(ar, "v_i", &b.VI)
//	}
type Describer interface {
	Describe(ar Archive)
}

// Versioned is optionally implemented by a Describer to declare its current
// object version. Writers emit the version under VersionKey when it is
// greater than zero; readers reject objects tagged with a newer version.
// Types that do not implement Versioned are version 0.
type Versioned interface {
	ObjectVersion() uint
}

// Archive is a single-use traversal in either read or write mode. Field
// methods bind a JSON key to an in-memory slot.
//
// Errors are sticky: after the first failure every later call is a no-op and
// Err reports the failure. Implementations live in this package only.
type Archive interface {
	// Reading reports whether the archive populates values (true) or prints
	// them (false).
	Reading() bool

	Bool(key string, v *bool)
	Int(key string, v *int)
	Int8(key string, v *int8)
	Int16(key string, v *int16)
	Int32(key string, v *int32)
	Int64(key string, v *int64)
	Uint(key string, v *uint)
	Uint8(key string, v *uint8)
	Uint16(key string, v *uint16)
	Uint32(key string, v *uint32)
	Uint64(key string, v *uint64)
	Float64(key string, v *float64)
	String(key string, v *string)
	Object(key string, v Describer)

	// Since returns a view whose fields exist from the given object version
	// on. Readers skip such a field, leaving the slot unchanged, when the
	// enclosing object was tagged with an older version. Writers always
	// emit it.
	Since(version uint) Archive

	// Err returns the first failure recorded by the archive.
	Err() error

	visit(key string, c codec)
}

// visitor dispatches one keyed field to a codec.
type visitor interface {
	visit(key string, c codec)
}

// fields implements the per-kind Archive methods on top of a visitor.
type fields struct{ v visitor }

func (f fields) Bool(key string, v *bool)       { f.v.visit(key, valueCodec(v)) }
func (f fields) Int(key string, v *int)         { f.v.visit(key, valueCodec(v)) }
func (f fields) Int8(key string, v *int8)       { f.v.visit(key, valueCodec(v)) }
func (f fields) Int16(key string, v *int16)     { f.v.visit(key, valueCodec(v)) }
func (f fields) Int32(key string, v *int32)     { f.v.visit(key, valueCodec(v)) }
func (f fields) Int64(key string, v *int64)     { f.v.visit(key, valueCodec(v)) }
func (f fields) Uint(key string, v *uint)       { f.v.visit(key, valueCodec(v)) }
func (f fields) Uint8(key string, v *uint8)     { f.v.visit(key, valueCodec(v)) }
func (f fields) Uint16(key string, v *uint16)   { f.v.visit(key, valueCodec(v)) }
func (f fields) Uint32(key string, v *uint32)   { f.v.visit(key, valueCodec(v)) }
func (f fields) Uint64(key string, v *uint64)   { f.v.visit(key, valueCodec(v)) }
func (f fields) Float64(key string, v *float64) { f.v.visit(key, valueCodec(v)) }
func (f fields) String(key string, v *string)   { f.v.visit(key, valueCodec(v)) }
func (f fields) Object(key string, v Describer) { f.v.visit(key, objectCodec{v}) }

// objectVersion returns the version v declares, 0 when it declares none.
func objectVersion(v Describer) uint {
	if vv, ok := v.(Versioned); ok {
		return vv.ObjectVersion()
	}
	return 0
}

// gated is the read-side view returned by Reader.Since.
type gated struct {
	fields
	r   *Reader
	min uint
}

func newGated(r *Reader, min uint) *gated {
	g := &gated{r: r, min: min}
	g.fields = fields{g}
	return g
}

func (g *gated) Reading() bool { return true }
func (g *gated) Err() error    { return g.r.Err() }

func (g *gated) Since(version uint) Archive { return g.r.Since(version) }

func (g *gated) visit(key string, c codec) {
	if g.r.err != nil || g.r.frameVersion() < g.min {
		return
	}
	g.r.visit(key, c)
}
