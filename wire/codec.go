package wire

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// PostgreSQL type OIDs for the types served by this package, from the
// pg_type catalog.
const (
	// TimestampOID identifies timestamp without time zone.
	TimestampOID uint32 = 1114
	// CircleOID identifies the circle geometric type.
	CircleOID uint32 = 718
)

// Codec transcribes one value type between its native representation and
// the binary wire format. For fixed-width types the codec is fully
// determined by field order, field widths, and total width: its only job
// is mechanical field-by-field transcription plus the static length
// contract. No business logic belongs in a Codec.
type Codec interface {
	// OID returns the pg_type OID the codec serves.
	OID() uint32

	// Name returns the PostgreSQL name of the type.
	Name() string

	// Size returns the number of bytes Encode will emit for v. For a
	// fixed-width type it is constant for every accepted v.
	Size(v any) (int, error)

	// Encode appends the wire form of v to buf, emitting exactly the
	// number of bytes Size reported. It accepts the native value or its
	// text form.
	Encode(v any, buf *Buffer) error

	// Decode consumes the wire form from buf and reconstructs the native
	// value. n is the length declared by the peer before the value bytes;
	// a codec with a static width rejects any other length before reading.
	Decode(buf *Buffer, n int) (any, error)
}

// Registry maps type OIDs to codecs. The zero value is ready to use. A
// Registry is intended to be populated during setup and read-only
// afterward; concurrent lookups without registration are safe.
type Registry struct {
	codecs map[uint32]Codec
}

// NewRegistry returns a Registry populated with the codecs of this
// package.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Register(NewCircleCodec())
	r.Register(NewTimestampCodec())
	return r
}

// Register adds c to the registry, replacing any codec previously
// registered for its OID.
func (r *Registry) Register(c Codec) {
	if r.codecs == nil {
		r.codecs = make(map[uint32]Codec)
	}
	r.codecs[c.OID()] = c
}

// ByOID returns the codec registered for oid.
func (r *Registry) ByOID(oid uint32) (Codec, bool) {
	c, ok := r.codecs[oid]
	return c, ok
}

// OIDs returns the registered OIDs in ascending order.
func (r *Registry) OIDs() []uint32 {
	oids := maps.Keys(r.codecs)
	slices.Sort(oids)
	return oids
}

// errLength reports a declared length that contradicts a codec's static
// width. The surrounding protocol machinery surfaces it to the peer.
func errLength(name string, want, got int) error {
	return fmt.Errorf(
		"%w: %s is %d bytes on the wire, got length %d",
		ErrWire, name, want, got,
	)
}
