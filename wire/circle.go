package wire

import (
	"fmt"

	"github.com/theory/pgtypes/types"
)

// circleWireSize is the static wire width of a circle: three 8-byte
// doubles.
const circleWireSize = 3 * 8

// CircleCodec transcribes [types.Circle] values. The wire form is 24
// bytes: center-x, center-y, and radius as consecutive big-endian IEEE-754
// doubles, in that order.
type CircleCodec struct{}

// NewCircleCodec returns a codec for the circle type.
func NewCircleCodec() CircleCodec { return CircleCodec{} }

// OID returns the pg_type OID of circle.
func (CircleCodec) OID() uint32 { return CircleOID }

// Name returns "circle".
func (CircleCodec) Name() string { return "circle" }

// coerce accepts a circle as its native value, a pointer to one, or its
// text form.
func (CircleCodec) coerce(v any) (types.Circle, error) {
	switch c := v.(type) {
	case types.Circle:
		return c, nil
	case *types.Circle:
		return *c, nil
	case string:
		return types.ParseCircle(c)
	default:
		return types.Circle{}, fmt.Errorf(
			"%w: cannot encode %T as circle", types.ErrInvalidArgument, v,
		)
	}
}

// Size returns 24 for every accepted value: the type has no
// variable-length fields.
func (cc CircleCodec) Size(v any) (int, error) {
	if _, err := cc.coerce(v); err != nil {
		return 0, err
	}
	return circleWireSize, nil
}

// Encode appends the three field doubles to buf in wire order.
func (cc CircleCodec) Encode(v any, buf *Buffer) error {
	c, err := cc.coerce(v)
	if err != nil {
		return err
	}
	buf.WriteFloat64(c.X)
	buf.WriteFloat64(c.Y)
	buf.WriteFloat64(c.Radius)
	return nil
}

// Decode reconstructs a [types.Circle] from the three field doubles. It
// rejects any declared length other than 24 before reading.
func (cc CircleCodec) Decode(buf *Buffer, n int) (any, error) {
	if n != circleWireSize {
		return nil, errLength(cc.Name(), circleWireSize, n)
	}
	var c types.Circle
	for _, field := range []*float64{&c.X, &c.Y, &c.Radius} {
		f, err := buf.ReadFloat64()
		if err != nil {
			return nil, err
		}
		*field = f
	}
	return c, nil
}
