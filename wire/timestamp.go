package wire

import (
	"fmt"
	"math"
	"time"

	"github.com/theory/pgtypes/types"
)

// timestampWireSize is the static wire width of a timestamp: one 8-byte
// integer.
const timestampWireSize = 8

// pg2000Ticks is the tick position of the PostgreSQL timestamp epoch,
// 2000-01-01 00:00:00.
//
//nolint:gochecknoglobals
var pg2000Ticks = types.TimestampFromParts(
	2000, time.January, 1, 0, 0, 0, 0, types.KindUnspecified,
).Ticks()

// ticksPerMicro converts between 100ns ticks and the microseconds carried
// on the wire. Sub-microsecond precision is truncated on encode.
const ticksPerMicro = 10

// TimestampCodec transcribes [types.Timestamp] values. The wire form is 8
// bytes: a big-endian int64 count of microseconds since 2000-01-01
// 00:00:00, with math.MaxInt64 for infinity and math.MinInt64 for
// negative infinity. The pattern is the same as [CircleCodec]: a static
// width, fixed field order, and nothing else.
type TimestampCodec struct{}

// NewTimestampCodec returns a codec for the timestamp type.
func NewTimestampCodec() TimestampCodec { return TimestampCodec{} }

// OID returns the pg_type OID of timestamp without time zone.
func (TimestampCodec) OID() uint32 { return TimestampOID }

// Name returns "timestamp".
func (TimestampCodec) Name() string { return "timestamp" }

// coerce accepts a timestamp as its native value, a pointer to one, or
// its text form.
func (TimestampCodec) coerce(v any) (types.Timestamp, error) {
	switch ts := v.(type) {
	case types.Timestamp:
		return ts, nil
	case *types.Timestamp:
		return *ts, nil
	case string:
		return types.ParseTimestamp(ts)
	default:
		return types.Timestamp{}, fmt.Errorf(
			"%w: cannot encode %T as timestamp", types.ErrInvalidArgument, v,
		)
	}
}

// Size returns 8 for every accepted value.
func (tc TimestampCodec) Size(v any) (int, error) {
	if _, err := tc.coerce(v); err != nil {
		return 0, err
	}
	return timestampWireSize, nil
}

// Encode appends the microsecond count to buf, using the sentinel
// encodings for the infinities.
func (tc TimestampCodec) Encode(v any, buf *Buffer) error {
	ts, err := tc.coerce(v)
	if err != nil {
		return err
	}
	switch {
	case ts.IsInfinity():
		buf.WriteInt64(math.MaxInt64)
	case ts.IsNegativeInfinity():
		buf.WriteInt64(math.MinInt64)
	default:
		buf.WriteInt64((ts.Ticks() - pg2000Ticks) / ticksPerMicro)
	}
	return nil
}

// Decode reconstructs a [types.Timestamp] with KindUnspecified: timestamp
// without time zone carries no zone on the wire. It rejects any declared
// length other than 8 before reading.
func (tc TimestampCodec) Decode(buf *Buffer, n int) (any, error) {
	if n != timestampWireSize {
		return nil, errLength(tc.Name(), timestampWireSize, n)
	}
	micros, err := buf.ReadInt64()
	if err != nil {
		return nil, err
	}
	switch micros {
	case math.MaxInt64:
		return types.Infinity, nil
	case math.MinInt64:
		return types.NegativeInfinity, nil
	}
	return types.TimestampFromTicks(
		micros*ticksPerMicro+pg2000Ticks, types.KindUnspecified,
	), nil
}
