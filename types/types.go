// Package types provides PostgreSQL-compatible value types for the client
// wire boundary.
//
// It makes every effort to duplicate the behavior of the PostgreSQL
// timestamp, date, and geometric types, including the extended year range
// and the "infinity" and "-infinity" timestamp sentinels, which the standard
// library's time.Time cannot express.
package types

import (
	"errors"
	"fmt"
)

// ErrValue wraps all errors returned by the types package.
var ErrValue = errors.New("value")

// The closed set of error kinds signaled by this package. Callers match
// them with errors.Is; every error returned by the package wraps exactly
// one of these and therefore also matches [ErrValue].
var (
	// ErrInvalidCast is returned when a value cannot be projected into the
	// requested representation, such as converting a non-finite timestamp
	// to time.Time.
	ErrInvalidCast = fmt.Errorf("%w: invalid cast", ErrValue)

	// ErrInvalidOperation is returned when an operation is undefined for
	// its operands, such as subtracting from an infinite timestamp.
	ErrInvalidOperation = fmt.Errorf("%w: invalid operation", ErrValue)

	// ErrFormat is returned when text input does not have a recognizable
	// structure.
	ErrFormat = fmt.Errorf("%w: invalid format", ErrValue)

	// ErrOverflow is returned when text input is structurally valid but a
	// numeric component falls outside its range. It is distinct from
	// ErrFormat so callers can tell "recognizable but out of range" apart
	// from "unrecognizable".
	ErrOverflow = fmt.Errorf("%w: out of range", ErrValue)

	// ErrNullArgument is returned when required input is empty.
	ErrNullArgument = fmt.Errorf("%w: null argument", ErrValue)

	// ErrInvalidArgument is returned when an argument has an unsupported
	// type.
	ErrInvalidArgument = fmt.Errorf("%w: invalid argument", ErrValue)
)

// Tick counts per unit of time. A tick is 100 nanoseconds, the smallest
// unit of temporal precision used for linear timestamp arithmetic.
const (
	TicksPerMillisecond int64 = 10_000
	TicksPerSecond            = TicksPerMillisecond * 1000
	TicksPerMinute            = TicksPerSecond * 60
	TicksPerHour              = TicksPerMinute * 60
	TicksPerDay               = TicksPerHour * 24
)
