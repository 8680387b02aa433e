package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalConstructors(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Equal(TicksPerDay, IntervalFromDays(1).Ticks())
	a.Equal(TicksPerHour, IntervalFromHours(1).Ticks())
	a.Equal(TicksPerMinute, IntervalFromMinutes(1).Ticks())
	a.Equal(TicksPerSecond, IntervalFromSeconds(1).Ticks())
	a.Equal(TicksPerMillisecond, IntervalFromMilliseconds(1).Ticks())
	a.Equal(int64(42), IntervalFromTicks(42).Ticks())
	a.Equal(
		13*TicksPerHour+30*TicksPerMinute+15*TicksPerSecond+250*TicksPerMillisecond,
		TimeOfDay(13, 30, 15, 250).Ticks(),
	)
}

func TestIntervalComponents(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	iv := IntervalFromDays(2).Add(TimeOfDay(13, 30, 15, 250))
	a.Equal(2, iv.Days())
	a.Equal(13, iv.Hours())
	a.Equal(30, iv.Minutes())
	a.Equal(15, iv.Seconds())
	a.Equal(250, iv.Milliseconds())

	// Components of a negative interval share its sign.
	neg := iv.Neg()
	a.Equal(-2, neg.Days())
	a.Equal(-13, neg.Hours())
	a.Equal(-30, neg.Minutes())
	a.Equal(-15, neg.Seconds())
	a.Equal(-250, neg.Milliseconds())
}

func TestIntervalArithmetic(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	x := IntervalFromMinutes(90)
	y := IntervalFromMinutes(30)
	a.Equal(IntervalFromHours(2), x.Add(y))
	a.Equal(IntervalFromHours(1), x.Sub(y))
	a.Equal(IntervalFromMinutes(-90), x.Neg())
	a.Equal(Interval{}, x.Add(x.Neg()))

	a.Equal(0, x.Compare(IntervalFromMinutes(90)))
	a.Equal(1, x.Compare(y))
	a.Equal(-1, y.Compare(x))
}

func TestIntervalString(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		iv   Interval
		text string
	}{
		{"zero", Interval{}, "00:00:00"},
		{"clock", TimeOfDay(13, 30, 0, 0), "13:30:00"},
		{"millis", TimeOfDay(13, 30, 0, 250), "13:30:00.25"},
		{"ticks", IntervalFromTicks(1), "00:00:00.0000001"},
		{"negative", IntervalFromSeconds(-90), "-00:01:30"},
		{"over_a_day", IntervalFromHours(26), "26:00:00"},
		{"negative_days", IntervalFromDays(-2), "-48:00:00"},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			a.Equal(tc.text, tc.iv.String())
			parsed, err := ParseInterval(tc.text)
			r.NoError(err)
			a.Equal(tc.iv, parsed)
		})
	}
}

func TestParseInterval(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	iv, err := ParseInterval("13:30")
	r.NoError(err)
	a.Equal(TimeOfDay(13, 30, 0, 0), iv)

	iv, err = ParseInterval("+01:02:03")
	r.NoError(err)
	a.Equal(TimeOfDay(1, 2, 3, 0), iv)

	// Precision beyond 100ns is truncated.
	iv, err = ParseInterval("00:00:00.123456789")
	r.NoError(err)
	a.Equal(IntervalFromTicks(1234567), iv)

	// The longest representable interval parses without wrapping, in
	// both directions.
	iv, err = ParseInterval("256204777:59:59.9999999")
	r.NoError(err)
	a.Positive(iv.Ticks())
	iv, err = ParseInterval("-256204777:59:59.9999999")
	r.NoError(err)
	a.Negative(iv.Ticks())
}

func TestParseIntervalErrors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		src  string
		err  error
	}{
		{"empty", "", ErrNullArgument},
		{"junk", "soon", ErrFormat},
		{"one_field", "13", ErrFormat},
		{"four_fields", "1:2:3:4", ErrFormat},
		{"alpha_minutes", "13:xx", ErrFormat},
		{"empty_fraction", "00:00:00.", ErrFormat},
		{"alpha_fraction", "00:00:00.12a", ErrFormat},
		{"minutes_range", "10:60", ErrOverflow},
		{"seconds_range", "10:00:61", ErrOverflow},
		{"hours_range", "999999999999:00", ErrOverflow},
		{"hours_overflow", "92233720368547758080:00", ErrOverflow},
		{"component_sum_wraps", "256204778:59:00", ErrOverflow},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseInterval(tc.src)
			require.ErrorIs(t, err, tc.err)
			require.ErrorIs(t, err, ErrValue)
		})
	}
}
