package types

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Interval represents a signed span of time as a count of 100-nanosecond
// ticks. It serves both as the time-of-day component of a Timestamp and as
// the difference between two timestamps, so its range deliberately exceeds
// a single day in both directions.
//
// Interval is an immutable value; methods that adjust it return a new
// Interval.
type Interval struct {
	ticks int64
}

// IntervalFromTicks returns the Interval spanning t 100-nanosecond ticks.
func IntervalFromTicks(t int64) Interval { return Interval{ticks: t} }

// IntervalFromDays returns the Interval spanning n days.
func IntervalFromDays(n int64) Interval { return Interval{ticks: n * TicksPerDay} }

// IntervalFromHours returns the Interval spanning n hours.
func IntervalFromHours(n int64) Interval { return Interval{ticks: n * TicksPerHour} }

// IntervalFromMinutes returns the Interval spanning n minutes.
func IntervalFromMinutes(n int64) Interval { return Interval{ticks: n * TicksPerMinute} }

// IntervalFromSeconds returns the Interval spanning n seconds.
func IntervalFromSeconds(n int64) Interval { return Interval{ticks: n * TicksPerSecond} }

// IntervalFromMilliseconds returns the Interval spanning n milliseconds.
func IntervalFromMilliseconds(n int64) Interval {
	return Interval{ticks: n * TicksPerMillisecond}
}

// TimeOfDay returns the Interval between midnight and the given clock
// reading.
func TimeOfDay(hour, minute, sec, msec int) Interval {
	return Interval{
		ticks: int64(hour)*TicksPerHour +
			int64(minute)*TicksPerMinute +
			int64(sec)*TicksPerSecond +
			int64(msec)*TicksPerMillisecond,
	}
}

// Ticks returns the span of iv in 100-nanosecond ticks.
func (iv Interval) Ticks() int64 { return iv.ticks }

// Days returns the whole-day component of iv.
func (iv Interval) Days() int { return int(iv.ticks / TicksPerDay) }

// Hours returns the hour component of iv, in -23 through 23.
func (iv Interval) Hours() int { return int(iv.ticks / TicksPerHour % 24) }

// Minutes returns the minute component of iv, in -59 through 59.
func (iv Interval) Minutes() int { return int(iv.ticks / TicksPerMinute % 60) }

// Seconds returns the second component of iv, in -59 through 59.
func (iv Interval) Seconds() int { return int(iv.ticks / TicksPerSecond % 60) }

// Milliseconds returns the millisecond component of iv, in -999 through
// 999.
func (iv Interval) Milliseconds() int {
	return int(iv.ticks / TicksPerMillisecond % 1000)
}

// Add returns the sum of iv and u.
func (iv Interval) Add(u Interval) Interval {
	return Interval{ticks: iv.ticks + u.ticks}
}

// Sub returns the difference of iv and u.
func (iv Interval) Sub(u Interval) Interval {
	return Interval{ticks: iv.ticks - u.ticks}
}

// Neg returns iv with its sign flipped.
func (iv Interval) Neg() Interval { return Interval{ticks: -iv.ticks} }

// Compare compares iv with u. It returns -1 if iv is shorter than u, +1 if
// it is longer, and 0 if they are equal.
func (iv Interval) Compare(u Interval) int {
	switch {
	case iv.ticks < u.ticks:
		return -1
	case iv.ticks > u.ticks:
		return 1
	default:
		return 0
	}
}

// String returns the text representation of iv in the form
// "[-]HH:MM:SS[.fffffff]", with trailing zeros trimmed from the fraction.
// Hours are not wrapped at 24, so a 26-hour interval renders as
// "26:00:00".
func (iv Interval) String() string {
	t := iv.ticks
	sign := ""
	if t < 0 {
		sign = "-"
		t = -t
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s%02d:%02d:%02d",
		sign, t/TicksPerHour, t/TicksPerMinute%60, t/TicksPerSecond%60)
	if frac := t % TicksPerSecond; frac != 0 {
		s := fmt.Sprintf(".%07d", frac)
		b.WriteString(strings.TrimRight(s, "0"))
	}
	return b.String()
}

// ParseInterval parses src in the form "[-]HH:MM[:SS[.fffffff]]". Hours may
// exceed two digits. It returns ErrFormat when the structure is
// unrecognizable, ErrOverflow when a component is numeric but outside its
// range, and ErrNullArgument when src is empty.
func ParseInterval(src string) (Interval, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return Interval{}, fmt.Errorf("%w: empty interval", ErrNullArgument)
	}

	neg := false
	switch src[0] {
	case '-':
		neg = true
		src = src[1:]
	case '+':
		src = src[1:]
	}

	parts := strings.Split(src, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Interval{}, fmt.Errorf("%w: %q is not an interval", ErrFormat, src)
	}

	hours, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Interval{}, fmt.Errorf("%w: hours %q", ErrOverflow, parts[0])
		}
		return Interval{}, fmt.Errorf("%w: %q is not an interval", ErrFormat, src)
	}
	// One hour of headroom keeps the sub-hour components, at most
	// 59:59.9999999, from wrapping the summed tick total.
	const maxHours = math.MaxInt64/TicksPerHour - 1
	if hours < 0 || hours > maxHours {
		return Interval{}, fmt.Errorf("%w: hours %d", ErrOverflow, hours)
	}

	minutes, err := parseClockField(parts[1], "minutes")
	if err != nil {
		return Interval{}, err
	}

	var seconds, frac int64
	if len(parts) == 3 {
		sec := parts[2]
		if dot := strings.IndexByte(sec, '.'); dot >= 0 {
			frac, err = parseFraction(sec[dot+1:])
			if err != nil {
				return Interval{}, err
			}
			sec = sec[:dot]
		}
		seconds, err = parseClockField(sec, "seconds")
		if err != nil {
			return Interval{}, err
		}
	}

	ticks := hours*TicksPerHour + minutes*TicksPerMinute +
		seconds*TicksPerSecond + frac
	if neg {
		ticks = -ticks
	}
	return Interval{ticks: ticks}, nil
}

// parseClockField parses a two-digit minute or second field in 0–59.
func parseClockField(s, name string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s %q", ErrOverflow, name, s)
		}
		return 0, fmt.Errorf("%w: %q is not a number", ErrFormat, s)
	}
	if n < 0 || n > 59 {
		return 0, fmt.Errorf("%w: %s %d out of range", ErrOverflow, name, n)
	}
	return n, nil
}

// parseFraction converts the digits after a decimal point to ticks,
// truncating precision beyond 100ns.
func parseFraction(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty fraction", ErrFormat)
	}
	var ticks int64
	scale := TicksPerSecond
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q is not a fraction", ErrFormat, s)
		}
		if scale == 1 {
			continue
		}
		scale /= 10
		ticks += int64(c-'0') * scale
	}
	return ticks, nil
}
