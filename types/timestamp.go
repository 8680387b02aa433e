package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kind describes how the clock reading of a finite Timestamp is anchored:
// not at all (KindUnspecified), to UTC, or to the host's local civil time.
// Kind affects only time zone conversion, never equality or ordering.
type Kind uint8

const (
	// KindUnspecified marks a clock reading with no time zone anchor.
	KindUnspecified Kind = iota
	// KindUTC marks a clock reading anchored to UTC.
	KindUTC
	// KindLocal marks a clock reading anchored to local civil time.
	KindLocal
)

// String returns the name of k.
func (k Kind) String() string {
	switch k {
	case KindUTC:
		return "utc"
	case KindLocal:
		return "local"
	default:
		return "unspecified"
	}
}

// variant discriminates the finite and sentinel forms of a Timestamp.
type variant uint8

const (
	finiteStamp variant = iota
	plusInfinity
	minusInfinity
)

// Timestamp represents the PostgreSQL timestamp type: either a finite
// calendar moment with a [Kind], or one of the "infinity" and "-infinity"
// sentinels, which represent moments later and earlier than every finite
// value. The finite range is inherited from [Date], so it extends far
// beyond the years 1–9999 that time.Time-based code commonly assumes.
//
// Timestamp is an immutable value; every adjusting method returns a new
// Timestamp. The zero value is midnight of the era, 0001-01-01 00:00:00.
type Timestamp struct {
	variant variant
	date    Date
	tod     Interval
	kind    Kind
}

//nolint:gochecknoglobals
var (
	// Infinity sorts after every finite Timestamp.
	Infinity = Timestamp{variant: plusInfinity}

	// NegativeInfinity sorts before every finite Timestamp.
	NegativeInfinity = Timestamp{variant: minusInfinity}

	// Epoch is 1970-01-01 00:00:00.
	Epoch = Timestamp{date: DateEpoch}

	// Era is 0001-01-01 00:00:00, the zero Timestamp.
	Era = Timestamp{}
)

// NewTimestamp returns the finite Timestamp at timeOfDay past midnight of
// date, anchored per kind. The time of day need not fall within a single
// day; call [Timestamp.Normalize] to fold whole days into the date
// component.
func NewTimestamp(date Date, timeOfDay Interval, kind Kind) Timestamp {
	return Timestamp{date: date, tod: timeOfDay, kind: kind}
}

// TimestampFromParts returns the finite Timestamp for the given calendar
// and clock fields. The year is astronomical: year 0 is 1 BC.
func TimestampFromParts(year int, month time.Month, day, hour, minute, sec, msec int, kind Kind) Timestamp {
	return Timestamp{
		date: MakeDate(year, int(month), day),
		tod:  TimeOfDay(hour, minute, sec, msec),
		kind: kind,
	}
}

// TimestampFromTime converts t to a Timestamp, retaining 100ns precision.
// The kind is derived from t's location: KindUTC for time.UTC, KindLocal
// for time.Local, and KindUnspecified otherwise.
func TimestampFromTime(t time.Time) Timestamp {
	kind := KindUnspecified
	switch t.Location() {
	case time.UTC:
		kind = KindUTC
	case time.Local:
		kind = KindLocal
	}
	return Timestamp{
		date: MakeDate(t.Year(), int(t.Month()), t.Day()),
		tod: TimeOfDay(t.Hour(), t.Minute(), t.Second(), 0).
			Add(IntervalFromTicks(int64(t.Nanosecond()) / 100)),
		kind: kind,
	}
}

// TimestampFromTicks returns the finite Timestamp the given number of
// 100-nanosecond ticks after midnight of the era. The count is split into
// a date and a non-negative sub-day time of day, so the result is always
// normalized.
func TimestampFromTicks(ticks int64, kind Kind) Timestamp {
	days := floorDiv(ticks, TicksPerDay)
	return Timestamp{
		date: DateFromDays(int(days)),
		tod:  IntervalFromTicks(ticks - days*TicksPerDay),
		kind: kind,
	}
}

// IsFinite reports whether ts is a finite calendar moment rather than a
// sentinel.
func (ts Timestamp) IsFinite() bool { return ts.variant == finiteStamp }

// IsInfinity reports whether ts is the positive infinity sentinel.
func (ts Timestamp) IsInfinity() bool { return ts.variant == plusInfinity }

// IsNegativeInfinity reports whether ts is the negative infinity sentinel.
func (ts Timestamp) IsNegativeInfinity() bool { return ts.variant == minusInfinity }

// Kind returns the time zone anchor of ts. Both sentinels report
// KindUnspecified.
func (ts Timestamp) Kind() Kind {
	if !ts.IsFinite() {
		return KindUnspecified
	}
	return ts.kind
}

// Date returns the date component of ts, or the zero Date for a sentinel.
func (ts Timestamp) Date() Date {
	if !ts.IsFinite() {
		return Date{}
	}
	return ts.date
}

// TimeOfDay returns the offset of ts past midnight of its date component,
// or the zero Interval for a sentinel.
func (ts Timestamp) TimeOfDay() Interval {
	if !ts.IsFinite() {
		return Interval{}
	}
	return ts.tod
}

// Calendar accessors delegate to the date component and return zero values
// for the sentinels, which have no calendar payload at all; note the zero
// Date is a real day (the era start, year 1), so the guards here cannot be
// left to Date(). Guard with IsFinite where the distinction matters.

// Year returns the astronomical year of ts, or 0 for a sentinel.
func (ts Timestamp) Year() int {
	if !ts.IsFinite() {
		return 0
	}
	return ts.date.Year()
}

// Month returns the month of ts, or 0 for a sentinel.
func (ts Timestamp) Month() time.Month {
	if !ts.IsFinite() {
		return 0
	}
	return ts.date.Month()
}

// Day returns the day of the month of ts, or 0 for a sentinel.
func (ts Timestamp) Day() int {
	if !ts.IsFinite() {
		return 0
	}
	return ts.date.Day()
}

// DayOfYear returns the ordinal day of the year of ts, or 0 for a
// sentinel.
func (ts Timestamp) DayOfYear() int {
	if !ts.IsFinite() {
		return 0
	}
	return ts.date.DayOfYear()
}

// DayOfWeek returns the day of the week of ts, or the zero Weekday for a
// sentinel.
func (ts Timestamp) DayOfWeek() time.Weekday {
	if !ts.IsFinite() {
		return 0
	}
	return ts.date.DayOfWeek()
}

// IsLeapYear reports whether the year of ts is a leap year.
func (ts Timestamp) IsLeapYear() bool {
	return ts.IsFinite() && ts.date.IsLeapYear()
}

// Hour returns the hour of the day of ts.
func (ts Timestamp) Hour() int { return ts.TimeOfDay().Hours() }

// Minute returns the minute of the hour of ts.
func (ts Timestamp) Minute() int { return ts.TimeOfDay().Minutes() }

// Second returns the second of the minute of ts.
func (ts Timestamp) Second() int { return ts.TimeOfDay().Seconds() }

// Millisecond returns the millisecond of the second of ts.
func (ts Timestamp) Millisecond() int { return ts.TimeOfDay().Milliseconds() }

// Ticks returns the linear position of ts as 100-nanosecond ticks since
// midnight of the era, or 0 for a sentinel.
func (ts Timestamp) Ticks() int64 {
	if !ts.IsFinite() {
		return 0
	}
	return int64(ts.date.DaysSinceEra())*TicksPerDay + ts.tod.Ticks()
}

// GoTime projects ts into a time.Time. It returns ErrInvalidCast when ts
// is a sentinel or its year falls outside time.Time's conventional 1–9999
// range. A KindUTC result is in time.UTC, a KindLocal result in
// time.Local, and a KindUnspecified result in an unnamed zero-offset zone.
func (ts Timestamp) GoTime() (time.Time, error) {
	if !ts.IsFinite() {
		return time.Time{}, fmt.Errorf(
			"%w: cannot convert %s to time.Time", ErrInvalidCast, ts,
		)
	}
	year := ts.date.Year()
	if year < 1 || year > 9999 {
		return time.Time{}, fmt.Errorf(
			"%w: year %d outside time.Time range", ErrInvalidCast, year,
		)
	}

	loc := offsetZero
	switch ts.kind {
	case KindUTC:
		loc = time.UTC
	case KindLocal:
		loc = time.Local
	}
	nsec := int(ts.tod.Ticks() % TicksPerSecond * 100)
	return time.Date(
		year, ts.date.Month(), ts.date.Day(),
		ts.Hour(), ts.Minute(), ts.Second(), nsec, loc,
	), nil
}

// offsetZero represents time zone offset zero.
//
//nolint:gochecknoglobals
var offsetZero = time.FixedZone("", 0)

// ToUniversalTime converts ts to a KindUTC Timestamp by subtracting the
// host's local UTC offset. KindUnspecified is deliberately treated as a
// local reading for this conversion; it is a policy, not an inference. A
// KindUTC value and both sentinels are returned unchanged, so the
// conversion is idempotent.
func (ts Timestamp) ToUniversalTime() Timestamp {
	if !ts.IsFinite() || ts.kind == KindUTC {
		return ts
	}
	out := ts.AddTicks(-int64(ts.localOffsetSeconds()) * TicksPerSecond)
	out.kind = KindUTC
	return out
}

// ToLocalTime converts ts to a KindLocal Timestamp by adding the host's
// local UTC offset. KindUnspecified is deliberately treated as a UTC
// reading for this conversion, mirroring ToUniversalTime's policy. A
// KindLocal value and both sentinels are returned unchanged.
func (ts Timestamp) ToLocalTime() Timestamp {
	if !ts.IsFinite() || ts.kind == KindLocal {
		return ts
	}
	out := ts.AddTicks(int64(ts.localOffsetSeconds()) * TicksPerSecond)
	out.kind = KindLocal
	return out
}

// localOffsetSeconds returns the host's UTC offset for the moment ts
// represents when it projects into time.Time, or the current offset
// otherwise.
func (ts Timestamp) localOffsetSeconds() int {
	if t, err := ts.GoTime(); err == nil {
		_, off := t.In(time.Local).Zone()
		return off
	}
	_, off := time.Now().Zone()
	return off
}

// AddTicks returns ts shifted by n 100-nanosecond ticks, normalized. A
// sentinel is returned unchanged: infinity absorbs addition.
func (ts Timestamp) AddTicks(n int64) Timestamp {
	if !ts.IsFinite() {
		return ts
	}
	return TimestampFromTicks(ts.Ticks()+n, ts.kind)
}

// Add returns ts shifted by iv, normalized. A sentinel is returned
// unchanged.
func (ts Timestamp) Add(iv Interval) Timestamp { return ts.AddTicks(iv.Ticks()) }

// AddDays returns ts shifted by n days. A sentinel is returned unchanged.
func (ts Timestamp) AddDays(n int) Timestamp {
	return ts.AddTicks(int64(n) * TicksPerDay)
}

// AddHours returns ts shifted by n hours. A sentinel is returned
// unchanged.
func (ts Timestamp) AddHours(n int) Timestamp {
	return ts.AddTicks(int64(n) * TicksPerHour)
}

// AddMinutes returns ts shifted by n minutes. A sentinel is returned
// unchanged.
func (ts Timestamp) AddMinutes(n int) Timestamp {
	return ts.AddTicks(int64(n) * TicksPerMinute)
}

// AddSeconds returns ts shifted by n seconds. A sentinel is returned
// unchanged.
func (ts Timestamp) AddSeconds(n int) Timestamp {
	return ts.AddTicks(int64(n) * TicksPerSecond)
}

// AddMilliseconds returns ts shifted by n milliseconds. A sentinel is
// returned unchanged.
func (ts Timestamp) AddMilliseconds(n int) Timestamp {
	return ts.AddTicks(int64(n) * TicksPerMillisecond)
}

// AddMonths returns ts shifted by n calendar months, delegating rollover
// rules, including day clamping, to [Date.AddMonths]. A sentinel is
// returned unchanged.
func (ts Timestamp) AddMonths(n int) Timestamp {
	if !ts.IsFinite() {
		return ts
	}
	return Timestamp{date: ts.date.AddMonths(n), tod: ts.tod, kind: ts.kind}
}

// AddYears returns ts shifted by n calendar years, delegating to
// [Date.AddYears]. A sentinel is returned unchanged.
func (ts Timestamp) AddYears(n int) Timestamp {
	if !ts.IsFinite() {
		return ts
	}
	return Timestamp{date: ts.date.AddYears(n), tod: ts.tod, kind: ts.kind}
}

// Normalize folds whole days of the time-of-day component into the date
// component, leaving the time of day in [0, 24h). It is a self-add of
// zero, so it is idempotent and leaves sentinels unchanged.
func (ts Timestamp) Normalize() Timestamp { return ts.AddTicks(0) }

// Subtract returns ts shifted backward by iv. A sentinel is returned
// unchanged.
func (ts Timestamp) Subtract(iv Interval) Timestamp { return ts.Add(iv.Neg()) }

// Sub returns the Interval ts−u. It returns ErrInvalidOperation when
// either operand is a sentinel: infinities have no finite difference. The
// kinds of the operands are ignored.
func (ts Timestamp) Sub(u Timestamp) (Interval, error) {
	if !ts.IsFinite() || !u.IsFinite() {
		return Interval{}, fmt.Errorf(
			"%w: cannot subtract %s from %s", ErrInvalidOperation, u, ts,
		)
	}
	days := int64(ts.date.DaysSinceEra() - u.date.DaysSinceEra())
	return IntervalFromTicks(days*TicksPerDay + ts.tod.Ticks() - u.tod.Ticks()), nil
}

// Compare compares ts with u under the total order NegativeInfinity <
// every finite value < Infinity. Two sentinels of the same sign are equal.
// Finite values order by date, then by time of day, ignoring Kind.
func (ts Timestamp) Compare(u Timestamp) int {
	tr, ur := ts.rank(), u.rank()
	switch {
	case tr < ur:
		return -1
	case tr > ur:
		return 1
	case !ts.IsFinite():
		return 0
	}
	if c := ts.date.Compare(u.date); c != 0 {
		return c
	}
	return ts.tod.Compare(u.tod)
}

func (ts Timestamp) rank() int {
	switch ts.variant {
	case minusInfinity:
		return -1
	case plusInfinity:
		return 1
	default:
		return 0
	}
}

// CompareTimestamps mirrors [Timestamp.Compare] as a free function for use
// with slices.SortFunc and friends.
func CompareTimestamps(a, b Timestamp) int { return a.Compare(b) }

// String returns the PostgreSQL text representation of ts: "infinity",
// "-infinity", or "<date> <time>" with any era marker last, as in
// "0055-03-01 13:30:00 BC".
func (ts Timestamp) String() string {
	switch ts.variant {
	case plusInfinity:
		return "infinity"
	case minusInfinity:
		return "-infinity"
	}
	d := ts.date.String()
	if rest, ok := cutSuffixFold(d, " bc"); ok {
		return rest + " " + ts.tod.String() + " BC"
	}
	return d + " " + ts.tod.String()
}

// ParseTimestamp parses src into a Timestamp with KindUnspecified. It
// recognizes the "infinity" and "-infinity" sentinels case-insensitively;
// otherwise the first two space-delimited tokens are parsed as date and
// time of day, with the era marker carried to the date when the text
// contains "bc". Out-of-range numeric components are reported as
// ErrOverflow, distinct from the ErrFormat returned for any other failure;
// empty input returns ErrNullArgument.
func ParseTimestamp(src string) (Timestamp, error) {
	s := strings.ToLower(strings.TrimSpace(src))
	if s == "" {
		return Timestamp{}, fmt.Errorf("%w: empty timestamp", ErrNullArgument)
	}

	switch s {
	case "infinity":
		return Infinity, nil
	case "-infinity":
		return NegativeInfinity, nil
	}

	parts := strings.Fields(s)
	if len(parts) < 2 {
		return Timestamp{}, fmt.Errorf(
			"%w: %q is not a timestamp", ErrFormat, src,
		)
	}
	dateStr, timeStr := parts[0], parts[1]
	if strings.Contains(s, "bc") {
		dateStr += " bc"
	}

	date, err := ParseDate(dateStr)
	if err != nil {
		return Timestamp{}, parseFailure(src, err)
	}
	tod, err := ParseInterval(timeStr)
	if err != nil {
		return Timestamp{}, parseFailure(src, err)
	}
	return NewTimestamp(date, tod, KindUnspecified), nil
}

// parseFailure folds component parse errors into ErrFormat, except
// overflow, which is propagated as-is so callers can tell a structurally
// valid but out-of-range value from an unrecognizable one.
func parseFailure(src string, err error) error {
	if errors.Is(err, ErrOverflow) {
		return err
	}
	return fmt.Errorf("%w: %q is not a timestamp", ErrFormat, src)
}

// MarshalJSON implements the json.Marshaler interface. The value is the
// quoted String form.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	s := ts.String()
	b := make([]byte, 0, len(s)+len(`""`))
	b = append(b, '"')
	b = append(b, s...)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The value must
// be a quoted string in a form accepted by ParseTimestamp.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("%w: %s is not a JSON string", ErrFormat, data)
	}
	parsed, err := ParseTimestamp(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
