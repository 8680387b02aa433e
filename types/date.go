package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/constraints"
)

// Date represents the PostgreSQL date type as a count of days since the era
// (0001-01-01 in the proleptic Gregorian calendar). The count is negative
// for BC dates. Unlike time.Time, it carries no clock or zone and supports
// years well outside 1–9999.
//
// Date is an immutable value; methods that adjust it return a new Date.
type Date struct {
	days int
}

// epochDays is the number of days from the era (0001-01-01) to the Unix
// epoch (1970-01-01).
const epochDays = 719162

//nolint:gochecknoglobals
var (
	// DateEra is 0001-01-01, day zero of the era.
	DateEra = Date{}

	// DateEpoch is 1970-01-01, the Unix epoch.
	DateEpoch = Date{days: epochDays}
)

// MakeDate returns the Date for the given proleptic Gregorian calendar day.
// The year is astronomical: year 0 is 1 BC, year -1 is 2 BC, and so on.
// Out-of-range month and day values are normalized the way time.Date
// normalizes them, so MakeDate(2024, 1, 32) is 2024-02-01.
func MakeDate(year, month, day int) Date {
	months := year*12 + (month - 1)
	year = floorDiv(months, 12)
	month = months - year*12 + 1
	return Date{days: daysFromCivil(year, month, day) + epochDays}
}

// DateFromDays returns the Date the given number of days after the era.
// Negative counts produce BC dates.
func DateFromDays(days int) Date {
	return Date{days: days}
}

// DaysSinceEra returns the number of days between d and the era. Negative
// for BC dates.
func (d Date) DaysSinceEra() int { return d.days }

// Year returns the astronomical year of d: year 0 is 1 BC.
func (d Date) Year() int {
	y, _, _ := civilFromDays(d.days - epochDays)
	return y
}

// Month returns the month of d.
func (d Date) Month() time.Month {
	_, m, _ := civilFromDays(d.days - epochDays)
	return time.Month(m)
}

// Day returns the day of the month of d.
func (d Date) Day() int {
	_, _, day := civilFromDays(d.days - epochDays)
	return day
}

// DayOfYear returns the ordinal day of the year of d, in 1–366.
func (d Date) DayOfYear() int {
	y, _, _ := civilFromDays(d.days - epochDays)
	return d.days - (daysFromCivil(y, 1, 1) + epochDays) + 1
}

// DayOfWeek returns the day of the week of d. The era began on a Monday.
func (d Date) DayOfWeek() time.Weekday {
	return time.Weekday(floorMod(d.days+1, 7))
}

// IsLeapYear reports whether the year of d is a Gregorian leap year. The
// astronomical year rule applies, so 1 BC (year 0) is a leap year.
func (d Date) IsLeapYear() bool {
	return isLeapYear(d.Year())
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return Date{days: d.days + n}
}

// AddMonths returns d shifted by n calendar months. When the target month
// is shorter than the day of d, the day is clamped to the last day of the
// target month, so 2024-01-31 plus one month is 2024-02-29.
func (d Date) AddMonths(n int) Date {
	y, m, day := civilFromDays(d.days - epochDays)
	months := y*12 + (m - 1) + n
	y = floorDiv(months, 12)
	m = months - y*12 + 1
	if last := daysInMonth(y, m); day > last {
		day = last
	}
	return MakeDate(y, m, day)
}

// AddYears returns d shifted by n calendar years, clamping February 29 to
// February 28 when the target year is not a leap year.
func (d Date) AddYears(n int) Date {
	return d.AddMonths(n * 12)
}

// Compare compares d with u. It returns -1 if d is before u, +1 if d is
// after u, and 0 if they are the same day.
func (d Date) Compare(u Date) int {
	switch {
	case d.days < u.days:
		return -1
	case d.days > u.days:
		return 1
	default:
		return 0
	}
}

// String returns the PostgreSQL text representation of d, such as
// "2024-01-15" or "0055-03-01 BC".
func (d Date) String() string {
	y, m, day := civilFromDays(d.days - epochDays)
	if y > 0 {
		return fmt.Sprintf("%04d-%02d-%02d", y, m, day)
	}
	return fmt.Sprintf("%04d-%02d-%02d BC", 1-y, m, day)
}

// ParseDate parses src in the form "2006-01-02" with an optional trailing
// era marker ("2006-01-02 BC", case-insensitive). It returns ErrFormat when
// the structure is unrecognizable, ErrOverflow when a component is numeric
// but outside its calendar range, and ErrNullArgument when src is empty.
func ParseDate(src string) (Date, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return Date{}, fmt.Errorf("%w: empty date", ErrNullArgument)
	}

	bc := false
	if rest, ok := cutSuffixFold(src, "bc"); ok {
		bc = true
		src = strings.TrimSpace(rest)
	}

	parts := strings.Split(src, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q is not a date", ErrFormat, src)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return Date{}, fmt.Errorf("%w: date field %q", ErrOverflow, p)
			}
			return Date{}, fmt.Errorf("%w: %q is not a date", ErrFormat, src)
		}
		nums[i] = n
	}

	year, month, day := nums[0], nums[1], nums[2]
	if year < 1 {
		return Date{}, fmt.Errorf("%w: year %d out of range", ErrOverflow, year)
	}
	if bc {
		// Year 1 BC is astronomical year zero.
		year = 1 - year
	}
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("%w: month %d out of range", ErrOverflow, month)
	}
	if day < 1 || day > daysInMonth(year, month) {
		return Date{}, fmt.Errorf("%w: day %d out of range", ErrOverflow, day)
	}
	return MakeDate(year, month, day), nil
}

// cutSuffixFold is strings.CutSuffix under ASCII case folding.
func cutSuffixFold(s, suffix string) (string, bool) {
	if len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix) {
		return s[:len(s)-len(suffix)], true
	}
	return s, false
}

func isLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

//nolint:gochecknoglobals
var monthDays = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func daysInMonth(y, m int) int {
	if m == 2 && isLeapYear(y) {
		return 29
	}
	return monthDays[m-1]
}

// daysFromCivil converts a proleptic Gregorian calendar day to a count of
// days since 1970-01-01, using the standard civil-days computation over
// 400-year eras.
func daysFromCivil(y, m, d int) int {
	if m <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	var doy int
	if m > 2 {
		doy = (153*(m-3)+2)/5 + d - 1
	} else {
		doy = (153*(m+9)+2)/5 + d - 1
	}
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(z int) (y, m, d int) {
	z += 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y = yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d = doy - (153*mp+2)/5 + 1
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return y, m, d
}

func floorDiv[T constraints.Signed](a, b T) T {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod[T constraints.Signed](a, b T) T {
	return a - floorDiv(a, b)*b
}
