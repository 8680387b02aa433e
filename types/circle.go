package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Circle represents the PostgreSQL circle type: a center point and a
// radius, each a float64. It has no identity beyond its field values.
type Circle struct {
	X      float64
	Y      float64
	Radius float64
}

// String returns the PostgreSQL text representation of c, "<(x,y),r>".
func (c Circle) String() string {
	return fmt.Sprintf(
		"<(%s,%s),%s>",
		formatFloat(c.X), formatFloat(c.Y), formatFloat(c.Radius),
	)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// ParseCircle parses src in any of the text forms PostgreSQL accepts for
// circles: "<(x,y),r>", "((x,y),r)", "(x,y),r", or "x,y,r". It returns
// ErrFormat when the structure is unrecognizable, ErrOverflow when a field
// is numeric but outside the float64 range, and ErrNullArgument when src
// is empty.
func ParseCircle(src string) (Circle, error) {
	s := strings.TrimSpace(src)
	if s == "" {
		return Circle{}, fmt.Errorf("%w: empty circle", ErrNullArgument)
	}

	if strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">") {
		s = s[1 : len(s)-1]
	} else if strings.HasPrefix(s, "((") && strings.HasSuffix(s, ")") {
		s = s[1 : len(s)-1]
	}

	// Down to "(x,y),r" or "x,y,r".
	s = strings.ReplaceAll(strings.ReplaceAll(s, "(", ""), ")", "")
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Circle{}, fmt.Errorf("%w: %q is not a circle", ErrFormat, src)
	}

	var fields [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return Circle{}, fmt.Errorf("%w: circle field %q", ErrOverflow, p)
			}
			return Circle{}, fmt.Errorf("%w: %q is not a circle", ErrFormat, src)
		}
		fields[i] = f
	}
	return Circle{X: fields[0], Y: fields[1], Radius: fields[2]}, nil
}

// MarshalJSON implements the json.Marshaler interface. The value is the
// quoted String form.
func (c Circle) MarshalJSON() ([]byte, error) {
	s := c.String()
	b := make([]byte, 0, len(s)+len(`""`))
	b = append(b, '"')
	b = append(b, s...)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The value must
// be a quoted string in a form accepted by ParseCircle.
func (c *Circle) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("%w: %s is not a JSON string", ErrFormat, data)
	}
	parsed, err := ParseCircle(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
