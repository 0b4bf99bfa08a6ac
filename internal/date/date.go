// Package date implements the slash-delimited birth date value stored for each person.
//
// A Date is three unsigned fields named after the position they are parsed from.
// No calendar rules are applied: "13/40/1999" is a valid Date and round-trips unchanged.
package date

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed is returned (wrapped) when text cannot be parsed into a Date.
var ErrMalformed = errors.New("malformed date")

const separator = "/"

// Date is an immutable month/day/year triple.
type Date struct {
	Month uint32
	Day   uint32
	Year  uint32
}

// New returns a Date from its three fields, in parse order.
func New(month, day, year uint32) Date {
	return Date{Month: month, Day: day, Year: year}
}

// Parse reads "<month>/<day>/<year>". Exactly three segments are required and each
// must be a base-10 unsigned 32-bit integer, optionally prefixed with '+'.
func Parse(text string) (Date, error) {
	segments := strings.Split(text, separator)
	if len(segments) != 3 {
		return Date{}, fmt.Errorf("%w: %q has %d segments, want 3", ErrMalformed, text, len(segments))
	}

	var fields [3]uint32
	for i, seg := range segments {
		// A single leading '+' is accepted, as in older date files.
		n, err := strconv.ParseUint(strings.TrimPrefix(seg, "+"), 10, 32)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q: segment %d (%q) is not a non-negative integer", ErrMalformed, text, i+1, seg)
		}
		fields[i] = uint32(n)
	}

	return New(fields[0], fields[1], fields[2]), nil
}

// String formats the date in parse order, so Parse(d.String()) == d.
func (d Date) String() string {
	return fmt.Sprintf("%d/%d/%d", d.Month, d.Day, d.Year)
}

// Equal reports whether all three fields match.
func (d Date) Equal(other Date) bool {
	return d.Month == other.Month && d.Day == other.Day && d.Year == other.Year
}
