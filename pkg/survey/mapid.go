package survey

import (
	"math"
	"strconv"
	"strings"
)

// Identifier values with fixed meanings.
const (
	// ReservedID never shifts.
	ReservedID = 0.0

	// PromotedID is a sub-question identifier that becomes question 1
	// instead of following the general rule (which would give 1.1).
	PromotedID = 0.1

	// epsilon is the tolerance for identifier comparisons.
	epsilon = 1e-9

	// precision is the number of decimal places kept in fractional identifiers.
	precision = 10
)

// MapID returns the new identifier for old.
//
// Numbers are mapped by [MapFloat]. A result that lies within 1e-9 of a
// whole number is returned as an integer value, so 2 maps to 3 rather than
// 3.0. Any other value, including numbers too large for a float64, is
// returned unchanged.
func MapID(old Value) Value {
	x, ok := old.Float64()
	if !ok {
		return old
	}
	return Float(MapFloat(x))
}

// MapQuestionID is [MapID] for the "id" member of a question, which may
// also hold its number as a string. A string such as "2.3" (surrounding
// whitespace allowed) is mapped and written back as the number 3.3. Strings
// that are not decimal numbers, and non-finite values, are returned
// unchanged, as are booleans.
func MapQuestionID(old Value) Value {
	s, ok := old.Str()
	if !ok {
		return MapID(old)
	}
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, "xX_") {
		return old
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(x, 0) || math.IsNaN(x) {
		return old
	}
	return Float(MapFloat(x))
}

// MapFloat applies the renumbering rule to x:
//   - 0 stays 0
//   - 0.1 becomes 1
//   - otherwise the integer part moves up by one and the fraction is kept,
//     so 2 becomes 3 and 2.3 becomes 3.3
//
// The integer part is x truncated toward zero. Fractions and results are
// rounded to 10 decimal places, and results within 1e-9 of a whole number
// snap to it.
func MapFloat(x float64) float64 {
	if math.Abs(x-ReservedID) < epsilon {
		return 0
	}
	if math.Abs(x-PromotedID) < epsilon {
		return 1
	}

	integer := math.Trunc(x)
	fraction := round(x-integer, precision)
	next := integer + 1 + fraction
	if n := math.Round(next); math.Abs(next-n) < epsilon {
		return n
	}
	return round(next, precision)
}

// round rounds x to the given number of decimal places. Formatting is
// correctly rounded, which avoids the drift of scaling by a power of ten.
func round(x float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return r
}
