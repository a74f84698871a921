// Package converter turns a raw text value in one length unit into a
// rounded value in another. Conversions are routed through meters.
package converter

import (
	"math"
	"strconv"
	"strings"

	"github.com/migliorelli/uconv/pkg/units"
)

// FallbackValue is used in place of input that does not parse as a number.
const FallbackValue = 10.0

// ResultPrefix precedes the formatted output on the result label.
const ResultPrefix = "Result: "

// ParseInput reads raw as a float. A single trailing type suffix (f, F, d
// or D, as in "2.5f") is accepted. When raw is not a finite number it
// returns FallbackValue and ok=false.
func ParseInput(raw string) (value float64, ok bool) {
	v, err := strconv.ParseFloat(trimTypeSuffix(strings.TrimSpace(raw)), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return FallbackValue, false
	}
	return v, true
}

func trimTypeSuffix(s string) string {
	if len(s) < 2 {
		return s
	}
	switch s[len(s)-1] {
	case 'f', 'F', 'd', 'D':
		return s[:len(s)-1]
	}
	return s
}

// Convert parses rawInput and converts it from one unit to another, rounded
// to two decimal places. It never fails: unparseable input converts
// FallbackValue instead.
func Convert(rawInput string, from, to units.Unit) float64 {
	value, _ := ParseInput(rawInput)
	return ConvertValue(value, from, to)
}

// ConvertValue is Convert for an already parsed value.
func ConvertValue(value float64, from, to units.Unit) float64 {
	meters := from.ToMeters(value)
	return Round(to.FromMeters(meters))
}

// Round rounds v to two decimals, halves rounding up.
func Round(v float64) float64 {
	// The explicit conversion keeps the multiply from fusing with the add.
	r := math.Floor(float64(v*100)+0.5) / 100
	if r == 0 {
		return 0 // drop the sign of -0
	}
	return r
}

// FormatValue renders v the way the result label shows it: the shortest
// decimal that round-trips, always with a fractional part, switching to
// scientific notation outside [1e-3, 1e7).
func FormatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0.0"
	}

	abs := math.Abs(v)
	if abs >= 1e7 || abs < 1e-3 {
		s := strconv.FormatFloat(v, 'E', -1, 64)
		mant, exp, _ := strings.Cut(s, "E")
		if !strings.Contains(mant, ".") {
			mant += ".0"
		}
		e, _ := strconv.Atoi(exp)
		return mant + "E" + strconv.Itoa(e)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ResultLabel is the text of the result line for v.
func ResultLabel(v float64) string {
	return ResultPrefix + FormatValue(v)
}
