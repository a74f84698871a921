package converter

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/migliorelli/uconv/pkg/units"
)

func TestConvertKnownValues(t *testing.T) {
	tests := []struct {
		in   string
		from units.Unit
		to   units.Unit
		want float64
	}{
		{"100", units.Centimeters, units.Meters, 1.0},
		{"1", units.Meters, units.Feet, 3.28},
		{"1", units.Feet, units.Meters, 0.3},
		{"12", units.Feet, units.Centimeters, 365.74},
		{"2.5", units.Meters, units.Millimeters, 2500},
		{"1234", units.Millimeters, units.Feet, 4.05},
		{"-3", units.Meters, units.Centimeters, -300},
		{"10", units.Feet, units.Millimeters, 3047.85},
		{"5280", units.Feet, units.Meters, 1609.27},
		{" 100 ", units.Centimeters, units.Meters, 1.0},
		{"1e3", units.Millimeters, units.Meters, 1.0},
	}
	for _, tt := range tests {
		got := Convert(tt.in, tt.from, tt.to)
		if got != tt.want {
			t.Errorf("Convert(%q, %v, %v) = %v, want %v", tt.in, tt.from, tt.to, got, tt.want)
		}
	}
}

func TestConvertFallback(t *testing.T) {
	abc := Convert("abc", units.Centimeters, units.Meters)
	empty := Convert("", units.Centimeters, units.Meters)
	if abc != empty {
		t.Errorf("Expected 'abc' and '' to convert alike, got %v and %v", abc, empty)
	}
	if abc != 0.1 {
		t.Errorf("Expected fallback conversion 0.1, got %v", abc)
	}

	for _, in := range []string{"NaN", "inf", "-Infinity", "1,5", "12abc", "."} {
		if got := Convert(in, units.Meters, units.Meters); got != FallbackValue {
			t.Errorf("Convert(%q, m, m) = %v, want fallback %v", in, got, FallbackValue)
		}
	}
}

func TestParseInput(t *testing.T) {
	v, ok := ParseInput("3.5")
	if !ok || v != 3.5 {
		t.Errorf("ParseInput(3.5) = %v, %v", v, ok)
	}
	v, ok = ParseInput("nope")
	if ok || v != FallbackValue {
		t.Errorf("ParseInput(nope) = %v, %v; want fallback", v, ok)
	}
}

func TestParseInputTypeSuffix(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"2.5f", 2.5, true},
		{"2.5F", 2.5, true},
		{"7d", 7, true},
		{" 1e2D ", 100, true},
		{"-3f", -3, true},
		{"f", FallbackValue, false},
		{"2.5ff", FallbackValue, false},
		{"2.5x", FallbackValue, false},
		{"NaNf", FallbackValue, false},
	}
	for _, tt := range tests {
		v, ok := ParseInput(tt.in)
		if v != tt.want || ok != tt.ok {
			t.Errorf("ParseInput(%q) = %v, %v; want %v, %v", tt.in, v, ok, tt.want, tt.ok)
		}
	}
	if got := Convert("2.5f", units.Meters, units.Centimeters); got != 250 {
		t.Errorf("Convert(2.5f, m, cm) = %v, want 250", got)
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.005, 0.01},
		{0.004, 0},
		{1.234, 1.23},
		{1.235, 1.24},
		{-0.005, 0},
		{-0.3, -0.3},
		{2.0, 2.0},
	}
	for _, tt := range tests {
		if got := Round(tt.in); got != tt.want {
			t.Errorf("Round(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if got := Convert("0.005", units.Meters, units.Meters); got != 0.01 {
		t.Errorf("Convert(0.005, m, m) = %v, want 0.01", got)
	}
	if got := Round(-0.001); math.Signbit(got) {
		t.Errorf("Round(-0.001) should not be negative zero")
	}
}

func TestConvertIdentity(t *testing.T) {
	inputs := []string{"0", "1", "2.5", "12.34", "-7.25", "1000", "0.3", "99.99"}
	for _, u := range units.All() {
		for _, in := range inputs {
			v, _ := ParseInput(in)
			if got := Convert(in, u, u); got != Round(v) {
				t.Errorf("Convert(%q, %v, %v) = %v, want %v", in, u, u, got, Round(v))
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	values := []float64{0, 1, 2.5, 12.34, -7.25, 1000, 0.3, 99.99}
	for _, a := range units.All() {
		for _, b := range units.All() {
			for _, v := range values {
				mid := b.FromMeters(a.ToMeters(v))
				back := ConvertValue(mid, b, a)
				if !scalar.EqualWithinAbs(back, Round(v), 0.01) {
					t.Errorf("%v -> %v -> %v: started at %v, came back %v", a, b, a, v, back)
				}
			}
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "0.0"},
		{1, "1.0"},
		{0.1, "0.1"},
		{3.28, "3.28"},
		{-300, "-300.0"},
		{365.74, "365.74"},
		{1e9, "1.0E9"},
		{12345678.9, "1.23456789E7"},
		{0.0005, "5.0E-4"},
		{math.Inf(1), "Infinity"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResultLabel(t *testing.T) {
	if got := ResultLabel(1); got != "Result: 1.0" {
		t.Errorf("ResultLabel(1) = %q", got)
	}
}
