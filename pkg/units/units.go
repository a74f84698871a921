// Package units defines the closed set of length units the converter knows
// about. Every unit is expressed relative to meters, the base unit.
package units

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownUnit is returned by Parse for names outside the enumeration.
var ErrUnknownUnit = errors.New("unknown unit")

// Unit is one of the supported length units.
type Unit uint8

const (
	Centimeters Unit = iota
	Meters
	Feet
	Millimeters
)

type unitInfo struct {
	key      string
	symbol   string
	label    string
	perMeter float64 // how many of this unit make one meter
	aliases  []string
}

var table = [...]unitInfo{
	Centimeters: {
		key:      "centimeters",
		symbol:   "cm",
		label:    "Centimeters",
		perMeter: 100,
		aliases:  []string{"centimeter", "centimetres", "centimetre"},
	},
	Meters: {
		key:      "meters",
		symbol:   "m",
		label:    "Meters",
		perMeter: 1,
		aliases:  []string{"meter", "metres", "metre"},
	},
	Feet: {
		key:      "feet",
		symbol:   "ft",
		label:    "Feet",
		perMeter: 3.281,
		aliases:  []string{"foot", "feets"},
	},
	Millimeters: {
		key:      "millimeters",
		symbol:   "mm",
		label:    "Millimeters",
		perMeter: 1000,
		aliases:  []string{"millimeter", "millimetres", "millimetre"},
	},
}

// byName maps every accepted spelling to its unit.
var byName = func() map[string]Unit {
	m := make(map[string]Unit)
	for _, u := range All() {
		info := table[u]
		m[info.key] = u
		m[info.symbol] = u
		for _, a := range info.aliases {
			m[a] = u
		}
	}
	return m
}()

// All returns every unit in display order.
func All() []Unit {
	return []Unit{Centimeters, Meters, Feet, Millimeters}
}

// Parse resolves a unit from its key, symbol or an alias, ignoring case
// and surrounding whitespace.
func Parse(name string) (Unit, error) {
	u, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
	return u, nil
}

// Valid reports whether u is part of the enumeration.
func (u Unit) Valid() bool {
	return int(u) < len(table)
}

// Key is the canonical lowercase name, used in config files and output.
func (u Unit) Key() string {
	if !u.Valid() {
		return ""
	}
	return table[u].key
}

// Symbol is the short form, e.g. "cm".
func (u Unit) Symbol() string {
	if !u.Valid() {
		return ""
	}
	return table[u].symbol
}

// Label is the human readable name shown in selectors.
func (u Unit) Label() string {
	if !u.Valid() {
		return ""
	}
	return table[u].label
}

// Aliases returns the extra spellings Parse accepts for u.
func (u Unit) Aliases() []string {
	if !u.Valid() {
		return nil
	}
	return append([]string(nil), table[u].aliases...)
}

// PerMeter is how many of u make up one meter.
func (u Unit) PerMeter() float64 {
	if !u.Valid() {
		return 1
	}
	return table[u].perMeter
}

// FactorToMeters is the multiplier that turns a value in u into meters.
func (u Unit) FactorToMeters() float64 {
	return 1 / u.PerMeter()
}

// ToMeters normalizes v, expressed in u, to the base unit.
func (u Unit) ToMeters(v float64) float64 {
	return v / u.PerMeter()
}

// FromMeters scales a value in meters to u.
func (u Unit) FromMeters(v float64) float64 {
	return v * u.PerMeter()
}

func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
	return table[u].label
}

// MarshalText encodes the unit as its key.
func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownUnit, uint8(u))
	}
	return []byte(u.Key()), nil
}

// UnmarshalText accepts anything Parse does.
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
