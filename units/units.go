// Package units converts numeric values between compatible CSS units.
//
// Angles (deg, grad, rad, turn), lengths (px, cm, mm, in, pt, pc), times (s, ms),
// frequencies (Hz, kHz) and resolutions (dpi, dpcm, dppx) are supported.
package units

import (
	"errors"
	"fmt"
	"math"
)

// DefaultPrecision is the number of decimals Convert rounds to.
const DefaultPrecision = 5

var (
	// ErrUnknownUnit is returned when a unit is not known.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrIncompatibleUnits is returned when converting between units
	// of different kinds, e.g. from px to deg.
	ErrIncompatibleUnits = errors.New("incompatible units")
)

// conversions[to][from] is the factor to multiply a value in from with.
var conversions = map[string]map[string]float64{
	// length
	"px": {"px": 1, "cm": 96.0 / 2.54, "mm": 96.0 / 25.4, "in": 96, "pt": 96.0 / 72.0, "pc": 16},
	"cm": {"px": 2.54 / 96.0, "cm": 1, "mm": 0.1, "in": 2.54, "pt": 2.54 / 72.0, "pc": 2.54 / 6.0},
	"mm": {"px": 25.4 / 96.0, "cm": 10, "mm": 1, "in": 25.4, "pt": 25.4 / 72.0, "pc": 25.4 / 6.0},
	"in": {"px": 1.0 / 96.0, "cm": 1.0 / 2.54, "mm": 1 / 25.4, "in": 1, "pt": 1.0 / 72.0, "pc": 1.0 / 6.0},
	"pt": {"px": 0.75, "cm": 72.0 / 2.54, "mm": 72.0 / 25.4, "in": 72, "pt": 1, "pc": 12},
	"pc": {"px": 6.0 / 96.0, "cm": 6.0 / 2.54, "mm": 6.0 / 25.4, "in": 6, "pt": 6.0 / 72.0, "pc": 1},

	// angle
	"deg":  {"deg": 1, "grad": 0.9, "rad": 180 / math.Pi, "turn": 360},
	"grad": {"deg": 400.0 / 360.0, "grad": 1, "rad": 200 / math.Pi, "turn": 400},
	"rad":  {"deg": math.Pi / 180, "grad": math.Pi / 200, "rad": 1, "turn": math.Pi * 2},
	"turn": {"deg": 1.0 / 360.0, "grad": 1.0 / 400.0, "rad": 0.5 / math.Pi, "turn": 1},

	// time
	"s":  {"s": 1, "ms": 1.0 / 1000},
	"ms": {"s": 1000, "ms": 1},

	// frequency
	"Hz":  {"Hz": 1, "kHz": 1000},
	"kHz": {"Hz": 1.0 / 1000, "kHz": 1},

	// resolution
	"dpi":  {"dpi": 1, "dpcm": 2.54, "dppx": 96},
	"dpcm": {"dpi": 1.0 / 2.54, "dpcm": 1, "dppx": 96.0 / 2.54},
	"dppx": {"dpi": 1.0 / 96, "dpcm": 2.54 / 96.0, "dppx": 1},
}

// Convert converts value from one unit to another, rounded to
// DefaultPrecision decimals.
func Convert(value float64, from, to string) (float64, error) {
	return ConvertPrecision(value, from, to, DefaultPrecision)
}

// ConvertPrecision is like Convert, but rounds to the given number of decimals.
// A precision <= 0 means DefaultPrecision.
func ConvertPrecision(value float64, from, to string, precision int) (float64, error) {
	v, err := ConvertExact(value, from, to)
	if err != nil {
		return 0, err
	}
	if precision <= 0 {
		precision = DefaultPrecision
	}
	p := math.Pow(10, float64(precision))
	// Half-up, not half away from zero.
	return math.Floor(v*p+0.5) / p, nil
}

// ConvertExact converts value from one unit to another without any rounding.
func ConvertExact(value float64, from, to string) (float64, error) {
	target, ok := conversions[to]
	if !ok {
		return 0, fmt.Errorf("cannot convert to %q: %w", to, ErrUnknownUnit)
	}
	factor, ok := target[from]
	if !ok {
		if _, known := conversions[from]; !known {
			return 0, fmt.Errorf("cannot convert from %q: %w", from, ErrUnknownUnit)
		}
		return 0, fmt.Errorf("cannot convert from %q to %q: %w", from, to, ErrIncompatibleUnits)
	}
	return factor * value, nil
}

// ToDegrees converts an angle in unit (deg, grad, rad or turn) to degrees.
// An empty unit means deg.
func ToDegrees(value float64, unit string) (float64, error) {
	if unit == "" {
		unit = "deg"
	}
	if !IsAngle(unit) {
		return 0, fmt.Errorf("%q is not an angle: %w", unit, ErrUnknownUnit)
	}
	return Convert(value, unit, "deg")
}

// IsAngle reports whether unit is one of deg, grad, rad or turn.
func IsAngle(unit string) bool {
	switch unit {
	case "deg", "grad", "rad", "turn":
		return true
	}
	return false
}
