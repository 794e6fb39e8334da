// Package mathutil holds small numeric helpers shared by the
// TimeBase and sample-rate-conversion code, mirroring the teacher's
// own internal/mathutil package of shared DSP numeric primitives.
package mathutil

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// RoundHalfAwayFromZero rounds x to the nearest integer, ties away
// from zero, via gonum's scalar.Round at zero decimal precision.
func RoundHalfAwayFromZero(x float64) float64 {
	return scalar.Round(x, 0)
}

// FrequencyUnits lists the SI prefixes engineering_frequency divides
// through, in ascending order, capped at PHz.
var FrequencyUnits = []string{"Hz", "kHz", "MHz", "GHz", "THz", "PHz"}

// EngineeringFrequency divides rawHz by 1000 repeatedly until the
// mantissa falls in [1, 1000), returning the mantissa and its SI
// prefix. Division stops at PHz even if the mantissa would otherwise
// climb higher (property P8's stated cap).
func EngineeringFrequency(rawHz float64) (float64, string) {
	value := rawHz
	unit := FrequencyUnits[0]
	for i := 0; i < len(FrequencyUnits)-1; i++ {
		if math.Abs(value) < 1000 {
			break
		}
		value /= 1000
		unit = FrequencyUnits[i+1]
	}
	return value, unit
}

// IntervalUnitForExponent maps a decimal time exponent to its SI
// symbol, defaulting to "?s" for exponents outside the known table.
func IntervalUnitForExponent(exp int) string {
	switch exp {
	case 0:
		return "s"
	case -3:
		return "ms"
	case -6:
		return "µs"
	case -9:
		return "ns"
	case -12:
		return "ps"
	case -15:
		return "fs"
	default:
		return "?s"
	}
}

// NormalizeToExponent picks the largest exponent e in {+15, +12, ...,
// -15} (steps of 3) such that targetSeconds/10^e >= 1, and rounds
// targetSeconds/10^e to the nearest integer step (half away from
// zero). It returns the pair as (step, exponent) so callers can build
// a time_step/time_exponent TimeBase pair directly.
func NormalizeToExponent(targetSeconds float64) (step uint32, exponent int) {
	if targetSeconds <= 0 {
		return 0, 0
	}
	for e := 15; e >= -15; e -= 3 {
		scaled := targetSeconds / math.Pow(10, float64(e))
		if scaled >= 1 {
			rounded := RoundHalfAwayFromZero(scaled)
			return uint32(rounded), e
		}
	}
	rounded := RoundHalfAwayFromZero(targetSeconds / math.Pow(10, -15))
	return uint32(rounded), -15
}
