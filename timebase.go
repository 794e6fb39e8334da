package timelinedb

import (
	"math"

	"github.com/bfarago/timelinedb/internal/mathutil"
)

// TimeBase pairs an integer time_step with a decimal time_exponent:
// consecutive samples are time_step * 10^time_exponent seconds apart.
type TimeBase struct {
	TimeStep     uint32
	TimeExponent int
}

// Frequency returns the sampling frequency in Hz implied by this
// TimeBase: 1 / (time_step * 10^time_exponent).
func (tb TimeBase) Frequency() float64 {
	if tb.TimeStep == 0 {
		return 0
	}
	period := float64(tb.TimeStep) * math.Pow(10, float64(tb.TimeExponent))
	return 1 / period
}

// EngineeringFrequency returns this TimeBase's sampling frequency as
// an engineering-unit (mantissa, unit) pair, mantissa in [1, 1000)
// except when capped at PHz.
func (tb TimeBase) EngineeringFrequency() (float64, string) {
	return mathutil.EngineeringFrequency(tb.Frequency())
}

// EngineeringInterval returns (time_step, unit) with unit derived by
// direct table lookup on time_exponent, independent of time_step's
// magnitude.
func (tb TimeBase) EngineeringInterval() (float64, string) {
	return float64(tb.TimeStep), mathutil.IntervalUnitForExponent(tb.TimeExponent)
}

// NormalizeToExponent picks the largest exponent e in {+15, ..., -15}
// (steps of 3) such that targetSeconds/10^e >= 1, and rounds the
// quotient to the nearest u32 step, half away from zero.
func NormalizeToExponent(targetSeconds float64) TimeBase {
	step, exponent := mathutil.NormalizeToExponent(targetSeconds)
	return TimeBase{TimeStep: step, TimeExponent: exponent}
}

// RateRatio computes output_rate / input.Frequency(), the resampling
// ratio consumed by SampleRateConverter.Prepare.
func RateRatio(input TimeBase, outputSampleRateHz float64) float64 {
	inputRate := input.Frequency()
	if inputRate == 0 {
		return 0
	}
	return outputSampleRateHz / inputRate
}
