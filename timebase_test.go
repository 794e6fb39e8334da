package timelinedb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngineeringUnitsMHz(t *testing.T) {
	tb := TimeBase{TimeStep: 1, TimeExponent: -6}
	freq, unit := tb.EngineeringFrequency()
	assert.InDelta(t, 1.0, freq, 1e-9)
	assert.Equal(t, "MHz", unit)

	interval, iunit := tb.EngineeringInterval()
	assert.InDelta(t, 1.0, interval, 1e-9)
	assert.Equal(t, "µs", iunit)
}

func TestEngineeringUnits48kHz(t *testing.T) {
	tb := TimeBase{TimeStep: 48, TimeExponent: -6}
	interval, iunit := tb.EngineeringInterval()
	assert.InDelta(t, 48.0, interval, 1e-9)
	assert.Equal(t, "µs", iunit)

	freq, funit := tb.EngineeringFrequency()
	assert.InDelta(t, 20.833, freq, 1e-2)
	assert.Equal(t, "kHz", funit)
}

func TestNormalizeToExponentRoundTrips(t *testing.T) {
	tb := NormalizeToExponent(1.0 / 1_000_000)
	assert.EqualValues(t, 1, tb.TimeStep)
	assert.Equal(t, -6, tb.TimeExponent)
}

func TestRateRatio(t *testing.T) {
	input := TimeBase{TimeStep: 1, TimeExponent: -6} // 1 MHz
	ratio := RateRatio(input, 2_000_000)
	assert.InDelta(t, 2.0, ratio, 1e-9)
}
