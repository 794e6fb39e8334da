package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 3.0, RoundHalfAwayFromZero(2.5))
	assert.Equal(t, -3.0, RoundHalfAwayFromZero(-2.5))
	assert.Equal(t, 2.0, RoundHalfAwayFromZero(2.4))
}

func TestEngineeringFrequencyMHz(t *testing.T) {
	value, unit := EngineeringFrequency(1_000_000)
	assert.InDelta(t, 1.0, value, 1e-9)
	assert.Equal(t, "MHz", unit)
}

func TestEngineeringFrequencyKHz(t *testing.T) {
	value, unit := EngineeringFrequency(20833.333333)
	assert.InDelta(t, 20.833, value, 1e-2)
	assert.Equal(t, "kHz", unit)
}

func TestIntervalUnitForExponent(t *testing.T) {
	assert.Equal(t, "s", IntervalUnitForExponent(0))
	assert.Equal(t, "ms", IntervalUnitForExponent(-3))
	assert.Equal(t, "µs", IntervalUnitForExponent(-6))
	assert.Equal(t, "?s", IntervalUnitForExponent(-1))
}

func TestNormalizeToExponent(t *testing.T) {
	step, exp := NormalizeToExponent(1.0 / 1_000_000)
	assert.EqualValues(t, 1, step)
	assert.Equal(t, -6, exp)

	step, exp = NormalizeToExponent(48.0 / 1_000_000)
	assert.EqualValues(t, 48, step)
	assert.Equal(t, -6, exp)
}
