// Package testutil provides reusable test helpers for timelinedb's
// property and scenario tests, adapted from the teacher's own
// internal/testutil package of assertion wrappers.
package testutil

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertInDeltaLSB verifies that two int16 samples agree within
// tolerance LSBs, the SRC-backend-agreement property (P7).
func AssertInDeltaLSB(t *testing.T, expected, actual int16, tolerance int, msgAndArgs ...any) bool {
	t.Helper()
	diff := int(expected) - int(actual)
	if diff < 0 {
		diff = -diff
	}
	return assert.LessOrEqual(t, diff, tolerance,
		"expected=%d actual=%d differ by %d LSB, tolerance %d", expected, actual, diff, tolerance)
}

// RMSError computes the root-mean-square error between two equal
// length float64 slices via gonum/stat, used to bound the aggregate
// deviation between backend outputs beyond a per-sample LSB check.
func RMSError(a, b []float64) float64 {
	n := len(a)
	if n == 0 || n != len(b) {
		return math.NaN()
	}
	sq := make([]float64, n)
	for i := range sq {
		d := a[i] - b[i]
		sq[i] = d * d
	}
	return math.Sqrt(stat.Mean(sq, nil))
}

// GenerateSineWaveI16x8 fills buf (a Simd_I16x8-shaped byte slice of
// numSamples*16 bytes) with an 8-lane sine wave, one lane per channel,
// lane ch offset by ch/8 of a sample interval, matching generate_sine_wave's
// TR_SIMD_sint16x8 branch in original_source/src/timelinedb_util.c.
func GenerateSineWaveI16x8(buf []byte, numSamples int, period, amplitude float64) {
	const channels = 8
	const stride = 16
	for i := 0; i < numSamples; i++ {
		for ch := 0; ch < channels; ch++ {
			t := (float64(i) + float64(ch)/8.0) / period
			val := amplitude * math.Sin(2*math.Pi*t)
			sval := clampI16(val)
			off := i*stride + ch*2
			binary.LittleEndian.PutUint16(buf[off:off+2], uint16(sval))
		}
	}
}

// GenerateSineWaveI8 fills buf (an AnalogI8-shaped byte slice of
// numSamples*channels bytes) with a per-channel-phase-offset sine
// wave, matching generate_sine_wave's TR_analog_sint8 branch.
func GenerateSineWaveI8(buf []byte, numSamples, channels int, period, amplitude float64) {
	for i := 0; i < numSamples; i++ {
		for ch := 0; ch < channels; ch++ {
			t := (float64(i) + float64(ch)/float64(channels)) / period
			val := amplitude * math.Sin(2*math.Pi*t)
			sval := clampI8(val)
			buf[i*channels+ch] = byte(sval)
		}
	}
}

func clampI16(v float64) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}

func clampI8(v float64) int8 {
	if v > 127 {
		return 127
	}
	if v < -128 {
		return -128
	}
	return int8(v)
}

// pseudoRandomState is a small deterministic xorshift generator, used
// instead of math/rand so property test S6's "10,000-sample
// pseudo-random input" is bit-for-bit reproducible across runs
// without pulling in a seeded *rand.Rand across the package boundary.
type pseudoRandomState struct {
	state uint64
}

func newPseudoRandom(seed uint64) *pseudoRandomState {
	if seed == 0 {
		seed = 0x9e3779b97f4a7c15
	}
	return &pseudoRandomState{state: seed}
}

func (p *pseudoRandomState) next() uint64 {
	p.state ^= p.state << 13
	p.state ^= p.state >> 7
	p.state ^= p.state << 17
	return p.state
}

// GenerateRandomI16x8 fills buf with deterministic pseudo-random
// 8-lane int16 samples for the backend-agreement scenario (S6).
func GenerateRandomI16x8(buf []byte, numSamples int, seed uint64) {
	const channels = 8
	const stride = 16
	rng := newPseudoRandom(seed)
	for i := 0; i < numSamples; i++ {
		for ch := 0; ch < channels; ch++ {
			v := int16(rng.next() >> 48) // top 16 bits, full int16 range
			off := i*stride + ch*2
			binary.LittleEndian.PutUint16(buf[off:off+2], uint16(v))
		}
	}
}
