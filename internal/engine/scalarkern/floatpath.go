package scalarkern

import (
	"github.com/bfarago/timelinedb/internal/simdops"
	"github.com/bfarago/timelinedb/internal/srcplan"
)

// ConvertAnalogF32Plan runs the plan-driven two-tap blend for the
// AnalogF32 layout, using simdops.For[float32]().Scale for the
// per-tap weighting instead of a hand-rolled multiply loop. This is a
// supplemental layout not present in the original C sources: the
// original only interpolates 8-bit and Simd_I16x8 samples, but the
// plan shape generalizes cleanly to any float width.
func ConvertAnalogF32Plan(in, out []float32, channels int, plan []srcplan.Entry) error {
	ops := simdops.For[float32]()
	tap0 := make([]float32, channels)
	tap1 := make([]float32, channels)
	for i, p := range plan {
		if p.FracQ16 == 0 {
			copy(out[i*channels:(i+1)*channels], in[int(p.Idx0)*channels:(int(p.Idx0)+1)*channels])
			continue
		}
		frac := float32(p.FracQ16) / 65536.0
		inv := float32(p.InvFracQ16) / 65536.0
		copy(tap0, in[int(p.Idx0)*channels:(int(p.Idx0)+1)*channels])
		copy(tap1, in[int(p.Idx1)*channels:(int(p.Idx1)+1)*channels])
		ops.Scale(tap0, tap0, inv)
		ops.Scale(tap1, tap1, frac)
		dst := out[i*channels : (i+1)*channels]
		for ch := 0; ch < channels; ch++ {
			dst[ch] = tap0[ch] + tap1[ch]
		}
	}
	return nil
}

// ConvertAnalogF64Plan is the float64 counterpart of
// ConvertAnalogF32Plan, for callers that ingested double-precision
// samples and want to avoid a narrowing round-trip through float32.
func ConvertAnalogF64Plan(in, out []float64, channels int, plan []srcplan.Entry) error {
	ops := simdops.For[float64]()
	tap0 := make([]float64, channels)
	tap1 := make([]float64, channels)
	for i, p := range plan {
		if p.FracQ16 == 0 {
			copy(out[i*channels:(i+1)*channels], in[int(p.Idx0)*channels:(int(p.Idx0)+1)*channels])
			continue
		}
		frac := float64(p.FracQ16) / 65536.0
		inv := float64(p.InvFracQ16) / 65536.0
		copy(tap0, in[int(p.Idx0)*channels:(int(p.Idx0)+1)*channels])
		copy(tap1, in[int(p.Idx1)*channels:(int(p.Idx1)+1)*channels])
		ops.Scale(tap0, tap0, inv)
		ops.Scale(tap1, tap1, frac)
		dst := out[i*channels : (i+1)*channels]
		for ch := 0; ch < channels; ch++ {
			dst[ch] = tap0[ch] + tap1[ch]
		}
	}
	return nil
}
