// Package scalarkern implements the "C Backend" reference kernels:
// straight-line Go loops with no vector shape assumptions, matching
// original_source/src/timelinedb_simd.c's *_c and *_bresenham
// fallback functions.
package scalarkern

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/bfarago/timelinedb/internal/srcplan"
)

// ErrBadShape is returned when a kernel is invoked with a channel
// count it cannot service.
var ErrBadShape = errors.New("scalarkern: unsupported shape")

// Name is the backend name reported for the portable reference
// kernels, matching gTimelineBackendFunctionsC's "C Backend" string
// in original_source/src/timelinedb_simd.c.
const Name = "C Backend"

const simdChannels = 8
const simdStride = 16 // bytes per sample in the Simd_I16x8 layout

func loadI16(buf []byte, sampleIdx int, stride, channel int) int16 {
	off := sampleIdx*stride + channel*2
	return int16(binary.LittleEndian.Uint16(buf[off : off+2]))
}

func storeI16(buf []byte, sampleIdx int, stride, channel int, v int16) {
	off := sampleIdx*stride + channel*2
	binary.LittleEndian.PutUint16(buf[off:off+2], uint16(v))
}

// ConvertI16x8Plan runs the plan-driven Q16 linear-interpolation
// kernel for the Simd_I16x8 layout. FracQ16 == 0 copies Idx0 verbatim
// rather than running the wrapped zero weight through the blend
// formula (see srcplan.Entry's doc comment for why).
func ConvertI16x8Plan(in, out []byte, plan []srcplan.Entry) error {
	for i, p := range plan {
		if p.FracQ16 == 0 {
			for ch := 0; ch < simdChannels; ch++ {
				storeI16(out, i, simdStride, ch, loadI16(in, int(p.Idx0), simdStride, ch))
			}
			continue
		}
		frac := int32(p.FracQ16)
		inv := int32(p.InvFracQ16)
		for ch := 0; ch < simdChannels; ch++ {
			v0 := int32(loadI16(in, int(p.Idx0), simdStride, ch))
			v1 := int32(loadI16(in, int(p.Idx1), simdStride, ch))
			interp := v0*inv + v1*frac
			// arithmetic right shift by 16 with rounding, matching the
			// SIMD kernel's vrshrq_n_s32 semantics.
			rounded := (interp + (1 << 15)) >> 16
			storeI16(out, i, simdStride, ch, int16(rounded))
		}
	}
	return nil
}

// ConvertAnalogI8 performs the scalar 8-bit float-interpolation path
// described in spec §4.4: no plan, half-away-from-zero rounding,
// implicit [-128,127] clipping from the int8 cast.
func ConvertAnalogI8(in, out []byte, channels int, ratio float64, inCount int) error {
	if channels <= 0 || len(out)%channels != 0 || len(in) < inCount*channels {
		return fmt.Errorf("%w: channels=%d in=%d inCount=%d", ErrBadShape, channels, len(in), inCount)
	}
	outCount := len(out) / channels
	for i := 0; i < outCount; i++ {
		originalIndex := float64(i) / ratio
		idxLower := int(math.Floor(originalIndex))
		idxUpper := idxLower + 1
		if idxUpper >= inCount {
			idxUpper = idxLower
		}
		frac := originalIndex - float64(idxLower)

		for ch := 0; ch < channels; ch++ {
			v1 := int8(in[idxLower*channels+ch])
			v2 := int8(in[idxUpper*channels+ch])
			interpolated := (1.0-frac)*float64(v1) + frac*float64(v2)
			out[i*channels+ch] = byte(int8(math.Round(interpolated)))
		}
	}
	return nil
}

// AggregateMinMaxI8 computes per-channel extremes for one bin of an
// AnalogI8 buffer, matching aggregate_minmax_s8_c.
func AggregateMinMaxI8(in []byte, outMin, outMax []byte, channels, binIndex, start, end int) error {
	if channels <= 0 || start < 0 || end < start || end*channels > len(in) {
		return fmt.Errorf("%w: channels=%d start=%d end=%d in=%d", ErrBadShape, channels, start, end, len(in))
	}
	for ch := 0; ch < channels; ch++ {
		minVal := int8(math.MaxInt8)
		maxVal := int8(math.MinInt8)
		for j := start; j < end; j++ {
			v := int8(in[j*channels+ch])
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
		outMin[binIndex*channels+ch] = byte(minVal)
		outMax[binIndex*channels+ch] = byte(maxVal)
	}
	return nil
}

// AggregateMinMaxI16x8 computes per-channel extremes for one bin of a
// Simd_I16x8 buffer, matching aggregate_minmax_SIMD_s16x8_c.
func AggregateMinMaxI16x8(in, outMin, outMax []byte, binIndex, start, end int) error {
	if start < 0 || end < start || end*simdStride > len(in) {
		return fmt.Errorf("%w: start=%d end=%d in=%d", ErrBadShape, start, end, len(in))
	}
	for ch := 0; ch < simdChannels; ch++ {
		minVal := int16(math.MaxInt16)
		maxVal := int16(math.MinInt16)
		for j := start; j < end; j++ {
			v := loadI16(in, j, simdStride, ch)
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
		storeI16(outMin, binIndex, simdStride, ch, minVal)
		storeI16(outMax, binIndex, simdStride, ch, maxVal)
	}
	return nil
}
