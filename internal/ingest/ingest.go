// Package ingest adapts github.com/go-audio/audio buffers into
// TimelineBuffer instances, one concrete realization of the "from
// ingest" boundary contract: a populated TimelineBuffer whose
// time_step/time_exponent make sample_count/total_time_sec match the
// source stream's nominal rate.
package ingest

import (
	"encoding/binary"
	"fmt"

	"github.com/go-audio/audio"

	"github.com/bfarago/timelinedb/internal/layout"
	"github.com/bfarago/timelinedb/internal/mathutil"
)

// TargetLayout selects which TimelineBuffer layout FromPCMBuffer
// produces: Simd_I16x8 for 16-bit-or-wider PCM, AnalogI8 for 8-bit PCM.
type TargetLayout int

const (
	// AutoLayout picks Simd_I16x8 when SourceBitDepth > 8, AnalogI8
	// otherwise.
	AutoLayout TargetLayout = iota
	// ForceSimdI16x8 always produces the Simd_I16x8 layout.
	ForceSimdI16x8
	// ForceAnalogI8 always produces the AnalogI8 layout.
	ForceAnalogI8
)

// Allocator is the subset of TimelineBuffer's construction surface
// ingest needs, kept as an interface so this package does not import
// the root package.
type Allocator interface {
	Allocate(sampleCount, channelCount, bitWidth, alignment int, l layout.Kind) error
	Storage() []byte
	SetTimeBase(step uint32, exponent int)
}

// FromPCMBuffer ingests an *audio.IntBuffer into dst, allocating it
// with the layout TargetLayout selects and deriving dst's time base
// from buf.Format.SampleRate via mathutil.NormalizeToExponent so
// sample_count/total_time_sec reproduces the PCM stream's nominal rate.
func FromPCMBuffer(buf *audio.IntBuffer, dst Allocator, want TargetLayout) error {
	if buf == nil || buf.Format == nil {
		return fmt.Errorf("ingest: nil PCM buffer or format")
	}
	channels := buf.Format.NumChannels
	if channels < 1 {
		return fmt.Errorf("ingest: invalid channel count %d", channels)
	}
	frames := buf.NumFrames()

	useSimd := want == ForceSimdI16x8 || (want == AutoLayout && buf.SourceBitDepth > 8)
	if want == ForceAnalogI8 {
		useSimd = false
	}

	step, exponent := mathutil.NormalizeToExponent(1 / float64(buf.Format.SampleRate))

	if useSimd {
		if err := dst.Allocate(frames, 8, 16, 16, layout.SimdI16x8); err != nil {
			return err
		}
		dst.SetTimeBase(step, exponent)
		storage := dst.Storage()
		factor := 32767.0 / maxAbsInt(buf.Data)
		for i := 0; i < frames; i++ {
			for ch := 0; ch < channels && ch < 8; ch++ {
				raw := buf.Data[i*channels+ch]
				v := clampI16(float64(raw) * factor)
				off := i*16 + ch*2
				binary.LittleEndian.PutUint16(storage[off:off+2], uint16(v))
			}
		}
		return nil
	}

	if err := dst.Allocate(frames, channels, 8, 1, layout.AnalogI8); err != nil {
		return err
	}
	dst.SetTimeBase(step, exponent)
	storage := dst.Storage()
	factor := 127.0 / maxAbsInt(buf.Data)
	for i := 0; i < frames; i++ {
		for ch := 0; ch < channels; ch++ {
			raw := buf.Data[i*channels+ch]
			v := clampI8(float64(raw) * factor)
			storage[i*channels+ch] = byte(v)
		}
	}
	return nil
}

func maxAbsInt(data []int) float64 {
	max := 1
	for _, v := range data {
		if v < 0 {
			v = -v
		}
		if v > max {
			max = v
		}
	}
	return float64(max)
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
