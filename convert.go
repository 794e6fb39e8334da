package timelinedb

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/bfarago/timelinedb/internal/engine/scalarkern"
	"github.com/bfarago/timelinedb/internal/srcplan"
)

// SampleRateConverter is the two-phase SRC engine: Prepare computes
// output length, time base, and (for Simd_I16x8) an interpolation
// plan; Convert consumes input, the plan, and a backend to write the
// output buffer. Keeping the phases separate moves all double
// arithmetic out of the hot per-sample loop.
type SampleRateConverter struct {
	backend Backend
}

// NewSampleRateConverter returns a converter bound to backend. Passing
// nil defers backend selection to the process-wide default at each
// Convert call.
func NewSampleRateConverter(backend Backend) *SampleRateConverter {
	return &SampleRateConverter{backend: backend}
}

// Prepare computes ratio = RateRatio(input.TimeBase, targetRateHz),
// derives output.sample_count = floor(input.sample_count * ratio),
// allocates output's storage with input's layout, records the rate
// info, and (for Simd_I16x8) precomputes the interpolation plan.
func (c *SampleRateConverter) Prepare(input *TimelineBuffer, targetRateHz float64, output *TimelineBuffer) error {
	if input.SampleCount < 2 {
		return fmt.Errorf("%w: %d samples", ErrEmptyInput, input.SampleCount)
	}
	ratio := RateRatio(input.TimeBase, targetRateHz)
	outCount := int(math.Floor(float64(input.SampleCount) * ratio))
	if outCount < 1 {
		outCount = 1
	}

	if err := output.Allocate(outCount, input.ChannelCount, input.BitWidth, simdAlignment, input.Layout); err != nil {
		return err
	}
	output.TimeBase = NormalizeToExponent(1 / targetRateHz)
	output.setRateInfo(RateInfo{Ratio: ratio})

	if input.Layout == SimdI16x8 {
		plan := srcplan.Build(input.SampleCount, outCount)
		output.setPlan(plan)
	}
	return nil
}

// Convert dispatches the backend kernel for output's layout. Only
// output need carry the plan (set by Prepare); input supplies the raw
// samples the plan indexes into.
func (c *SampleRateConverter) Convert(input, output *TimelineBuffer) error {
	backend := resolveBackend(c.backend)

	switch output.Layout {
	case SimdI16x8:
		plan := output.Plan()
		if plan == nil {
			return fmt.Errorf("%w: output has no interpolation plan", ErrBadShape)
		}
		return backend.ConvertI16x8Plan(input.Storage(), output.Storage(), plan)

	case AnalogI8:
		ratio := RateRatio(input.TimeBase, output.TimeBase.Frequency())
		return scalarkern.ConvertAnalogI8(input.Storage(), output.Storage(), input.ChannelCount, ratio, input.SampleCount)

	case AnalogF32:
		return convertAnalogF32(input, output)

	case AnalogF64:
		return convertAnalogF64(input, output)

	default:
		return fmt.Errorf("%w: no SRC kernel for layout %s", ErrBadShape, output.Layout)
	}
}

// convertAnalogF32 and convertAnalogF64 implement the supplemental
// float SRC path: Prepare caches a plan only for Simd_I16x8, so a
// fresh plan is built here from the input and output sample counts
// and run through scalarkern's two-tap blend kernels.
func convertAnalogF32(input, output *TimelineBuffer) error {
	plan := srcplan.Build(input.SampleCount, output.SampleCount)
	in := decodeF32(input.Storage(), input.SampleCount*input.ChannelCount)
	out := make([]float32, output.SampleCount*output.ChannelCount)
	if err := scalarkern.ConvertAnalogF32Plan(in, out, input.ChannelCount, plan); err != nil {
		return err
	}
	encodeF32(output.Storage(), out)
	return nil
}

func convertAnalogF64(input, output *TimelineBuffer) error {
	plan := srcplan.Build(input.SampleCount, output.SampleCount)
	in := decodeF64(input.Storage(), input.SampleCount*input.ChannelCount)
	out := make([]float64, output.SampleCount*output.ChannelCount)
	if err := scalarkern.ConvertAnalogF64Plan(in, out, input.ChannelCount, plan); err != nil {
		return err
	}
	encodeF64(output.Storage(), out)
	return nil
}

func decodeF32(buf []byte, count int) []float32 {
	out := make([]float32, count)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4 : i*4+4]))
	}
	return out
}

func encodeF32(buf []byte, values []float32) {
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], math.Float32bits(v))
	}
}

func decodeF64(buf []byte, count int) []float64 {
	out := make([]float64, count)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[i*8 : i*8+8]))
	}
	return out
}

func encodeF64(buf []byte, values []float64) {
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[i*8:i*8+8], math.Float64bits(v))
	}
}
