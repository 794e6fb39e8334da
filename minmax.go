package timelinedb

import (
	"fmt"
)

// MinMaxAggregator is the two-phase downsampling engine: Prepare
// allocates outMin/outMax with a fixed bin count; Aggregate partitions
// an input window into that many equal sub-ranges and writes
// per-bin, per-channel extrema through a Backend. Bins are
// independent; nothing in this type prevents filling them out of
// order, but callers should write them in ascending index order.
type MinMaxAggregator struct {
	backend Backend
}

// NewMinMaxAggregator returns an aggregator bound to backend. Passing
// nil defers backend selection to the process-wide default at each
// Aggregate call.
func NewMinMaxAggregator(backend Backend) *MinMaxAggregator {
	return &MinMaxAggregator{backend: backend}
}

// Prepare allocates outMin and outMax with input's layout, channel
// count, bit width, and time base, each sized binCount samples.
func (a *MinMaxAggregator) Prepare(input *TimelineBuffer, outMin, outMax *TimelineBuffer, binCount int) error {
	if binCount < 1 {
		return fmt.Errorf("%w: bin count %d", ErrBadShape, binCount)
	}
	for _, out := range [...]*TimelineBuffer{outMin, outMax} {
		if err := out.Allocate(binCount, input.ChannelCount, input.BitWidth, simdAlignment, input.Layout); err != nil {
			return err
		}
		out.TimeBase = input.TimeBase
	}
	return nil
}

// Aggregate partitions [inOffset, inOffset+inSamples) into
// outMin.SampleCount equal sub-ranges using floating-point stride,
// and dispatches the per-layout backend kernel for each bin.
func (a *MinMaxAggregator) Aggregate(input *TimelineBuffer, outMin, outMax *TimelineBuffer, inSamples, inOffset int) error {
	binCount := outMin.SampleCount
	if binCount < 1 {
		return fmt.Errorf("%w: bin count %d", ErrBadShape, binCount)
	}
	backend := resolveBackend(a.backend)
	stride := float64(inSamples) / float64(binCount)

	for i := 0; i < binCount; i++ {
		start := inOffset + int(float64(i)*stride)
		end := inOffset + int(float64(i+1)*stride)
		if end <= start {
			end = start + 1
		}
		if end > inOffset+inSamples {
			end = inOffset + inSamples
		}

		var err error
		switch input.Layout {
		case SimdI16x8:
			err = backend.AggregateMinMaxI16x8(input.Storage(), outMin.Storage(), outMax.Storage(), i, start, end)
		case AnalogI8:
			err = backend.AggregateMinMaxI8(input.Storage(), outMin.Storage(), outMax.Storage(), input.ChannelCount, i, start, end)
		default:
			err = fmt.Errorf("%w: no MinMax kernel for layout %s", ErrBadShape, input.Layout)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
