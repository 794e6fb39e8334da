package timelinedb

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/bfarago/timelinedb/internal/layout"
	"github.com/bfarago/timelinedb/internal/srcplan"
	"github.com/bfarago/timelinedb/internal/storage"
)

// simdAlignment is the minimum storage alignment required by any
// layout tagged IsSimd (invariant I1).
const simdAlignment = 16

// RateInfo is a snapshot of the resampling ratio a SampleRateConverter
// computed while preparing this buffer as an output.
type RateInfo struct {
	Ratio float64
}

// TimelineBuffer owns one contiguous, interleaved, fixed-rate sample
// stream plus the metadata needed to interpret it. It exclusively
// owns its storage, interpolation plan, and rate info; borrowers
// (e.g. a visualization layer) must not outlive it.
type TimelineBuffer struct {
	SampleCount    int
	ChannelCount   int
	BitWidth       int
	BytesPerSample int
	Layout         Layout
	TimeBase       TimeBase

	storage *storage.AlignedBuffer
	plan    []srcplan.Entry
	rate    *RateInfo
}

// New returns an empty, unallocated TimelineBuffer (init).
func New() *TimelineBuffer {
	return &TimelineBuffer{}
}

// TotalTimeSec returns the buffer's window duration in seconds,
// derived from sample_count and the time base.
func (b *TimelineBuffer) TotalTimeSec() float64 {
	period := float64(b.TimeBase.TimeStep) * math.Pow(10, float64(b.TimeBase.TimeExponent))
	return float64(b.SampleCount) * period
}

// Allocate computes bytes_per_sample, acquires an aligned storage
// region sized sample_count*bytes_per_sample, and records the
// remaining metadata. For SIMD layouts, channel_count is forced to 8;
// Simd_I16x8's stride is fixed at 16 bytes regardless of the requested
// values, while Simd_I24x8 carries its lanes in 32-bit slots (32 bytes).
func (b *TimelineBuffer) Allocate(sampleCount, channelCount, bitWidth, alignment int, l Layout) error {
	if fixed, ok := l.FixedChannels(); ok {
		channelCount = fixed
	}
	if fixedBits, ok := l.BitWidth(); ok {
		bitWidth = fixedBits
	}
	bytesPerSample, err := layout.BytesPerSample(l, channelCount, bitWidth)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAllocFailed, err)
	}
	if l.IsSimd() && alignment < simdAlignment {
		alignment = simdAlignment
	}
	size := sampleCount * bytesPerSample
	region, err := storage.New(size, alignment)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAllocFailed, err)
	}

	b.storage = region
	b.SampleCount = sampleCount
	b.ChannelCount = channelCount
	b.BitWidth = bitWidth
	b.BytesPerSample = bytesPerSample
	b.Layout = l
	return nil
}

// SetTimeBase installs step and exponent as this buffer's time base,
// letting boundary adapters (internal/ingest) populate a TimelineBuffer
// without importing the root package's TimeBase type directly.
func (b *TimelineBuffer) SetTimeBase(step uint32, exponent int) {
	b.TimeBase = TimeBase{TimeStep: step, TimeExponent: exponent}
}

// Free releases storage, plan, and rate info, and resets metadata,
// matching the "freed then re-allocated" buffer lifecycle.
func (b *TimelineBuffer) Free() {
	if b.storage != nil {
		b.storage.Free()
	}
	*b = TimelineBuffer{}
}

// Storage returns the buffer's raw aligned byte region. Zero-length
// until Allocate has been called.
func (b *TimelineBuffer) Storage() []byte {
	if b.storage == nil {
		return nil
	}
	return b.storage.Bytes()
}

// Plan returns the buffer's precomputed interpolation plan, or nil if
// none was computed (only SampleRateConverter.Prepare populates this,
// and only for the Simd_I16x8 layout).
func (b *TimelineBuffer) Plan() []srcplan.Entry {
	return b.plan
}

// setPlan is called by SampleRateConverter.Prepare.
func (b *TimelineBuffer) setPlan(plan []srcplan.Entry) {
	b.plan = plan
}

// RateInfoSnapshot returns the resampling ratio snapshot recorded by the last
// SampleRateConverter.Prepare call that targeted this buffer as
// output, or nil if none was recorded.
func (b *TimelineBuffer) RateInfoSnapshot() *RateInfo {
	return b.rate
}

func (b *TimelineBuffer) setRateInfo(r RateInfo) {
	b.rate = &r
}

// SampleByteOffset returns the byte offset of channel within
// sampleIndex, matching sample_index*bytes_per_sample +
// (channel*bit_width)/8. Fails with ErrOutOfBounds if indices are
// invalid or bit_width is not a multiple of 8.
func (b *TimelineBuffer) SampleByteOffset(sampleIndex, channel int) (int, error) {
	if sampleIndex < 0 || sampleIndex >= b.SampleCount {
		return 0, fmt.Errorf("%w: sample index %d (count %d)", ErrOutOfBounds, sampleIndex, b.SampleCount)
	}
	if channel < 0 || channel >= b.ChannelCount {
		return 0, fmt.Errorf("%w: channel %d (count %d)", ErrOutOfBounds, channel, b.ChannelCount)
	}
	if b.BitWidth%8 != 0 {
		return 0, fmt.Errorf("%w: bit width %d not byte-aligned", ErrOutOfBounds, b.BitWidth)
	}
	return sampleIndex*b.BytesPerSample + (channel*b.BitWidth)/8, nil
}

// ReadI8 decodes a signed 8-bit sample. Fails with ErrTypeMismatch if
// the buffer's layout is not 8-bit.
func (b *TimelineBuffer) ReadI8(sampleIndex, channel int) (int8, error) {
	if b.BitWidth != 8 {
		return 0, fmt.Errorf("%w: bit width %d != 8", ErrTypeMismatch, b.BitWidth)
	}
	off, err := b.SampleByteOffset(sampleIndex, channel)
	if err != nil {
		return 0, err
	}
	return int8(b.Storage()[off]), nil
}

// ReadF32 decodes an IEEE-754 single-precision sample. Fails with
// ErrTypeMismatch if the buffer's layout is not 32-bit float.
func (b *TimelineBuffer) ReadF32(sampleIndex, channel int) (float32, error) {
	if b.Layout != AnalogF32 {
		return 0, fmt.Errorf("%w: layout %s is not analog_f32", ErrTypeMismatch, b.Layout)
	}
	off, err := b.SampleByteOffset(sampleIndex, channel)
	if err != nil {
		return 0, err
	}
	bits := binary.LittleEndian.Uint32(b.Storage()[off : off+4])
	return math.Float32frombits(bits), nil
}

// ReadI16Simd decodes lane channel of the Simd_I16x8 layout. Fails
// with ErrTypeMismatch if the buffer's layout is not Simd_I16x8.
func (b *TimelineBuffer) ReadI16Simd(sampleIndex, channel int) (int16, error) {
	if b.Layout != SimdI16x8 {
		return 0, fmt.Errorf("%w: layout %s is not simd_i16x8", ErrTypeMismatch, b.Layout)
	}
	off, err := b.SampleByteOffset(sampleIndex, channel)
	if err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(b.Storage()[off : off+2])), nil
}

// ReadI24Simd decodes lane channel of the Simd_I24x8 layout, returned
// sign-extended in a 32-bit slot.
func (b *TimelineBuffer) ReadI24Simd(sampleIndex, channel int) (int32, error) {
	if b.Layout != SimdI24x8 {
		return 0, fmt.Errorf("%w: layout %s is not simd_i24x8", ErrTypeMismatch, b.Layout)
	}
	off, err := b.SampleByteOffset(sampleIndex, channel)
	if err != nil {
		return 0, err
	}
	buf := b.Storage()[off : off+4]
	raw := int32(binary.LittleEndian.Uint32(buf)) << 8 >> 8 // sign-extend 24 -> 32
	return raw, nil
}
