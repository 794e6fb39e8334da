package timelinedb

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillSimdChannel0(buf *TimelineBuffer, values []int16) {
	storage := buf.Storage()
	for i, v := range values {
		off := i * 16
		binary.LittleEndian.PutUint16(storage[off:off+2], uint16(v))
	}
}

func readSimdChannel0(buf *TimelineBuffer, i int) int16 {
	off := i * 16
	return int16(binary.LittleEndian.Uint16(buf.Storage()[off : off+2]))
}

func TestSRCIdentity(t *testing.T) {
	src := New()
	require.NoError(t, src.Allocate(1000, 8, 16, 16, SimdI16x8))
	src.TimeBase = TimeBase{TimeStep: 1, TimeExponent: -6}
	values := make([]int16, 1000)
	for i := range values {
		values[i] = int16(i)
	}
	fillSimdChannel0(src, values)

	dst := New()
	conv := NewSampleRateConverter(nil)
	require.NoError(t, conv.Prepare(src, 1_000_000, dst))
	require.Equal(t, 1000, dst.SampleCount)
	require.NoError(t, conv.Convert(src, dst))

	for i := 0; i < 1000; i++ {
		assert.EqualValues(t, i, readSimdChannel0(dst, i), "sample %d", i)
	}
}

func TestSRC2xUpsample(t *testing.T) {
	src := New()
	require.NoError(t, src.Allocate(4, 8, 16, 16, SimdI16x8))
	src.TimeBase = TimeBase{TimeStep: 1, TimeExponent: -6}
	fillSimdChannel0(src, []int16{0, 100, 200, 300})

	dst := New()
	conv := NewSampleRateConverter(nil)
	require.NoError(t, conv.Prepare(src, 2_000_000, dst))
	require.NoError(t, conv.Convert(src, dst))

	require.Equal(t, 8, dst.SampleCount)
	expected := []int{0, 50, 100, 150, 200, 250, 300, 300}
	for i, want := range expected {
		assert.InDelta(t, want, int(readSimdChannel0(dst, i)), 1, "sample %d", i)
	}
}

func TestSRCNonIntegerDownsample(t *testing.T) {
	src := New()
	require.NoError(t, src.Allocate(10, 8, 16, 16, SimdI16x8))
	src.TimeBase = TimeBase{TimeStep: 1, TimeExponent: -6}
	fillSimdChannel0(src, []int16{0, 10, 20, 30, 40, 50, 60, 70, 80, 90})

	dst := New()
	conv := NewSampleRateConverter(nil)
	require.NoError(t, conv.Prepare(src, 300_000, dst))
	require.Equal(t, 3, dst.SampleCount)
	require.NoError(t, conv.Convert(src, dst))

	expected := []int{0, 33, 67}
	for i, want := range expected {
		assert.InDelta(t, want, int(readSimdChannel0(dst, i)), 1, "sample %d", i)
	}
}

func TestSRCEmptyInput(t *testing.T) {
	src := New()
	require.NoError(t, src.Allocate(1, 8, 16, 16, SimdI16x8))
	src.TimeBase = TimeBase{TimeStep: 1, TimeExponent: -6}

	dst := New()
	conv := NewSampleRateConverter(nil)
	err := conv.Prepare(src, 1_000_000, dst)
	assert.ErrorIs(t, err, ErrEmptyInput)
}
