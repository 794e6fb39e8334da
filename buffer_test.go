package timelinedb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateSimdI16x8FixesShape(t *testing.T) {
	buf := New()
	require.NoError(t, buf.Allocate(100, 2, 8, 1, SimdI16x8))
	assert.Equal(t, 8, buf.ChannelCount)
	assert.Equal(t, 16, buf.BytesPerSample)
	assert.Equal(t, 16, buf.BitWidth)
	assert.Len(t, buf.Storage(), 100*16)
}

func TestAllocateAnalogI8(t *testing.T) {
	buf := New()
	require.NoError(t, buf.Allocate(10, 3, 8, 1, AnalogI8))
	assert.Equal(t, 3, buf.BytesPerSample)
	assert.Len(t, buf.Storage(), 30)
}

func TestSampleByteOffset(t *testing.T) {
	buf := New()
	require.NoError(t, buf.Allocate(10, 4, 8, 1, AnalogI8))
	off, err := buf.SampleByteOffset(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 2*4+1, off)

	_, err = buf.SampleByteOffset(20, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = buf.SampleByteOffset(0, 10)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestReadI16SimdTypeMismatch(t *testing.T) {
	buf := New()
	require.NoError(t, buf.Allocate(10, 8, 8, 1, AnalogI8))
	_, err := buf.ReadI16Simd(0, 0)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestFreeResetsMetadata(t *testing.T) {
	buf := New()
	require.NoError(t, buf.Allocate(10, 8, 16, 16, SimdI16x8))
	buf.Free()
	assert.Equal(t, 0, buf.SampleCount)
	assert.Nil(t, buf.Storage())
}
