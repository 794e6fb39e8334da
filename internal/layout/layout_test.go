package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedChannels(t *testing.T) {
	ch, ok := SimdI16x8.FixedChannels()
	assert.True(t, ok)
	assert.Equal(t, 8, ch)

	_, ok = AnalogI8.FixedChannels()
	assert.False(t, ok)
}

func TestBytesPerSampleSimdFixedAt16(t *testing.T) {
	n, err := BytesPerSample(SimdI16x8, 1, 16)
	require.NoError(t, err)
	assert.Equal(t, 16, n)

	n, err = BytesPerSample(SimdI16x8, 8, 16)
	require.NoError(t, err)
	assert.Equal(t, 16, n)
}

func TestBytesPerSampleCeilsDigital(t *testing.T) {
	n, err := BytesPerSample(Digital1, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = BytesPerSample(Digital4, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestBytesPerSampleRejectsBadChannels(t *testing.T) {
	_, err := BytesPerSample(AnalogI8, 0, 8)
	assert.Error(t, err)

	_, err = BytesPerSample(AnalogI8, 300, 8)
	assert.Error(t, err)
}

func TestIsSimd(t *testing.T) {
	assert.True(t, SimdI16x8.IsSimd())
	assert.True(t, SimdI24x8.IsSimd())
	assert.False(t, AnalogF32.IsSimd())
}

func TestString(t *testing.T) {
	assert.Equal(t, "simd_i16x8", SimdI16x8.String())
	assert.Equal(t, "analog_f32", AnalogF32.String())
}
