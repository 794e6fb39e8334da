package timelinedb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinMaxBinsAnalogI8(t *testing.T) {
	values := []int8{-5, 7, -3, 2, 4, -1, 8, 0, -8, 3, 6, -2, 1, 9, -9, 5, 7, -7, 4, 0}

	src := New()
	require.NoError(t, src.Allocate(len(values), 1, 8, 1, AnalogI8))
	storage := src.Storage()
	for i, v := range values {
		storage[i] = byte(v)
	}

	outMin := New()
	outMax := New()
	agg := NewMinMaxAggregator(nil)
	require.NoError(t, agg.Prepare(src, outMin, outMax, 4))
	require.NoError(t, agg.Aggregate(src, outMin, outMax, 20, 0))

	wantMin := []int8{-5, -8, -9, -7}
	wantMax := []int8{7, 8, 9, 7}
	for i := 0; i < 4; i++ {
		got, err := outMin.ReadI8(i, 0)
		require.NoError(t, err)
		assert.Equal(t, wantMin[i], got, "bin %d", i)

		got, err = outMax.ReadI8(i, 0)
		require.NoError(t, err)
		assert.Equal(t, wantMax[i], got, "bin %d", i)
	}
}

func TestMinMaxOutMinLessOrEqualOutMax(t *testing.T) {
	src := New()
	require.NoError(t, src.Allocate(64, 8, 16, 16, SimdI16x8))
	storage := src.Storage()
	for i := range storage {
		storage[i] = byte(i * 7 % 251)
	}

	outMin := New()
	outMax := New()
	agg := NewMinMaxAggregator(nil)
	require.NoError(t, agg.Prepare(src, outMin, outMax, 8))
	require.NoError(t, agg.Aggregate(src, outMin, outMax, 64, 0))

	for i := 0; i < 8; i++ {
		for ch := 0; ch < 8; ch++ {
			mn, err := outMin.ReadI16Simd(i, ch)
			require.NoError(t, err)
			mx, err := outMax.ReadI16Simd(i, ch)
			require.NoError(t, err)
			assert.LessOrEqual(t, mn, mx, "bin %d channel %d", i, ch)
		}
	}
}
