package timelinedb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutAdapterWidenAndNarrow(t *testing.T) {
	src := New()
	require.NoError(t, src.Allocate(4, 1, 8, 1, AnalogI8))
	storage := src.Storage()
	values := []int8{-10, 20, -30, 40}
	for i, v := range values {
		storage[i] = byte(v)
	}

	dst := New()
	adapter := LayoutAdapter{}
	require.NoError(t, adapter.PrepareSimdI16x8FromI8(src, dst))
	require.NoError(t, adapter.WidenChannel(src, dst, 0, 0))

	for i, want := range values {
		got, err := dst.ReadI16Simd(i, 0)
		require.NoError(t, err)
		assert.EqualValues(t, want, got, "sample %d", i)
	}

	back := New()
	require.NoError(t, back.Allocate(4, 1, 8, 1, AnalogI8))
	require.NoError(t, adapter.NarrowToI8(dst, back))
	for i, want := range values {
		got, err := back.ReadI8(i, 0)
		require.NoError(t, err)
		assert.Equal(t, want, got, "sample %d", i)
	}
}
