package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlignedRegion(t *testing.T) {
	b, err := New(1024, 16)
	require.NoError(t, err)
	assert.Len(t, b.Bytes(), 1024)
	assert.True(t, b.IsAligned())
}

func TestNewRejectsBadAlignment(t *testing.T) {
	_, err := New(1024, 3)
	assert.ErrorIs(t, err, ErrAllocFailed)
}

func TestNewRejectsNegativeSize(t *testing.T) {
	_, err := New(-1, 16)
	assert.ErrorIs(t, err, ErrAllocFailed)
}

func TestReallocResizes(t *testing.T) {
	b, err := New(16, 16)
	require.NoError(t, err)
	b.Realloc(64)
	assert.Len(t, b.Bytes(), 64)
	assert.True(t, b.IsAligned())
}

func TestFreeClearsRegion(t *testing.T) {
	b, err := New(16, 16)
	require.NoError(t, err)
	b.Free()
	assert.Equal(t, 0, b.Len())
}

func TestZeroAlignmentDisablesPadding(t *testing.T) {
	b, err := New(8, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, b.Alignment())
	assert.Len(t, b.Bytes(), 8)
}
