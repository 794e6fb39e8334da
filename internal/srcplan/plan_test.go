package srcplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIdentity(t *testing.T) {
	plan := Build(1000, 1000)
	require.Len(t, plan, 1000)
	for i, e := range plan {
		assert.EqualValues(t, uint16(0), e.FracQ16, "entry %d", i)
		assert.EqualValues(t, uint16(0), e.InvFracQ16, "entry %d", i)
		assert.EqualValues(t, i, e.Idx0, "entry %d", i)
	}
}

func TestBuildUpsample2x(t *testing.T) {
	plan := Build(4, 8)
	require.Len(t, plan, 8)
	// every entry's weights sum to 0x10000 modulo the wraparound rule
	for _, e := range plan {
		assert.EqualValues(t, uint16(0x10000-uint32(e.FracQ16)), e.InvFracQ16)
		assert.LessOrEqual(t, e.Idx0+1, e.Idx1)
		assert.Less(t, e.Idx0, uint32(4))
	}
	last := plan[len(plan)-1]
	assert.EqualValues(t, 2, last.Idx0)
	assert.EqualValues(t, 3, last.Idx1)
}

func TestBuildFinalSamplePinned(t *testing.T) {
	plan := Build(10, 3)
	last := plan[len(plan)-1]
	assert.EqualValues(t, 8, last.Idx0)
	assert.EqualValues(t, 9, last.Idx1)
}

func TestBuildTooFewInputSamples(t *testing.T) {
	plan := Build(1, 5)
	require.Len(t, plan, 5)
	for _, e := range plan {
		assert.EqualValues(t, 0, e.Idx0)
		assert.EqualValues(t, 0, e.Idx1)
	}
}

func TestBuildZeroOutput(t *testing.T) {
	assert.Nil(t, Build(100, 0))
}
