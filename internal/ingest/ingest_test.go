package ingest

import (
	"testing"

	"github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bfarago/timelinedb/internal/layout"
)

// fakeBuffer is a minimal Allocator stand-in so this test does not
// depend on the root package.
type fakeBuffer struct {
	storage []byte
	step    uint32
	exp     int
}

func (f *fakeBuffer) Allocate(sampleCount, channelCount, bitWidth, alignment int, l layout.Kind) error {
	n, err := layout.BytesPerSample(l, channelCount, bitWidth)
	if err != nil {
		return err
	}
	f.storage = make([]byte, sampleCount*n)
	return nil
}

func (f *fakeBuffer) Storage() []byte { return f.storage }

func (f *fakeBuffer) SetTimeBase(step uint32, exponent int) {
	f.step = step
	f.exp = exponent
}

func TestFromPCMBufferSimd(t *testing.T) {
	pcm := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 44100},
		Data:           []int{0, 1000, -1000, 32767},
		SourceBitDepth: 16,
	}
	dst := &fakeBuffer{}
	require.NoError(t, FromPCMBuffer(pcm, dst, ForceSimdI16x8))
	assert.Len(t, dst.storage, 4*16)
	assert.NotZero(t, dst.step)
}

func TestFromPCMBufferAnalogI8(t *testing.T) {
	pcm := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: 8000},
		Data:           []int{10, -10, 20, -20},
		SourceBitDepth: 8,
	}
	dst := &fakeBuffer{}
	require.NoError(t, FromPCMBuffer(pcm, dst, ForceAnalogI8))
	assert.Len(t, dst.storage, 2*2)
}

func TestFromPCMBufferRejectsNilFormat(t *testing.T) {
	dst := &fakeBuffer{}
	err := FromPCMBuffer(&audio.IntBuffer{}, dst, AutoLayout)
	assert.Error(t, err)
}
