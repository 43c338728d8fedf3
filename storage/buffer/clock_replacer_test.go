package buffer

import (
	"testing"

	"github.com/halvardb/pagebuf/storage/disk"
	"github.com/halvardb/pagebuf/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFrames(n int) []*FrameDescriptor {
	frames := make([]*FrameDescriptor, n)
	for i := range frames {
		frames[i] = &FrameDescriptor{frameNo: FrameID(i)}
	}
	return frames
}

func noopFlush(disk.File) error { return nil }

func TestAllocBufPrefersInvalidFrame(t *testing.T) {
	frames := newFrames(3)
	frames[1].Set(disk.File(nil), types.PageID(1))
	r := NewClockReplacer(frames)

	victim, err := r.AllocBuf(noopFlush)
	require.NoError(t, err)
	assert.False(t, frames[victim].Valid())
}

func TestAllocBufSkipsPinnedFrames(t *testing.T) {
	frames := newFrames(2)
	frames[0].Set(disk.File(nil), types.PageID(1)) // pinCount=1, refbit=true
	frames[1].Set(disk.File(nil), types.PageID(2))
	frames[1].pinCount-- // unpin frame 1 so AllocBuf has somewhere to go

	r := NewClockReplacer(frames)

	victim, err := r.AllocBuf(noopFlush)
	require.NoError(t, err)
	assert.Equal(t, FrameID(1), victim)
}

func TestAllocBufClearsRefbitOnFirstPass(t *testing.T) {
	frames := newFrames(1)
	frames[0].Set(disk.File(nil), types.PageID(1))
	frames[0].pinCount--
	require.True(t, frames[0].Refbit())

	r := NewClockReplacer(frames)
	victim, err := r.AllocBuf(noopFlush)

	require.NoError(t, err)
	assert.Equal(t, FrameID(0), victim)
	assert.False(t, frames[0].Refbit(), "a second sweep over the single frame must see refbit cleared")
}

func TestAllocBufAllPinnedIsBufferExceeded(t *testing.T) {
	frames := newFrames(2)
	frames[0].Set(disk.File(nil), types.PageID(1))
	frames[1].Set(disk.File(nil), types.PageID(2))

	r := NewClockReplacer(frames)
	_, err := r.AllocBuf(noopFlush)

	require.Error(t, err)
	bufErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, BufferExceeded, bufErr.Kind)
}

func TestAllocBufFlushesDirtyVictim(t *testing.T) {
	frames := newFrames(1)
	frames[0].Set(disk.File(nil), types.PageID(1))
	frames[0].pinCount--
	frames[0].refbit = false
	frames[0].dirty = true

	flushed := false
	r := NewClockReplacer(frames)
	victim, err := r.AllocBuf(func(disk.File) error {
		flushed = true
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, FrameID(0), victim)
	assert.True(t, flushed)
}

func TestAllocBufPropagatesFlushError(t *testing.T) {
	frames := newFrames(1)
	frames[0].Set(disk.File(nil), types.PageID(1))
	frames[0].pinCount--
	frames[0].refbit = false
	frames[0].dirty = true

	r := NewClockReplacer(frames)
	wantErr := assert.AnError
	_, err := r.AllocBuf(func(disk.File) error { return wantErr })

	assert.ErrorIs(t, err, wantErr)
}
