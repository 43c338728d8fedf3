package buffer

import (
	"testing"

	"github.com/halvardb/pagebuf/storage/disk"
	"github.com/halvardb/pagebuf/types"
	"github.com/stretchr/testify/assert"
)

func TestFrameDescriptorSet(t *testing.T) {
	d := &FrameDescriptor{frameNo: 3}
	f := disk.File(nil)

	d.Set(f, types.PageID(5))

	assert.True(t, d.Valid())
	assert.Equal(t, types.PageID(5), d.PageNo())
	assert.Equal(t, 1, d.PinCount())
	assert.False(t, d.Dirty())
	assert.True(t, d.Refbit())
	assert.Equal(t, FrameID(3), d.FrameNo())
}

func TestFrameDescriptorClear(t *testing.T) {
	d := &FrameDescriptor{frameNo: 1}
	d.Set(nil, types.PageID(5))
	d.dirty = true

	d.Clear()

	assert.False(t, d.Valid())
	assert.Equal(t, types.InvalidPageID, d.PageNo())
	assert.Equal(t, 0, d.PinCount())
	assert.False(t, d.Dirty())
	assert.False(t, d.Refbit())
	assert.Equal(t, FrameID(1), d.FrameNo(), "Clear must not touch frameNo")
}
