package buffer

import (
	"testing"

	"github.com/halvardb/pagebuf/storage/disk"
	"github.com/halvardb/pagebuf/types"
	"github.com/stretchr/testify/assert"
)

func TestPageLocationMapInsertLookup(t *testing.T) {
	m := NewPageLocationMap(4)
	fileA := disk.File(nil)

	m.Insert(fileA, types.PageID(1), FrameID(0))
	m.Insert(fileA, types.PageID(2), FrameID(1))

	frame, ok := m.Lookup(fileA, types.PageID(1))
	assert.True(t, ok)
	assert.Equal(t, FrameID(0), frame)

	frame, ok = m.Lookup(fileA, types.PageID(2))
	assert.True(t, ok)
	assert.Equal(t, FrameID(1), frame)

	assert.Equal(t, 2, m.Len())
}

func TestPageLocationMapMissIsNotFound(t *testing.T) {
	m := NewPageLocationMap(4)
	_, ok := m.Lookup(disk.File(nil), types.PageID(99))
	assert.False(t, ok)
}

func TestPageLocationMapPartitionsByFileIdentity(t *testing.T) {
	m := NewPageLocationMap(4)

	fileA := disk.File(disk.NewVirtualFile("a"))
	fileB := disk.File(disk.NewVirtualFile("b"))

	m.Insert(fileA, types.PageID(1), FrameID(0))
	m.Insert(fileB, types.PageID(1), FrameID(1))

	frame, ok := m.Lookup(fileA, types.PageID(1))
	assert.True(t, ok)
	assert.Equal(t, FrameID(0), frame)

	frame, ok = m.Lookup(fileB, types.PageID(1))
	assert.True(t, ok)
	assert.Equal(t, FrameID(1), frame)
}

func TestPageLocationMapRemoveThenLookupMisses(t *testing.T) {
	m := NewPageLocationMap(4)
	fileA := disk.File(nil)
	m.Insert(fileA, types.PageID(1), FrameID(0))

	assert.True(t, m.Remove(fileA, types.PageID(1)))
	_, ok := m.Lookup(fileA, types.PageID(1))
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestPageLocationMapRemoveDoesNotStrandLaterProbes(t *testing.T) {
	m := NewPageLocationMap(7)
	fileA := disk.File(disk.NewVirtualFile("a"))

	// Insert enough entries that some collide and probe forward, then
	// delete an earlier one and confirm a later colliding key is still
	// reachable -- the backward-shift deletion described on Remove in
	// location_map.go.
	for i := 1; i <= 6; i++ {
		m.Insert(fileA, types.PageID(i), FrameID(i))
	}
	m.Remove(fileA, types.PageID(1))

	for i := 2; i <= 6; i++ {
		frame, ok := m.Lookup(fileA, types.PageID(i))
		assert.True(t, ok, "page %d should still be found after removing page 1", i)
		assert.Equal(t, FrameID(i), frame)
	}
}

func TestPageLocationMapSizingRoundsToOdd(t *testing.T) {
	m := NewPageLocationMap(10)
	assert.Equal(t, 1, len(m.buckets)%2, "bucket count should be odd")
	assert.Greater(t, len(m.buckets), 10)
}
