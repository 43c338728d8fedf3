package buffer

import (
	"encoding/binary"
	"reflect"

	"github.com/halvardb/pagebuf/storage/disk"
	"github.com/halvardb/pagebuf/types"
	"github.com/spaolacci/murmur3"
)

// locationKey is a PageLocationMap key: a page identified by the identity
// of the file that owns it plus its page number. Two keys built from the
// same File value and page number compare equal via Go's native interface
// equality, which for our File implementations (always backed by a
// pointer) is pointer identity -- exactly the "file_identity" comparison
// the spec calls for.
type locationKey struct {
	file   disk.File
	pageNo types.PageID
}

func (k locationKey) hash() uint32 {
	var buf [8 + 4]byte
	var ptr uint64
	if v := reflect.ValueOf(k.file); v.IsValid() {
		ptr = uint64(v.Pointer())
	}
	binary.LittleEndian.PutUint64(buf[:8], ptr)
	binary.LittleEndian.PutUint32(buf[8:], uint32(k.pageNo))
	return murmur3.Sum32(buf[:])
}

type mapEntry struct {
	used  bool
	key   locationKey
	frame FrameID
}

// PageLocationMap is an open-addressing (linear probing) hash table from
// (file, page_no) to FrameID, sized at construction per §4.3: at least
// ⌈1.2·N⌉ buckets, rounded up to the next odd number to cut down on probe
// clustering against an even-sized table. It is not safe for concurrent
// use, matching the rest of the buffer manager.
type PageLocationMap struct {
	buckets []mapEntry
	count   int
}

// NewPageLocationMap returns an empty map sized for a pool of n frames.
func NewPageLocationMap(n int) *PageLocationMap {
	size := int(float64(n)*1.2) + 1
	if size%2 == 0 {
		size++
	}
	return &PageLocationMap{buckets: make([]mapEntry, size)}
}

func (m *PageLocationMap) indexOf(key locationKey) (int, bool) {
	n := len(m.buckets)
	start := int(key.hash()) % n
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		b := &m.buckets[idx]
		if !b.used {
			return idx, false
		}
		if b.key.file == key.file && b.key.pageNo == key.pageNo {
			return idx, true
		}
	}
	return -1, false
}

// Lookup returns the frame caching (file, pageNo), if any.
func (m *PageLocationMap) Lookup(file disk.File, pageNo types.PageID) (FrameID, bool) {
	idx, found := m.indexOf(locationKey{file, pageNo})
	if !found {
		return 0, false
	}
	return m.buckets[idx].frame, true
}

// Insert records that frame now caches (file, pageNo). Insert never
// allocates on the steady-state path where the table has free capacity,
// which holds at all times here since the map is sized to always have
// strictly more buckets than frames.
func (m *PageLocationMap) Insert(file disk.File, pageNo types.PageID, frame FrameID) {
	key := locationKey{file, pageNo}
	idx, found := m.indexOf(key)
	if idx < 0 {
		panic("buffer: PageLocationMap is full, which should be impossible given its sizing")
	}
	if !found {
		m.count++
	}
	m.buckets[idx] = mapEntry{used: true, key: key, frame: frame}
}

// Remove deletes the entry for (file, pageNo), reporting whether it was
// present. It never allocates: the backward-shift deletion below only
// moves existing entries within the bucket array.
func (m *PageLocationMap) Remove(file disk.File, pageNo types.PageID) bool {
	idx, found := m.indexOf(locationKey{file, pageNo})
	if !found {
		return false
	}

	n := len(m.buckets)
	m.buckets[idx] = mapEntry{}
	m.count--

	// Backward-shift deletion: walk forward from the freed slot, moving
	// any entry that could only have been placed here because idx was
	// occupied back into the gap it leaves behind. Without this, later
	// lookups that probe past a hole left by a naive delete could give up
	// on a key that is still present further along the probe sequence.
	hole := idx
	for i := 1; i < n; i++ {
		probe := (idx + i) % n
		b := m.buckets[probe]
		if !b.used {
			break
		}
		home := int(b.key.hash()) % n
		if !withinRange(home, hole, probe, n) {
			continue
		}
		m.buckets[hole] = b
		m.buckets[probe] = mapEntry{}
		hole = probe
	}

	return true
}

// withinRange reports whether, walking forward cyclically from home, hole
// is reached no later than probe -- i.e. moving the entry that lives at
// probe back to hole would not jump it past its own home slot.
func withinRange(home, hole, probe, n int) bool {
	distHole := (hole - home + n) % n
	distProbe := (probe - home + n) % n
	return distHole <= distProbe
}

// Len returns the number of entries currently stored.
func (m *PageLocationMap) Len() int {
	return m.count
}
