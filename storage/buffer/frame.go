package buffer

import (
	"github.com/halvardb/pagebuf/storage/disk"
	"github.com/halvardb/pagebuf/types"
)

// FrameID is a dense index in [0, N) identifying a slot in both the frame
// pool and the descriptor table.
type FrameID uint32

// FrameDescriptor is the metadata record for one frame of the pool: which
// file and page it currently caches (if any), how many pins are held on
// it, and the two replacement-policy bits (dirty, refbit). frameNo is
// fixed at construction and never changes.
type FrameDescriptor struct {
	frameNo  FrameID
	file     disk.File
	pageNo   types.PageID
	pinCount int
	dirty    bool
	valid    bool
	refbit   bool
}

// Set installs a newly cached page, per §4.4: pinCount=1, dirty=false,
// refbit=true. The caller is responsible for having already removed any
// stale map entry this frame held.
func (d *FrameDescriptor) Set(file disk.File, pageNo types.PageID) {
	d.valid = true
	d.file = file
	d.pageNo = pageNo
	d.pinCount = 1
	d.dirty = false
	d.refbit = true
}

// Clear returns the frame to its invalid, empty state. frameNo is
// untouched.
func (d *FrameDescriptor) Clear() {
	d.valid = false
	d.file = nil
	d.pageNo = types.InvalidPageID
	d.pinCount = 0
	d.dirty = false
	d.refbit = false
}

// FrameNo returns the descriptor's fixed frame index.
func (d *FrameDescriptor) FrameNo() FrameID { return d.frameNo }

// File returns the file owning the cached page, or nil if the frame is
// invalid.
func (d *FrameDescriptor) File() disk.File { return d.file }

// PageNo returns the cached page's id, or the invalid sentinel.
func (d *FrameDescriptor) PageNo() types.PageID { return d.pageNo }

// PinCount returns the number of outstanding pins on the frame.
func (d *FrameDescriptor) PinCount() int { return d.pinCount }

// Dirty reports whether the cached page has unflushed writes.
func (d *FrameDescriptor) Dirty() bool { return d.dirty }

// Valid reports whether the frame currently caches a real page.
func (d *FrameDescriptor) Valid() bool { return d.valid }

// Refbit reports the clock second-chance bit.
func (d *FrameDescriptor) Refbit() bool { return d.refbit }
