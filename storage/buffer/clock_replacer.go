// this code is from https://github.com/brunocalza/go-bustub
// there is license and copyright notice in licenses/go-bustub dir

package buffer

import "github.com/halvardb/pagebuf/storage/disk"

// ClockReplacer implements the clock (second-chance) victim-selection
// algorithm of §4.2 directly over the buffer manager's own descriptor
// table, rather than tracking a separate unpinned-frames list the way a
// plain LRU/FIFO replacer might. That is what lets it see refbit and
// pinCount on every frame, pinned ones included, on every sweep. A set
// refbit is cleared whether or not the frame is pinned; a pinned frame
// whose refbit is already clear is skipped and left as it is.
type ClockReplacer struct {
	frames    []*FrameDescriptor
	clockHand int
}

// NewClockReplacer builds a replacer over frames. clockHand starts at
// len(frames)-1 so the first AdvanceClock lands on frame 0.
func NewClockReplacer(frames []*FrameDescriptor) *ClockReplacer {
	return &ClockReplacer{frames: frames, clockHand: len(frames) - 1}
}

// AdvanceClock moves the clock hand one step and returns the frame it now
// points at.
func (c *ClockReplacer) AdvanceClock() FrameID {
	c.clockHand = (c.clockHand + 1) % len(c.frames)
	return FrameID(c.clockHand)
}

// FlushFunc writes back every dirty frame owned by file and evicts all of
// that file's frames; it fails, with no side effects, if any frame of file
// is pinned. AllocBuf calls it when the victim it lands on is dirty, per
// §4.2 step 6, so a dirty victim costs a flush of its whole file rather
// than a single-page write. It is a function
// rather than a direct BufferPoolManager reference so the replacement
// engine never needs to know anything about the manager that owns it --
// only how to discharge one obligation of the frame it just selected.
type FlushFunc func(file disk.File) error

// AllocBuf selects and returns a victim frame, per the algorithm in §4.2:
// a pool-wide precondition scan for BufferExceeded, then a clock sweep
// that clears refbits, skips pinned frames, and flushes (via flush) a
// dirty victim before handing it back. The returned frame's descriptor
// may still be marked valid with a stale occupant; the caller is
// responsible for evicting the map entry and calling Set.
func (c *ClockReplacer) AllocBuf(flush FlushFunc) (FrameID, error) {
	unpinned := false
	for _, d := range c.frames {
		if d.PinCount() == 0 {
			unpinned = true
			break
		}
	}
	if !unpinned {
		return 0, newBufferExceededError()
	}

	for {
		frameNo := c.AdvanceClock()
		d := c.frames[frameNo]

		if !d.valid {
			return frameNo, nil
		}
		if d.refbit {
			d.refbit = false
			continue
		}
		if d.pinCount >= 1 {
			continue
		}
		if d.dirty {
			if err := flush(d.file); err != nil {
				return 0, err
			}
			return frameNo, nil
		}
		return frameNo, nil
	}
}
