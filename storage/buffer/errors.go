package buffer

import (
	"fmt"

	"github.com/halvardb/pagebuf/types"
)

// Kind identifies which of the taxonomy's error conditions occurred,
// letting a caller branch on the failure without string-matching
// Error().
type Kind int

const (
	// BufferExceeded: every frame has pin_count > 0; allocBuf has nowhere
	// to evict from.
	BufferExceeded Kind = iota
	// PagePinned: flushFile found a pinned frame of the target file.
	PagePinned
	// BadBuffer: flushFile found a valid frame of the target file with
	// the sentinel page number, which should be unreachable.
	BadBuffer
	// PageNotPinned: unPinPage was called on a frame with pin_count == 0.
	PageNotPinned
)

func (k Kind) String() string {
	switch k {
	case BufferExceeded:
		return "BufferExceeded"
	case PagePinned:
		return "PagePinned"
	case BadBuffer:
		return "BadBuffer"
	case PageNotPinned:
		return "PageNotPinned"
	default:
		return "Unknown"
	}
}

// Error is the common shape of every error the buffer manager's public
// protocol surfaces: a Kind plus whatever filename/page/frame context is
// available. NotFound, by contrast, is never surfaced as an Error -- it is
// a two-value (FrameID, bool) control-flow signal internal to the
// PageLocationMap, consumed wherever absence is a legal state (§7).
type Error struct {
	Kind     Kind
	Filename string
	PageNo   types.PageID
	FrameNo  FrameID
	HasFrame bool
}

func (e *Error) Error() string {
	if e.HasFrame {
		return fmt.Sprintf("buffer: %s: file=%q page=%d frame=%d", e.Kind, e.Filename, e.PageNo, e.FrameNo)
	}
	return fmt.Sprintf("buffer: %s: file=%q page=%d", e.Kind, e.Filename, e.PageNo)
}

func newBufferExceededError() *Error {
	return &Error{Kind: BufferExceeded}
}

func newPagePinnedError(filename string, pageNo types.PageID, frameNo FrameID) *Error {
	return &Error{Kind: PagePinned, Filename: filename, PageNo: pageNo, FrameNo: frameNo, HasFrame: true}
}

func newBadBufferError(filename string, pageNo types.PageID, frameNo FrameID) *Error {
	return &Error{Kind: BadBuffer, Filename: filename, PageNo: pageNo, FrameNo: frameNo, HasFrame: true}
}

func newPageNotPinnedError(filename string, pageNo types.PageID, frameNo FrameID) *Error {
	return &Error{Kind: PageNotPinned, Filename: filename, PageNo: pageNo, FrameNo: frameNo, HasFrame: true}
}
