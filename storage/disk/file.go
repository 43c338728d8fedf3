// this code is from https://github.com/brunocalza/go-bustub
// there is license and copyright notice in licenses/go-bustub dir

package disk

import (
	"github.com/halvardb/pagebuf/storage/page"
	"github.com/halvardb/pagebuf/types"
)

// File is the buffer manager's file collaborator contract: a paged file
// the manager reads from, writes to, and allocates/deletes pages within.
// Object identity of a File value (pointer equality on the concrete
// *PagedFile/*VirtualFile it wraps) is significant -- the buffer manager
// partitions its frames by identity, not by Filename(), so that two File
// values opened against the same path are still treated as distinct
// files if the caller ever does something that unusual.
type File interface {
	// ReadPage reads pageNo's contents. Returns an error (typically
	// wrapping ErrNoSuchPage) if pageNo was never allocated or was
	// deleted.
	ReadPage(pageNo types.PageID) (*page.Page, error)

	// WritePage writes p's contents to p.ID()'s slot.
	WritePage(p *page.Page) error

	// AllocatePage returns a freshly allocated, zero-filled page with a
	// fresh, non-zero page number.
	AllocatePage() (*page.Page, error)

	// DeletePage deallocates pageNo's on-disk slot. Deleting an
	// already-deleted or never-allocated page is not an error.
	DeletePage(pageNo types.PageID) error

	// Filename returns a human-readable identifier for error reporting.
	// It is not used for frame partitioning.
	Filename() string

	// Close releases any OS resources held by the file. Pages already
	// read are unaffected; further calls to the other methods are not
	// supported.
	Close() error
}
