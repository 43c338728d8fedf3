// this code is from https://github.com/brunocalza/go-bustub
// there is license and copyright notice in licenses/go-bustub dir

package page

import "github.com/halvardb/pagebuf/types"

// Size is the fixed size, in bytes, of every page.
const Size = 4096

// Page is an opaque fixed-size byte block carrying a page id. It owns no
// buffer-manager bookkeeping: pin count, dirty bit, and validity live on
// the FrameDescriptor that is caching it, not here. A Page that isn't
// currently held by any frame (e.g. one just returned by a file
// collaborator's AllocatePage) is a perfectly ordinary value with no
// special "detached" state to track.
type Page struct {
	id   types.PageID
	data [Size]byte
}

// New wraps id and data into a Page. data is copied so the caller's slice
// can be reused or discarded afterward.
func New(id types.PageID, data []byte) *Page {
	p := &Page{id: id}
	copy(p.data[:], data)
	return p
}

// ID returns the page's id.
func (p *Page) ID() types.PageID {
	return p.id
}

// Data returns a pointer to the page's fixed-size backing array. The
// caller may read and write through it only while holding a pin on the
// frame the page came from.
func (p *Page) Data() *[Size]byte {
	return &p.data
}

// Copy overwrites the page's bytes starting at offset with src, the same
// "write into the page in place" convenience the corpus's test helpers
// use for building fixture pages.
func (p *Page) Copy(offset int, src []byte) {
	copy(p.data[offset:], src)
}
