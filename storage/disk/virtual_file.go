package disk

import (
	"fmt"

	"github.com/dsnet/golib/memfile"
	"github.com/halvardb/pagebuf/storage/page"
	"github.com/halvardb/pagebuf/types"
)

// VirtualFile is an in-memory File collaborator backed by
// dsnet/golib/memfile, used throughout the test suite and available to
// library users who want a throwaway database with no disk footprint.
type VirtualFile struct {
	name    string
	db      *memfile.File
	size    int64
	nextID  types.PageID
	deleted map[types.PageID]bool
}

// NewVirtualFile returns an empty in-memory file, named only for error
// reporting.
func NewVirtualFile(name string) *VirtualFile {
	return &VirtualFile{
		name:    name,
		db:      memfile.New(nil),
		nextID:  types.PageID(1),
		deleted: make(map[types.PageID]bool),
	}
}

// Filename returns the name the file was constructed with.
func (f *VirtualFile) Filename() string {
	return f.name
}

func (f *VirtualFile) offset(pageNo types.PageID) int64 {
	return int64(pageNo-1) * page.Size
}

// ReadPage reads pageNo's contents from the in-memory buffer.
func (f *VirtualFile) ReadPage(pageNo types.PageID) (*page.Page, error) {
	if f.deleted[pageNo] {
		return nil, fmt.Errorf("disk: read %s page %d: %w", f.name, pageNo, ErrNoSuchPage)
	}

	offset := f.offset(pageNo)
	if offset < 0 || offset+page.Size > f.size {
		return nil, fmt.Errorf("disk: read %s page %d: %w", f.name, pageNo, ErrNoSuchPage)
	}

	buf := make([]byte, page.Size)
	if _, err := f.db.ReadAt(buf, offset); err != nil {
		return nil, fmt.Errorf("disk: read %s page %d: %w", f.name, pageNo, err)
	}
	return page.New(pageNo, buf), nil
}

// WritePage writes p's contents to p.ID()'s slot.
func (f *VirtualFile) WritePage(p *page.Page) error {
	pageNo := p.ID()
	offset := f.offset(pageNo)
	if offset < 0 {
		return fmt.Errorf("disk: write %s page %d: %w", f.name, pageNo, ErrNoSuchPage)
	}

	data := p.Data()
	if _, err := f.db.WriteAt(data[:], offset); err != nil {
		return fmt.Errorf("disk: write %s page %d: %w", f.name, pageNo, err)
	}
	if end := offset + page.Size; end > f.size {
		f.size = end
	}
	return nil
}

// AllocatePage returns a freshly allocated, zero-filled page.
func (f *VirtualFile) AllocatePage() (*page.Page, error) {
	id := f.nextID
	f.nextID++
	delete(f.deleted, id)
	return page.New(id, make([]byte, page.Size)), nil
}

// DeletePage marks pageNo's slot as deallocated.
func (f *VirtualFile) DeletePage(pageNo types.PageID) error {
	f.deleted[pageNo] = true
	return nil
}

// Close is a no-op; there is no OS resource to release.
func (f *VirtualFile) Close() error {
	return nil
}
