// this code is from https://github.com/brunocalza/go-bustub
// there is license and copyright notice in licenses/go-bustub dir

package disk

import (
	"fmt"
	"io"
	"os"

	"github.com/halvardb/pagebuf/storage/page"
	"github.com/halvardb/pagebuf/types"
	"github.com/ncw/directio"
)

// PagedFile is the os.File-backed File collaborator: pages are fixed-size
// slots at (pageNo-1)*page.Size within a single on-disk file, grown on demand
// as pages are allocated.
type PagedFile struct {
	db       *os.File
	fileName string
	nextID   types.PageID
	size     int64
	deleted  map[types.PageID]bool
}

// OpenPagedFile opens (creating if necessary) the database file at path.
func OpenPagedFile(path string) (*PagedFile, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0666)
	if err != nil {
		return nil, fmt.Errorf("disk: open %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("disk: stat %s: %w", path, err)
	}

	size := info.Size()
	nPages := size / page.Size

	return &PagedFile{
		db:       f,
		fileName: path,
		nextID:   types.PageID(nPages + 1),
		size:     size,
		deleted:  make(map[types.PageID]bool),
	}, nil
}

// Filename returns the path the file was opened with.
func (f *PagedFile) Filename() string {
	return f.fileName
}

func (f *PagedFile) offset(pageNo types.PageID) int64 {
	return int64(pageNo-1) * page.Size
}

// ReadPage reads pageNo's contents from disk.
func (f *PagedFile) ReadPage(pageNo types.PageID) (*page.Page, error) {
	if f.deleted[pageNo] {
		return nil, fmt.Errorf("disk: read %s page %d: %w", f.fileName, pageNo, ErrNoSuchPage)
	}

	offset := f.offset(pageNo)
	if offset < 0 || offset >= f.size {
		return nil, fmt.Errorf("disk: read %s page %d: %w", f.fileName, pageNo, ErrNoSuchPage)
	}

	buf := directio.AlignedBlock(page.Size)
	if _, err := f.db.Seek(offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("disk: seek %s: %w", f.fileName, err)
	}
	n, err := f.db.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("disk: read %s page %d: %w", f.fileName, pageNo, err)
	}
	if n < page.Size {
		for i := n; i < page.Size; i++ {
			buf[i] = 0
		}
	}
	return page.New(pageNo, buf), nil
}

// WritePage writes p's contents to p.ID()'s slot.
func (f *PagedFile) WritePage(p *page.Page) error {
	pageNo := p.ID()
	offset := f.offset(pageNo)
	if offset < 0 {
		return fmt.Errorf("disk: write %s page %d: %w", f.fileName, pageNo, ErrNoSuchPage)
	}

	buf := directio.AlignedBlock(page.Size)
	copy(buf, p.Data()[:])

	if _, err := f.db.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("disk: seek %s: %w", f.fileName, err)
	}
	n, err := f.db.Write(buf)
	if err != nil {
		return fmt.Errorf("disk: write %s page %d: %w", f.fileName, pageNo, err)
	}
	if n != page.Size {
		return fmt.Errorf("disk: write %s page %d: short write of %d bytes", f.fileName, pageNo, n)
	}

	if end := offset + int64(n); end > f.size {
		f.size = end
	}
	return f.db.Sync()
}

// AllocatePage returns a freshly allocated, zero-filled page.
func (f *PagedFile) AllocatePage() (*page.Page, error) {
	id := f.nextID
	f.nextID++
	delete(f.deleted, id)
	return page.New(id, make([]byte, page.Size)), nil
}

// DeletePage marks pageNo's slot as deallocated. The underlying file space
// is not reclaimed; a real storage engine would track it in a free-space
// bitmap, which is outside this design's scope.
func (f *PagedFile) DeletePage(pageNo types.PageID) error {
	f.deleted[pageNo] = true
	return nil
}

// Close closes the underlying os.File.
func (f *PagedFile) Close() error {
	return f.db.Close()
}
