package disk

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagedFileAllocWriteRead(t *testing.T) {
	dir := t.TempDir()
	f, err := OpenPagedFile(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	defer f.Close()

	p, err := f.AllocatePage()
	require.NoError(t, err)
	p.Copy(0, []byte("hello"))
	require.NoError(t, f.WritePage(p))

	got, err := f.ReadPage(p.ID())
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got.Data()[:5])
}

func TestPagedFileReadUnallocatedIsError(t *testing.T) {
	dir := t.TempDir()
	f, err := OpenPagedFile(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	defer f.Close()

	_, err = f.ReadPage(1)
	assert.ErrorIs(t, err, ErrNoSuchPage)
}

func TestPagedFileDeletePage(t *testing.T) {
	dir := t.TempDir()
	f, err := OpenPagedFile(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	defer f.Close()

	p, err := f.AllocatePage()
	require.NoError(t, err)
	require.NoError(t, f.WritePage(p))
	require.NoError(t, f.DeletePage(p.ID()))

	_, err = f.ReadPage(p.ID())
	assert.ErrorIs(t, err, ErrNoSuchPage)
}

func TestPagedFileSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	f, err := OpenPagedFile(path)
	require.NoError(t, err)

	p, err := f.AllocatePage()
	require.NoError(t, err)
	p.Copy(0, []byte("persisted"))
	require.NoError(t, f.WritePage(p))
	require.NoError(t, f.Close())

	reopened, err := OpenPagedFile(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.ReadPage(p.ID())
	require.NoError(t, err)
	assert.Equal(t, []byte("persisted"), got.Data()[:9])
}

func TestVirtualFileAllocWriteRead(t *testing.T) {
	f := NewVirtualFile("virtual")

	p, err := f.AllocatePage()
	require.NoError(t, err)
	p.Copy(0, []byte("memfile"))
	require.NoError(t, f.WritePage(p))

	got, err := f.ReadPage(p.ID())
	require.NoError(t, err)
	assert.Equal(t, []byte("memfile"), got.Data()[:7])
}

func TestVirtualFileDeletePage(t *testing.T) {
	f := NewVirtualFile("virtual")

	p, err := f.AllocatePage()
	require.NoError(t, err)
	require.NoError(t, f.WritePage(p))
	require.NoError(t, f.DeletePage(p.ID()))

	_, err = f.ReadPage(p.ID())
	assert.ErrorIs(t, err, ErrNoSuchPage)
}

var _ File = (*PagedFile)(nil)
var _ File = (*VirtualFile)(nil)
