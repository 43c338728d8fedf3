package page

import (
	"testing"

	"github.com/halvardb/pagebuf/types"
	"github.com/stretchr/testify/assert"
)

func TestNewCopiesData(t *testing.T) {
	src := []byte("hello")
	p := New(types.PageID(1), src)

	src[0] = 'X'
	assert.Equal(t, byte('h'), p.Data()[0], "New must copy src, not alias it")
}

func TestNewPadsShortData(t *testing.T) {
	p := New(types.PageID(1), []byte("hi"))
	assert.Equal(t, byte(0), p.Data()[2])
}

func TestID(t *testing.T) {
	p := New(types.PageID(7), nil)
	assert.Equal(t, types.PageID(7), p.ID())
}

func TestCopyWritesAtOffset(t *testing.T) {
	p := New(types.PageID(1), nil)
	p.Copy(10, []byte("abc"))
	assert.Equal(t, []byte("abc"), p.Data()[10:13])
}
