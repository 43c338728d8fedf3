// this code is from https://github.com/brunocalza/go-bustub
// there is license and copyright notice in licenses/go-bustub dir

package types

import (
	"bytes"
	"encoding/binary"
)

// PageID identifies a page within a single file. Zero is the sentinel used
// by an invalid frame or a not-yet-allocated page; real on-disk pages start
// at 1, matching the spec's "zero sentinel for an unused / invalid page
// slot" convention.
type PageID int32

// InvalidPageID is the sentinel page number for an invalid/empty frame.
const InvalidPageID = PageID(0)

// IsValid reports whether id could name a real, allocated page.
func (id PageID) IsValid() bool {
	return id != InvalidPageID
}

// Serialize renders the id as a little-endian byte slice.
func (id PageID) Serialize() []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, id)
	return buf.Bytes()
}

// NewPageIDFromBytes is the inverse of Serialize.
func NewPageIDFromBytes(data []byte) (ret PageID) {
	binary.Read(bytes.NewBuffer(data), binary.LittleEndian, &ret)
	return ret
}
