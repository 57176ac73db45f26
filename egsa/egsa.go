// Package egsa reads the Enhanced Generalized Suffix Array produced by the
// egsa tool over the concatenation of both samples' reads.
package egsa

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// Entry is one row of the EGSA. Text is the index of the read the suffix
// belongs to, Suff the starting offset of the suffix within that read, LCP
// the length of the longest common prefix shared with the previous row, and
// BWT the character preceding the suffix in the read (a sentinel at Suff 0).
type Entry struct {
	Text uint64
	Suff uint64
	LCP  uint64
	BWT  byte
}

// On-disk record sizes in bytes. The canonical layout packs three
// little-endian uint64 fields plus the bwt byte. The reduced BCR layout
// packs the same fields as uint32.
const (
	RecordSize    = 25
	RecordSizeBCR = 13
)

// Reader decodes EGSA records sequentially. Random access is never needed:
// the cluster index visits rows in ascending order.
type Reader struct {
	r   *bufio.Reader
	bcr bool
	buf [RecordSize]byte
}

func NewReader(r io.Reader, bcr bool) *Reader {
	return &Reader{r: bufio.NewReaderSize(r, 1<<16), bcr: bcr}
}

// Read returns the next entry. io.EOF signals a clean end of file; a record
// cut short mid-way is reported as an error.
func (r *Reader) Read() (Entry, error) {
	n := RecordSize
	if r.bcr {
		n = RecordSizeBCR
	}
	if _, err := io.ReadFull(r.r, r.buf[:n]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return Entry{}, fmt.Errorf("truncated egsa record: %w", err)
		}
		return Entry{}, err
	}
	var e Entry
	if r.bcr {
		e.Text = uint64(binary.LittleEndian.Uint32(r.buf[0:4]))
		e.Suff = uint64(binary.LittleEndian.Uint32(r.buf[4:8]))
		e.LCP = uint64(binary.LittleEndian.Uint32(r.buf[8:12]))
		e.BWT = r.buf[12]
	} else {
		e.Text = binary.LittleEndian.Uint64(r.buf[0:8])
		e.Suff = binary.LittleEndian.Uint64(r.buf[8:16])
		e.LCP = binary.LittleEndian.Uint64(r.buf[16:24])
		e.BWT = r.buf[24]
	}
	return e, nil
}

// Skip advances past n entries. Reaching EOF before n entries have been
// consumed is an error: the caller asked for rows the index says exist.
func (r *Reader) Skip(n uint64) error {
	for ; n > 0; n-- {
		if _, err := r.Read(); err != nil {
			if err == io.EOF {
				return fmt.Errorf("egsa file ended during skip: %w", io.ErrUnexpectedEOF)
			}
			return err
		}
	}
	return nil
}
