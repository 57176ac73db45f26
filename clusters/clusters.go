// Package clusters reads the BWT cluster index produced by cluster-bwt and
// turns it, together with the EGSA, into a stream of per-locus entry groups.
package clusters

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// Record locates one cluster: Start is a row index into the EGSA, Length the
// number of consecutive rows in the cluster.
type Record struct {
	Start  uint64
	Length uint16
}

const recordSize = 10

// Scanner streams (start, length) records until EOF.
type Scanner struct {
	r   *bufio.Reader
	buf [recordSize]byte
	rec Record
	err error
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReaderSize(r, 1<<16)}
}

// Scan advances to the next record, returning false at EOF or on error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	_, err := io.ReadFull(s.r, s.buf[:])
	if err == io.EOF {
		return false
	}
	if err == io.ErrUnexpectedEOF {
		s.err = fmt.Errorf("truncated cluster record: %w", err)
		return false
	}
	if err != nil {
		s.err = err
		return false
	}
	s.rec.Start = binary.LittleEndian.Uint64(s.buf[0:8])
	s.rec.Length = binary.LittleEndian.Uint16(s.buf[8:10])
	return true
}

func (s *Scanner) Record() Record {
	return s.rec
}

// Err returns nil after a clean EOF.
func (s *Scanner) Err() error {
	return s.err
}
