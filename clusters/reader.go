package clusters

import (
	"fmt"
	"io"

	"github.com/dasnellings/clust2snp/egsa"
)

// ClusterReader co-streams the cluster index and the EGSA, yielding each
// cluster whose length falls in [lmin, lmax] as a slice of EGSA entries.
// Clusters outside the window are skipped, but the EGSA cursor still
// advances past their rows.
type ClusterReader struct {
	gsa        *egsa.Reader
	sc         *Scanner
	lmin, lmax int
	cursor     uint64
	scanned    int64
	buf        []egsa.Entry
}

func NewClusterReader(gsa *egsa.Reader, clusterIndex io.Reader, lmin, lmax int) *ClusterReader {
	return &ClusterReader{
		gsa:  gsa,
		sc:   NewScanner(clusterIndex),
		lmin: lmin,
		lmax: lmax,
	}
}

// Next returns the entries of the next admissible cluster, in EGSA order.
// The returned slice is reused by the following call. io.EOF signals the end
// of the cluster index; an EGSA that ends mid-cluster is an error.
func (cr *ClusterReader) Next() ([]egsa.Entry, error) {
	for cr.sc.Scan() {
		cr.scanned++
		rec := cr.sc.Record()
		if int(rec.Length) < cr.lmin || int(rec.Length) > cr.lmax {
			continue
		}
		if err := cr.gsa.Skip(rec.Start - cr.cursor); err != nil {
			return nil, err
		}
		cr.cursor = rec.Start
		cr.buf = cr.buf[:0]
		for n := uint16(0); n < rec.Length; n++ {
			e, err := cr.gsa.Read()
			if err == io.EOF {
				return nil, fmt.Errorf("egsa file ended inside cluster at row %d: %w", rec.Start, io.ErrUnexpectedEOF)
			}
			if err != nil {
				return nil, err
			}
			cr.buf = append(cr.buf, e)
			cr.cursor++
		}
		return cr.buf, nil
	}
	if cr.sc.Err() != nil {
		return nil, cr.sc.Err()
	}
	return nil, io.EOF
}

// Scanned reports how many index records have been consumed so far,
// admissible or not.
func (cr *ClusterReader) Scanned() int64 {
	return cr.scanned
}
