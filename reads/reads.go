// Package reads extracts read sequences from a fasta file by rank.
package reads

import (
	"fmt"

	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/fasta"
)

// Extract streams the fasta file once and returns the sequence of every read
// whose rank (0-based position in the file) appears in ranks, in plan order.
// ranks must be sorted ascending and free of duplicates: a handful of reads
// is needed out of possibly millions, and one sequential pass beats random
// access. Sequences are uppercased.
func Extract(path string, ranks []uint64) ([][]dna.Base, error) {
	out := make([][]dna.Base, 0, len(ranks))
	records := fasta.GoReadToChan(path)

	var rank uint64
	i := 0
	for rec := range records {
		if i < len(ranks) && rank == ranks[i] {
			dna.AllToUpper(rec.Seq)
			out = append(out, rec.Seq)
			i++
		}
		rank++
	}
	if i != len(ranks) {
		return nil, fmt.Errorf("fasta %s has %d reads, need read rank %d", path, rank, ranks[i])
	}
	return out, nil
}
