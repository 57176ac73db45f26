package variants

import (
	"golang.org/x/exp/slices"

	"github.com/dasnellings/clust2snp/reads"
	"github.com/vertgenlab/gonomics/dna"
)

// AccessPlan returns the sorted, deduplicated set of read ranks referenced
// by the candidates.
func AccessPlan(cands []Candidate) []uint64 {
	ranks := make([]uint64, 0, len(cands)*3)
	for _, c := range cands {
		ranks = append(ranks, c.LeftTextA, c.LeftTextB, c.RightText)
	}
	slices.Sort(ranks)
	return slices.Compact(ranks)
}

// Materialize fetches the reads named by the candidates in one pass over the
// fasta file and slices out the three context windows of each candidate.
// The output is aligned 1:1 with cands.
func Materialize(cands []Candidate, fastaPath string, kLeft, kRight int) ([]Variant, error) {
	plan := AccessPlan(cands)
	seqs, err := reads.Extract(fastaPath, plan)
	if err != nil {
		return nil, err
	}

	lookup := func(rank uint64) []dna.Base {
		i, _ := slices.BinarySearch(plan, rank)
		return seqs[i]
	}

	out := make([]Variant, 0, len(cands))
	for _, c := range cands {
		la := lookup(c.LeftTextA)
		lb := lookup(c.LeftTextB)
		r := lookup(c.RightText)
		out = append(out, Variant{
			LeftA: la[c.LeftPosA : c.LeftPosA+uint64(kLeft)],
			LeftB: lb[c.LeftPosB : c.LeftPosB+uint64(kLeft)],
			Right: r[c.RightPos : c.RightPos+uint64(kRight)],
		})
	}
	return out, nil
}
