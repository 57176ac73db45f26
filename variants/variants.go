// Package variants finds inter-sample variants in BWT clusters and emits
// them as paired KISSNP2 fasta records.
package variants

import (
	"golang.org/x/exp/slices"

	"github.com/dasnellings/clust2snp/egsa"
	"github.com/vertgenlab/gonomics/dna"
)

// Candidate locates a putative variant by read coordinates: a left context
// window in each sample and a right context window shared by both. The
// variant base (or indel) is the last character of each left context.
type Candidate struct {
	LeftTextA uint64 // read index of the sample-0 left context
	LeftPosA  uint64 // start of the left context within that read
	LeftTextB uint64 // read index of the sample-1 left context
	LeftPosB  uint64
	RightText uint64 // read index of the shared right context
	RightPos  uint64
}

// Variant is a candidate materialized into sequence windows.
type Variant struct {
	LeftA []dna.Base // sample-0 left context, variant at the last position
	LeftB []dna.Base // sample-1 left context
	Right []dna.Base // shared right context
}

func baseIndex(b byte) (int, bool) {
	switch b {
	case 'A':
		return 0, true
	case 'C':
		return 1, true
	case 'G':
		return 2, true
	case 'T':
		return 3, true
	}
	return 0, false
}

func indexBase(i int) byte {
	return "ACGT"[i]
}

// Find extracts candidate variants from one cluster. Reads with index < n1
// belong to sample 0, the rest to sample 1.
//
// The cluster is rejected outright if its maximum LCP is shorter than
// kRight (no reliable right anchor), if either sample has no allele covered
// mcovOut times, if either sample shows more than two frequent alleles, if
// both samples show the same allele set, or if the cluster holds four or
// more distinct frequent alleles overall. The surviving (c0, c1) allele
// pairs are emitted in lexicographic order.
func Find(cluster []egsa.Entry, n1 uint64, kLeft, kRight, mcovOut int) []Candidate {
	var out []Candidate
	var cnt [2][4]int
	var maxLCP, rightText, rightPos uint64

	for _, e := range cluster {
		if e.LCP > maxLCP {
			maxLCP = e.LCP
			rightText = e.Text
			rightPos = e.Suff
		}
		s := 0
		if e.Text >= n1 {
			s = 1
		}
		if b, ok := baseIndex(e.BWT); ok {
			cnt[s][b]++
		}
	}

	if maxLCP < uint64(kRight) {
		return nil
	}

	var freq [2][]byte
	for b := 0; b < 4; b++ {
		for s := 0; s < 2; s++ {
			if cnt[s][b] >= mcovOut {
				freq[s] = append(freq[s], indexBase(b))
			}
		}
	}

	union := append(slices.Clone(freq[0]), freq[1]...)
	slices.Sort(union)
	union = slices.Compact(union)

	if len(freq[0]) == 0 || len(freq[1]) == 0 || // not covered enough
		len(freq[0]) > 2 || len(freq[1]) > 2 || // at most 2 alleles per sample
		slices.Equal(freq[0], freq[1]) || // same alleles, no inter-sample variant
		len(union) > 3 { // 4+ distinct alleles mark a repeat
		return nil
	}

	for _, c0 := range freq[0] {
		for _, c1 := range freq[1] {
			if c0 == c1 {
				continue
			}
			// Select the anchoring reads. Later entries overwrite
			// earlier ones: the last match in EGSA order wins, and
			// that tie-break is load-bearing for reproducibility.
			var textA, posA, textB, posB uint64
			var okA, okB bool
			for _, e := range cluster {
				if e.Suff < uint64(kLeft) {
					continue
				}
				if e.Text < n1 && e.BWT == c0 {
					textA = e.Text
					posA = e.Suff - uint64(kLeft)
					okA = true
				}
				if e.Text >= n1 && e.BWT == c1 {
					textB = e.Text
					posB = e.Suff - uint64(kLeft)
					okB = true
				}
			}
			if okA && okB {
				out = append(out, Candidate{
					LeftTextA: textA,
					LeftPosA:  posA,
					LeftTextB: textB,
					LeftPosB:  posB,
					RightText: rightText,
					RightPos:  rightPos,
				})
			}
		}
	}
	return out
}
