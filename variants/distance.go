package variants

import "github.com/vertgenlab/gonomics/dna"

// hamming counts mismatches between a and b aligned on the right; when the
// lengths differ the extra characters on the left of the longer string are
// ignored. The right alignment is what makes the indel search below work.
func hamming(a, b []dna.Base) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var d int
	for i := 0; i < n; i++ {
		if a[len(a)-1-i] != b[len(b)-1-i] {
			d++
		}
	}
	return d
}

// Distance aligns two equal-length contexts allowing one gap of up to maxGap
// characters at the right end. It returns the number of mismatches outside
// the gap and the signed gap length: positive for an insertion in a,
// negative for an insertion in b, zero for a pure mismatch alignment.
// A gapless alignment wins only on strict inequality. Both inputs must be at
// least maxGap long.
//
// Examples:
//
//	Distance(ACCTACTG, TTACTTAC, 8) = (1, 2)
//	Distance(TTACTTAC, ACCTACTG, 8) = (1, -2)
func Distance(a, b []dna.Base, maxGap int) (d, gap int) {
	d0 := hamming(a, b)
	if maxGap == 0 {
		return d0, 0
	}

	bestA, bestB := -1, -1
	var bestAGap, bestBGap int
	for i := 1; i <= maxGap; i++ {
		da := hamming(a[:len(a)-i], b) + i
		if bestA < 0 || da < bestA {
			bestA = da
			bestAGap = i
		}
		db := hamming(a, b[:len(b)-i]) + i
		if bestB < 0 || db < bestB {
			bestB = db
			bestBGap = i
		}
	}

	if d0 < bestA && d0 < bestB {
		return d0, 0
	}
	if bestA < bestB {
		return bestA - bestAGap, bestAGap
	}
	return bestB - bestBGap, -bestBGap
}
