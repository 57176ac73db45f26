package variants

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dasnellings/clust2snp/egsa"
	"github.com/vertgenlab/gonomics/dna"
)

// minimal SNP cluster: two sample-0 reads preceded by A, two sample-1 reads
// preceded by C, right anchor on the entry with LCP 3
func snpCluster() []egsa.Entry {
	return []egsa.Entry{
		{Text: 0, Suff: 3, LCP: 0, BWT: 'A'},
		{Text: 0, Suff: 4, LCP: 3, BWT: 'A'},
		{Text: 1, Suff: 3, LCP: 3, BWT: 'C'},
		{Text: 1, Suff: 5, LCP: 3, BWT: 'C'},
	}
}

func TestFindMinimalSnp(t *testing.T) {
	got := Find(snpCluster(), 1, 3, 3, 2)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	want := Candidate{
		LeftTextA: 0, LeftPosA: 1, // last sample-0 A entry: suff 4 - kLeft 3
		LeftTextB: 1, LeftPosB: 2, // last sample-1 C entry: suff 5 - kLeft 3
		RightText: 0, RightPos: 4, // first entry with the maximum LCP
	}
	if got[0] != want {
		t.Errorf("got %+v, want %+v", got[0], want)
	}
}

func TestFindRejectsShortLcp(t *testing.T) {
	cluster := snpCluster()
	for i := range cluster {
		if cluster[i].LCP == 3 {
			cluster[i].LCP = 2 // kRight - 1
		}
	}
	if got := Find(cluster, 1, 3, 3, 2); len(got) != 0 {
		t.Errorf("expected rejection with max LCP below kRight, got %d candidates", len(got))
	}
}

func TestFindRejectsFourAlleles(t *testing.T) {
	cluster := []egsa.Entry{
		{Text: 0, Suff: 5, LCP: 3, BWT: 'A'}, {Text: 0, Suff: 5, LCP: 3, BWT: 'A'},
		{Text: 0, Suff: 5, LCP: 3, BWT: 'C'}, {Text: 0, Suff: 5, LCP: 3, BWT: 'C'},
		{Text: 2, Suff: 5, LCP: 3, BWT: 'G'}, {Text: 2, Suff: 5, LCP: 3, BWT: 'G'},
		{Text: 2, Suff: 5, LCP: 3, BWT: 'T'}, {Text: 2, Suff: 5, LCP: 3, BWT: 'T'},
	}
	if got := Find(cluster, 1, 3, 3, 2); len(got) != 0 {
		t.Errorf("expected rejection with four distinct frequent alleles, got %d candidates", len(got))
	}
}

func TestFindRejectsIdenticalAlleleSets(t *testing.T) {
	cluster := []egsa.Entry{
		{Text: 0, Suff: 5, LCP: 3, BWT: 'A'}, {Text: 0, Suff: 5, LCP: 3, BWT: 'A'},
		{Text: 0, Suff: 5, LCP: 3, BWT: 'C'}, {Text: 0, Suff: 5, LCP: 3, BWT: 'C'},
		{Text: 2, Suff: 5, LCP: 3, BWT: 'A'}, {Text: 2, Suff: 5, LCP: 3, BWT: 'A'},
		{Text: 2, Suff: 5, LCP: 3, BWT: 'C'}, {Text: 2, Suff: 5, LCP: 3, BWT: 'C'},
	}
	if got := Find(cluster, 1, 3, 3, 2); len(got) != 0 {
		t.Errorf("expected rejection with identical allele sets, got %d candidates", len(got))
	}
}

func TestFindRejectsLowCoverage(t *testing.T) {
	cluster := snpCluster()
	if got := Find(cluster, 1, 3, 3, 3); len(got) != 0 {
		t.Errorf("expected rejection with coverage below mcov, got %d candidates", len(got))
	}
}

func TestFindIgnoresNonACGT(t *testing.T) {
	cluster := append(snpCluster(),
		egsa.Entry{Text: 0, Suff: 0, LCP: 3, BWT: '#'},
		egsa.Entry{Text: 1, Suff: 4, LCP: 3, BWT: 'N'},
	)
	if got := Find(cluster, 1, 3, 3, 2); len(got) != 1 {
		t.Errorf("expected sentinel and N bwt characters to be ignored, got %d candidates", len(got))
	}
}

func bases(s string) []dna.Base {
	return dna.StringToBases(s)
}

func TestDistanceIdentity(t *testing.T) {
	a := bases("ACGTACGTAC")
	if d, gap := Distance(a, a, 10); d != 0 || gap != 0 {
		t.Errorf("Distance(a, a) = (%d, %d), want (0, 0)", d, gap)
	}
}

func TestDistanceSnp(t *testing.T) {
	d, gap := Distance(bases("ACGTACGTAA"), bases("ACGTACGTAC"), 5)
	if d != 1 || gap != 0 {
		t.Errorf("got (%d, %d), want (1, 0)", d, gap)
	}
}

func TestDistanceGapExample(t *testing.T) {
	a, b := bases("ACCTACTG"), bases("TTACTTAC")
	if d, gap := Distance(a, b, 8); d != 1 || gap != 2 {
		t.Errorf("Distance(a, b) = (%d, %d), want (1, 2)", d, gap)
	}
	if d, gap := Distance(b, a, 8); d != 1 || gap != -2 {
		t.Errorf("Distance(b, a) = (%d, %d), want (1, -2)", d, gap)
	}
}

func TestDistanceSingleInsertion(t *testing.T) {
	d, gap := Distance(bases("TTACCG"), bases("ATTACC"), 2)
	if d != 0 || gap != 1 {
		t.Errorf("got (%d, %d), want (0, 1)", d, gap)
	}
}

func TestDistanceGapDisabled(t *testing.T) {
	// with maxGap 0 the classifier must never report an indel
	d, gap := Distance(bases("TTACCG"), bases("ATTACC"), 0)
	if gap != 0 {
		t.Errorf("got gap %d with maxGap 0", gap)
	}
	if d != 4 {
		t.Errorf("got %d mismatches, want 4", d)
	}
}

func TestMaterialize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reads.fasta")
	err := os.WriteFile(path, []byte(">read0\nACGTACGT\n>read1\nGGGGCCCC\n>read2\nTTTTTT\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}

	cands := []Candidate{{
		LeftTextA: 0, LeftPosA: 1,
		LeftTextB: 2, LeftPosB: 0,
		RightText: 1, RightPos: 2,
	}}
	vs, err := Materialize(cands, path, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(vs) != 1 {
		t.Fatalf("expected 1 variant, got %d", len(vs))
	}
	if dna.BasesToString(vs[0].LeftA) != "CGT" ||
		dna.BasesToString(vs[0].LeftB) != "TTT" ||
		dna.BasesToString(vs[0].Right) != "GGCC" {
		t.Errorf("unexpected windows: %s %s %s",
			dna.BasesToString(vs[0].LeftA), dna.BasesToString(vs[0].LeftB), dna.BasesToString(vs[0].Right))
	}
}

func TestAccessPlan(t *testing.T) {
	cands := []Candidate{
		{LeftTextA: 5, LeftTextB: 2, RightText: 5},
		{LeftTextA: 2, LeftTextB: 9, RightText: 0},
	}
	plan := AccessPlan(cands)
	want := []uint64{0, 2, 5, 9}
	if len(plan) != len(want) {
		t.Fatalf("got plan %v, want %v", plan, want)
	}
	for i := range want {
		if plan[i] != want[i] {
			t.Fatalf("got plan %v, want %v", plan, want)
		}
	}
}
