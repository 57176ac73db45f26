package reads

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vertgenlab/gonomics/dna"
)

func writeFasta(t *testing.T, records map[string]string, order []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reads.fasta")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range order {
		f.WriteString(">" + name + "\n")
		seq := records[name]
		// wrap to force multi-line records
		for len(seq) > 4 {
			f.WriteString(seq[:4] + "\n")
			seq = seq[4:]
		}
		f.WriteString(seq + "\n")
	}
	if err = f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtract(t *testing.T) {
	path := writeFasta(t, map[string]string{
		"read0": "ACGTACGTAA",
		"read1": "TTTTGGGGCC",
		"read2": "acgtacgt",
	}, []string{"read0", "read1", "read2"})

	got, err := Extract(path, []uint64{0, 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 reads, got %d", len(got))
	}
	if dna.BasesToString(got[0]) != "ACGTACGTAA" {
		t.Errorf("read 0: got %s", dna.BasesToString(got[0]))
	}
	if dna.BasesToString(got[1]) != "ACGTACGT" {
		t.Errorf("read 2: got %s, expected uppercased sequence", dna.BasesToString(got[1]))
	}
}

func TestExtractMissingRank(t *testing.T) {
	path := writeFasta(t, map[string]string{"read0": "ACGT"}, []string{"read0"})
	if _, err := Extract(path, []uint64{0, 5}); err == nil {
		t.Error("expected an error for a rank past the end of the file")
	}
}
