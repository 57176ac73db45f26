package clusters

import (
	"fmt"
	"io"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/vertgenlab/gonomics/exception"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the cluster-length distribution of a cluster index file
// and carries the admissible length interval derived from it.
type Stats struct {
	Hist   []int64 // clusters per length, index 0..maxClustLength
	NClust int64
	NBases int64
	MaxLen int // largest observed length within the histogram bound
	Lmin   int // 2 * mcovOut
	Lmax   int // auto-tuned, never above the configured bound
}

// ScanStats streams the cluster file once and tabulates the length
// histogram. Lengths above maxClustLength count toward the totals but not
// the histogram. Lmax is then the smallest length at which the cumulative
// base mass from Lmin reaches pval, clamped at maxClustLength. Cluster size
// is a proxy for locus multiplicity: too-short clusters lack support,
// too-long ones aggregate repeats.
func ScanStats(path string, mcovOut, maxClustLength int, pval float64) (Stats, error) {
	file, err := os.Open(path)
	if err != nil {
		return Stats{}, err
	}
	st := Stats{
		Hist: make([]int64, maxClustLength+1),
		Lmin: 2 * mcovOut,
	}

	sc := NewScanner(file)
	for sc.Scan() {
		rec := sc.Record()
		st.NClust++
		st.NBases += int64(rec.Length)
		if int(rec.Length) <= maxClustLength {
			st.Hist[rec.Length]++
			if int(rec.Length) > st.MaxLen {
				st.MaxLen = int(rec.Length)
			}
		}
	}
	if sc.Err() != nil {
		return Stats{}, sc.Err()
	}
	err = file.Close()
	exception.PanicOnErr(err)

	l := st.Lmin
	cum := st.Hist[l] * int64(l)
	for float64(cum)/float64(st.NBases) < pval && l < maxClustLength {
		l++
		cum += st.Hist[l] * int64(l)
	}
	st.Lmax = l
	return st, nil
}

// LengthMoments returns the mean and standard deviation of the observed
// cluster lengths, weighted by the histogram.
func (st Stats) LengthMoments() (mean, sd float64) {
	var xs, ws []float64
	for i := 1; i <= st.MaxLen; i++ {
		if st.Hist[i] > 0 {
			xs = append(xs, float64(i))
			ws = append(ws, float64(st.Hist[i]))
		}
	}
	if len(xs) == 0 {
		return 0, 0
	}
	return stat.Mean(xs, ws), stat.StdDev(xs, ws)
}

// Print writes the two informational panels to w: base mass per cluster
// length with the cumulative fraction from Lmin, then cluster count per
// length. Only the numeric fields are contractual.
func (st Stats) Print(w io.Writer) {
	fmt.Fprintln(w, "\nDistribution of base coverage:")
	fmt.Fprintf(w, "\ncluster length\t# bases in a cluster with this length\tcumulative fraction (from %d)\n", st.Lmin)
	var cum int64
	mass := make([]float64, st.MaxLen+1)
	count := make([]float64, st.MaxLen+1)
	for i := 0; i <= st.MaxLen; i++ {
		m := st.Hist[i] * int64(i)
		mass[i] = float64(m)
		count[i] = float64(st.Hist[i])
		fmt.Fprintf(w, "%d\t%d", i, m)
		if i >= st.Lmin && st.NBases > 0 {
			cum += m
			fmt.Fprintf(w, "\t%.4f", float64(cum)/float64(st.NBases))
		}
		fmt.Fprintln(w)
	}
	if st.MaxLen > 0 {
		fmt.Fprintln(w, asciigraph.Plot(mass, asciigraph.Height(10), asciigraph.Precision(0), asciigraph.Caption("bases per cluster length")))
	}

	fmt.Fprintln(w, "\nDistribution of cluster length:")
	fmt.Fprintf(w, "\ncluster length\t# clusters with this length\n")
	for i := 0; i <= st.MaxLen; i++ {
		fmt.Fprintf(w, "%d\t%d\n", i, st.Hist[i])
	}
	if st.MaxLen > 0 {
		fmt.Fprintln(w, asciigraph.Plot(count, asciigraph.Height(10), asciigraph.Precision(0), asciigraph.Caption("clusters per length")))
	}

	mean, sd := st.LengthMoments()
	fmt.Fprintf(w, "\nClusters: %d, clustered bases: %d, mean cluster length: %.2f (sd %.2f)\n", st.NClust, st.NBases, mean, sd)
	fmt.Fprintf(w, "Cluster sizes allowed: [%d,%d]\n", st.Lmin, st.Lmax)
}
