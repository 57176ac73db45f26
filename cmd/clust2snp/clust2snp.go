package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dasnellings/clust2snp/clusters"
	"github.com/dasnellings/clust2snp/egsa"
	"github.com/dasnellings/clust2snp/variants"
	"github.com/pkg/profile"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

func usage() {
	fmt.Print(
		"clust2snp - reference-free SNP/indel discovery between two pooled read samples,\n" +
			"using only the Enhanced Generalized Suffix Array of the concatenated reads and\n" +
			"its BWT cluster index.\n" +
			"Usage:\n" +
			"clust2snp [options] -i reads.fasta -n <reads in first sample>\n\n" +
			"clust2snp expects two sibling files next to the input fasta: the EGSA built by\n" +
			"egsa (reads.fasta.gesa) and the cluster index built by cluster-bwt\n" +
			"(reads.fasta.clusters). Variants are written in KisSNP2 fasta format to\n" +
			"reads.snp.fasta. Most events appear twice, once per strand.\n\n")
	flag.PrintDefaults()
}

func main() {
	input := flag.String("i", "", "Input fasta file containing both samples' reads.")
	n1 := flag.Uint64("n", 0, "Number of reads in the first sample.")
	kLeft := flag.Int("L", 31, "Length of left context, variant included.")
	kRight := flag.Int("R", 30, "Length of right context, variant excluded.")
	maxGap := flag.Int("g", 10, "Maximum indel gap length. 0 disables indels.")
	maxSNVs := flag.Int("v", 2, "Maximum mismatches allowed in the left context, main variant excluded. Accepted for compatibility with the original tool, which pins this filter to its built-in default.")
	mcovOut := flag.Int("m", 5, "Minimum coverage per sample per event. The minimum cluster length is twice this value.")
	pval := flag.Float64("p", 0.85, "Auto-tune the maximum cluster length so that this fraction of clustered bases is analyzed.")
	maxClust := flag.Int("M", 150, "Maximum cluster length. May be lowered by the -p auto-tuning.")
	bcr := flag.Bool("b", false, "EGSA file is in the reduced BCR layout.")
	plotOut := flag.Bool("plot", false, "Write a PNG bar chart of the cluster-length histogram next to the output file.")
	cpuprofile := flag.Bool("cpuprofile", false, "write cpu profile")
	memprofile := flag.Bool("memprofile", false, "write memory profile")
	help := flag.Bool("h", false, "Print this help.")
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *memprofile && *cpuprofile {
		usage()
		log.Fatal("ERROR: -memprofile and -cpuprofile are mutually exclusive.")
	}
	if *memprofile {
		defer profile.Start(profile.MemProfile).Stop()
	}
	if *cpuprofile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	if *input == "" || *n1 == 0 {
		usage()
		log.Fatal("ERROR: must specify fasta (-i) and first-sample read count (-n).")
	}
	if *pval <= 0 || *pval > 1 {
		log.Fatal("ERROR: argument of -p must be in (0,1].")
	}
	if *maxGap < 0 || *maxSNVs < 0 {
		log.Fatal("ERROR: -g and -v must not be negative.")
	}
	if *maxGap > *kLeft {
		log.Fatal("ERROR: -g must not exceed the left context length (-L).")
	}
	if *mcovOut*2 > *maxClust {
		log.Fatal("ERROR: -M must be at least twice -m.")
	}

	egsaPath := *input + ".gesa"
	clustersPath := *input + ".clusters"
	if _, err := os.Stat(egsaPath); err != nil {
		log.Fatalf("ERROR: could not find EGSA file %q", egsaPath)
	}
	if _, err := os.Stat(clustersPath); err != nil {
		log.Fatalf("ERROR: could not find BWT clusters file %q", clustersPath)
	}

	outPath := *input
	if i := strings.LastIndex(outPath, ".fast"); i >= 0 {
		outPath = outPath[:i]
	}
	outPath += ".snp.fasta"

	fmt.Printf("This is clust2snp.\nInput index file: %s\nLeft-extending GSA ranges by %d bases.\nRight context length: at most %d bases.\nOutput events will be stored in %s\n", egsaPath, *kLeft, *kRight, outPath)

	clust2snp(*input, egsaPath, clustersPath, outPath, *n1, *kLeft, *kRight, *maxGap, *mcovOut, *maxClust, *pval, *bcr, *plotOut)
}

func clust2snp(fastaPath, egsaPath, clustersPath, outPath string, n1 uint64, kLeft, kRight, maxGap, mcovOut, maxClust int, pval float64, bcr, plotOut bool) {
	st, err := clusters.ScanStats(clustersPath, mcovOut, maxClust, pval)
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}
	st.Print(os.Stdout)

	if plotOut {
		writeLengthPlot(st, outPath+".clusters.png")
	}

	candidates := findEvents(egsaPath, clustersPath, n1, kLeft, kRight, mcovOut, st, bcr)
	fmt.Printf("Done. %d potential variants detected (some might be detected twice: on fw and rev strands)\n", len(candidates))

	fmt.Println("Extracting reads from fasta file ...")
	vs, err := variants.Materialize(candidates, fastaPath, kLeft, kRight)
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}

	fmt.Println("Computing edit distances and saving SNPs/indels to file ...")
	out := fileio.EasyCreate(outPath)
	n := variants.WriteVariants(out, vs, maxGap)
	err = out.Close()
	exception.PanicOnErr(err)
	fmt.Printf("Done. %d variants saved to %s\n", n, outPath)
}

// findEvents co-streams the EGSA and the cluster index, collecting candidate
// variants from every admissible cluster in EGSA order.
func findEvents(egsaPath, clustersPath string, n1 uint64, kLeft, kRight, mcovOut int, st clusters.Stats, bcr bool) []variants.Candidate {
	gsaFile, err := os.Open(egsaPath)
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}
	clustFile, err := os.Open(clustersPath)
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}

	cr := clusters.NewClusterReader(egsa.NewReader(gsaFile, bcr), clustFile, st.Lmin, st.Lmax)

	fmt.Println("Filtering relevant clusters ...")
	var candidates []variants.Candidate
	var lastPerc int64
	for {
		cluster, err := cr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("ERROR: %v", err)
		}
		candidates = append(candidates, variants.Find(cluster, n1, kLeft, kRight, mcovOut)...)

		if st.NClust > 0 {
			if perc := cr.Scanned() * 100 / st.NClust; perc >= lastPerc+10 {
				lastPerc = perc
				fmt.Printf(" %d%% done.\n", perc)
			}
		}
	}

	err = gsaFile.Close()
	exception.PanicOnErr(err)
	err = clustFile.Close()
	exception.PanicOnErr(err)
	return candidates
}
