package main

import (
	"github.com/dasnellings/clust2snp/clusters"
	"github.com/vertgenlab/gonomics/exception"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// writeLengthPlot saves the cluster-length histogram as a PNG bar chart.
func writeLengthPlot(st clusters.Stats, path string) {
	vals := make(plotter.Values, st.MaxLen+1)
	for i := range vals {
		vals[i] = float64(st.Hist[i])
	}

	p := plot.New()
	p.Title.Text = "Cluster length distribution"
	p.X.Label.Text = "Cluster length"
	p.Y.Label.Text = "Clusters"

	bars, err := plotter.NewBarChart(vals, vg.Points(2))
	exception.PanicOnErr(err)
	p.Add(bars)

	err = p.Save(25*vg.Centimeter, 10*vg.Centimeter, path)
	exception.PanicOnErr(err)
}
