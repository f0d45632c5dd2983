// Package tally computes rows-per-object statistics for a single object table.
package tally

import (
	"fmt"
	"github.com/dasnellings/ssppTools/sspp"
	"github.com/guptarohit/asciigraph"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"io"
	"strings"
)

// Summary holds rows-per-object statistics for one table.
type Summary struct {
	Rows    int
	Objects int
	Mean    float64
	Median  float64
	StdDev  float64
	Min     int
	Max     int
}

// Counts streams a table and tallies data rows per object id. The first line
// is skipped as a header.
func Counts(input string) map[string]int {
	counts := make(map[string]int)
	file := fileio.EasyOpen(input)
	var line string
	var done bool
	header := true
	for line, done = fileio.EasyNextLine(file); !done; line, done = fileio.EasyNextLine(file) {
		if header {
			header = false
			continue
		}
		counts[strings.Split(line, ",")[0]]++
	}
	err := file.Close()
	exception.PanicOnErr(err)
	return counts
}

// Values returns the per-object row counts in ascending order.
func Values(counts map[string]int) []float64 {
	vals := make([]float64, 0, len(counts))
	for _, n := range counts {
		vals = append(vals, float64(n))
	}
	slices.Sort(vals)
	return vals
}

// Summarize computes summary statistics over per-object row counts.
func Summarize(counts map[string]int) Summary {
	var s Summary
	if len(counts) == 0 {
		return s
	}
	vals := Values(counts)
	s.Objects = len(vals)
	for i := range vals {
		s.Rows += int(vals[i])
	}
	s.Mean = stat.Mean(vals, nil)
	s.Median = stat.Quantile(0.5, stat.Empirical, vals, nil)
	s.StdDev = stat.StdDev(vals, nil)
	s.Min = int(vals[0])
	s.Max = int(vals[len(vals)-1])
	return s
}

// Histogram bins per-object row counts into bins equal-width frequency bins
// spanning [min, max] rows per object.
func Histogram(counts map[string]int, bins int) []float64 {
	vals := Values(counts)
	if len(vals) == 0 || bins < 1 {
		return nil
	}
	min, max := vals[0], vals[len(vals)-1]
	width := (max - min) / float64(bins)
	if width == 0 {
		width = 1
	}
	hist := make([]float64, bins)
	var bin int
	for i := range vals {
		bin = int((vals[i] - min) / width)
		if bin >= bins {
			bin = bins - 1
		}
		hist[bin]++
	}
	return hist
}

// Report renders rows-per-object statistics for a table to out. graph prints
// a terminal histogram, and a non-empty plotFile saves a png histogram.
func Report(out io.Writer, input string, bins int, graph bool, plotFile string) {
	counts := Counts(input)
	s := Summarize(counts)
	fmt.Fprintf(out, "table: %s\n", input)
	fmt.Fprintf(out, "id column: %s\n", sspp.Header(input)[0])
	fmt.Fprintf(out, "rows: %d\n", s.Rows)
	fmt.Fprintf(out, "objects: %d\n", s.Objects)
	fmt.Fprintf(out, "rows per object: mean %.2f\tmedian %.1f\tstdev %.2f\tmin %d\tmax %d\n",
		s.Mean, s.Median, s.StdDev, s.Min, s.Max)
	if graph && s.Objects > 0 {
		fmt.Fprintln(out, asciigraph.Plot(Histogram(counts, bins),
			asciigraph.Height(10), asciigraph.Precision(0), asciigraph.Caption("objects by rows per object")))
	}
	if plotFile != "" {
		writePlot(plotFile, Values(counts), bins)
	}
}

func writePlot(filename string, vals []float64, bins int) {
	p := plot.New()
	p.Title.Text = "Rows per object"
	p.X.Label.Text = "rows"
	p.Y.Label.Text = "objects"
	h, err := plotter.NewHist(plotter.Values(vals), bins)
	exception.PanicOnErr(err)
	p.Add(h)
	err = p.Save(6*vg.Inch, 4*vg.Inch, filename)
	exception.PanicOnErr(err)
}
