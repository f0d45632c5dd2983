package tally

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestCounts(t *testing.T) {
	counts := Counts("testdata/mba_sample_eph.csv")
	if len(counts) != 3 || counts["A"] != 2 || counts["B"] != 1 || counts["C"] != 1 {
		t.Error("problem with per-object counts", counts)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(Counts("testdata/mba_sample_eph.csv"))
	if s.Rows != 4 || s.Objects != 3 || s.Min != 1 || s.Max != 2 {
		t.Error("problem with summary counts", s)
	}
	if math.Abs(s.Mean-4.0/3.0) > 1e-12 {
		t.Error("problem with summary mean", s.Mean)
	}
	if s.Median != 1 {
		t.Error("problem with summary median", s.Median)
	}
	if math.Abs(s.StdDev-math.Sqrt(1.0/3.0)) > 1e-12 {
		t.Error("problem with summary stdev", s.StdDev)
	}

	var empty Summary
	if Summarize(map[string]int{}) != empty {
		t.Error("problem with summary of empty table")
	}
}

func TestHistogram(t *testing.T) {
	counts := Counts("testdata/mba_sample_eph.csv")
	hist := Histogram(counts, 2)
	if len(hist) != 2 || hist[0] != 2 || hist[1] != 1 {
		t.Error("problem with histogram bins", hist)
	}

	var total float64
	for i := range hist {
		total += hist[i]
	}
	if total != float64(len(counts)) {
		t.Error("problem with histogram total", total)
	}

	if Histogram(map[string]int{}, 2) != nil {
		t.Error("problem with histogram of empty table")
	}
}

func TestReport(t *testing.T) {
	var out bytes.Buffer
	Report(&out, "testdata/mba_sample_eph.csv", 2, false, "")
	if !strings.Contains(out.String(), "objects: 3") || !strings.Contains(out.String(), "rows: 4") {
		t.Error("problem with report output", out.String())
	}
	if !strings.Contains(out.String(), "id column: id") {
		t.Error("problem with report id column", out.String())
	}
}
