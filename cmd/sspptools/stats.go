package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/ssppTools/tally"
	"github.com/vertgenlab/gonomics/exception"
	"os"
)

func statsUsage(statsFlags *flag.FlagSet) {
	fmt.Print(
		"stats - Summarize how many rows each object contributes to a table\n\n" +
			"Usage:\n" +
			"  sspptools stats [options] -i input.csv\n\n" +
			"Options:\n")
	statsFlags.PrintDefaults()
}

func runStats(args []string) {
	var err error
	statsFlags := flag.NewFlagSet("stats", flag.ExitOnError)

	input := statsFlags.String("i", "", "Input CSV table keyed on object id in the first column.")
	bins := statsFlags.Int("bins", 20, "Number of histogram bins.")
	graph := statsFlags.Bool("graph", true, "Print a terminal histogram of rows per object.")
	plotFile := statsFlags.String("plot", "", "Output PNG file with a histogram of rows per object.")

	err = statsFlags.Parse(args)
	exception.PanicOnErr(err)
	statsFlags.Usage = func() { statsUsage(statsFlags) }

	if *input == "" {
		statsFlags.Usage()
		errExit("\nERROR: must input a CSV table with -i")
	}

	tally.Report(os.Stdout, *input, *bins, *graph, *plotFile)
}
