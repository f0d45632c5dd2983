package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/ssppTools/tally"
	"log"
	"os"
)

func usage() {
	fmt.Print(
		"objectStats - Summarize how many rows each object contributes to a table.\n\n" +
			"Usage:\n" +
			"objectStats [options] -i input.csv\n\n" +
			"Options:\n")
	flag.PrintDefaults()
}

func main() {
	input := flag.String("i", "", "Input CSV table keyed on object id in the first column.")
	bins := flag.Int("bins", 20, "Number of histogram bins.")
	graph := flag.Bool("graph", true, "Print a terminal histogram of rows per object.")
	plotFile := flag.String("plot", "", "Output PNG file with a histogram of rows per object.")
	flag.Parse()
	flag.Usage = usage

	if *input == "" {
		usage()
		log.Fatalln("ERROR: must input a CSV table with -i")
	}

	tally.Report(os.Stdout, *input, *bins, *graph, *plotFile)
}
