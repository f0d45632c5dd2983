package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/ssppTools/subset"
	"github.com/vertgenlab/gonomics/exception"
	"os"
)

func subsampleUsage(subsampleFlags *flag.FlagSet) {
	fmt.Print(
		"subsample - Extract a consistent subsample of related object tables\n\n" +
			"Usage:\n" +
			"  sspptools subsample [options]\n\n" +
			"Options:\n")
	subsampleFlags.PrintDefaults()
}

func runSubsample(args []string) {
	var err error
	subsampleFlags := flag.NewFlagSet("subsample", flag.ExitOnError)

	inputPrefix := subsampleFlags.String("input_prefix", "mba/mba_sample", "Path prefix shared by the input tables.")
	num := subsampleFlags.Int("num", 100, "Number of distinct object ids to keep.")

	err = subsampleFlags.Parse(args)
	exception.PanicOnErr(err)
	subsampleFlags.Usage = func() { subsampleUsage(subsampleFlags) }

	if *num < 0 {
		subsampleFlags.Usage()
		errExit("\nERROR: -num must be >= 0")
	}

	subset.Subsample(*inputPrefix, *num, os.Stdout)
}
