package main

import (
	"flag"
	"fmt"
	"github.com/dasnellings/ssppTools/subset"
	"log"
	"os"
)

func usage() {
	fmt.Print(
		"subsampleObjects - Extract a consistent subsample of related object tables.\n" +
			"Selects the first num distinct object ids from the ephemeris table, then filters\n" +
			"each related table down to the rows belonging to those objects.\n\n" +
			"Reads {prefix}_eph.csv, {prefix}_orbit.csv, {prefix}_physical.csv and writes\n" +
			"{prefix}_{num}_eph.csv, {prefix}_{num}_orbit.csv, {prefix}_{num}_physical.csv.\n\n" +
			"Usage:\n" +
			"subsampleObjects [options]\n\n" +
			"Options:\n")
	flag.PrintDefaults()
}

func main() {
	inputPrefix := flag.String("input_prefix", "mba/mba_sample", "Path prefix shared by the input tables.")
	num := flag.Int("num", 100, "Number of distinct object ids to keep.")
	flag.Parse()
	flag.Usage = usage

	if *num < 0 {
		usage()
		log.Fatalln("ERROR: -num must be >= 0")
	}

	subset.Subsample(*inputPrefix, *num, os.Stdout)
}
