// Package sspp holds shared conventions for families of solar system object
// tables produced by survey post-processing. A family is a set of CSV tables
// sharing a path prefix, one per suffix, all keyed on an object id in the
// leading column.
package sspp

import (
	"fmt"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"log"
	"strings"
)

// DriverSuffix names the table used to choose which object ids to retain.
const DriverSuffix = "eph"

// Suffixes lists every table in a family, driver first.
var Suffixes = []string{"eph", "orbit", "physical"}

// InputFile returns the path of the table with the given suffix.
func InputFile(prefix, suffix string) string {
	return fmt.Sprintf("%s_%s.csv", prefix, suffix)
}

// SubsetFile returns the path of the subsampled table with the given suffix
// for a subsample of num objects.
func SubsetFile(prefix string, num int, suffix string) string {
	return fmt.Sprintf("%s_%d_%s.csv", prefix, num, suffix)
}

// Header returns the column names from the first line of a table.
func Header(filename string) []string {
	file := fileio.EasyOpen(filename)
	line, done := fileio.EasyNextLine(file)
	err := file.Close()
	exception.PanicOnErr(err)
	if done {
		log.Fatalf("ERROR: %s is empty\n", filename)
	}
	return strings.Split(line, ",")
}
