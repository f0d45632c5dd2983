// Package subset extracts a bounded, consistent subsample of related object
// tables keyed on a shared leading id column.
package subset

import (
	"fmt"
	"github.com/dasnellings/ssppTools/sspp"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"io"
	"strings"
)

// CollectIds returns the first num distinct object ids found in the leading
// column of input. The first line is always skipped as a header. The stop
// condition is checked after every line, header included, so num == 0 returns
// an empty set. If the file runs out first, every distinct id found is
// returned.
func CollectIds(input string, num int) map[string]bool {
	ids := make(map[string]bool)
	file := fileio.EasyOpen(input)
	var line string
	var done bool
	header := true
	for line, done = fileio.EasyNextLine(file); !done; line, done = fileio.EasyNextLine(file) {
		if header {
			header = false
		} else {
			ids[strings.Split(line, ",")[0]] = true
		}
		if len(ids) >= num {
			break
		}
	}
	err := file.Close()
	exception.PanicOnErr(err)
	return ids
}

// CopySubset copies every line of input whose leading field is present in ids
// to output, preserving order. The header line is always copied. output is
// created or truncated and written incrementally.
func CopySubset(input, output string, ids map[string]bool) {
	var err error
	in := fileio.EasyOpen(input)
	out := fileio.EasyCreate(output)
	var line string
	var done bool
	header := true
	for line, done = fileio.EasyNextLine(in); !done; line, done = fileio.EasyNextLine(in) {
		if header || ids[strings.Split(line, ",")[0]] {
			fmt.Fprintf(out, "%s\n", line)
		}
		header = false
	}
	err = in.Close()
	exception.PanicOnErr(err)
	err = out.Close()
	exception.PanicOnErr(err)
}

// Subsample runs the full pass over a table family: collect ids from the
// driver table, then filter every table down to the chosen objects. The
// collected ids are printed to idsOut, if non-nil, before any copying.
func Subsample(prefix string, num int, idsOut io.Writer) map[string]bool {
	ids := CollectIds(sspp.InputFile(prefix, sspp.DriverSuffix), num)
	if idsOut != nil {
		keys := maps.Keys(ids)
		slices.Sort(keys)
		fmt.Fprintln(idsOut, keys)
	}
	for _, suffix := range sspp.Suffixes {
		CopySubset(sspp.InputFile(prefix, suffix), sspp.SubsetFile(prefix, num, suffix), ids)
	}
	return ids
}
