// 13 Oct 2026

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/repeatfinder/pkg/repeatfinder"
	. "github.com/andrew-torda/repeatfinder/pkg/seq/common"
)

const defaultMinLen = 10

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "-a alignment [options]")
	flag.PrintDefaults()
}

func main() {
	var flags repeatfinder.CmdFlag
	var outfile string
	var help bool

	// Short and long names share a variable.
	flag.StringVar(&flags.Alignment, "a", "", "alignment file, - for stdin")
	flag.StringVar(&flags.Alignment, "alignment", "", "same as -a")
	flag.UintVar(&flags.MinLen, "l", defaultMinLen, "motifs must be longer than this")
	flag.UintVar(&flags.MinLen, "length", defaultMinLen, "same as -l")
	flag.UintVar(&flags.Start, "s", 0, "start at this alignment column (from 0)")
	flag.UintVar(&flags.Start, "start", 0, "same as -s")
	flag.BoolVar(&flags.Unique, "u", false, "skip motifs inside (or containing) ones already found")
	flag.BoolVar(&flags.Unique, "unique", false, "same as -u")
	flag.BoolVar(&help, "h", false, "print this help")
	flag.BoolVar(&help, "help", false, "same as -h")
	flag.BoolVar(&flags.AlignCoords, "g", false, "positions are alignment columns")
	flag.StringVar(&outfile, "o", "", "output file name, default stdout")
	flag.StringVar(&flags.Coverage, "c", "", "write per-site coverage to this csv file")
	flag.StringVar(&flags.Plot, "p", "", "write the bands to this png file")
	flag.StringVar(&flags.Colour, "colour", "always", "always, auto or never")
	flag.IntVar(&flags.Jobs, "j", 1, "number of sequences to scan at once")
	flag.BoolVar(&flags.NoMmap, "nommap", false, "do not map the input file")
	flag.IntVar(&flags.Vbsty, "v", 0, "verbosity")
	flag.BoolVar(&flags.Time, "t", false, "print out timing information")
	flag.Usage = usage
	if len(os.Args) < 2 {
		usage()
		os.Exit(ExitSuccess)
	}
	flag.Parse()
	if help {
		usage()
		os.Exit(ExitSuccess)
	}
	if flags.Alignment == "" {
		fmt.Fprintln(os.Stderr, "No alignment file given")
		usage()
		os.Exit(ExitUsageError)
	}
	if flag.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "Unexpected arguments:", flag.Args())
		usage()
		os.Exit(ExitUsageError)
	}

	if err := repeatfinder.Mymain(&flags, outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
