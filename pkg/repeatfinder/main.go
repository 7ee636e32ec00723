// 13 Oct 2026

// Package repeatfinder reads an alignment, looks for repeated motifs in
// each sequence and writes out what it found. The work is in
// pkg/motif and pkg/render. This is the plumbing.
package repeatfinder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/andrew-torda/repeatfinder/pkg/motif"
	"github.com/andrew-torda/repeatfinder/pkg/render"
	"github.com/andrew-torda/repeatfinder/pkg/seq"
)

// CmdFlag holds everything from the command line, except the output
// file name.
type CmdFlag struct {
	Alignment   string // file with the sequences, "-" for stdin
	MinLen      uint   // motifs must be longer than this
	Start       uint   // first alignment column to look at
	Unique      bool   // drop motifs related to ones already found
	AlignCoords bool   // report positions as alignment columns
	Coverage    string // write per-site coverage here
	Plot        string // write a png of the bands here
	Colour      string // always, auto or never
	Jobs        int    // sequences scanned at once
	NoMmap      bool   // read files without mapping them
	Vbsty       int
	Time        bool // do we want to print out run time ?
}

// scanned is one sequence and what came back from scanning it.
type scanned struct {
	name string
	res  *motif.Result
	err  error
}

// warnExists prints a warning if we are about to trash a file.
func warnExists(fname string) {
	if _, err := os.Stat(fname); err == nil {
		fmt.Fprintln(os.Stderr, "Warning, trashing old version of", fname)
	}
}

// scanAll scans each sequence. Up to jobs run at once, but the results
// come back in the order of the sequences. An empty region is kept with
// its sequence. Anything else stops everything.
func scanAll(seqgrp *seq.SeqGrp, opts *motif.Options, jobs int) ([]scanned, error) {
	if jobs < 1 {
		jobs = 1
	}
	seqs := seqgrp.SeqSlc()
	ret := make([]scanned, len(seqs))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i := range seqs {
		i := i // per-iteration copy (go 1.21 loop semantics)
		g.Go(func() error {
			s := seqs[i]
			res, err := motif.Scan(s.GetSeq(), opts)
			if err != nil && !errors.Is(err, motif.ErrEmptyRegion) {
				return fmt.Errorf("sequence %s: %w", s.GetCmmt(), err)
			}
			ret[i] = scanned{name: s.GetCmmt(), res: res, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ret, nil
}

// create opens a file for writing, warning if it was already there.
func create(fname, what string) (*os.File, error) {
	warnExists(fname)
	fp, err := os.Create(fname)
	if err != nil {
		return nil, fmt.Errorf("%s file %v: %w", what, fname, err)
	}
	return fp, nil
}

// writeCoverage writes a csv block per sequence that has motifs.
func writeCoverage(fname string, all []scanned) (err error) {
	fp, err := create(fname, "coverage")
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fp.Close(); err == nil {
			err = cerr
		}
	}()
	for _, sc := range all {
		if sc.err != nil || sc.res.Empty() {
			continue
		}
		if err = wrtCoverage(fp, sc.name, sc.res); err != nil {
			return err
		}
	}
	return nil
}

// wrtCoverage does one sequence. Sites are numbered from 1.
func wrtCoverage(w io.Writer, name string, res *motif.Result) error {
	cov := motif.Coverage(res)
	nm := len(res.Motifs)
	fmt.Fprintf(w, "# %s\n\"site\"", name)
	for i := 1; i <= nm; i++ {
		fmt.Fprintf(w, ",\"motif %d\"", i)
	}
	if _, err := fmt.Fprintln(w, ",\"covered\""); err != nil {
		return err
	}
	for site := range cov.Mat[nm] {
		fmt.Fprintf(w, "%d", site+1)
		for i := 0; i <= nm; i++ {
			fmt.Fprintf(w, ",%d", int(cov.Mat[i][site]))
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// writePlot draws a band for every sequence with motifs.
func writePlot(fname string, all []scanned) (err error) {
	var rows []render.PlotRow
	for _, sc := range all {
		if sc.err == nil && !sc.res.Empty() {
			rows = append(rows, render.PlotRow{Name: sc.name, Cells: sc.res.Timeline()})
		}
	}
	fp, err := create(fname, "plot")
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fp.Close(); err == nil {
			err = cerr
		}
	}()
	return render.Plot(fp, rows)
}

// Mymain reads the alignment and writes the repeats of each sequence to
// outfile, standard output if outfile is "" or "-".
func Mymain(flags *CmdFlag, outfile string) (err error) {
	if flags.Time {
		startTime := time.Now()
		end := func() {
			fmt.Fprintln(os.Stderr, "finished after", time.Since(startTime).Milliseconds(), "ms")
		}
		defer end()
	}
	mode, err := render.ParseColour(flags.Colour)
	if err != nil {
		return err
	}
	fp := os.Stdout
	if outfile != "" && outfile != "-" {
		if fp, err = create(outfile, "output"); err != nil {
			return err
		}
		defer func() {
			if cerr := fp.Close(); err == nil {
				err = cerr
			}
		}()
	}
	colour := render.UseColour(mode, fp)

	s_opts := &seq.Options{Vbsty: flags.Vbsty, NoMmap: flags.NoMmap}
	seqgrp, err := seq.Readfile(flags.Alignment, s_opts)
	if err != nil {
		return fmt.Errorf("Fail reading sequences: %w", err)
	}
	if err := seqgrp.Upper(); err != nil {
		return fmt.Errorf("Fail reading sequences: %w", err)
	}
	if flags.Vbsty > 0 {
		fmt.Fprintln(os.Stderr, "read", seqgrp.GetNSeq(), "sequences from", flags.Alignment)
	}

	policy := motif.Exact
	if flags.Unique {
		policy = motif.Unique
	}
	opts := &motif.Options{Start: int(flags.Start), MinLen: int(flags.MinLen),
		Policy: policy, AlignCoords: flags.AlignCoords}
	all, err := scanAll(seqgrp, opts, flags.Jobs)
	if err != nil {
		return err
	}
	for _, sc := range all {
		if err := render.Sequence(fp, sc.name, sc.res, sc.err, colour); err != nil {
			return err
		}
	}
	if flags.Coverage != "" {
		if err := writeCoverage(flags.Coverage, all); err != nil {
			return err
		}
	}
	if flags.Plot != "" {
		if err := writePlot(flags.Plot, all); err != nil {
			return err
		}
	}
	_, err = io.WriteString(fp, "\nFinished!\n")
	return err
}
