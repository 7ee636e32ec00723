// 10 Oct 2026

// Package render writes out what a scan found: a numbered list of
// motifs with their positions, then a band of coloured cells, one per
// position along the sequence, coloured by motif.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/andrew-torda/repeatfinder/pkg/motif"
)

const (
	escBg    = "\u001b[48;5;" // ANSI 256 colour background
	escReset = "\u001b[0m"
)

// Listing writes the motifs in order of discovery, each followed by
// its positions, counting from 1.
func Listing(w io.Writer, res *motif.Result) error {
	var sb strings.Builder
	sb.WriteString("\n")
	for i, m := range res.Motifs {
		fmt.Fprintf(&sb, "%d  %s\n", i+1, m)
		for j, p := range res.Occur[m] {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Itoa(p + 1))
		}
		sb.WriteString("\n\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Band writes one three character cell per timeline entry. With
// colour, each cell has the rank as its background colour and the
// line finishes with a reset.
func Band(w io.Writer, cells []motif.Cell, colour bool) error {
	var sb strings.Builder
	sb.WriteString("\n")
	for _, c := range cells {
		r := strconv.Itoa(c.Rank)
		if colour {
			sb.WriteString(escBg + r + "m")
		}
		sb.WriteString(" " + r + " ")
	}
	if colour {
		sb.WriteString(escReset)
	}
	sb.WriteString("\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// Sequence writes everything for one sequence. scanErr is what came
// back from the scan. An empty region is reported and is not an error
// here. Anything else is passed back.
func Sequence(w io.Writer, name string, res *motif.Result, scanErr error, colour bool) error {
	if _, err := fmt.Fprintf(w, "\nStarting %s\n", name); err != nil {
		return err
	}
	if errors.Is(scanErr, motif.ErrEmptyRegion) {
		const msg = "This sequence (excluding gaps) is shorter than specified starting position.\n"
		_, err := io.WriteString(w, msg)
		return err
	}
	if scanErr != nil {
		return scanErr
	}
	if res.Empty() {
		_, err := fmt.Fprintf(w, "No repeats found for %s sequence.\n", name)
		return err
	}
	if err := Listing(w, res); err != nil {
		return err
	}
	return Band(w, res.Timeline(), colour)
}
