// 6 Oct 2026

// Package motif finds repeated substrings in a single sequence.
//
// The search is a greedy probe rather than an exhaustive repeat finder.
// Take the first half of what is left of the sequence and look for it
// again. If it is there, it is a motif and we jump over it. If not, try
// a candidate one shorter, until we reach the minimum length. Then step
// forward one residue and start again.
package motif

import (
	"errors"
	"strings"

	"github.com/andrew-torda/repeatfinder/pkg/seq/common"
)

// ErrEmptyRegion says there is nothing left of the sequence at or after
// the start position once gaps are removed. It is not fatal. The caller
// reports it and moves on to the next sequence.
var ErrEmptyRegion = errors.New("no residues at or after the start position")

// Options controls a scan.
type Options struct {
	Start       int    // first alignment column to look at, counting from 0
	MinLen      int    // motifs must be longer than this
	Policy      Policy // how to treat a motif related to one already found
	AlignCoords bool   // report alignment columns instead of residue numbers
}

// scanner holds the gap free region being searched and what we need
// to turn offsets in it back into positions.
type scanner struct {
	opts      *Options
	region    string // residues from Start on, gaps removed
	cols      []int  // cols[i] is the alignment column of region[i]
	gapOffset int    // number of gaps before Start
}

// strip removes gaps. Gaps before the start are counted, gaps after
// it are simply dropped.
func strip(s []byte, start int) (sc scanner) {
	b := make([]byte, 0, len(s))
	for i, c := range s {
		if c == common.GapChar {
			if i < start {
				sc.gapOffset++
			}
			continue
		}
		if i >= start {
			b = append(b, c)
			sc.cols = append(sc.cols, i)
		}
	}
	sc.region = string(b)
	return sc
}

// position turns an offset into the region into a reported position.
// By default this is base - gapOffset + i, so residues are numbered as
// if the gaps before the start were not there and the gaps after it
// never existed. With AlignCoords we give the alignment column.
func (sc *scanner) position(off int) int {
	if sc.opts.AlignCoords {
		return sc.cols[off]
	}
	return sc.opts.Start - sc.gapOffset + off
}

// Scan looks for motifs in one sequence, which may contain gaps.
// It always returns a usable Result. If there is nothing to scan the
// Result is empty and the error is ErrEmptyRegion.
func Scan(s []byte, opts *Options) (*Result, error) {
	res := newResult(s, opts)
	if opts.Start < 0 || opts.MinLen < 0 {
		return res, errors.New("start and minimum length must not be negative")
	}
	sc := strip(s, opts.Start)
	sc.opts = opts
	if len(sc.region) == 0 {
		return res, ErrEmptyRegion
	}

	minLen := opts.MinLen
	w := sc.region // what is left to look at
	off := 0       // where w starts in region
	for len(w) > minLen && len(w)/2 < len(w)-minLen {
		for half := len(w) / 2; half > minLen; {
			cand := w[:half]
			found := findIter(w, cand)
			if len(found) < 2 { // not a repeat, try something shorter
				half--
				continue
			}
			if Accept(cand, res.Motifs, opts.Policy) {
				posn := make([]int, len(found))
				for i, f := range found {
					posn[i] = sc.position(off + f)
				}
				res.add(cand, posn)
			}
			w = w[half:] // Jump over the repeat, whether we kept it or not
			off += half
			half = len(w) / 2
		}
		w = w[1:]
		off++
	}
	return res, nil
}

// findIter returns every offset at which the shorter string occurs in
// the longer one. Overlapping hits are all reported. If the candidate
// is longer than the haystack the roles are swapped.
func findIter(hay, cand string) []int {
	if len(cand) > len(hay) {
		hay, cand = cand, hay
	}
	if len(cand) == 0 {
		return nil
	}
	var posn []int
	for i := 0; i <= len(hay)-len(cand); {
		j := strings.Index(hay[i:], cand)
		if j == -1 {
			break
		}
		posn = append(posn, i+j)
		i += j + 1
	}
	return posn
}
