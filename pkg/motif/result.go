// 7 Oct 2026

package motif

import (
	"sort"

	"github.com/andrew-torda/repeatfinder/pkg/seq/common"
)

// Result is what comes back from scanning one sequence.
// Motifs are in the order they were found. Occur maps each motif to
// its zero-based positions, again in the order they were found.
type Result struct {
	Motifs []string
	Occur  map[string][]int
	raw    []byte // the sequence as it was given, gaps and all
	opts   Options
}

// Cell is one entry in the timeline. Rank ties it back to a motif.
type Cell struct {
	Pos  int
	Rank int
}

func newResult(s []byte, opts *Options) *Result {
	return &Result{Occur: make(map[string][]int), raw: s, opts: *opts}
}

func (res *Result) add(m string, posn []int) {
	res.Motifs = append(res.Motifs, m)
	res.Occur[m] = posn
}

// Empty is true if no repeats were found.
func (res *Result) Empty() bool { return len(res.Motifs) == 0 }

// Rank gives the rank of the motif found in place i (from 0).
// Motifs are painted in reverse order of discovery and the motif at
// place j of the reversed list gets len(Motifs) - j, which makes the
// rank the motif's number in the listing.
func (res *Result) Rank(i int) int {
	n := len(res.Motifs)
	j := n - 1 - i // place in the reversed list
	return n - j
}

// Timeline puts every occurrence of every motif in order along the
// sequence. A position shared by several motifs appears once and the
// motif found first wins, since it is painted last.
func (res *Result) Timeline() []Cell {
	rank := make(map[int]int)
	for i := len(res.Motifs) - 1; i >= 0; i-- {
		r := res.Rank(i)
		for _, p := range res.Occur[res.Motifs[i]] {
			rank[p] = r
		}
	}
	cells := make([]Cell, 0, len(rank))
	for p, r := range rank {
		cells = append(cells, Cell{Pos: p, Rank: r})
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].Pos < cells[j].Pos })
	return cells
}

// NSite is the size of the coordinate space positions live in. For
// alignment columns it is the length of the aligned sequence. Otherwise
// it is the number of residues.
func (res *Result) NSite() int {
	if res.opts.AlignCoords {
		return len(res.raw)
	}
	n := 0
	for _, c := range res.raw {
		if c != common.GapChar {
			n++
		}
	}
	return n
}
