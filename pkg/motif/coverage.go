// 9 Oct 2026

package motif

import (
	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/repeatfinder/pkg/seq/common"
)

// Coverage says which sites are covered by which motif.
// cov.Mat[i][j] is 1 if motif i (in order of discovery) covers site j.
// The last row, cov.Mat[len(Motifs)], counts the motifs covering
// each site. Sites are numbered the same way as positions.
// With no motifs, the matrix has only the row of counts.
func Coverage(res *Result) *matrix.FMatrix2d {
	nsite := res.NSite()
	nm := len(res.Motifs)
	cov := matrix.NewFMatrix2d(nm+1, nsite)
	total := cov.Mat[nm]
	for i, m := range res.Motifs {
		row := cov.Mat[i]
		for _, p := range res.Occur[m] {
			for _, site := range res.sites(p, len(m), nsite) {
				if row[site] == 0 {
					row[site] = 1
					total[site]++
				}
			}
		}
	}
	return cov
}

// sites lists the sites covered by a motif of length n starting at
// position p. nsite is res.NSite(). In alignment columns we have to
// step over gaps.
func (res *Result) sites(p, n, nsite int) []int {
	r := make([]int, 0, n)
	if !res.opts.AlignCoords {
		for i := p; i < p+n && i < nsite; i++ {
			r = append(r, i)
		}
		return r
	}
	for i := p; i < len(res.raw) && len(r) < n; i++ {
		if res.raw[i] != common.GapChar {
			r = append(r, i)
		}
	}
	return r
}
