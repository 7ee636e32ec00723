// 6 Oct 2026

package motif

import (
	"fmt"
	"strings"
)

// Policy says how a new candidate is checked against the motifs that
// have already been found.
type Policy byte

const (
	Exact  Policy = iota // reject a candidate identical to a known motif
	Unique               // reject a candidate containing or inside a known motif
)

func (p Policy) String() string {
	switch p {
	case Exact:
		return "plain"
	case Unique:
		return "unique"
	}
	return fmt.Sprintf("Policy(%d)", byte(p))
}

// related is true if the shorter of a and b is a substring of the
// longer. Identical strings are related.
func related(a, b string) bool {
	if len(a) < len(b) {
		a, b = b, a
	}
	return strings.Contains(a, b)
}

// Accept decides if cand should be kept, given the motifs found so far
// in the order they were found. Nothing is ever retracted, so the first
// motif of a family wins.
func Accept(cand string, known []string, p Policy) bool {
	switch p {
	case Unique:
		for _, m := range known {
			if related(m, cand) {
				return false
			}
		}
	default:
		for _, m := range known {
			if m == cand {
				return false
			}
		}
	}
	return true
}
