// 5 Oct 2026
// Package white removes white space from sequence text. Sequence lines
// in alignment files can carry blanks, tabs and carriage returns which
// are not part of the sequence.

package white

import (
	"bytes"
)

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// isWhite is true for the ascii white space characters.
func isWhite(c byte) bool { return asciiSpace[c] }

// Remove acts on a byte slice, in place, and removes all the white
// space. The length is adjusted, the capacity is unchanged.
func Remove(sIn *[]byte) {
	s := *sIn
	n := 0
	for _, c := range s {
		if !isWhite(c) {
			s[n] = c
			n++
		}
	}
	*sIn = s[:n]
}

// RemoveByFields does the same job as Remove, but allocates. It is
// only here so the benchmarks have something to compare against.
func RemoveByFields(sIn *[]byte) {
	f := bytes.Fields(*sIn)
	*sIn = bytes.Join(f, nil)
}
