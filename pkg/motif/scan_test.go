// 8 Oct 2026

package motif_test

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/andrew-torda/repeatfinder/pkg/motif"
)

type scanWant struct {
	Motifs []string
	Occur  map[string][]int
}

var scanTests = []struct {
	name string
	s    string
	opts Options
	want scanWant
}{
	{"halves", "ACGTACGTAA", Options{MinLen: 2},
		scanWant{[]string{"ACGTA"}, map[string][]int{"ACGTA": {0, 4}}}},
	{"homopolymer", "AAAAAAAAAA", Options{MinLen: 2},
		scanWant{[]string{"AAAAA"}, map[string][]int{"AAAAA": {0, 1, 2, 3, 4, 5}}}},
	{"gaps", "AC-GT-ACGT", Options{MinLen: 2},
		scanWant{[]string{"ACGT"}, map[string][]int{"ACGT": {0, 4}}}},
	{"gaps as columns", "AC-GT-ACGT", Options{MinLen: 2, AlignCoords: true},
		scanWant{[]string{"ACGT"}, map[string][]int{"ACGT": {0, 6}}}},
	{"start", "ACGTACGTAA", Options{MinLen: 2, Start: 2},
		scanWant{[]string{"GTA"}, map[string][]int{"GTA": {2, 6}}}},
	{"leading gaps", "--AC-GTACGTTTACGTACGTGGACGTCCACGT", Options{MinLen: 3, Start: 3},
		scanWant{[]string{"CGTACGT", "TACGT", "ACGT"},
			map[string][]int{"CGTACGT": {1, 11}, "TACGT": {9, 13}, "ACGT": {14, 20, 26}}}},
	{"leading gaps as columns", "--AC-GTACGTTTACGTACGTGGACGTCCACGT",
		Options{MinLen: 3, Start: 3, AlignCoords: true},
		scanWant{[]string{"CGTACGT", "TACGT", "ACGT"},
			map[string][]int{"CGTACGT": {3, 14}, "TACGT": {12, 16}, "ACGT": {17, 23, 29}}}},
	{"plain family", "ACGTACGTTTACGTACGTGGACGTCCACGT", Options{MinLen: 3},
		scanWant{[]string{"ACGTACGT", "TACGT", "ACGT"},
			map[string][]int{"ACGTACGT": {0, 10}, "TACGT": {9, 13}, "ACGT": {14, 20, 26}}}},
	{"unique family", "ACGTACGTTTACGTACGTGGACGTCCACGT", Options{MinLen: 3, Policy: Unique},
		scanWant{[]string{"ACGTACGT"}, map[string][]int{"ACGTACGT": {0, 10}}}},
	{"unique keeps unrelated", "ACGTACGTTACGTACGTAACGTTACGT", Options{MinLen: 3, Policy: Unique},
		scanWant{[]string{"ACGTACGT", "TACGTA"},
			map[string][]int{"ACGTACGT": {0, 9}, "TACGTA": {8, 12}}}},
	{"min length zero", "AAAA", Options{MinLen: 0},
		scanWant{[]string{"AA", "A"}, map[string][]int{"AA": {0, 1, 2}, "A": {2, 3}}}},
	{"min length zero unique", "ABCABCABC", Options{MinLen: 0, Policy: Unique},
		scanWant{[]string{"ABCA"}, map[string][]int{"ABCA": {0, 3}}}},
	{"no repeats", "ACGTTGCA", Options{MinLen: 2},
		scanWant{nil, map[string][]int{}}},
	{"too short", "ACGTACGT", Options{MinLen: 10},
		scanWant{nil, map[string][]int{}}},
}

func TestScan(t *testing.T) {
	for _, tt := range scanTests {
		opts := tt.opts
		res, err := Scan([]byte(tt.s), &opts)
		if err != nil {
			t.Fatal(tt.name, err)
		}
		got := scanWant{res.Motifs, res.Occur}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tt.name, diff)
		}
		if res.Empty() != (len(tt.want.Motifs) == 0) {
			t.Error(tt.name, "Empty() is wrong")
		}
	}
}

// TestEmptyRegion starts beyond the last residue.
func TestEmptyRegion(t *testing.T) {
	for _, s := range []string{"ACGTAC", "ACGTAC----", "", "-----"} {
		res, err := Scan([]byte(s), &Options{MinLen: 2, Start: 6})
		if !errors.Is(err, ErrEmptyRegion) {
			t.Fatalf("\"%s\" want ErrEmptyRegion, got %v", s, err)
		}
		if res == nil || !res.Empty() {
			t.Fatal("want an empty result for", s)
		}
	}
}

func TestNegative(t *testing.T) {
	if _, err := Scan([]byte("ACGT"), &Options{MinLen: -1}); err == nil {
		t.Fatal("negative length not caught")
	}
	if _, err := Scan([]byte("ACGT"), &Options{Start: -1}); err == nil {
		t.Fatal("negative start not caught")
	}
}

func TestFindIter(t *testing.T) {
	tests := []struct {
		hay, cand string
		want      []int
	}{
		{"AAAA", "AA", []int{0, 1, 2}},
		{"ACGTACGT", "ACGT", []int{0, 4}},
		{"ACGT", "ACGTACGT", []int{0, 4}},
		{"ACGT", "ACGT", []int{0}},
		{"ACGT", "TT", nil},
		{"ACGT", "", nil},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, FindIter(tt.hay, tt.cand)); diff != "" {
			t.Errorf("%s in %s: %s", tt.cand, tt.hay, diff)
		}
	}
}

// stripFrom removes gaps from s, starting at column i.
func stripFrom(s string, i int) string {
	return strings.ReplaceAll(s[i:], "-", "")
}

// randSeq makes a sequence from a small alphabet so there are
// plenty of repeats. Gaps are sprinkled in.
func randSeq(rnd *rand.Rand, n int) string {
	const letters = "ACGTACGTACGT-"
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rnd.Intn(len(letters))]
	}
	return string(b)
}

// TestInvariants scans random sequences and checks what must always
// be true of the result.
func TestInvariants(t *testing.T) {
	rnd := rand.New(rand.NewSource(1637))
	for n := 0; n < 200; n++ {
		s := randSeq(rnd, 5+rnd.Intn(120))
		for _, opts := range []Options{
			{MinLen: 0}, {MinLen: 2}, {MinLen: 3, Start: 4},
			{MinLen: 4, Policy: Unique}, {MinLen: 1, Start: 7, Policy: Unique},
			{MinLen: 2, Start: 5, AlignCoords: true},
			{MinLen: 3, Start: 2, AlignCoords: true, Policy: Unique},
		} {
			res, err := Scan([]byte(s), &opts)
			if errors.Is(err, ErrEmptyRegion) {
				continue
			}
			if err != nil {
				t.Fatal(err)
			}
			again, _ := Scan([]byte(s), &opts)
			if diff := cmp.Diff(res.Motifs, again.Motifs); diff != "" {
				t.Fatal("not deterministic", s, diff)
			}
			if diff := cmp.Diff(res.Occur, again.Occur); diff != "" {
				t.Fatal("not deterministic", s, diff)
			}
			checkInvariants(t, s, &opts, res)
		}
	}
}

func checkInvariants(t *testing.T, s string, opts *Options, res *Result) {
	t.Helper()
	nogap := stripFrom(s, 0)
	gapsBefore := strings.Count(s[:min(opts.Start, len(s))], "-")
	if len(res.Occur) != len(res.Motifs) {
		t.Fatal(s, "motifs and occurrences do not match up")
	}
	for i, m := range res.Motifs {
		if len(m) <= opts.MinLen {
			t.Fatal(s, "motif", m, "not longer than", opts.MinLen)
		}
		if strings.Contains(m, "-") {
			t.Fatal(s, "motif", m, "has a gap in it")
		}
		posn := res.Occur[m]
		if len(posn) < 2 {
			t.Fatal(s, "motif", m, "only found", len(posn), "times")
		}
		for _, p := range posn {
			if opts.AlignCoords {
				if p < opts.Start || p >= len(s) {
					t.Fatal(s, m, "column", p, "out of range")
				}
				if !strings.HasPrefix(stripFrom(s, p), m) {
					t.Fatal(s, m, "not at column", p)
				}
				continue
			}
			if p < opts.Start-gapsBefore || p+len(m) > len(nogap) {
				t.Fatal(s, m, "position", p, "out of range")
			}
			if nogap[p:p+len(m)] != m {
				t.Fatal(s, m, "not at position", p)
			}
		}
		for _, other := range res.Motifs[:i] {
			if other == m {
				t.Fatal(s, "motif", m, "found twice")
			}
			if opts.Policy == Unique &&
				(strings.Contains(other, m) || strings.Contains(m, other)) {
				t.Fatal(s, "unique, but", m, "and", other, "are related")
			}
		}
	}
}
