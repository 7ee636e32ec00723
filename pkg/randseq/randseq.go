// 31 July 2020
// 12 Oct 2026 dna, planted motifs

// Package randseq makes random gapped DNA alignments for testing and
// benchmarking. A motif can be planted a few times in each sequence so
// there is something to find.
package randseq

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"

	"github.com/andrew-torda/repeatfinder/pkg/seq"
	"github.com/andrew-torda/repeatfinder/pkg/seq/common"
)

const (
	nPadWhite = 9  // For padding for adding whitespace to sequences
	gapFrac   = 10 // about one residue in gapFrac gets a gap in front
)

var letters = []byte{'a', 'c', 'g', 't'}

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed  int64     // random number seed
	Wrtr   io.Writer // where we write to
	Cmmt   string    // Comment for the sequences
	Nseq   int       // number of sequences
	Len    int       // Length of sequences, before gaps
	NoGap  bool      // Do not add gaps
	Motif  string    // planted in each sequence, if not empty
	Copies int       // how many times to plant Motif
	Tidy   bool      // no scattered whitespace, 60 residues per line
}

// getseq returns a byte slice with a random sequence in it. The motif
// is copied in at random places, which may overlap each other.
func getseq(args *RandSeqArgs, rnd *rand.Rand) []byte {
	ret := make([]byte, args.Len)
	for i := range ret {
		ret[i] = letters[rnd.Intn(len(letters))]
	}
	if m := args.Motif; m != "" && len(m) <= len(ret) {
		for i := 0; i < args.Copies; i++ {
			copy(ret[rnd.Intn(len(ret)-len(m)+1):], m)
		}
	}
	return ret
}

// addInner puts n copies of c in at random positions.
func addInner(s []byte, n int, c byte, rnd *rand.Rand) []byte {
	for i := 0; i < n; i++ {
		s = append(s, 0)
		pos := rnd.Intn(len(s))
		copy(s[pos+1:], s[pos:])
		s[pos] = c
	}
	return s
}

// addgaps puts gaps in, about one for every gapFrac residues.
func addgaps(s []byte, rnd *rand.Rand) []byte {
	return addInner(s, len(s)/gapFrac, common.GapChar, rnd)
}

// addspace adds white characters at random positions. We flip a coin.
// Heads we don't add a newline. Tails we make about 1/9 of the spaces
// newlines.
func addspace(s []byte, rnd *rand.Rand) []byte {
	toAdd := len(s) / nPadWhite
	nNL := 0 // Number of new lines to add
	if rnd.Intn(2) == 0 {
		nNL = toAdd / 9
	}
	s = addInner(s, toAdd-nNL, ' ', rnd)
	return addInner(s, nNL, '\n', rnd)
}

// tidyLine is the line width for Tidy output.
const tidyLine = 60

// writeseq adds a comment line to each sequence and writes it. The
// output has comment lines "> something 1, > something 2...".
// The first write error is kept and anything after is dropped.
// Tidy output is collected and written at the end, named from 0, and
// empty sequences are left out.
func writeseq(sChan <-chan []byte, args *RandSeqArgs, wg *sync.WaitGroup, err *error) {
	defer wg.Done()
	if args.Tidy {
		var all []string
		for s := range sChan {
			all = append(all, string(s))
		}
		*err = seq.WriteFasta(args.Wrtr, seq.Str2SeqGrp(all, args.Cmmt+" "), tidyLine)
		return
	}
	width := len(fmt.Sprintf("%d", args.Nseq))
	spacernd := rand.New(rand.NewSource(args.Iseed + 1))
	var i int
	for s := range sChan {
		i++
		if *err != nil {
			continue
		}
		s = addspace(s, spacernd)
		if _, *err = fmt.Fprintf(args.Wrtr, "> %s %[2]*d\n", args.Cmmt, width, i); *err != nil {
			continue
		}
		s = append(s, '\n')
		_, *err = args.Wrtr.Write(s)
	}
}

// RandSeqMain writes random sequences to an io.Writer.
func RandSeqMain(args *RandSeqArgs) error {
	if args.Nseq < 0 || args.Len < 0 || args.Copies < 0 {
		return errors.New("randseq: negative count or length")
	}
	if len(args.Motif) > args.Len {
		return fmt.Errorf("randseq: motif length %d longer than sequence %d", len(args.Motif), args.Len)
	}
	var wg sync.WaitGroup
	var werr error
	rnd := rand.New(rand.NewSource(args.Iseed))
	sChan := make(chan []byte)
	wg.Add(1)
	go writeseq(sChan, args, &wg, &werr)
	for i := 0; i < args.Nseq; i++ {
		s := getseq(args, rnd)
		if !args.NoGap {
			s = addgaps(s, rnd)
		}
		sChan <- s
	}
	close(sChan)
	wg.Wait()
	return werr
}
