// 20 Dec 2017
// 3 Oct 2026 cut down to what the repeat finder needs

// Package seq provides functions for sequences,
// which usually begin their lives in fasta format. It can
// read and write them.
package seq

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"

	. "github.com/andrew-torda/repeatfinder/pkg/seq/common"
)

// seq is the exported type.
type seq struct {
	cmmt string
	seq  []byte
}

// We only read printable ascii, so this and anything bigger is not
// valid.
const (
	MaxSym uint8 = 127
)

// Options contains all the choices passed in from the caller.
type Options struct {
	Vbsty  int
	NoMmap bool // read the file with ordinary reads instead of mapping it
}

// SeqGrp is a group of sequences in the order they were read.
// names lets us spot a sequence name that turns up twice.
type SeqGrp struct {
	seqs  []seq
	names map[string]int
}

// Function GetSeq returns the sequence as the original byte slice
func (s seq) GetSeq() []byte { return s.seq }

// Function GetCmmt returns the comment, without the leading ">"
func (s seq) GetCmmt() string { return s.cmmt }

// Function Len
func (s seq) Len() int { return len(s.seq) }

// SetSeq will replace whatever was the sequence with a new one
func (s *seq) SetSeq(t []byte) { s.seq = t }

// Empty returns true if a sequence has no residues.
func (s seq) Empty() bool { return len(s.seq) == 0 }

// NonGap counts the residues in a sequence, ignoring gaps.
func (s seq) NonGap() int {
	return len(s.seq) - bytes.Count(s.seq, []byte{GapChar})
}

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// Upper changes a sequence to upper case, in place.
// It only works with bytes, not runes.
// It can return an error if it encounters a symbol it does
// not like (127 or more).
func (seq *seq) Upper() error {
	const diff = 'a' - 'A'
	const symerr = "bad sym \"%c\" at position %d starting \"%s\""
	s := seq.GetSeq()
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= MaxSym {
			t := trimStr(seq.GetCmmt(), 40)
			return fmt.Errorf(symerr, c, i, t)
		}
		if 'a' <= c && c <= 'z' {
			s[i] -= diff
		}
	}
	return nil
}

// String returns a sequence, with its comment at the start as
// a single string
func (s seq) String() (t string) {
	t = fmt.Sprintf("%c%s\n", cmmtChar, s.GetCmmt())
	t += string(s.GetSeq())
	return
}

// add puts a sequence on the end of the group. If the name has been
// seen before, the new sequence replaces the old one, but keeps its
// place in the order.
func (seqgrp *SeqGrp) add(cmmt string, b []byte, s_opts *Options) {
	if seqgrp.names == nil {
		seqgrp.names = make(map[string]int)
	}
	if i, exists := seqgrp.names[cmmt]; exists {
		if s_opts != nil && s_opts.Vbsty > 0 {
			const dupWarn = "Sequence \"%s\" appears twice, keeping the last one\n"
			fmt.Fprintf(os.Stderr, dupWarn, trimStr(cmmt, 40))
		}
		seqgrp.seqs[i].SetSeq(b)
		return
	}
	seqgrp.names[cmmt] = len(seqgrp.seqs)
	seqgrp.seqs = append(seqgrp.seqs, seq{cmmt: cmmt, seq: b})
}

// GetNSeq returns the number of sequences
func (seqgrp *SeqGrp) GetNSeq() int { return len(seqgrp.seqs) }

// SeqSlc return the slice of sequences
func (seqgrp *SeqGrp) SeqSlc() []seq { return seqgrp.seqs }

// Upper uppercases all the members of a group of sequences.
func (seqgrp *SeqGrp) Upper() error {
	for i := range seqgrp.seqs {
		if err := seqgrp.seqs[i].Upper(); err != nil {
			return err
		}
	}
	return nil
}

// Readfile takes a filename and reads sequences from it.
// "-" means standard input. A named file is mapped into memory
// and parsed from there.
func Readfile(fname string, s_opts *Options) (*SeqGrp, error) {
	var seqgrp = new(SeqGrp)
	if fname == "-" {
		return seqgrp, ReadFasta(os.Stdin, seqgrp, s_opts)
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	if s_opts.NoMmap {
		return seqgrp, ReadFasta(fp, seqgrp, s_opts)
	}

	fi, err := fp.Stat()
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%s is a directory", fname)
	}
	if fi.Size() == 0 { // Nothing to map, and mapping zero bytes fails
		return seqgrp, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mapping %s: %w", fname, err)
	}
	defer mm.Unmap()
	parseFasta(mm, seqgrp, s_opts)
	return seqgrp, nil
}

// WriteFasta writes the sequences in a group, wrapping lines at
// c_per_line characters. Empty sequences are skipped.
func WriteFasta(w io.Writer, seqgrp *SeqGrp, c_per_line int) error {
	if c_per_line < 1 {
		c_per_line = 60
	}
	for _, seq := range seqgrp.seqs {
		if seq.Empty() {
			continue
		}
		if _, err := fmt.Fprintf(w, "%c%s\n", cmmtChar, seq.GetCmmt()); err != nil {
			return err
		}
		s := seq.GetSeq()
		for ; len(s) > c_per_line; s = s[c_per_line:] {
			if _, err := fmt.Fprint(w, string(s[:c_per_line]), "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, string(s), "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Str2SeqGrp takes some strings and returns them as a seqgrp.
// sIn is a slice of strings which are the sequences.
// prefix is an optional argument. Sequences need names/comments. If
// prefix is not given, sequences will be called "s0", "s1", ...
func Str2SeqGrp(sIn []string, prefix ...string) *SeqGrp {
	var base string
	seqgrp := new(SeqGrp)
	if prefix == nil {
		base = "s"
	} else {
		base = prefix[0]
	}
	for i, s := range sIn {
		seqgrp.add(fmt.Sprint(base, i), []byte(s), nil)
	}
	return seqgrp
}
