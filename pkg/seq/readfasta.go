// Reader for fasta format files.

package seq

import (
	"bytes"
	"io"

	"github.com/andrew-torda/repeatfinder/pkg/white"
)

// A record starts with a line beginning with ">". The rest of that
// line is the name. Everything up to the next such line is sequence.
const (
	NL       = '\n'
	cmmtChar = '>'
)

type lexer struct {
	input  []byte // what is left to read
	seqgrp *SeqGrp
	s_opts *Options
	cmmt   string // name of the record being read
	seq    []byte // partial sequence
}

type stateFn func(*lexer) stateFn

// line hands back the next line without its terminator. A trailing
// carriage return from a DOS file is dropped too.
func (l *lexer) line() ([]byte, bool) {
	if len(l.input) == 0 {
		return nil, false
	}
	var line []byte
	if ndx := bytes.IndexByte(l.input, NL); ndx == -1 {
		line, l.input = l.input, nil
	} else {
		line, l.input = l.input[:ndx], l.input[ndx+1:]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line, true
}

// flush stores the record we have been collecting. Sequence bytes have
// been copied out of the input, so it is safe to edit them in place.
func (l *lexer) flush() {
	white.Remove(&l.seq)
	l.seqgrp.add(l.cmmt, l.seq, l.s_opts)
	l.cmmt = ""
	l.seq = nil
}

func (l *lexer) header(line []byte) {
	l.cmmt = string(line[1:])
	l.seq = []byte{}
}

// gstart looks at the first line. Text before any ">" line is kept as
// a sequence with an empty name. Blank lines at the top are skipped.
func gstart(l *lexer) stateFn {
	line, ok := l.line()
	if !ok {
		return nil
	}
	if len(bytes.TrimSpace(line)) == 0 {
		return gstart
	}
	if line[0] == cmmtChar {
		l.header(line)
	} else {
		l.seq = append([]byte{}, line...)
	}
	return gseq
}

// We are reading a sequence
func gseq(l *lexer) stateFn {
	line, ok := l.line()
	if !ok {
		l.flush()
		return nil
	}
	if len(line) > 0 && line[0] == cmmtChar {
		l.flush()
		l.header(line)
		return gseq
	}
	l.seq = append(l.seq, line...)
	return gseq
}

// parseFasta walks over a buffer holding a whole file. The buffer may
// be read-only, so nothing in it is modified.
func parseFasta(b []byte, seqgrp *SeqGrp, s_opts *Options) {
	l := lexer{input: b, seqgrp: seqgrp, s_opts: s_opts}
	for state := gstart; state != nil; {
		state = state(&l)
	}
}

// ReadFasta reads fasta formatted text from a reader. It is used for
// standard input and anything else that cannot be mapped.
func ReadFasta(rdr io.Reader, seqgrp *SeqGrp, s_opts *Options) error {
	b, err := io.ReadAll(rdr)
	if err != nil {
		return err
	}
	parseFasta(b, seqgrp, s_opts)
	return nil
}
