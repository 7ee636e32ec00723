// 31 July 2020

/*

Randseq is for making random DNA alignments for testing the code.
Usage:
	randseq [options] fname nseq length
will generate nseq sequences of length length (before gaps) and write
them to fname. If fname is "-", we write to standard output.

Flags:
	-g
		no gaps in the output sequences
	-w
		tidy output. No scattered whitespace, 60 residues per line.
	-m motif
		plant motif in every sequence
	-k copies
		how many times to plant the motif (default 2)
	-r
		random number seed

Whitespace is scattered through the sequences, since the reader has to
cope with that. A planted motif gives the repeat finder something to
find, although the copies may land on top of each other.

*/
package main
