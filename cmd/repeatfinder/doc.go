// 13 Oct 2026

/*

Repeatfinder looks for repeated motifs in each sequence of an alignment.
Usage:
	repeatfinder -a alignment.fasta [options]

For each sequence, it lists the motifs it found, numbered in the order
they were found, with the positions of every copy (counting from 1).
Then it draws a band with one cell per position, coloured and labelled
by motif number. Where copies of different motifs start at the same
place, the motif found first wins.

Flags:
	-a, --alignment file
		the sequences. "-" reads standard input.
	-l, --length n
		motifs must be longer than n (default 10)
	-s, --start n
		ignore everything before alignment column n, counting from 0
	-u, --unique
		drop a motif if it is inside one already found, or one already
		found is inside it
	-g
		report positions as alignment columns, rather than residue numbers
	-o file
		write to file instead of standard output
	-c file
		write a csv file saying which sites are covered by which motif
	-p file
		write the bands as a png
	-colour always|auto|never
		escape codes for the band. auto means only on a terminal.
	-j n
		scan up to n sequences at once. Output order does not change.
	-nommap
		read the file without mapping it into memory
	-v n
		verbosity
	-t
		print run time
	-h, --help
		this message

Running with no arguments prints the help.

*/
package main
