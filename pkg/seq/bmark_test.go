// 3 Aug 2020
// 14 Oct 2026 mapped against plain reading

package seq_test

import (
	"os"
	"sync"
	"testing"

	"github.com/andrew-torda/repeatfinder/pkg/randseq"
	. "github.com/andrew-torda/repeatfinder/pkg/seq"
)

const nBench = 2000

var (
	benchOnce  sync.Once
	benchFname string
	benchErr   error
)

// setupbmark writes one big file, shared by the benchmarks.
func setupbmark(b *testing.B) string {
	benchOnce.Do(func() {
		var fp *os.File
		if fp, benchErr = os.CreateTemp("", "_del_me_testing"); benchErr != nil {
			return
		}
		defer fp.Close()
		benchFname = fp.Name()
		args := randseq.RandSeqArgs{Wrtr: fp, Cmmt: "bench", Nseq: nBench, Len: 1000, Iseed: 3}
		benchErr = randseq.RandSeqMain(&args)
	})
	if benchErr != nil {
		b.Fatal(benchErr)
	}
	return benchFname
}

func bmarkRead(b *testing.B, opts *Options) {
	fname := setupbmark(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seqgrp, err := Readfile(fname, opts)
		if err != nil {
			b.Fatal(err)
		}
		if n := seqgrp.GetNSeq(); n != nBench {
			b.Fatal("Expected", nBench, "got", n)
		}
	}
}

func BenchmarkByMmap(b *testing.B)   { bmarkRead(b, &Options{}) }
func BenchmarkByReading(b *testing.B) { bmarkRead(b, &Options{NoMmap: true}) }
