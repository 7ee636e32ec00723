//

package white_test

import (
	"strings"
	"testing"

	"github.com/andrew-torda/repeatfinder/pkg/white"
)

func benchmarkWhite(f fw, b *testing.B) {
	s := strings.Repeat("acgtacgtac ", 6) + "\n"
	s = strings.Repeat(s, 10)
	for i := 0; i < b.N; i++ {
		tt := []byte(s)
		f(&tt)
	}
}

func BenchmarkByByte(b *testing.B)   { benchmarkWhite(white.Remove, b) }
func BenchmarkByFields(b *testing.B) { benchmarkWhite(white.RemoveByFields, b) }
