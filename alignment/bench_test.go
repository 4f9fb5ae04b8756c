package alignment_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/seqalign/alignment"
)

// BenchmarkTraceback_Max traces a 30×30 grid.
func BenchmarkTraceback_Max(b *testing.B) {
	g := mustGlobal(b, strings.Repeat("GATTACA", 5)[:30], strings.Repeat("GCATGCU", 5)[:30])

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := alignment.Traceback(g); err != nil {
			b.Fatalf("Traceback failed: %v", err)
		}
	}
}

// BenchmarkScoreString_Max renders and scores a 30×30 main path.
func BenchmarkScoreString_Max(b *testing.B) {
	p, err := alignment.Traceback(mustGlobal(b, strings.Repeat("ACGT", 8)[:30], strings.Repeat("AGT", 10)))
	if err != nil {
		b.Fatalf("Traceback failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.ScoreString()
	}
}
