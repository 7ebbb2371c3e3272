package window

import (
	"strconv"
	"testing"
)

func BenchmarkGenerate(b *testing.B) {
	for _, n := range []int{1024, 16384} {
		b.Run("bh4/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = Generate(TypeBlackmanHarris4Term, n, WithPeriodic())
			}
		})
	}
}
