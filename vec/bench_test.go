package vec_test

import (
	"testing"

	"github.com/katalvlaran/lvtools/iterator"
	"github.com/katalvlaran/lvtools/vec"
)

// benchmarkPushBack appends n elements to a fresh vector built with opts.
func benchmarkPushBack(b *testing.B, n int, opts ...vec.Option) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := vec.New[int](opts...)
		for j := 0; j < n; j++ {
			v.PushBack(j)
		}
	}
}

// BenchmarkPushBack_Grow10K measures amortized growth from an empty vector.
func BenchmarkPushBack_Grow10K(b *testing.B) {
	benchmarkPushBack(b, 10_000)
}

// BenchmarkPushBack_Reserved10K measures appends into reserved capacity.
func BenchmarkPushBack_Reserved10K(b *testing.B) {
	benchmarkPushBack(b, 10_000, vec.WithCapacity(10_000))
}

// BenchmarkPushBack_Factor15 measures growth with a 1.5 factor.
func BenchmarkPushBack_Factor15(b *testing.B) {
	benchmarkPushBack(b, 10_000, vec.WithGrowthFactor(1.5))
}

// BenchmarkAt measures checked reads.
func BenchmarkAt(b *testing.B) {
	v := vec.OfZero[int](1024)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := v.At(i & 1023); err != nil {
			b.Fatalf("At failed: %v", err)
		}
	}
}

// BenchmarkInsertFront measures the shifting cost of front inserts.
func BenchmarkInsertFront(b *testing.B) {
	for i := 0; i < b.N; i++ {
		v := vec.New[int](vec.WithCapacity(256))
		for j := 0; j < 256; j++ {
			if _, err := v.Insert(0, j); err != nil {
				b.Fatalf("Insert failed: %v", err)
			}
		}
	}
}

// BenchmarkFromRange_MultiPass measures sized range construction.
func BenchmarkFromRange_MultiPass(b *testing.B) {
	src := make([]int, 4096)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_ = vec.FromRange[int](iterator.Slice(src))
	}
}
