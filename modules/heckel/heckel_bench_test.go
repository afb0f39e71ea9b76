package heckel

import (
	"math/rand/v2"
	"testing"
)

func benchmarkInput(n int, alphabet int) ([]int, []int) {
	rng := rand.New(rand.NewPCG(uint64(n), uint64(alphabet)))
	a := make([]int, n)
	b := make([]int, n)
	for i := range n {
		a[i] = rng.IntN(alphabet)
		b[i] = rng.IntN(alphabet)
	}
	return a, b
}

func BenchmarkDiffUnique(b *testing.B) {
	x, y := benchmarkInput(10000, 1<<30)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = DiffComparable(x, y)
	}
}

func BenchmarkDiffDuplicates(b *testing.B) {
	x, y := benchmarkInput(10000, 16)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = DiffComparable(x, y)
	}
}

func BenchmarkApplicableSteps(b *testing.B) {
	x, y := benchmarkInput(1000, 1000)
	r := DiffComparable(x, y)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.ApplicableSteps()
	}
}
