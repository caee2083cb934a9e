// SPDX-License-Identifier: MIT

// Package sequence_test provides benchmarks for the core Sequence operations.
package sequence_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/dynmat/sequence"
)

// benchSizes are the sequence lengths to benchmark.
var benchSizes = []int{1 << 10, 1 << 14, 1 << 18}

// sinks to defeat dead-code elimination
var (
	sinkS *sequence.Sequence[float64]
	sinkF float64
)

// randSeq fills a sequence deterministically from seed.
func randSeq(b *testing.B, n int, seed int64) *sequence.Sequence[float64] {
	b.Helper()
	s := mustNew[float64](b, n)
	rng := rand.New(rand.NewSource(seed))
	s.Apply(func(int, float64) float64 { return rng.Float64()*2 - 1 })

	return s
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randSeq(b, n, 1337)
			y := randSeq(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, err := x.Add(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkS = s
			}
		})
	}
}

func BenchmarkDot(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randSeq(b, n, 1)
			y := randSeq(b, n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := x.Dot(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkAssign(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := randSeq(b, n, 7)
			dst := mustNew[float64](b, 1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := dst.Assign(src); err != nil {
					b.Fatal(err)
				}
			}
			sinkS = dst
		})
	}
}

func BenchmarkMove(b *testing.B) {
	s := randSeq(b, 1<<14, 9)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s = s.Move()
	}
	sinkS = s
}
