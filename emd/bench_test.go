package emd_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/cellflow/core"
	"github.com/katalvlaran/cellflow/emd"
)

// randCloud builds an n×d cloud with deterministic pseudo-random features.
func randCloud(b *testing.B, rng *rand.Rand, n, d int) *core.Dense {
	b.Helper()
	rows := make([][]float64, n)
	for i := range rows {
		row := make([]float64, d)
		for k := range row {
			row[k] = rng.Float64()
		}
		rows[i] = row
	}
	m, err := core.NewDenseFromRows(rows)
	if err != nil {
		b.Fatal(err)
	}
	return m
}

// BenchmarkDistance measures the full pipeline (cost matrix + simplex) on
// growing uniform clouds.
func BenchmarkDistance(b *testing.B) {
	for _, n := range []int{16, 32, 64} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1))
			x := randCloud(b, rng, n, 8)
			y := randCloud(b, rng, n, 8)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := emd.Distance(x, y, nil, nil, emd.DefaultOptions()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
