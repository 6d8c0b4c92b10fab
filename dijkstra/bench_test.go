// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/fibpath/builder"
	"github.com/katalvlaran/fibpath/core"
	"github.com/katalvlaran/fibpath/dijkstra"
)

func benchGrid(b *testing.B) *core.Graph[int] {
	b.Helper()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithSeed(1),
		builder.WithWeightFn(builder.IntegerWeightFn(1, 50)),
	}, builder.Grid(60, 60))
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func BenchmarkShortestPaths_Fibonacci(b *testing.B) {
	g := benchGrid(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ShortestPaths(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkShortestPaths_BinaryHeap(b *testing.B) {
	g := benchGrid(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ShortestPathsBinaryHeap(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearch_Fibonacci(b *testing.B) {
	g := benchGrid(b)
	end := g.VertexCount() - 1
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dijkstra.Search(g, 0, end); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearch_BinaryHeap(b *testing.B) {
	g := benchGrid(b)
	end := g.VertexCount() - 1
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dijkstra.SearchBinaryHeap(g, 0, end); err != nil {
			b.Fatal(err)
		}
	}
}
