package search_test

import (
	"testing"

	"github.com/katalvlaran/chromasort/puzzle"
	"github.com/katalvlaran/chromasort/search"
)

// benchGrid is a four-colour position with two working containers; deep
// enough to exercise the visited set without dominating the suite.
var benchGrid = [][]string{
	{"RED", "GREEN", "BLUE", "YELLOW"},
	{"GREEN", "RED", "YELLOW", "BLUE"},
	{"BLUE", "YELLOW", "RED", "GREEN"},
	{"YELLOW", "BLUE", "GREEN", "RED"},
	{},
	{},
}

// BenchmarkBFS measures a full breadth-first solve.
func BenchmarkBFS(b *testing.B) {
	start, err := puzzle.New(benchGrid)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = search.BFS(start)
	}
}

// BenchmarkDFS measures a full depth-first solve of the same position.
func BenchmarkDFS(b *testing.B) {
	start, err := puzzle.New(benchGrid)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = search.DFS(start)
	}
}

// BenchmarkKey isolates the canonical packing used as the visited-set key.
func BenchmarkKey(b *testing.B) {
	start, err := puzzle.New(benchGrid)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = start.Key()
	}
}
