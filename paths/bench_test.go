package paths_test

import (
	"testing"

	"github.com/katalvlaran/allpaths/builder"
	"github.com/katalvlaran/allpaths/core"
	"github.com/katalvlaran/allpaths/paths"
)

func mustBuild(b *testing.B, cons ...builder.Constructor) core.AdjacencyList {
	b.Helper()
	g, err := builder.BuildGraph(nil, cons...)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkAllPaths_Diamonds12 enumerates 4096 paths of length 25.
func BenchmarkAllPaths_Diamonds12(b *testing.B) {
	g := mustBuild(b, builder.Diamonds(12))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = paths.AllPaths(g)
	}
}

// BenchmarkAllPaths_Tournament14 enumerates 4096 paths of varying length.
func BenchmarkAllPaths_Tournament14(b *testing.B) {
	g := mustBuild(b, builder.Tournament(14))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = paths.AllPaths(g)
	}
}

// BenchmarkAllPaths_Pruned measures pruning on a graph with a wide dead branch.
func BenchmarkAllPaths_Pruned(b *testing.B) {
	// vertices 1..12 form a tournament that never reaches the target 13
	g := make(core.AdjacencyList, 14)
	for i := 1; i < 13; i++ {
		for j := i + 1; j < 13; j++ {
			g[i] = append(g[i], j)
		}
	}
	g[0] = []int{1, 13}
	g[13] = []int{}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = paths.AllPaths(g, paths.WithPruning())
	}
}

// BenchmarkCount_Tournament200 counts 2^198 paths.
func BenchmarkCount_Tournament200(b *testing.B) {
	g := mustBuild(b, builder.Tournament(200))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = paths.Count(g)
	}
}
