package core_test

import (
	"testing"

	"github.com/katalvlaran/allpaths/core"
)

// denseDAG returns the complete DAG on n vertices (i→j for every i<j).
func denseDAG(n int) core.AdjacencyList {
	g := make(core.AdjacencyList, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g[i] = append(g[i], j)
		}
	}

	return g
}

// BenchmarkValidate_Dense500 measures one validation pass over ~125k edges.
func BenchmarkValidate_Dense500(b *testing.B) {
	g := denseDAG(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Validate()
	}
}

// BenchmarkReverse_Dense500 measures building the transpose.
func BenchmarkReverse_Dense500(b *testing.B) {
	g := denseDAG(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Reverse()
	}
}
