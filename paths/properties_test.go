package paths_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/allpaths/builder"
	"github.com/katalvlaran/allpaths/core"
	"github.com/katalvlaran/allpaths/paths"
)

// bruteForce is the textbook recursive enumeration in adjacency order.
func bruteForce(g core.AdjacencyList) [][]int {
	out := [][]int{}
	if len(g) == 0 {
		return out
	}
	var walk func(p []int)
	walk = func(p []int) {
		last := p[len(p)-1]
		if last == len(g)-1 {
			out = append(out, append([]int(nil), p...))
		}
		for _, w := range g[last] {
			walk(append(p, w))
		}
	}
	walk([]int{0})

	return out
}

// TestAllPaths_MatchesRecursion cross-checks output and order on random DAGs.
func TestAllPaths_MatchesRecursion(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		for _, p := range []float64{0.2, 0.5, 0.8} {
			name := fmt.Sprintf("seed=%d/p=%.1f", seed, p)
			t.Run(name, func(t *testing.T) {
				g, err := builder.BuildGraph(
					[]builder.BuilderOption{builder.WithSeed(seed)},
					builder.RandomDAG(10, p),
				)
				require.NoError(t, err)

				got, err := paths.AllPaths(g)
				require.NoError(t, err)
				if diff := cmp.Diff(bruteForce(g), got); diff != "" {
					t.Fatalf("AllPaths mismatch (-want +got):\n%s", diff)
				}

				// every result is a simple 0→N-1 path of g
				for _, path := range got {
					require.True(t, paths.IsPath(g, path), "not a path: %v", path)
					require.True(t, paths.IsSimple(path, g.Order()), "not simple: %v", path)
				}

				n, err := paths.Count(g)
				require.NoError(t, err)
				require.Equal(t, int64(len(got)), n.Int64())

				// pruning and the cycle check never change a DAG's answer
				hardened, err := paths.AllPaths(g, paths.WithPruning(), paths.WithCycleCheck())
				require.NoError(t, err)
				if diff := cmp.Diff(got, hardened); diff != "" {
					t.Fatalf("pruned mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

// TestAllPaths_NeighborOrder verifies that reversing adjacency lists
// reverses the discovery order and nothing else.
func TestAllPaths_NeighborOrder(t *testing.T) {
	fwd, err := builder.BuildGraph(nil, builder.Tournament(6))
	require.NoError(t, err)
	rev, err := builder.BuildGraph([]builder.BuilderOption{builder.WithReversedAdjacency()}, builder.Tournament(6))
	require.NoError(t, err)

	a, err := paths.AllPaths(fwd)
	require.NoError(t, err)
	b, err := paths.AllPaths(rev)
	require.NoError(t, err)

	require.Len(t, b, len(a))
	for i := range a {
		if diff := cmp.Diff(a[i], b[len(b)-1-i]); diff != "" {
			t.Fatalf("position %d (-fwd +rev):\n%s", i, diff)
		}
	}
}
