package paths_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/allpaths/builder"
	"github.com/katalvlaran/allpaths/core"
	"github.com/katalvlaran/allpaths/dfs"
	"github.com/katalvlaran/allpaths/paths"
)

// TestCount_Fixtures compares Count against closed-form path counts.
func TestCount_Fixtures(t *testing.T) {
	tests := []struct {
		name string
		cons []builder.Constructor
		want int64
	}{
		{"Chain(1)", []builder.Constructor{builder.Chain(1)}, 1},
		{"Chain(6)", []builder.Constructor{builder.Chain(6)}, 1},
		{"Diamonds(10)", []builder.Constructor{builder.Diamonds(10)}, 1024},
		{"Layered(2,3,4)", []builder.Constructor{builder.Layered(2, 3, 4)}, 24},
		{"Tournament(12)", []builder.Constructor{builder.Tournament(12)}, 1024},
		{"Grid(4,5)", []builder.Constructor{builder.Grid(4, 5)}, 35},
		{"Diamonds(2)+Layered(3)", []builder.Constructor{builder.Diamonds(2), builder.Layered(3)}, 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.cons...)
			require.NoError(t, err)

			got, err := paths.Count(g)
			require.NoError(t, err)
			assert.Equal(t, 0, got.Cmp(big.NewInt(tc.want)), "Count = %s, want %d", got, tc.want)

			all, err := paths.AllPaths(g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, int64(len(all)))
		})
	}
}

// TestCount_Big verifies that counts beyond int64 are exact.
func TestCount_Big(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Tournament(100))
	require.NoError(t, err)

	got, err := paths.Count(g)
	require.NoError(t, err)

	want := new(big.Int).Lsh(big.NewInt(1), 98)
	assert.Equal(t, 0, got.Cmp(want), "Count = %s, want 2^98", got)
}

// TestCount_EdgeCases covers empty graphs, dead ends, parallel edges and cycles.
func TestCount_EdgeCases(t *testing.T) {
	got, err := paths.Count(core.AdjacencyList{})
	require.NoError(t, err)
	assert.Zero(t, got.Sign())

	got, err = paths.Count(core.AdjacencyList{{}, {}})
	require.NoError(t, err)
	assert.Zero(t, got.Sign())

	got, err = paths.Count(core.AdjacencyList{{1, 1}, {}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Int64())

	// the 1 ⇄ 2 cycle cannot reach the target, so the count stays finite
	got, err = paths.Count(core.AdjacencyList{{1, 3}, {2}, {1}, {}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Int64())

	// a cycle on a 0→N-1 walk means unboundedly many walks
	_, err = paths.Count(core.AdjacencyList{{1}, {0, 2}, {}})
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	_, err = paths.Count(core.AdjacencyList{{3}})
	assert.ErrorIs(t, err, core.ErrInvalidGraph)

	_, err = paths.CountBetween(core.AdjacencyList{{}}, 0, 1)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

// TestCountBetween checks arbitrary endpoints.
func TestCountBetween(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Diamonds(3))
	require.NoError(t, err)

	// from the second join vertex only the last two diamonds remain
	got, err := paths.CountBetween(g, 3, g.Target())
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Int64())

	// backwards there is nothing
	got, err = paths.CountBetween(g, g.Target(), 0)
	require.NoError(t, err)
	assert.Zero(t, got.Sign())
}
