package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/allpaths/core"
)

// diamond is the 4-vertex graph 0→{1,2}, 1→3, 2→3.
func diamond() core.AdjacencyList {
	return core.AdjacencyList{{1, 2}, {3}, {3}, {}}
}

func TestAdjacencyList_OrderSizeEndpoints(t *testing.T) {
	g := diamond()
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 4, g.Size())
	assert.Equal(t, 0, g.Source())
	assert.Equal(t, 3, g.Target())

	var empty core.AdjacencyList
	assert.Equal(t, 0, empty.Order())
	assert.Equal(t, 0, empty.Size())
	assert.Equal(t, -1, empty.Target(), "empty graph has no target")
}

func TestAdjacencyList_Neighbors(t *testing.T) {
	g := diamond()

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, nbs)

	nbs, err = g.Neighbors(3)
	require.NoError(t, err)
	assert.Empty(t, nbs)

	for _, v := range []int{-1, 4, 100} {
		_, err = g.Neighbors(v)
		assert.ErrorIs(t, err, core.ErrVertexOutOfRange, "v=%d", v)
	}
}

func TestAdjacencyList_HasEdge(t *testing.T) {
	g := diamond()
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(2, 3))
	assert.False(t, g.HasEdge(1, 0), "edges are directed")
	assert.False(t, g.HasEdge(-1, 0))
	assert.False(t, g.HasEdge(7, 0))
}

func TestAdjacencyList_Validate(t *testing.T) {
	tests := []struct {
		name    string
		g       core.AdjacencyList
		wantErr bool
	}{
		{"nil", nil, false},
		{"single", core.AdjacencyList{{}}, false},
		{"diamond", diamond(), false},
		{"self-loop", core.AdjacencyList{{0}}, false},
		{"isolated", core.AdjacencyList{{}, {}, {}}, false},
		{"too large", core.AdjacencyList{{1}, {5}, {}}, true},
		{"negative", core.AdjacencyList{{-1}}, true},
		{"equals N", core.AdjacencyList{{2}, {}}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.g.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, core.ErrInvalidGraph)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAdjacencyList_ValidateReportsFirstOffender(t *testing.T) {
	g := core.AdjacencyList{{1, 2}, {9}, {7}}
	err := g.Validate()
	require.ErrorIs(t, err, core.ErrInvalidGraph)
	assert.ErrorContains(t, err, "vertex 1 lists 9 at position 0")
}

func TestAdjacencyList_EdgesOrder(t *testing.T) {
	edges := diamond().Edges()
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1}, {From: 0, To: 2},
		{From: 1, To: 3}, {From: 2, To: 3},
	}, edges)
	assert.Equal(t, "0→1", edges[0].String())
}

func TestAdjacencyList_CloneIsDeep(t *testing.T) {
	g := diamond()
	c := g.Clone()
	require.Equal(t, g, c)

	c[0][0] = 2
	c[3] = append(c[3], 0)
	assert.Equal(t, []int{1, 2}, g[0], "original must not change")
	assert.Empty(t, g[3])

	var nilGraph core.AdjacencyList
	assert.Nil(t, nilGraph.Clone())
}

func TestAdjacencyList_Reverse(t *testing.T) {
	r, err := diamond().Reverse()
	require.NoError(t, err)
	assert.Equal(t, core.AdjacencyList{{}, {0}, {0}, {1, 2}}, r)

	_, err = core.AdjacencyList{{3}}.Reverse()
	assert.ErrorIs(t, err, core.ErrInvalidGraph)
}

func TestFromEdges(t *testing.T) {
	g, err := core.FromEdges(4, []core.Edge{
		{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 3}, {From: 2, To: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, diamond(), g)

	g, err = core.FromEdges(2, nil)
	require.NoError(t, err)
	assert.Equal(t, core.AdjacencyList{{}, {}}, g)

	_, err = core.FromEdges(2, []core.Edge{{From: 0, To: 2}})
	assert.ErrorIs(t, err, core.ErrInvalidGraph)

	_, err = core.FromEdges(-1, nil)
	assert.ErrorIs(t, err, core.ErrInvalidGraph)
}
