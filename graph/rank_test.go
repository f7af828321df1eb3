package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agitter/meo/graph"
)

// buildTwoPathGraph produces two disjoint source-target pairs so the
// two resulting single-edge paths have distinguishable weights and
// degrees to sort by.
func buildTwoPathGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	_, err := g.AddUndirectedEdge("A", "B", 0.3)
	require.NoError(t, err)
	_, err = g.AddUndirectedEdge("C", "D", 0.9)
	require.NoError(t, err)
	require.NoError(t, g.MarkSource("A"))
	require.NoError(t, g.MarkSource("C"))
	require.NoError(t, g.MarkTarget("B", 1))
	require.NoError(t, g.MarkTarget("D", 1))

	return g
}

func TestSortByRank_OrdersDescendingByPathWeight(t *testing.T) {
	g := buildTwoPathGraph(t)
	paths := g.FindPaths(5, 0)
	require.Len(t, paths, 2)

	graph.SortByRank(paths, graph.RankPathWeight)
	assert.InDelta(t, 0.9, paths[0].MaxWeight(), 1e-9)
	assert.InDelta(t, 0.3, paths[1].MaxWeight(), 1e-9)
}

func TestSortByRank_MaxEdgeWeightMatchesPathWeightForSingleEdgePaths(t *testing.T) {
	g := buildTwoPathGraph(t)
	paths := g.FindPaths(5, 0)

	graph.SortByRank(paths, graph.RankMaxEdgeWeight)
	_, _, max0 := paths[0].EdgeWeightStats()
	_, _, max1 := paths[1].EdgeWeightStats()
	assert.InDelta(t, 0.9, max0, 1e-9)
	assert.InDelta(t, 0.3, max1, 1e-9)
}

// TestSortByRank_UnknownKeyFallsBackToPathWeight checks that a RankKey
// value outside the dispatch table degrades to RankPathWeight instead
// of panicking (spec.md §4.6).
func TestSortByRank_UnknownKeyFallsBackToPathWeight(t *testing.T) {
	g := buildTwoPathGraph(t)
	paths := g.FindPaths(5, 0)

	graph.SortByRank(paths, graph.RankKey(999))
	assert.InDelta(t, 0.9, paths[0].MaxWeight(), 1e-9)
	assert.InDelta(t, 0.3, paths[1].MaxWeight(), 1e-9)
}

func TestRankKey_StringNamesEveryRecognizedKey(t *testing.T) {
	assert.Equal(t, "pathWeight", graph.RankPathWeight.String())
	assert.Equal(t, "maxVertexDegree", graph.RankMaxVertexDegree.String())
	assert.Equal(t, "unknown", graph.RankKey(999).String())
}
