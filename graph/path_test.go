package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agitter/meo/graph"
)

// TestPath_WeightIsZeroOrMax checks spec.md §8 invariant 2:
// weight() in {0, maxWeight} under any orientation.
func TestPath_WeightIsZeroOrMax(t *testing.T) {
	g := graph.NewGraph()
	ue, err := g.AddUndirectedEdge("A", "B", 0.5)
	require.NoError(t, err)
	require.NoError(t, g.MarkSource("A"))
	require.NoError(t, g.MarkTarget("B", 1))

	paths := g.FindPaths(5, 0)
	require.Len(t, paths, 1)
	p := paths[0]

	// Unoriented: satisfies.
	assert.Equal(t, p.MaxWeight(), p.Weight())

	require.NoError(t, ue.SetOrientation(graph.Backward)) // path wants A->B (Forward)
	assert.Equal(t, 0.0, p.Weight())

	require.NoError(t, ue.SetOrientation(graph.Forward))
	assert.Equal(t, p.MaxWeight(), p.Weight())
}

// TestPath_MaxWeightInRange checks spec.md §8 invariant 1.
func TestPath_MaxWeightInRange(t *testing.T) {
	g := graph.NewGraph()
	_, err := g.AddUndirectedEdge("A", "B", 0.3)
	require.NoError(t, err)
	_, err = g.AddUndirectedEdge("B", "C", 0.4)
	require.NoError(t, err)
	require.NoError(t, g.MarkSource("A"))
	require.NoError(t, g.MarkTarget("C", 1))

	paths := g.FindPaths(5, 0)
	require.Len(t, paths, 1)
	mw := paths[0].MaxWeight()
	assert.Greater(t, mw, 0.0)
	assert.LessOrEqual(t, mw, 1.0)
}
