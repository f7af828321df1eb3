package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agitter/meo/graph"
)

func TestAddVertex_RejectsReservedChar(t *testing.T) {
	g := graph.NewGraph()
	_, err := g.AddVertex("a_b")
	assert.ErrorIs(t, err, graph.ErrReservedChar)
}

func TestAddVertex_RejectsEmptyName(t *testing.T) {
	g := graph.NewGraph()
	_, err := g.AddVertex("")
	assert.ErrorIs(t, err, graph.ErrEmptyVertexName)
}

func TestAddVertex_Idempotent(t *testing.T) {
	g := graph.NewGraph()
	a, err := g.AddVertex("A")
	require.NoError(t, err)
	b, err := g.AddVertex("A")
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.ID)
}

func TestAddEdge_RejectsBadWeight(t *testing.T) {
	g := graph.NewGraph()
	_, err := g.AddUndirectedEdge("A", "B", 0)
	assert.ErrorIs(t, err, graph.ErrBadWeight)
	_, err = g.AddUndirectedEdge("A", "B", 1.5)
	assert.ErrorIs(t, err, graph.ErrBadWeight)
}

func TestUndirectedEdge_FlipAndFix(t *testing.T) {
	g := graph.NewGraph()
	e, err := g.AddUndirectedEdge("A", "B", 0.5)
	require.NoError(t, err)

	assert.Equal(t, graph.Unoriented, e.State)
	require.NoError(t, e.Flip())
	assert.Equal(t, graph.Forward, e.State)
	require.NoError(t, e.Flip())
	assert.Equal(t, graph.Backward, e.State)

	e.Fix(graph.Forward)
	assert.True(t, e.IsFixed())
	assert.ErrorIs(t, e.Flip(), graph.ErrFixedOrientation)
	assert.ErrorIs(t, e.SetOrientation(graph.Backward), graph.ErrFixedOrientation)
}

func TestDegree_OnlyOrientedFilter(t *testing.T) {
	g := graph.NewGraph()
	_, err := g.AddUndirectedEdge("A", "B", 0.5)
	require.NoError(t, err)
	a, err := g.VertexByName("A")
	require.NoError(t, err)

	assert.Equal(t, 1, g.Degree(a.ID, false, false))
	assert.Equal(t, 0, g.Degree(a.ID, true, false))

	ue := g.UndirectedEdges()[0]
	require.NoError(t, ue.Flip())
	g.GraphStateChanged()
	assert.Equal(t, 1, g.Degree(a.ID, true, false))
}
