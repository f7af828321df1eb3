package ioformat_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agitter/meo/graph"
	"github.com/agitter/meo/ioformat"
)

func TestLoadEdges_ParsesBothTypes(t *testing.T) {
	g := graph.NewGraph()
	in := "A (pp) B = 0.5\nB (pd) C = 0.9\n"
	require.NoError(t, ioformat.LoadEdges(strings.NewReader(in), g))

	assert.Len(t, g.UndirectedEdges(), 1)
	assert.Len(t, g.DirectedEdges(), 1)
	assert.Equal(t, 0.5, g.UndirectedEdges()[0].Weight)
	assert.Equal(t, 0.9, g.DirectedEdges()[0].Weight)
}

func TestLoadEdges_RejectsUnknownType(t *testing.T) {
	g := graph.NewGraph()
	err := ioformat.LoadEdges(strings.NewReader("A (xx) B = 0.5\n"), g)
	assert.ErrorIs(t, err, ioformat.ErrUnknownEdgeType)
}

func TestLoadEdges_RejectsMalformedLine(t *testing.T) {
	g := graph.NewGraph()
	err := ioformat.LoadEdges(strings.NewReader("A B C\n"), g)
	assert.ErrorIs(t, err, ioformat.ErrMalformedLine)
}

func TestLoadEdges_PropagatesReservedCharError(t *testing.T) {
	g := graph.NewGraph()
	err := ioformat.LoadEdges(strings.NewReader("A_1 (pp) B = 0.5\n"), g)
	assert.ErrorIs(t, err, graph.ErrReservedChar)
}

func TestLoadSourcesAndTargets(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, ioformat.LoadSources(strings.NewReader("A\nD\n"), g))
	require.NoError(t, ioformat.LoadTargets(strings.NewReader("C\t0.5\nB\n"), g))

	a, err := g.VertexByName("A")
	require.NoError(t, err)
	assert.True(t, a.IsSource)

	c, err := g.VertexByName("C")
	require.NoError(t, err)
	assert.True(t, c.IsTarget)
	assert.Equal(t, 0.5, c.TargetWeight)

	b, err := g.VertexByName("B")
	require.NoError(t, err)
	assert.Equal(t, 1.0, b.TargetWeight)
}

func TestWritePathOutput_FormatsHeaderAndRows(t *testing.T) {
	g := graph.NewGraph()
	_, err := g.AddUndirectedEdge("A", "B", 0.9)
	require.NoError(t, err)
	require.NoError(t, g.MarkSource("A"))
	require.NoError(t, g.MarkTarget("B", 1))

	paths := g.FindPaths(5, 0)
	var buf bytes.Buffer
	require.NoError(t, ioformat.WritePathOutput(&buf, g, paths))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Path\tIs satisfied?\tPath weight", lines[0])
	assert.Equal(t, "A:B\ttrue\t0.9", lines[1])
}

func TestWriteEdgeOutput_OnlySatisfiedAndDirectedFirst(t *testing.T) {
	g := graph.NewGraph()
	_, err := g.AddDirectedEdge("A", "B", 0.7)
	require.NoError(t, err)
	ue, err := g.AddUndirectedEdge("B", "C", 0.9)
	require.NoError(t, err)
	require.NoError(t, g.MarkSource("A"))
	require.NoError(t, g.MarkTarget("C", 1))

	paths := g.FindPaths(5, 0)
	require.NoError(t, ue.SetOrientation(graph.Forward))
	for _, p := range paths {
		p.Refresh()
	}

	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteEdgeOutput(&buf, g, paths))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Source\tType\tTarget\tOriented\tWeight", lines[0])
	assert.Equal(t, "A\tpd\tB\ttrue\t0.7", lines[1])
	assert.Equal(t, "B\tpp\tC\ttrue\t0.9", lines[2])
}
