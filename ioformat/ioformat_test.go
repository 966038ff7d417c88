package ioformat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxedgeorient/meo/core"
	"github.com/maxedgeorient/meo/ioformat"
	"github.com/maxedgeorient/meo/path"
)

func TestParseEdges_MixedDirectedAndUndirected(t *testing.T) {
	g := core.NewGraph()
	const edges = "A (pp) B = 0.9\nB (pd) C = 0.5\n"
	require.NoError(t, ioformat.ParseEdges(strings.NewReader(edges), g))

	assert.Len(t, g.UndirectedEdges(), 1)
	assert.Len(t, g.DirectedEdges(), 1)

	a, err := g.VertexByName("A")
	require.NoError(t, err)
	assert.Equal(t, 1.0, a.Weight()) // auto-registered

	ue := g.UndirectedEdges()[0]
	assert.InDelta(t, 0.9, ue.Weight(), 1e-9)
	de := g.DirectedEdges()[0]
	assert.InDelta(t, 0.5, de.Weight(), 1e-9)
}

func TestParseEdges_RejectsBadWeight(t *testing.T) {
	g := core.NewGraph()
	err := ioformat.ParseEdges(strings.NewReader("A (pp) B = 1.5\n"), g)
	assert.Error(t, err)
}

func TestParseEdges_RejectsBadType(t *testing.T) {
	g := core.NewGraph()
	err := ioformat.ParseEdges(strings.NewReader("A (xx) B = 0.5\n"), g)
	assert.Error(t, err)
}

func TestParseSourcesAndTargets(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddVertex("A", 1)
	require.NoError(t, err)
	_, err = g.AddVertex("B", 1)
	require.NoError(t, err)

	require.NoError(t, ioformat.ParseSources(strings.NewReader("A\n"), g))
	require.NoError(t, ioformat.ParseTargets(strings.NewReader("B\t0.5\n"), g))

	a, _ := g.VertexByName("A")
	b, _ := g.VertexByName("B")
	assert.True(t, a.IsSource())
	assert.True(t, b.IsTarget())
	assert.InDelta(t, 0.5, b.TargetWeight(), 1e-9)
}

func TestParseTargets_DefaultsWeightToOne(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddVertex("B", 1)
	require.NoError(t, err)
	require.NoError(t, ioformat.ParseTargets(strings.NewReader("B\n"), g))
	b, _ := g.VertexByName("B")
	assert.InDelta(t, 1.0, b.TargetWeight(), 1e-9)
}

func TestParseTargets_RejectsBadWeight(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddVertex("B", 1)
	require.NoError(t, err)
	err = ioformat.ParseTargets(strings.NewReader("B\t2.0\n"), g)
	assert.ErrorIs(t, err, ioformat.ErrBadTargetWeight)
}

func TestWritePathOutput(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddVertex("A", 1)
	b, _ := g.AddVertex("B", 1)
	require.NoError(t, g.MarkSource("A"))
	require.NoError(t, g.MarkTarget("B", 1))
	ueID, err := g.AddUndirectedEdge(a, b, 0.9)
	require.NoError(t, err)
	ue := g.UndirectedEdge(ueID)
	require.NoError(t, ue.SetOrientation(core.OrientedForward))

	p, err := path.NewPath(g, 0, []int{a, b}, []core.Edge{ue})
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, ioformat.WritePathOutput(&buf, []*path.Path{p}))

	out := buf.String()
	assert.Contains(t, out, "Path\tIs satisfied?\tPath weight\n")
	assert.Contains(t, out, "A:B\ttrue\t0.9\n")
}

func TestWriteEdgeOutput(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddVertex("A", 1)
	b, _ := g.AddVertex("B", 1)
	c, _ := g.AddVertex("C", 1)
	_, err := g.AddDirectedEdge(a, b, 0.4)
	require.NoError(t, err)
	ueID, err := g.AddUndirectedEdge(b, c, 0.6)
	require.NoError(t, err)
	ue := g.UndirectedEdge(ueID)
	require.NoError(t, ue.SetOrientation(core.OrientedForward))

	used := map[core.Edge]struct{}{
		g.DirectedEdges()[0]: {},
		ue:                   {},
	}

	var buf strings.Builder
	require.NoError(t, ioformat.WriteEdgeOutput(&buf, g, used))

	out := buf.String()
	assert.Contains(t, out, "Source\tType\tTarget\tOriented\tWeight\n")
	assert.Contains(t, out, "A\tpd\tB\ttrue\t0.4\n")
	assert.Contains(t, out, "B\tpp\tC\ttrue\t0.6\n")
}
