package wcsp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxedgeorient/meo/core"
	"github.com/maxedgeorient/meo/engine"
	"github.com/maxedgeorient/meo/wcsp"
)

// buildSingleConflictGraph mirrors engine's scenario S4 fixture: one
// conflict edge M--T, BACKWARD beats FORWARD by 0.20 (0.42 vs 0.22).
func buildSingleConflictGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	s1, _ := g.AddVertex("S1", 0.2)
	m, _ := g.AddVertex("M", 1)
	target, _ := g.AddVertex("T", 1)
	x, _ := g.AddVertex("X", 1)
	require.NoError(t, g.MarkSource("S1"))
	require.NoError(t, g.MarkSource("T"))
	require.NoError(t, g.MarkTarget("T", 1))
	require.NoError(t, g.MarkTarget("X", 1))

	_, err := g.AddUndirectedEdge(s1, m, 1)
	require.NoError(t, err)
	_, err = g.AddUndirectedEdge(m, target, 0.5)
	require.NoError(t, err)
	_, err = g.AddUndirectedEdge(m, x, 0.6)
	require.NoError(t, err)
	return g
}

func TestGenerate_ProducesOneVariableAndRelationPerConflict(t *testing.T) {
	g := buildSingleConflictGraph(t)
	e := engine.New(g)

	var buf bytes.Buffer
	require.NoError(t, wcsp.Generate(e, &buf))
	out := buf.String()

	assert.Contains(t, out, `<variables nbVariables="1">`)
	assert.Contains(t, out, `<variable name="E0" domain="D0"/>`)
	assert.Contains(t, out, `nbRelations="2">`) // two conflict paths cross M--T
	assert.Contains(t, out, `nbConstraints="2"`)
	assert.Contains(t, out, `<instance>`)
	assert.Contains(t, out, `</instance>`)
}

func TestGenerate_NoConflictEdgesIsAnError(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddVertex("A", 1)
	b, _ := g.AddVertex("B", 1)
	require.NoError(t, g.MarkSource("A"))
	require.NoError(t, g.MarkTarget("B", 1))
	_, err := g.AddUndirectedEdge(a, b, 0.9)
	require.NoError(t, err)

	e := engine.New(g)
	var buf bytes.Buffer
	err = wcsp.Generate(e, &buf)
	assert.ErrorIs(t, err, wcsp.ErrNoConflictEdges)
}

func TestScore_AppliesSolutionAndReturnsGlobalScore(t *testing.T) {
	g := buildSingleConflictGraph(t)
	e := engine.New(g)
	_, err := e.ConflictEdges() // populate before scoring
	require.NoError(t, err)

	// Variable E0 (the M--T edge) oriented backward (0) should reproduce
	// the 0.42 global score, matching engine's local-search result.
	score, err := wcsp.Score(e, strings.NewReader("0\n"))
	require.NoError(t, err)
	assert.InDelta(t, 0.42, score, 1e-9)
}

func TestScore_Forward(t *testing.T) {
	g := buildSingleConflictGraph(t)
	e := engine.New(g)
	_, err := e.ConflictEdges()
	require.NoError(t, err)

	score, err := wcsp.Score(e, strings.NewReader("1\n"))
	require.NoError(t, err)
	assert.InDelta(t, 0.22, score, 1e-9)
}

func TestScore_CountMismatch(t *testing.T) {
	g := buildSingleConflictGraph(t)
	e := engine.New(g)
	_, err := e.ConflictEdges()
	require.NoError(t, err)

	_, err = wcsp.Score(e, strings.NewReader("0 1\n"))
	assert.ErrorIs(t, err, wcsp.ErrSolutionCountMismatch)
}

func TestReadSolution_RejectsBadToken(t *testing.T) {
	_, err := wcsp.ReadSolution(strings.NewReader("0 2\n"))
	assert.ErrorIs(t, err, wcsp.ErrBadSolutionToken)
}
