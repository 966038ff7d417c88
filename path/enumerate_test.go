package path_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxedgeorient/meo/core"
	"github.com/maxedgeorient/meo/path"
)

func TestFindPaths_Trivial(t *testing.T) {
	g, _, _ := buildTrivialGraph(t)

	paths, err := path.FindPaths(g, 5)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.InDelta(t, 0.9, paths[0].MaxWeight(), 1e-9)
	assert.Equal(t, []string{"A", "B"}, paths[0].VertexNames())
}

func TestFindPaths_DirectConflict(t *testing.T) {
	// Scenario S2: A,D sources; C,B targets; A-B(0.8) B-C(0.7) D-B(0.6).
	g := core.NewGraph()
	a, _ := g.AddVertex("A", 1)
	b, _ := g.AddVertex("B", 1)
	c, _ := g.AddVertex("C", 1)
	d, _ := g.AddVertex("D", 1)
	require.NoError(t, g.MarkSource("A"))
	require.NoError(t, g.MarkSource("D"))
	require.NoError(t, g.MarkTarget("C", 1))
	require.NoError(t, g.MarkTarget("B", 1))

	_, err := g.AddUndirectedEdge(a, b, 0.8)
	require.NoError(t, err)
	_, err = g.AddUndirectedEdge(b, c, 0.7)
	require.NoError(t, err)
	_, err = g.AddUndirectedEdge(d, b, 0.6)
	require.NoError(t, err)

	paths, err := path.FindPaths(g, 5)
	require.NoError(t, err)

	total := 0.0
	for _, p := range paths {
		total += p.Weight()
	}
	assert.InDelta(t, 0.8*0.7+0.6, total, 1e-9)
}

func TestFindPaths_RespectsMaxLength(t *testing.T) {
	// Scenario S6: only a length-6 path connects source to target.
	g := core.NewGraph()
	ids := make([]int, 7)
	for i := range ids {
		id, err := g.AddVertex(string(rune('A'+i)), 1)
		require.NoError(t, err)
		ids[i] = id
	}
	require.NoError(t, g.MarkSource("A"))
	require.NoError(t, g.MarkTarget(string(rune('A'+6)), 1))
	for i := 0; i < 6; i++ {
		_, err := g.AddUndirectedEdge(ids[i], ids[i+1], 0.9)
		require.NoError(t, err)
	}

	paths, err := path.FindPaths(g, 5)
	require.NoError(t, err)
	assert.Empty(t, paths)

	paths, err = path.FindPaths(g, 6)
	require.NoError(t, err)
	require.Len(t, paths, 1)
}

func TestFindPaths_DiscardsInfeasibleFixedEdge(t *testing.T) {
	g, a, b := buildTrivialGraph(t)
	e := g.UndirectedEdge(0)
	require.NoError(t, e.Fix(core.FixedBackward)) // B->A only

	paths, err := path.FindPaths(g, 5)
	require.NoError(t, err)
	assert.Empty(t, paths)
	_ = a
	_ = b
}

func TestFindPaths_IsDeterministic(t *testing.T) {
	g, _, _ := buildTrivialGraph(t)
	first, err := path.FindPaths(g, 5)
	require.NoError(t, err)
	second, err := path.FindPaths(g, 5)
	require.NoError(t, err)

	namesOf := func(ps []*path.Path) [][]string {
		out := make([][]string, len(ps))
		for i, p := range ps {
			out[i] = p.VertexNames()
		}
		sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
		return out
	}
	assert.Equal(t, namesOf(first), namesOf(second))
}
