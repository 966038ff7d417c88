package path_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxedgeorient/meo/core"
	"github.com/maxedgeorient/meo/path"
)

func TestComparatorFor_UnknownName(t *testing.T) {
	_, err := path.ComparatorFor("bogus")
	assert.ErrorIs(t, err, path.ErrUnknownComparator)
}

func TestComparatorFor_OrdersByPathWeightDescending(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddVertex("A", 1)
	b, _ := g.AddVertex("B", 1)
	c, _ := g.AddVertex("C", 1)
	require.NoError(t, g.MarkSource("A"))
	require.NoError(t, g.MarkTarget("B", 1))
	require.NoError(t, g.MarkTarget("C", 1))

	eAB, _ := g.AddUndirectedEdge(a, b, 0.3)
	eAC, _ := g.AddUndirectedEdge(a, c, 0.9)

	pLow, err := path.NewPath(g, 0, []int{a, b}, []core.Edge{g.UndirectedEdge(eAB)})
	require.NoError(t, err)
	pHigh, err := path.NewPath(g, 1, []int{a, c}, []core.Edge{g.UndirectedEdge(eAC)})
	require.NoError(t, err)

	cmp, err := path.ComparatorFor("pathWeight")
	require.NoError(t, err)

	ps := []*path.Path{pLow, pHigh}
	sort.SliceStable(ps, func(i, j int) bool { return cmp(ps[i], ps[j]) < 0 })
	assert.Equal(t, pHigh, ps[0])
	assert.Equal(t, pLow, ps[1])
}

func TestKind_StringRoundTripsThroughParseKind(t *testing.T) {
	kinds := []path.Kind{
		path.ByPathWeight, path.ByMaxEdgeWeight, path.ByAvgEdgeWeight, path.ByMinEdgeWeight,
		path.ByMaxEdgeUse, path.ByAvgEdgeUse, path.ByMinEdgeUse,
		path.ByMaxVertexDegree, path.ByAvgVertexDegree, path.ByMinVertexDegree,
	}
	for _, k := range kinds {
		parsed, err := path.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
}
