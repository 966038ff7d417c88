package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxedgeorient/meo/core"
)

func TestAddVertex_RejectsInvalidNames(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddVertex("", 1)
	assert.ErrorIs(t, err, core.ErrEmptyName)

	_, err = g.AddVertex("A_B", 1)
	assert.ErrorIs(t, err, core.ErrReservedName)

	_, err = g.AddVertex("A", 1.5)
	assert.ErrorIs(t, err, core.ErrBadNodeWeight)
}

func TestAddVertex_IsIdempotentByName(t *testing.T) {
	g := core.NewGraph()

	id1, err := g.AddVertex("A", 1)
	require.NoError(t, err)

	id2, err := g.AddVertex("A", 0.2) // weight ignored on repeat registration
	require.NoError(t, err)

	assert.Equal(t, id1, id2)
	assert.Equal(t, float64(1), g.Vertex(id1).Weight())
}

func TestAddEdge_RejectsBadWeightAndSelfLoop(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddVertex("A", 1)

	_, err := g.AddUndirectedEdge(a, a, 0.5)
	assert.ErrorIs(t, err, core.ErrSelfLoop)

	b, _ := g.AddVertex("B", 1)
	_, err = g.AddUndirectedEdge(a, b, 0)
	assert.ErrorIs(t, err, core.ErrBadWeight)

	_, err = g.AddUndirectedEdge(a, b, 1.1)
	assert.ErrorIs(t, err, core.ErrBadWeight)
}

func TestMarkSourceTarget(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddVertex("A", 1)
	b, _ := g.AddVertex("B", 1)

	require.NoError(t, g.MarkSource("A"))
	require.NoError(t, g.MarkTarget("B", 0.5))

	assert.True(t, g.Vertex(a).IsSource())
	assert.True(t, g.Vertex(b).IsTarget())
	assert.Equal(t, 0.5, g.Vertex(b).TargetWeight())

	err := g.MarkSource("nope")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestDegree_DistinguishesOrientedAndUndirected(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddVertex("A", 1)
	b, _ := g.AddVertex("B", 1)
	c, _ := g.AddVertex("C", 1)

	eid, err := g.AddUndirectedEdge(a, b, 0.5)
	require.NoError(t, err)
	_, err = g.AddDirectedEdge(a, c, 0.5)
	require.NoError(t, err)

	// Unoriented undirected edge + one directed edge leaving A.
	assert.Equal(t, 2, g.Degree(a, false, false))
	assert.Equal(t, 1, g.Degree(a, false, true))
	// The undirected edge is not yet oriented, so onlyOriented excludes it;
	// the directed edge always counts as oriented.
	assert.Equal(t, 1, g.Degree(a, true, false))

	e := g.UndirectedEdge(eid)
	require.NoError(t, e.SetOrientation(core.OrientedForward))
	g.ClearDegreeCache()

	assert.Equal(t, 2, g.Degree(a, true, false))
}

func TestUndirectedEdge_OrientationLifecycle(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddVertex("A", 1)
	b, _ := g.AddVertex("B", 1)
	eid, err := g.AddUndirectedEdge(a, b, 0.9)
	require.NoError(t, err)
	e := g.UndirectedEdge(eid)

	assert.Equal(t, core.Unoriented, e.Orientation())
	assert.False(t, e.IsFixed())
	assert.True(t, e.Satisfies(core.Forward))
	assert.True(t, e.Satisfies(core.Backward))

	require.NoError(t, e.SetOrientation(core.OrientedForward))
	assert.True(t, e.Satisfies(core.Forward))
	assert.False(t, e.Satisfies(core.Backward))

	require.NoError(t, e.Flip())
	assert.Equal(t, core.OrientedBackward, e.Orientation())

	require.NoError(t, e.Fix(core.FixedBackward))
	assert.True(t, e.IsFixed())
	assert.ErrorIs(t, e.Flip(), core.ErrAlreadyFixed)
	assert.ErrorIs(t, e.SetOrientation(core.OrientedForward), core.ErrAlreadyFixed)
}

func TestDirectedEdge_DepartDirection(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddVertex("A", 1)
	b, _ := g.AddVertex("B", 1)
	eid, err := g.AddDirectedEdge(a, b, 0.5)
	require.NoError(t, err)
	e := g.DirectedEdge(eid)

	dir, ok := e.DepartDirection(a)
	require.True(t, ok)
	assert.Equal(t, core.Forward, dir)

	_, ok = e.DepartDirection(b)
	assert.False(t, ok)
	assert.True(t, e.IsFixed())
}

func TestUndirectedEdge_ConflictCount(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddVertex("A", 1)
	b, _ := g.AddVertex("B", 1)
	eid, _ := g.AddUndirectedEdge(a, b, 0.5)
	e := g.UndirectedEdge(eid)

	e.AssociatePath(1, core.Forward)
	e.AssociatePath(2, core.Forward)
	assert.Equal(t, 0, e.ConflictCount())

	e.AssociatePath(3, core.Backward)
	assert.Equal(t, 1, e.ConflictCount())

	e.RemovePath(3)
	assert.Equal(t, 0, e.ConflictCount())
}

func TestUndirectedEdge_ConsistentUses(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddVertex("A", 1)
	b, _ := g.AddVertex("B", 1)
	eid, _ := g.AddUndirectedEdge(a, b, 0.5)
	e := g.UndirectedEdge(eid)

	e.AssociatePath(1, core.Forward)
	e.AssociatePath(2, core.Backward)
	assert.Equal(t, 2, e.ConsistentUses()) // unoriented: both count

	require.NoError(t, e.SetOrientation(core.OrientedForward))
	assert.Equal(t, 1, e.ConsistentUses())
}
