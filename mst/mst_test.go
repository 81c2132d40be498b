package mst_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkarasov/wayfind/core"
	"github.com/vkarasov/wayfind/mst"
)

// buildRoadNetwork creates the undirected 6-node reference network
//
//	(1-2,3) (1-3,2) (2-4,1) (3-4,4) (3-5,1) (4-6,2) (5-6,1)
//
// whose minimum spanning tree weighs 7 over 5 edges.
func buildRoadNetwork(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for id := int64(1); id <= 6; id++ {
		require.NoError(t, g.AddNode(id, 0, 0))
	}
	edges := []struct {
		from, to int64
		w        float64
	}{
		{1, 2, 3}, {1, 3, 2}, {2, 4, 1}, {3, 4, 4}, {3, 5, 1}, {4, 6, 2}, {5, 6, 1},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.from, e.to, e.w))
	}

	return g
}

// buildRandom creates a connected undirected graph: a random spanning chain
// plus extra random edges, with integer weights in [1,20].
func buildRandom(t *testing.T, r *rand.Rand, n int64) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for id := int64(0); id < n; id++ {
		require.NoError(t, g.AddNode(id, 0, 0))
	}
	for id := int64(1); id < n; id++ {
		require.NoError(t, g.AddEdge(id-1, id, 1+float64(r.Intn(20))))
	}
	for k := int64(0); k < n; k++ {
		a, b := r.Int63n(n), r.Int63n(n)
		if a == b || g.HasEdge(a, b) {
			continue
		}
		require.NoError(t, g.AddEdge(a, b, 1+float64(r.Intn(20))))
	}

	return g
}

func TestKruskal_ReferenceNetwork(t *testing.T) {
	g := buildRoadNetwork(t)
	res := mst.Kruskal(g)

	assert.Equal(t, mst.AlgorithmKruskal, res.Algorithm)
	assert.True(t, res.Connected)
	assert.Len(t, res.Edges, 5)
	assert.InDelta(t, 7.0, res.TotalWeight, 1e-12)
	assert.Equal(t, 6, res.NodesInMST)
	assert.NoError(t, mst.Verify(res, g))
}

func TestPrim_ReferenceNetwork(t *testing.T) {
	g := buildRoadNetwork(t)
	res := mst.Prim(g)

	assert.Equal(t, mst.AlgorithmPrim, res.Algorithm)
	assert.True(t, res.Connected)
	assert.Len(t, res.Edges, 5)
	assert.InDelta(t, 7.0, res.TotalWeight, 1e-12)
	assert.Equal(t, 6, res.NodesInMST)
	assert.NoError(t, mst.Verify(res, g))
}

func TestKruskalAndPrim_AgreeOnRandomGraphs(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for trial := 0; trial < 20; trial++ {
		g := buildRandom(t, r, 12)

		k := mst.Kruskal(g)
		p := mst.Prim(g)

		require.True(t, k.Connected, "trial %d", trial)
		require.True(t, p.Connected, "trial %d", trial)
		assert.InDelta(t, k.TotalWeight, p.TotalWeight, 1e-9, "trial %d", trial)
		assert.NoError(t, mst.Verify(k, g), "trial %d", trial)
		assert.NoError(t, mst.Verify(p, g), "trial %d", trial)
		assert.LessOrEqual(t, mst.LowerBound(g), k.TotalWeight+1e-9, "trial %d", trial)
	}
}

func TestMST_DisconnectedIsDataNotError(t *testing.T) {
	g := core.NewGraph()
	for id := int64(1); id <= 5; id++ {
		require.NoError(t, g.AddNode(id, 0, 0))
	}
	// Two components: {1,2,3} and {4,5}.
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 2))
	require.NoError(t, g.AddEdge(4, 5, 3))

	k := mst.Kruskal(g)
	assert.False(t, k.Connected)
	assert.Len(t, k.Edges, 3) // spanning forest: (5 nodes) - (2 components)
	assert.InDelta(t, 6.0, k.TotalWeight, 1e-12)
	assert.NoError(t, mst.Verify(k, g))

	p := mst.Prim(g, mst.WithRoot(1))
	assert.False(t, p.Connected)
	assert.Equal(t, 3, p.NodesInMST) // root's component only
	assert.InDelta(t, 3.0, p.TotalWeight, 1e-12)
}

func TestMST_DegenerateGraphs(t *testing.T) {
	assert.True(t, mst.Kruskal(nil).Connected)
	assert.True(t, mst.Prim(nil).Connected)

	empty := core.NewGraph()
	assert.True(t, mst.Kruskal(empty).Connected)
	assert.True(t, mst.Prim(empty).Connected)

	single := core.NewGraph()
	require.NoError(t, single.AddNode(1, 0, 0))
	k := mst.Kruskal(single)
	assert.True(t, k.Connected)
	assert.Empty(t, k.Edges)
	p := mst.Prim(single)
	assert.True(t, p.Connected)
	assert.Equal(t, 1, p.NodesInMST)
}

func TestPrim_UnknownRoot(t *testing.T) {
	g := buildRoadNetwork(t)
	res := mst.Prim(g, mst.WithRoot(99))

	assert.False(t, res.Connected)
	assert.Empty(t, res.Edges)
	assert.Zero(t, res.NodesInMST)
}

func TestMST_ClosedEdgeExcluded(t *testing.T) {
	g := buildRoadNetwork(t)

	// Closing 2-4 forces the heavier 1-2 edge into the tree.
	require.NoError(t, g.SetClosed(2, 4, true))

	for _, res := range []*mst.Result{mst.Kruskal(g), mst.Prim(g)} {
		require.True(t, res.Connected, res.Algorithm)
		assert.InDelta(t, 9.0, res.TotalWeight, 1e-12, res.Algorithm)
		assert.NoError(t, mst.Verify(res, g), res.Algorithm)
	}
}

func TestMST_MultiplierShiftsSelection(t *testing.T) {
	g := buildRoadNetwork(t)

	// Congestion on 2-4 (1 → 3.5) makes 1-2 the cheaper way to reach 2.
	require.NoError(t, g.SetMultiplier(2, 4, 3.5))

	k := mst.Kruskal(g)
	require.True(t, k.Connected)
	assert.InDelta(t, 9.0, k.TotalWeight, 1e-12)
	assert.NoError(t, mst.Verify(k, g))
}

func TestVerify_DetectsTampering(t *testing.T) {
	g := buildRoadNetwork(t)
	res := mst.Kruskal(g)
	require.NoError(t, mst.Verify(res, g))

	// Weight drift after the build.
	require.NoError(t, g.SetMultiplier(2, 4, 2.0))
	assert.ErrorIs(t, mst.Verify(res, g), mst.ErrWeightMismatch)
}

func TestVerify_DetectsCycle(t *testing.T) {
	g := buildRoadNetwork(t)
	bogus := &mst.Result{
		Algorithm: mst.AlgorithmKruskal,
		Edges: []core.Edge{
			{From: 1, To: 2, Weight: 3, Multiplier: 1},
			{From: 1, To: 3, Weight: 2, Multiplier: 1},
			{From: 3, To: 4, Weight: 4, Multiplier: 1},
			{From: 2, To: 4, Weight: 1, Multiplier: 1},
		},
	}

	assert.ErrorIs(t, mst.Verify(bogus, g), mst.ErrCycle)
}

func TestVerify_DetectsUnknownEdge(t *testing.T) {
	g := buildRoadNetwork(t)
	bogus := &mst.Result{
		Algorithm: mst.AlgorithmPrim,
		Edges:     []core.Edge{{From: 1, To: 6, Weight: 1, Multiplier: 1}},
	}

	assert.ErrorIs(t, mst.Verify(bogus, g), mst.ErrUnknownEdge)
}

func TestVerify_DetectsEdgeCount(t *testing.T) {
	g := buildRoadNetwork(t)
	res := mst.Kruskal(g)
	res.Edges = res.Edges[:3] // drop two edges but keep the Connected claim

	assert.ErrorIs(t, mst.Verify(res, g), mst.ErrEdgeCount)
}

func TestLowerBound_ReferenceNetwork(t *testing.T) {
	g := buildRoadNetwork(t)

	// Five lightest of the seven weights: 1+1+1+2+2.
	assert.InDelta(t, 7.0, mst.LowerBound(g), 1e-12)
	assert.LessOrEqual(t, mst.LowerBound(g), mst.Kruskal(g).TotalWeight)

	assert.Zero(t, mst.LowerBound(nil))
	assert.Zero(t, mst.LowerBound(core.NewGraph()))
}

func TestMST_CountersPopulated(t *testing.T) {
	g := buildRoadNetwork(t)

	k := mst.Kruskal(g)
	assert.Positive(t, k.EdgesConsidered)
	assert.Positive(t, k.UnionFindOps)
	assert.Zero(t, k.HeapOps)

	p := mst.Prim(g)
	assert.Positive(t, p.EdgesConsidered)
	assert.Positive(t, p.HeapOps)
	assert.Zero(t, p.UnionFindOps)
}
