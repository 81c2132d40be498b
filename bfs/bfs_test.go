package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkarasov/wayfind/bfs"
	"github.com/vkarasov/wayfind/core"
)

// buildTwoBranch creates the 6-node two-branch graph
//
//	1 → 2 → 4 → 6
//	  ↘ 3 → 5
//
// where node 6 sits at depth 3.
func buildTwoBranch(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for id := int64(1); id <= 6; id++ {
		require.NoError(t, g.AddNode(id, 0, 0))
	}
	for _, e := range [][2]int64{{1, 2}, {1, 3}, {2, 4}, {3, 5}, {4, 6}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1.0))
	}

	return g
}

func TestBFS_HopDistances(t *testing.T) {
	g := buildTwoBranch(t)
	res := bfs.BFS(g, 1)

	want := map[int64]int{1: 0, 2: 1, 3: 1, 4: 2, 5: 2, 6: 3}
	for id, hops := range want {
		d, ok := res.HopDistance(id)
		require.True(t, ok, "node %d must be reachable", id)
		assert.Equal(t, hops, d, "node %d", id)
	}
	assert.Equal(t, 6, res.NodesVisited)
}

func TestBFS_VisitOrderIsLevelByLevel(t *testing.T) {
	g := buildTwoBranch(t)
	res := bfs.BFS(g, 1)

	require.Len(t, res.Order, 6)
	assert.Equal(t, int64(1), res.Order[0])

	// Every node appears after its parent and depths never decrease.
	for i := 1; i < len(res.Order); i++ {
		assert.GreaterOrEqual(t, res.Dist[res.Order[i]], res.Dist[res.Order[i-1]])
	}
}

func TestBFS_PathReconstruction(t *testing.T) {
	g := buildTwoBranch(t)
	res := bfs.BFS(g, 1)

	assert.Equal(t, []int64{1, 2, 4, 6}, res.Path(6))
	assert.Equal(t, []int64{1}, res.Path(1))
}

func TestBFS_UnreachableIsDataNotError(t *testing.T) {
	g := buildTwoBranch(t)
	require.NoError(t, g.AddNode(7, 0, 0)) // isolated

	res := bfs.BFS(g, 1)
	assert.False(t, res.Reachable(7))
	assert.Nil(t, res.Path(7))

	_, ok := res.HopDistance(7)
	assert.False(t, ok)
}

func TestBFS_MissingStartYieldsEmptyResult(t *testing.T) {
	g := buildTwoBranch(t)

	res := bfs.BFS(g, 99)
	assert.Zero(t, res.NodesVisited)
	assert.Empty(t, res.Order)
	assert.False(t, res.Reachable(1))

	// Nil graph follows the same total-function contract.
	res = bfs.BFS(nil, 1)
	assert.Zero(t, res.NodesVisited)
}

func TestBFS_UndirectedReachesBothWays(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(1, 0, 0))
	require.NoError(t, g.AddNode(2, 0, 0))
	require.NoError(t, g.AddEdge(1, 2, 1.0))

	res := bfs.BFS(g, 2)
	assert.True(t, res.Reachable(1))
	assert.Equal(t, []int64{2, 1}, res.Component())
}

func TestBFS_CountersPopulated(t *testing.T) {
	g := buildTwoBranch(t)
	res := bfs.BFS(g, 1)

	// 6 enqueues + 6 dequeues.
	assert.Equal(t, 12, res.QueueOps)
	assert.GreaterOrEqual(t, res.MaxQueueLen, 2)
}
