package mst

import (
	"github.com/vkarasov/wayfind/core"
	"github.com/vkarasov/wayfind/minheap"
)

// frontierEdge is a heap entry: an edge from the partial tree to a candidate
// node, ordered by effective weight with node IDs breaking ties.
type frontierEdge struct {
	w        float64
	from, to int64
}

func frontierLess(a, b frontierEdge) bool {
	if a.w != b.w {
		return a.w < b.w
	}
	if a.from != b.from {
		return a.from < b.from
	}

	return a.to < b.to
}

// Prim grows a minimum spanning tree outward from a root node, keeping the
// frontier in a binary heap.
//
// Without WithRoot the search starts at a node of minimum degree (smallest
// ID on ties), where the frontier stays thinnest. On a disconnected graph
// the tree covers the root's component only and Connected is false.
//
// Time complexity: O(E log E). Memory: O(V + E).
func Prim(g *core.Graph, opts ...Option) *Result {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	res := &Result{Algorithm: AlgorithmPrim}
	if g == nil || g.NumNodes() == 0 {
		res.Connected = true

		return res
	}

	root := o.Root
	if !o.HasRoot {
		root = minDegreeNode(g)
	}
	if !g.HasNode(root) {
		return res
	}

	inTree := make(map[int64]bool, g.NumNodes())
	pq := minheap.New[frontierEdge](frontierLess)

	absorb := func(id int64) {
		inTree[id] = true
		res.NodesInMST++
		for _, e := range g.Neighbors(id) {
			if !usable(e) || inTree[e.To] {
				continue
			}
			pq.Push(frontierEdge{w: e.EffectiveWeight(), from: id, to: e.To})
			res.HeapOps++
		}
	}
	absorb(root)

	for !pq.Empty() {
		fe, err := pq.Pop()
		if err != nil {
			break
		}
		res.HeapOps++
		res.EdgesConsidered++

		if inTree[fe.to] {
			continue // both endpoints already spanned
		}

		res.Edges = append(res.Edges, core.Edge{From: fe.from, To: fe.to, Weight: fe.w, Multiplier: 1})
		res.TotalWeight += fe.w
		absorb(fe.to)
	}

	res.Connected = res.NodesInMST == g.NumNodes()

	return res
}

// minDegreeNode returns the node with the fewest incident edges, preferring
// the smallest ID on ties. NodeIDs is sorted, so the scan is deterministic.
func minDegreeNode(g *core.Graph) int64 {
	ids := g.NodeIDs()
	best := ids[0]
	bestDeg := g.Degree(best)
	for _, id := range ids[1:] {
		if d := g.Degree(id); d < bestDeg {
			best, bestDeg = id, d
		}
	}

	return best
}
