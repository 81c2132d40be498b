package mst

import (
	"sort"

	"github.com/vkarasov/wayfind/core"
	"github.com/vkarasov/wayfind/unionfind"
)

// Kruskal builds a minimum spanning tree by sorting all edges by effective
// weight and joining components through a union-find structure.
//
// On a disconnected graph the result is a minimum spanning forest and
// Connected is false. Time complexity: O(E log E). Memory: O(V + E).
func Kruskal(g *core.Graph) *Result {
	res := &Result{Algorithm: AlgorithmKruskal}
	if g == nil || g.NumNodes() == 0 {
		res.Connected = true

		return res
	}

	candidates := collectEdges(g)
	sort.SliceStable(candidates, func(i, j int) bool {
		wi, wj := candidates[i].EffectiveWeight(), candidates[j].EffectiveWeight()
		if wi != wj {
			return wi < wj
		}
		if candidates[i].From != candidates[j].From {
			return candidates[i].From < candidates[j].From
		}

		return candidates[i].To < candidates[j].To
	})

	uf := unionfind.New()
	spanned := make(map[int64]bool)
	need := g.NumNodes() - 1

	for _, e := range candidates {
		if len(res.Edges) == need {
			break
		}
		res.EdgesConsidered++

		if !uf.Union(e.From, e.To) {
			continue // would close a cycle
		}
		res.Edges = append(res.Edges, e)
		res.TotalWeight += e.EffectiveWeight()
		spanned[e.From] = true
		spanned[e.To] = true
	}

	res.UnionFindOps = uf.OperationCount()
	res.NodesInMST = len(spanned)
	res.Connected = len(res.Edges) == need

	return res
}

// collectEdges gathers each logical edge once, oriented From < To, dropping
// self-loops and non-finite weights.
func collectEdges(g *core.Graph) []core.Edge {
	var out []core.Edge
	for _, e := range g.Edges() {
		if !usable(e) {
			continue
		}
		if e.From > e.To {
			e.From, e.To = e.To, e.From
		}
		out = append(out, e)
	}

	// Undirected adjacency lists the reciprocal too; directed graphs may
	// carry antiparallel pairs of different weight. Sorting by weight last
	// keeps the lighter duplicate.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}

		return out[i].EffectiveWeight() < out[j].EffectiveWeight()
	})
	dedup := out[:0]
	for i, e := range out {
		if i > 0 && e.From == dedup[len(dedup)-1].From && e.To == dedup[len(dedup)-1].To {
			continue
		}
		dedup = append(dedup, e)
	}

	return dedup
}
