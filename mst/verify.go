package mst

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/vkarasov/wayfind/core"
	"github.com/vkarasov/wayfind/unionfind"
)

var (
	// ErrUnknownEdge is returned by Verify when a result edge does not
	// exist in the graph in either direction.
	ErrUnknownEdge = errors.New("mst: result edge not present in graph")

	// ErrWeightMismatch is returned by Verify when a result edge's weight
	// disagrees with the graph's current effective weight.
	ErrWeightMismatch = errors.New("mst: result edge weight differs from graph")

	// ErrCycle is returned by Verify when the result edges contain a cycle.
	ErrCycle = errors.New("mst: result edges form a cycle")

	// ErrEdgeCount is returned by Verify when a result marked Connected
	// does not have exactly NumNodes-1 edges.
	ErrEdgeCount = errors.New("mst: connected result has wrong edge count")
)

const weightTolerance = 1e-9

// Verify re-checks a Result against the graph it was built from: every
// selected edge must exist (in either direction) at its recorded effective
// weight, the edge set must be acyclic, and a Connected result must span
// exactly NumNodes-1 edges. Returns nil when the result is consistent.
//
// Verify inspects the graph's current state; mutating weights or closures
// after the build legitimately fails verification.
func Verify(r *Result, g *core.Graph) error {
	if r == nil || g == nil {
		return nil
	}

	uf := unionfind.New()
	for _, e := range r.Edges {
		w, ok := lookupWeight(g, e.From, e.To)
		if !ok {
			return fmt.Errorf("%w: %d-%d", ErrUnknownEdge, e.From, e.To)
		}
		if math.Abs(w-e.EffectiveWeight()) > weightTolerance {
			return fmt.Errorf("%w: %d-%d recorded %g, graph has %g",
				ErrWeightMismatch, e.From, e.To, e.EffectiveWeight(), w)
		}
		if !uf.Union(e.From, e.To) {
			return fmt.Errorf("%w: closing edge %d-%d", ErrCycle, e.From, e.To)
		}
	}

	if r.Connected && len(r.Edges) != g.NumNodes()-1 && g.NumNodes() > 0 {
		return fmt.Errorf("%w: %d edges for %d nodes", ErrEdgeCount, len(r.Edges), g.NumNodes())
	}

	return nil
}

// lookupWeight finds the effective weight of an edge in either direction.
func lookupWeight(g *core.Graph, from, to int64) (float64, bool) {
	if e, ok := g.Edge(from, to); ok {
		return e.EffectiveWeight(), true
	}
	if e, ok := g.Edge(to, from); ok {
		return e.EffectiveWeight(), true
	}

	return 0, false
}

// LowerBound returns a cheap lower bound on the weight of any spanning tree:
// the sum of the NumNodes-1 lightest usable edge weights. Every spanning
// tree has exactly NumNodes-1 edges, none lighter than these.
//
// Returns 0 for nil graphs and graphs with at most one node. The selected
// edges need not be connected, so the bound is usually loose.
// Time complexity: O(E log E).
func LowerBound(g *core.Graph) float64 {
	if g == nil || g.NumNodes() <= 1 {
		return 0
	}

	weights := make([]float64, 0, g.NumEdges())
	for _, e := range collectEdges(g) {
		weights = append(weights, e.EffectiveWeight())
	}
	sort.Float64s(weights)

	need := g.NumNodes() - 1
	if need > len(weights) {
		need = len(weights)
	}

	var sum float64
	for _, w := range weights[:need] {
		sum += w
	}

	return sum
}
