// Package mst builds minimum spanning trees over a core.Graph with either
// Kruskal's or Prim's algorithm.
//
// Both entry points are total functions: a nil or empty graph yields a
// well-formed empty Result. A disconnected graph is not an error - Kruskal
// returns a minimum spanning forest, Prim spans the root's component, and
// both report Connected == false.
//
// Self-loops and edges with non-finite effective weight (closed edges
// report +Inf) are excluded from consideration. Negative weights are valid
// for spanning trees and are kept.
//
// Verify re-checks a Result against its graph; LowerBound gives a cheap
// weight bound without building a tree.
package mst

import (
	"math"

	"github.com/vkarasov/wayfind/core"
)

// Algorithm names reported in Result.Algorithm.
const (
	AlgorithmKruskal = "kruskal"
	AlgorithmPrim    = "prim"
)

// Result carries the tree (or forest) and per-run counters of one MST build.
type Result struct {
	// Algorithm is AlgorithmKruskal or AlgorithmPrim.
	Algorithm string

	// Edges lists the selected edges. For Kruskal each edge is oriented
	// From < To; for Prim each edge points from the tree into the frontier.
	Edges []core.Edge

	// TotalWeight is the sum of effective weights over Edges.
	TotalWeight float64

	// NodesInMST counts nodes spanned: for Kruskal the distinct endpoints
	// of the selected edges, for Prim every node absorbed into the tree
	// including the root.
	NodesInMST int

	// Connected reports whether the result spans the whole graph. An empty
	// graph is trivially connected.
	Connected bool

	// EdgesConsidered counts candidate edges examined.
	EdgesConsidered int

	// UnionFindOps counts union-find operations (Kruskal only).
	UnionFindOps int

	// HeapOps counts pushes and pops on the frontier heap (Prim only).
	HeapOps int
}

// Options configures a Prim run.
type Options struct {
	// Root is the starting node when HasRoot is set. Otherwise Prim starts
	// at a node of minimum degree (smallest ID on ties).
	Root    int64
	HasRoot bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: automatic root choice.
func DefaultOptions() Options {
	return Options{}
}

// WithRoot pins the Prim starting node. An unknown root yields an empty
// Result at run time.
func WithRoot(id int64) Option {
	return func(o *Options) {
		o.Root = id
		o.HasRoot = true
	}
}

// usable reports whether an edge may enter a spanning tree.
func usable(e core.Edge) bool {
	if e.From == e.To {
		return false
	}

	return !math.IsInf(e.EffectiveWeight(), 0) && !math.IsNaN(e.EffectiveWeight())
}
