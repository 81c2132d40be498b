// Package core defines the central Graph, Node, and Edge types used by every
// algorithm in wayfind, and provides thread-safe primitives for building and
// querying weighted transportation graphs.
//
// A Graph is built once (by a caller or an external feed converter) and then
// only read by the algorithms; edge weights may be rescaled between queries
// through the multiplier update path (see SetMultiplier), but algorithms never
// mutate the graph themselves.
//
// This file declares Node, Edge, Graph options, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrDuplicateNode - node ID already present; insertion is rejected, not overwritten.
//	ErrNodeNotFound  - operation referenced a non-existent node.
//	ErrDuplicateEdge - edge between the given pair already exists.
//	ErrEdgeNotFound  - operation referenced a non-existent edge.
package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateNode indicates an AddNode call with an ID that already exists.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateEdge indicates an AddEdge call for an already-connected pair.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Node represents a geographic location in the network
// (intersection, stop, station). Immutable once added.
type Node struct {
	// ID uniquely identifies this Node within its Graph. Caller-assigned.
	ID int64

	// Lat is the latitude in decimal degrees.
	Lat float64

	// Lon is the longitude in decimal degrees.
	Lon float64
}

// Edge represents a directed connection From→To.
//
// Weight is the static base cost. Multiplier is a time-varying factor
// supplied by an external source (traffic); the cost every algorithm uses is
// EffectiveWeight, recomputed on each read and never cached by the engine.
type Edge struct {
	// From is the source node ID.
	From int64

	// To is the destination node ID.
	To int64

	// Weight is the base cost of traversing the edge.
	Weight float64

	// Multiplier scales Weight; 1.0 means no adjustment.
	Multiplier float64

	// Closed marks the edge as impassable (incident closure, construction).
	Closed bool
}

// EffectiveWeight returns Weight × Multiplier, the cost the algorithms use.
// A closed edge reports +Inf and is therefore never traversed.
func (e Edge) EffectiveWeight() float64 {
	if e.Closed {
		return math.Inf(1)
	}

	return e.Weight * e.Multiplier
}

// reverse returns the reciprocal edge, used for undirected graphs.
func (e Edge) reverse() Edge {
	e.From, e.To = e.To, e.From

	return e
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected fixes the graph's directedness at construction
// (true = directed, false = undirected). The default is undirected.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the in-memory weighted graph used by every algorithm.
//
// In an undirected graph, adding edge (u,v) implicitly creates the reciprocal
// (v,u) with identical effective weight; weight updates keep both directions
// in sync. Node IDs are unique; duplicate insertion is rejected.
//
// All methods take mu, so independent goroutines may build and query a Graph
// concurrently; a caller needing an atomic view across several queries must
// synchronize externally.
type Graph struct {
	mu sync.RWMutex

	directed bool

	nodes     map[int64]Node
	adjacency map[int64][]Edge // node ID → outgoing edges

	// numEdges counts logical edges; the reciprocal of an undirected edge is
	// not double-counted.
	numEdges int
}

// NewGraph creates an empty Graph. By default the graph is undirected;
// pass WithDirected(true) for one-way semantics.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[int64]Node),
		adjacency: make(map[int64][]Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
