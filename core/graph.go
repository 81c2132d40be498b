package core

import (
	"fmt"
	"math"
	"sort"
)

// AddNode inserts a node with the given ID and coordinates.
// Returns ErrDuplicateNode if the ID is already present; the existing node is
// never overwritten.
// Complexity: O(1)
func (g *Graph) AddNode(id int64, lat, lon float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateNode, id)
	}
	g.nodes[id] = Node{ID: id, Lat: lat, Lon: lon}

	return nil
}

// AddEdge inserts an edge from→to with the given base weight and a neutral
// multiplier. Both endpoints must already exist. On an undirected graph the
// reciprocal edge is created implicitly.
// Returns ErrNodeNotFound if either endpoint is missing,
// ErrDuplicateEdge if the pair is already connected.
// Complexity: O(degree(from))
func (g *Graph) AddEdge(from, to int64, weight float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[from]; !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, to)
	}
	for _, e := range g.adjacency[from] {
		if e.To == to {
			return fmt.Errorf("%w: %d→%d", ErrDuplicateEdge, from, to)
		}
	}

	edge := Edge{From: from, To: to, Weight: weight, Multiplier: 1.0}
	g.adjacency[from] = append(g.adjacency[from], edge)
	g.numEdges++

	if !g.directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], edge.reverse())
	}

	return nil
}

// HasNode reports whether the given node ID exists.
func (g *Graph) HasNode(id int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// HasEdge reports whether an edge from→to exists.
func (g *Graph) HasEdge(from, to int64) bool {
	_, ok := g.Edge(from, to)

	return ok
}

// Node returns a copy of the node with the given ID.
func (g *Graph) Node(id int64) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]

	return n, ok
}

// Edge returns a copy of the edge from→to.
func (g *Graph) Edge(from, to int64) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.adjacency[from] {
		if e.To == to {
			return e, true
		}
	}

	return Edge{}, false
}

// Neighbors returns copies of the outgoing edges of id, with multipliers as
// of call time — effective weights are resolved fresh on every traversal.
// An unknown ID yields an empty slice, never an error; use HasNode to
// distinguish "no neighbors" from "unknown node".
// Complexity: O(degree(id))
func (g *Graph) Neighbors(id int64) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj := g.adjacency[id]
	out := make([]Edge, len(adj))
	copy(out, adj)

	return out
}

// Degree returns the number of outgoing edges of id (0 for unknown IDs).
func (g *Graph) Degree(id int64) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}

// NodeIDs returns all node IDs in ascending order.
// Complexity: O(V log V)
func (g *Graph) NodeIDs() []int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int64, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Edges returns copies of every adjacency record, grouped by source node in
// ascending ID order. On an undirected graph each edge appears twice, once
// per direction.
// Complexity: O(V log V + E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	ids := make([]int64, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.numEdges)
	for _, id := range ids {
		out = append(out, g.adjacency[id]...)
	}

	return out
}

// NumNodes returns the node count.
func (g *Graph) NumNodes() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// NumEdges returns the logical edge count (reciprocal edges of an undirected
// graph count once).
func (g *Graph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.numEdges
}

// Directed reports the directedness fixed at construction.
func (g *Graph) Directed() bool { return g.directed }

// SetMultiplier updates the dynamic weight multiplier of edge from→to.
// This is the traffic update path: an external component rescales edges
// between queries. On an undirected graph the reciprocal edge is kept in
// sync so both directions report the same effective weight.
// Returns ErrEdgeNotFound if the edge does not exist.
func (g *Graph) SetMultiplier(from, to int64, multiplier float64) error {
	return g.updateEdge(from, to, func(e *Edge) { e.Multiplier = multiplier })
}

// SetBaseWeight replaces the base weight of edge from→to (and its reciprocal
// on undirected graphs).
func (g *Graph) SetBaseWeight(from, to int64, weight float64) error {
	return g.updateEdge(from, to, func(e *Edge) { e.Weight = weight })
}

// SetClosed marks edge from→to (and its reciprocal on undirected graphs) as
// impassable or reopens it. A closed edge reports an infinite effective
// weight, so no algorithm will traverse it.
func (g *Graph) SetClosed(from, to int64, closed bool) error {
	return g.updateEdge(from, to, func(e *Edge) { e.Closed = closed })
}

// updateEdge applies fn to the stored edge from→to, and to the reciprocal on
// undirected graphs.
func (g *Graph) updateEdge(from, to int64, fn func(*Edge)) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.applyEdge(from, to, fn) {
		return fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, from, to)
	}
	if !g.directed && from != to {
		g.applyEdge(to, from, fn)
	}

	return nil
}

func (g *Graph) applyEdge(from, to int64, fn func(*Edge)) bool {
	adj := g.adjacency[from]
	for i := range adj {
		if adj[i].To == to {
			fn(&adj[i])

			return true
		}
	}

	return false
}

// Stats summarizes the graph's shape.
type Stats struct {
	NumNodes  int
	NumEdges  int
	Density   float64 // edges / max possible edges
	MinDegree int
	MaxDegree int
	AvgDegree float64
}

// Statistics computes node/edge counts, density, and degree spread.
// Complexity: O(V)
func (g *Graph) Statistics() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Stats{NumNodes: len(g.nodes), NumEdges: g.numEdges}
	if s.NumNodes == 0 {
		return s
	}

	s.MinDegree = math.MaxInt
	total := 0
	for id := range g.nodes {
		d := len(g.adjacency[id])
		total += d
		if d < s.MinDegree {
			s.MinDegree = d
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}
	s.AvgDegree = float64(total) / float64(s.NumNodes)

	if s.NumNodes > 1 {
		maxEdges := s.NumNodes * (s.NumNodes - 1)
		if !g.directed {
			maxEdges /= 2
		}
		s.Density = float64(g.numEdges) / float64(maxEdges)
	}

	return s
}
