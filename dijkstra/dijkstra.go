// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm over non-negative effective edge weights.
//
// The search pops the minimum-distance node from an indexed min-heap,
// discards stale entries (popped distance worse than the recorded best — the
// load-bearing check of the lazy-deletion protocol), and relaxes outgoing
// edges. Improvements to nodes already in the heap go through a true
// decrease-key; if the handle has gone stale a fresh entry is pushed and the
// obsolete one is skipped at pop time.
//
// Negative effective weights are silently skipped during relaxation and
// surfaced only through the NegativeEdgesSkipped counter. This is a
// documented policy, not an error: distances over the remaining non-negative
// edges stay valid. Closed edges report +Inf and are never relaxed.
//
// Every call is total: an unknown source yields a well-formed empty Result.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V) plus O(E) worst-case heap entries under lazy deletion.
package dijkstra

import (
	"errors"
	"math"

	"github.com/vkarasov/wayfind/core"
	"github.com/vkarasov/wayfind/minheap"
)

// nodeState tracks where a node stands in the search.
type nodeState uint8

const (
	stateUnvisited nodeState = iota
	stateInQueue
	stateVisited
)

// Options configures a Dijkstra run.
type Options struct {
	// Target enables the bounded variant: the search terminates as soon as
	// Target is popped, producing a possibly-partial result valid for Target
	// and every node finalized before it.
	Target    int64
	HasTarget bool
}

// Option mutates Options.
type Option func(*Options)

// WithTarget bounds the search to terminate once target is finalized.
func WithTarget(target int64) Option {
	return func(o *Options) {
		o.Target = target
		o.HasTarget = true
	}
}

// Result holds the shortest-path answer plus per-run diagnostic counters.
// It is a fresh value per call and owns no reference into the graph.
type Result struct {
	// Source is the node the search started from.
	Source int64

	// Dist maps each discovered node to its best-known distance from Source.
	// Absent means unreachable; use Distance/Reachable rather than reading a
	// sentinel out of the map.
	Dist map[int64]float64

	// Parent maps each discovered node (except Source) to its predecessor on
	// one shortest path.
	Parent map[int64]int64

	// NodesProcessed counts nodes finalized (popped and not stale).
	NodesProcessed int

	// HeapOps counts pushes and pops.
	HeapOps int

	// MaxHeapLen is the high-water mark of the queue.
	MaxHeapLen int

	// Relaxations counts edges examined during relaxation.
	Relaxations int

	// DecreaseKeys counts successful in-place key decreases.
	DecreaseKeys int

	// StaleInserts counts fallback fresh inserts after a stale handle.
	StaleInserts int

	// NegativeEdgesSkipped counts edges excluded by the negative-weight
	// policy.
	NegativeEdgesSkipped int

	state map[int64]nodeState
}

// distNode is the heap payload: a node and its tentative distance.
// Ties break on node ID so heap order is deterministic.
type distNode struct {
	dist float64
	id   int64
}

func distLess(a, b distNode) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}

	return a.id < b.id
}

// Dijkstra computes shortest distances from source to all reachable nodes of
// g, or — with WithTarget — to the given target only.
func Dijkstra(g *core.Graph, source int64, opts ...Option) *Result {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	res := &Result{
		Source: source,
		Dist:   make(map[int64]float64),
		Parent: make(map[int64]int64),
		state:  make(map[int64]nodeState),
	}
	if g == nil || !g.HasNode(source) {
		return res
	}
	if o.HasTarget && !g.HasNode(o.Target) {
		return res
	}

	pq := minheap.New(distLess)
	handles := make(map[int64]minheap.Handle)

	res.Dist[source] = 0
	res.state[source] = stateInQueue
	handles[source] = pq.Push(distNode{dist: 0, id: source})
	res.HeapOps++
	res.MaxHeapLen = 1

	for !pq.Empty() {
		item, err := pq.Pop()
		if err != nil {
			break // unreachable: loop guard checked Empty
		}
		res.HeapOps++
		u, du := item.id, item.dist

		// Stale entry: a better distance was recorded after this entry was
		// pushed. Skip it without counting the node as processed.
		if best, ok := res.Dist[u]; !ok || du > best {
			continue
		}
		if res.state[u] == stateVisited {
			continue
		}
		res.state[u] = stateVisited
		res.NodesProcessed++

		if o.HasTarget && u == o.Target {
			break
		}

		res.relax(g, pq, handles, u, du)
	}

	return res
}

// relax examines each outgoing edge of u and records improvements.
func (r *Result) relax(g *core.Graph, pq *minheap.Heap[distNode], handles map[int64]minheap.Handle, u int64, du float64) {
	for _, e := range g.Neighbors(u) {
		r.Relaxations++

		w := e.EffectiveWeight()
		if w < 0 {
			// Documented policy: negative edges are excluded, not fatal.
			r.NegativeEdgesSkipped++

			continue
		}

		v := e.To
		newDist := du + w // +Inf for closed edges, never an improvement

		best, seen := r.Dist[v]
		if !seen {
			best = math.Inf(1)
		}
		if newDist >= best {
			continue
		}

		r.Dist[v] = newDist
		r.Parent[v] = u

		switch r.state[v] {
		case stateUnvisited:
			r.state[v] = stateInQueue
			handles[v] = pq.Push(distNode{dist: newDist, id: v})
			r.HeapOps++
			if pq.Len() > r.MaxHeapLen {
				r.MaxHeapLen = pq.Len()
			}
		case stateInQueue:
			err := pq.DecreaseKey(handles[v], distNode{dist: newDist, id: v})
			switch {
			case err == nil:
				r.DecreaseKeys++
			case errors.Is(err, minheap.ErrStaleHandle):
				// Lazy deletion: push a fresh entry; the obsolete one is
				// discarded by the stale check at pop time.
				handles[v] = pq.Push(distNode{dist: newDist, id: v})
				r.HeapOps++
				r.StaleInserts++
			}
		case stateVisited:
			// Unreachable with non-negative weights: a finalized node
			// cannot be improved. Left as a case for exhaustiveness.
		}
	}
}

// Distance returns the shortest distance from Source to target,
// +Inf when target is unreachable.
func (r *Result) Distance(target int64) float64 {
	if d, ok := r.Dist[target]; ok {
		return d
	}

	return math.Inf(1)
}

// Reachable reports whether target was reached.
func (r *Result) Reachable(target int64) bool {
	d, ok := r.Dist[target]

	return ok && !math.IsInf(d, 1)
}

// Path reconstructs one shortest path from Source to target as an ordered
// node-ID sequence. Returns an empty slice when target is unreachable.
func (r *Result) Path(target int64) []int64 {
	if !r.Reachable(target) {
		return nil
	}

	var rev []int64
	for cur := target; cur != r.Source; {
		rev = append(rev, cur)
		p, ok := r.Parent[cur]
		if !ok {
			return nil
		}
		cur = p
	}
	rev = append(rev, r.Source)

	path := make([]int64, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		path = append(path, rev[i])
	}

	return path
}

// ShortestPath is a convenience wrapper: the bounded search from source to
// target, returning the path and its cost (+Inf and nil when unreachable).
func ShortestPath(g *core.Graph, source, target int64) ([]int64, float64) {
	res := Dijkstra(g, source, WithTarget(target))

	return res.Path(target), res.Distance(target)
}
