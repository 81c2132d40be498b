// Package astar implements goal-directed shortest-path search over a
// core.Graph using the A* algorithm.
//
// The open set is a minheap.Heap ordered by f-score (g + h) with ties broken
// by the smaller g-score, then by node ID for determinism. Handles returned
// by the heap drive in-place decrease-key; a stale handle falls back to a
// fresh push, and obsolete entries are discarded by a closed-set check at
// pop time.
//
// With an admissible heuristic (one that never overestimates the remaining
// cost) the first pop of the target yields an optimal path and its cost
// equals the Dijkstra distance. CheckAdmissibility spot-checks a heuristic
// against exact distances on sampled sources.
//
// Negative effective edge weights follow the same exclusion policy as
// package dijkstra: skipped and counted, never fatal. Closed edges report
// +Inf and are never traversed.
//
// Time complexity: O((V + E) log V) in the worst case; a well-informed
// heuristic expands far fewer nodes. Memory: O(V).
package astar

import (
	"errors"
	"math"
	"math/rand"

	"github.com/vkarasov/wayfind/core"
	"github.com/vkarasov/wayfind/dijkstra"
	"github.com/vkarasov/wayfind/minheap"
)

// earthRadiusKm is the mean Earth radius used by the Haversine heuristic.
const earthRadiusKm = 6371.0

// Heuristic estimates the remaining cost from node a to node b. To guarantee
// optimal paths it must be admissible: h(a,b) <= true shortest distance.
type Heuristic func(a, b core.Node) float64

// Haversine returns the great-circle distance between two nodes in
// kilometers, treating Lat/Lon as degrees. Admissible whenever edge weights
// are road distances in kilometers.
func Haversine(a, b core.Node) float64 {
	la1 := a.Lat * math.Pi / 180
	la2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	s := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(la1)*math.Cos(la2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(s)))
}

// Euclidean returns the straight-line distance between two nodes, treating
// Lat/Lon as planar y/x coordinates.
func Euclidean(a, b core.Node) float64 {
	dx := a.Lon - b.Lon
	dy := a.Lat - b.Lat

	return math.Hypot(dx, dy)
}

// Manhattan returns the L1 distance between two nodes, treating Lat/Lon as
// planar y/x coordinates. Admissible on grid graphs with axis-aligned moves.
func Manhattan(a, b core.Node) float64 {
	return math.Abs(a.Lat-b.Lat) + math.Abs(a.Lon-b.Lon)
}

// Zero estimates nothing; A* with Zero degenerates to Dijkstra.
func Zero(_, _ core.Node) float64 { return 0 }

// Options configures a single A* run.
type Options struct {
	// Heuristic estimates remaining cost. Defaults to Haversine.
	Heuristic Heuristic
}

// Option mutates Options. Invalid arguments panic at construction time,
// before the search starts.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: Haversine heuristic.
func DefaultOptions() Options {
	return Options{Heuristic: Haversine}
}

// WithHeuristic overrides the cost estimator. Panics if h is nil.
func WithHeuristic(h Heuristic) Option {
	if h == nil {
		panic("astar: WithHeuristic requires a non-nil heuristic")
	}

	return func(o *Options) { o.Heuristic = h }
}

// Result carries the outcome and per-run counters of one A* search.
// A zero-counter Result with Found == false is the outcome of any run whose
// inputs were unusable (nil graph, unknown source or target).
type Result struct {
	// Source and Target identify the requested endpoints.
	Source int64
	Target int64

	// Found reports whether the target was reached.
	Found bool

	// GScore maps each discovered node to the cost of the best known path
	// from Source.
	GScore map[int64]float64

	// FScore maps each discovered node to GScore + heuristic estimate, the
	// priority it last carried in the open set.
	FScore map[int64]float64

	// Parent maps each discovered node (except Source) to its predecessor.
	Parent map[int64]int64

	// NodesExpanded counts nodes popped and settled (closed).
	NodesExpanded int

	// NodesGenerated counts distinct nodes ever placed in the open set.
	NodesGenerated int

	// HeuristicEvals counts calls to the heuristic.
	HeuristicEvals int

	// HeapOps counts pushes and pops.
	HeapOps int

	// DecreaseKeys counts successful in-place key decreases.
	DecreaseKeys int

	// StaleInserts counts fallback fresh inserts after a stale handle.
	StaleInserts int

	// MaxOpenLen is the high-water mark of the open set.
	MaxOpenLen int

	// NegativeEdgesSkipped counts edges excluded by the negative-weight
	// policy.
	NegativeEdgesSkipped int

	closed map[int64]bool
}

// fNode is an open-set entry: priority by f, ties by smaller g, then ID.
type fNode struct {
	f, g float64
	id   int64
}

func fLess(a, b fNode) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g < b.g
	}

	return a.id < b.id
}

// AStar searches for a shortest path from source to target.
//
// The call is total: a nil graph or an unknown endpoint yields a well-formed
// Result with Found == false rather than an error.
func AStar(g *core.Graph, source, target int64, opts ...Option) *Result {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	res := &Result{
		Source: source,
		Target: target,
		GScore: make(map[int64]float64),
		FScore: make(map[int64]float64),
		Parent: make(map[int64]int64),
		closed: make(map[int64]bool),
	}
	if g == nil || !g.HasNode(source) || !g.HasNode(target) {
		return res
	}

	goal, _ := g.Node(target)
	estimate := func(id int64) float64 {
		n, _ := g.Node(id)
		res.HeuristicEvals++

		return o.Heuristic(n, goal)
	}

	pq := minheap.New[fNode](fLess)
	handles := make(map[int64]minheap.Handle)

	h0 := estimate(source)
	res.GScore[source] = 0
	res.FScore[source] = h0
	handles[source] = pq.Push(fNode{f: h0, g: 0, id: source})
	res.HeapOps++
	res.NodesGenerated = 1
	res.MaxOpenLen = 1

	for !pq.Empty() {
		item, err := pq.Pop()
		if err != nil {
			break
		}
		res.HeapOps++
		u := item.id

		// Obsolete entry: u was settled through a cheaper path after this
		// entry was pushed.
		if res.closed[u] || item.g > res.GScore[u] {
			continue
		}
		res.closed[u] = true
		res.NodesExpanded++

		if u == target {
			res.Found = true

			break
		}

		res.expand(g, pq, handles, estimate, u, item.g)
	}

	return res
}

// expand relaxes each outgoing edge of u against the open set.
func (r *Result) expand(
	g *core.Graph,
	pq *minheap.Heap[fNode],
	handles map[int64]minheap.Handle,
	estimate func(int64) float64,
	u int64,
	gu float64,
) {
	for _, e := range g.Neighbors(u) {
		w := e.EffectiveWeight()
		if w < 0 {
			r.NegativeEdgesSkipped++

			continue
		}

		v := e.To
		if r.closed[v] {
			continue
		}

		tentative := gu + w // +Inf for closed edges, never an improvement
		best, seen := r.GScore[v]
		if !seen {
			best = math.Inf(1)
		}
		if tentative >= best {
			continue
		}

		f := tentative + estimate(v)
		r.GScore[v] = tentative
		r.FScore[v] = f
		r.Parent[v] = u

		entry := fNode{f: f, g: tentative, id: v}
		if !seen {
			handles[v] = pq.Push(entry)
			r.HeapOps++
			r.NodesGenerated++
			if pq.Len() > r.MaxOpenLen {
				r.MaxOpenLen = pq.Len()
			}

			continue
		}

		err := pq.DecreaseKey(handles[v], entry)
		switch {
		case err == nil:
			r.DecreaseKeys++
		case errors.Is(err, minheap.ErrStaleHandle):
			handles[v] = pq.Push(entry)
			r.HeapOps++
			r.StaleInserts++
		}
	}
}

// Cost returns the cost of the found path, +Inf when Found is false.
func (r *Result) Cost() float64 {
	if !r.Found {
		return math.Inf(1)
	}

	return r.GScore[r.Target]
}

// Path reconstructs the found path from Source to Target as an ordered
// node-ID sequence, nil when Found is false.
func (r *Result) Path() []int64 {
	if !r.Found {
		return nil
	}

	var rev []int64
	for cur := r.Target; cur != r.Source; {
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

// CheckAdmissibility spot-checks h against exact shortest distances: for
// each of samples randomly chosen sources it runs a full Dijkstra sweep and
// verifies h(source, v) <= dist(source, v) for every reachable v, within a
// small tolerance. Sampling is deterministic for a given seed.
//
// A true return is evidence, not proof: only sampled pairs were checked.
func CheckAdmissibility(g *core.Graph, h Heuristic, samples int, seed int64) bool {
	if g == nil || h == nil || samples <= 0 {
		return true
	}
	ids := g.NodeIDs()
	if len(ids) == 0 {
		return true
	}

	const tolerance = 1e-9

	rng := rand.New(rand.NewSource(seed))

	for s := 0; s < samples; s++ {
		source := ids[rng.Intn(len(ids))]
		from, _ := g.Node(source)
		res := dijkstra.Dijkstra(g, source)

		for _, v := range ids {
			d := res.Distance(v)
			if math.IsInf(d, 1) {
				continue
			}
			to, _ := g.Node(v)
			if h(from, to) > d+tolerance {
				return false
			}
		}
	}

	return true
}
