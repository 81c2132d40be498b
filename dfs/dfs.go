// Package dfs implements depth-first search over a core.Graph, producing
// discovery/finish timestamps, preorder and postorder sequences, and the
// back-edge predicate used for cycle detection on directed graphs.
//
// Two equivalent traversal forms are offered. The default is iterative with
// an explicit stack, safe on large graphs where call-stack depth would not
// be. The recursive form sits behind an explicit depth guard
// (WithRecursive) and is meant for small or bounded graphs.
//
// Like every algorithm in wayfind, DFS is a total function over its inputs:
// an unknown start node yields a well-formed empty Result, never an error.
//
// Complexity: O(V + E) time, O(V) space.
package dfs

import (
	"errors"

	"github.com/vkarasov/wayfind/core"
)

var (
	// ErrNilGraph is returned by HasCycle when the graph is nil.
	ErrNilGraph = errors.New("dfs: graph is nil")

	// ErrUndirectedGraph is returned by HasCycle on an undirected graph:
	// the back-edge predicate is meaningless there (every edge's reciprocal
	// would look like a back edge), so the check refuses to run.
	ErrUndirectedGraph = errors.New("dfs: cycle detection requires a directed graph")
)

// Options configures the traversal form.
type Options struct {
	// Recursive selects the call-stack implementation.
	Recursive bool

	// MaxDepth bounds recursion depth when Recursive is set. Nodes at the
	// bound are visited but not expanded.
	MaxDepth int
}

// Option mutates Options.
type Option func(*Options)

// WithRecursive selects the recursive traversal guarded to maxDepth levels.
// The guard is mandatory: maxDepth must be positive or the option panics.
func WithRecursive(maxDepth int) Option {
	return func(o *Options) {
		if maxDepth <= 0 {
			panic("dfs: WithRecursive requires a positive depth bound")
		}
		o.Recursive = true
		o.MaxDepth = maxDepth
	}
}

// Result captures the outcome of one DFS traversal plus run counters.
// A single clock drives Discovery and Finish: it increments on every
// discovery and every finish event, so all timestamps are distinct.
type Result struct {
	// Start is the source node the traversal began from.
	Start int64

	// Preorder records nodes in discovery order.
	Preorder []int64

	// Postorder records nodes in finish order.
	Postorder []int64

	// Discovery and Finish map each visited node to its timestamps.
	Discovery map[int64]int
	Finish    map[int64]int

	// Parent maps each visited node (except Start) to its DFS-tree parent.
	Parent map[int64]int64

	// Visited flags the nodes reached during the traversal.
	Visited map[int64]bool

	// NodesVisited is the number of nodes discovered.
	NodesVisited int

	// StackOps and MaxStackLen describe the explicit stack (iterative form).
	StackOps    int
	MaxStackLen int

	// MaxRecursionDepth is the deepest recursion reached (recursive form).
	MaxRecursionDepth int

	// DepthLimited reports that the recursion guard suppressed at least one
	// expansion; the traversal is then a truncated view, not exhaustive.
	DepthLimited bool

	clock int
}

// DFS runs depth-first search on g from start, iteratively by default.
func DFS(g *core.Graph, start int64, opts ...Option) *Result {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	res := &Result{
		Start:     start,
		Discovery: make(map[int64]int),
		Finish:    make(map[int64]int),
		Parent:    make(map[int64]int64),
		Visited:   make(map[int64]bool),
	}
	if g == nil || !g.HasNode(start) {
		return res
	}

	if o.Recursive {
		recurse(g, start, 0, o.MaxDepth, res)
	} else {
		iterate(g, start, res)
	}

	return res
}

// frame is one entry of the explicit traversal stack. A node is pushed
// twice: once to discover it, once (expand=false) to finish it.
type frame struct {
	id     int64
	parent int64
	root   bool
	expand bool
}

// iterate reproduces recursive discovery/finish semantics with an explicit
// stack. Neighbors are pushed in reverse so nodes are discovered in the same
// order the recursive form would discover them.
func iterate(g *core.Graph, start int64, res *Result) {
	stack := []frame{{id: start, root: true, expand: true}}
	res.StackOps++
	res.MaxStackLen = 1

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		res.StackOps++

		if !f.expand {
			res.Finish[f.id] = res.clock
			res.clock++
			res.Postorder = append(res.Postorder, f.id)

			continue
		}

		if res.Visited[f.id] {
			continue
		}
		res.Visited[f.id] = true
		res.Discovery[f.id] = res.clock
		res.clock++
		res.Preorder = append(res.Preorder, f.id)
		res.NodesVisited++
		if !f.root {
			res.Parent[f.id] = f.parent
		}

		// Finish marker goes under the children.
		stack = append(stack, frame{id: f.id})
		res.StackOps++

		neighbors := g.Neighbors(f.id)
		for i := len(neighbors) - 1; i >= 0; i-- {
			v := neighbors[i].To
			if res.Visited[v] {
				continue
			}
			stack = append(stack, frame{id: v, parent: f.id, expand: true})
			res.StackOps++
		}
		if len(stack) > res.MaxStackLen {
			res.MaxStackLen = len(stack)
		}
	}
}

// recurse is the depth-guarded recursive form.
func recurse(g *core.Graph, id int64, depth, maxDepth int, res *Result) {
	if depth > res.MaxRecursionDepth {
		res.MaxRecursionDepth = depth
	}

	res.Visited[id] = true
	res.Discovery[id] = res.clock
	res.clock++
	res.Preorder = append(res.Preorder, id)
	res.NodesVisited++

	if depth >= maxDepth {
		res.DepthLimited = true
	} else {
		for _, e := range g.Neighbors(id) {
			if res.Visited[e.To] {
				continue
			}
			res.Parent[e.To] = id
			recurse(g, e.To, depth+1, maxDepth, res)
		}
	}

	res.Finish[id] = res.clock
	res.clock++
	res.Postorder = append(res.Postorder, id)
}

// IsBackEdge reports whether edge u→v closed back onto an ancestor: v was
// discovered before u and had not finished when u finished.
func (r *Result) IsBackEdge(u, v int64) bool {
	du, ok1 := r.Discovery[u]
	dv, ok2 := r.Discovery[v]
	fu, ok3 := r.Finish[u]
	fv, ok4 := r.Finish[v]
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return false
	}

	return dv < du && fv > fu
}

// Reachable reports whether target was reached from Start.
func (r *Result) Reachable(target int64) bool { return r.Visited[target] }

// Path reconstructs the DFS-tree path from Start to target.
// Returns an empty slice when target is unreachable.
func (r *Result) Path(target int64) []int64 {
	if !r.Visited[target] {
		return nil
	}

	var rev []int64
	for cur := target; cur != r.Start; {
		rev = append(rev, cur)
		p, ok := r.Parent[cur]
		if !ok {
			return nil
		}
		cur = p
	}
	rev = append(rev, r.Start)

	path := make([]int64, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		path = append(path, rev[i])
	}

	return path
}

// HasCycle reports whether a cycle is reachable from start in a directed
// graph, by scanning explored edges for back edges. On an undirected graph
// it refuses to run with ErrUndirectedGraph.
func HasCycle(g *core.Graph, start int64) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	if !g.Directed() {
		return false, ErrUndirectedGraph
	}

	res := DFS(g, start)
	for _, u := range res.Preorder {
		for _, e := range g.Neighbors(u) {
			if e.To == u {
				return true, nil // self-loop
			}
			if res.IsBackEdge(u, e.To) {
				return true, nil
			}
		}
	}

	return false, nil
}
