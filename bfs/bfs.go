// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances, parent links, and visit order.
//
// Every call is a total function: an unknown start node or an empty graph
// yields a well-formed Result with zero visited nodes, never an error.
// Distance to an unreachable node is reported through Reachable, not through
// a sentinel value alone.
//
// Complexity: O(V + E) time, O(V) space.
package bfs

import "github.com/vkarasov/wayfind/core"

// Result captures the outcome of one BFS traversal, together with the run's
// diagnostic counters. It is a value object: it holds no reference back into
// the graph and stays valid after the graph is later mutated.
type Result struct {
	// Start is the source node the traversal began from.
	Start int64

	// Order records node IDs in the sequence they were visited.
	Order []int64

	// Dist maps each reached node to its hop count from Start.
	Dist map[int64]int

	// Parent maps each reached node (except Start) to its BFS-tree parent.
	Parent map[int64]int64

	// Visited flags the nodes reached during the traversal.
	Visited map[int64]bool

	// NodesVisited is the number of nodes reached, including Start.
	NodesVisited int

	// QueueOps counts enqueue and dequeue operations.
	QueueOps int

	// MaxQueueLen is the high-water mark of the frontier.
	MaxQueueLen int
}

// BFS runs breadth-first search on g starting from start.
func BFS(g *core.Graph, start int64) *Result {
	res := &Result{
		Start:   start,
		Dist:    make(map[int64]int),
		Parent:  make(map[int64]int64),
		Visited: make(map[int64]bool),
	}
	if g == nil || !g.HasNode(start) {
		return res
	}

	queue := make([]int64, 0, g.NumNodes())
	queue = append(queue, start)
	res.Visited[start] = true
	res.Dist[start] = 0
	res.QueueOps++
	res.MaxQueueLen = 1

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		res.QueueOps++

		res.Order = append(res.Order, u)
		res.NodesVisited++

		for _, e := range g.Neighbors(u) {
			v := e.To
			if res.Visited[v] {
				continue
			}
			res.Visited[v] = true
			res.Dist[v] = res.Dist[u] + 1
			res.Parent[v] = u
			queue = append(queue, v)
			res.QueueOps++
			if len(queue) > res.MaxQueueLen {
				res.MaxQueueLen = len(queue)
			}
		}
	}

	return res
}

// Reachable reports whether target was reached from Start.
func (r *Result) Reachable(target int64) bool {
	return r.Visited[target]
}

// HopDistance returns the number of edges on the shortest unweighted path
// from Start to target. The boolean is false when target is unreachable —
// callers must check it rather than trust the count.
func (r *Result) HopDistance(target int64) (int, bool) {
	d, ok := r.Dist[target]

	return d, ok
}

// Path reconstructs the node sequence from Start to target by following
// parent links. Returns an empty slice when target is unreachable.
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

// Component returns all nodes reachable from Start in visit order.
func (r *Result) Component() []int64 {
	out := make([]int64, len(r.Order))
	copy(out, r.Order)

	return out
}
