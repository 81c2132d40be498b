// Package unionfind implements a disjoint-set structure with full path
// compression and union by rank, used by Kruskal's MST construction for
// cycle detection.
//
// Complexity: amortized near-O(1) (inverse Ackermann) per Find/Union.
package unionfind

// UnionFind maps element IDs to their set representative. Elements are
// created lazily: Find on a never-seen ID creates a singleton set.
//
// A UnionFind instance is not safe for concurrent use.
type UnionFind struct {
	parent map[int64]int64
	rank   map[int64]int
	ops    int
}

// New returns an empty UnionFind.
func New() *UnionFind {
	return &UnionFind{
		parent: make(map[int64]int64),
		rank:   make(map[int64]int),
	}
}

// MakeSet registers x as a singleton set. A no-op for known elements.
func (u *UnionFind) MakeSet(x int64) {
	u.ops++
	if _, ok := u.parent[x]; ok {
		return
	}
	u.parent[x] = x
	u.rank[x] = 0
}

// Find returns the root of x's set, creating a singleton set if x was never
// seen. After the call, every node visited on the way to the root points
// directly at it, so an immediately repeated Find does no re-parenting.
func (u *UnionFind) Find(x int64) int64 {
	u.ops++
	if _, ok := u.parent[x]; !ok {
		u.parent[x] = x
		u.rank[x] = 0

		return x
	}

	// First pass: locate the root.
	root := x
	for u.parent[root] != root {
		root = u.parent[root]
	}

	// Second pass: re-parent the whole chain onto the root.
	for u.parent[x] != root {
		x, u.parent[x] = u.parent[x], root
	}

	return root
}

// Union merges the sets of x and y. Returns false — performing no structural
// change — when both are already in the same set; for Kruskal this is
// exactly the "adding this edge would close a cycle" signal.
func (u *UnionFind) Union(x, y int64) bool {
	u.ops++
	rootX := u.Find(x)
	rootY := u.Find(y)
	if rootX == rootY {
		return false
	}

	// Union by rank: attach the shallower tree under the deeper root.
	switch {
	case u.rank[rootX] < u.rank[rootY]:
		u.parent[rootX] = rootY
	case u.rank[rootX] > u.rank[rootY]:
		u.parent[rootY] = rootX
	default:
		u.parent[rootY] = rootX
		u.rank[rootX]++
	}

	return true
}

// OperationCount returns the number of MakeSet/Find/Union calls performed
// (nested Find calls inside Union included).
func (u *UnionFind) OperationCount() int { return u.ops }

// Size returns the number of known elements.
func (u *UnionFind) Size() int { return len(u.parent) }

// parentOf exposes the raw parent link for white-box tests.
func (u *UnionFind) parentOf(x int64) (int64, bool) {
	p, ok := u.parent[x]

	return p, ok
}
