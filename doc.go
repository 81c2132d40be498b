// Package wayfind is an in-memory route planning and network optimization
// toolkit: weighted graphs with live traffic state, classic traversals,
// shortest-path search, and minimum spanning trees.
//
// The pieces:
//
//	core/      — thread-safe weighted graph with per-edge traffic
//	             multipliers and road closures
//	minheap/   — indexed binary heap with stable handles and decrease-key
//	unionfind/ — disjoint sets with path compression and union by rank
//	bfs/       — breadth-first traversal, hop distances, components
//	dfs/       — depth-first traversal, timestamps, cycle detection
//	dijkstra/  — single-source and target-bounded shortest paths
//	astar/     — goal-directed search with pluggable heuristics
//	mst/       — Kruskal and Prim spanning trees with verification
//	build/     — deterministic network generators for tests and demos
//	metrics/   — Prometheus export of per-run algorithm counters
//
// Traffic is dynamic: every edge carries a base weight and a multiplier,
// and algorithms read the product at query time. Closing an edge drives
// its effective weight to +Inf, so detours fall out of the arithmetic
// rather than special cases.
//
// Algorithm entry points are total functions. An unknown start node, an
// empty graph, or a nil graph yields a well-formed empty result whose
// accessors report "unreachable"; errors are reserved for construction and
// mutation. Every run returns its own performance counters (nodes settled,
// heap operations, relaxations), which the metrics package can fold into a
// Prometheus registry.
//
// Quick example:
//
//	g := core.NewGraph()
//	_ = g.AddNode(1, 52.52, 13.40)
//	_ = g.AddNode(2, 48.86, 2.35)
//	_ = g.AddEdge(1, 2, 878)
//
//	path, cost := dijkstra.ShortestPath(g, 1, 2)
package wayfind
