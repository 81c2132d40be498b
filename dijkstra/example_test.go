package dijkstra_test

import (
	"fmt"

	"github.com/vkarasov/wayfind/core"
	"github.com/vkarasov/wayfind/dijkstra"
)

// ExampleDijkstra models a small one-way street network and finds the
// cheapest route across it.
func ExampleDijkstra() {
	g := core.NewGraph(core.WithDirected(true))
	for id := int64(1); id <= 5; id++ {
		_ = g.AddNode(id, 0, 0)
	}
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(1, 3, 3)
	_ = g.AddEdge(2, 4, 1)
	_ = g.AddEdge(2, 5, 4)
	_ = g.AddEdge(3, 4, 2)
	_ = g.AddEdge(4, 5, 1)

	res := dijkstra.Dijkstra(g, 1)

	fmt.Println("route:", res.Path(5))
	fmt.Println("cost:", res.Distance(5))
	// Output:
	// route: [1 2 4 5]
	// cost: 4
}

// ExampleDijkstra_trafficMultiplier shows congestion rerouting: scaling one
// segment's weight makes a detour cheaper.
func ExampleDijkstra_trafficMultiplier() {
	g := core.NewGraph(core.WithDirected(true))
	for id := int64(1); id <= 4; id++ {
		_ = g.AddNode(id, 0, 0)
	}
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(2, 4, 1)
	_ = g.AddEdge(1, 3, 3)
	_ = g.AddEdge(3, 4, 2)

	fmt.Println("free flow:", dijkstra.Dijkstra(g, 1).Path(4))

	_ = g.SetMultiplier(2, 4, 5) // rush hour on 2→4
	fmt.Println("congested:", dijkstra.Dijkstra(g, 1).Path(4))
	// Output:
	// free flow: [1 2 4]
	// congested: [1 3 4]
}

// ExampleShortestPath is the one-call variant for a single origin/target pair.
func ExampleShortestPath() {
	g := core.NewGraph()
	for id := int64(1); id <= 3; id++ {
		_ = g.AddNode(id, 0, 0)
	}
	_ = g.AddEdge(1, 2, 5)
	_ = g.AddEdge(2, 3, 5)

	path, cost := dijkstra.ShortestPath(g, 1, 3)
	fmt.Println(path, cost)
	// Output: [1 2 3] 10
}
