package astar_test

import (
	"fmt"

	"github.com/vkarasov/wayfind/astar"
	"github.com/vkarasov/wayfind/core"
)

// ExampleAStar navigates a unit-weight lattice with the Manhattan estimator.
func ExampleAStar() {
	// 3×3 lattice, node r*3+c at planar coordinates (r, c).
	g := core.NewGraph()
	for r := int64(0); r < 3; r++ {
		for c := int64(0); c < 3; c++ {
			_ = g.AddNode(r*3+c, float64(r), float64(c))
		}
	}
	for r := int64(0); r < 3; r++ {
		for c := int64(0); c < 3; c++ {
			id := r*3 + c
			if c < 2 {
				_ = g.AddEdge(id, id+1, 1)
			}
			if r < 2 {
				_ = g.AddEdge(id, id+3, 1)
			}
		}
	}

	res := astar.AStar(g, 0, 8, astar.WithHeuristic(astar.Manhattan))
	fmt.Println("found:", res.Found)
	fmt.Println("cost:", res.Cost())
	// Output:
	// found: true
	// cost: 4
}

// ExampleHaversine measures the great-circle distance between two airports.
func ExampleHaversine() {
	berlin := core.Node{ID: 1, Lat: 52.52, Lon: 13.40}
	paris := core.Node{ID: 2, Lat: 48.86, Lon: 2.35}

	fmt.Printf("%.0f km\n", astar.Haversine(berlin, paris))
	// Output: 877 km
}
