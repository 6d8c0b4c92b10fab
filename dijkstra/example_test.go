// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/fibpath/core"
	"github.com/katalvlaran/fibpath/dijkstra"
)

// ExampleSearch finds the cheapest A→C cost, which goes through B.
func ExampleSearch() {
	g, _ := core.FromAdjacency(map[string]map[string]float64{
		"A": {"B": 1, "C": 4},
		"B": {"C": 1},
		"C": nil,
	})

	d, ok, err := dijkstra.Search(g, "A", "C")
	if err != nil {
		panic(err)
	}
	fmt.Println(d, ok)

	// Output:
	// 2 true
}

// ExampleShortestPaths prints the full table, including an isolated vertex.
func ExampleShortestPaths() {
	g, _ := core.FromAdjacency(map[string]map[string]float64{
		"A": {"B": 1, "C": 4},
		"B": {"C": 1},
		"C": nil,
		"D": nil,
	})

	dist, err := dijkstra.ShortestPaths(g, "A")
	if err != nil {
		panic(err)
	}
	keys := make([]string, 0, len(dist))
	for k := range dist {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Println(k, dist[k])
	}

	// Output:
	// A 0
	// B 1
	// C 2
	// D +Inf
}

// ExamplePath reconstructs the route as well as its cost.
func ExamplePath() {
	g := core.NewGraph[string](core.WithUndirected())
	_ = g.AddEdge("Home", "Bridge", 3)
	_ = g.AddEdge("Bridge", "Market", 2)
	_ = g.AddEdge("Home", "Market", 7)

	route, cost, _ := dijkstra.Path(g, "Home", "Market")
	fmt.Println(route, cost)

	// Output:
	// [Home Bridge Market] 5
}

// ExampleShortestPaths_negativeWeight shows the error returned when a
// negative edge is relaxed.
func ExampleShortestPaths_negativeWeight() {
	g := core.NewGraph[string]()
	_ = g.AddEdge("A", "B", -1)

	_, err := dijkstra.ShortestPathsBinaryHeap(g, "A")
	fmt.Println(errors.Is(err, dijkstra.ErrNegativeWeight))

	// Output:
	// true
}
