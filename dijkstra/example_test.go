package dijkstra_test

import (
	"fmt"

	"github.com/OoXLR8oO/adtlib/core"
	"github.com/OoXLR8oO/adtlib/dijkstra"
)

// ExampleDijkstra routes across a small weighted city map.
func ExampleDijkstra() {
	g := core.New[string]()
	depot := g.AddNode("depot")
	market := g.AddNode("market")
	harbor := g.AddNode("harbor")
	_ = g.AddEdge(depot, market, core.WithWeight(1))
	_ = g.AddEdge(market, harbor, core.WithWeight(2))
	_ = g.AddEdge(depot, harbor, core.WithWeight(5))

	res, _ := dijkstra.Dijkstra(g, depot)
	fmt.Println("distance to harbor:", res.Dist[harbor])

	path, _ := res.PathTo(harbor)
	for _, n := range path {
		fmt.Print(n.Value(), " ")
	}
	fmt.Println()
	// Output:
	// distance to harbor: 3
	// depot market harbor
}
