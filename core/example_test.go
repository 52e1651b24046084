package core_test

import (
	"fmt"

	"github.com/OoXLR8oO/adtlib/core"
)

// ExampleGraph builds a small undirected network and inspects it.
func ExampleGraph() {
	g := core.New[string]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")

	_ = g.AddEdge(a, b)
	_ = g.AddEdge(a, c, core.WithWeight(4))

	fmt.Println("nodes:", g.NodeCount())
	fmt.Println("A-B both ways:", g.HasEdge(a, b), g.HasEdge(b, a))
	w, _ := g.EdgeWeight(c, a)
	fmt.Println("weight C-A:", w)
	// Output:
	// nodes: 3
	// A-B both ways: true true
	// weight C-A: 4
}

// ExampleGraph_directed shows one-way adjacency.
func ExampleGraph_directed() {
	g := core.New[string](core.WithDirected(true))
	a := g.AddNode("A")
	b := g.AddNode("B")
	_ = g.AddEdge(a, b)

	fmt.Println(g.HasEdge(a, b), g.HasEdge(b, a))
	// Output: true false
}
