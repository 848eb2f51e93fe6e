package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/allpaths/core"
)

// ExampleAdjacencyList demonstrates validation and basic queries.
func ExampleAdjacencyList() {
	// 1) Vertex 0 fans out to 1 and 2, both of which lead to 3.
	g := core.AdjacencyList{{1, 2}, {3}, {3}, {}}

	// 2) Validate once before handing the graph to an algorithm.
	if err := g.Validate(); err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Inspect it.
	nbs, _ := g.Neighbors(0)
	fmt.Println("order:", g.Order(), "size:", g.Size())
	fmt.Println("source:", g.Source(), "target:", g.Target())
	fmt.Println("neighbors of 0:", nbs)
	fmt.Println("edges:", g.Edges())

	// Output:
	// order: 4 size: 4
	// source: 0 target: 3
	// neighbors of 0: [1 2]
	// edges: [0→1 0→2 1→3 2→3]
}

// ExampleAdjacencyList_Validate shows how an out-of-range id is reported.
func ExampleAdjacencyList_Validate() {
	g := core.AdjacencyList{{1}, {5}, {}}
	err := g.Validate()
	fmt.Println(errors.Is(err, core.ErrInvalidGraph))
	fmt.Println(err)

	// Output:
	// true
	// core: vertex 1 lists 5 at position 0, want [0,3): core: invalid graph
}
