package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/allpaths/bfs"
	"github.com/katalvlaran/allpaths/core"
)

// ExampleBFS finds the fewest-hop path in a small network.
// Two competing routes exist from 0 to 6: one of length 4, another of length 3.
func ExampleBFS() {
	g := core.AdjacencyList{
		{1, 4}, // 0
		{2},    // 1
		{3},    // 2
		{6},    // 3
		{5},    // 4
		{6},    // 5
		{},     // 6
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(6)
	fmt.Println("order:", res.Order)
	fmt.Println("hops:", res.Depth[6], "path:", path)

	// Output:
	// order: [0 1 4 2 5 3 6]
	// hops: 3 path: [0 4 5 6]
}

// ExampleCoReachable shows which vertices can still reach the target 3.
func ExampleCoReachable() {
	g := core.AdjacencyList{{1, 2}, {3}, {}, {}}

	ok, err := bfs.CoReachable(g, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ok)

	// Output:
	// [true true false true]
}
