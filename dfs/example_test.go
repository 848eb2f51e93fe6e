package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/allpaths/core"
	"github.com/katalvlaran/allpaths/dfs"
)

// ExampleTopologicalSort demonstrates computing a topological order
// on a DAG with a shared child 3. Graph:
//
//	  0
//	 / \
//	1   2
//	 \ / \
//	  3   5
//	  |   |
//	  4   6
func ExampleTopologicalSort() {
	g := core.AdjacencyList{
		{1, 2}, // 0
		{3},    // 1
		{3, 5}, // 2
		{4},    // 3
		{},     // 4
		{6},    // 5
		{},     // 6
	}

	order, err := dfs.TopologicalSort(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)

	// Output:
	// [0 2 5 6 1 3 4]
}

// ExampleDetectCycle shows detecting a cycle in a directed graph.
// Edge 4→1 closes the loop 1→2→3→4→1.
func ExampleDetectCycle() {
	g := core.AdjacencyList{{1}, {2}, {3}, {4}, {1, 5}, {}}

	has, cycle, err := dfs.DetectCycle(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(has, cycle)

	// Output:
	// true [1 2 3 4 1]
}
