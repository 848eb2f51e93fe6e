// Package graphfile loads core.AdjacencyList values from files.
//
// Two encodings are understood.
//
// JSON is the literal adjacency list, one array per vertex:
//
//	[[1, 2], [3], [3], []]
//
// HCL lists vertices as labelled blocks. Vertices that are never declared
// get no edges, and the optional top-level "vertices" attribute raises N when
// trailing vertices have nothing to declare:
//
//	vertices = 4
//
//	node "0" {
//	  edges = [1, 2]
//	}
//	node "1" { edges = [3] }
//	node "2" { edges = [3] }
//
// Labels must be below MaxVertices and "vertices" at most MaxVertices;
// larger values are reported as ErrBadLabel and core.ErrInvalidGraph.
//
// Every decoded graph is checked with core.AdjacencyList.Validate, so an edge
// to an unknown vertex surfaces as core.ErrInvalidGraph.
package graphfile
