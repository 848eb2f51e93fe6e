package graphfile

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/allpaths/core"
)

// hclGraphFile represents the top-level structure of a graph file for decoding.
type hclGraphFile struct {
	Vertices int        `hcl:"vertices,optional"`
	Nodes    []*hclNode `hcl:"node,block"`
}

// hclNode is one `node "<id>" { edges = [...] }` block.
type hclNode struct {
	ID    string `hcl:"id,label"`
	Edges []int  `hcl:"edges,optional"`
}

// DecodeHCL parses src as an HCL graph file. filename is only used in
// diagnostics.
func DecodeHCL(src []byte, filename string) (core.AdjacencyList, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("graphfile: failed to parse HCL file %s: %w", filename, diags)
	}

	var parsed hclGraphFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("graphfile: failed to decode HCL file %s: %w", filename, diags)
	}
	if parsed.Vertices < 0 || parsed.Vertices > MaxVertices {
		return nil, fmt.Errorf("graphfile: %s: vertices = %d not in [0,%d]: %w",
			filename, parsed.Vertices, MaxVertices, core.ErrInvalidGraph)
	}

	// 1. Resolve labels and size the graph
	ids := make([]int, len(parsed.Nodes))
	n := parsed.Vertices
	for i, node := range parsed.Nodes {
		id, err := strconv.Atoi(node.ID)
		// labels size the graph, so they are capped before any allocation
		if err != nil || id < 0 || id >= MaxVertices {
			return nil, fmt.Errorf("graphfile: %s: node %q: %w", filename, node.ID, ErrBadLabel)
		}
		ids[i] = id
		if id+1 > n {
			n = id + 1
		}
	}

	// 2. Fill adjacency lists, rejecting a second block for the same vertex
	g := make(core.AdjacencyList, n)
	declared := make([]bool, n)
	for i, node := range parsed.Nodes {
		id := ids[i]
		if declared[id] {
			return nil, fmt.Errorf("graphfile: %s: node %d: %w", filename, id, ErrDuplicateNode)
		}
		declared[id] = true
		g[id] = append([]int{}, node.Edges...)
	}
	for v := range g {
		if g[v] == nil {
			g[v] = []int{}
		}
	}

	// 3. Edges may still point past the last vertex
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("graphfile: %s: %w", filename, err)
	}

	return g, nil
}
