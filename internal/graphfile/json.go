package graphfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/allpaths/core"
)

// DecodeJSON reads a single JSON adjacency list from r.
// A null row is treated as a vertex without successors. Trailing data after
// the array is an error.
func DecodeJSON(r io.Reader) (core.AdjacencyList, error) {
	dec := json.NewDecoder(r)

	var rows [][]int
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("graphfile: decode JSON: %w", err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("graphfile: decode JSON: %w", ErrTrailingData)
	}

	g := make(core.AdjacencyList, len(rows))
	for i, nbs := range rows {
		if nbs == nil {
			nbs = []int{}
		}
		g[i] = nbs
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}

	return g, nil
}
