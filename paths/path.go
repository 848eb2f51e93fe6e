package paths

import (
	"strconv"
	"strings"

	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/allpaths/core"
)

// pathSeparator joins vertex ids in Format.
const pathSeparator = " -> "

// IsWalk reports whether p is non-empty and every consecutive pair of p is
// an edge of g.
func IsWalk(g core.AdjacencyList, p []int) bool {
	if len(p) == 0 || !g.Contains(p[0]) {
		return false
	}
	for i := 1; i < len(p); i++ {
		if !g.HasEdge(p[i-1], p[i]) {
			return false
		}
	}

	return true
}

// IsPath reports whether p is a complete path of g in the sense of
// AllPaths: a walk that starts at 0 and ends at N-1.
func IsPath(g core.AdjacencyList, p []int) bool {
	return IsWalk(g, p) && p[0] == g.Source() && p[len(p)-1] == g.Target()
}

// IsSimple reports whether no vertex id occurs twice in p.
// n is the number of vertices; ids outside [0, n-1] make p not simple.
func IsSimple(p []int, n int) bool {
	if n <= 0 {
		return len(p) == 0
	}
	seen := sparsesets.New(n)
	for _, v := range p {
		if v < 0 || v >= n || seen.Contains(v) {
			return false
		}
		seen.Insert(v)
	}

	return true
}

// Format renders p as "0 -> 1 -> 3".
func Format(p []int) string {
	var b strings.Builder
	for i, v := range p {
		if i > 0 {
			b.WriteString(pathSeparator)
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}
