package graphfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/allpaths/core"
)

// Format names a graph encoding.
type Format string

const (
	// FormatAuto picks the encoding from the file extension.
	FormatAuto Format = "auto"
	// FormatJSON is the literal adjacency-list encoding.
	FormatJSON Format = "json"
	// FormatHCL is the block encoding.
	FormatHCL Format = "hcl"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// MaxVertices bounds the vertex count an HCL file may declare, through the
// "vertices" attribute or a node label.
const MaxVertices = 1 << 20

// Sentinel errors for graph loading.
var (
	ErrUnknownFormat = errors.New("graphfile: unknown format")
	ErrBadLabel      = errors.New("graphfile: node label is not a vertex id")
	ErrDuplicateNode = errors.New("graphfile: node declared twice")
	ErrTrailingData  = errors.New("graphfile: trailing data after graph")
)

// Resolve turns FormatAuto into a concrete format for name: ".hcl" files
// are HCL, everything else (standard input included) is JSON.
func Resolve(f Format, name string) (Format, error) {
	switch f {
	case FormatJSON, FormatHCL:
		return f, nil
	case FormatAuto, "":
		if strings.EqualFold(filepath.Ext(name), ".hcl") {
			return FormatHCL, nil
		}
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// Decode reads a whole graph from r. name is used to resolve FormatAuto and
// in diagnostics.
func Decode(r io.Reader, name string, f Format) (core.AdjacencyList, error) {
	f, err := Resolve(f, name)
	if err != nil {
		return nil, err
	}
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("graphfile: read %s: %w", name, err)
	}

	if f == FormatHCL {
		return DecodeHCL(src, name)
	}

	return DecodeJSON(bytes.NewReader(src))
}

// Load reads the graph at path, or standard input when path is Stdin.
func Load(path string, f Format) (core.AdjacencyList, error) {
	if path == Stdin {
		return Decode(os.Stdin, "<stdin>", f)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	defer file.Close()

	return Decode(file, path, f)
}
