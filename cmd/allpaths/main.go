// Command allpaths prints every path from vertex 0 to vertex N-1 of a
// directed graph read from a JSON or HCL file.
//
//	$ echo '[[1,2],[3],[3],[]]' | allpaths
//	0 -> 1 -> 3
//	0 -> 2 -> 3
//
// With --count only the number of paths is printed. --check-cycles, --prune
// and --max-paths guard against graphs with cycles; --trace logs every
// candidate path the enumerator pops.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/katalvlaran/allpaths/core"
	"github.com/katalvlaran/allpaths/internal/graphfile"
	"github.com/katalvlaran/allpaths/paths"
)

type cli struct {
	Graph       string `arg:"" optional:"" default:"-" help:"Graph file (.json or .hcl), or - for standard input."`
	Format      string `help:"Graph encoding." enum:"auto,json,hcl" default:"auto" env:"ALLPATHS_FORMAT"`
	Count       bool   `help:"Print the number of paths instead of the paths."`
	CheckCycles bool   `help:"Fail when a cycle is reachable from vertex 0 instead of looping."`
	Prune       bool   `help:"Skip vertices that cannot reach the target."`
	MaxPaths    int    `help:"Stop after this many paths (0 means no limit)." default:"0"`
	Trace       bool   `help:"Log every candidate path at debug level."`
	LogLevel    string `help:"Log level." enum:"debug,info,warn,error" default:"info" env:"ALLPATHS_LOG_LEVEL"`
	LogFormat   string `help:"Log format." enum:"text,json" default:"text" env:"ALLPATHS_LOG_FORMAT"`
}

func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run parses args, executes the command and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var params cli
	exited := false
	parser, err := kong.New(&params,
		kong.Name("allpaths"),
		kong.Description("Enumerate all paths from vertex 0 to vertex N-1 of a directed graph."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if _, err := parser.Parse(args); err != nil {
		if exited {
			return 0
		}
		fmt.Fprintf(stderr, "allpaths: %v\n", err)
		return 1
	}
	if exited {
		// --help was printed
		return 0
	}

	level := params.LogLevel
	if params.Trace {
		level = "debug"
	}
	logger := newLogger(level, params.LogFormat, stderr)

	if err := execute(ctx, params, stdin, stdout, logger); err != nil {
		logger.Error("allpaths failed", "err", err)
		return 1
	}

	return 0
}

// execute loads the graph and prints paths or their count.
func execute(ctx context.Context, params cli, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	g, err := load(params, stdin)
	if err != nil {
		return err
	}
	logger.Debug("graph loaded", "source", params.Graph, "vertices", g.Order(), "edges", g.Size())

	if params.Count {
		n, err := paths.Count(g)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, n.String())
		return err
	}

	if g.Order() == 0 {
		logger.Info("graph is empty, nothing to enumerate")
		return nil
	}

	opts := []paths.Option{
		paths.WithContext(ctx),
		paths.WithMaxPaths(params.MaxPaths),
	}
	if params.CheckCycles {
		opts = append(opts, paths.WithCycleCheck())
	}
	if params.Prune {
		opts = append(opts, paths.WithPruning())
	}
	if params.Trace {
		opts = append(opts, paths.WithOnCandidate(func(p []int) error {
			logger.Debug("candidate", "path", paths.Format(p))
			return nil
		}))
	}

	res, err := paths.Enumerate(g, g.Source(), g.Target(), opts...)
	if err != nil {
		return err
	}
	for _, p := range res.Paths {
		if _, err := fmt.Fprintln(stdout, paths.Format(p)); err != nil {
			return err
		}
	}
	logger.Info("enumeration finished",
		"paths", len(res.Paths),
		"candidates", res.Candidates,
		"pruned", res.Pruned,
		"truncated", res.Truncated,
	)

	return nil
}

func load(params cli, stdin io.Reader) (core.AdjacencyList, error) {
	format := graphfile.Format(params.Format)
	if params.Graph == graphfile.Stdin {
		return graphfile.Decode(stdin, "<stdin>", format)
	}

	return graphfile.Load(params.Graph, format)
}

// newLogger creates a slog.Logger writing to outW. Unknown levels fall back
// to info and unknown formats to text.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
