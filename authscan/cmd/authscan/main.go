package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hostkit/hostkit/authscan/internal/config"
	"github.com/hostkit/hostkit/authscan/internal/patterns"
	"github.com/hostkit/hostkit/authscan/internal/scan"
	"github.com/hostkit/hostkit/pkg/clilog"
	"github.com/hostkit/hostkit/pkg/exposition"
	"github.com/hostkit/hostkit/pkg/textfile"
)

// Exit codes follow sysexits.h for the two input failures callers care about.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
	exitNoInput = 66
	exitNoPerm  = 77
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("authscan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "optional YAML config file")
		logPath    = fs.String("log", "", "log path (default "+config.DefaultLogPath+")")
		patternSet = fs.String("patterns", "", "pattern set: extended|base (default extended)")
		topN       = fs.Int("top", 0, "leaderboard length (default 10)")
		format     = fs.String("format", "json", "output format: json|prometheus")
		verbose    = fs.Bool("v", false, "debug logging on stderr")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	outFormat, err := exposition.ParseFormat(*format)
	if err != nil {
		fmt.Fprintf(stderr, "authscan: %v\n", err)
		return exitUsage
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return fail(stderr, err)
		}
		cfg = loaded
	}
	if *logPath != "" {
		cfg.LogPath = *logPath
	}
	if *patternSet != "" {
		cfg.PatternSet = *patternSet
	}
	if *topN != 0 {
		cfg.TopN = *topN
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "authscan: config: %v\n", err)
		return exitUsage
	}

	if _, err := clilog.Setup(stderr, cfg.LogLevel, *verbose); err != nil {
		return fail(stderr, err)
	}

	set, err := patterns.Lookup(cfg.PatternSet)
	if err != nil {
		return fail(stderr, err)
	}
	slog.Debug("authscan starting", "log_path", cfg.LogPath, "pattern_set", set.Name, "top_n", cfg.TopN)

	r, err := scan.Run(scan.Options{LogPath: cfg.LogPath, Set: set, TopN: cfg.TopN})
	if err != nil {
		return fail(stderr, err)
	}

	switch outFormat {
	case exposition.FormatPrometheus:
		err = scan.WritePrometheus(stdout, r)
	default:
		err = scan.WriteJSON(stdout, r)
	}
	if err != nil {
		return fail(stderr, fmt.Errorf("write result: %w", err))
	}
	return exitOK
}

// fail prints err on one line and maps it to an exit code.
func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "authscan: %v\n", err)
	switch {
	case errors.Is(err, textfile.ErrNotFound):
		return exitNoInput
	case errors.Is(err, textfile.ErrPermissionDenied):
		return exitNoPerm
	default:
		return exitFailure
	}
}
