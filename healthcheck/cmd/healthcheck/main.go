package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hostkit/hostkit/healthcheck/internal/config"
	"github.com/hostkit/hostkit/healthcheck/internal/probe"
	"github.com/hostkit/hostkit/healthcheck/internal/report"
	"github.com/hostkit/hostkit/pkg/clilog"
	"github.com/hostkit/hostkit/pkg/exposition"
)

// Exit codes. With --nagios the status itself is the exit code (0/1/2) and
// collection failures exit 3 (UNKNOWN).
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
	exitUnknown = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("healthcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "optional YAML config file")
		diskPath   = fs.String("disk-path", "", "filesystem path to report disk usage for (default /)")
		format     = fs.String("format", "json", "output format: json|prometheus")
		nagios     = fs.Bool("nagios", false, "exit 0/1/2 for OK/WARNING/CRITICAL, 3 on failure")
		verbose    = fs.Bool("v", false, "debug logging on stderr")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	failCode := exitFailure
	if *nagios {
		failCode = exitUnknown
	}
	fail := func(err error) int {
		fmt.Fprintf(stderr, "healthcheck: %v\n", err)
		return failCode
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return fail(err)
		}
		cfg = loaded
	}
	if *diskPath != "" {
		cfg.DiskPath = *diskPath
	}
	if err := cfg.Validate(); err != nil {
		return fail(fmt.Errorf("config: %w", err))
	}

	outFormat, err := exposition.ParseFormat(*format)
	if err != nil {
		fmt.Fprintf(stderr, "healthcheck: %v\n", err)
		return exitUsage
	}

	if _, err := clilog.Setup(stderr, cfg.LogLevel, *verbose); err != nil {
		return fail(err)
	}
	slog.Debug("healthcheck starting",
		"proc_root", cfg.ProcRoot,
		"disk_path", cfg.DiskPath,
		"sample_delay", cfg.SampleDelay,
	)

	r, err := report.NewBuilder(probe.New(cfg.ProcRoot), cfg).Build()
	if err != nil {
		return fail(err)
	}

	switch outFormat {
	case exposition.FormatPrometheus:
		err = report.WritePrometheus(stdout, r)
	default:
		err = report.WriteJSON(stdout, r)
	}
	if err != nil {
		return fail(fmt.Errorf("write report: %w", err))
	}

	if *nagios {
		return r.OverallStatus.Severity()
	}
	return exitOK
}
