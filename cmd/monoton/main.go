// SPDX-License-Identifier: MIT

// Command monoton audits and synthesizes monotonic decision tables stored as
// YAML documents.
//
//	monoton audit [-split AXIS] [-max-nodes N] [-full] [-v] table.yaml
//	monoton synth [-strategy topo|magnitude|rules] [-weights w,...] [-out FILE] table.yaml
//
// Exit status: 0 on success, 1 when an audit finds violations, 2 on any error.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/monoton/decision"
	"github.com/katalvlaran/monoton/gridgraph"
	"github.com/katalvlaran/monoton/metrics"
)

var Version = "v0.1.0"

const (
	exitOK        = 0
	exitViolation = 1
	exitError     = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: monoton <audit|synth|version> [flags] table.yaml")
	fmt.Fprintln(w, "Run 'monoton <command> -h' for command flags.")
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitError
	}
	switch args[0] {
	case "audit":
		return runAudit(args[1:], stdout, stderr)
	case "synth":
		return runSynth(args[1:], stdout, stderr)
	case "version":
		fmt.Fprintln(stdout, Version)
		return exitOK
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", args[0])
		usage(stderr)
		return exitError
	}
}

// common holds the flags every subcommand shares.
type common struct {
	verbose  bool
	maxNodes int
	full     bool
	metrics  bool
}

func (c *common) gridOptions() gridgraph.GridOptions {
	opts := gridgraph.DefaultGridOptions()
	opts.MaxNodes = c.maxNodes
	if c.full {
		opts.Strategy = gridgraph.FullDominance
	}
	return opts
}

func (c *common) logger(stderr io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

// engine builds a decision.Engine wired to a private registry. The returned
// flush writes the registry in text exposition format when -metrics is set.
func (c *common) engine(stderr io.Writer) (*decision.Engine, func(), error) {
	reg := prometheus.NewRegistry()
	col, err := metrics.New(reg)
	if err != nil {
		return nil, nil, err
	}
	e := decision.New(
		decision.WithGridOptions(c.gridOptions()),
		decision.WithMetrics(col),
		decision.WithLogger(c.logger(stderr)),
	)
	flush := func() {
		if !c.metrics {
			return
		}
		mfs, err := reg.Gather()
		if err != nil {
			fmt.Fprintf(stderr, "gather metrics: %v\n", err)
			return
		}
		enc := expfmt.NewEncoder(stderr, expfmt.NewFormat(expfmt.TypeTextPlain))
		for _, mf := range mfs {
			if err := enc.Encode(mf); err != nil {
				fmt.Fprintf(stderr, "encode metrics: %v\n", err)
				return
			}
		}
	}
	return e, flush, nil
}
