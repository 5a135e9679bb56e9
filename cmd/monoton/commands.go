// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/monoton/decision"
	"github.com/katalvlaran/monoton/gridgraph"
	"github.com/katalvlaran/monoton/table"
)

func registerCommon(fs *flag.FlagSet, c *common) {
	fs.BoolVar(&c.verbose, "v", false, "Log at debug level")
	fs.IntVar(&c.maxNodes, "max-nodes", gridgraph.DefaultMaxNodes, "Refuse grids with more nodes (0 disables)")
	fs.BoolVar(&c.full, "full", false, "Build edges by full dominance plus transitive reduction")
	fs.BoolVar(&c.metrics, "metrics", false, "Print collected metrics to stderr on exit")
}

// loadDocument reads the single positional argument ("-" for stdin).
func loadDocument(fs *flag.FlagSet) (*table.Document, error) {
	if fs.NArg() != 1 {
		return nil, errors.New("expected exactly one table file")
	}
	path := fs.Arg(0)
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return table.ParseDocument(data)
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func runAudit(args []string, stdout, stderr io.Writer) int {
	var (
		c     common
		split string
		out   string
	)
	fs := flag.NewFlagSet("audit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	registerCommon(fs, &c)
	fs.StringVar(&split, "split", "", "Audit one sub-table per value of this input axis ID (e.g. E:1.1.0)")
	fs.StringVar(&out, "out", "", "Write the report to file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return exitError
	}

	doc, err := loadDocument(fs)
	if err != nil {
		fmt.Fprintf(stderr, "audit: %v\n", err)
		return exitError
	}
	e, flush, err := c.engine(stderr)
	if err != nil {
		fmt.Fprintf(stderr, "audit: %v\n", err)
		return exitError
	}
	defer flush()

	var reports []*decision.Report
	if split == "" {
		rep, err := e.AuditDocument(doc)
		if err != nil {
			fmt.Fprintf(stderr, "audit: %v\n", err)
			return exitError
		}
		reports = append(reports, rep)
	} else {
		s, err := doc.Schema()
		if err != nil {
			fmt.Fprintf(stderr, "audit: %v\n", err)
			return exitError
		}
		reports, err = e.AuditSplit(s, doc.Rows, split)
		if err != nil {
			fmt.Fprintf(stderr, "audit: %v\n", err)
			return exitError
		}
		for _, rep := range reports {
			rep.Table = doc.Name
		}
	}

	data, err := yaml.Marshal(reports)
	if err != nil {
		fmt.Fprintf(stderr, "audit: encode report: %v\n", err)
		return exitError
	}
	if err := writeOutput(stdout, out, data); err != nil {
		fmt.Fprintf(stderr, "audit: %v\n", err)
		return exitError
	}
	for _, rep := range reports {
		if !rep.Passed() {
			return exitViolation
		}
	}
	return exitOK
}

func runSynth(args []string, stdout, stderr io.Writer) int {
	var (
		c       common
		cfg     table.Synth
		weights string
		out     string
	)
	fs := flag.NewFlagSet("synth", flag.ContinueOnError)
	fs.SetOutput(stderr)
	registerCommon(fs, &c)
	fs.StringVar(&cfg.Strategy, "strategy", "", "topo, magnitude or rules (overrides the document)")
	fs.StringVar(&cfg.Order, "order", "", "topological or rank (topo only)")
	fs.StringVar(&weights, "weights", "", "Comma-separated outcome weights summing to 1 (topo only)")
	fs.IntVar(&cfg.Buckets, "buckets", 0, "Bucket count, 0 for one per outcome (magnitude only)")
	fs.StringVar(&cfg.Norm, "norm", "", "l1, l2 or linf (magnitude only)")
	fs.StringVar(&out, "out", "", "Write the synthesized document to file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return exitError
	}

	doc, err := loadDocument(fs)
	if err != nil {
		fmt.Fprintf(stderr, "synth: %v\n", err)
		return exitError
	}
	if cfg.Weights, err = parseWeights(weights); err != nil {
		fmt.Fprintf(stderr, "synth: %v\n", err)
		return exitError
	}
	merged := mergeSynth(doc.Synth, &cfg)
	st, err := decision.StrategyFor(merged)
	if err != nil {
		fmt.Fprintf(stderr, "synth: %v\n", err)
		return exitError
	}
	s, err := doc.Schema()
	if err != nil {
		fmt.Fprintf(stderr, "synth: %v\n", err)
		return exitError
	}
	e, flush, err := c.engine(stderr)
	if err != nil {
		fmt.Fprintf(stderr, "synth: %v\n", err)
		return exitError
	}
	defer flush()

	rows, err := e.Synthesize(s, st)
	if err != nil {
		fmt.Fprintf(stderr, "synth: %v\n", err)
		return exitError
	}
	res := table.NewDocument(doc.Name, s, rows)
	res.Synth = merged
	data, err := res.Marshal()
	if err != nil {
		fmt.Fprintf(stderr, "synth: %v\n", err)
		return exitError
	}
	if err := writeOutput(stdout, out, data); err != nil {
		fmt.Fprintf(stderr, "synth: %v\n", err)
		return exitError
	}
	return exitOK
}

func parseWeights(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		w, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("weight #%d: %w", i, err)
		}
		out[i] = w
	}
	return out, nil
}

// mergeSynth overlays flag values onto the document's synth section.
func mergeSynth(doc, flags *table.Synth) *table.Synth {
	m := table.Synth{}
	if doc != nil {
		m = *doc
	}
	if flags.Strategy != "" {
		m.Strategy = flags.Strategy
	}
	if flags.Order != "" {
		m.Order = flags.Order
	}
	if flags.Weights != nil {
		m.Weights = flags.Weights
	}
	if flags.Buckets != 0 {
		m.Buckets = flags.Buckets
	}
	if flags.Norm != "" {
		m.Norm = flags.Norm
	}
	return &m
}
