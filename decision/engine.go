// SPDX-License-Identifier: MIT

package decision

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/monoton/axis"
	"github.com/katalvlaran/monoton/gridgraph"
	"github.com/katalvlaran/monoton/metrics"
	"github.com/katalvlaran/monoton/monotone"
	"github.com/katalvlaran/monoton/table"
)

// Option configures an Engine.
type Option func(*Engine)

// WithGridOptions sets the grid strategy and size ceilings.
func WithGridOptions(o gridgraph.GridOptions) Option {
	return func(e *Engine) { e.grid = o }
}

// WithMetrics records audits and syntheses on c.
func WithMetrics(c *metrics.Collector) Option {
	return func(e *Engine) { e.metrics = c }
}

// WithLogger sets the logger. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("decision: WithLogger(nil)")
	}
	return func(e *Engine) { e.log = l }
}

// Engine runs audits and syntheses.
type Engine struct {
	grid    gridgraph.GridOptions
	metrics *metrics.Collector
	log     *slog.Logger
}

// New returns an Engine with default grid options, no metrics and a
// discarding logger, then applies opts.
func New(opts ...Option) *Engine {
	e := &Engine{
		grid: gridgraph.DefaultGridOptions(),
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Report is the result of one audit.
type Report struct {
	ID         uuid.UUID      `yaml:"id"`
	Table      string         `yaml:"table,omitempty"`
	Slice      string         `yaml:"slice,omitempty"`
	Nodes      int            `yaml:"nodes"`
	Edges      int            `yaml:"edges"`
	Violations []table.Record `yaml:"violations,omitempty"`
}

// Passed reports whether the audited table is monotonic.
func (r *Report) Passed() bool { return len(r.Violations) == 0 }

// graph builds the dominance grid for s and records its size.
func (e *Engine) graph(s *table.Schema) (*gridgraph.GridGraph, error) {
	g, err := s.Graph(e.grid)
	if err != nil {
		if errors.Is(err, axis.ErrSizeLimitExceeded) {
			e.log.Warn("grid too large, split the table by one axis",
				"dims", s.Dims(), "max_nodes", e.grid.MaxNodes, "error", err)
		}
		return nil, err
	}
	e.metrics.ObserveGrid(g.NodeCount())
	e.log.Debug("grid built", "dims", s.Dims(), "nodes", g.NodeCount(), "edges", g.EdgeCount(), "strategy", g.Strategy().String())
	return g, nil
}

// Audit loads rows over the grid of s and checks every covering edge.
// Malformed rows are an error; violations are returned in the Report.
func (e *Engine) Audit(s *table.Schema, rows []table.Row) (rep *Report, err error) {
	start := time.Now()
	defer func() {
		n := 0
		if rep != nil {
			n = len(rep.Violations)
		}
		e.metrics.ObserveAudit(n, err, time.Since(start))
	}()

	g, err := e.graph(s)
	if err != nil {
		return nil, fmt.Errorf("decision: audit: %w", err)
	}
	a, err := s.ToAssignment(g, rows)
	if err != nil {
		return nil, fmt.Errorf("decision: audit: %w", err)
	}
	vs, err := monotone.Check(g, a)
	if err != nil {
		return nil, fmt.Errorf("decision: audit: %w", err)
	}

	rep = &Report{
		ID:         uuid.New(),
		Nodes:      g.NodeCount(),
		Edges:      g.EdgeCount(),
		Violations: s.Records(g, vs),
	}
	for _, r := range rep.Violations {
		e.log.Debug("violation", "report", rep.ID, "from", r.From, "to", r.To,
			"from_outcome", r.FromOutcome, "to_outcome", r.ToOutcome)
	}
	e.log.Info("audit complete", "report", rep.ID, "nodes", rep.Nodes, "edges", rep.Edges,
		"violations", len(rep.Violations), "passed", rep.Passed())
	return rep, nil
}

// AuditDocument audits the rows of d and names the report after it.
func (e *Engine) AuditDocument(d *table.Document) (*Report, error) {
	s, err := d.Schema()
	if err != nil {
		return nil, fmt.Errorf("decision: audit %q: %w", d.Name, err)
	}
	rep, err := e.Audit(s, d.Rows)
	if err != nil {
		return nil, err
	}
	rep.Table = d.Name
	return rep, nil
}

// AuditSplit audits one sub-table per value of the input axis axisID.
// Each slice drops that axis, so grids too large to audit whole can still
// be checked; reports follow the axis value order.
//
// Dominance across slices is not checked: a full audit also compares nodes
// that differ only on axisID.
func (e *Engine) AuditSplit(s *table.Schema, rows []table.Row, axisID string) ([]*Report, error) {
	splits, err := s.SplitBy(axisID, rows)
	if err != nil {
		return nil, fmt.Errorf("decision: audit split: %w", err)
	}
	out := make([]*Report, 0, len(splits))
	for _, sp := range splits {
		rep, err := e.Audit(sp.Schema, sp.Rows)
		if err != nil {
			return nil, fmt.Errorf("decision: audit split %s=%s: %w", axisID, sp.Value, err)
		}
		rep.Slice = axisID + "=" + sp.Value
		out = append(out, rep)
	}
	return out, nil
}

// Synthesize builds a complete, monotonic table for s with st.
// The result is verified here regardless of what st checks itself; a
// violation is fatal and no rows are returned.
func (e *Engine) Synthesize(s *table.Schema, st Strategy) (rows []table.Row, err error) {
	if st == nil {
		return nil, axis.ConstructionError("decision.Synthesize", ErrNilStrategy)
	}
	start := time.Now()
	defer func() { e.metrics.ObserveSynthesis(st.Name(), err, time.Since(start)) }()

	g, err := e.graph(s)
	if err != nil {
		return nil, fmt.Errorf("decision: synthesize: %w", err)
	}
	a, err := st.Assign(g, s.Outcome.Len())
	if err != nil {
		e.log.Error("synthesis failed", "strategy", st.Name(), "error", err)
		return nil, fmt.Errorf("decision: synthesize %s: %w", st.Name(), err)
	}
	if err := monotone.Verify(g, a); err != nil {
		e.log.Error("synthesis rejected", "strategy", st.Name(), "error", err)
		return nil, fmt.Errorf("decision: synthesize %s: %w", st.Name(), err)
	}
	rows, err = s.ToRows(g, a)
	if err != nil {
		return nil, fmt.Errorf("decision: synthesize %s: %w", st.Name(), err)
	}
	e.log.Info("synthesis complete", "strategy", st.Name(), "nodes", g.NodeCount(),
		"counts", a.Counts(s.Outcome.Len()))
	return rows, nil
}
