// SPDX-License-Identifier: MIT

package decision

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/monoton/axis"
	"github.com/katalvlaran/monoton/gridgraph"
	"github.com/katalvlaran/monoton/magnitude"
	"github.com/katalvlaran/monoton/stats"
	"github.com/katalvlaran/monoton/table"
	"github.com/katalvlaran/monoton/threshold"
	"github.com/katalvlaran/monoton/topobucket"
)

var (
	// ErrNilStrategy indicates Synthesize was called without a strategy.
	ErrNilStrategy = errors.New("decision: strategy is nil")
	// ErrUnknownStrategy indicates an unrecognized strategy or order name.
	ErrUnknownStrategy = errors.New("decision: unknown strategy")
	// ErrBucketCount indicates more magnitude buckets than outcome values.
	ErrBucketCount = errors.New("decision: bucket count exceeds outcome axis length")
)

// Strategy maps every node of a grid to an outcome index in [0, outcomeLen).
type Strategy interface {
	Name() string
	Assign(g *gridgraph.GridGraph, outcomeLen int) (gridgraph.Assignment, error)
}

// TopoStrategy fills weighted buckets along a linear extension of the grid.
type TopoStrategy struct {
	Weights []float64
	Order   topobucket.Order
}

// Name implements Strategy.
func (TopoStrategy) Name() string { return "topo" }

// Assign implements Strategy.
func (s TopoStrategy) Assign(g *gridgraph.GridGraph, outcomeLen int) (gridgraph.Assignment, error) {
	a, err := topobucket.New(s.Weights, outcomeLen, topobucket.WithOrder(s.Order))
	if err != nil {
		return nil, err
	}
	return a.Assign(g)
}

// MagnitudeStrategy bins normalized node norms into quantile buckets.
// Buckets == 0 uses one bucket per outcome value.
type MagnitudeStrategy struct {
	Buckets int
	Norm    stats.Norm
}

// Name implements Strategy.
func (MagnitudeStrategy) Name() string { return "magnitude" }

// Assign implements Strategy.
func (s MagnitudeStrategy) Assign(g *gridgraph.GridGraph, outcomeLen int) (gridgraph.Assignment, error) {
	k := s.Buckets
	if k == 0 {
		k = outcomeLen
	}
	if k > outcomeLen {
		return nil, axis.ConstructionError(fmt.Sprintf("decision.MagnitudeStrategy: k=%d, %d outcomes", k, outcomeLen), ErrBucketCount)
	}
	norm := s.Norm
	if norm == 0 {
		norm = stats.L2
	}
	return magnitude.AssignGraph(g, k, norm)
}

// RuleStrategy evaluates ordered count-threshold rules.
type RuleStrategy struct {
	Rules   []threshold.Rule
	Default int
}

// Name implements Strategy.
func (RuleStrategy) Name() string { return "rules" }

// Assign implements Strategy.
func (s RuleStrategy) Assign(g *gridgraph.GridGraph, outcomeLen int) (gridgraph.Assignment, error) {
	a, err := threshold.New(s.Rules, threshold.WithDefault(s.Default))
	if err != nil {
		return nil, err
	}
	return a.AssignGraph(g, outcomeLen)
}

// StrategyFor builds the Strategy a document's synth section describes.
func StrategyFor(cfg *table.Synth) (Strategy, error) {
	const op = "decision.StrategyFor"
	if cfg == nil {
		return nil, axis.ConstructionError(op, ErrNilStrategy)
	}
	switch strings.ToLower(cfg.Strategy) {
	case "topo", "topological":
		order, err := parseOrder(cfg.Order)
		if err != nil {
			return nil, err
		}
		return TopoStrategy{Weights: cfg.Weights, Order: order}, nil
	case "magnitude":
		s := MagnitudeStrategy{Buckets: cfg.Buckets}
		if cfg.Norm != "" {
			n, err := stats.ParseNorm(cfg.Norm)
			if err != nil {
				return nil, axis.ConstructionError(op, err)
			}
			s.Norm = n
		}
		return s, nil
	case "rules":
		return RuleStrategy{Rules: cfg.Rules, Default: cfg.Default}, nil
	default:
		return nil, axis.ConstructionError(fmt.Sprintf("%s: %q", op, cfg.Strategy), ErrUnknownStrategy)
	}
}

func parseOrder(s string) (topobucket.Order, error) {
	switch strings.ToLower(s) {
	case "", "topological":
		return topobucket.OrderTopological, nil
	case "rank":
		return topobucket.OrderRank, nil
	default:
		return 0, axis.ConstructionError(fmt.Sprintf("decision: order %q", s), ErrUnknownStrategy)
	}
}
