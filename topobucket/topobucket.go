// SPDX-License-Identifier: MIT

package topobucket

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/monoton/axis"
	"github.com/katalvlaran/monoton/dfs"
	"github.com/katalvlaran/monoton/gridgraph"
	"github.com/katalvlaran/monoton/monotone"
)

// WeightTolerance is the allowed |Σw − 1| slack.
const WeightTolerance = 1e-9

var (
	// ErrNoWeights indicates an empty weight vector.
	ErrNoWeights = errors.New("topobucket: weight vector is empty")
	// ErrWeightCount indicates len(weights) != outcome axis length.
	ErrWeightCount = errors.New("topobucket: weight count does not match outcome axis length")
	// ErrNegativeWeight indicates a negative or NaN weight.
	ErrNegativeWeight = errors.New("topobucket: weights must be finite and non-negative")
	// ErrWeightSum indicates weights not summing to 1.0.
	ErrWeightSum = errors.New("topobucket: weights must sum to 1.0")
)

// Order selects the node ordering buckets are filled along.
type Order int

const (
	// OrderTopological uses dfs.TopologicalSort.
	OrderTopological Order = iota
	// OrderRank uses dfs.RankOrder (longest path from the minimum node).
	OrderRank
)

// Option configures an Assigner.
type Option func(*Assigner)

// WithOrder selects the fill order.
func WithOrder(o Order) Option {
	return func(a *Assigner) { a.order = o }
}

// Assigner fills weighted buckets along a topological order.
// It is immutable after New and safe for concurrent use.
type Assigner struct {
	weights []float64
	order   Order
}

// New validates weights against an outcome axis of outcomeLen values.
func New(weights []float64, outcomeLen int, opts ...Option) (*Assigner, error) {
	const op = "topobucket.New"
	if len(weights) == 0 {
		return nil, axis.ConstructionError(op, ErrNoWeights)
	}
	if len(weights) != outcomeLen {
		return nil, axis.ConstructionError(fmt.Sprintf("%s: %d weights for %d outcomes", op, len(weights), outcomeLen), ErrWeightCount)
	}
	sum := 0.0
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, axis.ConstructionError(fmt.Sprintf("%s: weight #%d=%v", op, i, w), ErrNegativeWeight)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > WeightTolerance {
		return nil, axis.ConstructionError(fmt.Sprintf("%s: sum=%v", op, sum), ErrWeightSum)
	}

	a := &Assigner{weights: append([]float64(nil), weights...)}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Weights returns a copy of the weight vector.
func (a *Assigner) Weights() []float64 { return append([]float64(nil), a.weights...) }

// Targets returns the per-bucket node counts for n nodes: round(n·w_i)
// (half away from zero) for every bucket but the last, which takes the
// remainder. The running total is capped at n, so no count is negative and
// the counts always sum to n.
func (a *Assigner) Targets(n int) []int {
	k := len(a.weights)
	targets := make([]int, k)
	used := 0
	for i := 0; i < k-1; i++ {
		t := int(math.Round(float64(n) * a.weights[i]))
		if used+t > n {
			t = n - used
		}
		targets[i] = t
		used += t
	}
	targets[k-1] = n - used
	return targets
}

// Assign fills buckets along the configured order and verifies the result.
// The returned Assignment is complete and monotonic, or an error is returned
// and no Assignment at all.
func (a *Assigner) Assign(g *gridgraph.GridGraph) (gridgraph.Assignment, error) {
	if g == nil {
		return nil, monotone.ErrGraphNil
	}
	// 1. Linear order consistent with every edge
	var (
		order []int
		err   error
	)
	switch a.order {
	case OrderRank:
		order, err = dfs.RankOrder(g)
	default:
		order, err = dfs.TopologicalSort(g)
	}
	if err != nil {
		return nil, fmt.Errorf("topobucket: ordering: %w", err)
	}
	// 2. Fill the current bucket until its target is met, then advance
	targets := a.Targets(len(order))
	out := gridgraph.NewAssignment(g.NodeCount())
	bucket, filled := 0, 0
	for _, u := range order {
		for bucket < len(targets)-1 && filled >= targets[bucket] {
			bucket++
			filled = 0
		}
		out[u] = bucket
		filled++
	}
	// 3. Post-hoc gate: fatal on any violation
	if err := monotone.Verify(g, out); err != nil {
		return nil, fmt.Errorf("topobucket: %w", err)
	}

	return out, nil
}
