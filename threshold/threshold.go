// SPDX-License-Identifier: MIT

// Package threshold synthesizes outcomes from hand-written escalation rules.
//
// A Rule fires when at least MinCount coordinates of a node equal Value.
// Rules are evaluated strictly in order and the first match decides the
// outcome; nodes no rule matches get the default (lowest severity unless
// WithDefault says otherwise).
//
// Rule lists are not monotonic by construction: a list such as
// "any coordinate at its lowest value → highest outcome" escalates the wrong
// way. AssignGraph therefore runs the same fatal monotone gate as the
// geometric synthesizers.
package threshold

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/monoton/axis"
	"github.com/katalvlaran/monoton/gridgraph"
	"github.com/katalvlaran/monoton/monotone"
)

var (
	// ErrNoRules indicates an empty rule list.
	ErrNoRules = errors.New("threshold: rule list is empty")
	// ErrBadRule indicates a rule with a negative value, count or outcome.
	ErrBadRule = errors.New("threshold: rule fields must be non-negative")
	// ErrOutcomeRange indicates a rule or default outcome outside the outcome axis.
	ErrOutcomeRange = errors.New("threshold: outcome out of range")
)

// NoRule is the rule index Evaluate reports when the default applied.
const NoRule = -1

// Rule: if at least MinCount coordinates equal Value, the outcome is Outcome.
type Rule struct {
	Value    int `yaml:"value"`
	MinCount int `yaml:"min_count"`
	Outcome  int `yaml:"outcome"`
}

// String renders the rule as "≥MinCount×Value→Outcome".
func (r Rule) String() string {
	return fmt.Sprintf("≥%d×%d→%d", r.MinCount, r.Value, r.Outcome)
}

// matches reports whether vec satisfies the rule predicate.
func (r Rule) matches(vec []int) bool {
	if r.MinCount == 0 {
		return true
	}
	n := 0
	for _, c := range vec {
		if c == r.Value {
			n++
			if n >= r.MinCount {
				return true
			}
		}
	}
	return false
}

// Option configures an Assigner.
type Option func(*Assigner)

// WithDefault sets the outcome for nodes no rule matches.
func WithDefault(outcome int) Option {
	return func(a *Assigner) { a.def = outcome }
}

// Assigner evaluates an ordered rule list. Immutable after New.
type Assigner struct {
	rules []Rule
	def   int
}

// New validates rules and applies opts.
func New(rules []Rule, opts ...Option) (*Assigner, error) {
	const op = "threshold.New"
	if len(rules) == 0 {
		return nil, axis.ConstructionError(op, ErrNoRules)
	}
	for i, r := range rules {
		if r.Value < 0 || r.MinCount < 0 || r.Outcome < 0 {
			return nil, axis.ConstructionError(fmt.Sprintf("%s: rule #%d %+v", op, i, r), ErrBadRule)
		}
	}
	a := &Assigner{rules: append([]Rule(nil), rules...)}
	for _, opt := range opts {
		opt(a)
	}
	if a.def < 0 {
		return nil, axis.ConstructionError(fmt.Sprintf("%s: default=%d", op, a.def), ErrOutcomeRange)
	}
	return a, nil
}

// Rules returns a copy of the rule list.
func (a *Assigner) Rules() []Rule { return append([]Rule(nil), a.rules...) }

// Default returns the unmatched outcome.
func (a *Assigner) Default() int { return a.def }

// Evaluate returns the outcome for vec and the index of the rule that
// produced it, or NoRule when the default applied.
func (a *Assigner) Evaluate(vec []int) (outcome, ruleIndex int) {
	for i, r := range a.rules {
		if r.matches(vec) {
			return r.Outcome, i
		}
	}
	return a.def, NoRule
}

// Assign evaluates every node in input order.
func (a *Assigner) Assign(nodes [][]int) []int {
	out := make([]int, len(nodes))
	for i, vec := range nodes {
		out[i], _ = a.Evaluate(vec)
	}
	return out
}

// AssignGraph checks every reachable outcome against outcomeLen, assigns
// every node of g, and verifies monotonicity. A violation is fatal.
func (a *Assigner) AssignGraph(g *gridgraph.GridGraph, outcomeLen int) (gridgraph.Assignment, error) {
	const op = "threshold.AssignGraph"
	if g == nil {
		return nil, monotone.ErrGraphNil
	}
	if a.def >= outcomeLen {
		return nil, axis.ConstructionError(fmt.Sprintf("%s: default=%d, %d outcomes", op, a.def, outcomeLen), ErrOutcomeRange)
	}
	for i, r := range a.rules {
		if r.Outcome >= outcomeLen {
			return nil, axis.ConstructionError(fmt.Sprintf("%s: rule #%d outcome=%d, %d outcomes", op, i, r.Outcome, outcomeLen), ErrOutcomeRange)
		}
	}

	out := gridgraph.NewAssignment(g.NodeCount())
	for i, node := range g.Nodes() {
		out[i], _ = a.Evaluate(node)
	}
	if err := monotone.Verify(g, out); err != nil {
		return nil, fmt.Errorf("threshold: %w", err)
	}
	return out, nil
}
