// SPDX-License-Identifier: MIT

// Package monotone checks an outcome Assignment against a dominance
// GridGraph: for every edge u→v the outcome of v must not be lower than the
// outcome of u. Outcomes are compared by position on the outcome axis only.
//
// Violations are data, not errors: Check returns the list and callers decide.
// Synthesizers call Verify, which turns a non-empty list into the fatal
// ErrNotMonotonic.
//
// Complexity:
//
//   - Check:         O(E) over the graph's (covering) edges.
//   - CheckAllPairs: O(n·(n+E)), one BFS per node over every dominance pair.
package monotone

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/monoton/bfs"
	"github.com/katalvlaran/monoton/gridgraph"
)

var (
	// ErrGraphNil indicates a nil graph.
	ErrGraphNil = errors.New("monotone: graph is nil")

	// ErrAssignmentSize indicates an assignment whose length differs from the node count.
	ErrAssignmentSize = errors.New("monotone: assignment size does not match node count")

	// ErrIncomplete indicates an assignment with an Unassigned node.
	ErrIncomplete = errors.New("monotone: assignment is incomplete")

	// ErrNotMonotonic indicates a synthesized assignment failed its post-hoc check.
	ErrNotMonotonic = errors.New("monotone: assignment is not monotonic")
)

// Violation records one dominance pair whose outcomes decrease:
// To dominates From, yet FromOutcome > ToOutcome.
type Violation struct {
	From        int
	To          int
	FromOutcome int
	ToOutcome   int
}

// String renders the violation with node indices.
func (v Violation) String() string {
	return fmt.Sprintf("%d(%d) -> %d(%d)", v.From, v.FromOutcome, v.To, v.ToOutcome)
}

// validate checks graph presence and assignment shape.
func validate(g *gridgraph.GridGraph, a gridgraph.Assignment) error {
	if g == nil {
		return ErrGraphNil
	}
	if len(a) != g.NodeCount() {
		return fmt.Errorf("%w: got %d, want %d", ErrAssignmentSize, len(a), g.NodeCount())
	}
	for i, o := range a {
		if o < 0 {
			return fmt.Errorf("%w: node %s", ErrIncomplete, g.FormatNode(i))
		}
	}
	return nil
}

// Check compares a[u] and a[v] for every edge u→v of g and records each pair
// with a[u] > a[v]. Ties never violate. An empty result means a is monotonic:
// the covering edges generate every dominance pair by transitivity.
// Results follow g's edge order, so repeated calls return identical lists.
func Check(g *gridgraph.GridGraph, a gridgraph.Assignment) ([]Violation, error) {
	if err := validate(g, a); err != nil {
		return nil, err
	}
	var out []Violation
	for _, e := range g.Edges() {
		if a[e.From] > a[e.To] {
			out = append(out, Violation{From: e.From, To: e.To, FromOutcome: a[e.From], ToOutcome: a[e.To]})
		}
	}
	return out, nil
}

// CheckAllPairs compares every dominance pair (u, v), v ≠ u, not just graph
// edges. It reports strictly more pairs than Check on a non-monotonic
// assignment and exactly none on a monotonic one.
//
// The nodes dominating u are the nodes reachable from u, so one BFS per
// node enumerates every pair. Results are ordered by (From, To).
func CheckAllPairs(g *gridgraph.GridGraph, a gridgraph.Assignment) ([]Violation, error) {
	if err := validate(g, a); err != nil {
		return nil, err
	}
	var out []Violation
	for u := 0; u < g.NodeCount(); u++ {
		res, err := bfs.Walk(g, u)
		if err != nil {
			return nil, fmt.Errorf("monotone: walk from %s: %w", g.FormatNode(u), err)
		}
		up := res.Order[1:]
		sort.Ints(up)
		for _, v := range up {
			if a[u] > a[v] {
				out = append(out, Violation{From: u, To: v, FromOutcome: a[u], ToOutcome: a[v]})
			}
		}
	}
	return out, nil
}

// Verify returns ErrNotMonotonic (with the violation count and the first
// violation) when Check finds anything, and Check's own error otherwise.
func Verify(g *gridgraph.GridGraph, a gridgraph.Assignment) error {
	vs, err := Check(g, a)
	if err != nil {
		return err
	}
	if len(vs) > 0 {
		first := vs[0]
		return fmt.Errorf("%w: %d violation(s), first (%s)=%d > (%s)=%d",
			ErrNotMonotonic, len(vs),
			g.FormatNode(first.From), first.FromOutcome,
			g.FormatNode(first.To), first.ToOutcome)
	}
	return nil
}
