// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/monoton.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrNoDims indicates a grid built from zero axes.
	ErrNoDims = errors.New("gridgraph: at least one axis is required")
	// ErrBadDimension indicates an axis with no values.
	ErrBadDimension = errors.New("gridgraph: every axis must have at least one value")
	// ErrUnknownStrategy indicates a Strategy value outside the declared set.
	ErrUnknownStrategy = errors.New("gridgraph: unknown edge strategy")
	// ErrNodeOutOfRange indicates a node index or coordinate outside the grid.
	ErrNodeOutOfRange = errors.New("gridgraph: node out of range")
	// ErrNodeLength indicates a node tuple whose length differs from the axis count.
	ErrNodeLength = errors.New("gridgraph: node length does not match axis count")
)

// Strategy selects how dominance edges are built.
type Strategy int

const (
	// Covering adds only single-step edges: one axis, one position.
	Covering Strategy = iota
	// FullDominance adds every dominating pair, then reduces to the covering set.
	FullDominance
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Covering:
		return "covering"
	case FullDominance:
		return "full"
	default:
		return "unknown"
	}
}

// Node is one grid point: an index per axis, in axis order.
type Node []int

// Edge is a dominance edge From→To between node indices; To dominates From.
type Edge struct {
	From, To int
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Strategy chooses the edge construction algorithm.
	Strategy Strategy
	// MaxNodes caps ∏ dims for any strategy; <= 0 disables the cap.
	MaxNodes int
	// MaxFullNodes caps ∏ dims when Strategy == FullDominance; <= 0 disables it.
	MaxFullNodes int
}

// Default ceilings.
const (
	DefaultMaxNodes     = 1 << 20
	DefaultMaxFullNodes = 512
)

// DefaultGridOptions returns a GridOptions with default settings:
// Strategy=Covering, MaxNodes=DefaultMaxNodes, MaxFullNodes=DefaultMaxFullNodes.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Strategy:     Covering,
		MaxNodes:     DefaultMaxNodes,
		MaxFullNodes: DefaultMaxFullNodes,
	}
}

// GridGraph is the dominance graph over a grid. It is immutable once built.
// dims holds axis lengths; strides[i] is the index distance of one step on axis i.
// succ/pred are adjacency lists in ascending node order.
type GridGraph struct {
	dims     []int
	strides  []int
	n        int
	strategy Strategy
	edges    []Edge
	succ     [][]int
	pred     [][]int
}

// Unassigned marks a node without an outcome.
const Unassigned = -1

// Assignment maps node index → outcome position.
type Assignment []int

// NewAssignment returns an Assignment of n Unassigned entries.
func NewAssignment(n int) Assignment {
	a := make(Assignment, n)
	for i := range a {
		a[i] = Unassigned
	}
	return a
}

// Complete reports whether every node has an outcome.
func (a Assignment) Complete() bool {
	for _, o := range a {
		if o == Unassigned {
			return false
		}
	}
	return true
}

// Counts returns how many nodes landed in each of k outcomes.
// Outcomes outside [0,k) are ignored.
func (a Assignment) Counts(k int) []int {
	counts := make([]int, k)
	for _, o := range a {
		if o >= 0 && o < k {
			counts[o]++
		}
	}
	return counts
}
