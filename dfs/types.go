// Package dfs defines the graph contract and sentinel errors shared by the
// orderings in this package.
package dfs

import (
	"errors"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil Digraph is passed to TopologicalSort or Rank.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that a cycle was encountered.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrBadSuccessor indicates a successor index outside [0, NodeCount).
	ErrBadSuccessor = errors.New("dfs: successor out of range")
)

// Digraph is the read-only view the orderings need: vertices are the
// integers [0, NodeCount) and Successors lists the heads of outgoing edges.
// *gridgraph.GridGraph satisfies it.
type Digraph interface {
	NodeCount() int
	Successors(u int) []int
}
