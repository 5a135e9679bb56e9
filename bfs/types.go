// SPDX-License-Identifier: MIT

package bfs

import "errors"

// Sentinel errors for BFS execution.
var (
	// ErrStartOutOfRange is returned when the start node is not in the graph.
	ErrStartOutOfRange = errors.New("bfs: start node out of range")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Unreached marks a node the walk never enqueued in Result.Depth.
const Unreached = -1

// Result holds the outcome of a walk:
//   - Order: nodes in visit sequence, start first.
//   - Depth: edge count from the start, Unreached if never enqueued.
type Result struct {
	Start int
	Order []int
	Depth []int
}
