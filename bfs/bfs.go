// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/monoton/dfs"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph dfs.Digraph
	queue []int
	res   *Result
}

// Walk runs breadth-first search on g from start.
// Successors are followed in the order g returns them, so the visit
// sequence is reproducible for a deterministic graph.
// Returns ErrGraphNil, ErrStartOutOfRange or dfs.ErrBadSuccessor.
func Walk(g dfs.Digraph, start int) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.NodeCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	w := &walker{
		graph: g,
		queue: make([]int, 0, n),
		res: &Result{
			Start: start,
			Order: make([]int, 0, n),
			Depth: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unreached
	}
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue records the depth of v and appends it to the queue.
func (w *walker) enqueue(v, d int) {
	w.res.Depth[v] = d
	w.queue = append(w.queue, v)
}

// loop processes the queue until it is empty or a successor is invalid.
func (w *walker) loop() error {
	n := w.graph.NodeCount()
	for len(w.queue) > 0 {
		u := w.queue[0]
		w.queue = w.queue[1:]
		d := w.res.Depth[u]
		w.res.Order = append(w.res.Order, u)
		for _, v := range w.graph.Successors(u) {
			if v < 0 || v >= n {
				return fmt.Errorf("%w: %d -> %d", dfs.ErrBadSuccessor, u, v)
			}
			if w.res.Depth[v] != Unreached {
				continue
			}
			w.enqueue(v, d+1)
		}
	}
	return nil
}
