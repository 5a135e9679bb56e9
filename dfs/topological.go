// Package dfs provides orderings on directed graphs, including
// topological sort and longest-path rank.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
// If the graph contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (recursion stack and state slice)
package dfs

import (
	"fmt"
	"reflect"
	"sort"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph Digraph // the graph being sorted
	n     int     // vertex count
	state []int   // visitation state: White, Gray, Black
	order []int   // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices in g.
// If g is nil, returns ErrGraphNil.
// If a cycle is detected, returns ErrCycleDetected.
// If a successor index is out of range, returns ErrBadSuccessor.
func TopologicalSort(g Digraph) ([]int, error) {
	// 1. Validate graph
	if isNil(g) {
		return nil, ErrGraphNil
	}
	// 2. Initialize sorter state
	n := g.NodeCount()
	sorter := &topoSorter{
		graph: g,
		n:     n,
		state: make([]int, n),    // all vertices start as White (0)
		order: make([]int, 0, n), // capacity hint for post-order
	}
	// 3. Drive DFS from every unvisited vertex, ascending
	for v := 0; v < n; v++ {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 4. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter) visit(id int) error {
	// 1. Cycle detection: if already Gray, we found a back-edge
	if t.state[id] == Gray {
		return ErrCycleDetected
	}
	// 2. Already fully processed (Black)? then skip
	if t.state[id] == Black {
		return nil
	}
	// 3. Mark as in-progress (Gray)
	t.state[id] = Gray

	// 4. Explore each outgoing edge
	for _, next := range t.graph.Successors(id) {
		if next < 0 || next >= t.n {
			return fmt.Errorf("%w: %d→%d", ErrBadSuccessor, id, next)
		}
		if err := t.visit(next); err != nil {
			return err
		}
	}

	// 5. Mark as fully explored (Black) and record in post-order
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}

// Rank returns, for each vertex, the length of the longest path reaching it
// from any source (in-degree 0) vertex. Sources have rank 0.
// Returns ErrCycleDetected if some vertex is never released (cycle).
// Complexity: O(V+E) time, O(V) memory.
func Rank(g Digraph) ([]int, error) {
	if isNil(g) {
		return nil, ErrGraphNil
	}
	n := g.NodeCount()
	// 1. In-degrees
	indeg := make([]int, n)
	for u := 0; u < n; u++ {
		for _, v := range g.Successors(u) {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("%w: %d→%d", ErrBadSuccessor, u, v)
			}
			indeg[v]++
		}
	}
	// 2. Kahn layering, relaxing rank[v] = max(rank[u]+1)
	rank := make([]int, n)
	queue := make([]int, 0, n)
	for u := 0; u < n; u++ {
		if indeg[u] == 0 {
			queue = append(queue, u)
		}
	}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range g.Successors(u) {
			if rank[u]+1 > rank[v] {
				rank[v] = rank[u] + 1
			}
			indeg[v]--
			if indeg[v] == 0 {
				queue = append(queue, v)
			}
		}
	}
	// 3. Every vertex released exactly once unless a cycle holds some back
	if len(queue) != n {
		return nil, ErrCycleDetected
	}

	return rank, nil
}

// RankOrder returns all vertices sorted by (Rank, index). Because every edge
// strictly increases rank, the result is a topological order.
func RankOrder(g Digraph) ([]int, error) {
	rank, err := Rank(g)
	if err != nil {
		return nil, err
	}
	order := make([]int, len(rank))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return rank[order[a]] < rank[order[b]]
	})
	return order, nil
}

// isNil reports whether g is nil or a typed nil pointer.
func isNil(g Digraph) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
