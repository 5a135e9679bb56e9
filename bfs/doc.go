// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first search over an integer-indexed
// digraph (dfs.Digraph), returning edge-count distances and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance from a start node.
//   - Result carries Order and a dense Depth slice indexed by node.
//
// Why
//
//   - On a dominance grid the nodes reachable from u are exactly the nodes
//     dominating u, so one walk per node enumerates every dominance pair
//     (monotone.CheckAllPairs).
//   - Depth from the all-lowest node equals the coordinate sum, the same
//     layering dfs.Rank computes by longest path.
//
// Complexity
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Walk(g, u)
//	if err != nil {
//	    // ErrGraphNil, ErrStartOutOfRange or dfs.ErrBadSuccessor
//	}
//	up := res.Order[1:] // every node dominating u
package bfs
