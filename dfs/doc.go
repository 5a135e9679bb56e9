// Package dfs implements depth‑first orderings on integer-indexed directed
// graphs: topological sort and longest-path ranking.
//
// What:
//
//   - TopologicalSort: reverse post-order of a white/gray/black DFS started
//     from every unvisited vertex in ascending index order. Returns
//     ErrCycleDetected if a back-edge is found.
//   - Rank: longest-path distance from any source vertex (Kahn layering).
//     On a dominance grid it equals the coordinate sum of each node.
//   - RankOrder: vertices sorted by (rank, index), a topological order in
//     which comparable-by-rank vertices are grouped.
//
// Why:
//
//   - Bucket synthesizers fill outcomes along a linear order consistent with
//     every edge; both orderings qualify.
//
// Key Types & Constants:
//
//   - Digraph: any graph exposing NodeCount and Successors (gridgraph.GridGraph).
//   - White, Gray, Black: visitation markers.
//
// Complexity:
//
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - Rank, RankOrder: Time O(V+E) (+ O(V log V) sort), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil        graph is nil
//   - ErrCycleDetected   cycle discovered
//   - ErrBadSuccessor    successor index outside [0, NodeCount)
package dfs
