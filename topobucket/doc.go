// SPDX-License-Identifier: MIT

// Package topobucket synthesizes a decision-table Assignment by walking the
// grid in a topological order and filling outcome buckets to weighted target
// counts.
//
// What:
//
//   - New validates a weight vector (one proportion per outcome, summing to
//     1.0) at construction time; nothing is computed for a bad vector.
//   - Targets converts weights to integer counts: round(n·w_i) per bucket,
//     the last bucket absorbing the rounding remainder.
//   - Assign orders nodes (DFS topological order by default, longest-path
//     rank with WithOrder(OrderRank)), fills buckets in that order, then runs
//     monotone.Verify. A failed check is fatal: there is no repair and no retry.
//
// Complexity:
//
//   - Assign: O(V+E) ordering + O(V) fill + O(E) verification.
//
// Errors:
//
//   - ErrNoWeights, ErrWeightCount, ErrNegativeWeight, ErrWeightSum
//     (with axis.ErrConstruction).
//   - monotone.ErrNotMonotonic from the post-hoc gate.
package topobucket
