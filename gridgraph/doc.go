// Package gridgraph treats the Cartesian product of several ordinal axes as a
// directed dominance graph, the structure every monotonicity check and
// synthesizer walks.
//
// What:
//
//   - GridGraph enumerates all nodes of an N-dimensional grid (one index per
//     axis) in mixed-radix row-major order: the last axis varies fastest.
//   - Edges point from a node to a node that dominates it (componentwise ≥).
//   - Two edge strategies:
//     – Covering (default): one edge per node and axis whose index can be
//     incremented by one step. O(n·k).
//     – FullDominance: every dominating pair, O(n²), then TransitiveReduction
//     drops the edges implied by two-hop paths. The result equals Covering.
//   - Assignment maps each node index to an outcome position.
//
// Why:
//
//   - The covering edges generate the same transitive closure as the full
//     dominance relation, so checking them alone proves monotonicity.
//
// Complexity:
//
//   - NewGridGraph (Covering):      O(n·k) time and memory.
//   - NewGridGraph (FullDominance): O(n²·k) to enumerate, O(n·d²) to reduce.
//   - Node/Index:                   O(k).
//
// Options:
//
//   - GridOptions.Strategy:     Covering or FullDominance.
//   - GridOptions.MaxNodes:     ceiling on ∏ dims for every strategy.
//   - GridOptions.MaxFullNodes: tighter ceiling for FullDominance.
//
// Errors:
//
//   - ErrNoDims, ErrBadDimension, ErrUnknownStrategy (with axis.ErrConstruction).
//   - axis.ErrSizeLimitExceeded: the grid exceeds a ceiling; nothing is allocated.
//   - ErrNodeOutOfRange, ErrNodeLength: bad node index or tuple in queries.
package gridgraph
