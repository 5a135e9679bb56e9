// Package monoton verifies and synthesizes monotonic decision tables: lookup
// tables that map every combination of ordinal input ratings to one ordinal
// outcome, such that raising any single input never lowers the outcome.
//
// What is in the box?
//
//	axis/       — versioned ordinal scales and the shared error taxonomy
//	gridgraph/  — the dominance grid over a list of axes (covering edges)
//	dfs/, bfs/  — topological order, longest-path rank and reachability
//	monotone/   — the checker: violations as data, Verify as a fatal gate
//	topobucket/ — weighted buckets filled along a topological order
//	magnitude/  — quantile buckets of normalized vector norms
//	threshold/  — ordered count-threshold rules
//	stats/      — min-max normalization, norms, linear percentiles
//	table/      — string-keyed rows and YAML table documents
//	decision/   — Audit and Synthesize pipelines with logging and metrics
//	metrics/    — Prometheus collectors on an injected registry
//	cmd/monoton — the command-line front end
//
// Quick example: two axes A, B ∈ {lo, hi} form the square
//
//	(lo,hi) ──► (hi,hi)
//	   ▲           ▲
//	(lo,lo) ──► (hi,lo)
//
// and an outcome assignment is monotonic iff no arrow points from a higher
// outcome to a lower one.
//
// Everything is pure and synchronous; graphs are rebuilt per call and no
// state is shared, so independent calls may run in parallel.
//
//	go install github.com/katalvlaran/monoton/cmd/monoton@latest
package monoton
