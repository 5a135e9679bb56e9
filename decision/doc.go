// SPDX-License-Identifier: MIT
// Package: monoton/decision
//
// Purpose:
//   - Tie the engine together for table-level callers: audit an existing
//     decision table, or synthesize a new one with a chosen strategy.
//
// Pipelines:
//   - Audit:      schema → grid → rows as Assignment → monotone.Check → Report.
//     Violations are data; a failing table is a valid Report, not an error.
//   - Synthesize: schema → grid → Strategy.Assign → monotone.Verify → rows.
//     A violation here is fatal and no rows are returned.
//
// Strategies:
//   - TopoStrategy:      weighted buckets along a topological or rank order.
//   - MagnitudeStrategy: quantile buckets of normalized vector norms.
//   - RuleStrategy:      ordered count-threshold rules.
//
// Dependencies are injected through Options (grid ceilings, a
// metrics.Collector, an *slog.Logger); an Engine keeps no other state and
// is safe for concurrent use.
package decision
