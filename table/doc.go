// SPDX-License-Identifier: MIT
// Package: monoton/table
//
// Purpose:
//   - Translate between the string-keyed rows a decision table is written in
//     and the integer tuples the engine computes on.
//   - Load and store whole tables as YAML documents.
//
// Core types:
//   - Schema: explicitly ordered input axes plus one outcome axis. Axis order
//     is part of the contract and is validated, never inferred from map
//     iteration.
//   - Row: map from axis ID ("E:1.1.0") to value key ("P").
//   - Record: a monotone.Violation rendered with axis and value keys.
//   - Document: YAML form of a schema, its rows and an optional synthesis
//     section.
//
// Exposed API:
//   - NewSchema(inputs, outcome)
//   - (*Schema).Graph(opts)          -> *gridgraph.GridGraph
//   - (*Schema).ToAssignment(g, rows) -> gridgraph.Assignment
//   - (*Schema).ToRows(g, a)          -> []Row (node order)
//   - (*Schema).FormatNode(g, i)      -> "E:N,SI:L"
//   - (*Schema).Records(g, vs)        -> []Record
//   - (*Schema).SplitBy(axisID, rows) -> []Split
//   - ParseDocument(data), (*Document).Schema(), MarshalRows(rows)
//
// Errors:
//   - Every malformed row or document is rejected with a precise sentinel
//     joined with axis.ErrConstruction.
package table
