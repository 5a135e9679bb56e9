// SPDX-License-Identifier: MIT

// Package axis defines the ordinal rating scales ("decision points") the
// engine combines into decision tables, plus the error taxonomy shared by
// every other package of the module.
//
// What:
//
//   - Axis: a named, versioned, ordered list of values, lowest severity first.
//     The order of Values IS the severity rank and is never reinterpreted.
//   - Identity: Key + semantic Version, rendered "E:1.0.0" by Axis.ID().
//   - GridSize: product of axis lengths with overflow detection, checked
//     against a caller-supplied ceiling before any grid is allocated.
//
// Why:
//
//   - Every downstream package (gridgraph, table, synthesizers) reasons about
//     plain integer positions; this package is the single place where value
//     keys are mapped to positions and validated.
//
// Errors:
//
//   - ErrConstruction       category: malformed input rejected before computation.
//   - ErrSizeLimitExceeded  category: combinatorial grid above the ceiling.
//   - ErrEmptyKey, ErrNoValues, ErrDuplicateValue, ErrBadVersion,
//     ErrNoAxes, ErrDuplicateAxis: precise causes, always reported together
//     with ErrConstruction.
//
// Complexity:
//
//   - New:      O(len(values))
//   - Index:    O(1)
//   - GridSize: O(len(axes))
package axis
