// SPDX-License-Identifier: MIT
// Package: stats
//
// Purpose:
//   - Provide the numeric kernels the magnitude synthesizer composes:
//     min-max column normalization, vector norms per row, linear-interpolation
//     quantiles, and right-biased search over sorted cut points.
//   - Keep loops deterministic (fixed i→j traversal, no map iteration).
//
// Exposed API:
//   - NormalizeColumnsMinMax(X) -> (Y, mins, maxs)  // per-column (x-min)/(max-min)
//   - RowNorms(X, norm)         -> norms            // L1, L2 or L∞ of each row
//   - Quantiles(values, k)      -> k+1 cut points   // linear interpolation
//   - UniqueSorted(values)      -> ascending distinct values
//   - SearchRight(cuts, x)      -> count of cuts ≤ x
//
// Determinism & Policy:
//   - Quantiles use the "linear" method (numpy default): cut i sits at rank
//     h = i·(n-1)/k, computed as an exact integer quotient and remainder.
//     Nearest-rank interpolation is NOT equivalent and is not offered.
//   - A zero-range column cannot be normalized and is rejected, never zeroed.
//
// Errors:
//   - ErrEmpty, ErrRagged, ErrZeroRange, ErrNaNInf, ErrUnknownNorm, ErrBadPercentile.
package stats
