// SPDX-License-Identifier: MIT

package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Operation name constants for unified error wrapping.
const (
	opNormalize = "NormalizeColumnsMinMax"
	opRowNorms  = "RowNorms"
	opQuantiles = "Quantiles"
	opParseNorm = "ParseNorm"
)

var (
	// ErrEmpty indicates an empty input where at least one element is required.
	ErrEmpty = errors.New("stats: empty input")
	// ErrRagged indicates rows of differing lengths.
	ErrRagged = errors.New("stats: rows have differing lengths")
	// ErrZeroRange indicates a column whose min equals its max.
	ErrZeroRange = errors.New("stats: column has zero range")
	// ErrNaNInf indicates a NaN or ±Inf value.
	ErrNaNInf = errors.New("stats: NaN or Inf encountered")
	// ErrUnknownNorm indicates a Norm outside {L1, L2, LInf}.
	ErrUnknownNorm = errors.New("stats: unknown norm")
	// ErrBadPercentile indicates a quantile count k < 1.
	ErrBadPercentile = errors.New("stats: percentile out of range")
)

// statsErrorf wraps err with the operation name, keeping the sentinel for errors.Is.
func statsErrorf(op string, err error) error {
	return fmt.Errorf("stats.%s: %w", op, err)
}

// Norm selects a vector norm.
type Norm int

const (
	// L1 is Σ|x_i|.
	L1 Norm = iota + 1
	// L2 is sqrt(Σx_i²).
	L2
	// LInf is max|x_i|.
	LInf
)

// String returns the canonical name of n.
func (n Norm) String() string {
	switch n {
	case L1:
		return "l1"
	case L2:
		return "l2"
	case LInf:
		return "linf"
	default:
		return fmt.Sprintf("norm(%d)", int(n))
	}
}

// ParseNorm maps "l1", "l2", "linf" (case-insensitive; "inf", "max" accepted) to a Norm.
func ParseNorm(s string) (Norm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l1":
		return L1, nil
	case "l2":
		return L2, nil
	case "linf", "inf", "max":
		return LInf, nil
	default:
		return 0, statsErrorf(opParseNorm, fmt.Errorf("%w: %q", ErrUnknownNorm, s))
	}
}

// validateRows checks a non-empty rectangular matrix of finite values and
// returns its column count.
func validateRows(X [][]float64) (int, error) {
	if len(X) == 0 || len(X[0]) == 0 {
		return 0, ErrEmpty
	}
	c := len(X[0])
	for i, row := range X {
		if len(row) != c {
			return 0, fmt.Errorf("%w: row %d has %d, want %d", ErrRagged, i, len(row), c)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, fmt.Errorf("%w: at (%d,%d)", ErrNaNInf, i, j)
			}
		}
	}
	return c, nil
}

// NormalizeColumnsMinMax maps every column j to [0,1] via (x-min_j)/(max_j-min_j).
// Implementation:
//   - Stage 1: validate shape and finiteness.
//   - Stage 2: compute per-column min and max in one pass.
//   - Stage 3: reject any zero-range column, then write a normalized copy.
//
// Returns the normalized copy plus the column mins and maxs.
// Complexity: Time O(r·c), Space O(r·c).
func NormalizeColumnsMinMax(X [][]float64) ([][]float64, []float64, []float64, error) {
	// Stage 1 (Validate)
	c, err := validateRows(X)
	if err != nil {
		return nil, nil, nil, statsErrorf(opNormalize, err)
	}
	// Stage 2 (Extremes)
	mins := append([]float64(nil), X[0]...)
	maxs := append([]float64(nil), X[0]...)
	for _, row := range X[1:] {
		for j, v := range row {
			if v < mins[j] {
				mins[j] = v
			}
			if v > maxs[j] {
				maxs[j] = v
			}
		}
	}
	// Stage 3 (Reject constant columns, then scale)
	for j := 0; j < c; j++ {
		if maxs[j] == mins[j] {
			return nil, nil, nil, statsErrorf(opNormalize, fmt.Errorf("%w: column %d", ErrZeroRange, j))
		}
	}
	out := make([][]float64, len(X))
	flat := make([]float64, len(X)*c)
	for i, row := range X {
		out[i] = flat[i*c : (i+1)*c : (i+1)*c]
		for j, v := range row {
			out[i][j] = (v - mins[j]) / (maxs[j] - mins[j])
		}
	}
	return out, mins, maxs, nil
}

// RowNorms computes the chosen norm of every row.
// Complexity: Time O(r·c), Space O(r).
func RowNorms(X [][]float64, norm Norm) ([]float64, error) {
	if _, err := validateRows(X); err != nil {
		return nil, statsErrorf(opRowNorms, err)
	}
	out := make([]float64, len(X))
	for i, row := range X {
		var s float64
		switch norm {
		case L1:
			for _, v := range row {
				s += math.Abs(v)
			}
		case L2:
			for _, v := range row {
				s += v * v
			}
			s = math.Sqrt(s)
		case LInf:
			for _, v := range row {
				if a := math.Abs(v); a > s {
					s = a
				}
			}
		default:
			return nil, statsErrorf(opRowNorms, fmt.Errorf("%w: %v", ErrUnknownNorm, norm))
		}
		out[i] = s
	}
	return out, nil
}

// Quantiles returns the k+1 linear-interpolation quantiles of values at
// probabilities i/k, i=0..k (the numpy "linear" method).
// The rank of cut i is the exact rational i·(n-1)/k, kept as an integer
// quotient and remainder, so a cut whose rank is whole lands exactly on an
// observed value instead of one ulp below it.
// values need not be sorted; it is not modified.
// Complexity: O(n log n).
func Quantiles(values []float64, k int) ([]float64, error) {
	if len(values) == 0 {
		return nil, statsErrorf(opQuantiles, ErrEmpty)
	}
	if k < 1 {
		return nil, statsErrorf(opQuantiles, fmt.Errorf("%w: k=%d", ErrBadPercentile, k))
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	cuts := make([]float64, k+1)
	for i := 0; i <= k; i++ {
		num := i * (n - 1)
		lo, rem := num/k, num%k
		if rem == 0 || lo >= n-1 {
			cuts[i] = sorted[lo]
			continue
		}
		frac := float64(rem) / float64(k)
		cuts[i] = sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
	}
	return cuts, nil
}

// UniqueSorted returns the distinct values of values in ascending order.
// Complexity: O(n log n).
func UniqueSorted(values []float64) []float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	out := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// SearchRight returns the number of elements of ascending cuts that are ≤ x,
// i.e. the right-biased insertion point of x.
// Complexity: O(log n).
func SearchRight(cuts []float64, x float64) int {
	return sort.Search(len(cuts), func(i int) bool { return cuts[i] > x })
}
