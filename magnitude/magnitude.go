// SPDX-License-Identifier: MIT

// Package magnitude synthesizes outcomes by binning each node's normalized
// vector norm into k quantile buckets.
//
// Every axis is min-max normalized to [0,1]. Under L1 and L2 the norm of a
// node strictly increases when any one coordinate increases; under L∞ it
// never decreases but may stay equal, so ties between comparable nodes are
// expected there.
// Bucket boundaries are non-decreasing in magnitude, so the mapping is
// monotonic without walking any graph. AssignGraph still runs the monotone
// gate on the result.
//
// Policy: cut points use linear-interpolation quantiles (stats.Quantiles).
// A nearest-rank variant would place different cuts; that is a behavioral
// difference, not a defect of either.
package magnitude

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/monoton/axis"
	"github.com/katalvlaran/monoton/gridgraph"
	"github.com/katalvlaran/monoton/monotone"
	"github.com/katalvlaran/monoton/stats"
)

var (
	// ErrTooFewBuckets indicates k < 2.
	ErrTooFewBuckets = errors.New("magnitude: at least two buckets are required")
	// ErrNoNodes indicates an empty node set.
	ErrNoNodes = errors.New("magnitude: node set is empty")
)

const opAssign = "magnitude.Assign"

// Assign maps every node (one integer index per axis) to a bucket in [0,k).
//
// Steps:
//  1. min-max normalize each axis column; a zero-range column is rejected.
//  2. compute the chosen norm of every normalized node.
//  3. cut points = k+1 linear-interpolation quantiles of the magnitudes.
//  4. adjust internal cuts so equal magnitudes are never split (CutPoints).
//  5. bucket = right-biased search over the cuts − 1, clamped to [0,k-1].
//
// Equal magnitudes always share a bucket, and every bucket is used when k
// does not exceed the number of distinct magnitudes.
func Assign(nodes [][]int, k int, norm stats.Norm) ([]int, error) {
	if k < 2 {
		return nil, axis.ConstructionError(fmt.Sprintf("%s: k=%d", opAssign, k), ErrTooFewBuckets)
	}
	if len(nodes) == 0 {
		return nil, axis.ConstructionError(opAssign, ErrNoNodes)
	}
	mags, err := Magnitudes(nodes, norm)
	if err != nil {
		return nil, err
	}
	cuts, err := CutPoints(mags, k)
	if err != nil {
		return nil, axis.ConstructionError(opAssign, err)
	}
	out := make([]int, len(mags))
	for i, m := range mags {
		b := stats.SearchRight(cuts, m) - 1
		if b < 0 {
			b = 0
		}
		if b > k-1 {
			b = k - 1
		}
		out[i] = b
	}
	return out, nil
}

// Magnitudes normalizes every column of nodes to [0,1] and returns the
// chosen norm per node.
func Magnitudes(nodes [][]int, norm stats.Norm) ([]float64, error) {
	if len(nodes) == 0 {
		return nil, axis.ConstructionError(opAssign, ErrNoNodes)
	}
	X := make([][]float64, len(nodes))
	for i, node := range nodes {
		X[i] = make([]float64, len(node))
		for j, c := range node {
			X[i][j] = float64(c)
		}
	}
	Y, _, _, err := stats.NormalizeColumnsMinMax(X)
	if err != nil {
		return nil, axis.ConstructionError(opAssign, err)
	}
	mags, err := stats.RowNorms(Y, norm)
	if err != nil {
		return nil, axis.ConstructionError(opAssign, err)
	}
	return mags, nil
}

// CutPoints returns k+1 ascending cut points over mags.
//
// The internal cuts (1..k-1) start as linear-interpolation quantiles. A cut
// equal to an observed magnitude is moved to the next observed magnitude
// strictly greater than it, so nodes sharing that magnitude stay together;
// a cut between two observations is left where it is. If the internal cuts
// are then not strictly increasing (or ran past the maximum) they are
// re-derived from the sorted unique magnitudes at positions ⌊i·u/k⌋.
func CutPoints(mags []float64, k int) ([]float64, error) {
	cuts, err := stats.Quantiles(mags, k)
	if err != nil {
		return nil, err
	}
	uniq := stats.UniqueSorted(mags)
	for i := 1; i < k; i++ {
		if observed(uniq, cuts[i]) {
			cuts[i] = nextGreater(uniq, cuts[i])
		}
	}
	if !strictlyIncreasing(cuts[1:k]) {
		rederive(cuts, uniq, k)
	}
	return cuts, nil
}

// observed reports whether x is an element of ascending uniq.
func observed(uniq []float64, x float64) bool {
	i := stats.SearchRight(uniq, x)
	return i > 0 && uniq[i-1] == x
}

// nextGreater returns the smallest element of ascending uniq strictly
// greater than x, or +Inf when there is none.
func nextGreater(uniq []float64, x float64) float64 {
	i := stats.SearchRight(uniq, x)
	if i >= len(uniq) {
		return math.Inf(1)
	}
	return uniq[i]
}

// strictlyIncreasing reports whether s is finite and strictly ascending.
func strictlyIncreasing(s []float64) bool {
	for i, v := range s {
		if math.IsInf(v, 0) {
			return false
		}
		if i > 0 && v <= s[i-1] {
			return false
		}
	}
	return true
}

// rederive overwrites the internal cuts with unique magnitudes. With u ≥ k
// distinct values every bucket receives at least one of them; with fewer,
// the upper buckets are left empty (cut at +Inf).
func rederive(cuts, uniq []float64, k int) {
	u := len(uniq)
	cuts[0] = uniq[0]
	for i := 1; i < k; i++ {
		switch {
		case u >= k:
			cuts[i] = uniq[i*u/k]
		case i < u:
			cuts[i] = uniq[i]
		default:
			cuts[i] = math.Inf(1)
		}
	}
	if math.IsInf(cuts[k-1], 1) {
		cuts[k] = math.Inf(1)
	}
}

// AssignGraph runs Assign over every node of g and verifies the result with
// monotone.Verify; a violation is fatal.
func AssignGraph(g *gridgraph.GridGraph, k int, norm stats.Norm) (gridgraph.Assignment, error) {
	if g == nil {
		return nil, monotone.ErrGraphNil
	}
	nodes := g.Nodes()
	vecs := make([][]int, len(nodes))
	for i, n := range nodes {
		vecs[i] = n
	}
	buckets, err := Assign(vecs, k, norm)
	if err != nil {
		return nil, err
	}
	out := gridgraph.Assignment(buckets)
	if err := monotone.Verify(g, out); err != nil {
		return nil, fmt.Errorf("magnitude: %w", err)
	}
	return out, nil
}
