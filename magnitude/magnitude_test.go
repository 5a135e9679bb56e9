package magnitude_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/monoton/axis"
	"github.com/katalvlaran/monoton/gridgraph"
	"github.com/katalvlaran/monoton/magnitude"
	"github.com/katalvlaran/monoton/monotone"
	"github.com/katalvlaran/monoton/stats"
)

var norms = []stats.Norm{stats.L1, stats.L2, stats.LInf}

// gridNodes returns the node tuples of a grid as plain vectors.
func gridNodes(t *testing.T, dims ...int) (*gridgraph.GridGraph, [][]int) {
	t.Helper()
	gg, err := gridgraph.NewGridGraph(dims, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	var out [][]int
	for _, n := range gg.Nodes() {
		out = append(out, n)
	}
	return gg, out
}

// TestAssign_TwoByTwo: L1 magnitudes are 0,1,1,2; the median cut sits on the
// shared magnitude 1 and moves past it, keeping (lo,hi) and (hi,lo) together.
func TestAssign_TwoByTwo(t *testing.T) {
	_, nodes := gridNodes(t, 2, 2)
	got, err := magnitude.Assign(nodes, 2, stats.L1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 1}, got)
}

// TestAssign_Errors verifies construction-time rejections.
func TestAssign_Errors(t *testing.T) {
	_, nodes := gridNodes(t, 3, 3)

	_, err := magnitude.Assign(nodes, 1, stats.L2)
	assert.ErrorIs(t, err, magnitude.ErrTooFewBuckets)
	assert.ErrorIs(t, err, axis.ErrConstruction)

	_, err = magnitude.Assign(nil, 3, stats.L2)
	assert.ErrorIs(t, err, magnitude.ErrNoNodes)

	// constant second column cannot be normalized
	_, err = magnitude.Assign([][]int{{0, 1}, {1, 1}, {2, 1}}, 2, stats.L2)
	assert.ErrorIs(t, err, stats.ErrZeroRange)
	assert.ErrorIs(t, err, axis.ErrConstruction)

	_, err = magnitude.Assign([][]int{{0, 1}, {1}}, 2, stats.L2)
	assert.ErrorIs(t, err, stats.ErrRagged)

	_, err = magnitude.Assign(nodes, 2, stats.Norm(0))
	assert.ErrorIs(t, err, stats.ErrUnknownNorm)
}

// TestAssign_TieSafety: equal magnitudes always yield equal buckets.
func TestAssign_TieSafety(t *testing.T) {
	_, nodes := gridNodes(t, 4, 3, 3)
	for _, norm := range norms {
		for k := 2; k <= 6; k++ {
			mags, err := magnitude.Magnitudes(nodes, norm)
			require.NoError(t, err)
			got, err := magnitude.Assign(nodes, k, norm)
			require.NoError(t, err)

			byMag := map[float64]int{}
			for i, m := range mags {
				if b, ok := byMag[m]; ok {
					assert.Equal(t, b, got[i], "norm=%v k=%d m=%v", norm, k, m)
				}
				byMag[m] = got[i]
			}
		}
	}
}

// TestAssign_Coverage: every bucket is used when k ≤ distinct magnitudes.
func TestAssign_Coverage(t *testing.T) {
	_, nodes := gridNodes(t, 5, 4, 3)
	for _, norm := range norms {
		mags, err := magnitude.Magnitudes(nodes, norm)
		require.NoError(t, err)
		distinct := len(stats.UniqueSorted(mags))
		for k := 2; k <= distinct; k++ {
			got, err := magnitude.Assign(nodes, k, norm)
			require.NoError(t, err)
			used := make([]bool, k)
			for _, b := range got {
				require.GreaterOrEqual(t, b, 0)
				require.Less(t, b, k)
				used[b] = true
			}
			for b, ok := range used {
				assert.True(t, ok, "norm=%v k=%d bucket %d unused", norm, k, b)
			}
		}
	}
}

// TestAssign_FewerMagnitudesThanBuckets: buckets stay in range and the
// lowest ones are filled first.
func TestAssign_FewerMagnitudesThanBuckets(t *testing.T) {
	_, nodes := gridNodes(t, 2, 2)
	got, err := magnitude.Assign(nodes, 5, stats.L1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1, 2}, got)
}

// TestAssign_CutsBetweenObservationsStay: with magnitudes {0,1} and k=3 the
// cuts 1/3 and 2/3 fall between the observations, stay put, and leave the
// middle bucket empty.
func TestAssign_CutsBetweenObservationsStay(t *testing.T) {
	cuts, err := magnitude.CutPoints([]float64{0, 1}, 3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1.0 / 3, 2.0 / 3, 1}, cuts, 1e-12)

	got, err := magnitude.Assign([][]int{{0}, {1}}, 3, stats.L1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, got)
}

// TestAssign_WholeRankCutsMovePastTheirValue: 22 distinct magnitudes j/21
// and k=7 put every internal cut exactly on magnitude 3i; each moves to
// magnitude 3i+1, so the buckets hold 4,3,3,3,3,3,3 nodes.
func TestAssign_WholeRankCutsMovePastTheirValue(t *testing.T) {
	nodes := make([][]int, 22)
	for j := range nodes {
		nodes[j] = []int{j}
	}
	got, err := magnitude.Assign(nodes, 7, stats.L1)
	require.NoError(t, err)
	assert.Equal(t, []int{
		0, 0, 0, 0,
		1, 1, 1,
		2, 2, 2,
		3, 3, 3,
		4, 4, 4,
		5, 5, 5,
		6, 6, 6,
	}, got)
}

// TestCutPoints_Ascending: cuts are always non-decreasing, so the search is valid.
func TestCutPoints_Ascending(t *testing.T) {
	mags := []float64{0, 0, 0, 0.5, 1, 1, 1, 1}
	for k := 2; k <= 6; k++ {
		cuts, err := magnitude.CutPoints(mags, k)
		require.NoError(t, err)
		require.Len(t, cuts, k+1)
		for i := 1; i < len(cuts); i++ {
			assert.LessOrEqual(t, cuts[i-1], cuts[i], "k=%d cuts=%v", k, cuts)
		}
	}
}

// TestAssignGraph_MonotonicityLaw checks every dominance pair.
func TestAssignGraph_MonotonicityLaw(t *testing.T) {
	shapes := [][]int{{2, 2}, {3, 2, 2}, {4, 4}, {2, 3, 4}, {3, 3, 3, 2}}
	for _, dims := range shapes {
		gg, err := gridgraph.NewGridGraph(dims, gridgraph.DefaultGridOptions())
		require.NoError(t, err)
		for _, norm := range norms {
			for k := 2; k <= 5; k++ {
				a, err := magnitude.AssignGraph(gg, k, norm)
				require.NoError(t, err, "dims=%v norm=%v k=%d", dims, norm, k)
				vs, err := monotone.CheckAllPairs(gg, a)
				require.NoError(t, err)
				assert.Empty(t, vs, "dims=%v norm=%v k=%d", dims, norm, k)
				assert.Equal(t, 0, a[gg.Min()])
			}
		}
	}

	_, err := magnitude.AssignGraph(nil, 2, stats.L1)
	assert.ErrorIs(t, err, monotone.ErrGraphNil)
}
