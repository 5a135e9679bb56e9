package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/monoton/gridgraph"
)

// BenchmarkCovering measures covering-edge construction on a 6-axis grid
// of 6 values each (46 656 nodes).
// Complexity: O(n·k)
func BenchmarkCovering(b *testing.B) {
	dims := []int{6, 6, 6, 6, 6, 6}
	opts := gridgraph.DefaultGridOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gridgraph.NewGridGraph(dims, opts); err != nil {
			b.Fatalf("NewGridGraph failed: %v", err)
		}
	}
}

// BenchmarkFullDominance measures pairwise enumeration plus reduction on a
// 4×4×4×4 grid (256 nodes).
// Complexity: O(n²·k + n·d²)
func BenchmarkFullDominance(b *testing.B) {
	dims := []int{4, 4, 4, 4}
	opts := gridgraph.DefaultGridOptions()
	opts.Strategy = gridgraph.FullDominance
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gridgraph.NewGridGraph(dims, opts); err != nil {
			b.Fatalf("NewGridGraph failed: %v", err)
		}
	}
}
