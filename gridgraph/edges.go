package gridgraph

import "sort"

// buildCovering adds one edge per node and axis whose index can step up by one.
// Axes are walked last-to-first so each node's targets come out ascending,
// which makes the edge list identical to the reduced full-dominance list.
// Complexity: O(n·k).
func (gg *GridGraph) buildCovering() {
	k := len(gg.dims)
	// every axis contributes (d-1)·n/d edges
	total := 0
	for _, d := range gg.dims {
		total += (d - 1) * (gg.n / d)
	}
	gg.edges = make([]Edge, 0, total)
	node := make([]int, k)
	for u := 0; u < gg.n; u++ {
		gg.decode(u, node)
		for i := k - 1; i >= 0; i-- {
			if node[i]+1 < gg.dims[i] {
				gg.edges = append(gg.edges, Edge{From: u, To: u + gg.strides[i]})
			}
		}
	}
}

// buildFullDominance adds u→v for every pair with v dominating u (v ≠ u),
// then keeps only the edges that survive TransitiveReduction.
// Complexity: O(n²·k) enumeration + reduction.
func (gg *GridGraph) buildFullDominance() {
	adj := make([][]int, gg.n)
	for u := 0; u < gg.n; u++ {
		// any dominating node has a strictly larger index
		for v := u + 1; v < gg.n; v++ {
			if gg.Dominates(v, u) {
				adj[u] = append(adj[u], v)
			}
		}
	}
	reduced := TransitiveReduction(adj)
	gg.edges = gg.edges[:0]
	for u, targets := range reduced {
		for _, v := range targets {
			gg.edges = append(gg.edges, Edge{From: u, To: v})
		}
	}
}

// indexEdges derives successor and predecessor lists from gg.edges.
func (gg *GridGraph) indexEdges() {
	gg.succ = make([][]int, gg.n)
	gg.pred = make([][]int, gg.n)
	for _, e := range gg.edges {
		gg.succ[e.From] = append(gg.succ[e.From], e.To)
		gg.pred[e.To] = append(gg.pred[e.To], e.From)
	}
	for i := 0; i < gg.n; i++ {
		sort.Ints(gg.pred[i])
	}
}

// TransitiveReduction removes from a transitively closed DAG every edge u→v
// for which some other direct successor w of u also reaches v (u→w→v).
// adj[u] lists the direct successors of u; the input is not modified and each
// output list keeps the input's relative order.
//
// The input must be transitively closed (as a full dominance relation is):
// then a two-hop check over adj is exact.
//
// Time:   O(Σ_u Σ_{w∈adj[u]} |adj[w]|) ⊆ O(n·d²).
// Memory: O(n) scratch.
func TransitiveReduction(adj [][]int) [][]int {
	n := len(adj)
	out := make([][]int, n)
	implied := make([]int, n) // implied[x] == u+1 ⇔ x reachable from u in two hops
	for u := 0; u < n; u++ {
		stamp := u + 1
		for _, w := range adj[u] {
			for _, x := range adj[w] {
				implied[x] = stamp
			}
		}
		for _, v := range adj[u] {
			if implied[v] != stamp {
				out[u] = append(out[u], v)
			}
		}
	}
	return out
}
