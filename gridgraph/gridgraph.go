// Package gridgraph provides utilities to treat the Cartesian product of
// ordinal axes as a dominance graph. It supports:
//
//   - Covering or full-dominance edge construction
//   - Size ceilings checked before allocation
//   - Mixed-radix conversion between node tuples and indices
//
// Node index = Σ node[i]·strides[i], with the last axis varying fastest.
package gridgraph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/monoton/axis"
)

const opNewGridGraph = "gridgraph.NewGridGraph"

// NewGridGraph constructs a GridGraph over axes of the given lengths.
// It copies dims to ensure immutability.
// Returns ErrNoDims or ErrBadDimension (with axis.ErrConstruction),
// axis.ErrSizeLimitExceeded if a ceiling in opts is exceeded,
// ErrUnknownStrategy for an undeclared strategy.
// Algorithmic complexity: see doc.go per strategy.
func NewGridGraph(dims []int, opts GridOptions) (*GridGraph, error) {
	// 1. Validate shape
	if len(dims) == 0 {
		return nil, axis.ConstructionError(opNewGridGraph, ErrNoDims)
	}
	for i, d := range dims {
		if d <= 0 {
			return nil, axis.ConstructionError(fmt.Sprintf("%s: axis #%d", opNewGridGraph, i), ErrBadDimension)
		}
	}
	if opts.Strategy != Covering && opts.Strategy != FullDominance {
		return nil, axis.ConstructionError(opNewGridGraph, ErrUnknownStrategy)
	}
	// 2. Reject oversize grids before any allocation
	if err := axis.CheckSize(opNewGridGraph, dims, opts.MaxNodes); err != nil {
		return nil, err
	}
	if opts.Strategy == FullDominance {
		if err := axis.CheckSize(opNewGridGraph+"(full)", dims, opts.MaxFullNodes); err != nil {
			return nil, err
		}
	}
	// 3. Copy dims and precompute strides (last axis fastest)
	k := len(dims)
	gg := &GridGraph{
		dims:     append([]int(nil), dims...),
		strides:  make([]int, k),
		n:        axis.GridSize(dims),
		strategy: opts.Strategy,
	}
	stride := 1
	for i := k - 1; i >= 0; i-- {
		gg.strides[i] = stride
		stride *= dims[i]
	}
	// 4. Build edges
	if opts.Strategy == Covering {
		gg.buildCovering()
	} else {
		gg.buildFullDominance()
	}
	gg.indexEdges()

	return gg, nil
}

// FromAxes constructs a GridGraph over the value lists of axes, in list order.
// The list itself is validated with axis.ValidateList.
func FromAxes(axes []*axis.Axis, opts GridOptions) (*GridGraph, error) {
	if err := axis.ValidateList(axes); err != nil {
		return nil, err
	}
	return NewGridGraph(axis.Dims(axes), opts)
}

// NodeCount returns the number of grid nodes (∏ dims).
// Complexity: O(1).
func (gg *GridGraph) NodeCount() int { return gg.n }

// Dims returns a copy of the axis lengths.
func (gg *GridGraph) Dims() []int { return append([]int(nil), gg.dims...) }

// AxisCount returns the number of axes.
func (gg *GridGraph) AxisCount() int { return len(gg.dims) }

// Strategy returns the edge strategy the graph was built with.
func (gg *GridGraph) Strategy() Strategy { return gg.strategy }

// Edges returns a copy of the edge list, sorted by (From, To).
func (gg *GridGraph) Edges() []Edge { return append([]Edge(nil), gg.edges...) }

// EdgeCount returns the number of edges.
func (gg *GridGraph) EdgeCount() int { return len(gg.edges) }

// Successors returns the nodes directly dominating u, ascending.
// The returned slice must not be modified.
func (gg *GridGraph) Successors(u int) []int {
	if u < 0 || u >= gg.n {
		return nil
	}
	return gg.succ[u]
}

// Predecessors returns the nodes u directly dominates, ascending.
// The returned slice must not be modified.
func (gg *GridGraph) Predecessors(u int) []int {
	if u < 0 || u >= gg.n {
		return nil
	}
	return gg.pred[u]
}

// InBounds reports whether idx is a valid node index.
// Complexity: O(1).
func (gg *GridGraph) InBounds(idx int) bool {
	return idx >= 0 && idx < gg.n
}

// Min returns the index of the all-lowest node.
func (gg *GridGraph) Min() int { return 0 }

// Max returns the index of the all-highest node.
func (gg *GridGraph) Max() int { return gg.n - 1 }

// Node converts a node index back to its tuple.
// Complexity: O(k).
func (gg *GridGraph) Node(idx int) (Node, error) {
	if !gg.InBounds(idx) {
		return nil, fmt.Errorf("gridgraph.Node(%d): %w", idx, ErrNodeOutOfRange)
	}
	node := make(Node, len(gg.dims))
	gg.decode(idx, node)
	return node, nil
}

// Nodes returns every node tuple in index order.
// Complexity: O(n·k) time and memory.
func (gg *GridGraph) Nodes() []Node {
	k := len(gg.dims)
	flat := make([]int, gg.n*k)
	out := make([]Node, gg.n)
	for i := 0; i < gg.n; i++ {
		out[i] = Node(flat[i*k : (i+1)*k : (i+1)*k])
		gg.decode(i, out[i])
	}
	return out
}

// Index maps a node tuple to its index.
// Complexity: O(k).
func (gg *GridGraph) Index(node Node) (int, error) {
	if len(node) != len(gg.dims) {
		return 0, fmt.Errorf("gridgraph.Index(%v): %w", node, ErrNodeLength)
	}
	idx := 0
	for i, c := range node {
		if c < 0 || c >= gg.dims[i] {
			return 0, fmt.Errorf("gridgraph.Index(%v): axis #%d: %w", node, i, ErrNodeOutOfRange)
		}
		idx += c * gg.strides[i]
	}
	return idx, nil
}

// Dominates reports whether node v is componentwise ≥ node u (weak dominance,
// u == v included). Out-of-range indices never dominate.
// Complexity: O(k).
func (gg *GridGraph) Dominates(v, u int) bool {
	if !gg.InBounds(u) || !gg.InBounds(v) || v < u {
		return false
	}
	for i, s := range gg.strides {
		cu := (u / s) % gg.dims[i]
		cv := (v / s) % gg.dims[i]
		if cv < cu {
			return false
		}
	}
	return true
}

// FormatNode renders a node index as its comma-joined tuple, e.g. "0,1,2".
func (gg *GridGraph) FormatNode(idx int) string {
	node, err := gg.Node(idx)
	if err != nil {
		return "?"
	}
	parts := make([]string, len(node))
	for i, c := range node {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ",")
}

// decode writes the tuple of idx into dst (len(dst) == len(dims)).
func (gg *GridGraph) decode(idx int, dst []int) {
	for i, s := range gg.strides {
		dst[i] = (idx / s) % gg.dims[i]
	}
}
