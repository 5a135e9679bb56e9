// SPDX-License-Identifier: MIT

package table

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/monoton/axis"
	"github.com/katalvlaran/monoton/gridgraph"
	"github.com/katalvlaran/monoton/monotone"
)

var (
	// ErrNoOutcome indicates a schema without an outcome axis.
	ErrNoOutcome = errors.New("table: outcome axis is missing")
	// ErrUnknownKey indicates a row key that names no schema axis.
	ErrUnknownKey = errors.New("table: unknown axis key")
	// ErrMissingKey indicates a row lacking one of the schema axes.
	ErrMissingKey = errors.New("table: missing axis key")
	// ErrUnknownValue indicates a value key not on its axis.
	ErrUnknownValue = errors.New("table: unknown value")
	// ErrDuplicateRow indicates two rows for the same input combination.
	ErrDuplicateRow = errors.New("table: duplicate row")
	// ErrIncomplete indicates an input combination no row covers.
	ErrIncomplete = errors.New("table: incomplete table")
	// ErrGraphMismatch indicates a graph whose shape differs from the schema.
	ErrGraphMismatch = errors.New("table: graph does not match schema")
	// ErrUnknownAxis indicates an axis ID the schema does not carry.
	ErrUnknownAxis = errors.New("table: unknown axis")
	// ErrSingleAxis indicates a split of a table with only one input axis.
	ErrSingleAxis = errors.New("table: cannot split a single-axis table")
)

// Row maps axis IDs to value keys: one entry per input axis plus the outcome.
type Row map[string]string

// Clone returns a shallow copy of r.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Schema is the ordered input axis list of a table and its outcome axis.
type Schema struct {
	Inputs  []*axis.Axis
	Outcome *axis.Axis
}

// NewSchema validates the axis list (non-empty, no nils, distinct
// identities) and an outcome distinct from every input.
func NewSchema(inputs []*axis.Axis, outcome *axis.Axis) (*Schema, error) {
	const op = "table.NewSchema"
	if err := axis.ValidateList(inputs); err != nil {
		return nil, err
	}
	if outcome == nil {
		return nil, axis.ConstructionError(op, ErrNoOutcome)
	}
	for _, in := range inputs {
		if in.ID() == outcome.ID() {
			return nil, axis.ConstructionError(fmt.Sprintf("%s: outcome %s", op, outcome.ID()), axis.ErrDuplicateAxis)
		}
	}
	return &Schema{Inputs: append([]*axis.Axis(nil), inputs...), Outcome: outcome}, nil
}

// Dims returns the input axis lengths.
func (s *Schema) Dims() []int { return axis.Dims(s.Inputs) }

// Input returns the position of the input axis with the given ID.
func (s *Schema) Input(id string) (int, bool) {
	for i, a := range s.Inputs {
		if a.ID() == id {
			return i, true
		}
	}
	return -1, false
}

// Graph builds the dominance grid over the input axes.
func (s *Schema) Graph(opts gridgraph.GridOptions) (*gridgraph.GridGraph, error) {
	return gridgraph.FromAxes(s.Inputs, opts)
}

// checkGraph rejects graphs built over another shape.
func (s *Schema) checkGraph(op string, g *gridgraph.GridGraph) error {
	if g == nil {
		return monotone.ErrGraphNil
	}
	dims := g.Dims()
	want := s.Dims()
	if len(dims) != len(want) {
		return fmt.Errorf("%s: %w: %v vs %v", op, ErrGraphMismatch, dims, want)
	}
	for i := range dims {
		if dims[i] != want[i] {
			return fmt.Errorf("%s: %w: %v vs %v", op, ErrGraphMismatch, dims, want)
		}
	}
	return nil
}

// FormatNode renders node i as "Key:Value" pairs in axis order, e.g. "E:N,SI:L".
// Invalid indices render as "?".
func (s *Schema) FormatNode(g *gridgraph.GridGraph, i int) string {
	node, err := g.Node(i)
	if err != nil || len(node) != len(s.Inputs) {
		return "?"
	}
	parts := make([]string, len(node))
	for j, c := range node {
		parts[j] = s.Inputs[j].Key + ":" + s.Inputs[j].ValueKey(c)
	}
	return strings.Join(parts, ",")
}
