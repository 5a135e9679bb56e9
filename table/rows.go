// SPDX-License-Identifier: MIT

package table

import (
	"fmt"

	"github.com/katalvlaran/monoton/axis"
	"github.com/katalvlaran/monoton/gridgraph"
	"github.com/katalvlaran/monoton/monotone"
)

// ToAssignment converts rows into an Assignment over g.
//
// Every row must name every input axis and the outcome by axis ID, use only
// known value keys, and cover a distinct input combination; together the
// rows must cover the whole grid.
// Complexity: O(r·k).
func (s *Schema) ToAssignment(g *gridgraph.GridGraph, rows []Row) (gridgraph.Assignment, error) {
	const op = "table.ToAssignment"
	if err := s.checkGraph(op, g); err != nil {
		return nil, err
	}
	outID := s.Outcome.ID()
	out := gridgraph.NewAssignment(g.NodeCount())
	node := make(gridgraph.Node, len(s.Inputs))

	for r, row := range rows {
		// 1. reject keys outside the schema
		for k := range row {
			if k == outID {
				continue
			}
			if _, ok := s.Input(k); !ok {
				return nil, axis.ConstructionError(fmt.Sprintf("%s: row #%d key %q", op, r, k), ErrUnknownKey)
			}
		}
		// 2. resolve input values
		for j, a := range s.Inputs {
			vk, ok := row[a.ID()]
			if !ok {
				return nil, axis.ConstructionError(fmt.Sprintf("%s: row #%d lacks %s", op, r, a.ID()), ErrMissingKey)
			}
			c, ok := a.Index(vk)
			if !ok {
				return nil, axis.ConstructionError(fmt.Sprintf("%s: row #%d %s=%q", op, r, a.ID(), vk), ErrUnknownValue)
			}
			node[j] = c
		}
		// 3. resolve the outcome
		ovk, found := row[outID]
		if !found {
			return nil, axis.ConstructionError(fmt.Sprintf("%s: row #%d lacks outcome %s", op, r, outID), ErrMissingKey)
		}
		o, found := s.Outcome.Index(ovk)
		if !found {
			return nil, axis.ConstructionError(fmt.Sprintf("%s: row #%d outcome %s=%q", op, r, outID, ovk), ErrUnknownValue)
		}

		idx, err := g.Index(node)
		if err != nil {
			return nil, fmt.Errorf("%s: row #%d: %w", op, r, err)
		}
		if out[idx] != gridgraph.Unassigned {
			return nil, axis.ConstructionError(fmt.Sprintf("%s: row #%d repeats %s", op, r, s.FormatNode(g, idx)), ErrDuplicateRow)
		}
		out[idx] = o
	}

	for i, o := range out {
		if o == gridgraph.Unassigned {
			return nil, axis.ConstructionError(
				fmt.Sprintf("%s: %d rows for %d nodes, first missing %s", op, len(rows), g.NodeCount(), s.FormatNode(g, i)),
				ErrIncomplete)
		}
	}
	return out, nil
}

// ToRows converts a complete Assignment into rows, one per node in index order.
func (s *Schema) ToRows(g *gridgraph.GridGraph, a gridgraph.Assignment) ([]Row, error) {
	const op = "table.ToRows"
	if err := s.checkGraph(op, g); err != nil {
		return nil, err
	}
	if len(a) != g.NodeCount() {
		return nil, fmt.Errorf("%s: %w: got %d, want %d", op, monotone.ErrAssignmentSize, len(a), g.NodeCount())
	}
	outID := s.Outcome.ID()
	rows := make([]Row, len(a))
	for i, node := range g.Nodes() {
		if a[i] < 0 || a[i] >= s.Outcome.Len() {
			return nil, axis.ConstructionError(fmt.Sprintf("%s: node %s outcome %d", op, s.FormatNode(g, i), a[i]), ErrUnknownValue)
		}
		row := make(Row, len(node)+1)
		for j, c := range node {
			row[s.Inputs[j].ID()] = s.Inputs[j].ValueKey(c)
		}
		row[outID] = s.Outcome.ValueKey(a[i])
		rows[i] = row
	}
	return rows, nil
}

// Record is a Violation rendered in table terms.
type Record struct {
	From        string `yaml:"from"`
	To          string `yaml:"to"`
	FromOutcome string `yaml:"from_outcome"`
	ToOutcome   string `yaml:"to_outcome"`
}

// String renders "E:N,SI:H=high -> E:P,SI:H=low".
func (r Record) String() string {
	return fmt.Sprintf("%s=%s -> %s=%s", r.From, r.FromOutcome, r.To, r.ToOutcome)
}

// Records renders violations with axis and value keys, preserving order.
func (s *Schema) Records(g *gridgraph.GridGraph, vs []monotone.Violation) []Record {
	out := make([]Record, len(vs))
	for i, v := range vs {
		out[i] = Record{
			From:        s.FormatNode(g, v.From),
			To:          s.FormatNode(g, v.To),
			FromOutcome: s.Outcome.ValueKey(v.FromOutcome),
			ToOutcome:   s.Outcome.ValueKey(v.ToOutcome),
		}
	}
	return out
}

// Split is the sub-table of rows sharing one value of the split axis.
type Split struct {
	Value  string
	Schema *Schema
	Rows   []Row
}

// SplitBy partitions rows by their value on the input axis axisID. Each
// Split carries a schema without that axis and rows without its key, so a
// grid too large for the size ceiling can be audited one slice at a time.
// Splits follow the axis value order; every value gets a Split, possibly empty.
func (s *Schema) SplitBy(axisID string, rows []Row) ([]Split, error) {
	const op = "table.SplitBy"
	pos, ok := s.Input(axisID)
	if !ok {
		return nil, axis.ConstructionError(fmt.Sprintf("%s: %q", op, axisID), ErrUnknownAxis)
	}
	if len(s.Inputs) == 1 {
		return nil, axis.ConstructionError(fmt.Sprintf("%s: %q", op, axisID), ErrSingleAxis)
	}
	rest := make([]*axis.Axis, 0, len(s.Inputs)-1)
	rest = append(rest, s.Inputs[:pos]...)
	rest = append(rest, s.Inputs[pos+1:]...)
	sub, err := NewSchema(rest, s.Outcome)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	split := s.Inputs[pos]
	out := make([]Split, split.Len())
	for i, v := range split.Values {
		out[i] = Split{Value: v.Key, Schema: sub}
	}
	for r, row := range rows {
		vk, ok := row[axisID]
		if !ok {
			return nil, axis.ConstructionError(fmt.Sprintf("%s: row #%d lacks %s", op, r, axisID), ErrMissingKey)
		}
		i, ok := split.Index(vk)
		if !ok {
			return nil, axis.ConstructionError(fmt.Sprintf("%s: row #%d %s=%q", op, r, axisID, vk), ErrUnknownValue)
		}
		narrowed := row.Clone()
		delete(narrowed, axisID)
		out[i].Rows = append(out[i].Rows, narrowed)
	}
	return out, nil
}
