// SPDX-License-Identifier: MIT

package table

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/monoton/axis"
	"github.com/katalvlaran/monoton/threshold"
)

var (
	// ErrEmptyDocument indicates a YAML stream without a document.
	ErrEmptyDocument = errors.New("table: empty document")
	// ErrBadDocument indicates YAML that does not decode into a Document.
	ErrBadDocument = errors.New("table: malformed document")
)

// Document is the YAML form of a decision table.
//
//	name: deployer
//	inputs:
//	  - key: E
//	    version: 1.1.0
//	    values: [N, P, A]
//	outcome:
//	  key: DSOI
//	  version: 1.0.0
//	  values: [D, S, O, I]
//	rows:
//	  - E:1.1.0: N
//	    DSOI:1.0.0: D
//
// Field order matches the emitted YAML order.
type Document struct {
	Name    string     `yaml:"name,omitempty"`
	Inputs  []AxisSpec `yaml:"inputs"`
	Outcome AxisSpec   `yaml:"outcome"`
	Synth   *Synth     `yaml:"synth,omitempty"`
	Rows    []Row      `yaml:"rows,omitempty"`
}

// AxisSpec describes one axis.
type AxisSpec struct {
	Key     string      `yaml:"key"`
	Name    string      `yaml:"name,omitempty"`
	Version string      `yaml:"version"`
	Values  []ValueSpec `yaml:"values"`
}

// ValueSpec is one axis value. In YAML it is either a bare key or a mapping
// with key, name and description.
type ValueSpec struct {
	Key         string `yaml:"key"`
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// UnmarshalYAML accepts the scalar shorthand.
func (v *ValueSpec) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		*v = ValueSpec{Key: n.Value}
		return nil
	}
	type plain ValueSpec
	return n.Decode((*plain)(v))
}

// MarshalYAML emits the scalar shorthand when only Key is set.
func (v ValueSpec) MarshalYAML() (interface{}, error) {
	if v.Name == "" && v.Description == "" {
		return v.Key, nil
	}
	type plain ValueSpec
	return plain(v), nil
}

// Synth is the optional synthesis section of a document.
//
// Strategy is one of "topo", "magnitude" or "rules". Order applies to topo
// ("topological" or "rank"), Buckets and Norm to magnitude, Rules and
// Default to rules.
type Synth struct {
	Strategy string           `yaml:"strategy"`
	Order    string           `yaml:"order,omitempty"`
	Weights  []float64        `yaml:"weights,omitempty"`
	Buckets  int              `yaml:"buckets,omitempty"`
	Norm     string           `yaml:"norm,omitempty"`
	Rules    []threshold.Rule `yaml:"rules,omitempty"`
	Default  int              `yaml:"default,omitempty"`
}

// ParseDocument decodes one YAML document. Unknown fields are rejected.
func ParseDocument(data []byte) (*Document, error) {
	const op = "table.ParseDocument"
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var d Document
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, axis.ConstructionError(op, ErrEmptyDocument)
		}
		return nil, axis.ConstructionError(op, fmt.Errorf("%w: %w", ErrBadDocument, err))
	}
	return &d, nil
}

// Schema builds and validates the document's axes.
func (d *Document) Schema() (*Schema, error) {
	inputs := make([]*axis.Axis, len(d.Inputs))
	for i, spec := range d.Inputs {
		a, err := spec.build()
		if err != nil {
			return nil, err
		}
		inputs[i] = a
	}
	outcome, err := d.Outcome.build()
	if err != nil {
		return nil, err
	}
	return NewSchema(inputs, outcome)
}

func (s AxisSpec) build() (*axis.Axis, error) {
	vals := make([]axis.Value, len(s.Values))
	for i, v := range s.Values {
		vals[i] = axis.Value{Key: v.Key, Name: v.Name, Description: v.Description}
	}
	return axis.New(s.Key, s.Name, s.Version, vals...)
}

// NewDocument renders a schema and rows back into a Document.
func NewDocument(name string, s *Schema, rows []Row) *Document {
	d := &Document{
		Name:    name,
		Inputs:  make([]AxisSpec, len(s.Inputs)),
		Outcome: specOf(s.Outcome),
		Rows:    rows,
	}
	for i, a := range s.Inputs {
		d.Inputs[i] = specOf(a)
	}
	return d
}

func specOf(a *axis.Axis) AxisSpec {
	spec := AxisSpec{Key: a.Key, Name: a.Name, Version: a.Version.String(), Values: make([]ValueSpec, a.Len())}
	for i, v := range a.Values {
		spec.Values[i] = ValueSpec{Key: v.Key, Name: v.Name, Description: v.Description}
	}
	return spec
}

// Marshal encodes the document with two-space indentation.
func (d *Document) Marshal() ([]byte, error) {
	return encode(d)
}

// MarshalRows encodes rows alone as a YAML sequence.
func MarshalRows(rows []Row) ([]byte, error) {
	return encode(rows)
}

func encode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("table: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("table: encode: %w", err)
	}
	return buf.Bytes(), nil
}
