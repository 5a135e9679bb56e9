// SPDX-License-Identifier: MIT

package axis

import (
	"fmt"
	"math"

	mm "github.com/Masterminds/semver/v3"
)

// Value is one rung of an ordinal scale. Only Key takes part in lookups;
// Name and Description are optional metadata carried through unchanged.
type Value struct {
	Key         string
	Name        string
	Description string
}

// Axis is an ordered value list, lowest severity first.
// It is immutable once built by New.
type Axis struct {
	Key     string
	Name    string
	Version *mm.Version
	Values  []Value

	index map[string]int // value key → position
}

// New validates and builds an Axis.
// Returns ErrEmptyKey, ErrBadVersion, ErrNoValues or ErrDuplicateValue,
// each joined with ErrConstruction.
func New(key, name, version string, values ...Value) (*Axis, error) {
	const op = "axis.New"
	if key == "" {
		return nil, ConstructionError(op, ErrEmptyKey)
	}
	v, err := mm.NewVersion(version)
	if err != nil {
		return nil, ConstructionError(fmt.Sprintf("%s(%s): version %q", op, key, version), ErrBadVersion)
	}
	if len(values) == 0 {
		return nil, ConstructionError(fmt.Sprintf("%s(%s)", op, key), ErrNoValues)
	}

	idx := make(map[string]int, len(values))
	vals := make([]Value, len(values))
	for i, val := range values {
		if val.Key == "" {
			return nil, ConstructionError(fmt.Sprintf("%s(%s): value #%d", op, key, i), ErrEmptyKey)
		}
		if _, dup := idx[val.Key]; dup {
			return nil, ConstructionError(fmt.Sprintf("%s(%s): value %q", op, key, val.Key), ErrDuplicateValue)
		}
		idx[val.Key] = i
		vals[i] = val
	}

	return &Axis{Key: key, Name: name, Version: v, Values: vals, index: idx}, nil
}

// MustNew is New that panics on error. Intended for fixtures and tests.
func MustNew(key, name, version string, values ...Value) *Axis {
	a, err := New(key, name, version, values...)
	if err != nil {
		panic(err)
	}
	return a
}

// Keys is a shorthand turning bare value keys into Values.
func Keys(keys ...string) []Value {
	out := make([]Value, len(keys))
	for i, k := range keys {
		out[i] = Value{Key: k}
	}
	return out
}

// ID returns the axis identity "Key:Version".
func (a *Axis) ID() string {
	return a.Key + ":" + a.Version.String()
}

// Len returns the number of values.
func (a *Axis) Len() int { return len(a.Values) }

// Index returns the position of the value with the given key.
// Complexity: O(1).
func (a *Axis) Index(valueKey string) (int, bool) {
	i, ok := a.index[valueKey]
	return i, ok
}

// ValueKey returns the key at position i, or "" when i is out of range.
func (a *Axis) ValueKey(i int) string {
	if i < 0 || i >= len(a.Values) {
		return ""
	}
	return a.Values[i].Key
}

// ValidateList checks an explicitly ordered axis list: non-empty, no nil
// entries, distinct identities. Two versions of one key are two distinct
// axes; versions are never compared.
func ValidateList(axes []*Axis) error {
	const op = "axis.ValidateList"
	if len(axes) == 0 {
		return ConstructionError(op, ErrNoAxes)
	}
	seen := make(map[string]struct{}, len(axes))
	for i, a := range axes {
		if a == nil {
			return ConstructionError(fmt.Sprintf("%s: axis #%d", op, i), ErrNilAxis)
		}
		id := a.ID()
		if _, dup := seen[id]; dup {
			return ConstructionError(fmt.Sprintf("%s: %s", op, id), ErrDuplicateAxis)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Dims returns the lengths of axes in order.
func Dims(axes []*Axis) []int {
	dims := make([]int, len(axes))
	for i, a := range axes {
		dims[i] = a.Len()
	}
	return dims
}

// GridSize returns ∏ dims, or -1 if the product overflows int.
// A non-positive dimension yields 0.
func GridSize(dims []int) int {
	if len(dims) == 0 {
		return 0
	}
	n := 1
	for _, d := range dims {
		if d <= 0 {
			return 0
		}
		if n > math.MaxInt/d {
			return -1
		}
		n *= d
	}
	return n
}

// CheckSize rejects a grid above limit with ErrSizeLimitExceeded.
// A limit <= 0 disables the check.
func CheckSize(op string, dims []int, limit int) error {
	n := GridSize(dims)
	if n < 0 || (limit > 0 && n > limit) {
		return SizeLimitError(op, n, limit)
	}
	return nil
}
