// SPDX-License-Identifier: MIT
// Package: monoton/axis
//
// errors.go: error taxonomy shared by the whole module plus the sentinels
// raised while validating axes.
//
// Error policy:
//   • Two category sentinels (ErrConstruction, ErrSizeLimitExceeded) classify
//     every failure a caller can act on.
//   • Precise sentinels name the cause; packages return them joined with the
//     category via ConstructionError, so errors.Is matches either one.
//   • Malformed input is never retried and never partially computed.

package axis

import (
	"errors"
	"fmt"
)

// ErrConstruction classifies malformed input rejected before any computation:
// empty or duplicate axes, bad weight vectors, k<2, zero-range columns.
var ErrConstruction = errors.New("construction error")

// ErrSizeLimitExceeded classifies a combinatorial grid larger than the
// configured ceiling. Callers narrow scope (e.g. split by one axis) instead.
var ErrSizeLimitExceeded = errors.New("grid size limit exceeded")

var (
	// ErrEmptyKey indicates an axis or value without a key.
	ErrEmptyKey = errors.New("axis: empty key")

	// ErrNoValues indicates an axis with a zero-length value list.
	ErrNoValues = errors.New("axis: value list is empty")

	// ErrDuplicateValue indicates two values of one axis share a key.
	ErrDuplicateValue = errors.New("axis: duplicate value key")

	// ErrBadVersion indicates an axis version that is not a semantic version.
	ErrBadVersion = errors.New("axis: invalid version")

	// ErrNoAxes indicates an empty axis list where at least one axis is required.
	ErrNoAxes = errors.New("axis: axis list is empty")

	// ErrDuplicateAxis indicates two axes of one list share an identity.
	ErrDuplicateAxis = errors.New("axis: duplicate axis identity")

	// ErrNilAxis indicates a nil *Axis inside an axis list.
	ErrNilAxis = errors.New("axis: nil axis")
)

// ConstructionError returns cause tagged with operation context and joined with
// ErrConstruction, so both errors.Is(err, cause) and
// errors.Is(err, ErrConstruction) hold.
func ConstructionError(op string, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, cause, ErrConstruction)
}

// SizeLimitError reports a grid of size nodes above limit.
func SizeLimitError(op string, nodes, limit int) error {
	if nodes < 0 {
		return fmt.Errorf("%s: grid size overflows int (limit %d): %w", op, limit, ErrSizeLimitExceeded)
	}
	return fmt.Errorf("%s: grid has %d nodes (limit %d): %w", op, nodes, limit, ErrSizeLimitExceeded)
}
