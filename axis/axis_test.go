package axis_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/monoton/axis"
)

// TestNew_Valid builds a three-value axis and checks identity and lookups.
func TestNew_Valid(t *testing.T) {
	a, err := axis.New("E", "Exploitation", "1.1", axis.Keys("N", "P", "A")...)
	require.NoError(t, err)

	assert.Equal(t, "E:1.1.0", a.ID())
	assert.Equal(t, 3, a.Len())

	i, ok := a.Index("P")
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = a.Index("X")
	assert.False(t, ok)

	assert.Equal(t, "A", a.ValueKey(2))
	assert.Equal(t, "", a.ValueKey(3))
}

// TestNew_Errors verifies every malformed axis is a construction error.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name    string
		key     string
		version string
		values  []axis.Value
		want    error
	}{
		{"EmptyKey", "", "1.0.0", axis.Keys("a"), axis.ErrEmptyKey},
		{"BadVersion", "E", "one", axis.Keys("a"), axis.ErrBadVersion},
		{"NoValues", "E", "1.0.0", nil, axis.ErrNoValues},
		{"EmptyValueKey", "E", "1.0.0", axis.Keys("a", ""), axis.ErrEmptyKey},
		{"DuplicateValue", "E", "1.0.0", axis.Keys("a", "b", "a"), axis.ErrDuplicateValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := axis.New(tc.key, "", tc.version, tc.values...)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, axis.ErrConstruction)
		})
	}
}

// TestValidateList covers empty, nil and duplicate-identity lists.
func TestValidateList(t *testing.T) {
	a := axis.MustNew("A", "", "1.0.0", axis.Keys("lo", "hi")...)
	b := axis.MustNew("B", "", "1.0.0", axis.Keys("lo", "hi")...)
	aNext := axis.MustNew("A", "", "2.0.0", axis.Keys("lo", "hi")...)

	assert.NoError(t, axis.ValidateList([]*axis.Axis{a, b}))
	assert.NoError(t, axis.ValidateList([]*axis.Axis{a, aNext}), "versions differ, identities differ")
	assert.ErrorIs(t, axis.ValidateList(nil), axis.ErrNoAxes)
	assert.ErrorIs(t, axis.ValidateList([]*axis.Axis{a, nil}), axis.ErrNilAxis)
	assert.ErrorIs(t, axis.ValidateList([]*axis.Axis{a, b, a}), axis.ErrDuplicateAxis)
}

// TestGridSize checks products, zero dimensions and overflow.
func TestGridSize(t *testing.T) {
	assert.Equal(t, 12, axis.GridSize([]int{3, 2, 2}))
	assert.Equal(t, 0, axis.GridSize(nil))
	assert.Equal(t, 0, axis.GridSize([]int{3, 0}))

	huge := make([]int, 70)
	for i := range huge {
		huge[i] = 2
	}
	assert.Equal(t, -1, axis.GridSize(huge))

	err := axis.CheckSize("test", huge, 0)
	assert.True(t, errors.Is(err, axis.ErrSizeLimitExceeded))
	assert.ErrorIs(t, axis.CheckSize("test", []int{8, 8, 8}, 100), axis.ErrSizeLimitExceeded)
	assert.NoError(t, axis.CheckSize("test", []int{8, 8, 8}, 512))
	assert.NoError(t, axis.CheckSize("test", []int{8, 8, 8}, 0))
}
