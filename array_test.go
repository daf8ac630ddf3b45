package shapecheck

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArray(t *testing.T) {
	val := Array(String())

	res := val.Validate([]any{"a", "b"})
	require.True(t, res.Valid)
	require.Equal(t, []string{"a", "b"}, res.Data)

	res = val.Validate([]any{})
	require.True(t, res.Valid)
	require.Empty(t, res.Data)
}

func TestArrayRejectsNonSequence(t *testing.T) {
	val := Array(String())
	for _, bad := range []any{"abc", 42, true, nil, map[string]any{}} {
		res := val.Validate(bad)
		require.False(t, res.Valid, "value %v", bad)
		require.Equal(t, []string{"Expected array"}, res.Errors)
	}
}

func TestArrayChecksEveryElement(t *testing.T) {
	res := Array(String()).Validate([]any{"a", 1, true})
	require.False(t, res.Valid)
	require.Equal(t, []string{
		"Item at index 1: Expected string",
		"Item at index 2: Expected string",
	}, res.Errors)
}

func TestArrayJoinsElementErrors(t *testing.T) {
	item := String().Constrain(MinLength(3)).Or(String().Constrain(MaxLength(1)))
	res := Array(item).Validate([]any{"ab"})
	require.False(t, res.Valid)
	require.Equal(t, []string{
		"Item at index 0: String must be at least 3 characters long, String must be no more than 1 characters long",
	}, res.Errors)
}

func TestArrayTypedSlices(t *testing.T) {
	res := Array(Number()).Validate([]int{1, 2, 3})
	require.True(t, res.Valid)
	require.Equal(t, []float64{1, 2, 3}, res.Data)

	strs := Array(String()).Validate([]string{"x"})
	require.True(t, strs.Valid)
	require.Equal(t, []string{"x"}, strs.Data)
}

func TestArrayNilSliceIsEmpty(t *testing.T) {
	var input []any
	res := Array(String()).Validate(input)
	require.True(t, res.Valid)
	require.Empty(t, res.Data)
}

func TestArrayNested(t *testing.T) {
	val := Array(Array(Number()))

	res := val.Validate([]any{[]any{1, 2}, []any{3}})
	require.True(t, res.Valid)
	require.Equal(t, [][]float64{{1, 2}, {3}}, res.Data)

	bad := val.Validate([]any{[]any{1}, "nope"})
	require.False(t, bad.Valid)
	require.Equal(t, []string{"Item at index 1: Expected array"}, bad.Errors)
}
