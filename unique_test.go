package shapecheck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnique(t *testing.T) {
	c := Unique[string]()
	require.Equal(t, "", c.verify([]string{"a", "b", "c"}))
	require.Equal(t, "", c.verify(nil))
	require.Equal(t, "Item at index 2 is a duplicate", c.verify([]string{"a", "b", "a"}))
}

func TestUniqueBy(t *testing.T) {
	c := UniqueBy(strings.ToLower)
	require.Equal(t, "", c.verify([]string{"a", "B"}))
	require.Equal(t, "Item at index 1 is a duplicate", c.verify([]string{"a", "A"}))
}

func TestUniqueOnArray(t *testing.T) {
	val := Array(String()).Constrain(Unique[string]())

	require.True(t, val.Validate([]any{"x", "y"}).Valid)

	res := val.Validate([]any{"x", "x"})
	require.False(t, res.Valid)
	require.Equal(t, []string{"Item at index 1 is a duplicate"}, res.Errors)

	s := val.Schema()
	require.True(t, s.UniqueItems)
}
