package shapecheck

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPattern(t *testing.T) {
	re := regexp.MustCompile(`^[a-z]+$`)
	c := Pattern(re)

	require.Equal(t, "", c.verify("abc"))
	require.Equal(t, "String must match pattern: ^[a-z]+$", c.verify("A1"))
	require.Equal(t, "String must match pattern: ^[a-z]+$", c.verify(""))
}

func TestPatternInSchema(t *testing.T) {
	re := regexp.MustCompile(`^\d{4}$`)
	s := String().Constrain(Pattern(re)).Schema()
	require.Equal(t, `^\d{4}$`, s.Pattern)
}
