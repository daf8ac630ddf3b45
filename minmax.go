package shapecheck

import (
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
)

// Min returns a constraint requiring the number to be at least bound.
func Min(bound float64) Constraint[float64] {
	return Constraint[float64]{
		verify: func(f float64) string {
			if f < bound {
				return "Number must be at least " + formatBound(bound)
			}
			return ""
		},
		describe: func(s *openapi3.Schema) {
			lo := bound
			s.Min = &lo
		},
	}
}

// Max returns a constraint requiring the number to be at most bound.
func Max(bound float64) Constraint[float64] {
	return Constraint[float64]{
		verify: func(f float64) string {
			if f > bound {
				return "Number must be no more than " + formatBound(bound)
			}
			return ""
		},
		describe: func(s *openapi3.Schema) {
			hi := bound
			s.Max = &hi
		},
	}
}

// formatBound renders a bound without a trailing ".0" on whole numbers.
func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
