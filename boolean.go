package shapecheck

import "github.com/getkin/kin-openapi/openapi3"

// Boolean returns a validator that accepts bool values only; everything
// else fails with "Expected boolean". The strings "true" and "false" are
// not booleans.
func Boolean() Validator[bool] {
	return Validator[bool]{
		run: func(value any, _ int) Result[bool] {
			b, ok := value.(bool)
			if !ok {
				return Fail[bool]("Expected boolean")
			}
			return Ok(b)
		},
		describe: func(s *openapi3.Schema) {
			s.Type = &openapi3.Types{openapi3.TypeBoolean}
		},
	}
}
