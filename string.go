package shapecheck

import "github.com/getkin/kin-openapi/openapi3"

// String returns a validator that accepts string values. Anything else,
// null and missing values included, fails with "Expected string". There is
// no coercion: a []byte or a fmt.Stringer is not a string.
func String() Validator[string] {
	return Validator[string]{
		run: func(value any, _ int) Result[string] {
			s, ok := value.(string)
			if !ok {
				return Fail[string]("Expected string")
			}
			return Ok(s)
		},
		describe: func(s *openapi3.Schema) {
			s.Type = &openapi3.Types{openapi3.TypeString}
		},
	}
}

// NewStringConstraint returns a string constraint using validator for the
// check and msg as both the error message and the schema description line.
func NewStringConstraint(validator func(string) bool, msg string) Constraint[string] {
	return Constraint[string]{
		verify: func(s string) string {
			if validator(s) {
				return ""
			}
			return msg
		},
		describe: describeNote(msg),
	}
}
