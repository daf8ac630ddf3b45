package shapecheck

import "github.com/getkin/kin-openapi/openapi3"

// Constraint is a single named check applied to already-typed data via
// [Validator.Constrain]. Its verify function returns "" for a pass or the
// one error message for a violation; its describe function contributes the
// check to the OpenAPI schema. The zero Constraint passes everything and
// describes nothing, which is what the documentation-only constraints build
// on.
type Constraint[T any] struct {
	verify   func(T) string
	describe func(*openapi3.Schema)
}

// NewConstraint builds a constraint from a verify function and an optional
// schema contribution. The ready-made constraints cover the common cases;
// NewConstraint is for bespoke checks that need dynamic messages.
func NewConstraint[T any](verify func(T) string, describe func(*openapi3.Schema)) Constraint[T] {
	return Constraint[T]{verify: verify, describe: describe}
}

// AllOf merges constraints into one that applies them in order and reports
// the first violation.
func AllOf[T any](cs ...Constraint[T]) Constraint[T] {
	descs := make([]func(*openapi3.Schema), 0, len(cs))
	for _, c := range cs {
		descs = append(descs, c.describe)
	}
	return Constraint[T]{
		verify: func(v T) string {
			for _, c := range cs {
				if c.verify == nil {
					continue
				}
				if msg := c.verify(v); msg != "" {
					return msg
				}
			}
			return ""
		},
		describe: mergeDescribe(descs...),
	}
}
