package shapecheck

import (
	"fmt"
	"unicode/utf8"

	"github.com/getkin/kin-openapi/openapi3"
)

// MinLength returns a constraint requiring at least n characters, counted
// in runes rather than bytes.
func MinLength(n int) Constraint[string] {
	return Constraint[string]{
		verify: func(s string) string {
			if utf8.RuneCountInString(s) < n {
				return fmt.Sprintf("String must be at least %d characters long", n)
			}
			return ""
		},
		describe: func(s *openapi3.Schema) {
			s.MinLength = uint64(n)
		},
	}
}

// MaxLength returns a constraint allowing at most n characters, counted in
// runes rather than bytes.
func MaxLength(n int) Constraint[string] {
	return Constraint[string]{
		verify: func(s string) string {
			if utf8.RuneCountInString(s) > n {
				return fmt.Sprintf("String must be no more than %d characters long", n)
			}
			return ""
		},
		describe: func(s *openapi3.Schema) {
			hi := uint64(n)
			s.MaxLength = &hi
		},
	}
}
