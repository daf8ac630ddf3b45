package shapecheck

import (
	"time"

	"github.com/getkin/kin-openapi/openapi3"
)

// Date returns a constraint requiring the string to parse under the given
// layout. The data stays the raw string; turning it into a time.Time is the
// caller's business.
func Date(layout string) Constraint[string] {
	return Constraint[string]{
		verify: func(s string) string {
			if _, err := time.Parse(layout, s); err != nil {
				return "String must be a valid date in layout " + layout
			}
			return ""
		},
		describe: func(s *openapi3.Schema) {
			s.Format = layout
		},
	}
}
