package shapecheck

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// In returns a constraint that checks membership in the allowed values. The
// message lists the allowed values and the rejected one.
func In[T comparable](allowed ...T) Constraint[T] {
	want := make([]string, len(allowed))
	enum := make([]any, len(allowed))
	for i := range allowed {
		want[i] = fmt.Sprintf("'%v'", allowed[i])
		enum[i] = allowed[i]
	}
	list := strings.Join(want, ", ")
	return Constraint[T]{
		verify: func(v T) string {
			for _, a := range allowed {
				if v == a {
					return ""
				}
			}
			return fmt.Sprintf("must be one of %s got '%v'", list, v)
		},
		describe: func(s *openapi3.Schema) {
			s.Enum = enum
		},
	}
}
