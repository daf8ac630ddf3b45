package shapecheck

import (
	"regexp"

	"github.com/getkin/kin-openapi/openapi3"
)

// Pattern returns a constraint requiring the value to match re. The error
// message and the schema pattern both carry re's source text, so callers
// can see what was expected without chasing the schema definition.
func Pattern(re *regexp.Regexp) Constraint[string] {
	return Constraint[string]{
		verify: func(s string) string {
			if re.MatchString(s) {
				return ""
			}
			return "String must match pattern: " + re.String()
		},
		describe: func(s *openapi3.Schema) {
			s.Pattern = re.String()
		},
	}
}
