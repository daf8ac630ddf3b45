package shapecheck

import "github.com/getkin/kin-openapi/openapi3"

// The constraints in this file never reject anything; they exist to enrich
// the generated schema.

// Describe returns a documentation-only constraint appending desc to the
// schema description.
func Describe[T any](desc string) Constraint[T] {
	return Constraint[T]{describe: describeNote(desc)}
}

// Default returns a documentation-only constraint setting the schema
// default value.
func Default[T any](value T) Constraint[T] {
	return Constraint[T]{describe: func(s *openapi3.Schema) { s.Default = value }}
}

// Deprecate returns a documentation-only constraint marking the schema
// deprecated.
func Deprecate[T any]() Constraint[T] {
	return Constraint[T]{describe: func(s *openapi3.Schema) { s.Deprecated = true }}
}

// Example returns a documentation-only constraint setting the schema
// example value.
func Example[T any](value T) Constraint[T] {
	return Constraint[T]{describe: func(s *openapi3.Schema) { s.Example = value }}
}
