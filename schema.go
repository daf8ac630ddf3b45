package shapecheck

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// SchemaProvider is the one-method view of a validator that the openapi
// package consumes. Every Validator instantiation satisfies it.
type SchemaProvider interface {
	Schema() *openapi3.Schema
}

// Schema builds a fresh OpenAPI schema from the validator's accumulated
// contributions: the primitive type, constraint bounds, enums, descriptions,
// and for structural validators the items and properties trees.
func (v Validator[T]) Schema() *openapi3.Schema {
	s := openapi3.NewSchema()
	if v.describe != nil {
		v.describe(s)
	}
	return s
}

// SchemaRef wraps [Validator.Schema] for APIs that want a reference.
func (v Validator[T]) SchemaRef() *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Value: v.Schema()}
}

// schemaRefFrom builds a schema ref from a raw contribution.
func schemaRefFrom(describe func(*openapi3.Schema)) *openapi3.SchemaRef {
	s := openapi3.NewSchema()
	if describe != nil {
		describe(s)
	}
	return &openapi3.SchemaRef{Value: s}
}

// appendDescription adds text to the schema description, space separated.
func appendDescription(s *openapi3.Schema, text string) {
	if s.Description != "" && !strings.HasSuffix(s.Description, " ") {
		s.Description += " "
	}
	s.Description += text
}

func describeNote(text string) func(*openapi3.Schema) {
	return func(s *openapi3.Schema) { appendDescription(s, text) }
}

// mergeDescribe folds several contributions into one, skipping nils.
func mergeDescribe(fns ...func(*openapi3.Schema)) func(*openapi3.Schema) {
	return func(s *openapi3.Schema) {
		for _, fn := range fns {
			if fn != nil {
				fn(s)
			}
		}
	}
}
