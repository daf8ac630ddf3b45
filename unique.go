package shapecheck

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// Unique returns a constraint that rejects slices with duplicate elements.
// The message names the first duplicated index.
func Unique[T comparable]() Constraint[[]T] {
	return UniqueBy(func(v T) T { return v })
}

// UniqueBy is Unique with a key function, for element types that are not
// comparable or that should dedupe on a projection.
func UniqueBy[T any, K comparable](key func(T) K) Constraint[[]T] {
	return Constraint[[]T]{
		verify: func(vs []T) string {
			seen := make(map[K]struct{}, len(vs))
			for i, v := range vs {
				k := key(v)
				if _, dup := seen[k]; dup {
					return fmt.Sprintf("Item at index %d is a duplicate", i)
				}
				seen[k] = struct{}{}
			}
			return ""
		},
		describe: func(s *openapi3.Schema) {
			s.UniqueItems = true
		},
	}
}
