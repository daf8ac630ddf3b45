package shapecheck

import (
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
)

type absentValue struct{}

// Absent is the sentinel for a value that is missing entirely: an unset map
// key, an undefined query parameter. [Object] presents it to field
// validators for missing keys. It is distinct from null, which is an
// explicit nil.
var Absent any = absentValue{}

// isNull reports whether value is null: an untyped nil or a nil pointer.
// Nil slices and maps are values in their own right, not null.
func isNull(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

// Optional returns a validator that treats a missing value as an immediate
// success carrying no data. Only [Absent] is bypassed; null and every
// concrete value are delegated to the receiver unchanged.
func (v Validator[T]) Optional() Validator[T] {
	inner := v.run
	return Validator[T]{
		optional: true,
		run: func(value any, depth int) Result[T] {
			if value == Absent {
				return okAbsent[T]()
			}
			return inner(value, depth)
		},
		describe: v.describe,
	}
}

// Nullable returns a validator that accepts null as a success whose data is
// null. Only null is bypassed; a missing value is delegated to the receiver,
// so a nullable field stays required unless also Optional.
func (v Validator[T]) Nullable() Validator[T] {
	inner := v.run
	desc := v.describe
	return Validator[T]{
		optional: v.optional,
		run: func(value any, depth int) Result[T] {
			if isNull(value) {
				return okNull[T]()
			}
			return inner(value, depth)
		},
		describe: func(s *openapi3.Schema) {
			if desc != nil {
				desc(s)
			}
			s.Nullable = true
		},
	}
}
