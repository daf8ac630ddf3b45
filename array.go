package shapecheck

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Array returns a validator that checks every element of a slice or array
// against item and hands back the typed elements. Non-sequence input fails
// with "Expected array". Element failures never stop the walk; each failing
// element contributes one message naming its index.
func Array[T any](item Validator[T]) Validator[[]T] {
	inner := item.run
	itemDesc := item.describe
	return Validator[[]T]{
		run: func(value any, depth int) Result[[]T] {
			if depth >= MaxDepth {
				return Fail[[]T](depthExceeded)
			}
			elems, ok := toSlice(value)
			if !ok {
				return Fail[[]T]("Expected array")
			}
			out := make([]T, 0, len(elems))
			var errs []string
			for i, el := range elems {
				res := inner(el, depth+1)
				if !res.Valid {
					errs = append(errs, fmt.Sprintf("Item at index %d: %s", i, strings.Join(res.Errors, ", ")))
					continue
				}
				out = append(out, res.Data)
			}
			if len(errs) > 0 {
				return Fail[[]T](errs...)
			}
			return Ok(out)
		},
		describe: func(s *openapi3.Schema) {
			s.Type = &openapi3.Types{openapi3.TypeArray}
			s.Items = schemaRefFrom(itemDesc)
		},
	}
}

// toSlice flattens slice or array input into []any. A nil []any counts as
// an empty sequence, not as null.
func toSlice(value any) ([]any, bool) {
	if vs, ok := value.([]any); ok {
		return vs, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
