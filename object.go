package shapecheck

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// SchemaField is one named field of an [Object] validator. Build it with
// [Field]; the zero value is rejected at assembly time.
type SchemaField struct {
	name     string
	run      func(value any, depth int) Result[any]
	describe func(*openapi3.Schema)
	optional bool
}

// Field binds a name to a field validator for [Object]. The validator
// decides required-ness: a plain validator makes the field required, an
// Optional one lets it be omitted. Misassembly panics here rather than
// surfacing later as a runtime validation error.
func Field[T any](name string, v Validator[T]) SchemaField {
	if name == "" {
		panic("shapecheck: field name must not be empty")
	}
	if v.run == nil {
		panic(fmt.Sprintf("shapecheck: field %q has no validator", name))
	}
	inner := v.run
	return SchemaField{
		name: name,
		run: func(value any, depth int) Result[any] {
			res := inner(value, depth)
			out := Result[any]{Valid: res.Valid, Errors: res.Errors, presence: res.presence}
			if res.Valid && res.presence == hasValue {
				out.Data = res.Data
			}
			return out
		},
		describe: v.describe,
		optional: v.optional,
	}
}

// Object returns a validator for string-keyed maps against an ordered field
// schema. Missing keys are presented to their validator as [Absent], so
// required-ness lives in the field validators. Unknown input keys are
// ignored; use [StrictObject] to forbid them. The success data is a fresh
// record holding each present field's data, nil for null fields, and no key
// at all for absent ones.
func Object(fields ...SchemaField) Validator[map[string]any] {
	return newObject(fields, false)
}

// StrictObject is [Object] plus a gate rejecting input keys the schema does
// not declare.
func StrictObject(fields ...SchemaField) Validator[map[string]any] {
	return newObject(fields, true)
}

func newObject(fields []SchemaField, strict bool) Validator[map[string]any] {
	declared := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.run == nil {
			panic("shapecheck: Object field built without Field")
		}
		if declared[f.name] {
			panic(fmt.Sprintf("shapecheck: duplicate field %q", f.name))
		}
		declared[f.name] = true
	}
	return Validator[map[string]any]{
		run: func(value any, depth int) Result[map[string]any] {
			if depth >= MaxDepth {
				return Fail[map[string]any](depthExceeded)
			}
			input, ok := toStringMap(value)
			if !ok {
				return Fail[map[string]any]("Expected object")
			}
			var errs []string
			record := make(map[string]any, len(fields))
			for _, f := range fields {
				fv, present := input[f.name]
				if !present {
					fv = Absent
				}
				res := f.run(fv, depth+1)
				if !res.Valid {
					errs = append(errs, fmt.Sprintf("Field '%s': %s", f.name, strings.Join(res.Errors, ", ")))
					continue
				}
				switch res.presence {
				case noValue:
					// field omitted from the record
				case nullValue:
					record[f.name] = nil
				default:
					record[f.name] = res.Data
				}
			}
			if strict {
				errs = append(errs, unknownKeys(input, declared)...)
			}
			if len(errs) > 0 {
				return Fail[map[string]any](errs...)
			}
			return Ok(record)
		},
		describe: func(s *openapi3.Schema) {
			s.Type = &openapi3.Types{openapi3.TypeObject}
			s.Properties = openapi3.Schemas{}
			for _, f := range fields {
				s.Properties[f.name] = schemaRefFrom(f.describe)
				if !f.optional {
					s.Required = append(s.Required, f.name)
				}
			}
		},
	}
}

// toStringMap accepts map[string]any directly and any other string-keyed
// map via reflection. Everything else, null included, is not an object.
func toStringMap(value any) (map[string]any, bool) {
	if m, ok := value.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// unknownKeys lists input keys outside the declared set, sorted so repeated
// runs report identically.
func unknownKeys(input map[string]any, declared map[string]bool) []string {
	var bad []string
	for k := range input {
		if !declared[k] {
			bad = append(bad, k)
		}
	}
	sort.Strings(bad)
	for i, k := range bad {
		bad[i] = fmt.Sprintf("key '%s' not allowed", k)
	}
	return bad
}
