package shapecheck

import (
	"math"
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
)

var floatType = reflect.TypeOf(float64(0))

// Number returns a validator that accepts any Go numeric kind and hands the
// value back as float64, which is how JSON decoding surfaces numbers. NaN,
// booleans, numeric strings, and json.Number all fail with "Expected
// number"; parsing text into numbers is the caller's business.
func Number() Validator[float64] {
	return Validator[float64]{
		run: func(value any, _ int) Result[float64] {
			f, ok := toFloat(value)
			if !ok || math.IsNaN(f) {
				return Fail[float64]("Expected number")
			}
			return Ok(f)
		},
		describe: func(s *openapi3.Schema) {
			s.Type = &openapi3.Types{openapi3.TypeNumber}
		},
	}
}

// toFloat converts numeric kinds to float64. String kinds are excluded on
// purpose even though reflect could convert json.Number.
func toFloat(value any) (float64, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return rv.Convert(floatType).Float(), true
	default:
		return 0, false
	}
}
