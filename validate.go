package shapecheck

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// MaxDepth is how deep structural validators recurse before giving up.
// Schemas deeper than this, usually a [Lazy] cycle fed malformed input, fail
// with a depth message instead of overflowing the stack.
const MaxDepth = 64

const depthExceeded = "Maximum validation depth exceeded"

// Validator checks an untyped decoded value and, on success, hands back data
// of a concrete type. Validators are immutable values: every method returns
// a new validator and none touches shared state, so package-level validators
// are safe to share process-wide.
type Validator[T any] struct {
	run      func(value any, depth int) Result[T]
	describe func(*openapi3.Schema)
	optional bool
}

// New builds a validator from a run function and an optional schema
// contribution. The ready-made constructors cover the common cases; New is
// the escape hatch for bespoke leaf validators.
func New[T any](run func(value any) Result[T], describe func(*openapi3.Schema)) Validator[T] {
	return Validator[T]{
		run:      func(value any, _ int) Result[T] { return run(value) },
		describe: describe,
	}
}

// Validate runs the validator against value.
func (v Validator[T]) Validate(value any) Result[T] {
	return v.run(value, 0)
}

// And returns a validator that runs the receiver and, only when it succeeds
// with concrete data, next against the same input. The first failure is
// returned as-is, so next never sees input the receiver rejected. Bypass
// results (absent, null) skip next, exactly like [Validator.Constrain]; they
// carry no value to check. A double success keeps the receiver's data.
func (v Validator[T]) And(next Validator[T]) Validator[T] {
	first, second := v.run, next.run
	return Validator[T]{
		optional: v.optional,
		run: func(value any, depth int) Result[T] {
			res := first(value, depth)
			if !res.Valid || res.presence != hasValue {
				return res
			}
			if other := second(value, depth); !other.Valid {
				return other
			}
			return res
		},
		describe: mergeDescribe(v.describe, next.describe),
	}
}

// Or returns a validator that accepts a value when either validator does.
// The receiver runs first and short-circuits on success, so alt never runs
// then. When both fail the errors concatenate, receiver's first.
func (v Validator[T]) Or(alt Validator[T]) Validator[T] {
	first, second := v.run, alt.run
	d1, d2 := v.describe, alt.describe
	return Validator[T]{
		optional: v.optional || alt.optional,
		run: func(value any, depth int) Result[T] {
			res := first(value, depth)
			if res.Valid {
				return res
			}
			other := second(value, depth)
			if other.Valid {
				return other
			}
			errs := make([]string, 0, len(res.Errors)+len(other.Errors))
			errs = append(errs, res.Errors...)
			errs = append(errs, other.Errors...)
			return Fail[T](errs...)
		},
		describe: func(s *openapi3.Schema) {
			s.OneOf = openapi3.SchemaRefs{schemaRefFrom(d1), schemaRefFrom(d2)}
		},
	}
}

// Constrain wraps the receiver with additional checks. The receiver runs
// first and its failures are forwarded untouched. On success the constraints
// run in order against the typed data and the first violation becomes the
// single error of the new result. Bypass results (absent, null) skip the
// constraints; they carry no value to check.
func (v Validator[T]) Constrain(cs ...Constraint[T]) Validator[T] {
	inner := v.run
	descs := make([]func(*openapi3.Schema), 0, len(cs)+1)
	descs = append(descs, v.describe)
	for _, c := range cs {
		descs = append(descs, c.describe)
	}
	return Validator[T]{
		optional: v.optional,
		run: func(value any, depth int) Result[T] {
			res := inner(value, depth)
			if !res.Valid || res.presence != hasValue {
				return res
			}
			for _, c := range cs {
				if c.verify == nil {
					continue
				}
				if msg := c.verify(res.Data); msg != "" {
					return Fail[T](msg)
				}
			}
			return res
		},
		describe: mergeDescribe(descs...),
	}
}
