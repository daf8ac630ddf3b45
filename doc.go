// Package shapecheck validates untyped decoded values (JSON bodies, env
// records, queue payloads) against composable typed schemas.
//
// Build validators from the primitive constructors and refine them with
// constraints:
//
//	name := shapecheck.String().Constrain(shapecheck.MinLength(1), shapecheck.MaxLength(200))
//
// Compose structures with [Array] and [Object], mark fields with
// [Validator.Optional] or [Validator.Nullable], and run them with
// [Validator.Validate] for a full [Result], or with [Check] when an error
// return fits the call site better.
//
// For HTTP handlers, [DecodeAndCheck] combines JSON decoding with
// validation in one step.
//
// Sub-packages:
//   - openapi – OpenAPI document assembly from validators and Swagger UI serving
//   - is – common string format constraints
//   - envelope – the ok/data/error/meta payload services answer with
//   - envcfg – environment configuration loading validated by [EnvConfig]
package shapecheck
