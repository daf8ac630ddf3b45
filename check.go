package shapecheck

import (
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/multierr"
)

// Check validates value and returns the typed data or a *Error. It never
// hands back data from an invalid run, and a valid run that produced no
// data (an Optional bypass at the top level) is an error too, with its own
// message. A null success returns the zero value with a nil error; null is
// data.
func Check[T any](v Validator[T], value any) (T, error) {
	var zero T
	res := v.run(value, 0)
	if !res.Valid {
		return zero, NewError(res.Errors, value)
	}
	if res.presence == noValue {
		return zero, NewError([]string{"validation succeeded but produced no data"}, value)
	}
	return res.Data, nil
}

// MustCheck is Check for wiring-time configuration; it panics on error.
func MustCheck[T any](v Validator[T], value any) T {
	data, err := Check(v, value)
	if err != nil {
		panic(err)
	}
	return data
}

// Is returns a predicate reporting whether a value passes the validator.
// Handy for filter pipelines that only care about the verdict.
func Is[T any](v Validator[T]) func(any) bool {
	return func(value any) bool {
		return v.run(value, 0).Valid
	}
}

// CheckEach validates independent values against the same validator and
// combines the failures, one per failing item, tagged with the item index.
// A nil return means every item passed.
func CheckEach[T any](v Validator[T], values []any) error {
	var err error
	for i, value := range values {
		if _, cerr := Check(v, value); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("item %d: %w", i, cerr))
		}
	}
	return err
}

// DecodeAndCheck reads JSON from r and validates the decoded value. Numbers
// decode as float64, which is what [Number] expects. Use this when reading
// directly from an [io.Reader] such as an HTTP request body.
func DecodeAndCheck[T any](r io.Reader, v Validator[T]) (T, error) {
	var zero T
	var value any
	if err := json.NewDecoder(r).Decode(&value); err != nil {
		return zero, fmt.Errorf("decode request: %w", err)
	}
	return Check(v, value)
}
