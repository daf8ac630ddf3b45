package shapecheck

// mark records where a result's data came from: a concrete value, an
// Optional bypass (no value at all), or a Nullable bypass (an explicit null).
type mark uint8

const (
	hasValue mark = iota
	noValue
	nullValue
)

// Result is the outcome of one validation run. Valid is true exactly when
// Errors is empty; the constructors make no other state representable.
// Data is meaningful only for valid results.
type Result[T any] struct {
	Valid  bool
	Data   T
	Errors []string

	presence mark
}

// Ok returns a valid result carrying data.
func Ok[T any](data T) Result[T] {
	return Result[T]{Valid: true, Data: data}
}

// Fail returns an invalid result with the given error messages. Called with
// none, it substitutes a generic message; an invalid result always carries
// at least one.
func Fail[T any](errs ...string) Result[T] {
	if len(errs) == 0 {
		errs = []string{"Invalid value"}
	}
	return Result[T]{Errors: errs}
}

// okAbsent is the valid no-data result an Optional bypass produces.
func okAbsent[T any]() Result[T] {
	return Result[T]{Valid: true, presence: noValue}
}

// okNull is the valid null result a Nullable bypass produces.
func okNull[T any]() Result[T] {
	return Result[T]{Valid: true, presence: nullValue}
}

// HasData reports whether the result is valid and carries a concrete value.
// Null results are valid but hold nothing concrete, so they report false.
func (r Result[T]) HasData() bool {
	return r.Valid && r.presence == hasValue
}

// Value returns the validated data in round-trip form: the data itself when
// present, [Absent] when an Optional bypass produced the result, and nil
// when a Nullable bypass did. Feeding Value back into the validator that
// produced it yields an equal result.
func (r Result[T]) Value() any {
	switch r.presence {
	case noValue:
		return Absent
	case nullValue:
		return nil
	default:
		return r.Data
	}
}

// Err returns nil for valid results and a *Error carrying the messages
// otherwise.
func (r Result[T]) Err() error {
	if r.Valid {
		return nil
	}
	return NewError(r.Errors, nil)
}
