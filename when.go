package shapecheck

// When returns a constraint that applies cs only when cond held at build
// time. The condition is evaluated once at construction, not per value;
// wire-time flags like the deploy environment are the intended use.
func When[T any](cond bool, cs ...Constraint[T]) Constraint[T] {
	if !cond {
		return Constraint[T]{}
	}
	return AllOf(cs...)
}

// Unless is When with the condition inverted.
func Unless[T any](cond bool, cs ...Constraint[T]) Constraint[T] {
	return When(!cond, cs...)
}
