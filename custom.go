package shapecheck

// Refine returns a constraint that uses f for the check and msg as both the
// error message and the schema description line.
func Refine[T any](f func(T) bool, msg string) Constraint[T] {
	return Constraint[T]{
		verify: func(v T) string {
			if f(v) {
				return ""
			}
			return msg
		},
		describe: describeNote(msg),
	}
}
