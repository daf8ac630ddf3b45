package shapecheck

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// WrapRule runs an ozzo-validation rule as a constraint, for the long tail
// of checks that ecosystem already covers. The rule's error text becomes
// the message.
func WrapRule[T any](rule validation.Rule) Constraint[T] {
	return Constraint[T]{
		verify: func(v T) string {
			if err := rule.Validate(v); err != nil {
				return err.Error()
			}
			return ""
		},
	}
}

// AsRule exposes a validator to ozzo struct validation, so a schema defined
// here can guard a single field of a larger ozzo-validated struct. The
// joined result errors become the rule's error text.
func AsRule[T any](v Validator[T]) validation.Rule {
	return validatorRule[T]{v}
}

type validatorRule[T any] struct {
	v Validator[T]
}

func (r validatorRule[T]) Validate(value any) error {
	res := r.v.run(value, 0)
	if res.Valid {
		return nil
	}
	return errors.New(strings.Join(res.Errors, ", "))
}
