package model

import "errors"

// Domain errors. Handlers translate these into HTTP responses; everything
// else is treated as an internal failure.
var (
	// ErrDishNotFound signals an absent identity on get/edit/delete, and is
	// also the explicit "no match" result of a random draw. It is
	// distinguishable from transient query failures.
	ErrDishNotFound = errors.New("dish not found")
)

// ValidationError reports a missing required field or a value outside its
// enumeration.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
