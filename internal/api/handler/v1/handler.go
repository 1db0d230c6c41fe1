package v1

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

// isValidationError reports whether err carries field violations
// collected by the domain validators.
func isValidationError(err error) bool {
	var verrs validation.Errors

	return errors.As(err, &verrs)
}
