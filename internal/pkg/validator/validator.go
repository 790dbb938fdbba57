// Package validator wraps go-playground/validator with the project's error
// format. Struct fields declare their rules with `validate` tags; failures are
// returned as a joined error whose first member is ErrValidationFailed.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed marks any error produced by Validate or Var.
var ErrValidationFailed = errors.New("validation failed")

const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

var validate = gvalidator.New(gvalidator.WithRequiredStructEnabled())

// formatError turns validator field errors into one readable error per field.
// Errors of any other kind are returned untouched.
func formatError(err error) error {
	var fieldErrors gvalidator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	errs := make([]error, 0, len(fieldErrors)+1)
	errs = append(errs, ErrValidationFailed)
	for _, fe := range fieldErrors {
		errs = append(errs, fmt.Errorf(errStringFormat, fe.Field(), fe.Value(), fe.Tag()))
	}

	return errors.Join(errs...)
}

// Validate checks v against its struct tags.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return formatError(err)
	}
	return nil
}

// Var checks a single value against tag, e.g. Var(addr, "required,eth_addr").
func Var(value any, tag string) error {
	if err := validate.Var(value, tag); err != nil {
		return formatError(err)
	}
	return nil
}

// IsAddress reports whether s is a 0x-prefixed, 40 hex character EVM address.
func IsAddress(s string) bool {
	return Var(s, "required,eth_addr") == nil
}
