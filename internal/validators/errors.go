// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the root of every validation failure; callers can
	// classify rejections with errors.Is without knowing the rule.
	ErrValidation = errors.New("validation failed")

	// ErrUnsupportedType is returned when a value of an unknown type is
	// passed to Validate.
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// FieldError is a validation failure attributed to a single named field.
// It unwraps to [ErrValidation].
type FieldError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// Unwrap makes errors.Is(err, ErrValidation) hold for every FieldError.
func (e *FieldError) Unwrap() error {
	return ErrValidation
}

func fieldErrorf(field, format string, args ...any) error {
	return &FieldError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
