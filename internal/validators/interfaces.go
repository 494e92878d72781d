// SPDX-License-Identifier: Apache-2.0

// Package validators enforces the pre-flight input rules applied before any
// API request is built: string length ceilings, enumerated value sets,
// positive integer identifiers, and path-safety checks for resource paths
// and local upload files.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - FieldError: every rejection names the offending field, so callers can
//     surface actionable messages without inspecting rule internals.
//
// Validation failures are recoverable by the caller and guarantee that no
// network call was attempted.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
