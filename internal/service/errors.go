// SPDX-License-Identifier: Apache-2.0

package service

import (
	"fmt"

	"github.com/crunchtools/mcp-wordpress/internal/validators"
)

// ErrNoFields rejects an update request that names a resource but carries
// no field to change. It unwraps to the validation root error.
var ErrNoFields = fmt.Errorf("%w: at least one updatable field must be provided", validators.ErrValidation)
