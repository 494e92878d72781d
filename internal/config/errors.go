// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

// Validation errors returned by [Config.validate] and [NewCredentials] when
// required configuration groups are incomplete or invalid. All are fatal at
// startup: the process must not begin serving with a broken configuration.
var (
	// ErrInvalidWordPressConfig indicates missing or malformed site
	// credentials (address, username, or application password).
	ErrInvalidWordPressConfig = errors.New("invalid wordpress configuration")
	// ErrInvalidGatewayConfig indicates invalid transport settings
	// (non-positive timeout or response size cap).
	ErrInvalidGatewayConfig = errors.New("invalid gateway configuration")
	// ErrInvalidMediaConfig indicates invalid media upload settings
	// (empty or relative upload directory).
	ErrInvalidMediaConfig = errors.New("invalid media configuration")
)
