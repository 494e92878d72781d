// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// validate checks that the final merged [Config] satisfies all startup
// invariants. Credential contents are validated again, more thoroughly, by
// [NewCredentials]; the checks here catch empty required fields early so the
// failure names the variable that is missing.
func (cfg *Config) validate() error {
	if strings.TrimSpace(cfg.WordPress.URL) == "" {
		return fmt.Errorf("%w: WORDPRESS_URL is required (e.g. https://example.com)", ErrInvalidWordPressConfig)
	}
	if strings.TrimSpace(cfg.WordPress.Username) == "" {
		return fmt.Errorf("%w: WORDPRESS_USERNAME is required", ErrInvalidWordPressConfig)
	}
	if cfg.WordPress.AppPassword == "" {
		return fmt.Errorf("%w: WORDPRESS_APP_PASSWORD is required"+
			" (create one in WordPress: Users -> Profile -> Application Passwords)", ErrInvalidWordPressConfig)
	}

	if cfg.Gateway.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidGatewayConfig)
	}
	if cfg.Gateway.MaxResponseBytes <= 0 {
		return fmt.Errorf("%w: response size cap must be positive", ErrInvalidGatewayConfig)
	}

	if cfg.Media.UploadDir == "" {
		return fmt.Errorf("%w: upload directory is required", ErrInvalidMediaConfig)
	}
	if !filepath.IsAbs(cfg.Media.UploadDir) {
		return fmt.Errorf("%w: upload directory must be an absolute path", ErrInvalidMediaConfig)
	}

	return nil
}
