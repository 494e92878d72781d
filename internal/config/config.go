// SPDX-License-Identifier: Apache-2.0

// Package config loads, merges, and validates the process configuration and
// holds the WordPress credential bundle. Values come from environment
// variables and command-line flags, merged through a builder; defaults are
// applied last. The application password is treated as sensitive from the
// moment it is read: every textual rendering of configuration substitutes
// the redaction marker for it.
package config

import "time"

// Redacted is the marker substituted for secret values in any string
// representation, log record, or error message.
const Redacted = "***"

const (
	defaultRequestTimeout   = 30 * time.Second
	defaultMaxResponseBytes = 10 << 20 // 10 MiB
	defaultUploadDir        = "/tmp/mcp-uploads"
	defaultLogLevel         = "info"
)

// Config is the top-level configuration container.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// WordPress holds the remote site address and credentials.
	WordPress WordPress `envPrefix:"WORDPRESS_"`

	// Gateway holds transport hardening settings for outbound API calls.
	Gateway Gateway `envPrefix:"GATEWAY_"`

	// Media holds settings for local media file uploads.
	Media Media `envPrefix:"MEDIA_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`
}

// WordPress holds the remote site address and the Basic Auth credential pair.
type WordPress struct {
	// URL is the WordPress site base address (e.g. https://example.com).
	// Env: WORDPRESS_URL
	URL string `env:"URL"`

	// Username is the WordPress account name.
	// Env: WORDPRESS_USERNAME
	Username string `env:"USERNAME"`

	// AppPassword is the WordPress application password
	// (Users -> Profile -> Application Passwords). Sensitive.
	// Env: WORDPRESS_APP_PASSWORD
	AppPassword string `env:"APP_PASSWORD"`
}

// Gateway holds transport limits enforced on every outbound API call.
type Gateway struct {
	// RequestTimeout is the wall-clock ceiling for a single call,
	// covering connect and transfer (e.g. "30s").
	// Env: GATEWAY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxResponseBytes caps the response body size read into memory.
	// Env: GATEWAY_MAX_RESPONSE_BYTES
	MaxResponseBytes int64 `env:"MAX_RESPONSE_BYTES"`
}

// Media holds local-filesystem settings for media uploads.
type Media struct {
	// UploadDir is the only directory media files may be read from.
	// Paths resolving outside it are rejected before any file access.
	// Env: MEDIA_UPLOAD_DIR
	UploadDir string `env:"UPLOAD_DIR"`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimum level emitted (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Load loads, merges, and validates the configuration from all sources in
// priority order (earlier sources win per field):
//  1. Environment variables
//  2. Explicit overlays (command-line flags, tests)
//  3. Built-in defaults
//
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func Load(overlays ...*Config) (*Config, error) {
	b := newConfigBuilder().withEnv()
	for _, o := range overlays {
		b = b.withOverlay(o)
	}
	return b.withDefaults().build()
}

func defaults() *Config {
	return &Config{
		Gateway: Gateway{
			RequestTimeout:   defaultRequestTimeout,
			MaxResponseBytes: defaultMaxResponseBytes,
		},
		Media: Media{UploadDir: defaultUploadDir},
		Log:   Log{Level: defaultLogLevel},
	}
}
