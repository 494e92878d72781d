// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads so tests only see what they set
// themselves. t.Setenv restores the originals when the test finishes.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"WORDPRESS_URL",
		"WORDPRESS_USERNAME",
		"WORDPRESS_APP_PASSWORD",
		"GATEWAY_REQUEST_TIMEOUT",
		"GATEWAY_MAX_RESPONSE_BYTES",
		"MEDIA_UPLOAD_DIR",
		"LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

// ── Load ────────────────────────────────────────────────────────────────────

func TestLoad_EnvOnlyWithDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORDPRESS_URL", "https://blog.example.com")
	t.Setenv("WORDPRESS_USERNAME", "admin")
	t.Setenv("WORDPRESS_APP_PASSWORD", "abcd1234")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://blog.example.com", cfg.WordPress.URL)
	assert.Equal(t, "admin", cfg.WordPress.Username)
	assert.Equal(t, "abcd1234", cfg.WordPress.AppPassword)

	// Everything not set in the environment falls back to defaults.
	assert.Equal(t, 30*time.Second, cfg.Gateway.RequestTimeout)
	assert.Equal(t, int64(10<<20), cfg.Gateway.MaxResponseBytes)
	assert.Equal(t, "/tmp/mcp-uploads", cfg.Media.UploadDir)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_ParsesTypedEnvValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORDPRESS_URL", "https://blog.example.com")
	t.Setenv("WORDPRESS_USERNAME", "admin")
	t.Setenv("WORDPRESS_APP_PASSWORD", "abcd1234")
	t.Setenv("GATEWAY_REQUEST_TIMEOUT", "5s")
	t.Setenv("GATEWAY_MAX_RESPONSE_BYTES", "1048576")
	t.Setenv("MEDIA_UPLOAD_DIR", "/var/lib/uploads")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Gateway.RequestTimeout)
	assert.Equal(t, int64(1<<20), cfg.Gateway.MaxResponseBytes)
	assert.Equal(t, "/var/lib/uploads", cfg.Media.UploadDir)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvWinsOverOverlay(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORDPRESS_URL", "https://env.example.com")
	t.Setenv("WORDPRESS_USERNAME", "env-user")
	t.Setenv("WORDPRESS_APP_PASSWORD", "env-secret")

	overlay := &Config{
		WordPress: WordPress{URL: "https://flag.example.com"},
		Log:       Log{Level: "warn"},
	}

	cfg, err := Load(overlay)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.WordPress.URL)
	// Fields the environment leaves empty come from the overlay.
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_OverlayWinsOverDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORDPRESS_URL", "https://blog.example.com")
	t.Setenv("WORDPRESS_USERNAME", "admin")
	t.Setenv("WORDPRESS_APP_PASSWORD", "abcd1234")

	overlay := &Config{
		Gateway: Gateway{RequestTimeout: 10 * time.Second},
	}

	cfg, err := Load(overlay)
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.Gateway.RequestTimeout)
	assert.Equal(t, int64(10<<20), cfg.Gateway.MaxResponseBytes)
}

func TestLoad_NilOverlayIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORDPRESS_URL", "https://blog.example.com")
	t.Setenv("WORDPRESS_USERNAME", "admin")
	t.Setenv("WORDPRESS_APP_PASSWORD", "abcd1234")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "https://blog.example.com", cfg.WordPress.URL)
}

// ── Validation ──────────────────────────────────────────────────────────────

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		overlay *Config
		wantErr error
	}{
		{
			name: "missing url",
			overlay: &Config{
				WordPress: WordPress{Username: "admin", AppPassword: "abcd1234"},
			},
			wantErr: ErrInvalidWordPressConfig,
		},
		{
			name: "missing username",
			overlay: &Config{
				WordPress: WordPress{URL: "https://blog.example.com", AppPassword: "abcd1234"},
			},
			wantErr: ErrInvalidWordPressConfig,
		},
		{
			name: "missing app password",
			overlay: &Config{
				WordPress: WordPress{URL: "https://blog.example.com", Username: "admin"},
			},
			wantErr: ErrInvalidWordPressConfig,
		},
		{
			name: "negative timeout",
			overlay: &Config{
				WordPress: WordPress{URL: "https://blog.example.com", Username: "admin", AppPassword: "abcd1234"},
				Gateway:   Gateway{RequestTimeout: -1 * time.Second},
			},
			wantErr: ErrInvalidGatewayConfig,
		},
		{
			name: "negative size cap",
			overlay: &Config{
				WordPress: WordPress{URL: "https://blog.example.com", Username: "admin", AppPassword: "abcd1234"},
				Gateway:   Gateway{MaxResponseBytes: -1},
			},
			wantErr: ErrInvalidGatewayConfig,
		},
		{
			name: "relative upload dir",
			overlay: &Config{
				WordPress: WordPress{URL: "https://blog.example.com", Username: "admin", AppPassword: "abcd1234"},
				Media:     Media{UploadDir: "uploads"},
			},
			wantErr: ErrInvalidMediaConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)

			cfg, err := Load(tt.overlay)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_ValidationErrorNamesMissingVariable(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORDPRESS_URL", "https://blog.example.com")
	t.Setenv("WORDPRESS_USERNAME", "admin")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WORDPRESS_APP_PASSWORD")
}
