// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "abcd1234"

func testWordPress() WordPress {
	return WordPress{
		URL:         "https://blog.example.com",
		Username:    "admin",
		AppPassword: testSecret,
	}
}

// ── NewCredentials ──────────────────────────────────────────────────────────

func TestNewCredentials_Valid(t *testing.T) {
	creds, err := NewCredentials(testWordPress())
	require.NoError(t, err)

	assert.Equal(t, "https://blog.example.com", creds.BaseURL())
	assert.Equal(t, "admin", creds.Username())
	assert.Equal(t, testSecret, creds.Secret())
}

func TestNewCredentials_TrimsUsername(t *testing.T) {
	wp := testWordPress()
	wp.Username = "  admin  "

	creds, err := NewCredentials(wp)
	require.NoError(t, err)
	assert.Equal(t, "admin", creds.Username())
}

func TestNewCredentials_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*WordPress)
	}{
		{"empty url", func(wp *WordPress) { wp.URL = "" }},
		{"blank username", func(wp *WordPress) { wp.Username = "   " }},
		{"empty password", func(wp *WordPress) { wp.AppPassword = "" }},
		{"unsupported scheme", func(wp *WordPress) { wp.URL = "ftp://blog.example.com" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := testWordPress()
			tt.mutate(&wp)

			_, err := NewCredentials(wp)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidWordPressConfig)
		})
	}
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNewCredentials_NormalizesBaseURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"bare host assumes https", "blog.example.com", "https://blog.example.com"},
		{"trailing slash stripped", "https://blog.example.com/", "https://blog.example.com"},
		{"path stripped", "https://blog.example.com/wp-admin", "https://blog.example.com"},
		{"query stripped", "https://blog.example.com/?p=1", "https://blog.example.com"},
		{"whitespace trimmed", "  https://blog.example.com  ", "https://blog.example.com"},
		{"port kept", "https://blog.example.com:8443", "https://blog.example.com:8443"},
		{"plain http kept", "http://localhost:8080", "http://localhost:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := testWordPress()
			wp.URL = tt.url

			creds, err := NewCredentials(wp)
			require.NoError(t, err)
			assert.Equal(t, tt.want, creds.BaseURL())
		})
	}
}

// ── AuthHeader / TLS ────────────────────────────────────────────────────────

func TestAuthHeader_EncodesBasicPair(t *testing.T) {
	creds, err := NewCredentials(testWordPress())
	require.NoError(t, err)

	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("admin:"+testSecret))
	assert.Equal(t, want, creds.AuthHeader())
}

func TestIsTLS(t *testing.T) {
	tls, err := NewCredentials(testWordPress())
	require.NoError(t, err)
	assert.True(t, tls.IsTLS())

	wp := testWordPress()
	wp.URL = "http://blog.example.com"
	plain, err := NewCredentials(wp)
	require.NoError(t, err)
	assert.False(t, plain.IsTLS())
}

func TestIsLocal(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"http://localhost:8080", true},
		{"http://127.0.0.1", true},
		{"http://[::1]:8080", true},
		{"https://blog.example.com", false},
	}

	for _, tt := range tests {
		wp := testWordPress()
		wp.URL = tt.url

		creds, err := NewCredentials(wp)
		require.NoError(t, err)
		assert.Equal(t, tt.want, creds.IsLocal(), tt.url)
	}
}

// ── Redaction ───────────────────────────────────────────────────────────────

// Every textual rendering of the credential bundle must substitute the
// redaction marker for the application password.
func TestCredentials_RenderingsNeverContainSecret(t *testing.T) {
	creds, err := NewCredentials(testWordPress())
	require.NoError(t, err)

	jsonBytes, err := json.Marshal(creds)
	require.NoError(t, err)

	renderings := map[string]string{
		"String":   creds.String(),
		"fmt %v":   fmt.Sprintf("%v", creds),
		"fmt %s":   fmt.Sprintf("%s", creds),
		"fmt %#v":  fmt.Sprintf("%#v", creds),
		"fmt %+v":  fmt.Sprintf("%+v", creds),
		"JSON":     string(jsonBytes),
	}

	for name, out := range renderings {
		assert.NotContains(t, out, testSecret, name)
		assert.Contains(t, out, Redacted, name)
	}
}

func TestCredentials_ZerologRenderingRedacted(t *testing.T) {
	creds, err := NewCredentials(testWordPress())
	require.NoError(t, err)

	var buf bytes.Buffer
	log := zerolog.New(&buf)
	log.Info().Object("credentials", creds).Msg("startup")

	out := buf.String()
	assert.NotContains(t, out, testSecret)
	assert.Contains(t, out, Redacted)
	assert.Contains(t, out, "admin")
}

func TestWordPress_RenderingsRedacted(t *testing.T) {
	wp := testWordPress()

	jsonBytes, err := json.Marshal(wp)
	require.NoError(t, err)

	for name, out := range map[string]string{
		"String": wp.String(),
		"fmt %v": fmt.Sprintf("%v", wp),
		"JSON":   string(jsonBytes),
	} {
		assert.NotContains(t, out, testSecret, name)
		assert.Contains(t, out, Redacted, name)
	}
}
