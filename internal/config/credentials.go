// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// Credentials is the immutable credential bundle handed to the API gateway.
// It is constructed once at startup and shared read-only between concurrent
// calls. No method returns the secret as part of a display string: String,
// GoString, MarshalJSON, and MarshalZerologObject all substitute the
// redaction marker.
type Credentials struct {
	baseURL  string
	username string
	secret   string
}

// NewCredentials validates wp and returns the credential bundle. The base
// address is normalized to scheme and host only, with a trailing slash
// stripped; a bare host is assumed to be https.
func NewCredentials(wp WordPress) (Credentials, error) {
	baseURL, err := normalizeBaseURL(wp.URL)
	if err != nil {
		return Credentials{}, fmt.Errorf("%w: %v", ErrInvalidWordPressConfig, err)
	}
	if strings.TrimSpace(wp.Username) == "" {
		return Credentials{}, fmt.Errorf("%w: WORDPRESS_USERNAME is required", ErrInvalidWordPressConfig)
	}
	if wp.AppPassword == "" {
		return Credentials{}, fmt.Errorf("%w: WORDPRESS_APP_PASSWORD is required", ErrInvalidWordPressConfig)
	}

	return Credentials{
		baseURL:  baseURL,
		username: strings.TrimSpace(wp.Username),
		secret:   wp.AppPassword,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("WORDPRESS_URL is required (e.g. https://example.com)")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	// Keep scheme and host only: a path, query, or fragment in the
	// configured address must not leak into API request URLs.
	return u.Scheme + "://" + u.Host, nil
}

// BaseURL returns the normalized site base address (scheme and host only).
func (c Credentials) BaseURL() string {
	return c.baseURL
}

// Username returns the account name.
func (c Credentials) Username() string {
	return c.username
}

// Secret returns the raw application password. Use sparingly: only for
// computing the Authorization header and for building the error sanitizer.
func (c Credentials) Secret() string {
	return c.secret
}

// AuthHeader computes the Basic Auth header value on demand. The encoded
// form is never cached outside the call stack.
func (c Credentials) AuthHeader() string {
	pair := c.username + ":" + c.secret
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(pair))
}

// IsTLS reports whether the base address uses https.
func (c Credentials) IsTLS() bool {
	return strings.HasPrefix(c.baseURL, "https://")
}

// IsLocal reports whether the base address points at a loopback host, for
// which a plain-http warning is suppressed.
func (c Credentials) IsLocal() bool {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return false
	}
	host := u.Hostname()
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}

// String implements fmt.Stringer with the secret redacted.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials(url=%s, username=%s, password=%s)", c.baseURL, c.username, Redacted)
}

// GoString implements fmt.GoStringer so %#v output is redacted too.
func (c Credentials) GoString() string {
	return c.String()
}

// MarshalJSON implements json.Marshaler with the secret redacted.
func (c Credentials) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		"url":      c.baseURL,
		"username": c.username,
		"password": Redacted,
	})
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler with the secret
// redacted.
func (c Credentials) MarshalZerologObject(e *zerolog.Event) {
	e.Str("url", c.baseURL).Str("username", c.username).Str("password", Redacted)
}

// String implements fmt.Stringer for the raw WordPress config group, so an
// accidental log of the unparsed configuration cannot leak the password.
func (w WordPress) String() string {
	return fmt.Sprintf("WordPress(url=%s, username=%s, app_password=%s)", w.URL, w.Username, Redacted)
}

// MarshalJSON implements json.Marshaler with the password redacted.
func (w WordPress) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		"url":          w.URL,
		"username":     w.Username,
		"app_password": Redacted,
	})
}
