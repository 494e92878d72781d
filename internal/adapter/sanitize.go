// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/crunchtools/mcp-wordpress/internal/config"
)

// Sanitizer removes credential material from outbound text. Every error or
// message that leaves the gateway passes through it, so remote bodies that
// echo the Authorization header can never surface the application password.
type Sanitizer struct {
	replacer *strings.Replacer
}

func NewSanitizer(creds config.Credentials) *Sanitizer {
	secret := creds.Secret()
	if secret == "" {
		return &Sanitizer{replacer: strings.NewReplacer()}
	}

	encoded := base64.StdEncoding.EncodeToString([]byte(creds.Username() + ":" + secret))

	return &Sanitizer{replacer: strings.NewReplacer(
		"Basic "+encoded, config.Redacted,
		encoded, config.Redacted,
		secret, config.Redacted,
	)}
}

// CleanString replaces any occurrence of the secret, its Basic credential
// form or the bare base64 encoding with the redaction marker.
func (s *Sanitizer) CleanString(text string) string {
	return s.replacer.Replace(text)
}

// Sanitize rewrites an error's message through CleanString while keeping
// the sentinel chain intact for errors.Is.
func (s *Sanitizer) Sanitize(err error) error {
	if err == nil {
		return nil
	}
	clean := s.CleanString(err.Error())
	if clean == err.Error() {
		return err
	}
	out := &sanitizedError{msg: clean}
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			out.kind = kind
			break
		}
	}
	return out
}

type sanitizedError struct {
	msg  string
	kind error
}

func (e *sanitizedError) Error() string { return e.msg }

func (e *sanitizedError) Unwrap() error { return e.kind }
