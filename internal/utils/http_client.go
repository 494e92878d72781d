// SPDX-License-Identifier: Apache-2.0

// Package utils holds small shared helpers: the HTTP client wrapper and the
// request correlation ID generator.
package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// TLS certificate verification is the net/http default and nothing in this
// package or its callers exposes a way to turn it off.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. The client is safe for
// concurrent use once configured.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
