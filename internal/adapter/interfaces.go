// SPDX-License-Identifier: Apache-2.0

// Package adapter implements the secure gateway mediating every outbound
// call to the WordPress REST API.
//
// The primary abstraction is [Gateway], which decouples the per-entity
// operations from the transport. The shipped implementation
// ([NewWordPressGateway]) owns credential custody, request construction
// (fixed API prefix, auth header), transport hardening (TLS verification,
// per-call timeout, response size ceiling), error classification, and secret
// sanitization. Callers receive raw JSON bytes on success and a sentinel
// error (errors.go) on failure; no error leaves this package with the
// application password or its Basic Auth encoding embedded in its text.
package adapter

import (
	"context"
	"net/url"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock

// UploadFile is a local file staged for a binary media upload.
type UploadFile struct {
	// Name is the bare file name sent in the Content-Disposition header.
	Name string

	// ContentType is derived from the file extension;
	// application/octet-stream when unknown.
	ContentType string

	// Data is the full file content.
	Data []byte
}

// Gateway performs authenticated calls against the WordPress REST API.
// Resource paths are relative to the fixed versioned namespace
// (e.g. "posts", "comments/42"); absolute URLs, schemes, hosts, and
// traversal segments are rejected. Implementations never retry: a failed
// call returns immediately and any retry is an explicit caller choice.
type Gateway interface {
	// Get performs a GET request with optional query parameters.
	Get(ctx context.Context, path string, query url.Values) ([]byte, error)

	// Post performs a POST request with a JSON body.
	Post(ctx context.Context, path string, body any) ([]byte, error)

	// Patch performs a PATCH request with a JSON body (partial update).
	Patch(ctx context.Context, path string, body any) ([]byte, error)

	// Delete performs a DELETE request with optional query parameters.
	Delete(ctx context.Context, path string, query url.Values) ([]byte, error)

	// Upload performs a POST request with a binary file body.
	Upload(ctx context.Context, path string, file UploadFile) ([]byte, error)
}
