// SPDX-License-Identifier: Apache-2.0

package adapter

import "errors"

// Sentinel errors classifying every way an API call can fail. Callers use
// errors.Is for transport-agnostic handling; the textual detail wrapped
// around a sentinel is always sanitized before it leaves this package.
var (
	// ErrTimeout indicates the call did not complete within the configured
	// wall-clock ceiling. Safe to retry at the caller's discretion.
	ErrTimeout = errors.New("request timed out")

	// ErrNetwork indicates a transport-level failure (DNS, connect, TLS,
	// broken transfer). Safe to retry at the caller's discretion.
	ErrNetwork = errors.New("network request failed")

	// ErrPermissionDenied maps remote 401 and 403 responses.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound maps remote 404 responses.
	ErrNotFound = errors.New("not found")

	// ErrInvalidRequest maps remote 400 and 422 responses; the wrapped
	// detail carries the remote validation message.
	ErrInvalidRequest = errors.New("request rejected by remote")

	// ErrRateLimited maps remote 429 responses. No automatic retry is
	// performed; the message carries retry guidance when the remote
	// declares it.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrRemoteServer maps remote responses with status 500 and above.
	ErrRemoteServer = errors.New("remote server error")

	// ErrResponseTooLarge indicates the response body exceeded the
	// configured size ceiling and the transfer was aborted.
	ErrResponseTooLarge = errors.New("response too large")

	// ErrDecode indicates a 2xx response whose body could not be decoded
	// into the expected shape. The underlying remote operation may have
	// succeeded; the result cannot be trusted.
	ErrDecode = errors.New("response could not be decoded")
)

// kinds enumerates the sentinels the sanitizer preserves when it has to
// rebuild an error whose text contained secret material.
var kinds = []error{
	ErrTimeout,
	ErrNetwork,
	ErrPermissionDenied,
	ErrNotFound,
	ErrInvalidRequest,
	ErrRateLimited,
	ErrRemoteServer,
	ErrResponseTooLarge,
	ErrDecode,
}
