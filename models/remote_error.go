// SPDX-License-Identifier: Apache-2.0

package models

// RemoteError is the error body the WordPress REST API returns alongside
// non-2xx statuses: {"code": "...", "message": "...", "data": {"status": N}}.
type RemoteError struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    RemoteErrorData `json:"data"`
}

// RemoteErrorData is the nested data object of a RemoteError.
type RemoteErrorData struct {
	Status     int `json:"status"`
	RetryAfter int `json:"retry_after"`
}
