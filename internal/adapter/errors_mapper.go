// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/crunchtools/mcp-wordpress/models"
)

// mapHTTPError converts a non-2xx response into a sentinel-wrapped error.
// The WordPress error body {"code": ..., "message": ..., "data": ...} is
// decoded when present; a body that is not in that shape contributes only
// the HTTP status text.
func mapHTTPError(status int, body []byte, path string) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	remote := decodeRemoteError(body)

	switch {
	case status == http.StatusUnauthorized:
		return fmt.Errorf("%w: authentication required", ErrPermissionDenied)
	case status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrPermissionDenied, remoteDetail(remote, "this operation is not allowed"))
	case status == http.StatusNotFound:
		if family := resourceFamily(path); family != "" {
			return fmt.Errorf("%w: %s not found or not accessible", ErrNotFound, family)
		}
		return fmt.Errorf("%w: %s", ErrNotFound, remoteDetail(remote, http.StatusText(status)))
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrInvalidRequest, remoteDetail(remote, http.StatusText(status)))
	case status == http.StatusTooManyRequests:
		if remote != nil && remote.Data.RetryAfter > 0 {
			return fmt.Errorf("%w: retry after %d seconds", ErrRateLimited, remote.Data.RetryAfter)
		}
		return fmt.Errorf("%w: try again later", ErrRateLimited)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrRemoteServer, status, remoteDetail(remote, http.StatusText(status)))
	default:
		return fmt.Errorf("%w: http %d: %s", ErrInvalidRequest, status, remoteDetail(remote, http.StatusText(status)))
	}
}

func decodeRemoteError(body []byte) *models.RemoteError {
	if len(body) == 0 {
		return nil
	}
	var remote models.RemoteError
	if err := json.Unmarshal(body, &remote); err != nil {
		return nil
	}
	if remote.Code == "" && remote.Message == "" {
		return nil
	}
	return &remote
}

func remoteDetail(remote *models.RemoteError, fallback string) string {
	if remote == nil {
		return fallback
	}
	if remote.Code != "" {
		return fmt.Sprintf("[%s] %s", remote.Code, remote.Message)
	}
	return remote.Message
}

// resourceFamily derives the entity family from a resource path so 404
// messages can name what was missing without echoing remote text.
func resourceFamily(path string) string {
	first, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	switch first {
	case "posts":
		return "post"
	case "pages":
		return "page"
	case "media":
		return "media item"
	case "comments":
		return "comment"
	default:
		return ""
	}
}
