// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapHTTPError_SuccessStatusesAreNil(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusCreated, http.StatusNoContent} {
		assert.NoError(t, mapHTTPError(status, nil, "posts"))
	}
}

func TestMapHTTPError_RemoteDetailIncluded(t *testing.T) {
	body := []byte(`{"code":"rest_invalid_param","message":"Invalid parameter(s): status"}`)

	err := mapHTTPError(http.StatusBadRequest, body, "posts")

	require.ErrorIs(t, err, ErrInvalidRequest)
	assert.Contains(t, err.Error(), "rest_invalid_param")
	assert.Contains(t, err.Error(), "Invalid parameter(s): status")
}

func TestMapHTTPError_NonJSONBodyFallsBackToStatusText(t *testing.T) {
	err := mapHTTPError(http.StatusBadRequest, []byte("<html>nope</html>"), "posts")

	require.ErrorIs(t, err, ErrInvalidRequest)
	assert.Contains(t, err.Error(), http.StatusText(http.StatusBadRequest))
}

func TestResourceFamily(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"posts/5", "post"},
		{"posts/5/revisions/3", "post"},
		{"pages/2", "page"},
		{"media/9", "media item"},
		{"comments/1", "comment"},
		{"settings", ""},
		{"users/me", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, resourceFamily(tt.path), tt.path)
	}
}
