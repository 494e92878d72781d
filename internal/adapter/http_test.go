// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crunchtools/mcp-wordpress/internal/config"
	"github.com/crunchtools/mcp-wordpress/internal/logger"
)

const (
	testUsername = "admin"
	testSecret   = "abcd1234"
)

func testCredentials(t *testing.T, serverURL string) config.Credentials {
	t.Helper()
	creds, err := config.NewCredentials(config.WordPress{
		URL:         serverURL,
		Username:    testUsername,
		AppPassword: testSecret,
	})
	require.NoError(t, err)
	return creds
}

func newTestGateway(t *testing.T, serverURL string, cfg config.Gateway) Gateway {
	t.Helper()
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 2 * time.Second
	}
	if cfg.MaxResponseBytes == 0 {
		cfg.MaxResponseBytes = 1 << 20
	}
	return NewWordPressGateway(cfg, testCredentials(t, serverURL), logger.Nop())
}

// ── Request construction ────────────────────────────────────────────────────

func TestGet_BuildsPrefixedAuthenticatedRequest(t *testing.T) {
	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte(testUsername+":"+testSecret))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/wp-json/wp/v2/posts", r.URL.Path)
		assert.Equal(t, wantAuth, r.Header.Get("Authorization"))
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": 1}]`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, config.Gateway{})
	query := url.Values{}
	query.Set("per_page", "5")
	raw, err := g.Get(context.Background(), "posts", query)

	require.NoError(t, err)
	assert.JSONEq(t, `[{"id": 1}]`, string(raw))
}

func TestPost_SendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 7, "title": {"rendered": "X"}}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, config.Gateway{})
	raw, err := g.Post(context.Background(), "posts", map[string]any{"title": "X"})

	require.NoError(t, err)
	assert.Contains(t, string(raw), `"id": 7`)
}

func TestUpload_SetsBinaryHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "image/png", r.Header.Get("Content-Type"))
		assert.Equal(t, `attachment; filename="cat.png"`, r.Header.Get("Content-Disposition"))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 12}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, config.Gateway{})
	_, err := g.Upload(context.Background(), "media", UploadFile{
		Name:        "cat.png",
		ContentType: "image/png",
		Data:        []byte{0x89, 0x50, 0x4e, 0x47},
	})

	require.NoError(t, err)
}

// ── Path safety ─────────────────────────────────────────────────────────────

func TestDo_RejectsUnsafePathsWithoutTransport(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, config.Gateway{})

	for _, path := range []string{
		"https://evil.example/steal",
		"/etc/passwd",
		"posts/../../wp-json/wp/v2/users",
		"",
	} {
		_, err := g.Get(context.Background(), path, nil)
		require.Error(t, err, "path %q must be rejected", path)
	}

	assert.Equal(t, int32(0), calls.Load(), "no request may reach the transport")
}

// ── Error classification ────────────────────────────────────────────────────

func TestDo_MapsRemoteStatusToSentinel(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"bad request", http.StatusBadRequest, `{"code":"rest_invalid_param","message":"Invalid parameter: status"}`, ErrInvalidRequest},
		{"unauthorized", http.StatusUnauthorized, `{"code":"rest_not_logged_in","message":"You are not logged in."}`, ErrPermissionDenied},
		{"forbidden", http.StatusForbidden, `{"code":"rest_forbidden","message":"Sorry, you are not allowed."}`, ErrPermissionDenied},
		{"not found", http.StatusNotFound, `{"code":"rest_post_invalid_id","message":"Invalid post ID."}`, ErrNotFound},
		{"unprocessable", http.StatusUnprocessableEntity, `{"code":"rest_invalid_field","message":"bad field"}`, ErrInvalidRequest},
		{"rate limited", http.StatusTooManyRequests, `{"code":"rest_limited","message":"slow down","data":{"status":429,"retry_after":30}}`, ErrRateLimited},
		{"server error", http.StatusInternalServerError, `boom`, ErrRemoteServer},
		{"bad gateway", http.StatusBadGateway, ``, ErrRemoteServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			g := newTestGateway(t, srv.URL, config.Gateway{})
			_, err := g.Get(context.Background(), "posts/1", nil)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDo_NotFoundNamesResourceFamily(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, config.Gateway{})
	_, err := g.Get(context.Background(), "posts/999", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "post not found")
}

func TestDo_RateLimitCarriesRetryGuidance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"code":"limited","message":"slow down","data":{"status":429,"retry_after":42}}`))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, config.Gateway{})
	_, err := g.Get(context.Background(), "posts", nil)

	require.ErrorIs(t, err, ErrRateLimited)
	assert.Contains(t, err.Error(), "42")
}

func TestDo_NoAutomaticRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, config.Gateway{})
	_, err := g.Get(context.Background(), "posts", nil)

	require.ErrorIs(t, err, ErrRemoteServer)
	assert.Equal(t, int32(1), calls.Load())
}

// ── Transport hardening ─────────────────────────────────────────────────────

func TestDo_TimeoutMapsToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, config.Gateway{RequestTimeout: 50 * time.Millisecond})

	start := time.Now()
	_, err := g.Get(context.Background(), "posts", nil)
	elapsed := time.Since(start)

	require.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, elapsed, 400*time.Millisecond, "call must abort near the configured timeout")
}

func TestDo_DeclaredContentLengthOverLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 256)))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, config.Gateway{MaxResponseBytes: 64})
	_, err := g.Get(context.Background(), "posts", nil)

	require.ErrorIs(t, err, ErrResponseTooLarge)
}

func TestDo_StreamedBodyOverLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		require.True(t, ok)

		// Flush between chunks so no Content-Length header is declared.
		for i := 0; i < 8; i++ {
			_, _ = w.Write([]byte(strings.Repeat("b", 32)))
			flusher.Flush()
		}
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, config.Gateway{MaxResponseBytes: 100})
	_, err := g.Get(context.Background(), "posts", nil)

	require.ErrorIs(t, err, ErrResponseTooLarge)
}

func TestDo_BodyAtLimitPasses(t *testing.T) {
	body := strings.Repeat("c", 100)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, config.Gateway{MaxResponseBytes: 100})
	raw, err := g.Get(context.Background(), "posts", nil)

	require.NoError(t, err)
	assert.Equal(t, body, string(raw))
}

func TestDo_NetworkErrorMapsToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	g := newTestGateway(t, srv.URL, config.Gateway{})
	_, err := g.Get(context.Background(), "posts", nil)

	require.ErrorIs(t, err, ErrNetwork)
}

// ── Secret custody ──────────────────────────────────────────────────────────

func TestDo_ErrorNeverEchoesSecret(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte(testUsername + ":" + testSecret))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A hostile or misconfigured remote echoing the credential back.
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(fmt.Sprintf(
			`{"code":"rest_denied","message":"rejected header %s and password %s"}`,
			r.Header.Get("Authorization"), testSecret,
		)))
	}))
	defer srv.Close()

	g := newTestGateway(t, srv.URL, config.Gateway{})
	_, err := g.Get(context.Background(), "posts", nil)

	require.ErrorIs(t, err, ErrPermissionDenied)
	assert.NotContains(t, err.Error(), testSecret)
	assert.NotContains(t, err.Error(), encoded)
	assert.Contains(t, err.Error(), config.Redacted)
}
