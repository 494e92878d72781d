// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/crunchtools/mcp-wordpress/internal/adapter"
	"github.com/crunchtools/mcp-wordpress/internal/config"
	"github.com/crunchtools/mcp-wordpress/internal/logger"
	"github.com/crunchtools/mcp-wordpress/internal/mock"
	"github.com/crunchtools/mcp-wordpress/internal/service"
	"github.com/crunchtools/mcp-wordpress/internal/validators"
)

const testSecret = "abcd1234"

func newTestServer(t *testing.T) *Server {
	t.Helper()
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockGateway(ctrl)

	creds, err := config.NewCredentials(config.WordPress{
		URL:         "https://blog.example.com",
		Username:    "admin",
		AppPassword: testSecret,
	})
	require.NoError(t, err)

	cfg := &config.Config{Media: config.Media{UploadDir: t.TempDir()}}
	services := service.NewServices(gateway, validators.NewContentValidator(), cfg, creds, logger.Nop())

	return NewServer(services, adapter.NewSanitizer(creds), "test", logger.Nop())
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

// ── Construction ────────────────────────────────────────────────────────────

func TestNewServer_RegistersToolTable(t *testing.T) {
	// Registration must not panic; a duplicate or malformed tool
	// declaration would surface here.
	srv := newTestServer(t)
	assert.NotNil(t, srv.mcpServer)
}

// ── Shutdown ────────────────────────────────────────────────────────────────

func TestServe_StopsOnContextCancellation(t *testing.T) {
	srv := newTestServer(t)

	// A pipe with no writer activity keeps the transport idle, so only the
	// context can end the serve loop.
	stdin, stdinWriter := io.Pipe()
	defer stdinWriter.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.serve(ctx, stdin, io.Discard)
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("serve did not return after context cancellation")
	}
}

// ── Result rendering ────────────────────────────────────────────────────────

func TestJSONResult_RendersIndentedJSON(t *testing.T) {
	srv := newTestServer(t)

	result := srv.jsonResult(map[string]any{"success": true})
	assert.False(t, result.IsError)
	assert.JSONEq(t, `{"success": true}`, resultText(t, result))
}

func TestErrorResult_MarksError(t *testing.T) {
	srv := newTestServer(t)

	result := srv.errorResult(errors.New("post 9 not found or not accessible"))
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "not found")
}

// Errors leaving the server must never carry the application password in
// any form, even when an upstream message embedded it verbatim.
func TestErrorResult_RedactsSecret(t *testing.T) {
	srv := newTestServer(t)

	encoded := base64.StdEncoding.EncodeToString([]byte("admin:" + testSecret))
	err := errors.New("remote said: Basic " + encoded + " with raw " + testSecret)

	text := resultText(t, srv.errorResult(err))
	assert.NotContains(t, text, testSecret)
	assert.NotContains(t, text, encoded)
	assert.Contains(t, text, config.Redacted)
}
