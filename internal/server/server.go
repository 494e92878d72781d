// SPDX-License-Identifier: Apache-2.0

// Package server exposes the content management operations as MCP tools
// over stdio. The tool table is static: every tool, its argument schema,
// and its handler are registered once at startup. Handlers are mechanical
// dispatch — pull typed arguments, call the entity service, render the
// result as JSON — with every outgoing error message passed through the
// credential sanitizer.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/crunchtools/mcp-wordpress/internal/adapter"
	"github.com/crunchtools/mcp-wordpress/internal/logger"
	"github.com/crunchtools/mcp-wordpress/internal/service"
)

const serverName = "mcp-wordpress"

// Server wraps the MCP server and the entity services behind it.
type Server struct {
	mcpServer *mcpserver.MCPServer
	services  *service.Services
	sanitizer *adapter.Sanitizer
	version   string

	logger *logger.Logger
}

func NewServer(services *service.Services, sanitizer *adapter.Sanitizer, version string, logger *logger.Logger) *Server {
	s := &Server{
		mcpServer: mcpserver.NewMCPServer(serverName, version),
		services:  services,
		sanitizer: sanitizer,
		version:   version,
		logger:    logger,
	}
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	s.registerSiteTools()
	s.registerPostTools()
	s.registerPageTools()
	s.registerMediaTools()
	s.registerCommentTools()
}

// Run serves the tool set over stdio until the transport closes or ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info().Str("version", s.version).Msg("starting MCP server on stdio")
	return s.serve(ctx, os.Stdin, os.Stdout)
}

func (s *Server) serve(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := mcpserver.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(stdlog.New(s.logger, "", 0))

	// Cancellation is the normal shutdown path, not a failure.
	if err := stdio.Listen(ctx, in, out); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}

// jsonResult renders a service result record as indented JSON text.
func (s *Server) jsonResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return s.errorResult(fmt.Errorf("encoding result: %w", err))
	}
	return textResponse(string(data))
}

// errorResult converts an error into a tool error response. The message is
// run through the sanitizer even though gateway errors arrive already
// clean; validation and encoding errors take this path too.
func (s *Server) errorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(s.sanitizer.CleanString(err.Error()))
}

func textResponse(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

// schema helpers keeping the 30 tool declarations readable.

func objectSchema(properties map[string]any, required ...string) mcp.ToolInputSchema {
	return mcp.ToolInputSchema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

func stringProp(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func integerProp(description string) map[string]any {
	return map[string]any{"type": "integer", "description": description}
}

func booleanProp(description string) map[string]any {
	return map[string]any{"type": "boolean", "description": description}
}

func idArrayProp(description string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "integer"},
		"description": description,
	}
}

// withPaging adds the shared paging and ordering argument schemas.
func withPaging(properties map[string]any, orderFields string) map[string]any {
	properties["page"] = integerProp("Page number (default: 1)")
	properties["per_page"] = integerProp("Results per page, max 100 (default: 10)")
	properties["orderby"] = stringProp("Sort by field (" + orderFields + ")")
	properties["order"] = stringProp("Sort direction (asc, desc)")
	return properties
}
