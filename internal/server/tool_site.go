// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerSiteTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_get_site_info",
		Description: "Get WordPress site information. Returns site title, description, URL, timezone, and other settings.",
		InputSchema: objectSchema(map[string]any{}),
	}, s.handleGetSiteInfo)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_test_connection",
		Description: "Test connection to the WordPress REST API. Verifies API credentials and returns connection status.",
		InputSchema: objectSchema(map[string]any{}),
	}, s.handleTestConnection)
}

func (s *Server) handleGetSiteInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request)
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.SiteService.GetSiteInfo(ctx)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}

func (s *Server) handleTestConnection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request)
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.SiteService.TestConnection(ctx)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}
