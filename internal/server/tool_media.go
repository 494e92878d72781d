// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/crunchtools/mcp-wordpress/models"
)

func (s *Server) registerMediaTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_list_media",
		Description: "List WordPress media items with filtering.",
		InputSchema: objectSchema(withPaging(map[string]any{
			"media_type": stringProp("Filter by type (image, video, audio, application)"),
			"mime_type":  stringProp("Filter by MIME type (e.g. image/jpeg)"),
			"search":     stringProp("Search media by keyword"),
		}, "date, title, id")),
	}, s.handleListMedia)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_get_media",
		Description: "Get a single WordPress media item by ID.",
		InputSchema: objectSchema(map[string]any{
			"media_id": integerProp("Media ID"),
		}, "media_id"),
	}, s.handleGetMedia)

	s.mcpServer.AddTool(mcp.Tool{
		Name: "wordpress_upload_media",
		Description: "Upload a media file to WordPress from a local file path. " +
			"The file is read directly from disk and must live inside the configured upload directory.",
		InputSchema: objectSchema(map[string]any{
			"file_path":   stringProp("Path to the file on disk, inside the upload directory"),
			"title":       stringProp("Media title"),
			"alt_text":    stringProp("Alt text for accessibility"),
			"caption":     stringProp("Media caption"),
			"description": stringProp("Media description"),
		}, "file_path"),
	}, s.handleUploadMedia)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_update_media",
		Description: "Update WordPress media item metadata.",
		InputSchema: objectSchema(map[string]any{
			"media_id":    integerProp("Media ID to update"),
			"title":       stringProp("New title"),
			"alt_text":    stringProp("New alt text"),
			"caption":     stringProp("New caption"),
			"description": stringProp("New description"),
		}, "media_id"),
	}, s.handleUpdateMedia)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_delete_media",
		Description: "Delete a WordPress media item. Media cannot be trashed; deletion is permanent.",
		InputSchema: objectSchema(map[string]any{
			"media_id": integerProp("Media ID to delete"),
		}, "media_id"),
	}, s.handleDeleteMedia)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_get_media_url",
		Description: "Get the public URL for a WordPress media item.",
		InputSchema: objectSchema(map[string]any{
			"media_id": integerProp("Media ID"),
			"size":     stringProp("Image size (thumbnail, medium, large, full)"),
		}, "media_id"),
	}, s.handleGetMediaURL)
}

func (s *Server) handleListMedia(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request, "media_type", "mime_type", "search", "page", "per_page", "orderby", "order")
	params := models.MediaListParams{
		MediaType: args.stringVal("media_type", ""),
		MimeType:  args.stringVal("mime_type", ""),
		Search:    args.stringVal("search", ""),
		Page:      args.intVal("page", 1),
		PerPage:   args.intVal("per_page", 10),
		OrderBy:   args.stringVal("orderby", "date"),
		Order:     args.stringVal("order", "desc"),
	}
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.MediaService.List(ctx, params)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}

func (s *Server) handleGetMedia(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request, "media_id")
	params := models.MediaGetParams{MediaID: args.int64Val("media_id")}
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.MediaService.Get(ctx, params)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}

func (s *Server) handleUploadMedia(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request, "file_path", "title", "alt_text", "caption", "description")
	params := models.MediaUploadParams{
		FilePath:    args.stringVal("file_path", ""),
		Title:       args.stringVal("title", ""),
		AltText:     args.stringVal("alt_text", ""),
		Caption:     args.stringVal("caption", ""),
		Description: args.stringVal("description", ""),
	}
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.MediaService.Upload(ctx, params)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}

func (s *Server) handleUpdateMedia(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request, "media_id", "title", "alt_text", "caption", "description")
	params := models.MediaUpdateParams{
		MediaID:     args.int64Val("media_id"),
		Title:       args.stringPtr("title"),
		AltText:     args.stringPtr("alt_text"),
		Caption:     args.stringPtr("caption"),
		Description: args.stringPtr("description"),
	}
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.MediaService.Update(ctx, params)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}

func (s *Server) handleDeleteMedia(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request, "media_id")
	params := models.MediaDeleteParams{MediaID: args.int64Val("media_id")}
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.MediaService.Delete(ctx, params)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}

func (s *Server) handleGetMediaURL(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request, "media_id", "size")
	params := models.MediaURLParams{
		MediaID: args.int64Val("media_id"),
		Size:    args.stringVal("size", "full"),
	}
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.MediaService.GetURL(ctx, params)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}
