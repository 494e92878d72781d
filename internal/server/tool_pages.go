// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/crunchtools/mcp-wordpress/models"
)

func (s *Server) registerPageTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_list_pages",
		Description: "List WordPress pages with filtering and pagination.",
		InputSchema: objectSchema(withPaging(map[string]any{
			"status": stringProp("Filter by status (publish, draft, pending, private, future)"),
			"search": stringProp("Search pages by keyword"),
			"parent": integerProp("Filter by parent page ID"),
		}, "date, title, id, modified, menu_order")),
	}, s.handleListPages)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_get_page",
		Description: "Get a single WordPress page by ID with full content.",
		InputSchema: objectSchema(map[string]any{
			"page_id": integerProp("Page ID"),
		}, "page_id"),
	}, s.handleGetPage)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_create_page",
		Description: "Create a new WordPress page.",
		InputSchema: objectSchema(map[string]any{
			"title":          stringProp("Page title"),
			"content":        stringProp("Page content (HTML or block format)"),
			"status":         stringProp("Page status - publish, draft, pending, private, future (default: draft)"),
			"excerpt":        stringProp("Page excerpt"),
			"slug":           stringProp("URL slug"),
			"parent":         integerProp("Parent page ID"),
			"menu_order":     integerProp("Menu order"),
			"template":       stringProp("Page template file"),
			"featured_media": integerProp("Featured image media ID"),
			"date":           stringProp("Publication date (ISO 8601)"),
		}, "title", "content"),
	}, s.handleCreatePage)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_update_page",
		Description: "Update an existing WordPress page. Only provided fields are changed.",
		InputSchema: objectSchema(map[string]any{
			"page_id":        integerProp("Page ID to update"),
			"title":          stringProp("New title"),
			"content":        stringProp("New content"),
			"status":         stringProp("New status"),
			"excerpt":        stringProp("New excerpt"),
			"slug":           stringProp("New slug"),
			"parent":         integerProp("New parent page ID"),
			"menu_order":     integerProp("New menu order"),
			"template":       stringProp("New template"),
			"featured_media": integerProp("New featured image ID"),
			"date":           stringProp("New publication date"),
		}, "page_id"),
	}, s.handleUpdatePage)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_delete_page",
		Description: "Delete or trash a WordPress page.",
		InputSchema: objectSchema(map[string]any{
			"page_id": integerProp("Page ID to delete"),
			"force":   booleanProp("If true, permanently delete. If false, move to trash."),
		}, "page_id"),
	}, s.handleDeletePage)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_list_page_revisions",
		Description: "List revisions for a WordPress page.",
		InputSchema: objectSchema(map[string]any{
			"page_id": integerProp("Page ID"),
		}, "page_id"),
	}, s.handleListPageRevisions)
}

func (s *Server) handleListPages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request, "status", "search", "parent", "page", "per_page", "orderby", "order")
	params := models.PageListParams{
		Status:  args.stringVal("status", ""),
		Search:  args.stringVal("search", ""),
		Parent:  args.int64Ptr("parent"),
		Page:    args.intVal("page", 1),
		PerPage: args.intVal("per_page", 10),
		OrderBy: args.stringVal("orderby", "date"),
		Order:   args.stringVal("order", "desc"),
	}
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.PageService.List(ctx, params)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}

func (s *Server) handleGetPage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request, "page_id")
	params := models.PageGetParams{PageID: args.int64Val("page_id")}
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.PageService.Get(ctx, params)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}

func (s *Server) handleCreatePage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request, "title", "content", "status", "excerpt", "slug",
		"parent", "menu_order", "template", "featured_media", "date")
	params := models.PageCreateParams{
		Title:         args.stringVal("title", ""),
		Content:       args.stringVal("content", ""),
		Status:        args.stringVal("status", "draft"),
		Excerpt:       args.stringVal("excerpt", ""),
		Slug:          args.stringVal("slug", ""),
		Parent:        args.int64Val("parent"),
		MenuOrder:     args.int64Val("menu_order"),
		Template:      args.stringVal("template", ""),
		FeaturedMedia: args.int64Val("featured_media"),
		Date:          args.stringVal("date", ""),
	}
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.PageService.Create(ctx, params)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}

func (s *Server) handleUpdatePage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request, "page_id", "title", "content", "status", "excerpt", "slug",
		"parent", "menu_order", "template", "featured_media", "date")
	params := models.PageUpdateParams{
		PageID:        args.int64Val("page_id"),
		Title:         args.stringPtr("title"),
		Content:       args.stringPtr("content"),
		Status:        args.stringPtr("status"),
		Excerpt:       args.stringPtr("excerpt"),
		Slug:          args.stringPtr("slug"),
		Parent:        args.int64Ptr("parent"),
		MenuOrder:     args.int64Ptr("menu_order"),
		Template:      args.stringPtr("template"),
		FeaturedMedia: args.int64Ptr("featured_media"),
		Date:          args.stringPtr("date"),
	}
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.PageService.Update(ctx, params)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}

func (s *Server) handleDeletePage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request, "page_id", "force")
	params := models.PageDeleteParams{
		PageID: args.int64Val("page_id"),
		Force:  args.boolVal("force", false),
	}
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.PageService.Delete(ctx, params)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}

func (s *Server) handleListPageRevisions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request, "page_id")
	params := models.PageGetParams{PageID: args.int64Val("page_id")}
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.PageService.ListRevisions(ctx, params)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}
