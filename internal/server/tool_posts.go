// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/crunchtools/mcp-wordpress/models"
)

func (s *Server) registerPostTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_list_posts",
		Description: "List WordPress posts with filtering and pagination.",
		InputSchema: objectSchema(withPaging(map[string]any{
			"status":     stringProp("Filter by status (publish, draft, pending, private, future)"),
			"search":     stringProp("Search posts by keyword"),
			"categories": idArrayProp("Filter by category IDs"),
			"tags":       idArrayProp("Filter by tag IDs"),
		}, "date, title, id, modified")),
	}, s.handleListPosts)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_get_post",
		Description: "Get a single WordPress post by ID with full content.",
		InputSchema: objectSchema(map[string]any{
			"post_id": integerProp("Post ID"),
		}, "post_id"),
	}, s.handleGetPost)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_search_posts",
		Description: "Search WordPress posts by keyword in title and content.",
		InputSchema: objectSchema(map[string]any{
			"keyword":  stringProp("Search keyword"),
			"page":     integerProp("Page number (default: 1)"),
			"per_page": integerProp("Results per page (default: 10)"),
		}, "keyword"),
	}, s.handleSearchPosts)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_create_post",
		Description: "Create a new WordPress post.",
		InputSchema: objectSchema(map[string]any{
			"title":          stringProp("Post title"),
			"content":        stringProp("Post content (HTML or block format)"),
			"status":         stringProp("Post status - publish, draft, pending, private, future (default: draft)"),
			"excerpt":        stringProp("Post excerpt"),
			"slug":           stringProp("URL slug"),
			"categories":     idArrayProp("List of category IDs"),
			"tags":           idArrayProp("List of tag IDs"),
			"featured_media": integerProp("Featured image media ID"),
			"date":           stringProp("Publication date (ISO 8601 for scheduling, e.g. 2024-12-25T10:00:00)"),
			"post_format":    stringProp("Format - standard, aside, gallery, link, image, quote, status, video, audio"),
		}, "title", "content"),
	}, s.handleCreatePost)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_update_post",
		Description: "Update an existing WordPress post. Only provided fields are changed.",
		InputSchema: objectSchema(map[string]any{
			"post_id":        integerProp("Post ID to update"),
			"title":          stringProp("New title"),
			"content":        stringProp("New content"),
			"status":         stringProp("New status"),
			"excerpt":        stringProp("New excerpt"),
			"slug":           stringProp("New slug"),
			"categories":     idArrayProp("New category IDs"),
			"tags":           idArrayProp("New tag IDs"),
			"featured_media": integerProp("New featured image ID"),
			"date":           stringProp("New publication date"),
			"post_format":    stringProp("New post format"),
		}, "post_id"),
	}, s.handleUpdatePost)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_delete_post",
		Description: "Delete or trash a WordPress post.",
		InputSchema: objectSchema(map[string]any{
			"post_id": integerProp("Post ID to delete"),
			"force":   booleanProp("If true, permanently delete. If false, move to trash."),
		}, "post_id"),
	}, s.handleDeletePost)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_list_revisions",
		Description: "List revisions for a WordPress post.",
		InputSchema: objectSchema(map[string]any{
			"post_id": integerProp("Post ID"),
		}, "post_id"),
	}, s.handleListRevisions)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_get_revision",
		Description: "Get a specific revision of a WordPress post.",
		InputSchema: objectSchema(map[string]any{
			"post_id":     integerProp("Post ID"),
			"revision_id": integerProp("Revision ID"),
		}, "post_id", "revision_id"),
	}, s.handleGetRevision)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_list_categories",
		Description: "List available WordPress categories.",
		InputSchema: objectSchema(map[string]any{
			"page":     integerProp("Page number"),
			"per_page": integerProp("Results per page, max 100 (default: 100)"),
			"search":   stringProp("Search categories by name"),
		}),
	}, s.handleListCategories)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_list_tags",
		Description: "List available WordPress tags.",
		InputSchema: objectSchema(map[string]any{
			"page":     integerProp("Page number"),
			"per_page": integerProp("Results per page, max 100 (default: 100)"),
			"search":   stringProp("Search tags by name"),
		}),
	}, s.handleListTags)
}

func (s *Server) handleListPosts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request, "status", "search", "categories", "tags", "page", "per_page", "orderby", "order")
	params := models.PostListParams{
		Status:     args.stringVal("status", ""),
		Search:     args.stringVal("search", ""),
		Categories: args.idList("categories"),
		Tags:       args.idList("tags"),
		Page:       args.intVal("page", 1),
		PerPage:    args.intVal("per_page", 10),
		OrderBy:    args.stringVal("orderby", "date"),
		Order:      args.stringVal("order", "desc"),
	}
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.PostService.List(ctx, params)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}

func (s *Server) handleGetPost(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request, "post_id")
	params := models.PostGetParams{PostID: args.int64Val("post_id")}
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.PostService.Get(ctx, params)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}

func (s *Server) handleSearchPosts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request, "keyword", "page", "per_page")
	params := models.SearchParams{
		Keyword: args.stringVal("keyword", ""),
		Page:    args.intVal("page", 1),
		PerPage: args.intVal("per_page", 10),
	}
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.PostService.Search(ctx, params)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}

func (s *Server) handleCreatePost(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request, "title", "content", "status", "excerpt", "slug",
		"categories", "tags", "featured_media", "date", "post_format")
	params := models.PostCreateParams{
		Title:         args.stringVal("title", ""),
		Content:       args.stringVal("content", ""),
		Status:        args.stringVal("status", "draft"),
		Excerpt:       args.stringVal("excerpt", ""),
		Slug:          args.stringVal("slug", ""),
		Categories:    args.idList("categories"),
		Tags:          args.idList("tags"),
		FeaturedMedia: args.int64Val("featured_media"),
		Date:          args.stringVal("date", ""),
		Format:        args.stringVal("post_format", ""),
	}
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.PostService.Create(ctx, params)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}

func (s *Server) handleUpdatePost(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request, "post_id", "title", "content", "status", "excerpt", "slug",
		"categories", "tags", "featured_media", "date", "post_format")
	params := models.PostUpdateParams{
		PostID:        args.int64Val("post_id"),
		Title:         args.stringPtr("title"),
		Content:       args.stringPtr("content"),
		Status:        args.stringPtr("status"),
		Excerpt:       args.stringPtr("excerpt"),
		Slug:          args.stringPtr("slug"),
		Categories:    args.idList("categories"),
		Tags:          args.idList("tags"),
		FeaturedMedia: args.int64Ptr("featured_media"),
		Date:          args.stringPtr("date"),
		Format:        args.stringPtr("post_format"),
	}
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.PostService.Update(ctx, params)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}

func (s *Server) handleDeletePost(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request, "post_id", "force")
	params := models.PostDeleteParams{
		PostID: args.int64Val("post_id"),
		Force:  args.boolVal("force", false),
	}
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.PostService.Delete(ctx, params)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}

func (s *Server) handleListRevisions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request, "post_id")
	params := models.PostGetParams{PostID: args.int64Val("post_id")}
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.PostService.ListRevisions(ctx, params)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}

func (s *Server) handleGetRevision(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request, "post_id", "revision_id")
	params := models.RevisionGetParams{
		PostID:     args.int64Val("post_id"),
		RevisionID: args.int64Val("revision_id"),
	}
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.PostService.GetRevision(ctx, params)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}

func (s *Server) handleListCategories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request, "page", "per_page", "search")
	params := models.TermListParams{
		Page:    args.intVal("page", 1),
		PerPage: args.intVal("per_page", 100),
		Search:  args.stringVal("search", ""),
	}
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.PostService.ListCategories(ctx, params)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}

func (s *Server) handleListTags(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request, "page", "per_page", "search")
	params := models.TermListParams{
		Page:    args.intVal("page", 1),
		PerPage: args.intVal("per_page", 100),
		Search:  args.stringVal("search", ""),
	}
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.PostService.ListTags(ctx, params)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}
