// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/crunchtools/mcp-wordpress/models"
)

func (s *Server) registerCommentTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_list_comments",
		Description: "List WordPress comments with filtering.",
		InputSchema: objectSchema(withPaging(map[string]any{
			"post":   integerProp("Filter by post ID"),
			"status": stringProp("Filter by status (approved, hold, spam, trash)"),
			"search": stringProp("Search comments by content"),
		}, "date, id")),
	}, s.handleListComments)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_get_comment",
		Description: "Get a single WordPress comment by ID.",
		InputSchema: objectSchema(map[string]any{
			"comment_id": integerProp("Comment ID"),
		}, "comment_id"),
	}, s.handleGetComment)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_create_comment",
		Description: "Create a new comment on a WordPress post.",
		InputSchema: objectSchema(map[string]any{
			"post":         integerProp("Post ID to comment on"),
			"content":      stringProp("Comment content"),
			"parent":       integerProp("Parent comment ID for replies"),
			"author_name":  stringProp("Comment author name (for anonymous comments)"),
			"author_email": stringProp("Comment author email (for anonymous comments)"),
		}, "post", "content"),
	}, s.handleCreateComment)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_update_comment",
		Description: "Update an existing WordPress comment.",
		InputSchema: objectSchema(map[string]any{
			"comment_id": integerProp("Comment ID to update"),
			"content":    stringProp("New comment content"),
			"status":     stringProp("New status (approved, hold, spam, trash)"),
		}, "comment_id"),
	}, s.handleUpdateComment)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_delete_comment",
		Description: "Delete or trash a WordPress comment.",
		InputSchema: objectSchema(map[string]any{
			"comment_id": integerProp("Comment ID to delete"),
			"force":      booleanProp("If true, permanently delete. If false, move to trash."),
		}, "comment_id"),
	}, s.handleDeleteComment)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "wordpress_moderate_comment",
		Description: "Moderate a WordPress comment by changing its status.",
		InputSchema: objectSchema(map[string]any{
			"comment_id": integerProp("Comment ID to moderate"),
			"action":     stringProp("Moderation action (approve, hold, spam, trash)"),
		}, "comment_id", "action"),
	}, s.handleModerateComment)
}

func (s *Server) handleListComments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request, "post", "status", "search", "page", "per_page", "orderby", "order")
	params := models.CommentListParams{
		Post:    args.int64Ptr("post"),
		Status:  args.stringVal("status", ""),
		Search:  args.stringVal("search", ""),
		Page:    args.intVal("page", 1),
		PerPage: args.intVal("per_page", 10),
		OrderBy: args.stringVal("orderby", "date"),
		Order:   args.stringVal("order", "desc"),
	}
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.CommentService.List(ctx, params)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}

func (s *Server) handleGetComment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request, "comment_id")
	params := models.CommentGetParams{CommentID: args.int64Val("comment_id")}
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.CommentService.Get(ctx, params)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}

func (s *Server) handleCreateComment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request, "post", "content", "parent", "author_name", "author_email")
	params := models.CommentCreateParams{
		Post:        args.int64Val("post"),
		Content:     args.stringVal("content", ""),
		Parent:      args.int64Val("parent"),
		AuthorName:  args.stringVal("author_name", ""),
		AuthorEmail: args.stringVal("author_email", ""),
	}
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.CommentService.Create(ctx, params)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}

func (s *Server) handleUpdateComment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request, "comment_id", "content", "status")
	params := models.CommentUpdateParams{
		CommentID: args.int64Val("comment_id"),
		Content:   args.stringPtr("content"),
		Status:    args.stringPtr("status"),
	}
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.CommentService.Update(ctx, params)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}

func (s *Server) handleDeleteComment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request, "comment_id", "force")
	params := models.CommentDeleteParams{
		CommentID: args.int64Val("comment_id"),
		Force:     args.boolVal("force", false),
	}
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.CommentService.Delete(ctx, params)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}

func (s *Server) handleModerateComment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := parseArguments(request, "comment_id", "action")
	params := models.CommentModerateParams{
		CommentID: args.int64Val("comment_id"),
		Action:    args.stringVal("action", ""),
	}
	if err := args.Err(); err != nil {
		return s.errorResult(err), nil
	}

	result, err := s.services.CommentService.Moderate(ctx, params)
	if err != nil {
		return s.errorResult(err), nil
	}
	return s.jsonResult(result), nil
}
