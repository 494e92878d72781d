// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/crunchtools/mcp-wordpress/internal/adapter"
	"github.com/crunchtools/mcp-wordpress/internal/logger"
	"github.com/crunchtools/mcp-wordpress/internal/validators"
	"github.com/crunchtools/mcp-wordpress/models"
)

// moderationStatus maps a moderation action onto the comment status the
// remote API stores.
var moderationStatus = map[string]string{
	"approve": "approved",
	"hold":    "hold",
	"spam":    "spam",
	"trash":   "trash",
}

type commentService struct {
	gateway   adapter.Gateway
	validator validators.Validator

	logger *logger.Logger
}

func NewCommentService(gateway adapter.Gateway, validator validators.Validator, logger *logger.Logger) CommentService {
	return &commentService{
		gateway:   gateway,
		validator: validator,
		logger:    logger,
	}
}

func (s *commentService) List(ctx context.Context, params models.CommentListParams) (*models.CommentListResult, error) {
	if err := s.validator.Validate(ctx, params); err != nil {
		return nil, err
	}
	page, perPage := normalizePaging(params.Page, params.PerPage)

	query := url.Values{}
	setPaging(query, page, perPage)
	setOrdering(query, params.OrderBy, params.Order)
	if params.Post != nil {
		query.Set("post", formatID(*params.Post))
	}
	if params.Status != "" {
		query.Set("status", params.Status)
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}

	raw, err := s.gateway.Get(ctx, "comments", query)
	if err != nil {
		return nil, err
	}

	var comments []models.Comment
	if err := adapter.Decode(raw, &comments); err != nil {
		return nil, err
	}

	result := &models.CommentListResult{
		Comments: make([]models.CommentView, 0, len(comments)),
		Page:     page,
		PerPage:  perPage,
	}
	for _, comment := range comments {
		result.Comments = append(result.Comments, commentView(comment, false))
	}
	return result, nil
}

func (s *commentService) Get(ctx context.Context, params models.CommentGetParams) (*models.CommentResult, error) {
	if err := s.validator.Validate(ctx, params); err != nil {
		return nil, err
	}

	raw, err := s.gateway.Get(ctx, "comments/"+formatID(params.CommentID), nil)
	if err != nil {
		return nil, err
	}

	var comment models.Comment
	if err := adapter.Decode(raw, &comment); err != nil {
		return nil, err
	}
	if comment.ID == 0 {
		return nil, fmt.Errorf("%w: comment response has no id", adapter.ErrDecode)
	}
	return &models.CommentResult{Comment: commentView(comment, true)}, nil
}

func (s *commentService) Create(ctx context.Context, params models.CommentCreateParams) (*models.CommentResult, error) {
	if err := s.validator.Validate(ctx, params); err != nil {
		return nil, err
	}

	body := map[string]any{
		"post":    params.Post,
		"content": params.Content,
	}
	if params.Parent > 0 {
		body["parent"] = params.Parent
	}
	if params.AuthorName != "" {
		body["author_name"] = params.AuthorName
	}
	if params.AuthorEmail != "" {
		body["author_email"] = params.AuthorEmail
	}

	raw, err := s.gateway.Post(ctx, "comments", body)
	if err != nil {
		return nil, err
	}

	var comment models.Comment
	if err := adapter.Decode(raw, &comment); err != nil {
		return nil, err
	}
	if comment.ID == 0 {
		return nil, fmt.Errorf("%w: create response has no id", adapter.ErrDecode)
	}
	s.logger.Info().Int64("comment_id", comment.ID).Int64("post_id", comment.Post).Msg("comment created")
	return &models.CommentResult{Comment: commentView(comment, true)}, nil
}

func (s *commentService) Update(ctx context.Context, params models.CommentUpdateParams) (*models.CommentResult, error) {
	if err := s.validator.Validate(ctx, params); err != nil {
		return nil, err
	}
	if !params.HasChanges() {
		return nil, ErrNoFields
	}

	body := map[string]any{}
	if params.Content != nil {
		body["content"] = *params.Content
	}
	if params.Status != nil {
		body["status"] = *params.Status
	}

	raw, err := s.gateway.Patch(ctx, "comments/"+formatID(params.CommentID), body)
	if err != nil {
		return nil, err
	}

	var comment models.Comment
	if err := adapter.Decode(raw, &comment); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("comment_id", comment.ID).Msg("comment updated")
	return &models.CommentResult{Comment: commentView(comment, true)}, nil
}

func (s *commentService) Delete(ctx context.Context, params models.CommentDeleteParams) (*models.DeleteResult, error) {
	if err := s.validator.Validate(ctx, params); err != nil {
		return nil, err
	}

	query := url.Values{}
	if params.Force {
		query.Set("force", "true")
	}
	if _, err := s.gateway.Delete(ctx, "comments/"+formatID(params.CommentID), query); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("comment %d moved to trash", params.CommentID)
	if params.Force {
		message = fmt.Sprintf("comment %d permanently deleted", params.CommentID)
	}
	s.logger.Info().Int64("comment_id", params.CommentID).Bool("force", params.Force).Msg("comment deleted")
	return &models.DeleteResult{Success: true, Message: message, ID: params.CommentID}, nil
}

// Moderate changes a comment's status through the action vocabulary
// (approve, hold, spam, trash).
func (s *commentService) Moderate(ctx context.Context, params models.CommentModerateParams) (*models.CommentResult, error) {
	if err := s.validator.Validate(ctx, params); err != nil {
		return nil, err
	}

	status, ok := moderationStatus[params.Action]
	if !ok {
		return nil, fmt.Errorf("%w: unknown moderation action %q", validators.ErrValidation, params.Action)
	}

	raw, err := s.gateway.Patch(ctx, "comments/"+formatID(params.CommentID), map[string]any{"status": status})
	if err != nil {
		return nil, err
	}

	var comment models.Comment
	if err := adapter.Decode(raw, &comment); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("comment_id", params.CommentID).Str("status", status).Msg("comment moderated")
	return &models.CommentResult{Comment: commentView(comment, true)}, nil
}
