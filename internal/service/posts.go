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

type postService struct {
	gateway   adapter.Gateway
	validator validators.Validator

	logger *logger.Logger
}

func NewPostService(gateway adapter.Gateway, validator validators.Validator, logger *logger.Logger) PostService {
	return &postService{
		gateway:   gateway,
		validator: validator,
		logger:    logger,
	}
}

func (s *postService) List(ctx context.Context, params models.PostListParams) (*models.PostListResult, error) {
	if err := s.validator.Validate(ctx, params); err != nil {
		return nil, err
	}
	page, perPage := normalizePaging(params.Page, params.PerPage)

	query := url.Values{}
	setPaging(query, page, perPage)
	setOrdering(query, params.OrderBy, params.Order)
	query.Set("_embed", "author")
	if params.Status != "" {
		query.Set("status", params.Status)
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	if len(params.Categories) > 0 {
		query.Set("categories", joinIDs(params.Categories))
	}
	if len(params.Tags) > 0 {
		query.Set("tags", joinIDs(params.Tags))
	}

	raw, err := s.gateway.Get(ctx, "posts", query)
	if err != nil {
		return nil, err
	}

	var posts []models.Post
	if err := adapter.Decode(raw, &posts); err != nil {
		return nil, err
	}

	result := &models.PostListResult{
		Posts:   make([]models.PostView, 0, len(posts)),
		Page:    page,
		PerPage: perPage,
	}
	for _, post := range posts {
		result.Posts = append(result.Posts, postView(post, false))
	}
	return result, nil
}

// Search delegates to List: the keyword maps onto the search filter.
func (s *postService) Search(ctx context.Context, params models.SearchParams) (*models.PostListResult, error) {
	if err := s.validator.Validate(ctx, params); err != nil {
		return nil, err
	}
	return s.List(ctx, models.PostListParams{
		Search:  params.Keyword,
		Page:    params.Page,
		PerPage: params.PerPage,
		OrderBy: "date",
		Order:   "desc",
	})
}

func (s *postService) Get(ctx context.Context, params models.PostGetParams) (*models.PostResult, error) {
	if err := s.validator.Validate(ctx, params); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("_embed", "author")
	raw, err := s.gateway.Get(ctx, "posts/"+formatID(params.PostID), query)
	if err != nil {
		return nil, err
	}

	var post models.Post
	if err := adapter.Decode(raw, &post); err != nil {
		return nil, err
	}
	if post.ID == 0 {
		return nil, fmt.Errorf("%w: post response has no id", adapter.ErrDecode)
	}
	return &models.PostResult{Post: postView(post, true)}, nil
}

func (s *postService) Create(ctx context.Context, params models.PostCreateParams) (*models.PostResult, error) {
	if err := s.validator.Validate(ctx, params); err != nil {
		return nil, err
	}

	body := map[string]any{
		"title":   params.Title,
		"content": params.Content,
		"status":  params.Status,
	}
	if params.Excerpt != "" {
		body["excerpt"] = params.Excerpt
	}
	if params.Slug != "" {
		body["slug"] = params.Slug
	}
	if len(params.Categories) > 0 {
		body["categories"] = params.Categories
	}
	if len(params.Tags) > 0 {
		body["tags"] = params.Tags
	}
	if params.FeaturedMedia > 0 {
		body["featured_media"] = params.FeaturedMedia
	}
	if params.Date != "" {
		body["date"] = params.Date
	}
	if params.Format != "" {
		body["format"] = params.Format
	}

	raw, err := s.gateway.Post(ctx, "posts", body)
	if err != nil {
		return nil, err
	}

	var post models.Post
	if err := adapter.Decode(raw, &post); err != nil {
		return nil, err
	}
	if post.ID == 0 {
		return nil, fmt.Errorf("%w: create response has no id", adapter.ErrDecode)
	}
	s.logger.Info().Int64("post_id", post.ID).Str("status", post.Status).Msg("post created")
	return &models.PostResult{Post: postView(post, true)}, nil
}

func (s *postService) Update(ctx context.Context, params models.PostUpdateParams) (*models.PostResult, error) {
	if err := s.validator.Validate(ctx, params); err != nil {
		return nil, err
	}
	if !params.HasChanges() {
		return nil, ErrNoFields
	}

	body := map[string]any{}
	if params.Title != nil {
		body["title"] = *params.Title
	}
	if params.Content != nil {
		body["content"] = *params.Content
	}
	if params.Status != nil {
		body["status"] = *params.Status
	}
	if params.Excerpt != nil {
		body["excerpt"] = *params.Excerpt
	}
	if params.Slug != nil {
		body["slug"] = *params.Slug
	}
	if params.Categories != nil {
		body["categories"] = params.Categories
	}
	if params.Tags != nil {
		body["tags"] = params.Tags
	}
	if params.FeaturedMedia != nil {
		body["featured_media"] = *params.FeaturedMedia
	}
	if params.Date != nil {
		body["date"] = *params.Date
	}
	if params.Format != nil {
		body["format"] = *params.Format
	}

	raw, err := s.gateway.Patch(ctx, "posts/"+formatID(params.PostID), body)
	if err != nil {
		return nil, err
	}

	var post models.Post
	if err := adapter.Decode(raw, &post); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("post_id", post.ID).Msg("post updated")
	return &models.PostResult{Post: postView(post, true)}, nil
}

func (s *postService) Delete(ctx context.Context, params models.PostDeleteParams) (*models.DeleteResult, error) {
	if err := s.validator.Validate(ctx, params); err != nil {
		return nil, err
	}

	query := url.Values{}
	if params.Force {
		query.Set("force", "true")
	}
	if _, err := s.gateway.Delete(ctx, "posts/"+formatID(params.PostID), query); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("post %d moved to trash", params.PostID)
	if params.Force {
		message = fmt.Sprintf("post %d permanently deleted", params.PostID)
	}
	s.logger.Info().Int64("post_id", params.PostID).Bool("force", params.Force).Msg("post deleted")
	return &models.DeleteResult{Success: true, Message: message, ID: params.PostID}, nil
}

func (s *postService) ListRevisions(ctx context.Context, params models.PostGetParams) (*models.RevisionListResult, error) {
	if err := s.validator.Validate(ctx, params); err != nil {
		return nil, err
	}
	return listRevisions(ctx, s.gateway, "posts", params.PostID)
}

func (s *postService) GetRevision(ctx context.Context, params models.RevisionGetParams) (*models.RevisionResult, error) {
	if err := s.validator.Validate(ctx, params); err != nil {
		return nil, err
	}

	path := "posts/" + formatID(params.PostID) + "/revisions/" + formatID(params.RevisionID)
	raw, err := s.gateway.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	var revision models.Revision
	if err := adapter.Decode(raw, &revision); err != nil {
		return nil, err
	}
	return &models.RevisionResult{Revision: models.RevisionDetail{
		ID:      revision.ID,
		Author:  revision.Author,
		Date:    revision.Date,
		Title:   revision.Title.String(),
		Content: revision.Content.String(),
		Excerpt: revision.Excerpt.String(),
	}}, nil
}

func (s *postService) ListCategories(ctx context.Context, params models.TermListParams) (*models.CategoryListResult, error) {
	terms, err := s.listTerms(ctx, "categories", params)
	if err != nil {
		return nil, err
	}
	return &models.CategoryListResult{Categories: terms}, nil
}

func (s *postService) ListTags(ctx context.Context, params models.TermListParams) (*models.TagListResult, error) {
	terms, err := s.listTerms(ctx, "tags", params)
	if err != nil {
		return nil, err
	}
	return &models.TagListResult{Tags: terms}, nil
}

func (s *postService) listTerms(ctx context.Context, path string, params models.TermListParams) ([]models.Term, error) {
	if err := s.validator.Validate(ctx, params); err != nil {
		return nil, err
	}
	page, perPage := normalizePaging(params.Page, params.PerPage)

	query := url.Values{}
	setPaging(query, page, perPage)
	if params.Search != "" {
		query.Set("search", params.Search)
	}

	raw, err := s.gateway.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	var terms []models.Term
	if err := adapter.Decode(raw, &terms); err != nil {
		return nil, err
	}
	return terms, nil
}

// listRevisions is shared by the post and page revision listings; the two
// endpoints differ only in the parent collection.
func listRevisions(ctx context.Context, gateway adapter.Gateway, collection string, parentID int64) (*models.RevisionListResult, error) {
	raw, err := gateway.Get(ctx, collection+"/"+formatID(parentID)+"/revisions", nil)
	if err != nil {
		return nil, err
	}

	var revisions []models.Revision
	if err := adapter.Decode(raw, &revisions); err != nil {
		return nil, err
	}

	result := &models.RevisionListResult{
		Revisions: make([]models.RevisionView, 0, len(revisions)),
		ParentID:  parentID,
	}
	for _, revision := range revisions {
		result.Revisions = append(result.Revisions, revisionView(revision))
	}
	return result, nil
}
