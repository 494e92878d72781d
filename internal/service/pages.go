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

type pageService struct {
	gateway   adapter.Gateway
	validator validators.Validator

	logger *logger.Logger
}

func NewPageService(gateway adapter.Gateway, validator validators.Validator, logger *logger.Logger) PageService {
	return &pageService{
		gateway:   gateway,
		validator: validator,
		logger:    logger,
	}
}

func (s *pageService) List(ctx context.Context, params models.PageListParams) (*models.PageListResult, error) {
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
	if params.Parent != nil {
		query.Set("parent", formatID(*params.Parent))
	}

	raw, err := s.gateway.Get(ctx, "pages", query)
	if err != nil {
		return nil, err
	}

	var pages []models.Page
	if err := adapter.Decode(raw, &pages); err != nil {
		return nil, err
	}

	result := &models.PageListResult{
		Pages:   make([]models.PageView, 0, len(pages)),
		Page:    page,
		PerPage: perPage,
	}
	for _, item := range pages {
		result.Pages = append(result.Pages, pageView(item, false))
	}
	return result, nil
}

func (s *pageService) Get(ctx context.Context, params models.PageGetParams) (*models.PageResult, error) {
	if err := s.validator.Validate(ctx, params); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("_embed", "author")
	raw, err := s.gateway.Get(ctx, "pages/"+formatID(params.PageID), query)
	if err != nil {
		return nil, err
	}

	var page models.Page
	if err := adapter.Decode(raw, &page); err != nil {
		return nil, err
	}
	if page.ID == 0 {
		return nil, fmt.Errorf("%w: page response has no id", adapter.ErrDecode)
	}
	return &models.PageResult{Page: pageView(page, true)}, nil
}

func (s *pageService) Create(ctx context.Context, params models.PageCreateParams) (*models.PageResult, error) {
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
	if params.Parent > 0 {
		body["parent"] = params.Parent
	}
	if params.MenuOrder != 0 {
		body["menu_order"] = params.MenuOrder
	}
	if params.Template != "" {
		body["template"] = params.Template
	}
	if params.FeaturedMedia > 0 {
		body["featured_media"] = params.FeaturedMedia
	}
	if params.Date != "" {
		body["date"] = params.Date
	}

	raw, err := s.gateway.Post(ctx, "pages", body)
	if err != nil {
		return nil, err
	}

	var page models.Page
	if err := adapter.Decode(raw, &page); err != nil {
		return nil, err
	}
	if page.ID == 0 {
		return nil, fmt.Errorf("%w: create response has no id", adapter.ErrDecode)
	}
	s.logger.Info().Int64("page_id", page.ID).Str("status", page.Status).Msg("page created")
	return &models.PageResult{Page: pageView(page, true)}, nil
}

func (s *pageService) Update(ctx context.Context, params models.PageUpdateParams) (*models.PageResult, error) {
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
	if params.Parent != nil {
		body["parent"] = *params.Parent
	}
	if params.MenuOrder != nil {
		body["menu_order"] = *params.MenuOrder
	}
	if params.Template != nil {
		body["template"] = *params.Template
	}
	if params.FeaturedMedia != nil {
		body["featured_media"] = *params.FeaturedMedia
	}
	if params.Date != nil {
		body["date"] = *params.Date
	}

	raw, err := s.gateway.Patch(ctx, "pages/"+formatID(params.PageID), body)
	if err != nil {
		return nil, err
	}

	var page models.Page
	if err := adapter.Decode(raw, &page); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("page_id", page.ID).Msg("page updated")
	return &models.PageResult{Page: pageView(page, true)}, nil
}

func (s *pageService) Delete(ctx context.Context, params models.PageDeleteParams) (*models.DeleteResult, error) {
	if err := s.validator.Validate(ctx, params); err != nil {
		return nil, err
	}

	query := url.Values{}
	if params.Force {
		query.Set("force", "true")
	}
	if _, err := s.gateway.Delete(ctx, "pages/"+formatID(params.PageID), query); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("page %d moved to trash", params.PageID)
	if params.Force {
		message = fmt.Sprintf("page %d permanently deleted", params.PageID)
	}
	s.logger.Info().Int64("page_id", params.PageID).Bool("force", params.Force).Msg("page deleted")
	return &models.DeleteResult{Success: true, Message: message, ID: params.PageID}, nil
}

func (s *pageService) ListRevisions(ctx context.Context, params models.PageGetParams) (*models.RevisionListResult, error) {
	if err := s.validator.Validate(ctx, params); err != nil {
		return nil, err
	}
	return listRevisions(ctx, s.gateway, "pages", params.PageID)
}
