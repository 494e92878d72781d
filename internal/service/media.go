// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"os"
	"path/filepath"

	"github.com/crunchtools/mcp-wordpress/internal/adapter"
	"github.com/crunchtools/mcp-wordpress/internal/config"
	"github.com/crunchtools/mcp-wordpress/internal/logger"
	"github.com/crunchtools/mcp-wordpress/internal/validators"
	"github.com/crunchtools/mcp-wordpress/models"
)

type mediaService struct {
	gateway   adapter.Gateway
	validator validators.Validator
	uploadDir string

	logger *logger.Logger
}

func NewMediaService(gateway adapter.Gateway, validator validators.Validator, cfg config.Media, logger *logger.Logger) MediaService {
	return &mediaService{
		gateway:   gateway,
		validator: validator,
		uploadDir: cfg.UploadDir,
		logger:    logger,
	}
}

func (s *mediaService) List(ctx context.Context, params models.MediaListParams) (*models.MediaListResult, error) {
	if err := s.validator.Validate(ctx, params); err != nil {
		return nil, err
	}
	page, perPage := normalizePaging(params.Page, params.PerPage)

	query := url.Values{}
	setPaging(query, page, perPage)
	setOrdering(query, params.OrderBy, params.Order)
	if params.MediaType != "" {
		query.Set("media_type", params.MediaType)
	}
	if params.MimeType != "" {
		query.Set("mime_type", params.MimeType)
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}

	raw, err := s.gateway.Get(ctx, "media", query)
	if err != nil {
		return nil, err
	}

	var items []models.Media
	if err := adapter.Decode(raw, &items); err != nil {
		return nil, err
	}

	result := &models.MediaListResult{
		Media:   make([]models.MediaView, 0, len(items)),
		Page:    page,
		PerPage: perPage,
	}
	for _, item := range items {
		result.Media = append(result.Media, mediaView(item, false))
	}
	return result, nil
}

func (s *mediaService) Get(ctx context.Context, params models.MediaGetParams) (*models.MediaResult, error) {
	if err := s.validator.Validate(ctx, params); err != nil {
		return nil, err
	}

	raw, err := s.gateway.Get(ctx, "media/"+formatID(params.MediaID), nil)
	if err != nil {
		return nil, err
	}

	var item models.Media
	if err := adapter.Decode(raw, &item); err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, fmt.Errorf("%w: media response has no id", adapter.ErrDecode)
	}
	return &models.MediaResult{Media: mediaView(item, true)}, nil
}

// Upload sends a local file as a new media item. The file must resolve
// inside the configured upload directory; the containment check runs before
// any filesystem read. Metadata fields are applied in a follow-up update
// because the binary upload endpoint ignores them.
func (s *mediaService) Upload(ctx context.Context, params models.MediaUploadParams) (*models.MediaResult, error) {
	if err := s.validator.Validate(ctx, params); err != nil {
		return nil, err
	}

	resolved, err := validators.ResolveWithinDir(validators.FieldFilePath, s.uploadDir, params.FilePath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", validators.ErrValidation, filepath.Base(resolved), err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(resolved))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	raw, err := s.gateway.Upload(ctx, "media", adapter.UploadFile{
		Name:        filepath.Base(resolved),
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		return nil, err
	}

	var item models.Media
	if err := adapter.Decode(raw, &item); err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, fmt.Errorf("%w: upload response has no id", adapter.ErrDecode)
	}
	s.logger.Info().Int64("media_id", item.ID).Str("mime_type", contentType).Int("bytes", len(data)).Msg("media uploaded")

	metadata := map[string]any{}
	if params.Title != "" {
		metadata["title"] = params.Title
	}
	if params.AltText != "" {
		metadata["alt_text"] = params.AltText
	}
	if params.Caption != "" {
		metadata["caption"] = params.Caption
	}
	if params.Description != "" {
		metadata["description"] = params.Description
	}
	if len(metadata) > 0 {
		raw, err = s.gateway.Patch(ctx, "media/"+formatID(item.ID), metadata)
		if err != nil {
			return nil, err
		}
		if err := adapter.Decode(raw, &item); err != nil {
			return nil, err
		}
	}

	return &models.MediaResult{Media: mediaView(item, true)}, nil
}

func (s *mediaService) Update(ctx context.Context, params models.MediaUpdateParams) (*models.MediaResult, error) {
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
	if params.AltText != nil {
		body["alt_text"] = *params.AltText
	}
	if params.Caption != nil {
		body["caption"] = *params.Caption
	}
	if params.Description != nil {
		body["description"] = *params.Description
	}

	raw, err := s.gateway.Patch(ctx, "media/"+formatID(params.MediaID), body)
	if err != nil {
		return nil, err
	}

	var item models.Media
	if err := adapter.Decode(raw, &item); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("media_id", item.ID).Msg("media updated")
	return &models.MediaResult{Media: mediaView(item, true)}, nil
}

// Delete removes a media item. The remote API cannot trash attachments, so
// deletion is always forced and permanent.
func (s *mediaService) Delete(ctx context.Context, params models.MediaDeleteParams) (*models.DeleteResult, error) {
	if err := s.validator.Validate(ctx, params); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("force", "true")
	if _, err := s.gateway.Delete(ctx, "media/"+formatID(params.MediaID), query); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("media_id", params.MediaID).Msg("media deleted")
	return &models.DeleteResult{
		Success: true,
		Message: fmt.Sprintf("media %d permanently deleted", params.MediaID),
		ID:      params.MediaID,
	}, nil
}

// GetURL returns the direct URL of a media item in the requested rendition.
// A rendition the site never generated falls back to the original file.
func (s *mediaService) GetURL(ctx context.Context, params models.MediaURLParams) (*models.MediaURLResult, error) {
	if err := s.validator.Validate(ctx, params); err != nil {
		return nil, err
	}

	raw, err := s.gateway.Get(ctx, "media/"+formatID(params.MediaID), nil)
	if err != nil {
		return nil, err
	}

	var item models.Media
	if err := adapter.Decode(raw, &item); err != nil {
		return nil, err
	}
	if item.SourceURL == "" {
		return nil, fmt.Errorf("%w: media response has no source url", adapter.ErrDecode)
	}

	available := sortedKeys(item.MediaDetails.Sizes)

	size := params.Size
	resolvedURL := item.SourceURL
	if size == "" {
		size = "full"
	}
	if size != "full" {
		rendition, ok := item.MediaDetails.Sizes[size]
		if !ok || rendition.SourceURL == "" {
			size = "full"
		} else {
			resolvedURL = rendition.SourceURL
		}
	}

	return &models.MediaURLResult{
		MediaID:        params.MediaID,
		URL:            resolvedURL,
		Size:           size,
		AvailableSizes: available,
		MimeType:       item.MimeType,
	}, nil
}
