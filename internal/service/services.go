// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/crunchtools/mcp-wordpress/internal/adapter"
	"github.com/crunchtools/mcp-wordpress/internal/config"
	"github.com/crunchtools/mcp-wordpress/internal/logger"
	"github.com/crunchtools/mcp-wordpress/internal/validators"
)

// Services aggregates the entity services behind one constructor so the MCP
// server wires a single value.
type Services struct {
	SiteService    SiteService
	PostService    PostService
	PageService    PageService
	MediaService   MediaService
	CommentService CommentService
}

func NewServices(gateway adapter.Gateway, validator validators.Validator, cfg *config.Config, creds config.Credentials, logger *logger.Logger) *Services {
	return &Services{
		SiteService:    NewSiteService(gateway, creds, logger),
		PostService:    NewPostService(gateway, validator, logger),
		PageService:    NewPageService(gateway, validator, logger),
		MediaService:   NewMediaService(gateway, validator, cfg.Media, logger),
		CommentService: NewCommentService(gateway, validator, logger),
	}
}
