// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/crunchtools/mcp-wordpress/internal/adapter"
	"github.com/crunchtools/mcp-wordpress/internal/config"
	"github.com/crunchtools/mcp-wordpress/internal/logger"
	"github.com/crunchtools/mcp-wordpress/models"
)

type siteService struct {
	gateway adapter.Gateway
	creds   config.Credentials

	logger *logger.Logger
}

func NewSiteService(gateway adapter.Gateway, creds config.Credentials, logger *logger.Logger) SiteService {
	return &siteService{
		gateway: gateway,
		creds:   creds,
		logger:  logger,
	}
}

// GetSiteInfo reads the site settings. The settings endpoint requires
// administrator credentials; on a permission rejection the result degrades
// to connection-level information instead of failing the call.
func (s *siteService) GetSiteInfo(ctx context.Context) (*models.SiteInfoResult, error) {
	raw, err := s.gateway.Get(ctx, "settings", nil)
	if err != nil {
		if errors.Is(err, adapter.ErrPermissionDenied) {
			s.logger.Debug().Msg("settings endpoint denied; returning connection info only")
			return &models.SiteInfoResult{Site: models.SiteInfo{
				URL:    s.creds.BaseURL(),
				APIURL: s.creds.BaseURL() + adapter.APIPrefix,
				Note:   "full site settings require administrator credentials",
			}}, nil
		}
		return nil, err
	}

	var settings models.Settings
	if err := adapter.Decode(raw, &settings); err != nil {
		return nil, err
	}

	return &models.SiteInfoResult{Site: models.SiteInfo{
		Title:       settings.Title,
		Description: settings.Description,
		URL:         settings.URL,
		Email:       settings.Email,
		Timezone:    settings.Timezone,
		DateFormat:  settings.DateFormat,
		TimeFormat:  settings.TimeFormat,
		Language:    settings.Language,
		APIURL:      s.creds.BaseURL() + adapter.APIPrefix,
	}}, nil
}

// TestConnection verifies the configured credentials against the
// authenticated-user endpoint. An authentication rejection is reported as
// an unsuccessful result rather than an error; transport failures propagate.
func (s *siteService) TestConnection(ctx context.Context) (*models.ConnectionResult, error) {
	raw, err := s.gateway.Get(ctx, "users/me", nil)
	if err != nil {
		if errors.Is(err, adapter.ErrPermissionDenied) {
			return &models.ConnectionResult{
				Success: false,
				Message: fmt.Sprintf("authentication failed for user %q: %v", s.creds.Username(), err),
				SiteURL: s.creds.BaseURL(),
			}, nil
		}
		return nil, err
	}

	var user models.User
	if err := adapter.Decode(raw, &user); err != nil {
		return nil, err
	}

	var granted []string
	for _, capability := range sortedKeys(user.Capabilities) {
		if user.Capabilities[capability] {
			granted = append(granted, capability)
		}
	}

	return &models.ConnectionResult{
		Success:         true,
		Message:         "connection successful",
		SiteURL:         s.creds.BaseURL(),
		AuthenticatedAs: user.Name,
		UserID:          user.ID,
		Capabilities:    granted,
	}, nil
}
