// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"

	"github.com/crunchtools/mcp-wordpress/internal/config"
	"github.com/crunchtools/mcp-wordpress/internal/logger"
	"github.com/crunchtools/mcp-wordpress/internal/utils"
	"github.com/crunchtools/mcp-wordpress/internal/validators"
)

// APIPrefix is the fixed versioned REST namespace. It is prepended to every
// resource path inside the gateway and cannot be overridden by a caller.
const APIPrefix = "/wp-json/wp/v2"

const userAgent = "mcp-wordpress-gateway"

// wordpressGateway is the shipped Gateway implementation. It holds the only
// live reference to the credential bundle; entity services above it see
// resource paths and JSON bytes, never the Authorization header.
type wordpressGateway struct {
	client    *utils.HTTPClient
	creds     config.Credentials
	sanitizer *Sanitizer
	maxBytes  int64
	ids       *utils.UUIDGenerator
	logger    *logger.Logger
}

// NewWordPressGateway builds a Gateway bound to one WordPress site.
//
// The underlying client applies the configured per-call timeout and leaves
// TLS certificate verification at the net/http default; responses are read
// manually so the size ceiling can abort oversized transfers mid-stream.
func NewWordPressGateway(cfg config.Gateway, creds config.Credentials, log *logger.Logger) Gateway {
	client := utils.NewHTTPClient()
	client.
		SetBaseURL(creds.BaseURL()).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("User-Agent", userAgent).
		SetDoNotParseResponse(true).
		SetRetryCount(0)

	if !creds.IsTLS() && !creds.IsLocal() {
		log.Warn().
			Str("url", creds.BaseURL()).
			Msg("site address uses plain http; credentials travel unencrypted")
	}

	return &wordpressGateway{
		client:    client,
		creds:     creds,
		sanitizer: NewSanitizer(creds),
		maxBytes:  cfg.MaxResponseBytes,
		ids:       utils.NewUUIDGenerator(),
		logger:    log,
	}
}

func (g *wordpressGateway) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return g.do(ctx, http.MethodGet, path, func(req *resty.Request) {
		setQuery(req, query)
	})
}

func (g *wordpressGateway) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return g.do(ctx, http.MethodPost, path, func(req *resty.Request) {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	})
}

func (g *wordpressGateway) Patch(ctx context.Context, path string, body any) ([]byte, error) {
	return g.do(ctx, http.MethodPatch, path, func(req *resty.Request) {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	})
}

func (g *wordpressGateway) Delete(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return g.do(ctx, http.MethodDelete, path, func(req *resty.Request) {
		setQuery(req, query)
	})
}

func (g *wordpressGateway) Upload(ctx context.Context, path string, file UploadFile) ([]byte, error) {
	return g.do(ctx, http.MethodPost, path, func(req *resty.Request) {
		req.
			SetHeader("Content-Type", file.ContentType).
			SetHeader("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name)).
			SetBody(file.Data)
	})
}

// do runs one request through the full pipeline: path check, auth header,
// transport, capped body read, status classification, sanitization. Every
// error path exits through the sanitizer.
func (g *wordpressGateway) do(ctx context.Context, method, path string, configure func(*resty.Request)) ([]byte, error) {
	if err := validators.SafeResourcePath("path", path); err != nil {
		return nil, err
	}

	requestID := g.ids.Generate()
	g.logger.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Msg("api request")

	req := g.client.R().
		SetContext(ctx).
		SetHeader("Authorization", g.creds.AuthHeader()).
		SetHeader("Accept", "application/json")
	configure(req)

	resp, err := req.Execute(method, APIPrefix+"/"+path)
	if err != nil {
		sanitized := g.sanitizer.Sanitize(classifyTransportError(ctx, err))
		g.logger.Debug().
			Str("request_id", requestID).
			Err(sanitized).
			Msg("api transport failure")
		return nil, sanitized
	}
	defer func() { _ = resp.RawBody().Close() }()

	body, err := g.readCapped(ctx, resp)
	if err != nil {
		sanitized := g.sanitizer.Sanitize(err)
		g.logger.Debug().
			Str("request_id", requestID).
			Int("status", resp.StatusCode()).
			Err(sanitized).
			Msg("api response discarded")
		return nil, sanitized
	}

	if mapped := mapHTTPError(resp.StatusCode(), body, path); mapped != nil {
		sanitized := g.sanitizer.Sanitize(mapped)
		g.logger.Debug().
			Str("request_id", requestID).
			Int("status", resp.StatusCode()).
			Err(sanitized).
			Msg("api error response")
		return nil, sanitized
	}

	g.logger.Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode()).
		Int("bytes", len(body)).
		Msg("api response")
	return body, nil
}

// readCapped reads the response body up to the configured ceiling. A
// declared Content-Length beyond the ceiling aborts before any transfer;
// otherwise the body is read through a limit one byte past the ceiling so
// an unfaithful or absent declaration is still caught.
func (g *wordpressGateway) readCapped(ctx context.Context, resp *resty.Response) ([]byte, error) {
	if raw := resp.RawResponse; raw != nil && raw.ContentLength > g.maxBytes {
		return nil, fmt.Errorf("%w: declared %d bytes exceeds the %d byte limit", ErrResponseTooLarge, raw.ContentLength, g.maxBytes)
	}

	body, err := io.ReadAll(io.LimitReader(resp.RawBody(), g.maxBytes+1))
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	if int64(len(body)) > g.maxBytes {
		return nil, fmt.Errorf("%w: body exceeds the %d byte limit", ErrResponseTooLarge, g.maxBytes)
	}
	return body, nil
}

// classifyTransportError splits transport failures into the timeout and
// network sentinels. Deadline exhaustion can surface either as a context
// error or as a url.Error that reports Timeout().
func classifyTransportError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("%w: no response within the configured timeout", ErrTimeout)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return fmt.Errorf("%w: no response within the configured timeout", ErrTimeout)
	}

	return fmt.Errorf("%w: %v", ErrNetwork, err)
}

func setQuery(req *resty.Request, query url.Values) {
	for key, values := range query {
		for _, value := range values {
			req.QueryParam.Add(key, value)
		}
	}
}
