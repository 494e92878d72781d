// SPDX-License-Identifier: Apache-2.0

// Package service implements the content management operations exposed as
// MCP tools. Each service validates its typed parameter record, calls the
// API gateway, decodes the response, and shapes it into a compact result
// record. Services hold no per-call state and are safe for concurrent use.
package service

import (
	"context"

	"github.com/crunchtools/mcp-wordpress/models"
)

type SiteService interface {
	GetSiteInfo(ctx context.Context) (*models.SiteInfoResult, error)
	TestConnection(ctx context.Context) (*models.ConnectionResult, error)
}

type PostService interface {
	List(ctx context.Context, params models.PostListParams) (*models.PostListResult, error)
	Get(ctx context.Context, params models.PostGetParams) (*models.PostResult, error)
	Search(ctx context.Context, params models.SearchParams) (*models.PostListResult, error)
	Create(ctx context.Context, params models.PostCreateParams) (*models.PostResult, error)
	Update(ctx context.Context, params models.PostUpdateParams) (*models.PostResult, error)
	Delete(ctx context.Context, params models.PostDeleteParams) (*models.DeleteResult, error)
	ListRevisions(ctx context.Context, params models.PostGetParams) (*models.RevisionListResult, error)
	GetRevision(ctx context.Context, params models.RevisionGetParams) (*models.RevisionResult, error)
	ListCategories(ctx context.Context, params models.TermListParams) (*models.CategoryListResult, error)
	ListTags(ctx context.Context, params models.TermListParams) (*models.TagListResult, error)
}

type PageService interface {
	List(ctx context.Context, params models.PageListParams) (*models.PageListResult, error)
	Get(ctx context.Context, params models.PageGetParams) (*models.PageResult, error)
	Create(ctx context.Context, params models.PageCreateParams) (*models.PageResult, error)
	Update(ctx context.Context, params models.PageUpdateParams) (*models.PageResult, error)
	Delete(ctx context.Context, params models.PageDeleteParams) (*models.DeleteResult, error)
	ListRevisions(ctx context.Context, params models.PageGetParams) (*models.RevisionListResult, error)
}

type MediaService interface {
	List(ctx context.Context, params models.MediaListParams) (*models.MediaListResult, error)
	Get(ctx context.Context, params models.MediaGetParams) (*models.MediaResult, error)
	Upload(ctx context.Context, params models.MediaUploadParams) (*models.MediaResult, error)
	Update(ctx context.Context, params models.MediaUpdateParams) (*models.MediaResult, error)
	Delete(ctx context.Context, params models.MediaDeleteParams) (*models.DeleteResult, error)
	GetURL(ctx context.Context, params models.MediaURLParams) (*models.MediaURLResult, error)
}

type CommentService interface {
	List(ctx context.Context, params models.CommentListParams) (*models.CommentListResult, error)
	Get(ctx context.Context, params models.CommentGetParams) (*models.CommentResult, error)
	Create(ctx context.Context, params models.CommentCreateParams) (*models.CommentResult, error)
	Update(ctx context.Context, params models.CommentUpdateParams) (*models.CommentResult, error)
	Delete(ctx context.Context, params models.CommentDeleteParams) (*models.DeleteResult, error)
	Moderate(ctx context.Context, params models.CommentModerateParams) (*models.CommentResult, error)
}
