// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crunchtools/mcp-wordpress/models"
)

func validPostList() models.PostListParams {
	return models.PostListParams{Page: 1, PerPage: 10, OrderBy: "date", Order: "desc"}
}

// ── Dispatch ────────────────────────────────────────────────────────────────

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewContentValidator()

	err := v.Validate(context.Background(), struct{}{})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_AcceptsValueAndPointer(t *testing.T) {
	v := NewContentValidator()
	params := validPostList()

	assert.NoError(t, v.Validate(context.Background(), params))
	assert.NoError(t, v.Validate(context.Background(), &params))
}

// ── Status and enums ────────────────────────────────────────────────────────

func TestValidate_RejectsUnknownStatusNamingField(t *testing.T) {
	v := NewContentValidator()

	params := models.PostCreateParams{
		Title:   "Hello",
		Content: "World",
		Status:  "archived",
	}

	err := v.Validate(context.Background(), params)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, FieldStatus, fieldErr.Field)
	assert.Contains(t, err.Error(), "publish")
}

func TestValidate_ListStatusFilterOptional(t *testing.T) {
	v := NewContentValidator()

	params := validPostList()
	assert.NoError(t, v.Validate(context.Background(), params))

	params.Status = "draft"
	assert.NoError(t, v.Validate(context.Background(), params))

	params.Status = "archived"
	err := v.Validate(context.Background(), params)
	require.Error(t, err)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, FieldStatus, fieldErr.Field)
}

func TestValidate_PostFormatEnum(t *testing.T) {
	v := NewContentValidator()

	params := models.PostCreateParams{Title: "t", Content: "c", Status: "draft"}
	for _, format := range []string{"", "standard", "aside", "video"} {
		params.Format = format
		assert.NoError(t, v.Validate(context.Background(), params), format)
	}

	params.Format = "vertical"
	err := v.Validate(context.Background(), params)
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, FieldFormat, fieldErr.Field)
}

func TestValidate_OrderingEnumsPerFamily(t *testing.T) {
	v := NewContentValidator()
	ctx := context.Background()

	tests := []struct {
		name string
		obj  any
	}{
		{
			name: "post orderby menu_order",
			obj:  models.PostListParams{Page: 1, PerPage: 10, OrderBy: "menu_order", Order: "desc"},
		},
		{
			name: "media orderby modified",
			obj:  models.MediaListParams{Page: 1, PerPage: 10, OrderBy: "modified", Order: "desc"},
		},
		{
			name: "comment orderby title",
			obj:  models.CommentListParams{Page: 1, PerPage: 10, OrderBy: "title", Order: "desc"},
		},
		{
			name: "invalid order direction",
			obj:  models.PostListParams{Page: 1, PerPage: 10, OrderBy: "date", Order: "descending"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, v.Validate(ctx, tt.obj), ErrValidation)
		})
	}

	// menu_order is sortable for pages only.
	assert.NoError(t, v.Validate(ctx, models.PageListParams{
		Page: 1, PerPage: 10, OrderBy: "menu_order", Order: "asc",
	}))
}

// ── Paging ──────────────────────────────────────────────────────────────────

func TestValidate_PageBounds(t *testing.T) {
	v := NewContentValidator()

	params := validPostList()
	params.Page = 0
	err := v.Validate(context.Background(), params)
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, FieldPage, fieldErr.Field)

	params = validPostList()
	params.PerPage = -5
	err = v.Validate(context.Background(), params)
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, FieldPerPage, fieldErr.Field)
}

// ── Required strings and length ceilings ────────────────────────────────────

func TestValidate_RequiredStrings(t *testing.T) {
	v := NewContentValidator()
	ctx := context.Background()

	err := v.Validate(ctx, models.PostCreateParams{Content: "c", Status: "draft"})
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, FieldTitle, fieldErr.Field)

	err = v.Validate(ctx, models.PostCreateParams{Title: "   ", Content: "c", Status: "draft"})
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, FieldTitle, fieldErr.Field)

	err = v.Validate(ctx, models.SearchParams{Page: 1, PerPage: 10})
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, FieldKeyword, fieldErr.Field)
}

func TestValidate_LengthCeilings(t *testing.T) {
	v := NewContentValidator()
	ctx := context.Background()

	longTitle := strings.Repeat("a", MaxTitleLen+1)
	err := v.Validate(ctx, models.PostCreateParams{Title: longTitle, Content: "c", Status: "draft"})
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, FieldTitle, fieldErr.Field)
	assert.Contains(t, err.Error(), "500")

	params := validPostList()
	params.Search = strings.Repeat("q", MaxSearchLen+1)
	err = v.Validate(ctx, params)
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, FieldSearch, fieldErr.Field)
}

// ── IDs ─────────────────────────────────────────────────────────────────────

func TestValidate_IDRules(t *testing.T) {
	v := NewContentValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.PostGetParams{PostID: 7}))
	assert.ErrorIs(t, v.Validate(ctx, models.PostGetParams{PostID: 0}), ErrValidation)
	assert.ErrorIs(t, v.Validate(ctx, models.MediaGetParams{MediaID: -1}), ErrValidation)

	err := v.Validate(ctx, models.RevisionGetParams{PostID: 3, RevisionID: 0})
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, FieldRevisionID, fieldErr.Field)

	params := validPostList()
	params.Categories = []int64{4, 0}
	err = v.Validate(ctx, params)
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, FieldCategories, fieldErr.Field)
}

// ── Dates ───────────────────────────────────────────────────────────────────

func TestValidate_PublicationDateFormats(t *testing.T) {
	v := NewContentValidator()
	ctx := context.Background()

	params := models.PostCreateParams{Title: "t", Content: "c", Status: "future"}
	for _, date := range []string{
		"",
		"2024-12-25T10:00:00",
		"2024-12-25T10:00:00Z",
		"2024-12-25",
	} {
		params.Date = date
		assert.NoError(t, v.Validate(ctx, params), date)
	}

	params.Date = "25/12/2024"
	err := v.Validate(ctx, params)
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, FieldDate, fieldErr.Field)
}

// ── Comments ────────────────────────────────────────────────────────────────

func TestValidate_CommentCreate(t *testing.T) {
	v := NewContentValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.CommentCreateParams{Post: 1, Content: "nice"}))

	err := v.Validate(ctx, models.CommentCreateParams{Content: "nice"})
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, FieldPost, fieldErr.Field)

	err = v.Validate(ctx, models.CommentCreateParams{Post: 1})
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, FieldContent, fieldErr.Field)
}

func TestValidate_ModerationAction(t *testing.T) {
	v := NewContentValidator()
	ctx := context.Background()

	for _, action := range ModerationActions {
		assert.NoError(t, v.Validate(ctx, models.CommentModerateParams{CommentID: 1, Action: action}))
	}

	err := v.Validate(ctx, models.CommentModerateParams{CommentID: 1, Action: "publish"})
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, FieldAction, fieldErr.Field)
}

// ── Media ───────────────────────────────────────────────────────────────────

func TestValidate_MediaUploadRequiresFilePath(t *testing.T) {
	v := NewContentValidator()

	err := v.Validate(context.Background(), models.MediaUploadParams{Title: "photo"})
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, FieldFilePath, fieldErr.Field)
}

func TestValidate_MediaURLSize(t *testing.T) {
	v := NewContentValidator()
	ctx := context.Background()

	for _, size := range MediaSizes {
		assert.NoError(t, v.Validate(ctx, models.MediaURLParams{MediaID: 1, Size: size}))
	}

	err := v.Validate(ctx, models.MediaURLParams{MediaID: 1, Size: "original"})
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, FieldSize, fieldErr.Field)
}

// ── Field scoping ───────────────────────────────────────────────────────────

func TestValidate_FieldScopingSkipsUnlistedFields(t *testing.T) {
	v := NewContentValidator()
	ctx := context.Background()

	params := models.PostCreateParams{Status: "archived"}

	// Unscoped validation fails on the missing title first.
	var fieldErr *FieldError
	require.ErrorAs(t, v.Validate(ctx, params), &fieldErr)
	assert.Equal(t, FieldTitle, fieldErr.Field)

	// Scoped to status only, the title is ignored and the bad status
	// becomes the reported failure.
	require.ErrorAs(t, v.Validate(ctx, params, FieldStatus), &fieldErr)
	assert.Equal(t, FieldStatus, fieldErr.Field)

	// Scoped to a field that is valid, nothing fails.
	assert.NoError(t, v.Validate(ctx, params, FieldSlug))
}

// ── Update params ───────────────────────────────────────────────────────────

func TestValidate_UpdateChecksOnlySetFields(t *testing.T) {
	v := NewContentValidator()
	ctx := context.Background()

	// Nil optional fields are not validated at all.
	assert.NoError(t, v.Validate(ctx, models.PostUpdateParams{PostID: 5}))

	bad := "archived"
	err := v.Validate(ctx, models.PostUpdateParams{PostID: 5, Status: &bad})
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, FieldStatus, fieldErr.Field)

	// The parent ID always gates updates, set fields or not.
	err = v.Validate(ctx, models.PostUpdateParams{PostID: 0})
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, FieldPostID, fieldErr.Field)
}

// ── Error shape ─────────────────────────────────────────────────────────────

func TestFieldError_MessageAndUnwrap(t *testing.T) {
	err := fieldErrorf(FieldStatus, "must be one of: %s", "publish, draft")

	assert.Equal(t, `invalid field "status": must be one of: publish, draft`, err.Error())
	assert.True(t, errors.Is(err, ErrValidation))
}
