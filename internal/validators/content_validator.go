// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"context"

	"github.com/crunchtools/mcp-wordpress/models"
)

// ContentValidator implements the Validator interface for every operation
// parameter record in the models package. It supports both value and pointer
// receivers for every record type and optional field-level scoping via
// variadic field name arguments.
type ContentValidator struct {
}

// NewContentValidator constructs a ContentValidator and returns it as the
// Validator interface.
func NewContentValidator() Validator {
	return &ContentValidator{}
}

// Validate dispatches validation to the appropriate type-specific method.
func (v *ContentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	fs := newFieldSet(fields)

	switch value := obj.(type) {
	case models.PostListParams:
		return v.validatePostList(value, fs)
	case *models.PostListParams:
		return v.validatePostList(*value, fs)

	case models.PostCreateParams:
		return v.validatePostCreate(value, fs)
	case *models.PostCreateParams:
		return v.validatePostCreate(*value, fs)

	case models.PostUpdateParams:
		return v.validatePostUpdate(value, fs)
	case *models.PostUpdateParams:
		return v.validatePostUpdate(*value, fs)

	case models.PostGetParams:
		return positiveID(FieldPostID, value.PostID)
	case *models.PostGetParams:
		return positiveID(FieldPostID, value.PostID)

	case models.PostDeleteParams:
		return positiveID(FieldPostID, value.PostID)
	case *models.PostDeleteParams:
		return positiveID(FieldPostID, value.PostID)

	case models.RevisionGetParams:
		return v.validateRevisionGet(value)
	case *models.RevisionGetParams:
		return v.validateRevisionGet(*value)

	case models.TermListParams:
		return v.validateTermList(value, fs)
	case *models.TermListParams:
		return v.validateTermList(*value, fs)

	case models.SearchParams:
		return v.validateSearch(value, fs)
	case *models.SearchParams:
		return v.validateSearch(*value, fs)

	case models.PageListParams:
		return v.validatePageList(value, fs)
	case *models.PageListParams:
		return v.validatePageList(*value, fs)

	case models.PageCreateParams:
		return v.validatePageCreate(value, fs)
	case *models.PageCreateParams:
		return v.validatePageCreate(*value, fs)

	case models.PageUpdateParams:
		return v.validatePageUpdate(value, fs)
	case *models.PageUpdateParams:
		return v.validatePageUpdate(*value, fs)

	case models.PageGetParams:
		return positiveID(FieldPageID, value.PageID)
	case *models.PageGetParams:
		return positiveID(FieldPageID, value.PageID)

	case models.PageDeleteParams:
		return positiveID(FieldPageID, value.PageID)
	case *models.PageDeleteParams:
		return positiveID(FieldPageID, value.PageID)

	case models.MediaListParams:
		return v.validateMediaList(value, fs)
	case *models.MediaListParams:
		return v.validateMediaList(*value, fs)

	case models.MediaGetParams:
		return positiveID(FieldMediaID, value.MediaID)
	case *models.MediaGetParams:
		return positiveID(FieldMediaID, value.MediaID)

	case models.MediaUploadParams:
		return v.validateMediaUpload(value, fs)
	case *models.MediaUploadParams:
		return v.validateMediaUpload(*value, fs)

	case models.MediaUpdateParams:
		return v.validateMediaUpdate(value, fs)
	case *models.MediaUpdateParams:
		return v.validateMediaUpdate(*value, fs)

	case models.MediaDeleteParams:
		return positiveID(FieldMediaID, value.MediaID)
	case *models.MediaDeleteParams:
		return positiveID(FieldMediaID, value.MediaID)

	case models.MediaURLParams:
		return v.validateMediaURL(value, fs)
	case *models.MediaURLParams:
		return v.validateMediaURL(*value, fs)

	case models.CommentListParams:
		return v.validateCommentList(value, fs)
	case *models.CommentListParams:
		return v.validateCommentList(*value, fs)

	case models.CommentGetParams:
		return positiveID(FieldCommentID, value.CommentID)
	case *models.CommentGetParams:
		return positiveID(FieldCommentID, value.CommentID)

	case models.CommentCreateParams:
		return v.validateCommentCreate(value, fs)
	case *models.CommentCreateParams:
		return v.validateCommentCreate(*value, fs)

	case models.CommentUpdateParams:
		return v.validateCommentUpdate(value, fs)
	case *models.CommentUpdateParams:
		return v.validateCommentUpdate(*value, fs)

	case models.CommentDeleteParams:
		return positiveID(FieldCommentID, value.CommentID)
	case *models.CommentDeleteParams:
		return positiveID(FieldCommentID, value.CommentID)

	case models.CommentModerateParams:
		return v.validateCommentModerate(value, fs)
	case *models.CommentModerateParams:
		return v.validateCommentModerate(*value, fs)

	default:
		return ErrUnsupportedType
	}
}

func (v *ContentValidator) validatePostList(p models.PostListParams, fs fieldSet) error {
	if err := pageBounds(p.Page, p.PerPage); err != nil {
		return err
	}
	if fs.has(FieldStatus) {
		if err := optionalOneOf(FieldStatus, p.Status, ContentStatuses); err != nil {
			return err
		}
	}
	if fs.has(FieldSearch) {
		if err := maxLen(FieldSearch, p.Search, MaxSearchLen); err != nil {
			return err
		}
	}
	if fs.has(FieldCategories) {
		if err := positiveIDs(FieldCategories, p.Categories); err != nil {
			return err
		}
	}
	if fs.has(FieldTags) {
		if err := positiveIDs(FieldTags, p.Tags); err != nil {
			return err
		}
	}
	if fs.has(FieldOrderBy) {
		if err := oneOf(FieldOrderBy, p.OrderBy, PostOrderFields); err != nil {
			return err
		}
	}
	if fs.has(FieldOrder) {
		if err := oneOf(FieldOrder, p.Order, SortOrders); err != nil {
			return err
		}
	}
	return nil
}

func (v *ContentValidator) validatePostCreate(p models.PostCreateParams, fs fieldSet) error {
	if fs.has(FieldTitle) {
		if err := requiredString(FieldTitle, p.Title, MaxTitleLen); err != nil {
			return err
		}
	}
	if fs.has(FieldContent) {
		if err := requiredString(FieldContent, p.Content, MaxContentLen); err != nil {
			return err
		}
	}
	if fs.has(FieldStatus) {
		if err := oneOf(FieldStatus, p.Status, ContentStatuses); err != nil {
			return err
		}
	}
	if fs.has(FieldExcerpt) {
		if err := maxLen(FieldExcerpt, p.Excerpt, MaxExcerptLen); err != nil {
			return err
		}
	}
	if fs.has(FieldSlug) {
		if err := maxLen(FieldSlug, p.Slug, MaxSlugLen); err != nil {
			return err
		}
	}
	if fs.has(FieldCategories) {
		if err := positiveIDs(FieldCategories, p.Categories); err != nil {
			return err
		}
	}
	if fs.has(FieldTags) {
		if err := positiveIDs(FieldTags, p.Tags); err != nil {
			return err
		}
	}
	if fs.has(FieldFeaturedMedia) {
		if err := nonNegative(FieldFeaturedMedia, p.FeaturedMedia); err != nil {
			return err
		}
	}
	if fs.has(FieldDate) {
		if err := optionalDate(FieldDate, p.Date); err != nil {
			return err
		}
	}
	if fs.has(FieldFormat) {
		if err := optionalOneOf(FieldFormat, p.Format, PostFormats); err != nil {
			return err
		}
	}
	return nil
}

func (v *ContentValidator) validatePostUpdate(p models.PostUpdateParams, fs fieldSet) error {
	if err := positiveID(FieldPostID, p.PostID); err != nil {
		return err
	}
	if fs.has(FieldTitle) && p.Title != nil {
		if err := requiredString(FieldTitle, *p.Title, MaxTitleLen); err != nil {
			return err
		}
	}
	if fs.has(FieldContent) && p.Content != nil {
		if err := maxLen(FieldContent, *p.Content, MaxContentLen); err != nil {
			return err
		}
	}
	if fs.has(FieldStatus) && p.Status != nil {
		if err := oneOf(FieldStatus, *p.Status, ContentStatuses); err != nil {
			return err
		}
	}
	if fs.has(FieldExcerpt) && p.Excerpt != nil {
		if err := maxLen(FieldExcerpt, *p.Excerpt, MaxExcerptLen); err != nil {
			return err
		}
	}
	if fs.has(FieldSlug) && p.Slug != nil {
		if err := maxLen(FieldSlug, *p.Slug, MaxSlugLen); err != nil {
			return err
		}
	}
	if fs.has(FieldCategories) {
		if err := positiveIDs(FieldCategories, p.Categories); err != nil {
			return err
		}
	}
	if fs.has(FieldTags) {
		if err := positiveIDs(FieldTags, p.Tags); err != nil {
			return err
		}
	}
	if fs.has(FieldFeaturedMedia) && p.FeaturedMedia != nil {
		if err := nonNegative(FieldFeaturedMedia, *p.FeaturedMedia); err != nil {
			return err
		}
	}
	if fs.has(FieldDate) && p.Date != nil {
		if err := optionalDate(FieldDate, *p.Date); err != nil {
			return err
		}
	}
	if fs.has(FieldFormat) && p.Format != nil {
		if err := optionalOneOf(FieldFormat, *p.Format, PostFormats); err != nil {
			return err
		}
	}
	return nil
}

func (v *ContentValidator) validateRevisionGet(p models.RevisionGetParams) error {
	if err := positiveID(FieldPostID, p.PostID); err != nil {
		return err
	}
	return positiveID(FieldRevisionID, p.RevisionID)
}

func (v *ContentValidator) validateTermList(p models.TermListParams, fs fieldSet) error {
	if err := pageBounds(p.Page, p.PerPage); err != nil {
		return err
	}
	if fs.has(FieldSearch) {
		if err := maxLen(FieldSearch, p.Search, MaxSearchLen); err != nil {
			return err
		}
	}
	return nil
}

func (v *ContentValidator) validateSearch(p models.SearchParams, fs fieldSet) error {
	if fs.has(FieldKeyword) {
		if err := requiredString(FieldKeyword, p.Keyword, MaxSearchLen); err != nil {
			return err
		}
	}
	return pageBounds(p.Page, p.PerPage)
}

func (v *ContentValidator) validatePageList(p models.PageListParams, fs fieldSet) error {
	if err := pageBounds(p.Page, p.PerPage); err != nil {
		return err
	}
	if fs.has(FieldStatus) {
		if err := optionalOneOf(FieldStatus, p.Status, ContentStatuses); err != nil {
			return err
		}
	}
	if fs.has(FieldSearch) {
		if err := maxLen(FieldSearch, p.Search, MaxSearchLen); err != nil {
			return err
		}
	}
	if fs.has(FieldParent) && p.Parent != nil {
		if err := nonNegative(FieldParent, *p.Parent); err != nil {
			return err
		}
	}
	if fs.has(FieldOrderBy) {
		if err := oneOf(FieldOrderBy, p.OrderBy, PageOrderFields); err != nil {
			return err
		}
	}
	if fs.has(FieldOrder) {
		if err := oneOf(FieldOrder, p.Order, SortOrders); err != nil {
			return err
		}
	}
	return nil
}

func (v *ContentValidator) validatePageCreate(p models.PageCreateParams, fs fieldSet) error {
	if fs.has(FieldTitle) {
		if err := requiredString(FieldTitle, p.Title, MaxTitleLen); err != nil {
			return err
		}
	}
	if fs.has(FieldContent) {
		if err := requiredString(FieldContent, p.Content, MaxContentLen); err != nil {
			return err
		}
	}
	if fs.has(FieldStatus) {
		if err := oneOf(FieldStatus, p.Status, ContentStatuses); err != nil {
			return err
		}
	}
	if fs.has(FieldExcerpt) {
		if err := maxLen(FieldExcerpt, p.Excerpt, MaxExcerptLen); err != nil {
			return err
		}
	}
	if fs.has(FieldSlug) {
		if err := maxLen(FieldSlug, p.Slug, MaxSlugLen); err != nil {
			return err
		}
	}
	if fs.has(FieldParent) {
		if err := nonNegative(FieldParent, p.Parent); err != nil {
			return err
		}
	}
	if fs.has(FieldMenuOrder) {
		if err := nonNegative(FieldMenuOrder, p.MenuOrder); err != nil {
			return err
		}
	}
	if fs.has(FieldTemplate) {
		if err := maxLen(FieldTemplate, p.Template, MaxTemplateLen); err != nil {
			return err
		}
	}
	if fs.has(FieldFeaturedMedia) {
		if err := nonNegative(FieldFeaturedMedia, p.FeaturedMedia); err != nil {
			return err
		}
	}
	if fs.has(FieldDate) {
		if err := optionalDate(FieldDate, p.Date); err != nil {
			return err
		}
	}
	return nil
}

func (v *ContentValidator) validatePageUpdate(p models.PageUpdateParams, fs fieldSet) error {
	if err := positiveID(FieldPageID, p.PageID); err != nil {
		return err
	}
	if fs.has(FieldTitle) && p.Title != nil {
		if err := requiredString(FieldTitle, *p.Title, MaxTitleLen); err != nil {
			return err
		}
	}
	if fs.has(FieldContent) && p.Content != nil {
		if err := maxLen(FieldContent, *p.Content, MaxContentLen); err != nil {
			return err
		}
	}
	if fs.has(FieldStatus) && p.Status != nil {
		if err := oneOf(FieldStatus, *p.Status, ContentStatuses); err != nil {
			return err
		}
	}
	if fs.has(FieldExcerpt) && p.Excerpt != nil {
		if err := maxLen(FieldExcerpt, *p.Excerpt, MaxExcerptLen); err != nil {
			return err
		}
	}
	if fs.has(FieldSlug) && p.Slug != nil {
		if err := maxLen(FieldSlug, *p.Slug, MaxSlugLen); err != nil {
			return err
		}
	}
	if fs.has(FieldParent) && p.Parent != nil {
		if err := nonNegative(FieldParent, *p.Parent); err != nil {
			return err
		}
	}
	if fs.has(FieldMenuOrder) && p.MenuOrder != nil {
		if err := nonNegative(FieldMenuOrder, *p.MenuOrder); err != nil {
			return err
		}
	}
	if fs.has(FieldTemplate) && p.Template != nil {
		if err := maxLen(FieldTemplate, *p.Template, MaxTemplateLen); err != nil {
			return err
		}
	}
	if fs.has(FieldFeaturedMedia) && p.FeaturedMedia != nil {
		if err := nonNegative(FieldFeaturedMedia, *p.FeaturedMedia); err != nil {
			return err
		}
	}
	if fs.has(FieldDate) && p.Date != nil {
		if err := optionalDate(FieldDate, *p.Date); err != nil {
			return err
		}
	}
	return nil
}

func (v *ContentValidator) validateMediaList(p models.MediaListParams, fs fieldSet) error {
	if err := pageBounds(p.Page, p.PerPage); err != nil {
		return err
	}
	if fs.has(FieldMediaType) {
		if err := optionalOneOf(FieldMediaType, p.MediaType, MediaTypes); err != nil {
			return err
		}
	}
	if fs.has(FieldMimeType) {
		if err := maxLen(FieldMimeType, p.MimeType, MaxMimeTypeLen); err != nil {
			return err
		}
	}
	if fs.has(FieldSearch) {
		if err := maxLen(FieldSearch, p.Search, MaxSearchLen); err != nil {
			return err
		}
	}
	if fs.has(FieldOrderBy) {
		if err := oneOf(FieldOrderBy, p.OrderBy, MediaOrderFields); err != nil {
			return err
		}
	}
	if fs.has(FieldOrder) {
		if err := oneOf(FieldOrder, p.Order, SortOrders); err != nil {
			return err
		}
	}
	return nil
}

func (v *ContentValidator) validateMediaUpload(p models.MediaUploadParams, fs fieldSet) error {
	if fs.has(FieldFilePath) {
		if p.FilePath == "" {
			return fieldErrorf(FieldFilePath, "is required")
		}
	}
	if fs.has(FieldTitle) {
		if err := maxLen(FieldTitle, p.Title, MaxTitleLen); err != nil {
			return err
		}
	}
	if fs.has(FieldAltText) {
		if err := maxLen(FieldAltText, p.AltText, MaxAltTextLen); err != nil {
			return err
		}
	}
	if fs.has(FieldCaption) {
		if err := maxLen(FieldCaption, p.Caption, MaxCaptionLen); err != nil {
			return err
		}
	}
	if fs.has(FieldDescription) {
		if err := maxLen(FieldDescription, p.Description, MaxDescriptionLen); err != nil {
			return err
		}
	}
	return nil
}

func (v *ContentValidator) validateMediaUpdate(p models.MediaUpdateParams, fs fieldSet) error {
	if err := positiveID(FieldMediaID, p.MediaID); err != nil {
		return err
	}
	if fs.has(FieldTitle) && p.Title != nil {
		if err := maxLen(FieldTitle, *p.Title, MaxTitleLen); err != nil {
			return err
		}
	}
	if fs.has(FieldAltText) && p.AltText != nil {
		if err := maxLen(FieldAltText, *p.AltText, MaxAltTextLen); err != nil {
			return err
		}
	}
	if fs.has(FieldCaption) && p.Caption != nil {
		if err := maxLen(FieldCaption, *p.Caption, MaxCaptionLen); err != nil {
			return err
		}
	}
	if fs.has(FieldDescription) && p.Description != nil {
		if err := maxLen(FieldDescription, *p.Description, MaxDescriptionLen); err != nil {
			return err
		}
	}
	return nil
}

func (v *ContentValidator) validateMediaURL(p models.MediaURLParams, fs fieldSet) error {
	if err := positiveID(FieldMediaID, p.MediaID); err != nil {
		return err
	}
	if fs.has(FieldSize) {
		if err := oneOf(FieldSize, p.Size, MediaSizes); err != nil {
			return err
		}
	}
	return nil
}

func (v *ContentValidator) validateCommentList(p models.CommentListParams, fs fieldSet) error {
	if err := pageBounds(p.Page, p.PerPage); err != nil {
		return err
	}
	if fs.has(FieldPost) && p.Post != nil {
		if err := positiveID(FieldPost, *p.Post); err != nil {
			return err
		}
	}
	if fs.has(FieldStatus) {
		if err := optionalOneOf(FieldStatus, p.Status, CommentStatuses); err != nil {
			return err
		}
	}
	if fs.has(FieldSearch) {
		if err := maxLen(FieldSearch, p.Search, MaxSearchLen); err != nil {
			return err
		}
	}
	if fs.has(FieldOrderBy) {
		if err := oneOf(FieldOrderBy, p.OrderBy, CommentOrderFields); err != nil {
			return err
		}
	}
	if fs.has(FieldOrder) {
		if err := oneOf(FieldOrder, p.Order, SortOrders); err != nil {
			return err
		}
	}
	return nil
}

func (v *ContentValidator) validateCommentCreate(p models.CommentCreateParams, fs fieldSet) error {
	if fs.has(FieldPost) {
		if err := positiveID(FieldPost, p.Post); err != nil {
			return err
		}
	}
	if fs.has(FieldContent) {
		if err := requiredString(FieldContent, p.Content, MaxCommentLen); err != nil {
			return err
		}
	}
	if fs.has(FieldParent) {
		if err := nonNegative(FieldParent, p.Parent); err != nil {
			return err
		}
	}
	if fs.has(FieldAuthorName) {
		if err := maxLen(FieldAuthorName, p.AuthorName, MaxAuthorNameLen); err != nil {
			return err
		}
	}
	if fs.has(FieldAuthorEmail) {
		if err := maxLen(FieldAuthorEmail, p.AuthorEmail, MaxAuthorEmailLen); err != nil {
			return err
		}
	}
	return nil
}

func (v *ContentValidator) validateCommentUpdate(p models.CommentUpdateParams, fs fieldSet) error {
	if err := positiveID(FieldCommentID, p.CommentID); err != nil {
		return err
	}
	if fs.has(FieldContent) && p.Content != nil {
		if err := requiredString(FieldContent, *p.Content, MaxCommentLen); err != nil {
			return err
		}
	}
	if fs.has(FieldStatus) && p.Status != nil {
		if err := oneOf(FieldStatus, *p.Status, CommentStatuses); err != nil {
			return err
		}
	}
	return nil
}

func (v *ContentValidator) validateCommentModerate(p models.CommentModerateParams, fs fieldSet) error {
	if err := positiveID(FieldCommentID, p.CommentID); err != nil {
		return err
	}
	if fs.has(FieldAction) {
		if err := oneOf(FieldAction, p.Action, ModerationActions); err != nil {
			return err
		}
	}
	return nil
}
