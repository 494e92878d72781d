// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"slices"
	"strings"
	"time"
)

// Field length ceilings, matching the WordPress REST API constraints.
const (
	MaxTitleLen       = 500
	MaxContentLen     = 100_000
	MaxExcerptLen     = 1000
	MaxSlugLen        = 200
	MaxSearchLen      = 500
	MaxTemplateLen    = 200
	MaxCommentLen     = 10_000
	MaxAuthorNameLen  = 100
	MaxAuthorEmailLen = 200
	MaxCaptionLen     = 2000
	MaxAltTextLen     = 500
	MaxMimeTypeLen    = 100
	MaxDescriptionLen = 10_000

	// MaxPerPage is the page-size ceiling the remote API enforces; larger
	// requests are clamped rather than rejected.
	MaxPerPage = 100
)

// Enumerated value sets per field class.
var (
	// ContentStatuses are the valid post and page statuses.
	ContentStatuses = []string{"publish", "future", "draft", "pending", "private"}

	// CommentStatuses are the valid comment statuses.
	CommentStatuses = []string{"approved", "hold", "spam", "trash"}

	// ModerationActions are the valid comment moderation actions.
	ModerationActions = []string{"approve", "hold", "spam", "trash"}

	// PostFormats are the valid post formats.
	PostFormats = []string{
		"standard", "aside", "chat", "gallery", "link",
		"image", "quote", "status", "video", "audio",
	}

	// PostOrderFields, PageOrderFields, MediaOrderFields, and
	// CommentOrderFields are the sortable fields per resource family.
	PostOrderFields    = []string{"date", "title", "id", "modified"}
	PageOrderFields    = []string{"date", "title", "id", "modified", "menu_order"}
	MediaOrderFields   = []string{"date", "title", "id"}
	CommentOrderFields = []string{"date", "id"}

	// SortOrders are the valid sort directions.
	SortOrders = []string{"asc", "desc"}

	// MediaTypes are the valid media type filters.
	MediaTypes = []string{"image", "video", "audio", "application"}

	// MediaSizes are the valid image rendition names.
	MediaSizes = []string{"thumbnail", "medium", "large", "full"}
)

// dateLayouts are the publication date formats accepted for scheduling.
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

func maxLen(field, value string, limit int) error {
	if len(value) > limit {
		return fieldErrorf(field, "must be at most %d characters", limit)
	}
	return nil
}

func requiredString(field, value string, limit int) error {
	if strings.TrimSpace(value) == "" {
		return fieldErrorf(field, "is required")
	}
	return maxLen(field, value, limit)
}

func oneOf(field, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fieldErrorf(field, "must be one of: %s", strings.Join(allowed, ", "))
}

func optionalOneOf(field, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	return oneOf(field, value, allowed)
}

func positiveID(field string, id int64) error {
	if id <= 0 {
		return fieldErrorf(field, "must be a positive integer")
	}
	return nil
}

func nonNegative(field string, v int64) error {
	if v < 0 {
		return fieldErrorf(field, "must not be negative")
	}
	return nil
}

func positiveIDs(field string, ids []int64) error {
	for _, id := range ids {
		if id <= 0 {
			return fieldErrorf(field, "must contain only positive integers")
		}
	}
	return nil
}

func pageBounds(page, perPage int) error {
	if page < 1 {
		return fieldErrorf(FieldPage, "must be a positive integer")
	}
	if perPage < 1 {
		return fieldErrorf(FieldPerPage, "must be a positive integer")
	}
	return nil
}

func optionalDate(field, value string) error {
	if value == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return nil
		}
	}
	return fieldErrorf(field, "must be an ISO 8601 date (e.g. 2024-12-25T10:00:00)")
}
