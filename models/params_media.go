// SPDX-License-Identifier: Apache-2.0

package models

// MediaListParams are the validated parameters of the list media operation.
type MediaListParams struct {
	// MediaType filters by type (image, video, audio, application).
	MediaType string `json:"media_type,omitempty"`

	// MimeType filters by MIME type (e.g. image/jpeg).
	MimeType string `json:"mime_type,omitempty"`

	Search  string `json:"search,omitempty"`
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
	OrderBy string `json:"orderby"`
	Order   string `json:"order"`
}

// MediaGetParams identify a single media item.
type MediaGetParams struct {
	MediaID int64 `json:"media_id"`
}

// MediaUploadParams are the validated parameters of the upload media
// operation. FilePath must resolve inside the configured upload directory.
type MediaUploadParams struct {
	FilePath    string `json:"file_path"`
	Title       string `json:"title,omitempty"`
	AltText     string `json:"alt_text,omitempty"`
	Caption     string `json:"caption,omitempty"`
	Description string `json:"description,omitempty"`
}

// MediaUpdateParams are the validated parameters of the update media
// operation. Only non-nil fields are sent to the remote API.
type MediaUpdateParams struct {
	MediaID     int64   `json:"media_id"`
	Title       *string `json:"title,omitempty"`
	AltText     *string `json:"alt_text,omitempty"`
	Caption     *string `json:"caption,omitempty"`
	Description *string `json:"description,omitempty"`
}

// HasChanges reports whether at least one updatable field is set.
func (p MediaUpdateParams) HasChanges() bool {
	return p.Title != nil || p.AltText != nil || p.Caption != nil || p.Description != nil
}

// MediaDeleteParams identify a media item to delete. Media cannot be
// trashed; deletion is always permanent.
type MediaDeleteParams struct {
	MediaID int64 `json:"media_id"`
}

// MediaURLParams are the validated parameters of the get media URL operation.
type MediaURLParams struct {
	MediaID int64 `json:"media_id"`

	// Size selects the rendition (thumbnail, medium, large, full).
	Size string `json:"size"`
}
