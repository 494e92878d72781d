// SPDX-License-Identifier: Apache-2.0

package models

// Media is a WordPress media item as returned by /wp/v2/media.
type Media struct {
	ID           int64        `json:"id"`
	Date         string       `json:"date"`
	Modified     string       `json:"modified"`
	Slug         string       `json:"slug"`
	Link         string       `json:"link"`
	Title        Rendered     `json:"title"`
	Caption      Rendered     `json:"caption"`
	Description  Rendered     `json:"description"`
	AltText      string       `json:"alt_text"`
	SourceURL    string       `json:"source_url"`
	MimeType     string       `json:"mime_type"`
	MediaType    string       `json:"media_type"`
	MediaDetails MediaDetails `json:"media_details"`
}

// MediaDetails carries file and size information for a media item.
type MediaDetails struct {
	Width  int64                `json:"width"`
	Height int64                `json:"height"`
	File   string               `json:"file"`
	Sizes  map[string]MediaSize `json:"sizes"`
}

// MediaSize describes one generated rendition of an image.
type MediaSize struct {
	Width     int64  `json:"width"`
	Height    int64  `json:"height"`
	SourceURL string `json:"source_url"`
}

// MediaView is the compact media representation returned to MCP callers.
type MediaView struct {
	ID          int64                    `json:"id"`
	Title       string                   `json:"title"`
	Slug        string                   `json:"slug"`
	Date        string                   `json:"date"`
	Modified    string                   `json:"modified"`
	Link        string                   `json:"link"`
	SourceURL   string                   `json:"source_url"`
	MimeType    string                   `json:"mime_type"`
	MediaType   string                   `json:"media_type"`
	AltText     string                   `json:"alt_text"`
	Caption     string                   `json:"caption,omitempty"`
	Description string                   `json:"description,omitempty"`
	Width       int64                    `json:"width,omitempty"`
	Height      int64                    `json:"height,omitempty"`
	File        string                   `json:"file,omitempty"`
	Sizes       map[string]MediaSizeView `json:"available_sizes,omitempty"`
}

// MediaSizeView describes one rendition in a MediaView.
type MediaSizeView struct {
	Width  int64  `json:"width"`
	Height int64  `json:"height"`
	URL    string `json:"url"`
}

// MediaListResult is the result of the list media operation.
type MediaListResult struct {
	Media   []MediaView `json:"media"`
	Page    int         `json:"page"`
	PerPage int         `json:"per_page"`
}

// MediaResult wraps a single media item.
type MediaResult struct {
	Media MediaView `json:"media"`
}

// MediaURLResult is the result of the get media URL operation.
type MediaURLResult struct {
	MediaID        int64    `json:"media_id"`
	URL            string   `json:"url"`
	Size           string   `json:"size"`
	AvailableSizes []string `json:"available_sizes"`
	MimeType       string   `json:"mime_type"`
}
