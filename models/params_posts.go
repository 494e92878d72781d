// SPDX-License-Identifier: Apache-2.0

package models

// PostListParams are the validated parameters of the list posts operation.
// Zero values mean "not provided" for the optional filters.
type PostListParams struct {
	// Status filters by post status (publish, future, draft, pending, private).
	Status string `json:"status,omitempty"`

	// Search filters posts by keyword.
	Search string `json:"search,omitempty"`

	// Categories filters by category IDs.
	Categories []int64 `json:"categories,omitempty"`

	// Tags filters by tag IDs.
	Tags []int64 `json:"tags,omitempty"`

	// Page is the 1-based results page.
	Page int `json:"page"`

	// PerPage is the page size; the remote API caps it at 100.
	PerPage int `json:"per_page"`

	// OrderBy selects the sort field (date, title, id, modified).
	OrderBy string `json:"orderby"`

	// Order selects the sort direction (asc, desc).
	Order string `json:"order"`
}

// PostCreateParams are the validated parameters of the create post operation.
type PostCreateParams struct {
	Title         string  `json:"title"`
	Content       string  `json:"content"`
	Status        string  `json:"status"`
	Excerpt       string  `json:"excerpt,omitempty"`
	Slug          string  `json:"slug,omitempty"`
	Categories    []int64 `json:"categories,omitempty"`
	Tags          []int64 `json:"tags,omitempty"`
	FeaturedMedia int64   `json:"featured_media,omitempty"`

	// Date is an ISO 8601 publication date; set together with status
	// "future" to schedule the post.
	Date string `json:"date,omitempty"`

	// Format is the post format (standard, aside, gallery, ...).
	Format string `json:"format,omitempty"`
}

// PostUpdateParams are the validated parameters of the update post operation.
// Only non-nil fields are sent to the remote API (partial update).
type PostUpdateParams struct {
	PostID        int64    `json:"post_id"`
	Title         *string  `json:"title,omitempty"`
	Content       *string  `json:"content,omitempty"`
	Status        *string  `json:"status,omitempty"`
	Excerpt       *string  `json:"excerpt,omitempty"`
	Slug          *string  `json:"slug,omitempty"`
	Categories    []int64  `json:"categories,omitempty"`
	Tags          []int64  `json:"tags,omitempty"`
	FeaturedMedia *int64   `json:"featured_media,omitempty"`
	Date          *string  `json:"date,omitempty"`
	Format        *string  `json:"format,omitempty"`
}

// HasChanges reports whether at least one updatable field is set.
func (p PostUpdateParams) HasChanges() bool {
	return p.Title != nil || p.Content != nil || p.Status != nil ||
		p.Excerpt != nil || p.Slug != nil || p.Categories != nil ||
		p.Tags != nil || p.FeaturedMedia != nil || p.Date != nil || p.Format != nil
}

// PostDeleteParams are the validated parameters of the delete post operation.
type PostDeleteParams struct {
	PostID int64 `json:"post_id"`

	// Force permanently deletes instead of moving to trash.
	Force bool `json:"force"`
}

// PostGetParams identify a single post.
type PostGetParams struct {
	PostID int64 `json:"post_id"`
}

// RevisionGetParams identify one revision of a post.
type RevisionGetParams struct {
	PostID     int64 `json:"post_id"`
	RevisionID int64 `json:"revision_id"`
}

// TermListParams are the validated parameters of the list categories and
// list tags operations.
type TermListParams struct {
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
	Search  string `json:"search,omitempty"`
}

// SearchParams are the validated parameters of the search posts operation.
type SearchParams struct {
	Keyword string `json:"keyword"`
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
}
