// SPDX-License-Identifier: Apache-2.0

package models

// PageListParams are the validated parameters of the list pages operation.
type PageListParams struct {
	Status string `json:"status,omitempty"`
	Search string `json:"search,omitempty"`

	// Parent filters by parent page ID. Nil means no filter.
	Parent *int64 `json:"parent,omitempty"`

	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
	OrderBy string `json:"orderby"`
	Order   string `json:"order"`
}

// PageCreateParams are the validated parameters of the create page operation.
type PageCreateParams struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Status        string `json:"status"`
	Excerpt       string `json:"excerpt,omitempty"`
	Slug          string `json:"slug,omitempty"`
	Parent        int64  `json:"parent,omitempty"`
	MenuOrder     int64  `json:"menu_order,omitempty"`
	Template      string `json:"template,omitempty"`
	FeaturedMedia int64  `json:"featured_media,omitempty"`
	Date          string `json:"date,omitempty"`
}

// PageUpdateParams are the validated parameters of the update page operation.
// Only non-nil fields are sent to the remote API.
type PageUpdateParams struct {
	PageID        int64   `json:"page_id"`
	Title         *string `json:"title,omitempty"`
	Content       *string `json:"content,omitempty"`
	Status        *string `json:"status,omitempty"`
	Excerpt       *string `json:"excerpt,omitempty"`
	Slug          *string `json:"slug,omitempty"`
	Parent        *int64  `json:"parent,omitempty"`
	MenuOrder     *int64  `json:"menu_order,omitempty"`
	Template      *string `json:"template,omitempty"`
	FeaturedMedia *int64  `json:"featured_media,omitempty"`
	Date          *string `json:"date,omitempty"`
}

// HasChanges reports whether at least one updatable field is set.
func (p PageUpdateParams) HasChanges() bool {
	return p.Title != nil || p.Content != nil || p.Status != nil ||
		p.Excerpt != nil || p.Slug != nil || p.Parent != nil ||
		p.MenuOrder != nil || p.Template != nil || p.FeaturedMedia != nil ||
		p.Date != nil
}

// PageGetParams identify a single page.
type PageGetParams struct {
	PageID int64 `json:"page_id"`
}

// PageDeleteParams are the validated parameters of the delete page operation.
type PageDeleteParams struct {
	PageID int64 `json:"page_id"`
	Force  bool  `json:"force"`
}
