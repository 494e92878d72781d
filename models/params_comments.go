// SPDX-License-Identifier: Apache-2.0

package models

// CommentListParams are the validated parameters of the list comments operation.
type CommentListParams struct {
	// Post filters by post ID. Nil means comments across all posts.
	Post *int64 `json:"post,omitempty"`

	// Status filters by comment status (approved, hold, spam, trash).
	Status string `json:"status,omitempty"`

	Search  string `json:"search,omitempty"`
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
	OrderBy string `json:"orderby"`
	Order   string `json:"order"`
}

// CommentGetParams identify a single comment.
type CommentGetParams struct {
	CommentID int64 `json:"comment_id"`
}

// CommentCreateParams are the validated parameters of the create comment operation.
type CommentCreateParams struct {
	Post    int64  `json:"post"`
	Content string `json:"content"`

	// Parent is the parent comment ID for replies; zero for top-level comments.
	Parent int64 `json:"parent,omitempty"`

	// AuthorName and AuthorEmail identify anonymous commenters.
	AuthorName  string `json:"author_name,omitempty"`
	AuthorEmail string `json:"author_email,omitempty"`
}

// CommentUpdateParams are the validated parameters of the update comment
// operation. Only non-nil fields are sent to the remote API.
type CommentUpdateParams struct {
	CommentID int64   `json:"comment_id"`
	Content   *string `json:"content,omitempty"`
	Status    *string `json:"status,omitempty"`
}

// HasChanges reports whether at least one updatable field is set.
func (p CommentUpdateParams) HasChanges() bool {
	return p.Content != nil || p.Status != nil
}

// CommentDeleteParams are the validated parameters of the delete comment operation.
type CommentDeleteParams struct {
	CommentID int64 `json:"comment_id"`
	Force     bool  `json:"force"`
}

// CommentModerateParams are the validated parameters of the moderate comment
// operation. Action is one of approve, hold, spam, trash.
type CommentModerateParams struct {
	CommentID int64  `json:"comment_id"`
	Action    string `json:"action"`
}
