// SPDX-License-Identifier: Apache-2.0

package models

// Comment is a WordPress comment as returned by /wp/v2/comments.
type Comment struct {
	ID          int64    `json:"id"`
	Post        int64    `json:"post"`
	Parent      int64    `json:"parent"`
	Author      int64    `json:"author"`
	AuthorName  string   `json:"author_name"`
	AuthorEmail string   `json:"author_email"`
	AuthorURL   string   `json:"author_url"`
	Date        string   `json:"date"`
	Status      string   `json:"status"`
	Link        string   `json:"link"`
	Content     Rendered `json:"content"`
}

// CommentView is the compact comment representation returned to MCP callers.
type CommentView struct {
	ID          int64  `json:"id"`
	Post        int64  `json:"post"`
	Parent      int64  `json:"parent"`
	Author      int64  `json:"author"`
	AuthorName  string `json:"author_name"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	Link        string `json:"link"`
	Content     string `json:"content,omitempty"`
	AuthorEmail string `json:"author_email,omitempty"`
	AuthorURL   string `json:"author_url,omitempty"`
}

// CommentListResult is the result of the list comments operation.
type CommentListResult struct {
	Comments []CommentView `json:"comments"`
	Page     int           `json:"page"`
	PerPage  int           `json:"per_page"`
}

// CommentResult wraps a single comment.
type CommentResult struct {
	Comment CommentView `json:"comment"`
}
