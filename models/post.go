// SPDX-License-Identifier: Apache-2.0

// Package models defines the WordPress REST API resource types and the
// validated per-operation parameter records exchanged between the MCP tool
// layer, the validators, and the API gateway.
package models

// Post is a WordPress post as returned by /wp/v2/posts.
// Unknown response fields are ignored for forward compatibility.
type Post struct {
	ID            int64     `json:"id"`
	Date          string    `json:"date"`
	Modified      string    `json:"modified"`
	Slug          string    `json:"slug"`
	Status        string    `json:"status"`
	Link          string    `json:"link"`
	Title         Rendered  `json:"title"`
	Content       Rendered  `json:"content"`
	Excerpt       Rendered  `json:"excerpt"`
	Author        int64     `json:"author"`
	FeaturedMedia int64     `json:"featured_media"`
	Format        string    `json:"format"`
	Categories    []int64   `json:"categories"`
	Tags          []int64   `json:"tags"`
	Embedded      *Embedded `json:"_embedded,omitempty"`
}

// Embedded carries data included by the _embed query parameter.
type Embedded struct {
	Author []EmbeddedAuthor `json:"author"`
}

// EmbeddedAuthor is the author record embedded into post and page responses.
type EmbeddedAuthor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// PostView is the compact post representation returned to MCP callers.
// Content is populated only for single-item reads.
type PostView struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Slug          string  `json:"slug"`
	Status        string  `json:"status"`
	Date          string  `json:"date"`
	Modified      string  `json:"modified"`
	Link          string  `json:"link"`
	Author        int64   `json:"author"`
	AuthorName    string  `json:"author_name,omitempty"`
	Excerpt       string  `json:"excerpt"`
	Categories    []int64 `json:"categories"`
	Tags          []int64 `json:"tags"`
	FeaturedMedia int64   `json:"featured_media"`
	Format        string  `json:"format"`
	Content       string  `json:"content,omitempty"`
}

// PostListResult is the result of the list and search post operations.
type PostListResult struct {
	Posts   []PostView `json:"posts"`
	Page    int        `json:"page"`
	PerPage int        `json:"per_page"`
}

// PostResult wraps a single post for get/create/update results.
type PostResult struct {
	Post PostView `json:"post"`
}

// Revision is a post or page revision as returned by the revisions endpoint.
type Revision struct {
	ID       int64    `json:"id"`
	Author   int64    `json:"author"`
	Date     string   `json:"date"`
	Modified string   `json:"modified"`
	Title    Rendered `json:"title"`
	Content  Rendered `json:"content"`
	Excerpt  Rendered `json:"excerpt"`
}

// RevisionView is the compact revision representation for list results.
type RevisionView struct {
	ID       int64  `json:"id"`
	Author   int64  `json:"author"`
	Date     string `json:"date"`
	Modified string `json:"modified"`
	Title    string `json:"title"`
}

// RevisionListResult is the result of the list revision operations.
type RevisionListResult struct {
	Revisions []RevisionView `json:"revisions"`
	ParentID  int64          `json:"parent_id"`
}

// RevisionDetail is a full revision including content.
type RevisionDetail struct {
	ID      int64  `json:"id"`
	Author  int64  `json:"author"`
	Date    string `json:"date"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Excerpt string `json:"excerpt"`
}

// RevisionResult wraps a single revision.
type RevisionResult struct {
	Revision RevisionDetail `json:"revision"`
}

// Term is a category or tag as returned by /wp/v2/categories and /wp/v2/tags.
type Term struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Count       int64  `json:"count"`
	Parent      int64  `json:"parent"`
}

// CategoryListResult is the result of the list categories operation.
type CategoryListResult struct {
	Categories []Term `json:"categories"`
}

// TagListResult is the result of the list tags operation.
type TagListResult struct {
	Tags []Term `json:"tags"`
}

// DeleteResult confirms a delete or trash operation.
type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	ID      int64  `json:"id"`
}
