// SPDX-License-Identifier: Apache-2.0

package models

// Page is a WordPress page as returned by /wp/v2/pages.
type Page struct {
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
	Parent        int64     `json:"parent"`
	MenuOrder     int64     `json:"menu_order"`
	Template      string    `json:"template"`
	FeaturedMedia int64     `json:"featured_media"`
	Embedded      *Embedded `json:"_embedded,omitempty"`
}

// PageView is the compact page representation returned to MCP callers.
type PageView struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Status        string `json:"status"`
	Date          string `json:"date"`
	Modified      string `json:"modified"`
	Link          string `json:"link"`
	Author        int64  `json:"author"`
	AuthorName    string `json:"author_name,omitempty"`
	Excerpt       string `json:"excerpt"`
	Parent        int64  `json:"parent"`
	MenuOrder     int64  `json:"menu_order"`
	Template      string `json:"template,omitempty"`
	FeaturedMedia int64  `json:"featured_media"`
	Content       string `json:"content,omitempty"`
}

// PageListResult is the result of the list pages operation.
type PageListResult struct {
	Pages   []PageView `json:"pages"`
	Page    int        `json:"page"`
	PerPage int        `json:"per_page"`
}

// PageResult wraps a single page for get/create/update results.
type PageResult struct {
	Page PageView `json:"page"`
}
