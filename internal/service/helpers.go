// SPDX-License-Identifier: Apache-2.0

package service

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/crunchtools/mcp-wordpress/internal/validators"
	"github.com/crunchtools/mcp-wordpress/models"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
)

// normalizePaging fills paging defaults and clamps the page size to the
// ceiling the remote API enforces.
func normalizePaging(page, perPage int) (int, int) {
	if page <= 0 {
		page = defaultPage
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > validators.MaxPerPage {
		perPage = validators.MaxPerPage
	}
	return page, perPage
}

func setPaging(q url.Values, page, perPage int) {
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
}

func setOrdering(q url.Values, orderBy, order string) {
	if orderBy != "" {
		q.Set("orderby", orderBy)
	}
	if order != "" {
		q.Set("order", order)
	}
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// embeddedAuthorName extracts the author display name included by _embed.
func embeddedAuthorName(e *models.Embedded) string {
	if e == nil || len(e.Author) == 0 {
		return ""
	}
	return e.Author[0].Name
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func postView(p models.Post, includeContent bool) models.PostView {
	view := models.PostView{
		ID:            p.ID,
		Title:         p.Title.String(),
		Slug:          p.Slug,
		Status:        p.Status,
		Date:          p.Date,
		Modified:      p.Modified,
		Link:          p.Link,
		Author:        p.Author,
		AuthorName:    embeddedAuthorName(p.Embedded),
		Excerpt:       p.Excerpt.String(),
		Categories:    p.Categories,
		Tags:          p.Tags,
		FeaturedMedia: p.FeaturedMedia,
		Format:        p.Format,
	}
	if includeContent {
		view.Content = p.Content.String()
	}
	return view
}

func pageView(p models.Page, includeContent bool) models.PageView {
	view := models.PageView{
		ID:            p.ID,
		Title:         p.Title.String(),
		Slug:          p.Slug,
		Status:        p.Status,
		Date:          p.Date,
		Modified:      p.Modified,
		Link:          p.Link,
		Author:        p.Author,
		AuthorName:    embeddedAuthorName(p.Embedded),
		Excerpt:       p.Excerpt.String(),
		Parent:        p.Parent,
		MenuOrder:     p.MenuOrder,
		Template:      p.Template,
		FeaturedMedia: p.FeaturedMedia,
	}
	if includeContent {
		view.Content = p.Content.String()
	}
	return view
}

func mediaView(m models.Media, detailed bool) models.MediaView {
	view := models.MediaView{
		ID:        m.ID,
		Title:     m.Title.String(),
		Slug:      m.Slug,
		Date:      m.Date,
		Modified:  m.Modified,
		Link:      m.Link,
		SourceURL: m.SourceURL,
		MimeType:  m.MimeType,
		MediaType: m.MediaType,
		AltText:   m.AltText,
	}
	if !detailed {
		return view
	}

	view.Caption = m.Caption.String()
	view.Description = m.Description.String()
	view.Width = m.MediaDetails.Width
	view.Height = m.MediaDetails.Height
	view.File = m.MediaDetails.File
	if len(m.MediaDetails.Sizes) > 0 {
		view.Sizes = make(map[string]models.MediaSizeView, len(m.MediaDetails.Sizes))
		for name, size := range m.MediaDetails.Sizes {
			view.Sizes[name] = models.MediaSizeView{
				Width:  size.Width,
				Height: size.Height,
				URL:    size.SourceURL,
			}
		}
	}
	return view
}

func commentView(c models.Comment, detailed bool) models.CommentView {
	view := models.CommentView{
		ID:         c.ID,
		Post:       c.Post,
		Parent:     c.Parent,
		Author:     c.Author,
		AuthorName: c.AuthorName,
		Date:       c.Date,
		Status:     c.Status,
		Link:       c.Link,
		Content:    c.Content.String(),
	}
	if detailed {
		view.AuthorEmail = c.AuthorEmail
		view.AuthorURL = c.AuthorURL
	}
	return view
}

func revisionView(r models.Revision) models.RevisionView {
	return models.RevisionView{
		ID:       r.ID,
		Author:   r.Author,
		Date:     r.Date,
		Modified: r.Modified,
		Title:    r.Title.String(),
	}
}
