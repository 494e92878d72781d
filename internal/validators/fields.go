// SPDX-License-Identifier: Apache-2.0

package validators

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping); they also name the offending field in
// FieldError values.
const (
	FieldTitle         = "title"
	FieldContent       = "content"
	FieldStatus        = "status"
	FieldExcerpt       = "excerpt"
	FieldSlug          = "slug"
	FieldDate          = "date"
	FieldFormat        = "format"
	FieldCategories    = "categories"
	FieldTags          = "tags"
	FieldFeaturedMedia = "featured_media"
	FieldParent        = "parent"
	FieldMenuOrder     = "menu_order"
	FieldTemplate      = "template"

	FieldPage    = "page"
	FieldPerPage = "per_page"
	FieldOrderBy = "orderby"
	FieldOrder   = "order"
	FieldSearch  = "search"
	FieldKeyword = "keyword"

	FieldPostID     = "post_id"
	FieldPageID     = "page_id"
	FieldMediaID    = "media_id"
	FieldCommentID  = "comment_id"
	FieldRevisionID = "revision_id"
	FieldPost       = "post"

	FieldMediaType   = "media_type"
	FieldMimeType    = "mime_type"
	FieldFilePath    = "file_path"
	FieldAltText     = "alt_text"
	FieldCaption     = "caption"
	FieldDescription = "description"
	FieldSize        = "size"

	FieldAction      = "action"
	FieldAuthorName  = "author_name"
	FieldAuthorEmail = "author_email"
)

// fieldSet scopes validation to a subset of fields. A nil set means all
// fields are checked.
type fieldSet map[string]struct{}

func newFieldSet(fields []string) fieldSet {
	if len(fields) == 0 {
		return nil
	}
	s := make(fieldSet, len(fields))
	for _, f := range fields {
		s[f] = struct{}{}
	}
	return s
}

func (s fieldSet) has(field string) bool {
	if s == nil {
		return true
	}
	_, ok := s[field]
	return ok
}
