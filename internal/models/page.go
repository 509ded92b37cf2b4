// Package models defines the domain types for Ansuz.
package models

import (
	"time"

	"github.com/starford/ansuz/internal/frontmatter"
)

// ParentPage is a section index page. It is created with default content when
// absent and never touched when it already exists.
type ParentPage struct {
	Path        string
	Frontmatter []frontmatter.Field
	Body        string
}

// LeafPage is an individual documentation page. It must already exist; the
// applicator only prepends front matter, it never creates it.
type LeafPage struct {
	Path        string
	Frontmatter []frontmatter.Field
}

// PageMetadata is a lightweight representation returned by list operations.
type PageMetadata struct {
	Path      string
	Checksum  string
	UpdatedAt time.Time
}
