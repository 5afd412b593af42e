// Package entity defines the core domain entities and validation logic for the
// application. It contains the fundamental business objects such as Article and
// Source, along with their validation rules and domain-specific errors.
package entity

import "time"

// DefaultTitle is stored when a feed item carries no usable title.
const DefaultTitle = "Untitled"

// Article represents a single aggregated news article.
// Articles are created by the ingestion pipeline and never updated;
// the retention sweep removes them in bulk once they age out.
type Article struct {
	ID          int64
	SourceID    int64
	Title       string
	Description string
	Link        string
	GUID        string
	PublishedAt time.Time
}

// Normalize fills the defaulting rules for fields a feed may omit:
// an empty title becomes DefaultTitle and an empty GUID falls back to
// the article link.
func (a *Article) Normalize() {
	if a.Title == "" {
		a.Title = DefaultTitle
	}
	if a.GUID == "" {
		a.GUID = a.Link
	}
}
