// Package article provides HTTP handlers for the read-only article API.
// Articles are produced by the ingestion pipeline; this package only
// exposes listing, detail lookup, and the manual refresh trigger.
package article

import (
	"time"

	"monfluxrss/internal/repository"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID          int64     `json:"id"`
	SourceID    int64     `json:"source_id"`
	SourceName  string    `json:"source_name,omitempty"`
	Category    string    `json:"category,omitempty"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	PublishedAt time.Time `json:"published_at"`
}

func fromArticleWithSource(item repository.ArticleWithSource) DTO {
	return DTO{
		ID:          item.Article.ID,
		SourceID:    item.Article.SourceID,
		SourceName:  item.SourceName,
		Category:    item.SourceCategory,
		Title:       item.Article.Title,
		Link:        item.Article.Link,
		Description: item.Article.Description,
		PublishedAt: item.Article.PublishedAt,
	}
}
