// Package source provides HTTP handlers for source management endpoints.
// Listing is open to anonymous readers; registering and deleting sources
// require an authenticated administrator.
package source

import (
	"time"

	"monfluxrss/internal/domain/entity"
)

// DTO represents the JSON structure for source data transfer.
type DTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Category  string    `json:"category"`
	Extractor string    `json:"extractor"`
	CreatedAt time.Time `json:"created_at"`
}

func fromEntity(e *entity.Source) DTO {
	return DTO{
		ID:        e.ID,
		Name:      e.Name,
		URL:       e.URL,
		Category:  e.Category,
		Extractor: e.Extractor,
		CreatedAt: e.CreatedAt,
	}
}
