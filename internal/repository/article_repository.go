package repository

import (
	"context"
	"time"

	"monfluxrss/internal/domain/entity"
)

// ArticleWithSource represents an article along with its source name and category.
type ArticleWithSource struct {
	Article        *entity.Article
	SourceName     string
	SourceCategory string
}

// ArticleListFilters contains optional filters for article listing.
type ArticleListFilters struct {
	Category string // Optional: exact match on the source category
	Query    string // Optional: free text, matches title OR description
}

type ArticleRepository interface {
	// ListWithSourcePaginated retrieves paginated articles with their source
	// names, newest first (published_at DESC). Filters narrow the result set
	// before pagination is applied.
	ListWithSourcePaginated(ctx context.Context, filters ArticleListFilters, offset, limit int) ([]ArticleWithSource, error)
	// CountArticles returns the number of articles matching the filters.
	// This is used for calculating pagination metadata (total pages, etc.).
	CountArticles(ctx context.Context, filters ArticleListFilters) (int64, error)
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// GetWithSource retrieves an article by ID and includes the source name.
	// Returns (nil, "", nil) if the article is not found.
	GetWithSource(ctx context.Context, id int64) (*entity.Article, string, error)
	// ExistsByGUIDBatch reports which of the given guids are already stored.
	// One round trip for the whole batch, avoiding an N+1 check per item.
	ExistsByGUIDBatch(ctx context.Context, guids []string) (map[string]bool, error)
	// CreateBatch persists all articles in a single transaction. Rows whose
	// guid already exists are skipped; the rest are inserted atomically.
	// Returns the number of rows actually inserted.
	CreateBatch(ctx context.Context, articles []*entity.Article) (int64, error)
	// DeleteOlderThan removes every article published before the cutoff and
	// returns the number of rows deleted.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
