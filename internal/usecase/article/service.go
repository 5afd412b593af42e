package article

import (
	"context"
	"fmt"

	"monfluxrss/internal/common/pagination"
	"monfluxrss/internal/domain/entity"
	"monfluxrss/internal/repository"
)

// Service provides article query use cases.
// It handles business logic for article listings and delegates persistence
// to the repository.
type Service struct {
	Repo repository.ArticleRepository
}

// PaginatedResult represents the result of a paginated query.
// It contains both the data and pagination metadata.
type PaginatedResult struct {
	Data       []repository.ArticleWithSource
	Pagination pagination.Metadata
}

// ListWithSourcePaginated retrieves articles with pagination support,
// newest first. Filters narrow the result set before pagination: Category
// is an exact match on the source category, Query matches title or
// description.
func (s *Service) ListWithSourcePaginated(ctx context.Context, filters repository.ArticleListFilters, params pagination.Params) (*PaginatedResult, error) {
	offset := pagination.CalculateOffset(params.Page, params.Limit)

	total, err := s.Repo.CountArticles(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	articles, err := s.Repo.ListWithSourcePaginated(ctx, filters, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list articles with source paginated: %w", err)
	}

	return &PaginatedResult{
		Data: articles,
		Pagination: pagination.Metadata{
			Total:      total,
			Page:       params.Page,
			Limit:      params.Limit,
			TotalPages: pagination.CalculateTotalPages(total, params.Limit),
		},
	}, nil
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// GetWithSource retrieves a single article by its ID along with the source name.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) GetWithSource(ctx context.Context, id int64) (*entity.Article, string, error) {
	if id <= 0 {
		return nil, "", ErrInvalidArticleID
	}

	article, sourceName, err := s.Repo.GetWithSource(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("get article with source: %w", err)
	}
	if article == nil {
		return nil, "", ErrArticleNotFound
	}
	return article, sourceName, nil
}
