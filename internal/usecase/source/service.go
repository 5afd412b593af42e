package source

import (
	"context"
	"errors"
	"fmt"

	"monfluxrss/internal/domain/entity"
	"monfluxrss/internal/repository"
)

// CreateInput represents the input parameters for registering a new source.
// An empty Extractor selects the generic RSS strategy.
type CreateInput struct {
	Name      string
	URL       string
	Category  string
	Extractor string
}

// Service provides source management use cases.
// It handles business logic for source operations and delegates persistence to the repository.
type Service struct {
	Repo repository.SourceRepository
}

// List retrieves all sources from the repository.
// Returns an error if the repository operation fails.
func (s *Service) List(ctx context.Context) ([]*entity.Source, error) {
	sources, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	return sources, nil
}

// Get retrieves a single source by its ID.
// Returns ErrSourceNotFound if the source does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Source, error) {
	if id <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}

	src, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get source: %w", err)
	}
	if src == nil {
		return nil, ErrSourceNotFound
	}
	return src, nil
}

// Create registers a new source with the provided input.
// It validates the name, feed URL, category, and extractor before creating
// the source; the created source carries the generated ID on return.
// Returns a ValidationError if any input field is invalid and
// ErrDuplicateSource if the feed URL is already registered.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Source, error) {
	src := &entity.Source{
		Name:      in.Name,
		URL:       in.URL,
		Category:  in.Category,
		Extractor: in.Extractor,
	}
	if err := src.Validate(); err != nil {
		return nil, fmt.Errorf("validate source: %w", err)
	}

	if err := s.Repo.Create(ctx, src); err != nil {
		if errors.Is(err, repository.ErrDuplicateURL) {
			return nil, ErrDuplicateSource
		}
		return nil, fmt.Errorf("create source: %w", err)
	}
	return src, nil
}

// Delete removes a source by its ID. Articles referencing the source are
// removed with it.
// Returns a ValidationError if the ID is not positive and ErrSourceNotFound
// if no source has that ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return &entity.ValidationError{Field: "id", Message: "must be positive"}
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrSourceNotFound
		}
		return fmt.Errorf("delete source: %w", err)
	}
	return nil
}
