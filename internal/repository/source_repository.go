package repository

import (
	"context"
	"errors"

	"monfluxrss/internal/domain/entity"
)

// ErrDuplicateURL is returned by Create when a source with the same feed URL
// is already registered.
var ErrDuplicateURL = errors.New("source url already registered")

type SourceRepository interface {
	Get(ctx context.Context, id int64) (*entity.Source, error)
	List(ctx context.Context) ([]*entity.Source, error)
	Create(ctx context.Context, source *entity.Source) error
	Delete(ctx context.Context, id int64) error
}
