package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"monfluxrss/internal/domain/entity"
	"monfluxrss/internal/repository"
)

type ArticleRepo struct {
	db           *sql.DB
	queryBuilder *ArticleQueryBuilder
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

// ListWithSourcePaginated retrieves paginated articles with their source name
// and category, newest first. Filters are applied before LIMIT/OFFSET.
func (repo *ArticleRepo) ListWithSourcePaginated(ctx context.Context, filters repository.ArticleListFilters, offset, limit int) ([]repository.ArticleWithSource, error) {
	whereClause, args := repo.queryBuilder.BuildWhereClause(filters, "a", "s")

	paramIndex := len(args) + 1
	args = append(args, limit, offset)

	query := fmt.Sprintf(`
SELECT a.id, a.source_id, a.title, a.description, a.link, a.guid, a.published_at, s.name AS source_name, s.category AS source_category
FROM articles a
INNER JOIN sources s ON a.source_id = s.id
%s
ORDER BY a.published_at DESC
LIMIT $%d OFFSET $%d`, whereClause, paramIndex, paramIndex+1)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListWithSourcePaginated: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.ArticleWithSource, 0, limit)
	for rows.Next() {
		var article entity.Article
		var sourceName, sourceCategory string
		if err := rows.Scan(&article.ID, &article.SourceID, &article.Title,
			&article.Description, &article.Link, &article.GUID, &article.PublishedAt,
			&sourceName, &sourceCategory); err != nil {
			return nil, fmt.Errorf("ListWithSourcePaginated: Scan: %w", err)
		}
		result = append(result, repository.ArticleWithSource{
			Article:        &article,
			SourceName:     sourceName,
			SourceCategory: sourceCategory,
		})
	}
	return result, rows.Err()
}

// CountArticles returns the number of articles matching the filters.
func (repo *ArticleRepo) CountArticles(ctx context.Context, filters repository.ArticleListFilters) (int64, error) {
	whereClause, args := repo.queryBuilder.BuildWhereClause(filters, "a", "s")

	query := fmt.Sprintf(`
SELECT COUNT(*)
FROM articles a
INNER JOIN sources s ON a.source_id = s.id
%s`, whereClause)

	var count int64
	err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("CountArticles: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT id, source_id, title, description, link, guid, published_at
FROM articles
WHERE id = $1
LIMIT 1`
	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&article.ID, &article.SourceID, &article.Title, &article.Description,
			&article.Link, &article.GUID, &article.PublishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &article, nil
}

func (repo *ArticleRepo) GetWithSource(ctx context.Context, id int64) (*entity.Article, string, error) {
	const query = `
SELECT a.id, a.source_id, a.title, a.description, a.link, a.guid, a.published_at, s.name AS source_name
FROM articles a
INNER JOIN sources s ON a.source_id = s.id
WHERE a.id = $1
LIMIT 1`
	var article entity.Article
	var sourceName string
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&article.ID, &article.SourceID, &article.Title, &article.Description,
			&article.Link, &article.GUID, &article.PublishedAt, &sourceName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("GetWithSource: %w", err)
	}
	return &article, sourceName, nil
}

// ExistsByGUIDBatch checks which guids are already stored in one round trip.
func (repo *ArticleRepo) ExistsByGUIDBatch(ctx context.Context, guids []string) (map[string]bool, error) {
	if len(guids) == 0 {
		return make(map[string]bool), nil
	}

	const query = `SELECT guid FROM articles WHERE guid = ANY($1)`
	rows, err := repo.db.QueryContext(ctx, query, guids)
	if err != nil {
		return nil, fmt.Errorf("ExistsByGUIDBatch: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]bool)
	for rows.Next() {
		var guid string
		if err := rows.Scan(&guid); err != nil {
			return nil, fmt.Errorf("ExistsByGUIDBatch: Scan: %w", err)
		}
		result[guid] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ExistsByGUIDBatch: rows.Err: %w", err)
	}

	return result, nil
}

// CreateBatch inserts all articles inside one transaction. The guid unique
// constraint is the safety net for concurrent runs: a row whose guid landed
// in the meantime is skipped via ON CONFLICT DO NOTHING instead of aborting
// the whole batch.
func (repo *ArticleRepo) CreateBatch(ctx context.Context, articles []*entity.Article) (int64, error) {
	if len(articles) == 0 {
		return 0, nil
	}

	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("CreateBatch: BeginTx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const query = `
INSERT INTO articles (source_id, title, description, link, guid, published_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (guid) DO NOTHING`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("CreateBatch: Prepare: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	var inserted int64
	for _, article := range articles {
		res, err := stmt.ExecContext(ctx,
			article.SourceID, article.Title, article.Description,
			article.Link, article.GUID, article.PublishedAt,
		)
		if err != nil {
			return 0, fmt.Errorf("CreateBatch: Exec: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += n
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("CreateBatch: Commit: %w", err)
	}
	return inserted, nil
}

// DeleteOlderThan removes every article published before the cutoff.
func (repo *ArticleRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	const query = `DELETE FROM articles WHERE published_at < $1`
	res, err := repo.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("DeleteOlderThan: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("DeleteOlderThan: RowsAffected: %w", err)
	}
	return n, nil
}
