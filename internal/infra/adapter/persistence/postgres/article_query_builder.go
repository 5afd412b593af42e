// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"fmt"
	"strings"

	"monfluxrss/internal/repository"
)

// ArticleQueryBuilder builds WHERE clauses for article listing in PostgreSQL.
// The builder is shared between the COUNT and SELECT queries so both always
// see the same filter logic. It uses PostgreSQL-specific features like ILIKE
// and numbered placeholders ($1, $2, etc.).
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// escapeILIKE escapes the ILIKE wildcard characters in user input and wraps
// the result in %...% for substring matching.
func escapeILIKE(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// BuildWhereClause builds the WHERE clause and arguments for article listing.
// The category filter matches the source category exactly; the free-text query
// matches title OR description case-insensitively.
// Returns an empty string when no filter is set.
func (qb *ArticleQueryBuilder) BuildWhereClause(filters repository.ArticleListFilters, articleAlias, sourceAlias string) (clause string, args []any) {
	var conditions []string
	paramIndex := 1

	col := func(alias, name string) string {
		if alias == "" {
			return name
		}
		return alias + "." + name
	}

	if filters.Category != "" {
		conditions = append(conditions, fmt.Sprintf("%s = $%d", col(sourceAlias, "category"), paramIndex))
		args = append(args, filters.Category)
		paramIndex++
	}

	if filters.Query != "" {
		conditions = append(conditions, fmt.Sprintf("(%s ILIKE $%d OR %s ILIKE $%d)",
			col(articleAlias, "title"), paramIndex,
			col(articleAlias, "description"), paramIndex))
		args = append(args, escapeILIKE(filters.Query))
	}

	if len(conditions) == 0 {
		return "", args
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}
