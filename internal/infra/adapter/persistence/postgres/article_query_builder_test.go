package postgres

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"monfluxrss/internal/repository"
)

func TestArticleQueryBuilder_BuildWhereClause(t *testing.T) {
	qb := NewArticleQueryBuilder()

	tests := []struct {
		name       string
		filters    repository.ArticleListFilters
		wantClause string
		wantArgs   []any
	}{
		{
			name:       "no filters",
			filters:    repository.ArticleListFilters{},
			wantClause: "",
			wantArgs:   nil,
		},
		{
			name:       "category only",
			filters:    repository.ArticleListFilters{Category: "gaming"},
			wantClause: "WHERE s.category = $1",
			wantArgs:   []any{"gaming"},
		},
		{
			name:       "query only",
			filters:    repository.ArticleListFilters{Query: "linux"},
			wantClause: "WHERE (a.title ILIKE $1 OR a.description ILIKE $1)",
			wantArgs:   []any{"%linux%"},
		},
		{
			name:       "category and query",
			filters:    repository.ArticleListFilters{Category: "science", Query: "fusée"},
			wantClause: "WHERE s.category = $1 AND (a.title ILIKE $2 OR a.description ILIKE $2)",
			wantArgs:   []any{"science", "%fusée%"},
		},
		{
			name:       "wildcards in query are escaped",
			filters:    repository.ArticleListFilters{Query: "100%_sure"},
			wantClause: "WHERE (a.title ILIKE $1 OR a.description ILIKE $1)",
			wantArgs:   []any{`%100\%\_sure%`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := qb.BuildWhereClause(tt.filters, "a", "s")
			if clause != tt.wantClause {
				t.Errorf("clause=%q want %q", clause, tt.wantClause)
			}
			if diff := cmp.Diff(tt.wantArgs, args); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestArticleQueryBuilder_NoAlias(t *testing.T) {
	qb := NewArticleQueryBuilder()
	clause, args := qb.BuildWhereClause(repository.ArticleListFilters{Query: "go"}, "", "")
	if clause != "WHERE (title ILIKE $1 OR description ILIKE $1)" {
		t.Fatalf("clause=%q", clause)
	}
	if len(args) != 1 {
		t.Fatalf("args=%v", args)
	}
}
