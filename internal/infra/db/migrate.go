package db

import (
	"database/sql"
	_ "embed"
)

//go:embed seeds/sources.sql
var seedSourcesSQL string

func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS sources (
    id         SERIAL PRIMARY KEY,
    name       TEXT NOT NULL,
    url        TEXT NOT NULL UNIQUE,
    category   VARCHAR(20) NOT NULL,
    extractor  VARCHAR(20) NOT NULL DEFAULT 'rss',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id           SERIAL PRIMARY KEY,
    source_id    INTEGER NOT NULL REFERENCES sources(id) ON DELETE CASCADE,
    title        TEXT NOT NULL,
    description  TEXT NOT NULL DEFAULT '',
    link         TEXT NOT NULL,
    guid         TEXT NOT NULL UNIQUE,
    published_at TIMESTAMPTZ NOT NULL
)`); err != nil {
		return err
	}

	indexes := []string{
		// every listing query orders by published_at DESC
		`CREATE INDEX IF NOT EXISTS idx_articles_published_at ON articles(published_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_source_id ON articles(source_id)`,
		// category filter joins through sources
		`CREATE INDEX IF NOT EXISTS idx_sources_category ON sources(category)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// pg_trgm speeds up the ILIKE free-text search; ignore the error when the
	// extension already exists or the role lacks superuser rights.
	_, _ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`)

	searchIndexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_articles_title_gin ON articles USING gin(title gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_description_gin ON articles USING gin(description gin_trgm_ops)`,
	}
	for _, idx := range searchIndexes {
		// fails without pg_trgm, which is acceptable
		_, _ = db.Exec(idx)
	}

	// category is a closed set, enforced at the schema level too
	_, _ = db.Exec(`
DO $$
BEGIN
    IF NOT EXISTS (
        SELECT 1 FROM pg_constraint
        WHERE conname = 'chk_source_category'
    ) THEN
        ALTER TABLE sources ADD CONSTRAINT chk_source_category
        CHECK (category IN ('tech-watch', 'gaming', 'cooking', 'science'));
    END IF;
END $$;
`)

	if _, err := db.Exec(seedSourcesSQL); err != nil {
		return err
	}

	return nil
}

// MigrateDown rolls back the database schema.
// Use with caution: this deletes all aggregated data.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP TABLE IF EXISTS articles CASCADE`,
		`DROP TABLE IF EXISTS sources CASCADE`,
	}
	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
