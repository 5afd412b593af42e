// Package pipeline assembles the feed refresh service from its
// infrastructure parts. All three binaries (API server, cron worker,
// one-shot ingest) share this wiring.
package pipeline

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	pgRepo "monfluxrss/internal/infra/adapter/persistence/postgres"
	"monfluxrss/internal/infra/fetcher"
	"monfluxrss/internal/infra/scraper"
	"monfluxrss/internal/pkg/config"
	"monfluxrss/internal/usecase/fetch"
)

// BuildFetchService wires repositories, extractor strategies, the optional
// content fetcher, and the pipeline configuration into a ready-to-run
// fetch.Service.
//
// Environment variables:
//   - RETENTION_DAYS: articles older than this many days are pruned (default: 7)
//   - FEED_FETCH_TIMEOUT: per-source fetch deadline (default: 30s)
//   - FETCH_PARALLELISM: concurrent source crawls (default: 5)
//   - EXTRACTOR_OVERRIDES_FILE: optional YAML file pinning feed URLs to extractors
//   - CONTENT_FETCH_*: see fetcher.LoadConfigFromEnv
func BuildFetchService(logger *slog.Logger, database *sql.DB) (*fetch.Service, error) {
	httpClient := &http.Client{Timeout: 30 * time.Second}

	factory := scraper.NewExtractorFactory(httpClient)
	extractors := factory.CreateExtractors()

	overrides, err := scraper.LoadExtractorOverrides(os.Getenv("EXTRACTOR_OVERRIDES_FILE"))
	if err != nil {
		return nil, fmt.Errorf("load extractor overrides: %w", err)
	}
	if len(overrides) > 0 {
		logger.Info("extractor overrides loaded", slog.Int("count", len(overrides)))
	}

	contentCfg, err := fetcher.LoadConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("load content fetch config: %w", err)
	}
	if err := contentCfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate content fetch config: %w", err)
	}

	var contentFetcher fetch.ContentFetcher
	if contentCfg.Enabled {
		contentFetcher = fetcher.NewReadabilityFetcher(contentCfg)
		logger.Info("content enhancement enabled",
			slog.Int("threshold", contentCfg.Threshold),
			slog.Duration("timeout", contentCfg.Timeout))
	}

	pipelineCfg := fetch.Config{
		ContentThreshold: contentCfg.Threshold,
	}

	retention := config.LoadEnvInt("RETENTION_DAYS", 7, func(v int) error {
		return config.ValidateIntRange(v, 1, 365)
	})
	pipelineCfg.RetentionDays = retention.Value.(int)

	timeout := config.LoadEnvDuration("FEED_FETCH_TIMEOUT", 30*time.Second, func(d time.Duration) error {
		return config.ValidateDuration(d, time.Second, 10*time.Minute)
	})
	pipelineCfg.FetchTimeout = timeout.Value.(time.Duration)

	parallelism := config.LoadEnvInt("FETCH_PARALLELISM", 5, func(v int) error {
		return config.ValidateIntRange(v, 1, 50)
	})
	pipelineCfg.Parallelism = parallelism.Value.(int)

	for _, result := range []config.ConfigLoadResult{retention, timeout, parallelism} {
		for _, warning := range result.Warnings {
			logger.Warn("pipeline configuration fallback applied", slog.String("warning", warning))
		}
	}

	svc := fetch.NewService(
		pgRepo.NewSourceRepo(database),
		pgRepo.NewArticleRepo(database),
		scraper.NewRSSFetcher(httpClient),
		extractors,
		contentFetcher,
		overrides,
		pipelineCfg,
	)
	return &svc, nil
}
