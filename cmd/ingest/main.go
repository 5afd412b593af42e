// Command ingest runs a single feed refresh and exits. Useful for cron-less
// deployments and for seeding a fresh database.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"monfluxrss/internal/handler/http/respond"
	"monfluxrss/internal/infra/db"
	"monfluxrss/internal/infra/pipeline"
	"monfluxrss/internal/observability/logging"
)

func main() {
	timeout := flag.Duration("timeout", 30*time.Minute, "overall run timeout")
	flag.Parse()

	logger := logging.NewLogger()

	database := db.Open()
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	if err := db.MigrateUp(database); err != nil {
		logger.Error("migration failed", slog.Any("error", err))
		os.Exit(1)
	}

	svc, err := pipeline.BuildFetchService(logger, database)
	if err != nil {
		logger.Error("failed to build fetch service", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	stats, err := svc.Run(ctx)
	if err != nil {
		logger.Error("refresh failed", slog.String("error", respond.SanitizeError(err)))
		os.Exit(1)
	}

	logger.Info("refresh completed",
		slog.Int("sources", stats.Sources),
		slog.Int64("feed_items", stats.FeedItems),
		slog.Int64("inserted", stats.Inserted),
		slog.Int64("duplicated", stats.Duplicated),
		slog.Int64("stale", stats.Stale),
		slog.Int64("pruned", stats.Pruned),
		slog.Duration("duration", stats.Duration),
	)
}
