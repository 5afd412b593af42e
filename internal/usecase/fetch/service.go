package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"monfluxrss/internal/domain/entity"
	"monfluxrss/internal/observability/metrics"
	"monfluxrss/internal/repository"

	"golang.org/x/sync/errgroup"
)

// Defaults applied by NewService when the corresponding Config field is zero.
const (
	defaultRetentionDays    = 7
	defaultFetchTimeout     = 30 * time.Second
	defaultParallelism      = 5
	defaultContentThreshold = 300
)

// futureTolerance bounds how far in the future a feed's publication date may
// sit before it is treated as bogus and clamped to the fetch time.
const futureTolerance = 24 * time.Hour

// FeedItem represents a single item pulled out of a feed by an extractor.
// PublishedAt is nil when the feed omits the date or it could not be parsed.
type FeedItem struct {
	Title       string
	Link        string
	GUID        string
	Description string
	PublishedAt *time.Time
}

// FeedFetcher is an interface for fetching feed items from a URL.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) ([]FeedItem, error)
}

// Config controls the behavior of a refresh run.
type Config struct {
	RetentionDays    int           // Articles older than this are pruned; incoming items this old are discarded
	FetchTimeout     time.Duration // Per-source fetch deadline
	Parallelism      int           // Maximum number of sources crawled concurrently
	ContentThreshold int           // Minimum description length before the article page is fetched
}

// Service runs the feed refresh pipeline. It orchestrates retention cleanup,
// crawling every registered source, normalizing the fetched items, and
// persisting new articles in a single batch.
type Service struct {
	SourceRepo     repository.SourceRepository
	ArticleRepo    repository.ArticleRepository
	FeedFetcher    FeedFetcher            // Generic RSS/Atom fetcher, the default strategy
	Extractors     map[string]FeedFetcher // Named extractor strategies (entity.ExtractorRawXML etc.)
	ContentFetcher ContentFetcher         // Optional description enhancement, nil to disable
	Overrides      map[string]string      // Feed URL -> extractor name, takes precedence over the source column
	config         Config
}

// NewService creates a fetch Service with the provided dependencies.
// Zero-valued Config fields are replaced with defaults; extractors,
// contentFetcher, and overrides may be nil to disable the feature.
func NewService(
	sourceRepo repository.SourceRepository,
	articleRepo repository.ArticleRepository,
	feedFetcher FeedFetcher,
	extractors map[string]FeedFetcher,
	contentFetcher ContentFetcher,
	overrides map[string]string,
	config Config,
) Service {
	if config.RetentionDays <= 0 {
		config.RetentionDays = defaultRetentionDays
	}
	if config.FetchTimeout <= 0 {
		config.FetchTimeout = defaultFetchTimeout
	}
	if config.Parallelism <= 0 {
		config.Parallelism = defaultParallelism
	}
	if config.ContentThreshold <= 0 {
		config.ContentThreshold = defaultContentThreshold
	}
	return Service{
		SourceRepo:     sourceRepo,
		ArticleRepo:    articleRepo,
		FeedFetcher:    feedFetcher,
		Extractors:     extractors,
		ContentFetcher: contentFetcher,
		Overrides:      overrides,
		config:         config,
	}
}

// RunStats contains statistics about a single refresh run.
type RunStats struct {
	Sources    int
	Pruned     int64
	FeedItems  int64
	Inserted   int64
	Duplicated int64
	Stale      int64
	Duration   time.Duration
}

// Run executes one full refresh:
//  1. Deletes articles older than the retention window
//  2. Crawls every registered source in parallel; a broken feed contributes
//     zero items and never aborts the run
//  3. Normalizes the fetched items (defaults, date clamping, freshness filter)
//  4. Deduplicates by guid, both within the run and against stored articles
//  5. Persists the remaining articles in a single batch
//
// Database failures are fatal and abort the run; fetch failures are isolated
// per source.
func (s *Service) Run(ctx context.Context) (*RunStats, error) {
	logger := slog.Default()
	start := time.Now()
	stats := &RunStats{}

	cutoff := start.Add(-time.Duration(s.config.RetentionDays) * 24 * time.Hour)

	pruned, err := s.ArticleRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("prune old articles: %w", err)
	}
	stats.Pruned = pruned
	metrics.RecordArticlesPruned(pruned)

	srcs, err := s.SourceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	stats.Sources = len(srcs)

	fetched := s.fetchAll(ctx, srcs)

	// Staging is sequential: earlier sources win guid collisions within a run.
	staged := make([]*entity.Article, 0)
	seen := make(map[string]bool)
	for i, src := range srcs {
		for _, item := range fetched[i] {
			stats.FeedItems++
			art := s.stage(ctx, src, item, start, cutoff)
			if art == nil {
				stats.Stale++
				continue
			}
			if seen[art.GUID] {
				stats.Duplicated++
				continue
			}
			seen[art.GUID] = true
			staged = append(staged, art)
		}
	}

	if len(staged) > 0 {
		guids := make([]string, 0, len(staged))
		for _, art := range staged {
			guids = append(guids, art.GUID)
		}
		existing, err := s.ArticleRepo.ExistsByGUIDBatch(ctx, guids)
		if err != nil {
			return stats, fmt.Errorf("batch check guids: %w", err)
		}

		fresh := make([]*entity.Article, 0, len(staged))
		for _, art := range staged {
			if existing[art.GUID] {
				stats.Duplicated++
				continue
			}
			fresh = append(fresh, art)
		}

		if len(fresh) > 0 {
			inserted, err := s.ArticleRepo.CreateBatch(ctx, fresh)
			if err != nil {
				return stats, fmt.Errorf("persist articles: %w", err)
			}
			stats.Inserted = inserted
			// Rows refused by the guid constraint mean a concurrent run
			// stored them between the existence check and the insert.
			stats.Duplicated += int64(len(fresh)) - inserted
		}
	}

	stats.Duration = time.Since(start)
	metrics.RecordIngestionOutcomes(stats.Inserted, stats.Duplicated, stats.Stale)
	metrics.RecordIngestionRun(stats.Duration)

	logger.Info("feed refresh completed",
		slog.Int("sources", stats.Sources),
		slog.Int64("pruned", stats.Pruned),
		slog.Int64("feed_items", stats.FeedItems),
		slog.Int64("inserted", stats.Inserted),
		slog.Int64("duplicated", stats.Duplicated),
		slog.Int64("stale", stats.Stale),
		slog.Duration("duration", stats.Duration),
	)

	return stats, nil
}

// fetchAll crawls every source concurrently, bounded by the configured
// parallelism. The returned slice is indexed like srcs; a failed source
// leaves its slot nil.
func (s *Service) fetchAll(ctx context.Context, srcs []*entity.Source) [][]FeedItem {
	logger := slog.Default()
	results := make([][]FeedItem, len(srcs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.config.Parallelism)

	for i, src := range srcs {
		eg.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(egCtx, s.config.FetchTimeout)
			defer cancel()

			crawlStart := time.Now()
			items, err := s.selectFetcher(src).Fetch(fetchCtx, src.URL)
			metrics.RecordFeedCrawl(src.ID, time.Since(crawlStart))
			if err != nil {
				// One broken feed must not abort the run.
				logger.Warn("failed to fetch feed",
					slog.Int64("source_id", src.ID),
					slog.String("url", src.URL),
					slog.Any("error", err))
				metrics.RecordFeedCrawlError(src.ID, "fetch_failed")
				return nil
			}
			metrics.RecordArticlesFetched(src.Name, src.ID, len(items))
			results[i] = items
			return nil
		})
	}
	// Goroutines never return errors, fetch failures are isolated above.
	_ = eg.Wait()

	return results
}

// selectFetcher resolves the extractor strategy for a source. An overrides
// entry for the feed URL wins over the source's own extractor column;
// unknown names fall back to the generic RSS fetcher.
func (s *Service) selectFetcher(src *entity.Source) FeedFetcher {
	name := src.Extractor
	if override, ok := s.Overrides[src.URL]; ok {
		name = override
	}

	if name == "" || name == entity.ExtractorRSS {
		return s.FeedFetcher
	}
	if fetcher, ok := s.Extractors[name]; ok {
		return fetcher
	}

	slog.Warn("unknown extractor, falling back to generic RSS fetcher",
		slog.String("extractor", name),
		slog.Int64("source_id", src.ID),
		slog.String("source_name", src.Name))
	return s.FeedFetcher
}

// stage converts one feed item into an article ready for persistence.
// A missing, unparsable, or implausibly future publication date is clamped
// to the run start time. Returns nil when the item is older than the
// retention cutoff.
func (s *Service) stage(ctx context.Context, src *entity.Source, item FeedItem, now, cutoff time.Time) *entity.Article {
	published := now
	if item.PublishedAt != nil && !item.PublishedAt.After(now.Add(futureTolerance)) {
		published = *item.PublishedAt
	}
	if published.Before(cutoff) {
		return nil
	}

	art := &entity.Article{
		SourceID:    src.ID,
		Title:       item.Title,
		Description: s.enhanceContent(ctx, item),
		Link:        item.Link,
		GUID:        item.GUID,
		PublishedAt: published,
	}
	art.Normalize()
	return art
}

// enhanceContent returns the description for a feed item, fetching the full
// article page when the feed's own description is too short to be useful.
//
// The method NEVER returns an error: any fetch or extraction failure falls
// back to the feed description, so description enhancement can never break
// the refresh pipeline.
func (s *Service) enhanceContent(ctx context.Context, item FeedItem) string {
	logger := slog.Default()

	if s.ContentFetcher == nil {
		// Feature disabled, use the feed description as-is
		return item.Description
	}

	feedLength := len(item.Description)
	if feedLength >= s.config.ContentThreshold {
		metrics.RecordContentFetchSkipped()
		return item.Description
	}

	fetchStart := time.Now()
	fullContent, err := s.ContentFetcher.FetchContent(ctx, item.Link)
	fetchDuration := time.Since(fetchStart)

	if err != nil {
		logger.Warn("content fetch failed, using feed description",
			slog.String("link", item.Link),
			slog.Any("error", err),
			slog.Duration("fetch_duration", fetchDuration))
		metrics.RecordContentFetchFailed(fetchDuration)
		return item.Description
	}

	metrics.RecordContentFetchSuccess(fetchDuration, len(fullContent))

	// Extracted text shorter than the feed's own description is a sign of a
	// bad extraction, keep the original.
	if len(fullContent) > feedLength {
		return fullContent
	}
	return item.Description
}
