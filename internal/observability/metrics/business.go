package metrics

import (
	"fmt"
	"time"
)

// RecordArticlesFetched records the number of feed items fetched from a source.
// This metric helps track feed crawling performance and source activity.
func RecordArticlesFetched(sourceName string, sourceID int64, count int) {
	ArticlesFetchedTotal.WithLabelValues(
		sourceName,
		fmt.Sprintf("%d", sourceID),
	).Add(float64(count))
}

// RecordFeedCrawl records the duration of a single feed crawl.
func RecordFeedCrawl(sourceID int64, duration time.Duration) {
	FeedCrawlDuration.WithLabelValues(
		fmt.Sprintf("%d", sourceID),
	).Observe(duration.Seconds())
}

// RecordFeedCrawlError records an error during feed crawling.
func RecordFeedCrawlError(sourceID int64, errorType string) {
	FeedCrawlErrors.WithLabelValues(
		fmt.Sprintf("%d", sourceID),
		errorType,
	).Inc()
}

// RecordIngestionOutcomes records the breakdown of one refresh run: how many
// staged items were inserted, skipped as duplicates, or dropped as stale.
func RecordIngestionOutcomes(inserted, duplicated, stale int64) {
	ArticlesIngestedTotal.WithLabelValues("inserted").Add(float64(inserted))
	ArticlesIngestedTotal.WithLabelValues("duplicate").Add(float64(duplicated))
	ArticlesIngestedTotal.WithLabelValues("stale").Add(float64(stale))
}

// RecordArticlesPruned records the number of articles removed by retention cleanup.
func RecordArticlesPruned(count int64) {
	ArticlesPrunedTotal.Add(float64(count))
}

// RecordIngestionRun records the total duration of a refresh run.
func RecordIngestionRun(duration time.Duration) {
	IngestionRunDuration.Observe(duration.Seconds())
}

// UpdateArticlesTotal updates the total count of articles in the database.
// This gauge should be updated periodically to reflect the current state.
func UpdateArticlesTotal(count int) {
	ArticlesTotal.Set(float64(count))
}

// UpdateSourcesTotal updates the total count of sources in the database.
// This gauge should be updated periodically to reflect the current state.
func UpdateSourcesTotal(count int) {
	SourcesTotal.Set(float64(count))
}

// RecordContentFetchSuccess records a successful content fetch operation.
// This tracks both the duration and size of fetched content.
func RecordContentFetchSuccess(duration time.Duration, size int) {
	ContentFetchAttemptsTotal.WithLabelValues("success").Inc()
	ContentFetchDuration.Observe(duration.Seconds())
	ContentFetchSize.Observe(float64(size))
}

// RecordContentFetchFailed records a failed content fetch operation.
func RecordContentFetchFailed(duration time.Duration) {
	ContentFetchAttemptsTotal.WithLabelValues("failure").Inc()
	ContentFetchDuration.Observe(duration.Seconds())
}

// RecordContentFetchSkipped records a skipped content fetch operation.
// This occurs when the feed description is already long enough and fetching
// the page is unnecessary.
func RecordContentFetchSkipped() {
	ContentFetchAttemptsTotal.WithLabelValues("skipped").Inc()
}

// RecordDBQuery records the duration of a database query operation.
// Operation should describe the query type (e.g., "select_articles", "insert_article").
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBConnectionStats updates database connection pool statistics.
func UpdateDBConnectionStats(active, idle int) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}
