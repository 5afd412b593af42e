package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecordArticlesFetched(t *testing.T) {
	tests := []struct {
		name       string
		sourceName string
		sourceID   int64
		count      int
	}{
		{
			name:       "single item",
			sourceName: "LinuxFr",
			sourceID:   1,
			count:      1,
		},
		{
			name:       "multiple items",
			sourceName: "Le Journal du Geek",
			sourceID:   2,
			count:      10,
		},
		{
			name:       "zero items",
			sourceName: "Empty Source",
			sourceID:   3,
			count:      0,
		},
		{
			name:       "empty source name",
			sourceName: "",
			sourceID:   4,
			count:      5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				RecordArticlesFetched(tt.sourceName, tt.sourceID, tt.count)
			})
		})
	}
}

func TestRecordFeedCrawl(t *testing.T) {
	tests := []struct {
		name     string
		sourceID int64
		duration time.Duration
	}{
		{
			name:     "fast crawl",
			sourceID: 1,
			duration: 500 * time.Millisecond,
		},
		{
			name:     "slow crawl",
			sourceID: 2,
			duration: 15 * time.Second,
		},
		{
			name:     "zero duration",
			sourceID: 3,
			duration: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				RecordFeedCrawl(tt.sourceID, tt.duration)
			})
		})
	}
}

func TestRecordFeedCrawlError(t *testing.T) {
	tests := []struct {
		name      string
		sourceID  int64
		errorType string
	}{
		{
			name:      "fetch failed",
			sourceID:  1,
			errorType: "fetch_failed",
		},
		{
			name:      "parse error",
			sourceID:  2,
			errorType: "parse_error",
		},
		{
			name:      "timeout",
			sourceID:  3,
			errorType: "timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				RecordFeedCrawlError(tt.sourceID, tt.errorType)
			})
		})
	}
}

func TestRecordIngestionOutcomes(t *testing.T) {
	tests := []struct {
		name       string
		inserted   int64
		duplicated int64
		stale      int64
	}{
		{
			name:       "mixed outcomes",
			inserted:   8,
			duplicated: 2,
			stale:      3,
		},
		{
			name:       "all inserted",
			inserted:   20,
			duplicated: 0,
			stale:      0,
		},
		{
			name:       "nothing processed",
			inserted:   0,
			duplicated: 0,
			stale:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				RecordIngestionOutcomes(tt.inserted, tt.duplicated, tt.stale)
			})
		})
	}
}

func TestRecordArticlesPruned(t *testing.T) {
	tests := []struct {
		name  string
		count int64
	}{
		{
			name:  "nothing pruned",
			count: 0,
		},
		{
			name:  "some pruned",
			count: 42,
		},
		{
			name:  "large cleanup",
			count: 5000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				RecordArticlesPruned(tt.count)
			})
		})
	}
}

func TestUpdateArticlesTotal(t *testing.T) {
	tests := []struct {
		name  string
		count int
	}{
		{
			name:  "zero articles",
			count: 0,
		},
		{
			name:  "some articles",
			count: 100,
		},
		{
			name:  "many articles",
			count: 10000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				UpdateArticlesTotal(tt.count)
			})
		})
	}
}

func TestUpdateSourcesTotal(t *testing.T) {
	tests := []struct {
		name  string
		count int
	}{
		{
			name:  "zero sources",
			count: 0,
		},
		{
			name:  "some sources",
			count: 10,
		},
		{
			name:  "many sources",
			count: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				UpdateSourcesTotal(tt.count)
			})
		})
	}
}

func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		duration  time.Duration
	}{
		{
			name:      "select query",
			operation: "select_articles",
			duration:  10 * time.Millisecond,
		},
		{
			name:      "insert query",
			operation: "insert_article",
			duration:  5 * time.Millisecond,
		},
		{
			name:      "slow query",
			operation: "complex_join",
			duration:  500 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				RecordDBQuery(tt.operation, tt.duration)
			})
		})
	}
}

func TestUpdateDBConnectionStats(t *testing.T) {
	tests := []struct {
		name   string
		active int
		idle   int
	}{
		{
			name:   "no connections",
			active: 0,
			idle:   0,
		},
		{
			name:   "some active",
			active: 5,
			idle:   10,
		},
		{
			name:   "all active",
			active: 25,
			idle:   0,
		},
		{
			name:   "all idle",
			active: 0,
			idle:   25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				UpdateDBConnectionStats(tt.active, tt.idle)
			})
		})
	}
}

func TestMetricsFunctions_AllCallable(t *testing.T) {
	// Test that all functions can be called in sequence without panic
	assert.NotPanics(t, func() {
		RecordArticlesFetched("LinuxFr", 1, 10)
		RecordFeedCrawl(1, 2*time.Second)
		RecordFeedCrawlError(1, "test_error")
		RecordIngestionOutcomes(8, 2, 3)
		RecordArticlesPruned(42)
		RecordIngestionRun(30 * time.Second)
		UpdateArticlesTotal(100)
		UpdateSourcesTotal(10)
		RecordDBQuery("test_operation", 10*time.Millisecond)
		UpdateDBConnectionStats(5, 10)
	})
}
