// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, size)
//   - Ingestion metrics (feed crawls, inserted/duplicate/stale articles)
//   - Database query metrics
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "monfluxrss/internal/observability/metrics"
//
//	func crawl(sourceID string) {
//	    start := time.Now()
//	    // ... fetch and persist articles ...
//	    metrics.RecordFeedCrawl(sourceID, time.Since(start).Seconds())
//	}
package metrics
