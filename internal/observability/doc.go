// Package observability provides observability infrastructure for the
// application: structured logging and Prometheus metrics.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus metrics registry and recorders
//
// Example usage:
//
//	import (
//	    "monfluxrss/internal/observability/logging"
//	    "monfluxrss/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("application started")
//
//	    metrics.RecordFeedCrawl("12", 1.8)
//	}
package observability
