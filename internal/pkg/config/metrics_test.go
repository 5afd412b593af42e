package config

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// promauto registers with the default registry, so one instance is shared
// across all tests in this package.
var globalTestMetrics = NewConfigMetrics("configtest")

/*────────────────────  test cases  ────────────────────*/

func TestConfigMetrics_RecordLoadTimestamp(t *testing.T) {
	before := float64(time.Now().Unix())
	globalTestMetrics.RecordLoadTimestamp()
	after := float64(time.Now().Unix())

	got := testutil.ToFloat64(globalTestMetrics.LoadTimestamp)
	if got < before || got > after+1 {
		t.Errorf("LoadTimestamp = %v, want between %v and %v", got, before, after)
	}
}

func TestConfigMetrics_RecordValidationError(t *testing.T) {
	start := testutil.ToFloat64(globalTestMetrics.ValidationErrorsTotal.WithLabelValues("cron_schedule"))

	globalTestMetrics.RecordValidationError("cron_schedule")
	globalTestMetrics.RecordValidationError("cron_schedule")
	globalTestMetrics.RecordValidationError("timezone")

	got := testutil.ToFloat64(globalTestMetrics.ValidationErrorsTotal.WithLabelValues("cron_schedule"))
	if got != start+2 {
		t.Errorf("cron_schedule errors = %v, want %v", got, start+2)
	}
}

func TestConfigMetrics_RecordFallback(t *testing.T) {
	start := testutil.ToFloat64(globalTestMetrics.FallbacksTotal.WithLabelValues("crawl_timeout"))

	globalTestMetrics.RecordFallback("crawl_timeout", "default")

	got := testutil.ToFloat64(globalTestMetrics.FallbacksTotal.WithLabelValues("crawl_timeout"))
	if got != start+1 {
		t.Errorf("crawl_timeout fallbacks = %v, want %v", got, start+1)
	}
}

func TestConfigMetrics_SetFallbackActive(t *testing.T) {
	globalTestMetrics.SetFallbackActive("any", true)
	if got := testutil.ToFloat64(globalTestMetrics.FallbackActive); got != 1 {
		t.Errorf("FallbackActive = %v, want 1", got)
	}

	globalTestMetrics.SetFallbackActive("any", false)
	if got := testutil.ToFloat64(globalTestMetrics.FallbackActive); got != 0 {
		t.Errorf("FallbackActive = %v, want 0", got)
	}
}
