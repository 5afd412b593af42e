package article

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"monfluxrss/internal/handler/http/respond"
	"monfluxrss/internal/observability/logging"
	"monfluxrss/internal/usecase/fetch"
)

// Refresher runs one feed refresh cycle and reports its outcome.
type Refresher interface {
	Run(ctx context.Context) (*fetch.RunStats, error)
}

// RefreshHandler serves POST /api/update-articles. It runs the full
// ingestion pipeline synchronously and answers once the run completes,
// so the caller sees the number of newly stored articles.
type RefreshHandler struct {
	Svc    Refresher
	Logger *slog.Logger
}

type refreshResponse struct {
	Message string `json:"message"`
}

func (h RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// A full run over every source can take a while; give it its own budget
	// instead of the regular per-request deadline.
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Minute)
	defer cancel()
	logger := logging.WithRequestID(ctx, h.Logger)

	start := time.Now()
	stats, err := h.Svc.Run(ctx)
	if err != nil {
		logger.Error("manual refresh failed",
			"error", err.Error(),
			"duration_ms", time.Since(start).Milliseconds())
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	logger.Info("manual refresh completed",
		"sources", stats.Sources,
		"inserted", stats.Inserted,
		"duplicated", stats.Duplicated,
		"stale", stats.Stale,
		"pruned", stats.Pruned,
		"duration_ms", time.Since(start).Milliseconds())

	respond.JSON(w, http.StatusOK, refreshResponse{
		Message: fmt.Sprintf("%d new articles added.", stats.Inserted),
	})
}
