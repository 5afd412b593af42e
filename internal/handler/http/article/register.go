package article

import (
	"log/slog"
	"net/http"

	"monfluxrss/internal/common/pagination"
	artUC "monfluxrss/internal/usecase/article"
)

// Register registers the article routes with the given mux.
// Authorization is enforced by the global middleware chain, so the
// handlers themselves stay free of auth concerns.
func Register(mux *http.ServeMux, svc *artUC.Service, refresher Refresher, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET /articles", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET /articles/", GetHandler{svc})

	mux.Handle("POST /api/update-articles", RefreshHandler{
		Svc:    refresher,
		Logger: logger,
	})
}
