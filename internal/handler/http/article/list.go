package article

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"monfluxrss/internal/common/pagination"
	"monfluxrss/internal/handler/http/requestid"
	"monfluxrss/internal/handler/http/respond"
	"monfluxrss/internal/observability/logging"
	"monfluxrss/internal/repository"
	artUC "monfluxrss/internal/usecase/article"
)

// ListHandler serves GET /articles: the paginated article feed,
// optionally narrowed by source category and a free-text query.
type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	reqID := requestid.FromContext(ctx)
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid pagination parameters",
			"error", err.Error(),
			"request_id", reqID)
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	filters := repository.ArticleListFilters{
		Category: strings.TrimSpace(r.URL.Query().Get("category")),
		Query:    strings.TrimSpace(r.URL.Query().Get("q")),
	}

	result, err := h.Svc.ListWithSourcePaginated(ctx, filters, params)
	if err != nil {
		logger.Error("failed to list articles",
			"error", err.Error(),
			"page", params.Page,
			"limit", params.Limit,
			"request_id", reqID)
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Data))
	for _, item := range result.Data {
		dtos = append(dtos, fromArticleWithSource(item))
	}

	response := pagination.NewResponse(dtos, result.Pagination)

	logger.Info("article list served",
		"page", params.Page,
		"limit", params.Limit,
		"category", filters.Category,
		"query", filters.Query,
		"returned_count", len(dtos),
		"duration_ms", time.Since(startTime).Milliseconds(),
		"request_id", reqID)

	respond.JSON(w, http.StatusOK, response)
}
