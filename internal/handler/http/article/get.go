package article

import (
	"errors"
	"net/http"

	"monfluxrss/internal/handler/http/pathutil"
	"monfluxrss/internal/handler/http/respond"
	artUC "monfluxrss/internal/usecase/article"
)

// GetHandler serves GET /articles/{id}.
type GetHandler struct{ Svc *artUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	article, sourceName, err := h.Svc.GetWithSource(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, artUC.ErrInvalidArticleID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, artUC.ErrArticleNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	out := DTO{
		ID:          article.ID,
		SourceID:    article.SourceID,
		SourceName:  sourceName,
		Title:       article.Title,
		Link:        article.Link,
		Description: article.Description,
		PublishedAt: article.PublishedAt,
	}

	respond.JSON(w, http.StatusOK, out)
}
