package source

import (
	"errors"
	"net/http"

	"monfluxrss/internal/domain/entity"
	"monfluxrss/internal/handler/http/pathutil"
	"monfluxrss/internal/handler/http/respond"
	srcUC "monfluxrss/internal/usecase/source"
)

// GetHandler serves GET /sources/{id}.
type GetHandler struct{ Svc *srcUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/sources/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	src, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		var vErr *entity.ValidationError
		if errors.As(err, &vErr) {
			code = http.StatusBadRequest
		} else if errors.Is(err, srcUC.ErrSourceNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, fromEntity(src))
}
