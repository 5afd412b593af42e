package source

import (
	"errors"
	"net/http"

	"monfluxrss/internal/domain/entity"
	"monfluxrss/internal/handler/http/pathutil"
	"monfluxrss/internal/handler/http/respond"
	srcUC "monfluxrss/internal/usecase/source"
)

// DeleteHandler serves DELETE /sources/{id}. Articles belonging to the
// source are removed along with it.
type DeleteHandler struct{ Svc *srcUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/sources/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
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

	w.WriteHeader(http.StatusNoContent)
}
