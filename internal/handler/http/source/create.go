package source

import (
	"encoding/json"
	"errors"
	"net/http"

	"monfluxrss/internal/domain/entity"
	"monfluxrss/internal/handler/http/respond"
	srcUC "monfluxrss/internal/usecase/source"
)

// CreateHandler serves POST /sources.
type CreateHandler struct{ Svc *srcUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string `json:"name"`
		URL       string `json:"url"`
		Category  string `json:"category"`
		Extractor string `json:"extractor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	src, err := h.Svc.Create(r.Context(), srcUC.CreateInput{
		Name:      req.Name,
		URL:       req.URL,
		Category:  req.Category,
		Extractor: req.Extractor,
	})
	if err != nil {
		code := http.StatusInternalServerError
		var vErr *entity.ValidationError
		if errors.As(err, &vErr) {
			code = http.StatusBadRequest
		} else if errors.Is(err, srcUC.ErrDuplicateSource) {
			code = http.StatusConflict
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusCreated, fromEntity(src))
}
