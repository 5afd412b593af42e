package source

import (
	"net/http"

	srcUC "monfluxrss/internal/usecase/source"
)

// Register registers the source routes with the given mux.
// The global middleware chain lets anonymous readers through on GET and
// requires an administrator token for the mutating methods.
func Register(mux *http.ServeMux, svc *srcUC.Service) {
	mux.Handle("GET /sources", ListHandler{svc})
	mux.Handle("GET /sources/", GetHandler{svc})

	mux.Handle("POST /sources", CreateHandler{svc})
	mux.Handle("DELETE /sources/", DeleteHandler{svc})
}
