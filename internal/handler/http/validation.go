package http

import (
	"net/http"

	"monfluxrss/internal/handler/http/respond"
)

// InputValidation rejects requests with oversized headers or paths before
// they reach any handler. Body size is handled separately by
// LimitRequestBody.
func InputValidation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// JWT tokens stay well under 1KB, 8KB leaves headroom
			if len(r.Header.Get("Authorization")) > 8192 {
				respond.JSON(w, http.StatusBadRequest,
					map[string]string{"error": "authorization header too large"})
				return
			}

			if len(r.URL.Path) > 2048 {
				respond.JSON(w, http.StatusRequestURITooLong,
					map[string]string{"error": "URI too long"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
