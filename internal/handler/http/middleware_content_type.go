package http

import (
	"mime"
	"net/http"

	"github.com/thsampaio/customer-gateway/internal/router"
	"github.com/thsampaio/customer-gateway/internal/utils"
)

// contentTypeJSONMiddleware rejects body-carrying requests whose
// Content-Type is not application/json. Media type parameters such as
// charset are accepted.
func contentTypeJSONMiddleware() router.Middleware {
	return router.MiddlewareFunc(func(w http.ResponseWriter, r *http.Request, next http.Handler) {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			utils.WriteError(w, http.StatusUnsupportedMediaType, "Content-Type header is required")
			return
		}

		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			utils.WriteError(w, http.StatusUnsupportedMediaType, "application/json is required.")
			return
		}

		next.ServeHTTP(w, r)
	})
}
