package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/thsampaio/customer-gateway/internal/router"
	"github.com/thsampaio/customer-gateway/internal/utils"
)

// loggingMiddleware attaches a request-scoped logger carrying a fresh
// trace_id to the request context, logs one line per completed request, and
// doubles as the outermost error boundary: a panic anywhere downstream is
// recovered and answered with a 500 envelope instead of tearing the
// connection down.
func (h *Handler) loggingMiddleware() router.Middleware {
	return router.MiddlewareFunc(func(w http.ResponseWriter, r *http.Request, next http.Handler) {
		start := time.Now()

		log := h.logger.GetChildLogger().With().
			Str("trace_id", uuid.NewString()).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Logger()

		sw := newStatusWriter(w)
		r = r.WithContext(log.WithContext(r.Context()))

		defer func() {
			if rec := recover(); rec != nil {
				log.Error().Any("panic", rec).Msg("recovered from panic")
				utils.WriteError(sw, http.StatusInternalServerError, "Server Error")
			}

			log.Info().
				Int("status", sw.status).
				Int("size", sw.size).
				Dur("duration", time.Since(start)).
				Msg("request completed")
		}()

		next.ServeHTTP(sw, r)
	})
}
