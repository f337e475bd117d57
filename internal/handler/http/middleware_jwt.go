package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/thsampaio/customer-gateway/internal/logger"
	"github.com/thsampaio/customer-gateway/internal/router"
	"github.com/thsampaio/customer-gateway/internal/service"
	"github.com/thsampaio/customer-gateway/internal/utils"
)

// jwtMiddleware guards a route with bearer token verification.
//
// Each failure mode gets its own 401 message so clients can distinguish a
// missing token from an expired or tampered one. On success the decoded
// claims are stored in the request context under utils.ClaimsCtxKey.
func (h *Handler) jwtMiddleware() router.Middleware {
	return router.MiddlewareFunc(func(w http.ResponseWriter, r *http.Request, next http.Handler) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Warn().Err(err).Msg("missing or malformed authorization header")
			utils.WriteError(w, http.StatusUnauthorized, "Token not provided")
			return
		}

		token, err := h.services.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				utils.WriteError(w, http.StatusUnauthorized, "Expired token")
			case errors.Is(err, service.ErrTokenSignatureInvalid):
				utils.WriteError(w, http.StatusUnauthorized, "Invalid token")
			default:
				utils.WriteError(w, http.StatusUnauthorized, "Authentication is failed")
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(
			context.WithValue(ctx, utils.ClaimsCtxKey, token.Claims)))
	})
}
