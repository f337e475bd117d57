// Package http implements the inbound HTTP surface of the customer gateway:
// route registration, the middleware chain (logging, security headers, rate
// limiting, content type negotiation, token verification), and the resource
// handlers themselves.
package http

import (
	"github.com/thsampaio/customer-gateway/internal/config"
	"github.com/thsampaio/customer-gateway/internal/logger"
	"github.com/thsampaio/customer-gateway/internal/service"
	"github.com/thsampaio/customer-gateway/internal/store"
)

// Handler owns the HTTP layer: it holds the application services and the
// middleware dependencies, and wires them into a router via Init.
type Handler struct {
	services     *service.Services
	rateLimits   store.RateLimitStore
	rateLimitCfg config.RateLimit
	metrics      *requestMetrics
	logger       *logger.Logger
}

// NewHandler constructs the HTTP layer over the given services.
func NewHandler(services *service.Services, rateLimits store.RateLimitStore, rateLimitCfg config.RateLimit, logger *logger.Logger) *Handler {
	logger.Info().Msg("creating handlers...")
	return &Handler{
		services:     services,
		rateLimits:   rateLimits,
		rateLimitCfg: rateLimitCfg,
		metrics:      newRequestMetrics(),
		logger:       logger,
	}
}
