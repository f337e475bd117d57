package http

import (
	"github.com/thsampaio/customer-gateway/internal/router"
)

// Init builds the router with the full middleware chain and every API route.
//
// Global middlewares run on all routes in registration order: request
// logging (which also recovers panics), request counting, security headers,
// and the rate limiter. Content type enforcement applies only to routes with
// a body, and token verification guards every customer route. GET /health,
// GET /metrics and GET /api/v1/token stay open so clients and scrapers can
// bootstrap.
//
// The literal collection route is registered before the parameterized record
// route; the router matches in registration order, so "/api/v1/customers"
// never binds as a {code} of some other pattern.
func (h *Handler) Init() *router.Router {
	rt := router.New(h.logger)

	rt.Use(h.loggingMiddleware())
	rt.Use(h.metricsMiddleware())
	rt.Use(securityHeadersMiddleware())
	rt.Use(h.rateLimitMiddleware())

	jwt := h.jwtMiddleware()
	jsonBody := contentTypeJSONMiddleware()

	rt.Get("/health", h.healthCheck)
	rt.Get("/metrics", h.showMetrics)
	rt.Get("/api/v1/token", h.issueToken)

	rt.Get("/api/v1/customers", h.listCustomers, jwt)
	rt.Post("/api/v1/customers", h.createCustomer, jsonBody, jwt)
	rt.Get("/api/v1/customers/{code}", h.showCustomer, jwt)
	rt.Put("/api/v1/customers/{code}", h.updateCustomer, jsonBody, jwt)
	rt.Delete("/api/v1/customers/{code}", h.deleteCustomer, jwt)

	return rt
}
