package router

import "net/http"

// Middleware is a single interceptor in the request pipeline.
//
// Process receives the request and the next step of the chain. A middleware
// decides independently whether to call next at all (short-circuiting with
// its own response), whether to inspect or transform what next wrote, or
// both. Middlewares must not retain w or r beyond the call.
type Middleware interface {
	Process(w http.ResponseWriter, r *http.Request, next http.Handler)
}

// MiddlewareFunc adapts a plain function to the Middleware interface.
type MiddlewareFunc func(w http.ResponseWriter, r *http.Request, next http.Handler)

// Process calls f(w, r, next).
func (f MiddlewareFunc) Process(w http.ResponseWriter, r *http.Request, next http.Handler) {
	f(w, r, next)
}

// chain is a singly-advancing cursor over an ordered middleware sequence
// ending in a terminal handler. Serving the chain either invokes the next
// middleware (advancing the cursor) or, once middlewares are exhausted, the
// terminal handler.
//
// A chain instance belongs to exactly one in-flight request; the cursor is
// request-local state and instances must never be shared or reused.
type chain struct {
	middlewares []Middleware
	terminal    http.Handler
	index       int
}

// NewChain builds a fresh middleware chain over middlewares ending in
// terminal. The returned handler must serve exactly one request.
func NewChain(middlewares []Middleware, terminal http.Handler) http.Handler {
	return &chain{middlewares: middlewares, terminal: terminal}
}

func (c *chain) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if c.index < len(c.middlewares) {
		m := c.middlewares[c.index]
		c.index++
		m.Process(w, r, c)
		return
	}

	c.terminal.ServeHTTP(w, r)
}
