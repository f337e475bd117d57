// Package router implements the request dispatch pipeline of the gateway:
// a method+pattern router with named path placeholders and an ordered,
// composable middleware chain.
//
// Patterns contain zero or more `{name}` placeholders, each matching a run
// of non-slash characters. Matching is case-insensitive and anchored at both
// ends. Within a method, routes are tried in registration order and the
// first structural match wins, so overlapping patterns must be registered
// most-specific first.
package router

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"github.com/thsampaio/customer-gateway/internal/logger"
	"github.com/thsampaio/customer-gateway/internal/utils"
)

// placeholderPattern matches a single `{name}` path placeholder.
var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z]+)\}`)

// route is a single registered method+pattern entry. params holds the
// placeholder names in their order of appearance in the pattern; submatch i+1
// of the compiled matcher is bound to params[i] on dispatch.
type route struct {
	pattern     string
	matcher     *regexp.Regexp
	params      []string
	handler     http.Handler
	middlewares []Middleware
}

// Router maps method+path patterns to handlers and wraps every match with
// the global middleware chain plus the route's own middlewares.
//
// Router is safe for concurrent use after all routes have been registered;
// registration itself is not synchronized and must happen during startup.
type Router struct {
	logger      *logger.Logger
	routes      map[string][]*route
	middlewares []Middleware
}

// New constructs an empty Router that logs dispatch warnings to log.
func New(log *logger.Logger) *Router {
	return &Router{
		logger: log,
		routes: make(map[string][]*route),
	}
}

// Use appends m to the global middleware chain. Global middlewares run
// before any per-route middleware, in registration order.
func (rt *Router) Use(m Middleware) {
	rt.middlewares = append(rt.middlewares, m)
}

// Handle registers handler for the given method and path pattern, with
// optional per-route middlewares appended after the global chain.
func (rt *Router) Handle(method, pattern string, handler http.Handler, middlewares ...Middleware) {
	matcher, params := compilePattern(pattern)
	rt.routes[method] = append(rt.routes[method], &route{
		pattern:     pattern,
		matcher:     matcher,
		params:      params,
		handler:     handler,
		middlewares: middlewares,
	})
}

// Get registers a GET route.
func (rt *Router) Get(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	rt.Handle(http.MethodGet, pattern, handler, middlewares...)
}

// Post registers a POST route.
func (rt *Router) Post(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	rt.Handle(http.MethodPost, pattern, handler, middlewares...)
}

// Put registers a PUT route.
func (rt *Router) Put(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	rt.Handle(http.MethodPut, pattern, handler, middlewares...)
}

// Delete registers a DELETE route.
func (rt *Router) Delete(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	rt.Handle(http.MethodDelete, pattern, handler, middlewares...)
}

// ServeHTTP dispatches the request.
//
// When no route at all is registered for the request method, the response is
// 404 "Method not found". When routes exist but none matches the path, the
// response is 404 "Endpoint not found". Both cases log a warning with the
// method and path. On a match, captured placeholder values are bound into
// the request context and a fresh middleware chain (global middlewares, then
// the route's, then the terminal handler) handles the request; each request
// owns its own chain cursor.
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	routes, ok := rt.routes[r.Method]
	if !ok {
		rt.logger.Warn().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Method not found")
		utils.WriteError(w, http.StatusNotFound, "Method not found")
		return
	}

	for _, rte := range routes {
		matches := rte.matcher.FindStringSubmatch(r.URL.Path)
		if matches == nil {
			continue
		}

		if len(rte.params) > 0 {
			r = r.WithContext(withParams(r.Context(), rte.params, matches[1:]))
		}

		middlewares := make([]Middleware, 0, len(rt.middlewares)+len(rte.middlewares))
		middlewares = append(middlewares, rt.middlewares...)
		middlewares = append(middlewares, rte.middlewares...)

		NewChain(middlewares, rte.handler).ServeHTTP(w, r)
		return
	}

	rt.logger.Warn().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("Endpoint not found")
	utils.WriteError(w, http.StatusNotFound, "Endpoint not found")
}

// compilePattern turns a path pattern into an anchored, case-insensitive
// regexp and the ordered list of placeholder names it captures. Literal path
// segments are quoted so regexp metacharacters in patterns cannot change the
// match semantics.
func compilePattern(pattern string) (*regexp.Regexp, []string) {
	var params []string
	var sb strings.Builder
	sb.WriteString("(?i)^")

	last := 0
	for _, loc := range placeholderPattern.FindAllStringSubmatchIndex(pattern, -1) {
		sb.WriteString(regexp.QuoteMeta(pattern[last:loc[0]]))
		sb.WriteString(`([^/]+)`)
		params = append(params, pattern[loc[2]:loc[3]])
		last = loc[1]
	}
	sb.WriteString(regexp.QuoteMeta(pattern[last:]))
	sb.WriteString("$")

	return regexp.MustCompile(sb.String()), params
}

// paramsCtxKey is the context key under which extracted path parameters are
// stored.
type paramsCtxKey struct{}

func withParams(ctx context.Context, names, values []string) context.Context {
	params := make(map[string]string, len(names))
	for i, name := range names {
		if i < len(values) {
			params[name] = values[i]
		}
	}
	return context.WithValue(ctx, paramsCtxKey{}, params)
}

// Param returns the path parameter bound under name, or the empty string if
// the route pattern did not capture it.
func Param(r *http.Request, name string) string {
	params, _ := r.Context().Value(paramsCtxKey{}).(map[string]string)
	return params[name]
}

// WithParams returns a copy of r whose context carries the given path
// parameters. It is intended for handler tests that bypass dispatch.
func WithParams(r *http.Request, params map[string]string) *http.Request {
	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for name, value := range params {
		names = append(names, name)
		values = append(values, value)
	}
	return r.WithContext(withParams(r.Context(), names, values))
}
