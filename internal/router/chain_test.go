package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// appendingMiddleware records its label before and after next runs, so tests
// can observe the full onion ordering.
func appendingMiddleware(label string, order *[]string) Middleware {
	return MiddlewareFunc(func(w http.ResponseWriter, r *http.Request, next http.Handler) {
		*order = append(*order, label+"-before")
		next.ServeHTTP(w, r)
		*order = append(*order, label+"-after")
	})
}

func TestChain_RunsMiddlewaresInOrder(t *testing.T) {
	var order []string

	terminal := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "terminal")
		w.WriteHeader(http.StatusOK)
	})

	c := NewChain([]Middleware{
		appendingMiddleware("first", &order),
		appendingMiddleware("second", &order),
	}, terminal)

	rr := httptest.NewRecorder()
	c.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{
		"first-before",
		"second-before",
		"terminal",
		"second-after",
		"first-after",
	}, order)
}

func TestChain_NoMiddlewares_CallsTerminal(t *testing.T) {
	called := false
	terminal := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rr := httptest.NewRecorder()
	NewChain(nil, terminal).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, called)
}

func TestChain_ShortCircuit_SkipsRest(t *testing.T) {
	var order []string

	blocker := MiddlewareFunc(func(w http.ResponseWriter, r *http.Request, next http.Handler) {
		order = append(order, "blocker")
		w.WriteHeader(http.StatusUnauthorized)
		// next is deliberately not called
	})

	terminal := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "terminal")
	})

	rr := httptest.NewRecorder()
	NewChain([]Middleware{
		blocker,
		appendingMiddleware("unreachable", &order),
	}, terminal).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"blocker"}, order)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestChain_MiddlewareObservesTerminalResponse(t *testing.T) {
	var seen int

	observer := MiddlewareFunc(func(w http.ResponseWriter, r *http.Request, next http.Handler) {
		rec := httptest.NewRecorder()
		next.ServeHTTP(rec, r)
		seen = rec.Code
		w.WriteHeader(rec.Code)
	})

	terminal := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rr := httptest.NewRecorder()
	NewChain([]Middleware{observer}, terminal).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, seen)
	assert.Equal(t, http.StatusTeapot, rr.Code)
}
