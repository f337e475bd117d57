package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func executeLogging(h *Handler, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
	rr := httptest.NewRecorder()
	h.loggingMiddleware().Process(rr, req, next)
	return rr
}

func TestLoggingMiddleware_AttachesRequestLoggerToContext(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	var hadLogger bool
	executeLogging(h, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hadLogger = log.Ctx(r.Context()) != nil
	}))

	assert.True(t, hadLogger)
}

func TestLoggingMiddleware_PassesThroughStatus(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	rr := executeLogging(h, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestLoggingMiddleware_RecoversPanicWith500(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	rr := executeLogging(h, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Server Error", errorMessage(t, rr))
}
