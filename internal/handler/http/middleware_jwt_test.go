package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thsampaio/customer-gateway/internal/service"
	"github.com/thsampaio/customer-gateway/internal/utils"
	"github.com/thsampaio/customer-gateway/models"
)

func executeJWT(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rr := httptest.NewRecorder()
	h.jwtMiddleware().Process(rr, req, next)
	return rr
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error.Message
}

func TestJWTMiddleware_ValidToken_CallsNextWithClaims(t *testing.T) {
	wantClaims := jwt.MapClaims{"sub": "guest"}
	tokens := &fakeTokenService{
		parseTokenFunc: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{SignedString: tokenString, Claims: wantClaims}, nil
		},
	}
	h := newTestHandler(nil, tokens, nil)

	var gotClaims any
	rr := executeJWT(h, "Bearer good-token", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims = r.Context().Value(utils.ClaimsCtxKey)
	}))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, wantClaims, gotClaims)
}

func TestJWTMiddleware_FailureModes_TableTest(t *testing.T) {
	tests := []struct {
		name        string
		authHeader  string
		parseErr    error
		wantMessage string
	}{
		{
			name:        "missing header",
			authHeader:  "",
			wantMessage: "Token not provided",
		},
		{
			name:        "malformed header",
			authHeader:  "NotBearer something",
			wantMessage: "Token not provided",
		},
		{
			name:        "expired token",
			authHeader:  "Bearer expired",
			parseErr:    service.ErrTokenIsExpired,
			wantMessage: "Expired token",
		},
		{
			name:        "tampered signature",
			authHeader:  "Bearer tampered",
			parseErr:    service.ErrTokenSignatureInvalid,
			wantMessage: "Invalid token",
		},
		{
			name:        "any other verification failure",
			authHeader:  "Bearer garbage",
			parseErr:    service.ErrTokenInvalid,
			wantMessage: "Authentication is failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := &fakeTokenService{
				parseTokenFunc: func(ctx context.Context, tokenString string) (models.Token, error) {
					return models.Token{}, tt.parseErr
				},
			}
			h := newTestHandler(nil, tokens, nil)

			nextCalled := false
			rr := executeJWT(h, tt.authHeader, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			}))

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, tt.wantMessage, errorMessage(t, rr))
			assert.False(t, nextCalled)
		})
	}
}
