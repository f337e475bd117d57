package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/thsampaio/customer-gateway/internal/config"
	"github.com/thsampaio/customer-gateway/internal/logger"
	"github.com/thsampaio/customer-gateway/internal/utils"
	"github.com/thsampaio/customer-gateway/models"
)

// tokenService is the concrete implementation of TokenService. It signs and
// verifies HMAC-SHA256 tokens with a single shared secret.
type tokenService struct {
	// signKey is the HMAC secret used to sign and verify tokens.
	signKey string

	// issuer is the "iss" claim embedded in every issued token.
	issuer string

	// duration controls how long a newly issued token remains valid.
	duration time.Duration

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewTokenService constructs a TokenService from the application security
// configuration.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
		logger:   logger,
	}
}

// Issue signs the given claim set with the configured secret.
func (s *tokenService) Issue(ctx context.Context, claims jwt.MapClaims) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(claims, s.signKey)
	if err != nil {
		log.Err(err).Msg("error issuing token")
		return models.Token{}, fmt.Errorf("error issuing token: %w", err)
	}

	return token, nil
}

// IssueGuestToken issues the guest token served by GET /api/v1/token.
//
// The token carries the full time-claim triple — iat (issued-at), nbf
// (not-before) and exp (expiration, now plus the configured duration) — so
// verification exercises every time-based check.
func (s *tokenService) IssueGuestToken(ctx context.Context) (models.Token, error) {
	now := time.Now()

	return s.Issue(ctx, jwt.MapClaims{
		"sub":  "guest",
		"name": "guest",
		"role": "guest",
		"iss":  s.issuer,
		"iat":  now.Unix(),
		"nbf":  now.Unix(),
		"exp":  now.Add(s.duration).Unix(),
	})
}

// ParseToken verifies tokenString and returns the decoded token.
//
// Verification failures are classified into the service sentinels so the
// JWT middleware can answer with a distinct 401 reason per failure mode:
//   - expired token            → ErrTokenIsExpired
//   - signature mismatch       → ErrTokenSignatureInvalid
//   - anything else (malformed,
//     not yet valid, ...)      → ErrTokenInvalid
func (s *tokenService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, s.signKey)
	if err != nil {
		log.Err(err).Msg("token verification failed")

		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return models.Token{}, ErrTokenIsExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return models.Token{}, ErrTokenSignatureInvalid
		default:
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
		}
	}

	return token, nil
}
