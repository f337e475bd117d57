package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/thsampaio/customer-gateway/models"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token carrying the given
// claim set.
//
// The caller is responsible for populating the registered claims it needs
// (iat, exp, nbf, sub, ...); this function only signs whatever it is given.
//
// Returns an error if the claim set is empty, the sign key is empty, or
// signing fails.
func GenerateJWTToken(claims jwt.MapClaims, signKey string) (models.Token, error) {
	if len(claims) == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, Claims: claims}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation enforces the HS256 signing method, signature verification with
// signKey, and the standard time-based claims: exp (expiration), nbf
// (not-before) and iat (issued-at). Failures surface the golang-jwt sentinel
// errors (jwt.ErrTokenExpired, jwt.ErrTokenSignatureInvalid,
// jwt.ErrTokenNotValidYet, ...) wrapped, so callers can classify them with
// [errors.Is].
func ValidateAndParseJWTToken(tokenString, signKey string) (models.Token, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, Claims: claims}, nil
}

// ParseBearerToken extracts the token string from a raw "Authorization"
// header value of the form "Bearer <token>".
//
// The scheme must be exactly "Bearer"; anything else (missing scheme, wrong
// scheme, empty token) returns an error.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
