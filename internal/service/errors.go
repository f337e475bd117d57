package service

import (
	"errors"
	"fmt"
)

// Sentinel errors produced by the token service. The JWT middleware maps
// each of them to its own 401 message.
var (
	// ErrTokenIsExpired indicates the token's exp claim is in the past.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrTokenSignatureInvalid indicates the token was signed with a
	// different secret.
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")

	// ErrTokenInvalid covers every other verification failure: malformed
	// tokens, unexpected signing methods, not-yet-valid tokens.
	ErrTokenInvalid = errors.New("token is invalid")
)

// ValidationError carries the field-level validation failures of a customer
// payload. It is returned as a value through the normal error path — no
// panics — and the handler layer serializes Fields into the error envelope.
type ValidationError struct {
	// Message is the top-level failure description.
	Message string

	// Fields maps a field name to its failure message. Nil when the
	// failure is not field-specific (e.g. a duplicate external key).
	Fields map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %d invalid fields", e.Message, len(e.Fields))
}
