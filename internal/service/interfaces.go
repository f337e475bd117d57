package service

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/thsampaio/customer-gateway/models"
)

// CustomerService is the application-level API over the customer repository.
// It validates payloads, enforces the external-key uniqueness probe before
// inserts, and delegates persistence to the store layer.
type CustomerService interface {
	// GetCustomers returns every customer.
	GetCustomers(ctx context.Context) ([]models.Customer, error)

	// GetCustomerByCode returns the customer with the given public code,
	// or store.ErrCustomerNotFound.
	GetCustomerByCode(ctx context.Context, code string) (models.Customer, error)

	// CreateCustomer validates input, checks external-key uniqueness, and
	// inserts. Validation failures surface as *ValidationError.
	CreateCustomer(ctx context.Context, input models.CustomerInput) (models.Customer, error)

	// UpdateCustomer validates the partial payload and applies it to
	// customer.
	UpdateCustomer(ctx context.Context, customer models.Customer, data map[string]any) (models.Customer, error)

	// DeleteCustomer removes customer, reporting whether a row was
	// actually deleted.
	DeleteCustomer(ctx context.Context, customer models.Customer) (bool, error)
}

// TokenService issues and verifies the signed, time-bound tokens guarding
// the API.
type TokenService interface {
	// Issue signs the given claim set.
	Issue(ctx context.Context, claims jwt.MapClaims) (models.Token, error)

	// IssueGuestToken issues the short-lived guest token served by
	// GET /api/v1/token, carrying sub, name, role, iat, exp and nbf.
	IssueGuestToken(ctx context.Context) (models.Token, error)

	// ParseToken verifies tokenString and returns its claims. Failures
	// are classified as ErrTokenIsExpired, ErrTokenSignatureInvalid or
	// ErrTokenInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
