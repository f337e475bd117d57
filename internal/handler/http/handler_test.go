package http

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/thsampaio/customer-gateway/internal/config"
	"github.com/thsampaio/customer-gateway/internal/logger"
	"github.com/thsampaio/customer-gateway/internal/service"
	"github.com/thsampaio/customer-gateway/internal/store"
	"github.com/thsampaio/customer-gateway/models"
)

// ---- shared test doubles ----

// fakeCustomerService stubs the customer service per test.
type fakeCustomerService struct {
	getCustomersFunc      func(ctx context.Context) ([]models.Customer, error)
	getCustomerByCodeFunc func(ctx context.Context, code string) (models.Customer, error)
	createCustomerFunc    func(ctx context.Context, input models.CustomerInput) (models.Customer, error)
	updateCustomerFunc    func(ctx context.Context, customer models.Customer, data map[string]any) (models.Customer, error)
	deleteCustomerFunc    func(ctx context.Context, customer models.Customer) (bool, error)
}

func (f *fakeCustomerService) GetCustomers(ctx context.Context) ([]models.Customer, error) {
	return f.getCustomersFunc(ctx)
}

func (f *fakeCustomerService) GetCustomerByCode(ctx context.Context, code string) (models.Customer, error) {
	return f.getCustomerByCodeFunc(ctx, code)
}

func (f *fakeCustomerService) CreateCustomer(ctx context.Context, input models.CustomerInput) (models.Customer, error) {
	return f.createCustomerFunc(ctx, input)
}

func (f *fakeCustomerService) UpdateCustomer(ctx context.Context, customer models.Customer, data map[string]any) (models.Customer, error) {
	return f.updateCustomerFunc(ctx, customer, data)
}

func (f *fakeCustomerService) DeleteCustomer(ctx context.Context, customer models.Customer) (bool, error) {
	return f.deleteCustomerFunc(ctx, customer)
}

// fakeTokenService stubs token issuance and verification.
type fakeTokenService struct {
	issueGuestTokenFunc func(ctx context.Context) (models.Token, error)
	parseTokenFunc      func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeTokenService) Issue(_ context.Context, claims jwt.MapClaims) (models.Token, error) {
	return models.Token{Claims: claims}, nil
}

func (f *fakeTokenService) IssueGuestToken(ctx context.Context) (models.Token, error) {
	return f.issueGuestTokenFunc(ctx)
}

func (f *fakeTokenService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return f.parseTokenFunc(ctx, tokenString)
}

// fakeRateLimitStore is an in-memory RateLimitStore. Setting failWith makes
// every method fail, for exercising the fail-open path.
type fakeRateLimitStore struct {
	counters map[string]int64
	locks    map[string]time.Duration
	failWith error
}

func newFakeRateLimitStore() *fakeRateLimitStore {
	return &fakeRateLimitStore{
		counters: make(map[string]int64),
		locks:    make(map[string]time.Duration),
	}
}

func (s *fakeRateLimitStore) IsLocked(_ context.Context, id string) (bool, time.Duration, error) {
	if s.failWith != nil {
		return false, 0, s.failWith
	}
	remaining, locked := s.locks[id]
	return locked, remaining, nil
}

func (s *fakeRateLimitStore) RecordFailure(_ context.Context, id string, _ time.Duration) (int64, error) {
	if s.failWith != nil {
		return 0, s.failWith
	}
	s.counters[id]++
	return s.counters[id], nil
}

func (s *fakeRateLimitStore) Lock(_ context.Context, id string, jail time.Duration) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.locks[id] = jail
	return nil
}

func (s *fakeRateLimitStore) Clear(_ context.Context, id string) error {
	if s.failWith != nil {
		return s.failWith
	}
	delete(s.counters, id)
	delete(s.locks, id)
	return nil
}

// ---- construction helpers ----

func testRateLimitConfig() config.RateLimit {
	return config.RateLimit{
		Attempts: 5,
		Window:   450 * time.Second,
		Jail:     450 * time.Second,
	}
}

func newTestHandler(customers service.CustomerService, tokens service.TokenService, rateLimits store.RateLimitStore) *Handler {
	if rateLimits == nil {
		rateLimits = newFakeRateLimitStore()
	}
	return NewHandler(&service.Services{
		CustomerService: customers,
		TokenService:    tokens,
	}, rateLimits, testRateLimitConfig(), logger.Nop())
}

// injectNopLogger puts a nop logger into the request context, standing in
// for the logging middleware when a handler is exercised directly.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}
