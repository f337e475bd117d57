package service

import (
	"context"
	"fmt"

	"github.com/thsampaio/customer-gateway/internal/logger"
	"github.com/thsampaio/customer-gateway/internal/store"
	"github.com/thsampaio/customer-gateway/internal/validators"
	"github.com/thsampaio/customer-gateway/models"
)

// customerService is the concrete implementation of CustomerService.
type customerService struct {
	repository store.CustomerRepository
	validator  validators.Validator
	logger     *logger.Logger
}

// NewCustomerService constructs a CustomerService over the given repository
// and validator.
func NewCustomerService(repository store.CustomerRepository, validator validators.Validator, logger *logger.Logger) CustomerService {
	return &customerService{
		repository: repository,
		validator:  validator,
		logger:     logger,
	}
}

// GetCustomers returns every customer.
func (s *customerService) GetCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.repository.FindAll(ctx)
}

// GetCustomerByCode returns the customer with the given public code.
func (s *customerService) GetCustomerByCode(ctx context.Context, code string) (models.Customer, error) {
	return s.repository.FindByCode(ctx, code)
}

// CreateCustomer validates input, probes the external key for uniqueness,
// and inserts the new customer.
//
// The uniqueness probe runs before the insert so the common duplicate case
// surfaces as a clean 422; the database unique constraint still backs it up
// against concurrent inserts of the same external key.
func (s *customerService) CreateCustomer(ctx context.Context, input models.CustomerInput) (models.Customer, error) {
	log := logger.FromContext(ctx)

	if fieldErrors := s.validator.ValidateNew(input); fieldErrors != nil {
		log.Error().Any("fields", fieldErrors).Msg("customer payload failed validation")
		return models.Customer{}, &ValidationError{Message: "Validation failed", Fields: fieldErrors}
	}

	exists, err := s.repository.FindByExternal(ctx, input.External)
	if err != nil {
		log.Err(err).Str("external", input.External).Msg("external uniqueness probe failed")
		return models.Customer{}, fmt.Errorf("external uniqueness probe failed: %w", err)
	}
	if exists {
		return models.Customer{}, &ValidationError{Message: "External code already used"}
	}

	return s.repository.Save(ctx, input)
}

// UpdateCustomer validates the partial payload and applies it to customer.
func (s *customerService) UpdateCustomer(ctx context.Context, customer models.Customer, data map[string]any) (models.Customer, error) {
	log := logger.FromContext(ctx)

	if fieldErrors := s.validator.ValidatePartial(data); fieldErrors != nil {
		log.Error().Any("fields", fieldErrors).Msg("customer update payload failed validation")
		return models.Customer{}, &ValidationError{Message: "Validation failed", Fields: fieldErrors}
	}

	return s.repository.Update(ctx, customer, data)
}

// DeleteCustomer removes customer, reporting whether a row was actually
// deleted.
func (s *customerService) DeleteCustomer(ctx context.Context, customer models.Customer) (bool, error) {
	return s.repository.Delete(ctx, customer)
}
