// Package service contains the application logic sitting between the HTTP
// handlers and the store layer: payload validation, uniqueness checks, and
// token issuance and verification.
package service

import (
	"github.com/thsampaio/customer-gateway/internal/config"
	"github.com/thsampaio/customer-gateway/internal/logger"
	"github.com/thsampaio/customer-gateway/internal/store"
	"github.com/thsampaio/customer-gateway/internal/validators"
)

// Services bundles every application service consumed by the HTTP layer.
type Services struct {
	CustomerService
	TokenService
}

// NewServices wires the service layer over the given repositories and
// application configuration.
func NewServices(repos *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		CustomerService: NewCustomerService(repos.Customer, validators.NewCustomerValidator(), logger),
		TokenService:    NewTokenService(cfg, logger),
	}
}
