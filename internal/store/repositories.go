package store

import (
	"github.com/thsampaio/customer-gateway/internal/logger"
)

// Repositories bundles every repository of the store layer for injection
// into the service layer.
type Repositories struct {
	Customer CustomerRepository
}

// NewRepositories wires all repositories to the shared database connection
// and cache.
func NewRepositories(db *DB, cache Cache, logger *logger.Logger) *Repositories {
	logger.Info().Msg("creating repositories...")
	return &Repositories{
		Customer: NewCustomerRepository(db, cache, logger),
	}
}
