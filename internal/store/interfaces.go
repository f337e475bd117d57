package store

import (
	"context"
	"time"

	"github.com/thsampaio/customer-gateway/models"
)

// CustomerRepository owns the relational customer schema operations and
// coordinates with the cache to keep cached reads fresh (cache-aside: reads
// populate, writes invalidate).
type CustomerRepository interface {
	// FindAll returns every customer ordered by name, serving from the
	// cache when possible.
	FindAll(ctx context.Context) ([]models.Customer, error)

	// FindByCode returns the customer with the given public code, serving
	// from the cache when possible. Returns ErrCustomerNotFound when no
	// such customer exists.
	FindByCode(ctx context.Context, code string) (models.Customer, error)

	// FindByExternal reports whether a customer with the given external
	// deduplication key exists. Never cached: a stale negative here would
	// break the pre-insert uniqueness probe.
	FindByExternal(ctx context.Context, external string) (bool, error)

	// Save inserts a new customer and returns it with the store-assigned
	// id and code. Invalidates the collection cache key.
	Save(ctx context.Context, input models.CustomerInput) (models.Customer, error)

	// Update applies the allow-listed fields present in data to customer.
	// When data carries none of the allowed fields it is a no-op returning
	// the unmodified customer without touching the database or the cache.
	Update(ctx context.Context, customer models.Customer, data map[string]any) (models.Customer, error)

	// Delete removes the customer by code. Returns true and invalidates
	// both cache keys only when a row was actually deleted.
	Delete(ctx context.Context, customer models.Customer) (bool, error)
}

// Cache is the key-value cache consulted by the cache-aside repository.
//
// Implementations must tolerate an unavailable backend: Get behaves as a
// miss, Set and Del are no-ops, and no method ever fails the enclosing
// repository operation.
type Cache interface {
	// Get returns the cached value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value under key with the cache's fixed TTL.
	Set(ctx context.Context, key string, value []byte)

	// Del removes the given keys; multiple keys are removed in a single
	// pipelined round trip.
	Del(ctx context.Context, keys ...string)
}

// RateLimitStore tracks per-client failure counters and lockout state in a
// shared key-value store. The increment and expiry primitives must be atomic
// so concurrent requests from one client never lose counts.
type RateLimitStore interface {
	// IsLocked reports whether id is locked out, and if so for how much
	// longer.
	IsLocked(ctx context.Context, id string) (bool, time.Duration, error)

	// RecordFailure atomically increments the failure counter for id and
	// (re)sets its expiry to window, returning the new count.
	RecordFailure(ctx context.Context, id string, window time.Duration) (int64, error)

	// Lock places id in the locked state for the given duration.
	Lock(ctx context.Context, id string, jail time.Duration) error

	// Clear removes both the failure counter and any lockout flag for id.
	Clear(ctx context.Context, id string) error
}
