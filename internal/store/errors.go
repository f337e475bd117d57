package store

import "errors"

// Sentinel errors returned by the store layer. Callers classify them with
// [errors.Is]; the HTTP layer maps them to status codes.
var (
	// ErrCustomerNotFound is returned when a lookup by code matches no row.
	ErrCustomerNotFound = errors.New("customer was not found")

	// ErrCustomerNotSaved is returned when an insert completes without
	// yielding the persisted row back.
	ErrCustomerNotSaved = errors.New("customer was not saved")

	// ErrExternalAlreadyExists is returned when an insert violates the
	// unique constraint on the external column.
	ErrExternalAlreadyExists = errors.New("external code already used")

	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing query")
	ErrScanningRow      = errors.New("error scanning row")
	ErrScanningRows     = errors.New("error scanning rows")

	// errRateLimitStoreUnavailable is returned by every rate limit store
	// method when no redis client is configured.
	errRateLimitStoreUnavailable = errors.New("rate limit store unavailable")
)
