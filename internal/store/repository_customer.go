package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/thsampaio/customer-gateway/internal/logger"
	"github.com/thsampaio/customer-gateway/models"
)

// collectionCacheKey is the logical key under which the full customer
// collection is cached; single records live under "<collectionCacheKey>:<code>".
const collectionCacheKey = "customers"

// customerRepository is the PostgreSQL-backed implementation of
// [CustomerRepository] with cache-aside reads.
//
// Reads consult the cache first and populate it on miss with the cache's
// fixed TTL; writes invalidate the affected keys. The relational store stays
// authoritative: a down cache degrades every operation to the plain database
// path.
type customerRepository struct {
	db     *DB
	cache  Cache
	logger *logger.Logger
}

// NewCustomerRepository constructs a [CustomerRepository] backed by the given
// database connection and cache.
func NewCustomerRepository(db *DB, cache Cache, logger *logger.Logger) CustomerRepository {
	logger.Debug().Msg("creating customer repository")
	return &customerRepository{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

// cachedCustomer is the cache serialization of a customer row. It is a
// separate shape from [models.Customer] because the API representation hides
// the surrogate id, while the cache must round-trip it.
type cachedCustomer struct {
	ID       int64    `json:"id"`
	Code     string   `json:"code"`
	External string   `json:"external"`
	Name     string   `json:"name"`
	Document string   `json:"document"`
	Emails   []string `json:"emails"`
	Phones   []string `json:"phones"`
}

func toCached(c models.Customer) cachedCustomer {
	return cachedCustomer{
		ID:       c.ID,
		Code:     c.Code,
		External: c.External,
		Name:     c.Name,
		Document: c.Document,
		Emails:   c.Emails,
		Phones:   c.Phones,
	}
}

func (c cachedCustomer) toModel() models.Customer {
	return models.Customer{
		ID:       c.ID,
		Code:     c.Code,
		External: c.External,
		Name:     c.Name,
		Document: c.Document,
		Emails:   c.Emails,
		Phones:   c.Phones,
	}
}

// FindAll returns every customer ordered by name.
//
// Read-through: a cache hit on the collection key is returned without
// touching the database; on miss the result set is queried and, when
// non-empty, cached before returning.
func (r *customerRepository) FindAll(ctx context.Context) ([]models.Customer, error) {
	log := logger.FromContext(ctx)

	if raw, ok := r.cache.Get(ctx, collectionCacheKey); ok {
		var cached []cachedCustomer
		if err := json.Unmarshal(raw, &cached); err == nil {
			customers := make([]models.Customer, 0, len(cached))
			for _, c := range cached {
				customers = append(customers, c.toModel())
			}
			return customers, nil
		}
		log.Warn().Str("key", collectionCacheKey).Msg("discarding undecodable cache entry")
	}

	rows, err := r.db.QueryContext(ctx, findAllCustomers)
	if err != nil {
		log.Err(err).Str("func", "customerRepository.FindAll").Msg("failed to execute query for listing customers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	customers := make([]models.Customer, 0, 16)
	for rows.Next() {
		customer, scanErr := scanCustomer(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "customerRepository.FindAll").Msg("failed to scan customer row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		customers = append(customers, customer)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "customerRepository.FindAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	if len(customers) > 0 {
		cached := make([]cachedCustomer, 0, len(customers))
		for _, c := range customers {
			cached = append(cached, toCached(c))
		}
		r.populateCache(ctx, collectionCacheKey, cached)
	}

	return customers, nil
}

// FindByCode returns the customer with the given public code.
//
// Read-through on the per-record key; on miss the row is queried and cached.
// Returns ErrCustomerNotFound when no row matches.
func (r *customerRepository) FindByCode(ctx context.Context, code string) (models.Customer, error) {
	log := logger.FromContext(ctx)
	recordKey := recordCacheKey(code)

	if raw, ok := r.cache.Get(ctx, recordKey); ok {
		var cached cachedCustomer
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached.toModel(), nil
		}
		log.Warn().Str("key", recordKey).Msg("discarding undecodable cache entry")
	}

	row := r.db.QueryRowContext(ctx, findCustomerByCode, code)
	customer, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Customer{}, ErrCustomerNotFound
		}
		log.Err(err).Str("func", "customerRepository.FindByCode").Str("code", code).Msg("failed to query customer by code")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	r.populateCache(ctx, recordKey, toCached(customer))

	return customer, nil
}

// FindByExternal reports whether a customer with the given external key
// exists. The probe deliberately bypasses the cache.
func (r *customerRepository) FindByExternal(ctx context.Context, external string) (bool, error) {
	log := logger.FromContext(ctx)

	var id int64
	err := r.db.QueryRowContext(ctx, findCustomerByExternal, external).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		log.Err(err).Str("func", "customerRepository.FindByExternal").Msg("failed to query customer by external")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

// Save inserts a new customer and returns the persisted row with its
// store-assigned id and code. The collection cache key is invalidated; the
// per-record key cannot exist yet because the code is new.
func (r *customerRepository) Save(ctx context.Context, input models.CustomerInput) (models.Customer, error) {
	log := logger.FromContext(ctx)

	emails, err := json.Marshal(normalized(input.Emails))
	if err != nil {
		return models.Customer{}, fmt.Errorf("error encoding emails: %w", err)
	}
	phones, err := json.Marshal(normalized(input.Phones))
	if err != nil {
		return models.Customer{}, fmt.Errorf("error encoding phones: %w", err)
	}

	row := r.db.QueryRowContext(ctx, insertCustomer, input.External, input.Name, input.Document, emails, phones)
	customer, err := scanCustomer(row)
	if err != nil {
		log.Err(err).Str("func", "customerRepository.Save").Msg("failed to insert customer")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Customer{}, ErrExternalAlreadyExists
		default:
			return models.Customer{}, fmt.Errorf("%w: %w", ErrCustomerNotSaved, err)
		}
	}

	r.cache.Del(ctx, collectionCacheKey)

	return customer, nil
}

// Update applies the allow-listed fields present in data (name, document) to
// customer and invalidates both the per-record and the collection cache key.
//
// When data carries none of the allowed fields the call is a no-op: the
// unmodified customer is returned and neither the database nor the cache is
// touched.
func (r *customerRepository) Update(ctx context.Context, customer models.Customer, data map[string]any) (models.Customer, error) {
	log := logger.FromContext(ctx)

	query, args, changed, err := buildCustomerUpdateQuery(customer.ID, data)
	if err != nil {
		log.Err(err).Str("func", "customerRepository.Update").Str("code", customer.Code).Msg("failed to build update query")
		return models.Customer{}, err
	}
	if !changed {
		return customer, nil
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "customerRepository.Update").Str("code", customer.Code).Msg("failed to execute customer update")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if name, ok := data["name"].(string); ok {
		customer.Name = name
	}
	if document, ok := data["document"].(string); ok {
		customer.Document = document
	}

	r.cache.Del(ctx, recordCacheKey(customer.Code))
	r.cache.Del(ctx, collectionCacheKey)

	return customer, nil
}

// Delete removes the customer row by code.
//
// Both cache keys are invalidated in one pipelined delete, and only when a
// row was actually removed; a no-op delete leaves the cache untouched.
func (r *customerRepository) Delete(ctx context.Context, customer models.Customer) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCustomerByCode, customer.Code)
	if err != nil {
		log.Err(err).Str("func", "customerRepository.Delete").Str("code", customer.Code).Msg("failed to execute customer delete")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "customerRepository.Delete").Str("code", customer.Code).Msg("failed to read affected row count")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected != 1 {
		return false, nil
	}

	r.cache.Del(ctx, recordCacheKey(customer.Code), collectionCacheKey)

	return true, nil
}

// populateCache serializes v and stores it under key. Serialization failures
// only cost the cache entry, never the request.
func (r *customerRepository) populateCache(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("failed to serialize cache entry")
		return
	}
	r.cache.Set(ctx, key, raw)
}

func recordCacheKey(code string) string {
	return collectionCacheKey + ":" + code
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanCustomer reads a full customer row, decoding the emails and phones
// JSONB columns.
func scanCustomer(row rowScanner) (models.Customer, error) {
	var customer models.Customer
	var emails, phones []byte

	if err := row.Scan(&customer.ID, &customer.Code, &customer.External, &customer.Name, &customer.Document, &emails, &phones); err != nil {
		return models.Customer{}, err
	}

	if err := json.Unmarshal(emails, &customer.Emails); err != nil {
		return models.Customer{}, fmt.Errorf("error decoding emails: %w", err)
	}
	if err := json.Unmarshal(phones, &customer.Phones); err != nil {
		return models.Customer{}, fmt.Errorf("error decoding phones: %w", err)
	}

	return customer, nil
}

// normalized maps a nil slice to an empty one so JSONB columns always hold
// arrays, never null.
func normalized(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
