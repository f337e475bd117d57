package store

import (
	"fmt"

	"github.com/Masterminds/squirrel"
)

const (
	findAllCustomers = `SELECT id, code, external, name, document, emails, phones
    FROM customers
    ORDER BY name ASC;`

	findCustomerByCode = `SELECT id, code, external, name, document, emails, phones
    FROM customers
    WHERE code = $1;`

	findCustomerByExternal = `SELECT id
    FROM customers
    WHERE external = $1;`

	insertCustomer = `INSERT INTO customers (external, name, document, emails, phones)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, code, external, name, document, emails, phones;`

	deleteCustomerByCode = `DELETE FROM customers
    WHERE code = $1;`
)

// updatableCustomerFields is the allow-list of columns a partial update may
// touch. Keys outside this list are silently ignored; the validator upstream
// is responsible for rejecting them before this layer.
var updatableCustomerFields = []string{"name", "document"}

// buildCustomerUpdateQuery builds the dynamic UPDATE statement for a partial
// customer update from the allow-listed string fields present in data.
//
// The boolean result reports whether any updatable field was present; when
// false the caller must treat the update as a no-op (no statement, no cache
// invalidation).
func buildCustomerUpdateQuery(id int64, data map[string]any) (string, []any, bool, error) {
	builder := squirrel.Update("customers").PlaceholderFormat(squirrel.Dollar)

	changed := false
	for _, field := range updatableCustomerFields {
		value, ok := data[field].(string)
		if !ok {
			continue
		}
		builder = builder.Set(field, value)
		changed = true
	}

	if !changed {
		return "", nil, false, nil
	}

	query, args, err := builder.Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return "", nil, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, true, nil
}
