package validators

import "github.com/thsampaio/customer-gateway/models"

// Validator checks customer payloads before they reach the repository.
//
// Both methods return a map of field name to human-readable message for
// every failed rule, or nil when the payload is valid. Validation failures
// are data, not errors: the service layer turns a non-nil map into a 422
// response carrying the map verbatim.
type Validator interface {
	// ValidateNew checks the full payload of a customer to be created;
	// every field is required.
	ValidateNew(input models.CustomerInput) map[string]string

	// ValidatePartial checks a partial update payload; only the fields
	// present in data are checked.
	ValidatePartial(data map[string]any) map[string]string
}
