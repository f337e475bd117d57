package validators

import (
	"fmt"
	"net/mail"

	"github.com/thsampaio/customer-gateway/models"
)

// Field name constants for the customer payload.
const (
	FieldExternal = "external"
	FieldName     = "name"
	FieldDocument = "document"
	FieldEmails   = "emails"
	FieldPhones   = "phones"
)

// maxFieldLength is the upper bound shared by all scalar customer fields,
// matching the VARCHAR(255) columns of the customers table.
const maxFieldLength = 255

// CustomerValidator implements [Validator] for customer payloads.
//
// The rules are: external, name and document are non-empty strings of at
// most 255 characters; emails is a non-empty list of syntactically valid
// addresses; phones is a list of strings with no further constraints.
type CustomerValidator struct {
}

// NewCustomerValidator constructs a CustomerValidator and returns it as the
// Validator interface.
func NewCustomerValidator() Validator {
	return &CustomerValidator{}
}

// ValidateNew checks the full payload of a customer to be created.
func (v *CustomerValidator) ValidateNew(input models.CustomerInput) map[string]string {
	fieldErrors := make(map[string]string)

	appendStringError(fieldErrors, FieldExternal, input.External)
	appendStringError(fieldErrors, FieldName, input.Name)
	appendStringError(fieldErrors, FieldDocument, input.Document)

	if len(input.Emails) == 0 {
		fieldErrors[FieldEmails] = "emails must not be empty"
	} else if message := validateEmails(input.Emails); message != "" {
		fieldErrors[FieldEmails] = message
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// ValidatePartial checks a partial update payload; only present fields are
// validated. Fields outside the customer shape are ignored here — the
// repository's allow-list decides what is actually applied.
func (v *CustomerValidator) ValidatePartial(data map[string]any) map[string]string {
	fieldErrors := make(map[string]string)

	for _, field := range []string{FieldExternal, FieldName, FieldDocument} {
		raw, present := data[field]
		if !present {
			continue
		}

		value, ok := raw.(string)
		if !ok {
			fieldErrors[field] = fmt.Sprintf("%s must be a string", field)
			continue
		}
		appendStringError(fieldErrors, field, value)
	}

	if raw, present := data[FieldEmails]; present {
		emails, ok := toStringSlice(raw)
		switch {
		case !ok:
			fieldErrors[FieldEmails] = "emails must be a list of strings"
		case len(emails) == 0:
			fieldErrors[FieldEmails] = "emails must not be empty"
		default:
			if message := validateEmails(emails); message != "" {
				fieldErrors[FieldEmails] = message
			}
		}
	}

	if raw, present := data[FieldPhones]; present {
		if _, ok := toStringSlice(raw); !ok {
			fieldErrors[FieldPhones] = "phones must be a list of strings"
		}
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

func appendStringError(fieldErrors map[string]string, field, value string) {
	switch {
	case value == "":
		fieldErrors[field] = fmt.Sprintf("%s must not be empty", field)
	case len(value) > maxFieldLength:
		fieldErrors[field] = fmt.Sprintf("%s must be at most %d characters", field, maxFieldLength)
	}
}

func validateEmails(emails []string) string {
	for _, email := range emails {
		if _, err := mail.ParseAddress(email); err != nil {
			return fmt.Sprintf("%q is not a valid email address", email)
		}
	}
	return ""
}

// toStringSlice accepts both []string and the []any produced by decoding a
// JSON array.
func toStringSlice(raw any) ([]string, bool) {
	switch values := raw.(type) {
	case []string:
		return values, true
	case []any:
		result := make([]string, 0, len(values))
		for _, v := range values {
			s, ok := v.(string)
			if !ok {
				return nil, false
			}
			result = append(result, s)
		}
		return result, true
	default:
		return nil, false
	}
}
