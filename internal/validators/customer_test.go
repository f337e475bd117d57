package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thsampaio/customer-gateway/models"
)

func validInput() models.CustomerInput {
	return models.CustomerInput{
		External: "ext-001",
		Name:     "Jane Doe",
		Document: "12345678900",
		Emails:   []string{"jane@example.com"},
		Phones:   []string{"+5511999999999"},
	}
}

// ---- ValidateNew ----

func TestValidateNew_ValidInput_ReturnsNil(t *testing.T) {
	v := NewCustomerValidator()

	assert.Nil(t, v.ValidateNew(validInput()))
}

func TestValidateNew_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.CustomerInput)
		wantField string
	}{
		{
			name:      "empty external",
			mutate:    func(in *models.CustomerInput) { in.External = "" },
			wantField: FieldExternal,
		},
		{
			name:      "empty name",
			mutate:    func(in *models.CustomerInput) { in.Name = "" },
			wantField: FieldName,
		},
		{
			name:      "empty document",
			mutate:    func(in *models.CustomerInput) { in.Document = "" },
			wantField: FieldDocument,
		},
		{
			name:      "name too long",
			mutate:    func(in *models.CustomerInput) { in.Name = strings.Repeat("a", maxFieldLength+1) },
			wantField: FieldName,
		},
		{
			name:      "no emails",
			mutate:    func(in *models.CustomerInput) { in.Emails = nil },
			wantField: FieldEmails,
		},
		{
			name:      "invalid email address",
			mutate:    func(in *models.CustomerInput) { in.Emails = []string{"not-an-email"} },
			wantField: FieldEmails,
		},
		{
			name:      "one bad email among good ones",
			mutate:    func(in *models.CustomerInput) { in.Emails = []string{"ok@example.com", "broken"} },
			wantField: FieldEmails,
		},
	}

	v := NewCustomerValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			fieldErrors := v.ValidateNew(input)

			assert.Contains(t, fieldErrors, tt.wantField)
		})
	}
}

func TestValidateNew_CollectsAllFailures(t *testing.T) {
	v := NewCustomerValidator()

	fieldErrors := v.ValidateNew(models.CustomerInput{})

	assert.Len(t, fieldErrors, 4)
	assert.Contains(t, fieldErrors, FieldExternal)
	assert.Contains(t, fieldErrors, FieldName)
	assert.Contains(t, fieldErrors, FieldDocument)
	assert.Contains(t, fieldErrors, FieldEmails)
}

// ---- ValidatePartial ----

func TestValidatePartial_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		data      map[string]any
		wantField string
		wantValid bool
	}{
		{
			name:      "valid name only",
			data:      map[string]any{"name": "New Name"},
			wantValid: true,
		},
		{
			name:      "absent fields are not checked",
			data:      map[string]any{"document": "999"},
			wantValid: true,
		},
		{
			name:      "unknown fields are ignored",
			data:      map[string]any{"favourite_colour": 42},
			wantValid: true,
		},
		{
			name:      "empty name present",
			data:      map[string]any{"name": ""},
			wantField: FieldName,
		},
		{
			name:      "name with wrong type",
			data:      map[string]any{"name": 123},
			wantField: FieldName,
		},
		{
			name:      "emails as json array",
			data:      map[string]any{"emails": []any{"a@example.com"}},
			wantValid: true,
		},
		{
			name:      "emails with non-string element",
			data:      map[string]any{"emails": []any{"a@example.com", 7}},
			wantField: FieldEmails,
		},
		{
			name:      "emails present but empty",
			data:      map[string]any{"emails": []any{}},
			wantField: FieldEmails,
		},
		{
			name:      "phones with wrong type",
			data:      map[string]any{"phones": "555-0100"},
			wantField: FieldPhones,
		},
	}

	v := NewCustomerValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fieldErrors := v.ValidatePartial(tt.data)

			if tt.wantValid {
				assert.Nil(t, fieldErrors)
				return
			}
			assert.Contains(t, fieldErrors, tt.wantField)
		})
	}
}
