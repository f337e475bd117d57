package utils

import (
	"encoding/json"
	"net/http"

	"github.com/thsampaio/customer-gateway/models"
)

// WriteJSON serializes v as JSON with the given status code.
//
// The Content-Type header is set before the status line is written. Encoding
// errors cannot be reported to the client at this point (the header has
// already been sent), so they are silently dropped; callers that need to
// observe them should serialize before calling.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the standard error envelope
// {"error":{"code":status,"message":message}} with the given status code.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, models.ErrorResponse{
		Error: models.ErrorDetail{Code: status, Message: message},
	})
}

// WriteValidationError writes the error envelope with the field-level errors
// map populated, as produced by the customer validator.
func WriteValidationError(w http.ResponseWriter, status int, message string, fields map[string]string) {
	WriteJSON(w, status, models.ErrorResponse{
		Error: models.ErrorDetail{Code: status, Message: message, Errors: fields},
	})
}
