package models

// ErrorDetail is the payload of every error response produced by the API.
// Errors is populated only for field-level validation failures and maps a
// field name to a human-readable message.
type ErrorDetail struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// ErrorResponse is the envelope wrapping every non-2xx API response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// TokenResponse is the body of GET /api/v1/token.
type TokenResponse struct {
	Token string `json:"token"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// CustomerResponse wraps a single customer for show/update responses.
type CustomerResponse struct {
	Customer Customer `json:"customer"`
}

// CustomersResponse wraps the customer collection for list responses.
type CustomersResponse struct {
	Count     int        `json:"count"`
	Customers []Customer `json:"customers"`
}
