package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thsampaio/customer-gateway/models"
)

func TestWriteJSON_SetsContentTypeAndStatus(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteJSON(rr, http.StatusCreated, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"hello":"world"}`, rr.Body.String())
}

func TestWriteError_WrapsInEnvelope(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteError(rr, http.StatusNotFound, "Customer not found")

	assert.Equal(t, http.StatusNotFound, rr.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, body.Error.Code)
	assert.Equal(t, "Customer not found", body.Error.Message)
	assert.Nil(t, body.Error.Errors)
}

func TestWriteError_OmitsEmptyFieldErrors(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteError(rr, http.StatusBadRequest, "No fields provided")

	assert.NotContains(t, rr.Body.String(), `"errors"`)
}

func TestWriteValidationError_IncludesFieldErrors(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteValidationError(rr, http.StatusUnprocessableEntity, "Validation failed", map[string]string{
		"name": "The name field is required",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Validation failed", body.Error.Message)
	assert.Equal(t, "The name field is required", body.Error.Errors["name"])
}
