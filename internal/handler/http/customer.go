package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/thsampaio/customer-gateway/internal/logger"
	"github.com/thsampaio/customer-gateway/internal/router"
	"github.com/thsampaio/customer-gateway/internal/service"
	"github.com/thsampaio/customer-gateway/internal/store"
	"github.com/thsampaio/customer-gateway/internal/utils"
	"github.com/thsampaio/customer-gateway/models"
)

// listCustomers answers GET /api/v1/customers with every customer ordered
// by name.
func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	customers, err := h.services.GetCustomers(ctx)
	if err != nil {
		log.Err(err).Msg("failed to list customers")
		utils.WriteError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, models.CustomersResponse{
		Count:     len(customers),
		Customers: customers,
	})
}

// showCustomer answers GET /api/v1/customers/{code}.
func (h *Handler) showCustomer(w http.ResponseWriter, r *http.Request) {
	customer, ok := h.findCustomer(w, r)
	if !ok {
		return
	}

	utils.WriteJSON(w, http.StatusOK, models.CustomerResponse{Customer: customer})
}

// createCustomer answers POST /api/v1/customers.
//
// On success the response is 201 with a Location header pointing at the new
// record. An empty object is rejected with 400 before validation runs;
// validation failures come back as 422 with the per-field error map.
func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Warn().Err(err).Msg("unreadable customer payload")
		utils.WriteError(w, http.StatusUnprocessableEntity, "Invalid format (only json)")
		return
	}

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		log.Warn().Err(err).Msg("undecodable customer payload")
		utils.WriteError(w, http.StatusUnprocessableEntity, "Invalid format (only json)")
		return
	}
	if len(fields) == 0 {
		utils.WriteError(w, http.StatusBadRequest, "No fields provided")
		return
	}

	var input models.CustomerInput
	if err := json.Unmarshal(body, &input); err != nil {
		log.Warn().Err(err).Msg("undecodable customer payload")
		utils.WriteError(w, http.StatusUnprocessableEntity, "Invalid format (only json)")
		return
	}

	customer, err := h.services.CreateCustomer(ctx, input)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			utils.WriteValidationError(w, http.StatusUnprocessableEntity, validationErr.Message, validationErr.Fields)
		case errors.Is(err, store.ErrExternalAlreadyExists):
			// Concurrent insert slipped past the uniqueness probe and hit
			// the database constraint.
			utils.WriteError(w, http.StatusUnprocessableEntity, "External code already used")
		default:
			log.Err(err).Msg("failed to create customer")
			utils.WriteError(w, http.StatusInternalServerError, "Server Error")
		}
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/customers/%s", customer.Code))
	utils.WriteJSON(w, http.StatusCreated, models.CustomerResponse{Customer: customer})
}

// updateCustomer answers PUT /api/v1/customers/{code}. The payload is a
// partial document; only the allow-listed fields are applied and unknown
// fields are ignored.
func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	customer, ok := h.findCustomer(w, r)
	if !ok {
		return
	}

	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		log.Warn().Err(err).Msg("undecodable update payload")
		utils.WriteError(w, http.StatusUnprocessableEntity, "Invalid format (only json)")
		return
	}
	if len(data) == 0 {
		utils.WriteError(w, http.StatusBadRequest, "No fields provided")
		return
	}

	updated, err := h.services.UpdateCustomer(ctx, customer, data)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			utils.WriteValidationError(w, http.StatusUnprocessableEntity, validationErr.Message, validationErr.Fields)
			return
		}
		log.Err(err).Str("code", customer.Code).Msg("failed to update customer")
		utils.WriteError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, models.CustomerResponse{Customer: updated})
}

// deleteCustomer answers DELETE /api/v1/customers/{code} with 204 on
// success.
func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	customer, ok := h.findCustomer(w, r)
	if !ok {
		return
	}

	deleted, err := h.services.DeleteCustomer(ctx, customer)
	if err != nil {
		log.Err(err).Str("code", customer.Code).Msg("failed to delete customer")
		utils.WriteError(w, http.StatusInternalServerError, "Server Error")
		return
	}
	if !deleted {
		// The row disappeared between the lookup and the delete.
		utils.WriteError(w, http.StatusNotFound, "Customer not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// findCustomer resolves the {code} path parameter to a customer, writing
// the error response itself when the code is malformed or unknown. The
// boolean reports whether the caller should proceed.
func (h *Handler) findCustomer(w http.ResponseWriter, r *http.Request) (models.Customer, bool) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	code := router.Param(r, "code")
	if !utils.ValidateCodePattern(code) {
		utils.WriteError(w, http.StatusBadRequest, "Invalid customer code")
		return models.Customer{}, false
	}

	customer, err := h.services.GetCustomerByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrCustomerNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Customer not found")
			return models.Customer{}, false
		}
		log.Err(err).Str("code", code).Msg("failed to load customer")
		utils.WriteError(w, http.StatusInternalServerError, "Server Error")
		return models.Customer{}, false
	}

	return customer, true
}
