package http

import (
	"net/http"

	"github.com/thsampaio/customer-gateway/internal/utils"
	"github.com/thsampaio/customer-gateway/models"
)

// healthCheck answers GET /health. It is unauthenticated and exempt from
// rate limiting consequences so load balancers can probe freely.
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, models.HealthResponse{Status: "Health check is ok!"})
}
