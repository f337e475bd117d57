package http

import (
	"net/http"

	"github.com/thsampaio/customer-gateway/internal/logger"
	"github.com/thsampaio/customer-gateway/internal/utils"
	"github.com/thsampaio/customer-gateway/models"
)

// issueToken answers GET /api/v1/token with a freshly signed guest token.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, err := h.services.IssueGuestToken(ctx)
	if err != nil {
		log.Err(err).Msg("failed to issue token")
		utils.WriteError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, models.TokenResponse{Token: token.String()})
}
