package http

import (
	"net/http"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/utils"
)

// health answers 200 when the store is reachable and 503 otherwise. Both
// bodies carry the status and the build version.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	response, err := h.services.HealthService.Check(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("health check failed")
		_, _ = utils.WriteJSON(w, response, http.StatusServiceUnavailable)
		return
	}

	_, _ = utils.WriteJSON(w, response, http.StatusOK)
}
