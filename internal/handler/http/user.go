package http

import (
	"net/http"

	"github.com/MKhiriev/go-food-order/internal/app"
	"github.com/MKhiriev/go-food-order/internal/utils"
	"github.com/MKhiriev/go-food-order/models"
)

func (h *Handler) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err, app.MsgFailedToFetchUser)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	var request models.UpdateUserRequest
	if err := decodeJSON(r, &request); err != nil {
		h.invalidJSON(w, r, err)
		return
	}
	request.UserID = userID

	user, err := h.services.UserService.UpdateUser(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err, app.MsgFailedToUpdateUser)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}
