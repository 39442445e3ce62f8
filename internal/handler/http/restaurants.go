package http

import (
	"net/http"

	"github.com/MKhiriev/go-food-order/internal/app"
	"github.com/MKhiriev/go-food-order/internal/utils"
	"github.com/MKhiriev/go-food-order/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.services.RestaurantService.ListRestaurants(r.Context())
	if err != nil {
		h.writeError(w, r, err, app.MsgFailedToFetchRestaurants)
		return
	}

	_, _ = utils.WriteJSON(w, restaurants, http.StatusOK)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.services.RestaurantService.GetRestaurant(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, app.MsgFailedToFetchRestaurant)
		return
	}

	_, _ = utils.WriteJSON(w, restaurant, http.StatusOK)
}

func (h *Handler) getMyRestaurant(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	restaurant, err := h.services.RestaurantService.GetOwnRestaurant(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err, app.MsgFailedToFetchRestaurant)
		return
	}

	_, _ = utils.WriteJSON(w, restaurant, http.StatusOK)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	var request models.CreateRestaurantRequest
	if err := decodeJSON(r, &request); err != nil {
		h.invalidJSON(w, r, err)
		return
	}
	request.OwnerID = userID

	restaurant, err := h.services.RestaurantService.CreateRestaurant(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err, app.MsgFailedToCreateRestaurant)
		return
	}

	_, _ = utils.WriteJSON(w, restaurant, http.StatusCreated)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	var request models.UpdateRestaurantRequest
	if err := decodeJSON(r, &request); err != nil {
		h.invalidJSON(w, r, err)
		return
	}
	request.RestaurantID = chi.URLParam(r, "id")
	request.UserID = userID

	restaurant, err := h.services.RestaurantService.UpdateRestaurant(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err, app.MsgFailedToUpdateRestaurant)
		return
	}

	_, _ = utils.WriteJSON(w, restaurant, http.StatusOK)
}
