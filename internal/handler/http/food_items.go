package http

import (
	"net/http"

	"github.com/MKhiriev/go-food-order/internal/app"
	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/utils"
	"github.com/MKhiriev/go-food-order/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listFoodItems(w http.ResponseWriter, r *http.Request) {
	foodItems, err := h.services.FoodItemService.ListFoodItems(r.Context(), chi.URLParam(r, "restaurantId"))
	if err != nil {
		h.writeError(w, r, err, app.MsgFailedToFetchFoodItems)
		return
	}

	_, _ = utils.WriteJSON(w, foodItems, http.StatusOK)
}

func (h *Handler) getFoodItem(w http.ResponseWriter, r *http.Request) {
	foodItem, err := h.services.FoodItemService.GetFoodItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, app.MsgFailedToFetchFoodItem)
		return
	}

	_, _ = utils.WriteJSON(w, foodItem, http.StatusOK)
}

func (h *Handler) createFoodItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	var request models.CreateFoodItemRequest
	if err := decodeJSON(r, &request); err != nil {
		h.invalidJSON(w, r, err)
		return
	}
	request.UserID = userID

	foodItem, err := h.services.FoodItemService.CreateFoodItem(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err, app.MsgFailedToCreateFoodItem)
		return
	}

	_, _ = utils.WriteJSON(w, foodItem, http.StatusCreated)
}

func (h *Handler) updateFoodItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	var request models.UpdateFoodItemRequest
	if err := decodeJSON(r, &request); err != nil {
		h.invalidJSON(w, r, err)
		return
	}
	request.FoodID = chi.URLParam(r, "id")
	request.UserID = userID

	foodItem, err := h.services.FoodItemService.UpdateFoodItem(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err, app.MsgFailedToUpdateFoodItem)
		return
	}

	_, _ = utils.WriteJSON(w, foodItem, http.StatusOK)
}

func (h *Handler) deleteFoodItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	foodID := chi.URLParam(r, "id")
	if err := h.services.FoodItemService.DeleteFoodItem(r.Context(), foodID, userID); err != nil {
		h.writeError(w, r, err, app.MsgFailedToDeleteFoodItem)
		return
	}

	logger.FromRequest(r).Info().Str("food_id", foodID).Msg("food item deleted")
	w.WriteHeader(http.StatusNoContent)
}
