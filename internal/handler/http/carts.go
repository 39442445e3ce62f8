package http

import (
	"net/http"

	"github.com/MKhiriev/go-food-order/internal/app"
	"github.com/MKhiriev/go-food-order/internal/utils"
	"github.com/MKhiriev/go-food-order/models"
	"github.com/go-chi/chi/v5"
)

// getCart answers the caller's most recently updated cart, or JSON null.
func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	cart, err := h.services.CartService.GetCart(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err, app.MsgFailedToFetchCart)
		return
	}

	_, _ = utils.WriteJSON(w, cart, http.StatusOK)
}

// addCartItem answers 201 for a new cart line and 200 when the quantity of
// an existing line was increased.
func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	var request models.AddCartItemRequest
	if err := decodeJSON(r, &request); err != nil {
		h.invalidJSON(w, r, err)
		return
	}
	request.UserID = userID

	item, created, err := h.services.CartService.AddItem(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err, app.MsgFailedToAddCartItem)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	_, _ = utils.WriteJSON(w, item, status)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	var request models.UpdateCartItemRequest
	if err := decodeJSON(r, &request); err != nil {
		h.invalidJSON(w, r, err)
		return
	}
	request.CartItemID = chi.URLParam(r, "itemId")
	request.UserID = userID

	item, err := h.services.CartService.UpdateItem(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err, app.MsgFailedToUpdateCartItem)
		return
	}

	_, _ = utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.CartService.RemoveItem(r.Context(), chi.URLParam(r, "itemId"), userID); err != nil {
		h.writeError(w, r, err, app.MsgFailedToRemoveCartItem)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.CartService.Checkout(r.Context(), userID); err != nil {
		h.writeError(w, r, err, app.MsgCheckoutFailed)
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: app.MsgOrderPlaced}, http.StatusOK)
}
