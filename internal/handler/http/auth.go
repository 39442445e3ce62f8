package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-food-order/internal/app"
	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/utils"
	"github.com/MKhiriev/go-food-order/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.RegisterRequest
	if err := decodeJSON(r, &request); err != nil {
		h.invalidJSON(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		h.writeError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	h.writeAuthResponse(w, r, registeredUser, http.StatusCreated, app.MsgRegistrationFailed)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := decodeJSON(r, &request); err != nil {
		h.invalidJSON(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		h.writeError(w, r, err, app.MsgLoginFailed)
		return
	}

	log.Debug().Str("id", foundUser.UserID).Msg("user successfully logged in")

	h.writeAuthResponse(w, r, foundUser, http.StatusOK, app.MsgLoginFailed)
}

// writeAuthResponse issues a token for user and answers {user, token}. The
// token is also set in the Authorization response header.
func (h *Handler) writeAuthResponse(w http.ResponseWriter, r *http.Request, user models.User, status int, fallback string) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		h.writeError(w, r, err, fallback)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, _ = utils.WriteJSON(w, models.AuthResponse{User: user, Token: token.SignedString}, status)
}
