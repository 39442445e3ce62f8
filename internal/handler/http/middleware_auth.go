// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing and CORS are handled
// at this layer before requests are forwarded to the service layer.
package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-food-order/internal/app"
	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and, on success, stores the
// authenticated user's ID in the request context under [utils.UserIDCtxKey]
// before delegating to the next handler. The request logger is enriched with
// the same user_id.
//
// Requests are rejected with HTTP 401 Unauthorized and a JSON error body:
//   - "Authentication required" when the header or the token is missing;
//   - "Invalid token" when the header is not a bearer header or the token
//     fails validation (bad signature, expired, wrong issuer).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			if errors.Is(err, utils.ErrInvalidAuthorizationHeader) {
				utils.WriteError(w, app.MsgInvalidToken, http.StatusUnauthorized)
				return
			}
			utils.WriteError(w, app.MsgAuthenticationRequired, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, app.MsgInvalidToken, http.StatusUnauthorized)
			return
		}

		ctx = log.WithUserID(token.UserID).WithContext(ctx)
		ctx = utils.WithUserID(ctx, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
