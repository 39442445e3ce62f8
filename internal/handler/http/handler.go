package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-food-order/internal/app"
	"github.com/MKhiriev/go-food-order/internal/config"
	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/service"
	"github.com/MKhiriev/go-food-order/internal/utils"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}

// decodeJSON decodes the request body into dst. An empty body leaves dst
// untouched, so required-field validation reports it instead.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// userIDFromRequest returns the user bound by the auth middleware and answers
// 401 when it is missing.
func (h *Handler) userIDFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Err(ErrNoUserIDInContext).Send()
		utils.WriteError(w, app.MsgAuthenticationRequired, http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}

// writeError answers with the status and client message mapped from err.
// Server-side failures always get the fallback message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(fallback)
		utils.WriteError(w, fallback, status)
		return
	}

	message := messageFromError(err, fallback)
	log.Warn().Err(err).Int("status", status).Msg(message)
	utils.WriteError(w, message, status)
}

func (h *Handler) invalidJSON(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Err(err).Msg(app.MsgInvalidJSON)
	utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
}
