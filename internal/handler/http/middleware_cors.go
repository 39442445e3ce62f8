package http

import (
	"net/http"

	"github.com/rs/cors"
)

// withCORS allows the configured frontend origin, or any origin when none is
// configured. Credentials are only allowed for an explicit origin.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	origins := []string{"*"}
	if h.cfg.FrontendURL != "" {
		origins = []string{h.cfg.FrontendURL}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Authorization", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: h.cfg.FrontendURL != "",
	})
	return c.Handler
}
