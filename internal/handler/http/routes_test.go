package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-food-order/internal/app"
	"github.com/MKhiriev/go-food-order/internal/config"
	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/service"
	"github.com/MKhiriev/go-food-order/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

var (
	publicRoutes = []routeCase{
		{http.MethodGet, "/api/health"},
		{http.MethodPost, "/api/auth/register"},
		{http.MethodPost, "/api/auth/login"},
		{http.MethodGet, "/api/restaurants"},
		{http.MethodGet, "/api/restaurants/{id}"},
		{http.MethodGet, "/api/food-items/restaurant/{restaurantId}"},
		{http.MethodGet, "/api/food-items/{id}"},
	}

	protectedRoutes = []routeCase{
		{http.MethodGet, "/api/restaurants/me"},
		{http.MethodPost, "/api/restaurants"},
		{http.MethodPatch, "/api/restaurants/{id}"},
		{http.MethodPost, "/api/food-items"},
		{http.MethodPatch, "/api/food-items/{id}"},
		{http.MethodDelete, "/api/food-items/{id}"},
		{http.MethodGet, "/api/carts"},
		{http.MethodPost, "/api/carts/items"},
		{http.MethodPatch, "/api/carts/items/{itemId}"},
		{http.MethodDelete, "/api/carts/items/{itemId}"},
		{http.MethodPost, "/api/carts/checkout"},
		{http.MethodGet, "/api/user/me"},
		{http.MethodPatch, "/api/user/me"},
	}
)

// concrete replaces chi URL parameters with sample IDs.
func concrete(path string) string {
	return strings.NewReplacer(
		"{id}", restID,
		"{restaurantId}", restID,
		"{itemId}", cartItemID,
	).Replace(path)
}

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	cfg := config.Server{FrontendURL: "http://localhost:5173"}
	log := logger.Nop()

	h := NewHandler(svcs, cfg, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Equal(t, cfg, h.cfg)
	assert.Equal(t, log, h.logger)
}

// TestInit_RegistersAllRoutes walks the router and checks that every API
// route is registered with its method.
func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	registered := map[routeCase]bool{}
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if len(route) > 1 && route[len(route)-1] == '/' {
			route = route[:len(route)-1]
		}
		registered[routeCase{method, route}] = true
		return nil
	})
	require.NoError(t, err)

	for _, rc := range append(publicRoutes, protectedRoutes...) {
		assert.True(t, registered[rc], "%s %s is not registered", rc.method, rc.path)
	}
}

// TestInit_ProtectedRoutesRequireToken verifies that every protected route
// answers 401 without a bearer token.
func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	for _, rc := range protectedRoutes {
		t.Run(rc.method+" "+rc.path, func(t *testing.T) {
			rec := serve(t, h, rc.method, concrete(rc.path), "", "")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, app.MsgAuthenticationRequired, errorBody(t, rec))
		})
	}
}

func TestInit_UnknownRoute(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	rec := serve(t, h, http.MethodGet, "/api/unknown", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgNotFound, errorBody(t, rec))
}

// TestInit_WrongMethodReturns404NotMethodNotAllowed verifies that a known
// path with an unsupported method answers like an unknown path.
func TestInit_WrongMethodReturns404NotMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	tests := []routeCase{
		{http.MethodPut, "/api/restaurants/" + restID},
		{http.MethodDelete, "/api/auth/login"},
		{http.MethodGet, "/api/carts/checkout"},
	}
	for _, rc := range tests {
		t.Run(rc.method+" "+rc.path, func(t *testing.T) {
			rec := serve(t, h, rc.method, rc.path, "", ownerID)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, app.MsgNotFound, errorBody(t, rec))
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	t.Run("generated", func(t *testing.T) {
		rec := serve(t, h, http.MethodGet, "/api/unknown", "", "")
		assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
		req.Header.Set(traceIDHeader, "trace-123")
		rec := httptest.NewRecorder()

		h.Init().ServeHTTP(rec, req)

		assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
	})
}

func TestInit_CORS(t *testing.T) {
	tests := []struct {
		name        string
		frontendURL string
		origin      string
		wantAllowed string
	}{
		{
			name:        "any origin when frontend URL is empty",
			origin:      "http://somewhere.example",
			wantAllowed: "*",
		},
		{
			name:        "configured origin is echoed",
			frontendURL: "http://localhost:5173",
			origin:      "http://localhost:5173",
			wantAllowed: "http://localhost:5173",
		},
		{
			name:        "other origins are rejected",
			frontendURL: "http://localhost:5173",
			origin:      "http://evil.example",
			wantAllowed: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&service.Services{AuthService: &mockAuthService{}}, config.Server{FrontendURL: tt.frontendURL}, logger.Nop())

			req := httptest.NewRequest(http.MethodOptions, "/api/restaurants", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			req.Header.Set("Access-Control-Request-Headers", "authorization,content-type")
			rec := httptest.NewRecorder()

			h.Init().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantAllowed, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

// TestInit_RequestTimeout verifies that the configured timeout reaches the
// request context.
func TestInit_RequestTimeout(t *testing.T) {
	var deadlineSet bool
	health := &mockHealthService{
		checkFn: func(ctx context.Context) (models.HealthResponse, error) {
			_, deadlineSet = ctx.Deadline()
			return models.HealthResponse{Status: app.MsgStatusOK}, nil
		},
	}
	h := NewHandler(&service.Services{HealthService: health}, config.Server{RequestTimeout: time.Second}, logger.Nop())

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, deadlineSet)
}
