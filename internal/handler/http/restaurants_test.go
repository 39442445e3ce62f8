package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-food-order/internal/app"
	"github.com/MKhiriev/go-food-order/internal/service"
	"github.com/MKhiriev/go-food-order/internal/store"
	"github.com/MKhiriev/go-food-order/internal/validators"
	"github.com/MKhiriev/go-food-order/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pizzeria = models.Restaurant{
	RestaurantID: restID,
	Name:         "Pizzeria",
	Address:      "1 Main St",
	OwnerID:      ownerID,
	Owner:        &models.Owner{FirstName: "Alice", LastName: "Smith", Email: "alice@example.com"},
}

func TestListRestaurants(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &mockRestaurantService{
			listRestaurantsFn: func(_ context.Context) ([]models.Restaurant, error) {
				return []models.Restaurant{pizzeria}, nil
			},
		}
		h := newTestHandler(t, &service.Services{RestaurantService: svc})

		rec := serve(t, h, http.MethodGet, "/api/restaurants", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeBody[[]models.Restaurant](t, rec)
		require.Len(t, got, 1)
		assert.Equal(t, "Pizzeria", got[0].Name)
		require.NotNil(t, got[0].Owner)
		assert.Equal(t, "alice@example.com", got[0].Owner.Email)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		svc := &mockRestaurantService{
			listRestaurantsFn: func(_ context.Context) ([]models.Restaurant, error) {
				return []models.Restaurant{}, nil
			},
		}
		h := newTestHandler(t, &service.Services{RestaurantService: svc})

		rec := serve(t, h, http.MethodGet, "/api/restaurants", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		svc := &mockRestaurantService{
			listRestaurantsFn: func(_ context.Context) ([]models.Restaurant, error) {
				return nil, fmt.Errorf("%w: timeout", store.ErrExecutingQuery)
			},
		}
		h := newTestHandler(t, &service.Services{RestaurantService: svc})

		rec := serve(t, h, http.MethodGet, "/api/restaurants", "", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, app.MsgFailedToFetchRestaurants, errorBody(t, rec))
	})
}

func TestGetRestaurant(t *testing.T) {
	t.Run("found with menu", func(t *testing.T) {
		withMenu := pizzeria
		withMenu.FoodItems = []models.FoodItem{{FoodID: foodID, Name: "Margherita", Price: 9.5, InStock: true}}
		svc := &mockRestaurantService{
			getRestaurantFn: func(_ context.Context, id string) (models.Restaurant, error) {
				assert.Equal(t, restID, id)
				return withMenu, nil
			},
		}
		h := newTestHandler(t, &service.Services{RestaurantService: svc})

		rec := serve(t, h, http.MethodGet, "/api/restaurants/"+restID, "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeBody[models.Restaurant](t, rec)
		require.Len(t, got.FoodItems, 1)
		assert.Equal(t, "Margherita", got.FoodItems[0].Name)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &mockRestaurantService{
			getRestaurantFn: func(_ context.Context, _ string) (models.Restaurant, error) {
				return models.Restaurant{}, store.ErrRestaurantNotFound
			},
		}
		h := newTestHandler(t, &service.Services{RestaurantService: svc})

		rec := serve(t, h, http.MethodGet, "/api/restaurants/not-a-uuid", "", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, app.MsgRestaurantNotFound, errorBody(t, rec))
	})
}

func TestGetMyRestaurant(t *testing.T) {
	svc := &mockRestaurantService{
		getOwnRestaurantFn: func(_ context.Context, userID string) (models.Restaurant, error) {
			if userID == ownerID {
				return pizzeria, nil
			}
			return models.Restaurant{}, store.ErrRestaurantNotFound
		},
	}
	h := newTestHandler(t, &service.Services{RestaurantService: svc})

	rec := serve(t, h, http.MethodGet, "/api/restaurants/me", "", ownerID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, restID, decodeBody[models.Restaurant](t, rec).RestaurantID)

	rec = serve(t, h, http.MethodGet, "/api/restaurants/me", "", otherID)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgRestaurantNotFound, errorBody(t, rec))
}

func TestCreateRestaurant(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "created",
			body:       `{"name":"Pizzeria","address":"1 Main St"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing fields",
			body:       `{"name":"Pizzeria"}`,
			err:        validators.ErrNameAndAddressRequired,
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgNameAndAddressRequired,
		},
		{
			name:       "second restaurant",
			body:       `{"name":"Pizzeria","address":"1 Main St"}`,
			err:        fmt.Errorf("restaurant creation failed: %w", store.ErrRestaurantAlreadyExists),
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgRestaurantAlreadyExists,
		},
		{
			name:       "malformed json",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgInvalidJSON,
		},
		{
			name:       "unexpected",
			body:       `{"name":"Pizzeria","address":"1 Main St"}`,
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    app.MsgFailedToCreateRestaurant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockRestaurantService{
				createRestaurantFn: func(_ context.Context, request models.CreateRestaurantRequest) (models.Restaurant, error) {
					assert.Equal(t, ownerID, request.OwnerID)
					if tt.err != nil {
						return models.Restaurant{}, tt.err
					}
					return pizzeria, nil
				},
			}
			h := newTestHandler(t, &service.Services{RestaurantService: svc})

			rec := serve(t, h, http.MethodPost, "/api/restaurants", tt.body, ownerID)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, errorBody(t, rec))
			}
		})
	}
}

// TestCreateRestaurant_OwnerFromToken verifies that an ownerId in the body
// cannot override the authenticated user.
func TestCreateRestaurant_OwnerFromToken(t *testing.T) {
	svc := &mockRestaurantService{
		createRestaurantFn: func(_ context.Context, request models.CreateRestaurantRequest) (models.Restaurant, error) {
			assert.Equal(t, otherID, request.OwnerID)
			return pizzeria, nil
		},
	}
	h := newTestHandler(t, &service.Services{RestaurantService: svc})

	body := `{"name":"Pizzeria","address":"1 Main St","ownerId":"` + ownerID + `"}`
	rec := serve(t, h, http.MethodPost, "/api/restaurants", body, otherID)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUpdateRestaurant(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "owner", userID: ownerID, wantStatus: http.StatusOK},
		{
			name:       "not owner",
			userID:     otherID,
			err:        service.ErrForbiddenRestaurantUpdate,
			wantStatus: http.StatusForbidden,
			wantMsg:    app.MsgOnlyOwnerUpdatesRestaurant,
		},
		{
			name:       "missing",
			userID:     ownerID,
			err:        fmt.Errorf("restaurant lookup failed: %w", store.ErrRestaurantNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    app.MsgRestaurantNotFound,
		},
		{
			name:       "blank name",
			userID:     ownerID,
			err:        validators.ErrEmptyField,
			wantStatus: http.StatusBadRequest,
			wantMsg:    app.MsgEmptyField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockRestaurantService{
				updateRestaurantFn: func(_ context.Context, request models.UpdateRestaurantRequest) (models.Restaurant, error) {
					assert.Equal(t, restID, request.RestaurantID)
					assert.Equal(t, tt.userID, request.UserID)
					require.NotNil(t, request.Name)
					assert.Equal(t, "Trattoria", *request.Name)
					assert.Nil(t, request.Address)
					if tt.err != nil {
						return models.Restaurant{}, tt.err
					}
					updated := pizzeria
					updated.Name = *request.Name
					return updated, nil
				},
			}
			h := newTestHandler(t, &service.Services{RestaurantService: svc})

			rec := serve(t, h, http.MethodPatch, "/api/restaurants/"+restID, `{"name":"Trattoria"}`, tt.userID)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, errorBody(t, rec))
			} else {
				assert.Equal(t, "Trattoria", decodeBody[models.Restaurant](t, rec).Name)
			}
		})
	}
}
