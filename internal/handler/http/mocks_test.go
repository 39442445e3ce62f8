package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-food-order/internal/config"
	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/service"
	"github.com/MKhiriev/go-food-order/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, request models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

// ParseToken treats the raw token as the user ID unless overridden.
func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		return models.Token{UserID: tokenString}, nil
	}
	return m.parseTokenFn(ctx, tokenString)
}

type mockUserService struct {
	getUserFn    func(ctx context.Context, userID string) (models.User, error)
	updateUserFn func(ctx context.Context, request models.UpdateUserRequest) (models.User, error)
}

func (m *mockUserService) GetUser(ctx context.Context, userID string) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockUserService) UpdateUser(ctx context.Context, request models.UpdateUserRequest) (models.User, error) {
	return m.updateUserFn(ctx, request)
}

type mockRestaurantService struct {
	listRestaurantsFn  func(ctx context.Context) ([]models.Restaurant, error)
	getRestaurantFn    func(ctx context.Context, restaurantID string) (models.Restaurant, error)
	getOwnRestaurantFn func(ctx context.Context, userID string) (models.Restaurant, error)
	createRestaurantFn func(ctx context.Context, request models.CreateRestaurantRequest) (models.Restaurant, error)
	updateRestaurantFn func(ctx context.Context, request models.UpdateRestaurantRequest) (models.Restaurant, error)
}

func (m *mockRestaurantService) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	return m.listRestaurantsFn(ctx)
}

func (m *mockRestaurantService) GetRestaurant(ctx context.Context, restaurantID string) (models.Restaurant, error) {
	return m.getRestaurantFn(ctx, restaurantID)
}

func (m *mockRestaurantService) GetOwnRestaurant(ctx context.Context, userID string) (models.Restaurant, error) {
	return m.getOwnRestaurantFn(ctx, userID)
}

func (m *mockRestaurantService) CreateRestaurant(ctx context.Context, request models.CreateRestaurantRequest) (models.Restaurant, error) {
	return m.createRestaurantFn(ctx, request)
}

func (m *mockRestaurantService) UpdateRestaurant(ctx context.Context, request models.UpdateRestaurantRequest) (models.Restaurant, error) {
	return m.updateRestaurantFn(ctx, request)
}

type mockFoodItemService struct {
	listFoodItemsFn  func(ctx context.Context, restaurantID string) ([]models.FoodItem, error)
	getFoodItemFn    func(ctx context.Context, foodID string) (models.FoodItem, error)
	createFoodItemFn func(ctx context.Context, request models.CreateFoodItemRequest) (models.FoodItem, error)
	updateFoodItemFn func(ctx context.Context, request models.UpdateFoodItemRequest) (models.FoodItem, error)
	deleteFoodItemFn func(ctx context.Context, foodID, userID string) error
}

func (m *mockFoodItemService) ListFoodItems(ctx context.Context, restaurantID string) ([]models.FoodItem, error) {
	return m.listFoodItemsFn(ctx, restaurantID)
}

func (m *mockFoodItemService) GetFoodItem(ctx context.Context, foodID string) (models.FoodItem, error) {
	return m.getFoodItemFn(ctx, foodID)
}

func (m *mockFoodItemService) CreateFoodItem(ctx context.Context, request models.CreateFoodItemRequest) (models.FoodItem, error) {
	return m.createFoodItemFn(ctx, request)
}

func (m *mockFoodItemService) UpdateFoodItem(ctx context.Context, request models.UpdateFoodItemRequest) (models.FoodItem, error) {
	return m.updateFoodItemFn(ctx, request)
}

func (m *mockFoodItemService) DeleteFoodItem(ctx context.Context, foodID, userID string) error {
	return m.deleteFoodItemFn(ctx, foodID, userID)
}

type mockCartService struct {
	getCartFn    func(ctx context.Context, userID string) (*models.Cart, error)
	addItemFn    func(ctx context.Context, request models.AddCartItemRequest) (models.CartItem, bool, error)
	updateItemFn func(ctx context.Context, request models.UpdateCartItemRequest) (models.CartItem, error)
	removeItemFn func(ctx context.Context, cartItemID, userID string) error
	checkoutFn   func(ctx context.Context, userID string) error
}

func (m *mockCartService) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	return m.getCartFn(ctx, userID)
}

func (m *mockCartService) AddItem(ctx context.Context, request models.AddCartItemRequest) (models.CartItem, bool, error) {
	return m.addItemFn(ctx, request)
}

func (m *mockCartService) UpdateItem(ctx context.Context, request models.UpdateCartItemRequest) (models.CartItem, error) {
	return m.updateItemFn(ctx, request)
}

func (m *mockCartService) RemoveItem(ctx context.Context, cartItemID, userID string) error {
	return m.removeItemFn(ctx, cartItemID, userID)
}

func (m *mockCartService) Checkout(ctx context.Context, userID string) error {
	return m.checkoutFn(ctx, userID)
}

type mockHealthService struct {
	checkFn func(ctx context.Context) (models.HealthResponse, error)
}

func (m *mockHealthService) Check(ctx context.Context) (models.HealthResponse, error) {
	return m.checkFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	ownerID    = "0195f2a0-0000-7000-8000-000000000001"
	otherID    = "0195f2a0-0000-7000-8000-000000000002"
	restID     = "0195f2a0-0000-7000-8000-0000000000a1"
	foodID     = "0195f2a0-0000-7000-8000-0000000000b1"
	cartItemID = "0195f2a0-0000-7000-8000-0000000000c1"
)

// newTestHandler builds a Handler around svcs. A nil AuthService is replaced
// by a mock that accepts any bearer token as the user ID.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	return NewHandler(svcs, config.Server{}, logger.Nop())
}

// serve runs a request through the full router. A non-empty userID is sent
// as the bearer token.
func serve(t *testing.T, h *Handler, method, path, body, userID string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+userID)
	}
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)
	return rec
}

// errorBody decodes a {"error": "..."} response.
func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func toJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// withNopLogger puts a nop logger into the request context, the way
// withTraceID does in the router.
func withNopLogger(r *http.Request) *http.Request {
	return r.WithContext(logger.Nop().WithContext(r.Context()))
}

func ptr[T any](v T) *T {
	return &v
}
