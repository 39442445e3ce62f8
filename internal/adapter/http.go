package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/utils"
	"github.com/MKhiriev/go-food-order/models"
	"github.com/go-resty/resty/v2"
)

type httpAPIClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs an [APIClient] for the server at address.
// address may omit the scheme, in which case http:// is assumed. A zero
// timeout leaves requests bounded only by their context.
func NewHTTPAPIClient(address string, timeout time.Duration, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpAPIClient{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}

	a.client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		a.logger.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("api call")
		return nil
	})

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (a *httpAPIClient) SetToken(token string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = strings.TrimSpace(token)
}

func (a *httpAPIClient) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

// ── auth ─────────────────────────────────────────────────────────────────────

func (a *httpAPIClient) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return a.authenticate(ctx, req, "/api/auth/register", "register")
}

func (a *httpAPIClient) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return a.authenticate(ctx, req, "/api/auth/login", "login")
}

// authenticate posts credentials and keeps the token of a successful answer.
// The token in the body wins; the Authorization header is the fallback.
func (a *httpAPIClient) authenticate(ctx context.Context, body any, path, op string) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := a.request(ctx).
		SetBody(body).
		SetResult(&auth).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	if auth.Token == "" {
		token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.AuthResponse{}, fmt.Errorf("%s parse bearer token: %w", op, err)
		}
		auth.Token = token
	}

	a.SetToken(auth.Token)
	return auth, nil
}

// ── health ───────────────────────────────────────────────────────────────────

func (a *httpAPIClient) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	// 503 carries the same body as 200
	resp, err := a.client.R().
		SetContext(ctx).
		SetResult(&health).
		SetError(&health).
		Get("/api/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}

	return health, mapHTTPError(resp)
}

// ── restaurants ──────────────────────────────────────────────────────────────

func (a *httpAPIClient) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := a.do(a.request(ctx).SetResult(&restaurants), http.MethodGet, "/api/restaurants", "list restaurants")
	return restaurants, err
}

func (a *httpAPIClient) GetRestaurant(ctx context.Context, restaurantID string) (models.Restaurant, error) {
	var restaurant models.Restaurant
	req := a.request(ctx).
		SetPathParam("id", restaurantID).
		SetResult(&restaurant)
	err := a.do(req, http.MethodGet, "/api/restaurants/{id}", "get restaurant")
	return restaurant, err
}

func (a *httpAPIClient) GetMyRestaurant(ctx context.Context) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := a.do(a.authedRequest(ctx).SetResult(&restaurant), http.MethodGet, "/api/restaurants/me", "get my restaurant")
	return restaurant, err
}

func (a *httpAPIClient) CreateRestaurant(ctx context.Context, req models.CreateRestaurantRequest) (models.Restaurant, error) {
	var restaurant models.Restaurant
	r := a.authedRequest(ctx).
		SetBody(req).
		SetResult(&restaurant)
	err := a.do(r, http.MethodPost, "/api/restaurants", "create restaurant")
	return restaurant, err
}

func (a *httpAPIClient) UpdateRestaurant(ctx context.Context, req models.UpdateRestaurantRequest) (models.Restaurant, error) {
	var restaurant models.Restaurant
	r := a.authedRequest(ctx).
		SetPathParam("id", req.RestaurantID).
		SetBody(req).
		SetResult(&restaurant)
	err := a.do(r, http.MethodPatch, "/api/restaurants/{id}", "update restaurant")
	return restaurant, err
}

// ── food items ───────────────────────────────────────────────────────────────

func (a *httpAPIClient) ListFoodItems(ctx context.Context, restaurantID string) ([]models.FoodItem, error) {
	var foodItems []models.FoodItem
	req := a.request(ctx).
		SetPathParam("restaurantId", restaurantID).
		SetResult(&foodItems)
	err := a.do(req, http.MethodGet, "/api/food-items/restaurant/{restaurantId}", "list food items")
	return foodItems, err
}

func (a *httpAPIClient) GetFoodItem(ctx context.Context, foodID string) (models.FoodItem, error) {
	var foodItem models.FoodItem
	req := a.request(ctx).
		SetPathParam("id", foodID).
		SetResult(&foodItem)
	err := a.do(req, http.MethodGet, "/api/food-items/{id}", "get food item")
	return foodItem, err
}

func (a *httpAPIClient) CreateFoodItem(ctx context.Context, req models.CreateFoodItemRequest) (models.FoodItem, error) {
	var foodItem models.FoodItem
	r := a.authedRequest(ctx).
		SetBody(req).
		SetResult(&foodItem)
	err := a.do(r, http.MethodPost, "/api/food-items", "create food item")
	return foodItem, err
}

func (a *httpAPIClient) UpdateFoodItem(ctx context.Context, req models.UpdateFoodItemRequest) (models.FoodItem, error) {
	var foodItem models.FoodItem
	r := a.authedRequest(ctx).
		SetPathParam("id", req.FoodID).
		SetBody(req).
		SetResult(&foodItem)
	err := a.do(r, http.MethodPatch, "/api/food-items/{id}", "update food item")
	return foodItem, err
}

func (a *httpAPIClient) DeleteFoodItem(ctx context.Context, foodID string) error {
	req := a.authedRequest(ctx).SetPathParam("id", foodID)
	return a.do(req, http.MethodDelete, "/api/food-items/{id}", "delete food item")
}

// ── carts ────────────────────────────────────────────────────────────────────

func (a *httpAPIClient) GetCart(ctx context.Context) (*models.Cart, error) {
	var cart *models.Cart
	if err := a.do(a.authedRequest(ctx).SetResult(&cart), http.MethodGet, "/api/carts", "get cart"); err != nil {
		return nil, err
	}
	return cart, nil
}

func (a *httpAPIClient) AddCartItem(ctx context.Context, req models.AddCartItemRequest) (models.CartItem, bool, error) {
	var item models.CartItem

	resp, err := a.authedRequest(ctx).
		SetBody(req).
		SetResult(&item).
		Post("/api/carts/items")
	if err != nil {
		return models.CartItem{}, false, fmt.Errorf("add cart item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CartItem{}, false, err
	}

	return item, resp.StatusCode() == http.StatusCreated, nil
}

func (a *httpAPIClient) UpdateCartItem(ctx context.Context, req models.UpdateCartItemRequest) (models.CartItem, error) {
	var item models.CartItem
	r := a.authedRequest(ctx).
		SetPathParam("itemId", req.CartItemID).
		SetBody(req).
		SetResult(&item)
	err := a.do(r, http.MethodPatch, "/api/carts/items/{itemId}", "update cart item")
	return item, err
}

func (a *httpAPIClient) RemoveCartItem(ctx context.Context, cartItemID string) error {
	req := a.authedRequest(ctx).SetPathParam("itemId", cartItemID)
	return a.do(req, http.MethodDelete, "/api/carts/items/{itemId}", "remove cart item")
}

func (a *httpAPIClient) Checkout(ctx context.Context) (models.MessageResponse, error) {
	var message models.MessageResponse
	err := a.do(a.authedRequest(ctx).SetResult(&message), http.MethodPost, "/api/carts/checkout", "checkout")
	return message, err
}

// ── user ─────────────────────────────────────────────────────────────────────

func (a *httpAPIClient) GetCurrentUser(ctx context.Context) (models.User, error) {
	var user models.User
	err := a.do(a.authedRequest(ctx).SetResult(&user), http.MethodGet, "/api/user/me", "get current user")
	return user, err
}

func (a *httpAPIClient) UpdateCurrentUser(ctx context.Context, req models.UpdateUserRequest) (models.User, error) {
	var user models.User
	r := a.authedRequest(ctx).
		SetBody(req).
		SetResult(&user)
	err := a.do(r, http.MethodPatch, "/api/user/me", "update current user")
	return user, err
}

func (a *httpAPIClient) do(req *resty.Request, method, path, op string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}
	return mapHTTPError(resp)
}

func (a *httpAPIClient) request(ctx context.Context) *resty.Request {
	return a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetError(&models.ErrorResponse{})
}

func (a *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := a.request(ctx)
	if token := a.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
