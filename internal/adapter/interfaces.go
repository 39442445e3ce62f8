// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the go-food-order REST API.
//
// [NewHTTPAPIClient] returns an [APIClient] backed by resty. Non-2xx responses
// are mapped by mapHTTPError to the sentinel errors in errors.go, wrapped
// together with the server's error message, so callers can use [errors.Is]
// (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-food-order/models"
)

// APIClient mirrors the REST API one method per endpoint. Methods on
// protected endpoints send the bearer token stored by SetToken, Register or
// Login.
type APIClient interface {
	// SetToken stores the bearer token attached to subsequent requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Register creates an account and stores the returned token.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates by email and password and stores the returned token.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Health returns the readiness report. On 503 the report is returned
	// together with [ErrServiceUnavailable].
	Health(ctx context.Context) (models.HealthResponse, error)

	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	GetRestaurant(ctx context.Context, restaurantID string) (models.Restaurant, error)
	GetMyRestaurant(ctx context.Context) (models.Restaurant, error)
	CreateRestaurant(ctx context.Context, req models.CreateRestaurantRequest) (models.Restaurant, error)

	// UpdateRestaurant patches the restaurant identified by req.RestaurantID.
	UpdateRestaurant(ctx context.Context, req models.UpdateRestaurantRequest) (models.Restaurant, error)

	ListFoodItems(ctx context.Context, restaurantID string) ([]models.FoodItem, error)
	GetFoodItem(ctx context.Context, foodID string) (models.FoodItem, error)
	CreateFoodItem(ctx context.Context, req models.CreateFoodItemRequest) (models.FoodItem, error)

	// UpdateFoodItem patches the food item identified by req.FoodID.
	UpdateFoodItem(ctx context.Context, req models.UpdateFoodItemRequest) (models.FoodItem, error)
	DeleteFoodItem(ctx context.Context, foodID string) error

	// GetCart returns the caller's cart, or nil when the caller has none.
	GetCart(ctx context.Context) (*models.Cart, error)

	// AddCartItem adds a line to the caller's cart. created reports whether a
	// new line was inserted (201) rather than an existing one incremented.
	AddCartItem(ctx context.Context, req models.AddCartItemRequest) (item models.CartItem, created bool, err error)

	// UpdateCartItem patches the cart line identified by req.CartItemID.
	UpdateCartItem(ctx context.Context, req models.UpdateCartItemRequest) (models.CartItem, error)
	RemoveCartItem(ctx context.Context, cartItemID string) error
	Checkout(ctx context.Context) (models.MessageResponse, error)

	GetCurrentUser(ctx context.Context) (models.User, error)
	UpdateCurrentUser(ctx context.Context, req models.UpdateUserRequest) (models.User, error)
}
