package service

import (
	"context"

	"github.com/MKhiriev/go-food-order/models"
)

// AuthService registers users, checks credentials and issues JWTs.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService serves the profile of the authenticated user.
type UserService interface {
	GetUser(ctx context.Context, userID string) (models.User, error)
	UpdateUser(ctx context.Context, request models.UpdateUserRequest) (models.User, error)
}

// RestaurantService manages restaurants. Updates are allowed to the owner only.
type RestaurantService interface {
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	// GetRestaurant returns the restaurant with its owner and menu.
	GetRestaurant(ctx context.Context, restaurantID string) (models.Restaurant, error)
	GetOwnRestaurant(ctx context.Context, userID string) (models.Restaurant, error)
	CreateRestaurant(ctx context.Context, request models.CreateRestaurantRequest) (models.Restaurant, error)
	UpdateRestaurant(ctx context.Context, request models.UpdateRestaurantRequest) (models.Restaurant, error)
}

// FoodItemService manages menus. Writes are allowed to the restaurant owner only.
type FoodItemService interface {
	ListFoodItems(ctx context.Context, restaurantID string) ([]models.FoodItem, error)
	// GetFoodItem returns the food item with its restaurant.
	GetFoodItem(ctx context.Context, foodID string) (models.FoodItem, error)
	CreateFoodItem(ctx context.Context, request models.CreateFoodItemRequest) (models.FoodItem, error)
	UpdateFoodItem(ctx context.Context, request models.UpdateFoodItemRequest) (models.FoodItem, error)
	DeleteFoodItem(ctx context.Context, foodID, userID string) error
}

// CartService manages the carts of the authenticated user.
type CartService interface {
	// GetCart returns the user's most recently updated cart or nil when the
	// user has none.
	GetCart(ctx context.Context, userID string) (*models.Cart, error)
	// AddItem puts food into the user's cart for the restaurant. created is
	// false when an existing line was incremented instead.
	AddItem(ctx context.Context, request models.AddCartItemRequest) (item models.CartItem, created bool, err error)
	UpdateItem(ctx context.Context, request models.UpdateCartItemRequest) (models.CartItem, error)
	RemoveItem(ctx context.Context, cartItemID, userID string) error
	// Checkout places the order of the user's most recently updated cart and
	// removes the cart.
	Checkout(ctx context.Context, userID string) error
}

// HealthService reports readiness of the server and its build metadata.
type HealthService interface {
	Check(ctx context.Context) (models.HealthResponse, error)
}
