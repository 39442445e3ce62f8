package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-food-order/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser stores a new user. Returns ErrEmailAlreadyExists when the
	// email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	// UpdateUser applies a partial update. Returns ErrEmailAlreadyExists when
	// the new email belongs to another user.
	UpdateUser(ctx context.Context, userID string, update models.UserUpdate) (models.User, error)
}

// RestaurantRepository persists restaurants. Read methods embed the owner's
// public profile.
type RestaurantRepository interface {
	CreateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	FindRestaurantByID(ctx context.Context, restaurantID string) (models.Restaurant, error)
	FindRestaurantByOwner(ctx context.Context, ownerID string) (models.Restaurant, error)
	UpdateRestaurant(ctx context.Context, restaurantID string, update models.RestaurantUpdate) (models.Restaurant, error)
}

// FoodItemRepository persists the menu items of restaurants.
type FoodItemRepository interface {
	CreateFoodItem(ctx context.Context, item models.FoodItem) (models.FoodItem, error)
	ListFoodItemsByRestaurant(ctx context.Context, restaurantID string) ([]models.FoodItem, error)
	FindFoodItemByID(ctx context.Context, foodID string) (models.FoodItem, error)
	UpdateFoodItem(ctx context.Context, foodID string, update models.FoodItemUpdate) (models.FoodItem, error)
	DeleteFoodItem(ctx context.Context, foodID string) error
}

// CartRepository persists carts and their items.
type CartRepository interface {
	// FindLatestCartByUser returns the user's most recently updated cart with
	// its restaurant and items, each item carrying its food item.
	FindLatestCartByUser(ctx context.Context, userID string) (models.Cart, error)
	FindCart(ctx context.Context, userID, restaurantID string) (models.Cart, error)
	CreateCart(ctx context.Context, cart models.Cart) (models.Cart, error)
	TouchCart(ctx context.Context, cartID string) error
	// DeleteCart removes the cart and all of its items in one transaction.
	DeleteCart(ctx context.Context, cartID string) error
	// DeleteStaleCarts removes carts not updated since before and returns how
	// many carts were deleted.
	DeleteStaleCarts(ctx context.Context, before time.Time) (int64, error)

	FindCartItemByID(ctx context.Context, cartItemID string) (models.CartItem, error)
	FindCartItemByFood(ctx context.Context, cartID, foodID string) (models.CartItem, error)
	CreateCartItem(ctx context.Context, item models.CartItem) (models.CartItem, error)
	UpdateCartItem(ctx context.Context, cartItemID string, update models.CartItemUpdate) (models.CartItem, error)
	DeleteCartItem(ctx context.Context, cartItemID string) error
}

// Pinger reports whether the underlying database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// ErrorClassificator inspects driver errors. Implementations exist per
// dialect so repositories stay driver-agnostic.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
	IsForeignKeyViolation(err error) bool
}

// IDGenerator produces primary keys for new rows.
type IDGenerator interface {
	Generate() string
}
