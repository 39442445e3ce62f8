package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrInvalidToken        = errors.New("invalid token")

	// ErrForbidden is wrapped by every ownership error below.
	ErrForbidden = errors.New("forbidden")

	ErrForbiddenRestaurantUpdate = fmt.Errorf("%w: only restaurant owner can update restaurant", ErrForbidden)
	ErrForbiddenFoodItemCreate   = fmt.Errorf("%w: only restaurant owner can add food items", ErrForbidden)
	ErrForbiddenFoodItemUpdate   = fmt.Errorf("%w: only restaurant owner can update food items", ErrForbidden)
	ErrForbiddenFoodItemDelete   = fmt.Errorf("%w: only restaurant owner can delete food items", ErrForbidden)
	ErrForbiddenCartItem         = fmt.Errorf("%w: cart item belongs to another user", ErrForbidden)

	ErrFoodItemNotAvailable    = errors.New("food item not available")
	ErrFoodItemWrongRestaurant = errors.New("food item does not belong to this restaurant")
	ErrCartIsEmpty             = errors.New("cart is empty")
	ErrItemOutOfStock          = errors.New("item is out of stock")

	ErrStoreUnavailable = errors.New("store is unavailable")
)

// OutOfStockError is returned by checkout when a cart line refers to a food
// item that is no longer in stock.
type OutOfStockError struct {
	ItemName string
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("item %s is out of stock", e.ItemName)
}

// Is makes errors.Is(err, ErrItemOutOfStock) hold for any *OutOfStockError.
func (e *OutOfStockError) Is(target error) bool {
	return target == ErrItemOutOfStock
}
