package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/store"
	"github.com/MKhiriev/go-food-order/internal/utils"
	"github.com/MKhiriev/go-food-order/internal/validators"
	"github.com/MKhiriev/go-food-order/models"
)

// cartService implements CartService.
//
// A user has at most one cart per restaurant. The cart is created on the
// first add and removed on checkout. Concurrent adds for the same user and
// restaurant are not serialized.
type cartService struct {
	cartRepository     store.CartRepository
	foodItemRepository store.FoodItemRepository
	validator          validators.Validator
	logger             *logger.Logger
}

func NewCartService(
	cartRepository store.CartRepository,
	foodItemRepository store.FoodItemRepository,
	validator validators.Validator,
	logger *logger.Logger,
) CartService {
	return &cartService{
		cartRepository:     cartRepository,
		foodItemRepository: foodItemRepository,
		validator:          validator,
		logger:             logger,
	}
}

// GetCart returns the most recently updated cart of userID, or nil.
func (c *cartService) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	if !utils.IsValidID(userID) {
		return nil, nil
	}

	cart, err := c.cartRepository.FindLatestCartByUser(ctx, userID)
	if errors.Is(err, store.ErrCartNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cart lookup failed: %w", err)
	}

	return &cart, nil
}

// AddItem adds request.Quantity of a food item to the user's cart for the
// restaurant, creating the cart when needed.
//
// When the cart already holds the food, its quantity is increased and the
// note is replaced only by a non-empty one; created is false in that case.
//
// Errors:
//   - ErrFoodItemNotAvailable: food missing or out of stock.
//   - ErrFoodItemWrongRestaurant: food belongs to another restaurant.
func (c *cartService) AddItem(ctx context.Context, request models.AddCartItemRequest) (models.CartItem, bool, error) {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, request); err != nil {
		return models.CartItem{}, false, err
	}

	if !utils.IsValidID(request.FoodID) {
		return models.CartItem{}, false, ErrFoodItemNotAvailable
	}

	food, err := c.foodItemRepository.FindFoodItemByID(ctx, request.FoodID)
	if errors.Is(err, store.ErrFoodItemNotFound) {
		return models.CartItem{}, false, ErrFoodItemNotAvailable
	}
	if err != nil {
		return models.CartItem{}, false, fmt.Errorf("food item lookup failed: %w", err)
	}

	if !food.InStock {
		return models.CartItem{}, false, ErrFoodItemNotAvailable
	}
	if food.RestaurantID != request.RestaurantID {
		return models.CartItem{}, false, ErrFoodItemWrongRestaurant
	}

	cart, err := c.findOrCreateCart(ctx, request.UserID, request.RestaurantID)
	if err != nil {
		return models.CartItem{}, false, err
	}

	item, created, err := c.upsertItem(ctx, cart.CartID, request)
	if err != nil {
		log.Err(err).Str("cart_id", cart.CartID).Str("food_id", request.FoodID).Msg("adding cart item failed")
		return models.CartItem{}, false, err
	}

	if err = c.cartRepository.TouchCart(ctx, cart.CartID); err != nil {
		return models.CartItem{}, false, fmt.Errorf("cart touch failed: %w", err)
	}

	return item, created, nil
}

func (c *cartService) findOrCreateCart(ctx context.Context, userID, restaurantID string) (models.Cart, error) {
	cart, err := c.cartRepository.FindCart(ctx, userID, restaurantID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, store.ErrCartNotFound) {
		return models.Cart{}, fmt.Errorf("cart lookup failed: %w", err)
	}

	cart, err = c.cartRepository.CreateCart(ctx, models.Cart{UserID: userID, RestaurantID: restaurantID})
	if err != nil {
		return models.Cart{}, fmt.Errorf("cart creation failed: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("cart_id", cart.CartID).Msg("cart created")
	return cart, nil
}

func (c *cartService) upsertItem(ctx context.Context, cartID string, request models.AddCartItemRequest) (models.CartItem, bool, error) {
	existing, err := c.cartRepository.FindCartItemByFood(ctx, cartID, request.FoodID)
	if errors.Is(err, store.ErrCartItemNotFound) {
		item, createErr := c.cartRepository.CreateCartItem(ctx, models.CartItem{
			CartID:   cartID,
			FoodID:   request.FoodID,
			Quantity: request.Quantity,
			UserNote: request.UserNote,
		})
		if createErr != nil {
			return models.CartItem{}, false, fmt.Errorf("cart item creation failed: %w", createErr)
		}
		return item, true, nil
	}
	if err != nil {
		return models.CartItem{}, false, fmt.Errorf("cart item lookup failed: %w", err)
	}

	quantity := existing.Quantity + request.Quantity
	update := models.CartItemUpdate{Quantity: &quantity}
	if request.UserNote != nil && *request.UserNote != "" {
		update.UserNote = request.UserNote
	}

	item, err := c.cartRepository.UpdateCartItem(ctx, existing.CartItemID, update)
	if err != nil {
		return models.CartItem{}, false, fmt.Errorf("cart item update failed: %w", err)
	}

	return item, false, nil
}

// UpdateItem changes quantity and note of a line in the user's cart.
func (c *cartService) UpdateItem(ctx context.Context, request models.UpdateCartItemRequest) (models.CartItem, error) {
	log := logger.FromContext(ctx)

	if _, err := c.ownedItem(ctx, request.CartItemID, request.UserID); err != nil {
		return models.CartItem{}, err
	}

	if err := c.validator.Validate(ctx, request); err != nil {
		return models.CartItem{}, err
	}

	item, err := c.cartRepository.UpdateCartItem(ctx, request.CartItemID, models.CartItemUpdate{
		Quantity: request.Quantity,
		UserNote: request.UserNote,
	})
	if err != nil {
		log.Err(err).Str("cart_item_id", request.CartItemID).Msg("cart item update failed")
		return models.CartItem{}, fmt.Errorf("cart item update failed: %w", err)
	}

	return item, nil
}

// RemoveItem deletes a line from the user's cart. The cart itself stays even
// when it becomes empty.
func (c *cartService) RemoveItem(ctx context.Context, cartItemID, userID string) error {
	if _, err := c.ownedItem(ctx, cartItemID, userID); err != nil {
		return err
	}

	if err := c.cartRepository.DeleteCartItem(ctx, cartItemID); err != nil {
		logger.FromContext(ctx).Err(err).Str("cart_item_id", cartItemID).Msg("cart item deletion failed")
		return fmt.Errorf("cart item deletion failed: %w", err)
	}

	return nil
}

// Checkout verifies that every line of the user's latest cart is in stock
// and removes the cart. No order record is kept.
//
// Errors:
//   - ErrCartIsEmpty: no cart or a cart without lines.
//   - *OutOfStockError: a line refers to a food item out of stock.
func (c *cartService) Checkout(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	cart, err := c.GetCart(ctx, userID)
	if err != nil {
		return err
	}
	if cart.IsEmpty() {
		return ErrCartIsEmpty
	}

	for _, item := range cart.Items {
		if item.FoodItem != nil && !item.FoodItem.InStock {
			return &OutOfStockError{ItemName: item.FoodItem.Name}
		}
	}

	if err = c.cartRepository.DeleteCart(ctx, cart.CartID); err != nil {
		log.Err(err).Str("cart_id", cart.CartID).Msg("checkout failed")
		return fmt.Errorf("checkout failed: %w", err)
	}

	log.Info().Str("cart_id", cart.CartID).Int("items", len(cart.Items)).Msg("order placed")
	return nil
}

func (c *cartService) ownedItem(ctx context.Context, cartItemID, userID string) (models.CartItem, error) {
	if !utils.IsValidID(cartItemID) {
		return models.CartItem{}, store.ErrCartItemNotFound
	}

	item, err := c.cartRepository.FindCartItemByID(ctx, cartItemID)
	if err != nil {
		return models.CartItem{}, fmt.Errorf("cart item lookup failed: %w", err)
	}

	if item.OwnerID != userID {
		logger.FromContext(ctx).Warn().
			Str("cart_item_id", cartItemID).
			Str("user_id", userID).
			Msg("cart item access by non-owner")
		return models.CartItem{}, ErrForbiddenCartItem
	}

	return item, nil
}
