package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/store"
	"github.com/MKhiriev/go-food-order/internal/utils"
	"github.com/MKhiriev/go-food-order/internal/validators"
	"github.com/MKhiriev/go-food-order/models"
)

type foodItemService struct {
	foodItemRepository   store.FoodItemRepository
	restaurantRepository store.RestaurantRepository
	validator            validators.Validator
	logger               *logger.Logger
}

func NewFoodItemService(
	foodItemRepository store.FoodItemRepository,
	restaurantRepository store.RestaurantRepository,
	validator validators.Validator,
	logger *logger.Logger,
) FoodItemService {
	return &foodItemService{
		foodItemRepository:   foodItemRepository,
		restaurantRepository: restaurantRepository,
		validator:            validator,
		logger:               logger,
	}
}

// ListFoodItems returns the menu of a restaurant. An unknown restaurant has
// an empty menu.
func (f *foodItemService) ListFoodItems(ctx context.Context, restaurantID string) ([]models.FoodItem, error) {
	if !utils.IsValidID(restaurantID) {
		return []models.FoodItem{}, nil
	}

	items, err := f.foodItemRepository.ListFoodItemsByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("listing food items failed: %w", err)
	}

	return items, nil
}

// GetFoodItem returns the food item with its restaurant embedded.
func (f *foodItemService) GetFoodItem(ctx context.Context, foodID string) (models.FoodItem, error) {
	if !utils.IsValidID(foodID) {
		return models.FoodItem{}, store.ErrFoodItemNotFound
	}

	item, err := f.foodItemRepository.FindFoodItemByID(ctx, foodID)
	if err != nil {
		return models.FoodItem{}, fmt.Errorf("food item lookup failed: %w", err)
	}

	restaurant, err := f.restaurantRepository.FindRestaurantByID(ctx, item.RestaurantID)
	if err != nil {
		return models.FoodItem{}, fmt.Errorf("restaurant lookup failed: %w", err)
	}
	item.Restaurant = &restaurant

	return item, nil
}

// CreateFoodItem adds a food item to a restaurant owned by request.UserID.
// InStock defaults to true when absent.
func (f *foodItemService) CreateFoodItem(ctx context.Context, request models.CreateFoodItemRequest) (models.FoodItem, error) {
	log := logger.FromContext(ctx)

	if err := f.validator.Validate(ctx, request); err != nil {
		return models.FoodItem{}, err
	}

	if _, err := f.ownedRestaurant(ctx, request.RestaurantID, request.UserID, ErrForbiddenFoodItemCreate); err != nil {
		return models.FoodItem{}, err
	}

	inStock := true
	if request.InStock != nil {
		inStock = *request.InStock
	}

	item, err := f.foodItemRepository.CreateFoodItem(ctx, models.FoodItem{
		RestaurantID: request.RestaurantID,
		Name:         request.Name,
		Price:        *request.Price,
		InStock:      inStock,
	})
	if err != nil {
		log.Err(err).Str("restaurant_id", request.RestaurantID).Msg("food item creation failed")
		return models.FoodItem{}, fmt.Errorf("food item creation failed: %w", err)
	}

	return item, nil
}

// UpdateFoodItem applies a partial update of name, price and stock. The
// restaurant of the item never changes.
func (f *foodItemService) UpdateFoodItem(ctx context.Context, request models.UpdateFoodItemRequest) (models.FoodItem, error) {
	log := logger.FromContext(ctx)

	existing, err := f.ownedFoodItem(ctx, request.FoodID, request.UserID, ErrForbiddenFoodItemUpdate)
	if err != nil {
		return models.FoodItem{}, err
	}

	if err = f.validator.Validate(ctx, request); err != nil {
		return models.FoodItem{}, err
	}

	item, err := f.foodItemRepository.UpdateFoodItem(ctx, existing.FoodID, models.FoodItemUpdate{
		Name:    request.Name,
		Price:   request.Price,
		InStock: request.InStock,
	})
	if err != nil {
		log.Err(err).Str("food_id", request.FoodID).Msg("food item update failed")
		return models.FoodItem{}, fmt.Errorf("food item update failed: %w", err)
	}

	return item, nil
}

// DeleteFoodItem removes a food item of a restaurant owned by userID.
func (f *foodItemService) DeleteFoodItem(ctx context.Context, foodID, userID string) error {
	log := logger.FromContext(ctx)

	if _, err := f.ownedFoodItem(ctx, foodID, userID, ErrForbiddenFoodItemDelete); err != nil {
		return err
	}

	if err := f.foodItemRepository.DeleteFoodItem(ctx, foodID); err != nil {
		log.Err(err).Str("food_id", foodID).Msg("food item deletion failed")
		return fmt.Errorf("food item deletion failed: %w", err)
	}

	return nil
}

// ownedFoodItem loads the food item and checks that its restaurant belongs
// to userID, returning forbidden otherwise.
func (f *foodItemService) ownedFoodItem(ctx context.Context, foodID, userID string, forbidden error) (models.FoodItem, error) {
	if !utils.IsValidID(foodID) {
		return models.FoodItem{}, store.ErrFoodItemNotFound
	}

	item, err := f.foodItemRepository.FindFoodItemByID(ctx, foodID)
	if err != nil {
		return models.FoodItem{}, fmt.Errorf("food item lookup failed: %w", err)
	}

	if _, err = f.ownedRestaurant(ctx, item.RestaurantID, userID, forbidden); err != nil {
		return models.FoodItem{}, err
	}

	return item, nil
}

func (f *foodItemService) ownedRestaurant(ctx context.Context, restaurantID, userID string, forbidden error) (models.Restaurant, error) {
	if !utils.IsValidID(restaurantID) {
		return models.Restaurant{}, store.ErrRestaurantNotFound
	}

	restaurant, err := f.restaurantRepository.FindRestaurantByID(ctx, restaurantID)
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("restaurant lookup failed: %w", err)
	}

	if restaurant.OwnerID != userID {
		logger.FromContext(ctx).Warn().
			Str("restaurant_id", restaurantID).
			Str("user_id", userID).
			Msg("food item change by non-owner")
		return models.Restaurant{}, forbidden
	}

	return restaurant, nil
}
