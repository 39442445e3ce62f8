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

// restaurantService implements RestaurantService on top of the restaurant
// and food item repositories.
type restaurantService struct {
	restaurantRepository store.RestaurantRepository
	foodItemRepository   store.FoodItemRepository
	validator            validators.Validator
	logger               *logger.Logger
}

func NewRestaurantService(
	restaurantRepository store.RestaurantRepository,
	foodItemRepository store.FoodItemRepository,
	validator validators.Validator,
	logger *logger.Logger,
) RestaurantService {
	return &restaurantService{
		restaurantRepository: restaurantRepository,
		foodItemRepository:   foodItemRepository,
		validator:            validator,
		logger:               logger,
	}
}

func (r *restaurantService) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	restaurants, err := r.restaurantRepository.ListRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing restaurants failed: %w", err)
	}

	return restaurants, nil
}

// GetRestaurant returns the restaurant with its owner and food items, or
// store.ErrRestaurantNotFound.
func (r *restaurantService) GetRestaurant(ctx context.Context, restaurantID string) (models.Restaurant, error) {
	if !utils.IsValidID(restaurantID) {
		return models.Restaurant{}, store.ErrRestaurantNotFound
	}

	restaurant, err := r.restaurantRepository.FindRestaurantByID(ctx, restaurantID)
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("restaurant lookup failed: %w", err)
	}

	foodItems, err := r.foodItemRepository.ListFoodItemsByRestaurant(ctx, restaurantID)
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("listing food items failed: %w", err)
	}
	restaurant.FoodItems = foodItems

	return restaurant, nil
}

// GetOwnRestaurant returns the restaurant owned by userID.
func (r *restaurantService) GetOwnRestaurant(ctx context.Context, userID string) (models.Restaurant, error) {
	if !utils.IsValidID(userID) {
		return models.Restaurant{}, store.ErrRestaurantNotFound
	}

	restaurant, err := r.restaurantRepository.FindRestaurantByOwner(ctx, userID)
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("restaurant lookup failed: %w", err)
	}

	return restaurant, nil
}

// CreateRestaurant creates a restaurant owned by request.OwnerID. A user owns
// at most one restaurant; a second attempt yields
// store.ErrRestaurantAlreadyExists.
func (r *restaurantService) CreateRestaurant(ctx context.Context, request models.CreateRestaurantRequest) (models.Restaurant, error) {
	log := logger.FromContext(ctx)

	if err := r.validator.Validate(ctx, request); err != nil {
		return models.Restaurant{}, err
	}

	restaurant, err := r.restaurantRepository.CreateRestaurant(ctx, models.Restaurant{
		Name:    request.Name,
		Address: request.Address,
		OwnerID: request.OwnerID,
	})
	if err != nil {
		log.Err(err).Str("owner_id", request.OwnerID).Msg("restaurant creation failed")
		return models.Restaurant{}, fmt.Errorf("restaurant creation failed: %w", err)
	}

	return restaurant, nil
}

// UpdateRestaurant applies a partial update when request.UserID owns the
// restaurant, otherwise returns ErrForbiddenRestaurantUpdate.
func (r *restaurantService) UpdateRestaurant(ctx context.Context, request models.UpdateRestaurantRequest) (models.Restaurant, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidID(request.RestaurantID) {
		return models.Restaurant{}, store.ErrRestaurantNotFound
	}

	existing, err := r.restaurantRepository.FindRestaurantByID(ctx, request.RestaurantID)
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("restaurant lookup failed: %w", err)
	}

	if existing.OwnerID != request.UserID {
		log.Warn().
			Str("restaurant_id", request.RestaurantID).
			Str("user_id", request.UserID).
			Msg("restaurant update by non-owner")
		return models.Restaurant{}, ErrForbiddenRestaurantUpdate
	}

	if err = r.validator.Validate(ctx, request); err != nil {
		return models.Restaurant{}, err
	}

	restaurant, err := r.restaurantRepository.UpdateRestaurant(ctx, request.RestaurantID, models.RestaurantUpdate{
		Name:    request.Name,
		Address: request.Address,
	})
	if err != nil {
		log.Err(err).Str("restaurant_id", request.RestaurantID).Msg("restaurant update failed")
		return models.Restaurant{}, fmt.Errorf("restaurant update failed: %w", err)
	}

	return restaurant, nil
}
