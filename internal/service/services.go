package service

import (
	"github.com/MKhiriev/go-food-order/internal/config"
	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/store"
	"github.com/MKhiriev/go-food-order/internal/validators"
	"github.com/MKhiriev/go-food-order/models"
)

type Services struct {
	AuthService       AuthService
	UserService       UserService
	RestaurantService RestaurantService
	FoodItemService   FoodItemService
	CartService       CartService
	HealthService     HealthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	validator := validators.NewRequestValidator()

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		UserService:       NewUserService(storages.UserRepository, validator, logger),
		RestaurantService: NewRestaurantService(storages.RestaurantRepository, storages.FoodItemRepository, validator, logger),
		FoodItemService:   NewFoodItemService(storages.FoodItemRepository, storages.RestaurantRepository, validator, logger),
		CartService:       NewCartService(storages.CartRepository, storages.FoodItemRepository, validator, logger),
		HealthService:     NewHealthService(storages.Pinger, buildInfo, logger),
	}
}
