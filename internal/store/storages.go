package store

import "github.com/MKhiriev/go-food-order/internal/logger"

// Storages groups every repository the services depend on.
type Storages struct {
	UserRepository       UserRepository
	RestaurantRepository RestaurantRepository
	FoodItemRepository   FoodItemRepository
	CartRepository       CartRepository
	Pinger               Pinger
}

// NewStorages builds all repositories over a single database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, logger),
		RestaurantRepository: NewRestaurantRepository(db, logger),
		FoodItemRepository:   NewFoodItemRepository(db, logger),
		CartRepository:       NewCartRepository(db, logger),
		Pinger:               db,
	}
}
