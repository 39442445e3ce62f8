package models

import "time"

// Restaurant is owned by exactly one user and lists the food items it sells.
type Restaurant struct {
	RestaurantID string `json:"restaurantId"`
	Name         string `json:"name"`
	Address      string `json:"address"`

	// OwnerID references the User who created the restaurant.
	OwnerID string `json:"ownerId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Owner is populated by read operations that join the owner's profile.
	Owner *Owner `json:"owner,omitempty"`

	// FoodItems is populated only when a single restaurant is requested.
	FoodItems []FoodItem `json:"foodItems,omitempty"`
}

// TableName returns the name of the database table
// associated with the Restaurant model.
func (r Restaurant) TableName() string {
	return "restaurants"
}

// RestaurantUpdate is a partial update of a restaurant.
type RestaurantUpdate struct {
	Name    *string
	Address *string
}

// IsEmpty reports whether the update carries no fields.
func (u RestaurantUpdate) IsEmpty() bool {
	return u.Name == nil && u.Address == nil
}
