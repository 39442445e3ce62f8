package models

import "time"

// FoodItem is a menu entry of a restaurant.
// RestaurantID is fixed at creation time.
type FoodItem struct {
	FoodID       string  `json:"foodId"`
	RestaurantID string  `json:"restaurantId"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	InStock      bool    `json:"inStock"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Restaurant is populated when a single food item is requested.
	Restaurant *Restaurant `json:"restaurant,omitempty"`
}

// TableName returns the name of the database table
// associated with the FoodItem model.
func (f FoodItem) TableName() string {
	return "food_items"
}

// FoodItemUpdate is a partial update of a food item.
type FoodItemUpdate struct {
	Name    *string
	Price   *float64
	InStock *bool
}

// IsEmpty reports whether the update carries no fields.
func (u FoodItemUpdate) IsEmpty() bool {
	return u.Name == nil && u.Price == nil && u.InStock == nil
}
