package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateRestaurantRequest is the body of POST /api/restaurants.
// OwnerID is taken from the authenticated user, never from the body.
type CreateRestaurantRequest struct {
	OwnerID string `json:"-"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// UpdateRestaurantRequest is the body of PATCH /api/restaurants/{id}.
type UpdateRestaurantRequest struct {
	RestaurantID string  `json:"-"`
	UserID       string  `json:"-"`
	Name         *string `json:"name,omitempty"`
	Address      *string `json:"address,omitempty"`
}

// CreateFoodItemRequest is the body of POST /api/food-items.
// Price is a pointer so that a missing price can be told apart from zero.
type CreateFoodItemRequest struct {
	UserID       string   `json:"-"`
	RestaurantID string   `json:"restaurantId"`
	Name         string   `json:"name"`
	Price        *float64 `json:"price"`
	InStock      *bool    `json:"inStock,omitempty"`
}

// UpdateFoodItemRequest is the body of PATCH /api/food-items/{id}.
type UpdateFoodItemRequest struct {
	FoodID  string   `json:"-"`
	UserID  string   `json:"-"`
	Name    *string  `json:"name,omitempty"`
	Price   *float64 `json:"price,omitempty"`
	InStock *bool    `json:"inStock,omitempty"`
}

// AddCartItemRequest is the body of POST /api/carts/items.
type AddCartItemRequest struct {
	UserID       string  `json:"-"`
	RestaurantID string  `json:"restaurantId"`
	FoodID       string  `json:"foodId"`
	Quantity     int     `json:"quantity"`
	UserNote     *string `json:"userNote,omitempty"`
}

// UpdateCartItemRequest is the body of PATCH /api/carts/items/{itemId}.
type UpdateCartItemRequest struct {
	CartItemID string  `json:"-"`
	UserID     string  `json:"-"`
	Quantity   *int    `json:"quantity,omitempty"`
	UserNote   *string `json:"userNote,omitempty"`
}

// UpdateUserRequest is the body of PATCH /api/user/me.
type UpdateUserRequest struct {
	UserID    string  `json:"-"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
}
