package models

import "time"

// Cart is a pre-order basket of one user for one restaurant.
// It is created on the first item add and removed on checkout.
type Cart struct {
	CartID       string `json:"cartId"`
	UserID       string `json:"userId"`
	RestaurantID string `json:"restaurantId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Restaurant *Restaurant `json:"restaurant,omitempty"`
	Items      []CartItem  `json:"items"`
}

// TableName returns the name of the database table
// associated with the Cart model.
func (c Cart) TableName() string {
	return "carts"
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// CartItem is a single line of a cart.
type CartItem struct {
	CartItemID string  `json:"cartItemId"`
	CartID     string  `json:"cartId"`
	FoodID     string  `json:"foodId"`
	Quantity   int     `json:"quantity"`
	UserNote   *string `json:"userNote"`

	// OwnerID is the user owning the cart this item belongs to.
	// It is filled by lookups that join carts and is not serialized.
	OwnerID string `json:"-"`

	FoodItem *FoodItem `json:"foodItem,omitempty"`
}

// TableName returns the name of the database table
// associated with the CartItem model.
func (c CartItem) TableName() string {
	return "cart_items"
}

// CartItemUpdate is a partial update of a cart line.
type CartItemUpdate struct {
	Quantity *int
	UserNote *string
}

// IsEmpty reports whether the update carries no fields.
func (u CartItemUpdate) IsEmpty() bool {
	return u.Quantity == nil && u.UserNote == nil
}
