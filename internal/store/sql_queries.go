package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable       = "users"
	restaurantsTable = "restaurants"
	foodItemsTable   = "food_items"
	cartsTable       = "carts"
	cartItemsTable   = "cart_items"
)

var (
	userColumns = []string{
		"id", "first_name", "last_name", "email", "password", "created_at", "updated_at",
	}

	// restaurantColumns are qualified with alias r and followed by the owner's
	// public profile from alias u.
	restaurantColumns = []string{
		"r.id", "r.name", "r.address", "r.owner_id", "r.created_at", "r.updated_at",
		"u.first_name", "u.last_name", "u.email",
	}

	foodItemColumns = []string{
		"id", "restaurant_id", "name", "price", "in_stock", "created_at", "updated_at",
	}

	cartColumns = []string{
		"id", "user_id", "restaurant_id", "created_at", "updated_at",
	}

	// cartItemColumns are qualified with alias ci and followed by the owning
	// cart's user from alias c.
	cartItemColumns = []string{
		"ci.id", "ci.cart_id", "ci.food_id", "ci.quantity", "ci.user_note", "c.user_id",
	}

	// cartItemWithFoodColumns extend the cart item with its food item (alias f).
	cartItemWithFoodColumns = append(append([]string{}, cartItemColumns...),
		"f.id", "f.restaurant_id", "f.name", "f.price", "f.in_stock", "f.created_at", "f.updated_at",
	)
)

func selectRestaurants(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(restaurantColumns...).
		From(restaurantsTable + " r").
		Join(usersTable + " u ON u.id = r.owner_id")
}

func selectCartItems(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(cartItemColumns...).
		From(cartItemsTable + " ci").
		Join(cartsTable + " c ON c.id = ci.cart_id")
}

func selectCartItemsWithFood(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(cartItemWithFoodColumns...).
		From(cartItemsTable + " ci").
		Join(cartsTable + " c ON c.id = ci.cart_id").
		Join(foodItemsTable + " f ON f.id = ci.food_id")
}
