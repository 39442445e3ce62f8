// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-food-order HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// "error" or "message" field of HTTP response bodies. Clients match on some
// of them, so the wording is part of the API.
package app

// Authentication.
const (
	MsgAuthenticationRequired = "Authentication required"
	MsgInvalidToken           = "Invalid token"
	MsgAllFieldsRequired      = "All fields are required"
	MsgEmailAlreadyExists     = "Email already exists"
	MsgEmailPasswordRequired  = "Email and password are required"
	MsgInvalidCredentials     = "Invalid credentials"
	MsgRegistrationFailed     = "Registration failed"
	MsgLoginFailed            = "Login failed"
)

// Request decoding and generic validation.
const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgEmptyField is returned when a PATCH body sets a text field to an
	// empty string.
	MsgEmptyField = "Updated fields must not be empty"

	MsgInternalServerError = "Internal server error"
	MsgNotFound            = "Not found"
	MsgForbidden           = "Forbidden"
)

// Restaurants.
const (
	MsgRestaurantNotFound         = "Restaurant not found"
	MsgNameAndAddressRequired     = "Name and address are required"
	MsgRestaurantAlreadyExists    = "User already owns a restaurant"
	MsgOnlyOwnerUpdatesRestaurant = "Only restaurant owner can update restaurant"
	MsgFailedToFetchRestaurants   = "Failed to fetch restaurants"
	MsgFailedToFetchRestaurant    = "Failed to fetch restaurant"
	MsgFailedToCreateRestaurant   = "Failed to create restaurant"
	MsgFailedToUpdateRestaurant   = "Failed to update restaurant"
)

// Food items.
const (
	MsgFoodItemNotFound          = "Food item not found"
	MsgFoodItemFieldsRequired    = "Restaurant ID, name, and price are required"
	MsgInvalidPrice              = "Price must be a non-negative number"
	MsgOnlyOwnerAddsFoodItems    = "Only restaurant owner can add food items"
	MsgOnlyOwnerUpdatesFoodItems = "Only restaurant owner can update food items"
	MsgOnlyOwnerDeletesFoodItems = "Only restaurant owner can delete food items"
	MsgFailedToFetchFoodItems    = "Failed to fetch food items"
	MsgFailedToFetchFoodItem     = "Failed to fetch food item"
	MsgFailedToCreateFoodItem    = "Failed to create food item"
	MsgFailedToUpdateFoodItem    = "Failed to update food item"
	MsgFailedToDeleteFoodItem    = "Failed to delete food item"
)

// Carts.
const (
	MsgCartItemFieldsRequired  = "Restaurant ID, food ID, and valid quantity are required"
	MsgInvalidQuantity         = "Quantity must be at least 1"
	MsgFoodItemNotAvailable    = "Food item not available"
	MsgFoodItemWrongRestaurant = "Food item does not belong to this restaurant"
	MsgCartItemNotFound        = "Cart item not found"
	MsgCartItemForbidden       = "Unauthorized"
	MsgCartIsEmpty             = "Cart is empty"
	MsgItemOutOfStock          = "Item %s is out of stock"
	MsgOrderPlaced             = "Order placed successfully"
	MsgFailedToFetchCart       = "Failed to fetch cart"
	MsgFailedToAddCartItem     = "Failed to add item to cart"
	MsgFailedToUpdateCartItem  = "Failed to update cart item"
	MsgFailedToRemoveCartItem  = "Failed to remove cart item"
	MsgCheckoutFailed          = "Checkout failed"
)

// Current user and health.
const (
	MsgUserNotFound       = "User not found"
	MsgFailedToFetchUser  = "Failed to fetch user information"
	MsgFailedToUpdateUser = "Failed to update user information"
	MsgStatusOK           = "ok"
	MsgStatusUnavailable  = "unavailable"
)
