package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID = errors.New("invalid user ID")

	ErrAllFieldsRequired        = errors.New("all fields are required")
	ErrEmailAndPasswordRequired = errors.New("email and password are required")
	ErrNameAndAddressRequired   = errors.New("name and address are required")
	ErrFoodItemFieldsRequired   = errors.New("restaurant ID, name, and price are required")
	ErrCartItemFieldsRequired   = errors.New("restaurant ID, food ID, and valid quantity are required")

	ErrInvalidPrice    = errors.New("price must be a non-negative number")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrEmptyField      = errors.New("updated fields must not be empty")
)
