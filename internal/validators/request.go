package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-food-order/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUserID       = "user_id"
	FieldFirstName    = "first_name"
	FieldLastName     = "last_name"
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldName         = "name"
	FieldAddress      = "address"
	FieldRestaurantID = "restaurant_id"
	FieldFoodID       = "food_id"
	FieldPrice        = "price"
	FieldQuantity     = "quantity"
)

// RequestValidator implements [Validator] for the request DTOs accepted by
// the API: auth, restaurant, food item, cart and user requests.
// Both value and pointer forms are accepted.
type RequestValidator struct {
}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation to the type-specific method. Optional fields
// restrict validation to the named subset; when omitted every field of the
// request is checked.
//
// Returns ErrUnsupportedType if obj does not match any known request.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.CreateRestaurantRequest:
		return v.validateCreateRestaurant(value, fields...)
	case *models.CreateRestaurantRequest:
		return v.validateCreateRestaurant(*value, fields...)

	case models.UpdateRestaurantRequest:
		return v.validateUpdateRestaurant(value, fields...)
	case *models.UpdateRestaurantRequest:
		return v.validateUpdateRestaurant(*value, fields...)

	case models.CreateFoodItemRequest:
		return v.validateCreateFoodItem(value, fields...)
	case *models.CreateFoodItemRequest:
		return v.validateCreateFoodItem(*value, fields...)

	case models.UpdateFoodItemRequest:
		return v.validateUpdateFoodItem(value, fields...)
	case *models.UpdateFoodItemRequest:
		return v.validateUpdateFoodItem(*value, fields...)

	case models.AddCartItemRequest:
		return v.validateAddCartItem(value, fields...)
	case *models.AddCartItemRequest:
		return v.validateAddCartItem(*value, fields...)

	case models.UpdateCartItemRequest:
		return v.validateUpdateCartItem(value, fields...)
	case *models.UpdateCartItemRequest:
		return v.validateUpdateCartItem(*value, fields...)

	case models.UpdateUserRequest:
		return v.validateUpdateUser(value, fields...)
	case *models.UpdateUserRequest:
		return v.validateUpdateUser(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func blankPtr(s *string) bool {
	return s != nil && blank(*s)
}

func (v *RequestValidator) validateRegister(request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if blank(request.FirstName) {
				return ErrAllFieldsRequired
			}
		case FieldLastName:
			if blank(request.LastName) {
				return ErrAllFieldsRequired
			}
		case FieldEmail:
			if blank(request.Email) {
				return ErrAllFieldsRequired
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrAllFieldsRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateLogin(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if blank(request.Email) {
				return ErrEmailAndPasswordRequired
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmailAndPasswordRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCreateRestaurant(request models.CreateRestaurantRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldName, FieldAddress}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if request.OwnerID == "" {
				return ErrInvalidUserID
			}
		case FieldName:
			if blank(request.Name) {
				return ErrNameAndAddressRequired
			}
		case FieldAddress:
			if blank(request.Address) {
				return ErrNameAndAddressRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateUpdateRestaurant(request models.UpdateRestaurantRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldName, FieldAddress}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if request.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldName:
			if blankPtr(request.Name) {
				return ErrEmptyField
			}
		case FieldAddress:
			if blankPtr(request.Address) {
				return ErrEmptyField
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCreateFoodItem(request models.CreateFoodItemRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldRestaurantID, FieldName, FieldPrice}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if request.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldRestaurantID:
			if blank(request.RestaurantID) {
				return ErrFoodItemFieldsRequired
			}
		case FieldName:
			if blank(request.Name) {
				return ErrFoodItemFieldsRequired
			}
		case FieldPrice:
			if request.Price == nil {
				return ErrFoodItemFieldsRequired
			}
			if *request.Price < 0 {
				return ErrInvalidPrice
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateUpdateFoodItem(request models.UpdateFoodItemRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldName, FieldPrice}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if request.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldName:
			if blankPtr(request.Name) {
				return ErrEmptyField
			}
		case FieldPrice:
			if request.Price != nil && *request.Price < 0 {
				return ErrInvalidPrice
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateAddCartItem(request models.AddCartItemRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldRestaurantID, FieldFoodID, FieldQuantity}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if request.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldRestaurantID:
			if blank(request.RestaurantID) {
				return ErrCartItemFieldsRequired
			}
		case FieldFoodID:
			if blank(request.FoodID) {
				return ErrCartItemFieldsRequired
			}
		case FieldQuantity:
			if request.Quantity < 1 {
				return ErrCartItemFieldsRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateUpdateCartItem(request models.UpdateCartItemRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldQuantity}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if request.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldQuantity:
			if request.Quantity != nil && *request.Quantity < 1 {
				return ErrInvalidQuantity
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateUpdateUser(request models.UpdateUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldFirstName, FieldLastName, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if request.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldFirstName:
			if blankPtr(request.FirstName) {
				return ErrEmptyField
			}
		case FieldLastName:
			if blankPtr(request.LastName) {
				return ErrEmptyField
			}
		case FieldEmail:
			if blankPtr(request.Email) {
				return ErrEmptyField
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
