package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-food-order/internal/app"
	"github.com/MKhiriev/go-food-order/internal/service"
	"github.com/MKhiriev/go-food-order/internal/store"
	"github.com/MKhiriev/go-food-order/internal/validators"
)

// errorStatuses is ordered: a transient store failure outranks the
// operation that hit it, and domain errors outrank the infrastructure
// errors they may wrap.
var errorStatuses = []struct {
	target error
	status int
}{
	{store.ErrStoreBusy, http.StatusServiceUnavailable},
	{validators.ErrAllFieldsRequired, http.StatusBadRequest},
	{validators.ErrEmailAndPasswordRequired, http.StatusBadRequest},
	{validators.ErrNameAndAddressRequired, http.StatusBadRequest},
	{validators.ErrFoodItemFieldsRequired, http.StatusBadRequest},
	{validators.ErrCartItemFieldsRequired, http.StatusBadRequest},
	{validators.ErrInvalidPrice, http.StatusBadRequest},
	{validators.ErrInvalidQuantity, http.StatusBadRequest},
	{validators.ErrEmptyField, http.StatusBadRequest},

	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrInvalidToken, http.StatusUnauthorized},
	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrFoodItemNotAvailable, http.StatusBadRequest},
	{service.ErrFoodItemWrongRestaurant, http.StatusBadRequest},
	{service.ErrCartIsEmpty, http.StatusBadRequest},
	{service.ErrItemOutOfStock, http.StatusBadRequest},
	{service.ErrStoreUnavailable, http.StatusServiceUnavailable},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},

	{store.ErrEmailAlreadyExists, http.StatusBadRequest},
	{store.ErrRestaurantAlreadyExists, http.StatusBadRequest},
	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrRestaurantNotFound, http.StatusNotFound},
	{store.ErrFoodItemNotFound, http.StatusNotFound},
	{store.ErrCartNotFound, http.StatusNotFound},
	{store.ErrCartItemNotFound, http.StatusNotFound},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, s := range errorStatuses {
		if errors.Is(err, s.target) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// errorMessages is ordered: the wrapped forbidden errors must match before
// their common parent.
var errorMessages = []struct {
	target  error
	message string
}{
	{validators.ErrAllFieldsRequired, app.MsgAllFieldsRequired},
	{validators.ErrEmailAndPasswordRequired, app.MsgEmailPasswordRequired},
	{validators.ErrNameAndAddressRequired, app.MsgNameAndAddressRequired},
	{validators.ErrFoodItemFieldsRequired, app.MsgFoodItemFieldsRequired},
	{validators.ErrCartItemFieldsRequired, app.MsgCartItemFieldsRequired},
	{validators.ErrInvalidPrice, app.MsgInvalidPrice},
	{validators.ErrInvalidQuantity, app.MsgInvalidQuantity},
	{validators.ErrEmptyField, app.MsgEmptyField},

	{service.ErrInvalidCredentials, app.MsgInvalidCredentials},
	{service.ErrInvalidToken, app.MsgInvalidToken},
	{service.ErrForbiddenRestaurantUpdate, app.MsgOnlyOwnerUpdatesRestaurant},
	{service.ErrForbiddenFoodItemCreate, app.MsgOnlyOwnerAddsFoodItems},
	{service.ErrForbiddenFoodItemUpdate, app.MsgOnlyOwnerUpdatesFoodItems},
	{service.ErrForbiddenFoodItemDelete, app.MsgOnlyOwnerDeletesFoodItems},
	{service.ErrForbiddenCartItem, app.MsgCartItemForbidden},
	{service.ErrForbidden, app.MsgForbidden},
	{service.ErrFoodItemNotAvailable, app.MsgFoodItemNotAvailable},
	{service.ErrFoodItemWrongRestaurant, app.MsgFoodItemWrongRestaurant},
	{service.ErrCartIsEmpty, app.MsgCartIsEmpty},
	{service.ErrStoreUnavailable, app.MsgStatusUnavailable},

	{store.ErrEmailAlreadyExists, app.MsgEmailAlreadyExists},
	{store.ErrRestaurantAlreadyExists, app.MsgRestaurantAlreadyExists},
	{store.ErrUserNotFound, app.MsgUserNotFound},
	{store.ErrRestaurantNotFound, app.MsgRestaurantNotFound},
	{store.ErrFoodItemNotFound, app.MsgFoodItemNotFound},
	{store.ErrCartNotFound, app.MsgCartIsEmpty},
	{store.ErrCartItemNotFound, app.MsgCartItemNotFound},
}

// messageFromError returns the client-facing message for err, or fallback
// when err has none.
func messageFromError(err error, fallback string) string {
	var outOfStock *service.OutOfStockError
	if errors.As(err, &outOfStock) {
		return fmt.Sprintf(app.MsgItemOutOfStock, outOfStock.ItemName)
	}

	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return fallback
}
