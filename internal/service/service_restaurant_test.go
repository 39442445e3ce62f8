package service

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/mock"
	"github.com/MKhiriev/go-food-order/internal/store"
	"github.com/MKhiriev/go-food-order/internal/validators"
	"github.com/MKhiriev/go-food-order/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type restaurantMocks struct {
	restaurants *mock.MockRestaurantRepository
	foodItems   *mock.MockFoodItemRepository
}

func newTestRestaurantSvc(t *testing.T) (RestaurantService, restaurantMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := restaurantMocks{
		restaurants: mock.NewMockRestaurantRepository(ctrl),
		foodItems:   mock.NewMockFoodItemRepository(ctrl),
	}
	return NewRestaurantService(m.restaurants, m.foodItems, validators.NewRequestValidator(), logger.Nop()), m
}

func TestRestaurantService_ListRestaurants(t *testing.T) {
	svc, m := newTestRestaurantSvc(t)

	m.restaurants.EXPECT().ListRestaurants(gomock.Any()).Return([]models.Restaurant{{RestaurantID: restaurantID}}, nil)

	restaurants, err := svc.ListRestaurants(testCtx())
	require.NoError(t, err)
	assert.Len(t, restaurants, 1)
}

func TestRestaurantService_GetRestaurant_EmbedsMenu(t *testing.T) {
	svc, m := newTestRestaurantSvc(t)

	gomock.InOrder(
		m.restaurants.EXPECT().FindRestaurantByID(gomock.Any(), restaurantID).Return(models.Restaurant{RestaurantID: restaurantID, OwnerID: ownerID}, nil),
		m.foodItems.EXPECT().ListFoodItemsByRestaurant(gomock.Any(), restaurantID).Return([]models.FoodItem{{FoodID: foodID}}, nil),
	)

	restaurant, err := svc.GetRestaurant(testCtx(), restaurantID)
	require.NoError(t, err)
	require.Len(t, restaurant.FoodItems, 1)
	assert.Equal(t, foodID, restaurant.FoodItems[0].FoodID)
}

func TestRestaurantService_GetRestaurant_NotFound(t *testing.T) {
	svc, m := newTestRestaurantSvc(t)

	m.restaurants.EXPECT().FindRestaurantByID(gomock.Any(), restaurantID).Return(models.Restaurant{}, store.ErrRestaurantNotFound)

	_, err := svc.GetRestaurant(testCtx(), restaurantID)
	assert.ErrorIs(t, err, store.ErrRestaurantNotFound)

	_, err = svc.GetRestaurant(testCtx(), "42")
	assert.ErrorIs(t, err, store.ErrRestaurantNotFound)
}

func TestRestaurantService_GetOwnRestaurant(t *testing.T) {
	svc, m := newTestRestaurantSvc(t)

	m.restaurants.EXPECT().FindRestaurantByOwner(gomock.Any(), ownerID).Return(models.Restaurant{RestaurantID: restaurantID}, nil)

	restaurant, err := svc.GetOwnRestaurant(testCtx(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, restaurantID, restaurant.RestaurantID)
}

func TestRestaurantService_CreateRestaurant(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, m := newTestRestaurantSvc(t)

		m.restaurants.EXPECT().
			CreateRestaurant(gomock.Any(), models.Restaurant{Name: "Pizza", Address: "Main St", OwnerID: ownerID}).
			Return(models.Restaurant{RestaurantID: restaurantID, Name: "Pizza", Address: "Main St", OwnerID: ownerID}, nil)

		restaurant, err := svc.CreateRestaurant(testCtx(), models.CreateRestaurantRequest{OwnerID: ownerID, Name: "Pizza", Address: "Main St"})
		require.NoError(t, err)
		assert.Equal(t, restaurantID, restaurant.RestaurantID)
	})

	t.Run("missing address", func(t *testing.T) {
		svc, _ := newTestRestaurantSvc(t)

		_, err := svc.CreateRestaurant(testCtx(), models.CreateRestaurantRequest{OwnerID: ownerID, Name: "Pizza"})
		assert.ErrorIs(t, err, validators.ErrNameAndAddressRequired)
	})

	t.Run("second restaurant", func(t *testing.T) {
		svc, m := newTestRestaurantSvc(t)

		m.restaurants.EXPECT().CreateRestaurant(gomock.Any(), gomock.Any()).Return(models.Restaurant{}, store.ErrRestaurantAlreadyExists)

		_, err := svc.CreateRestaurant(testCtx(), models.CreateRestaurantRequest{OwnerID: ownerID, Name: "Pizza", Address: "Main St"})
		assert.ErrorIs(t, err, store.ErrRestaurantAlreadyExists)
	})
}

func TestRestaurantService_UpdateRestaurant(t *testing.T) {
	existing := models.Restaurant{RestaurantID: restaurantID, Name: "Pizza", Address: "Main St", OwnerID: ownerID}
	name := "Pizza Palace"

	t.Run("owner", func(t *testing.T) {
		svc, m := newTestRestaurantSvc(t)

		m.restaurants.EXPECT().FindRestaurantByID(gomock.Any(), restaurantID).Return(existing, nil)
		m.restaurants.EXPECT().
			UpdateRestaurant(gomock.Any(), restaurantID, models.RestaurantUpdate{Name: &name}).
			Return(models.Restaurant{RestaurantID: restaurantID, Name: name, Address: "Main St", OwnerID: ownerID}, nil)

		restaurant, err := svc.UpdateRestaurant(testCtx(), models.UpdateRestaurantRequest{RestaurantID: restaurantID, UserID: ownerID, Name: &name})
		require.NoError(t, err)
		assert.Equal(t, name, restaurant.Name)
	})

	t.Run("non-owner", func(t *testing.T) {
		svc, m := newTestRestaurantSvc(t)

		m.restaurants.EXPECT().FindRestaurantByID(gomock.Any(), restaurantID).Return(existing, nil)

		_, err := svc.UpdateRestaurant(testCtx(), models.UpdateRestaurantRequest{RestaurantID: restaurantID, UserID: otherUserID, Name: &name})
		assert.ErrorIs(t, err, ErrForbiddenRestaurantUpdate)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("missing", func(t *testing.T) {
		svc, m := newTestRestaurantSvc(t)

		m.restaurants.EXPECT().FindRestaurantByID(gomock.Any(), restaurantID).Return(models.Restaurant{}, store.ErrRestaurantNotFound)

		_, err := svc.UpdateRestaurant(testCtx(), models.UpdateRestaurantRequest{RestaurantID: restaurantID, UserID: ownerID, Name: &name})
		assert.ErrorIs(t, err, store.ErrRestaurantNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, m := newTestRestaurantSvc(t)

		m.restaurants.EXPECT().FindRestaurantByID(gomock.Any(), restaurantID).Return(existing, nil)
		m.restaurants.EXPECT().UpdateRestaurant(gomock.Any(), restaurantID, gomock.Any()).Return(models.Restaurant{}, errors.New("db down"))

		_, err := svc.UpdateRestaurant(testCtx(), models.UpdateRestaurantRequest{RestaurantID: restaurantID, UserID: ownerID, Name: &name})
		require.Error(t, err)
	})
}
