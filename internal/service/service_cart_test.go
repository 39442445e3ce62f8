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

type cartMocks struct {
	carts     *mock.MockCartRepository
	foodItems *mock.MockFoodItemRepository
}

func newTestCartSvc(t *testing.T) (CartService, cartMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := cartMocks{
		carts:     mock.NewMockCartRepository(ctrl),
		foodItems: mock.NewMockFoodItemRepository(ctrl),
	}
	return NewCartService(m.carts, m.foodItems, validators.NewRequestValidator(), logger.Nop()), m
}

var existingCart = models.Cart{CartID: cartID, UserID: ownerID, RestaurantID: restaurantID, CreatedAt: fixedNow, UpdatedAt: fixedNow}

// ── GetCart ──────────────────────────────────────────────────────────────────

func TestCartService_GetCart(t *testing.T) {
	t.Run("no cart is nil", func(t *testing.T) {
		svc, m := newTestCartSvc(t)

		m.carts.EXPECT().FindLatestCartByUser(gomock.Any(), ownerID).Return(models.Cart{}, store.ErrCartNotFound)

		cart, err := svc.GetCart(testCtx(), ownerID)
		require.NoError(t, err)
		assert.Nil(t, cart)
	})

	t.Run("latest cart", func(t *testing.T) {
		svc, m := newTestCartSvc(t)

		m.carts.EXPECT().FindLatestCartByUser(gomock.Any(), ownerID).Return(existingCart, nil)

		cart, err := svc.GetCart(testCtx(), ownerID)
		require.NoError(t, err)
		require.NotNil(t, cart)
		assert.Equal(t, cartID, cart.CartID)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, m := newTestCartSvc(t)

		m.carts.EXPECT().FindLatestCartByUser(gomock.Any(), ownerID).Return(models.Cart{}, errors.New("db down"))

		_, err := svc.GetCart(testCtx(), ownerID)
		require.Error(t, err)
	})
}

// ── AddItem ──────────────────────────────────────────────────────────────────

func TestCartService_AddItem_CreatesCartAndLine(t *testing.T) {
	svc, m := newTestCartSvc(t)
	note := "no basil"

	gomock.InOrder(
		m.foodItems.EXPECT().FindFoodItemByID(gomock.Any(), foodID).Return(margherita, nil),
		m.carts.EXPECT().FindCart(gomock.Any(), ownerID, restaurantID).Return(models.Cart{}, store.ErrCartNotFound),
		m.carts.EXPECT().CreateCart(gomock.Any(), models.Cart{UserID: ownerID, RestaurantID: restaurantID}).Return(existingCart, nil),
		m.carts.EXPECT().FindCartItemByFood(gomock.Any(), cartID, foodID).Return(models.CartItem{}, store.ErrCartItemNotFound),
		m.carts.EXPECT().
			CreateCartItem(gomock.Any(), models.CartItem{CartID: cartID, FoodID: foodID, Quantity: 2, UserNote: &note}).
			Return(models.CartItem{CartItemID: cartItemID, CartID: cartID, FoodID: foodID, Quantity: 2, UserNote: &note}, nil),
		m.carts.EXPECT().TouchCart(gomock.Any(), cartID).Return(nil),
	)

	item, created, err := svc.AddItem(testCtx(), models.AddCartItemRequest{
		UserID: ownerID, RestaurantID: restaurantID, FoodID: foodID, Quantity: 2, UserNote: &note,
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 2, item.Quantity)
}

func TestCartService_AddItem_IncrementsExistingLine(t *testing.T) {
	svc, m := newTestCartSvc(t)
	oldNote := "extra cheese"
	quantity := 5

	gomock.InOrder(
		m.foodItems.EXPECT().FindFoodItemByID(gomock.Any(), foodID).Return(margherita, nil),
		m.carts.EXPECT().FindCart(gomock.Any(), ownerID, restaurantID).Return(existingCart, nil),
		m.carts.EXPECT().FindCartItemByFood(gomock.Any(), cartID, foodID).
			Return(models.CartItem{CartItemID: cartItemID, CartID: cartID, FoodID: foodID, Quantity: 2, UserNote: &oldNote}, nil),
		// an empty note keeps the old one, so only quantity is written
		m.carts.EXPECT().UpdateCartItem(gomock.Any(), cartItemID, models.CartItemUpdate{Quantity: &quantity}).
			Return(models.CartItem{CartItemID: cartItemID, Quantity: quantity, UserNote: &oldNote}, nil),
		m.carts.EXPECT().TouchCart(gomock.Any(), cartID).Return(nil),
	)

	item, created, err := svc.AddItem(testCtx(), models.AddCartItemRequest{
		UserID: ownerID, RestaurantID: restaurantID, FoodID: foodID, Quantity: 3, UserNote: ptr(""),
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 5, item.Quantity)
	assert.Equal(t, oldNote, *item.UserNote)
}

func TestCartService_AddItem_ReplacesNote(t *testing.T) {
	svc, m := newTestCartSvc(t)
	newNote := "well done"
	quantity := 2

	m.foodItems.EXPECT().FindFoodItemByID(gomock.Any(), foodID).Return(margherita, nil)
	m.carts.EXPECT().FindCart(gomock.Any(), ownerID, restaurantID).Return(existingCart, nil)
	m.carts.EXPECT().FindCartItemByFood(gomock.Any(), cartID, foodID).Return(models.CartItem{CartItemID: cartItemID, Quantity: 1}, nil)
	m.carts.EXPECT().UpdateCartItem(gomock.Any(), cartItemID, models.CartItemUpdate{Quantity: &quantity, UserNote: &newNote}).
		Return(models.CartItem{CartItemID: cartItemID, Quantity: quantity, UserNote: &newNote}, nil)
	m.carts.EXPECT().TouchCart(gomock.Any(), cartID).Return(nil)

	_, created, err := svc.AddItem(testCtx(), models.AddCartItemRequest{
		UserID: ownerID, RestaurantID: restaurantID, FoodID: foodID, Quantity: 1, UserNote: &newNote,
	})
	require.NoError(t, err)
	assert.False(t, created)
}

func TestCartService_AddItem_Rejections(t *testing.T) {
	outOfStock := margherita
	outOfStock.InStock = false

	tests := []struct {
		name    string
		request models.AddCartItemRequest
		setup   func(m cartMocks)
		wantErr error
	}{
		{
			name:    "zero quantity",
			request: models.AddCartItemRequest{UserID: ownerID, RestaurantID: restaurantID, FoodID: foodID},
			setup:   func(m cartMocks) {},
			wantErr: validators.ErrCartItemFieldsRequired,
		},
		{
			name:    "missing food",
			request: models.AddCartItemRequest{UserID: ownerID, RestaurantID: restaurantID, FoodID: foodID, Quantity: 1},
			setup: func(m cartMocks) {
				m.foodItems.EXPECT().FindFoodItemByID(gomock.Any(), foodID).Return(models.FoodItem{}, store.ErrFoodItemNotFound)
			},
			wantErr: ErrFoodItemNotAvailable,
		},
		{
			name:    "malformed food id",
			request: models.AddCartItemRequest{UserID: ownerID, RestaurantID: restaurantID, FoodID: "42", Quantity: 1},
			setup:   func(m cartMocks) {},
			wantErr: ErrFoodItemNotAvailable,
		},
		{
			name:    "out of stock",
			request: models.AddCartItemRequest{UserID: ownerID, RestaurantID: restaurantID, FoodID: foodID, Quantity: 1},
			setup: func(m cartMocks) {
				m.foodItems.EXPECT().FindFoodItemByID(gomock.Any(), foodID).Return(outOfStock, nil)
			},
			wantErr: ErrFoodItemNotAvailable,
		},
		{
			name:    "other restaurant",
			request: models.AddCartItemRequest{UserID: ownerID, RestaurantID: otherRestID, FoodID: foodID, Quantity: 1},
			setup: func(m cartMocks) {
				m.foodItems.EXPECT().FindFoodItemByID(gomock.Any(), foodID).Return(margherita, nil)
			},
			wantErr: ErrFoodItemWrongRestaurant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestCartSvc(t)
			tt.setup(m)

			_, _, err := svc.AddItem(testCtx(), tt.request)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── UpdateItem / RemoveItem ──────────────────────────────────────────────────

func TestCartService_UpdateItem(t *testing.T) {
	ownedItem := models.CartItem{CartItemID: cartItemID, CartID: cartID, FoodID: foodID, Quantity: 2, OwnerID: ownerID}

	t.Run("owner", func(t *testing.T) {
		svc, m := newTestCartSvc(t)
		quantity := 4

		m.carts.EXPECT().FindCartItemByID(gomock.Any(), cartItemID).Return(ownedItem, nil)
		m.carts.EXPECT().UpdateCartItem(gomock.Any(), cartItemID, models.CartItemUpdate{Quantity: &quantity}).
			Return(models.CartItem{CartItemID: cartItemID, Quantity: quantity}, nil)

		item, err := svc.UpdateItem(testCtx(), models.UpdateCartItemRequest{CartItemID: cartItemID, UserID: ownerID, Quantity: &quantity})
		require.NoError(t, err)
		assert.Equal(t, quantity, item.Quantity)
	})

	t.Run("other user", func(t *testing.T) {
		svc, m := newTestCartSvc(t)

		m.carts.EXPECT().FindCartItemByID(gomock.Any(), cartItemID).Return(ownedItem, nil)

		_, err := svc.UpdateItem(testCtx(), models.UpdateCartItemRequest{CartItemID: cartItemID, UserID: otherUserID, Quantity: ptr(1)})
		assert.ErrorIs(t, err, ErrForbiddenCartItem)
	})

	t.Run("quantity below one", func(t *testing.T) {
		svc, m := newTestCartSvc(t)

		m.carts.EXPECT().FindCartItemByID(gomock.Any(), cartItemID).Return(ownedItem, nil)

		_, err := svc.UpdateItem(testCtx(), models.UpdateCartItemRequest{CartItemID: cartItemID, UserID: ownerID, Quantity: ptr(0)})
		assert.ErrorIs(t, err, validators.ErrInvalidQuantity)
	})

	t.Run("missing", func(t *testing.T) {
		svc, m := newTestCartSvc(t)

		m.carts.EXPECT().FindCartItemByID(gomock.Any(), cartItemID).Return(models.CartItem{}, store.ErrCartItemNotFound)

		_, err := svc.UpdateItem(testCtx(), models.UpdateCartItemRequest{CartItemID: cartItemID, UserID: ownerID})
		assert.ErrorIs(t, err, store.ErrCartItemNotFound)
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	ownedItem := models.CartItem{CartItemID: cartItemID, OwnerID: ownerID}

	t.Run("owner", func(t *testing.T) {
		svc, m := newTestCartSvc(t)

		m.carts.EXPECT().FindCartItemByID(gomock.Any(), cartItemID).Return(ownedItem, nil)
		m.carts.EXPECT().DeleteCartItem(gomock.Any(), cartItemID).Return(nil)

		require.NoError(t, svc.RemoveItem(testCtx(), cartItemID, ownerID))
	})

	t.Run("other user", func(t *testing.T) {
		svc, m := newTestCartSvc(t)

		m.carts.EXPECT().FindCartItemByID(gomock.Any(), cartItemID).Return(ownedItem, nil)

		assert.ErrorIs(t, svc.RemoveItem(testCtx(), cartItemID, otherUserID), ErrForbiddenCartItem)
	})
}

// ── Checkout ─────────────────────────────────────────────────────────────────

func TestCartService_Checkout(t *testing.T) {
	inStock := margherita
	soldOut := models.FoodItem{FoodID: foodID, Name: "Calzone", InStock: false}

	withItems := func(foods ...models.FoodItem) models.Cart {
		cart := existingCart
		cart.Items = nil
		for i := range foods {
			cart.Items = append(cart.Items, models.CartItem{CartItemID: cartItemID, Quantity: 1, FoodItem: &foods[i]})
		}
		return cart
	}

	t.Run("no cart", func(t *testing.T) {
		svc, m := newTestCartSvc(t)

		m.carts.EXPECT().FindLatestCartByUser(gomock.Any(), ownerID).Return(models.Cart{}, store.ErrCartNotFound)

		assert.ErrorIs(t, svc.Checkout(testCtx(), ownerID), ErrCartIsEmpty)
	})

	t.Run("empty cart", func(t *testing.T) {
		svc, m := newTestCartSvc(t)

		m.carts.EXPECT().FindLatestCartByUser(gomock.Any(), ownerID).Return(withItems(), nil)

		assert.ErrorIs(t, svc.Checkout(testCtx(), ownerID), ErrCartIsEmpty)
	})

	t.Run("out of stock names the item", func(t *testing.T) {
		svc, m := newTestCartSvc(t)

		m.carts.EXPECT().FindLatestCartByUser(gomock.Any(), ownerID).Return(withItems(inStock, soldOut), nil)

		err := svc.Checkout(testCtx(), ownerID)
		assert.ErrorIs(t, err, ErrItemOutOfStock)

		var stockErr *OutOfStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, "Calzone", stockErr.ItemName)
		assert.Equal(t, "item Calzone is out of stock", err.Error())
	})

	t.Run("success deletes the cart", func(t *testing.T) {
		svc, m := newTestCartSvc(t)

		m.carts.EXPECT().FindLatestCartByUser(gomock.Any(), ownerID).Return(withItems(inStock), nil)
		m.carts.EXPECT().DeleteCart(gomock.Any(), cartID).Return(nil)

		require.NoError(t, svc.Checkout(testCtx(), ownerID))
	})

	t.Run("delete failure", func(t *testing.T) {
		svc, m := newTestCartSvc(t)

		m.carts.EXPECT().FindLatestCartByUser(gomock.Any(), ownerID).Return(withItems(inStock), nil)
		m.carts.EXPECT().DeleteCart(gomock.Any(), cartID).Return(store.ErrCommitingTransaction)

		err := svc.Checkout(testCtx(), ownerID)
		assert.ErrorIs(t, err, store.ErrCommitingTransaction)
		assert.NotErrorIs(t, err, ErrCartIsEmpty)
	})
}
