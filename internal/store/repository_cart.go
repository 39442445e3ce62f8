package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/models"
	sq "github.com/Masterminds/squirrel"
)

// cartRepository is the SQL implementation of [CartRepository].
//
// Carts are looked up either by (user, restaurant) when items are added, or
// as the user's most recently updated cart when the cart is shown or checked
// out. Removal of a cart and its lines always happens in one transaction.
type cartRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCartRepository constructs a [CartRepository] backed by db.
func NewCartRepository(db *DB, logger *logger.Logger) CartRepository {
	logger.Debug().Msg("creating cart repository")
	return &cartRepository{
		db:     db,
		logger: logger,
	}
}

// FindLatestCartByUser loads the user's most recently updated cart together
// with its restaurant and items. Returns [ErrCartNotFound] when the user has
// no cart.
func (c *cartRepository) FindLatestCartByUser(ctx context.Context, userID string) (models.Cart, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.db.builder.
		Select(cartColumns...).
		From(cartsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("updated_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.FindLatestCartByUser").Msg("error building query")
		return models.Cart{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	cart, err := c.scanCartRow(ctx, "*cartRepository.FindLatestCartByUser", query, args)
	if err != nil {
		return models.Cart{}, err
	}

	restaurant, err := c.findCartRestaurant(ctx, cart.RestaurantID)
	if err != nil {
		return models.Cart{}, err
	}
	cart.Restaurant = &restaurant

	items, err := c.listCartItemsWithFood(ctx, cart.CartID)
	if err != nil {
		return models.Cart{}, err
	}
	cart.Items = items

	return cart, nil
}

// FindCart returns the cart of userID for restaurantID without its items.
func (c *cartRepository) FindCart(ctx context.Context, userID, restaurantID string) (models.Cart, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.db.builder.
		Select(cartColumns...).
		From(cartsTable).
		Where(sq.Eq{"user_id": userID, "restaurant_id": restaurantID}).
		OrderBy("updated_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.FindCart").Msg("error building query")
		return models.Cart{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return c.scanCartRow(ctx, "*cartRepository.FindCart", query, args)
}

// CreateCart inserts an empty cart for cart.UserID and cart.RestaurantID.
func (c *cartRepository) CreateCart(ctx context.Context, cart models.Cart) (models.Cart, error) {
	log := logger.FromContext(ctx)

	now := c.db.clock()
	cart.CartID = c.db.ids.Generate()
	cart.CreatedAt, cart.UpdatedAt = now, now

	query, args, err := c.db.builder.
		Insert(cartsTable).
		Columns(cartColumns...).
		Values(cart.CartID, cart.UserID, cart.RestaurantID, cart.CreatedAt, cart.UpdatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.CreateCart").Msg("error building query")
		return models.Cart{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.db.ExecContext(ctx, query, args...); err != nil {
		if c.db.isForeignKeyViolation(err) {
			return models.Cart{}, ErrRestaurantNotFound
		}
		log.Err(err).Str("func", "*cartRepository.CreateCart").Msg("error inserting cart")
		return models.Cart{}, c.db.wrapError(ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "*cartRepository.CreateCart").Str("cart_id", cart.CartID).Msg("cart created")
	cart.Items = []models.CartItem{}
	return cart, nil
}

// TouchCart sets updated_at of the cart to the current time.
func (c *cartRepository) TouchCart(ctx context.Context, cartID string) error {
	log := logger.FromContext(ctx)

	query, args, err := c.db.builder.
		Update(cartsTable).
		Set("updated_at", c.db.clock()).
		Where(sq.Eq{"id": cartID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.TouchCart").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.TouchCart").Str("cart_id", cartID).Msg("error touching cart")
		return c.db.wrapError(ErrExecutingStatement, err)
	}

	return c.db.expectAffected(result, ErrCartNotFound)
}

// DeleteCart removes the items of the cart and then the cart itself in one
// transaction.
func (c *cartRepository) DeleteCart(ctx context.Context, cartID string) error {
	log := logger.FromContext(ctx)

	deleteItemsQuery, deleteItemsArgs, err := c.db.builder.
		Delete(cartItemsTable).
		Where(sq.Eq{"cart_id": cartID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.DeleteCart").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deleteCartQuery, deleteCartArgs, err := c.db.builder.
		Delete(cartsTable).
		Where(sq.Eq{"id": cartID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.DeleteCart").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.DeleteCart").Str("cart_id", cartID).Msg("failed to begin transaction")
		return c.db.wrapError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteItemsQuery, deleteItemsArgs...); err != nil {
		log.Err(err).Str("func", "*cartRepository.DeleteCart").Str("cart_id", cartID).Msg("error deleting cart items")
		return c.db.wrapError(ErrExecutingStatement, err)
	}

	result, err := tx.ExecContext(ctx, deleteCartQuery, deleteCartArgs...)
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.DeleteCart").Str("cart_id", cartID).Msg("error deleting cart")
		return c.db.wrapError(ErrExecutingStatement, err)
	}

	if err = c.db.expectAffected(result, ErrCartNotFound); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*cartRepository.DeleteCart").Str("cart_id", cartID).Msg("failed to commit transaction")
		return c.db.wrapError(ErrCommitingTransaction, err)
	}

	log.Debug().Str("func", "*cartRepository.DeleteCart").Str("cart_id", cartID).Msg("cart deleted")
	return nil
}

// DeleteStaleCarts removes every cart with updated_at before the given time,
// together with its items.
func (c *cartRepository) DeleteStaleCarts(ctx context.Context, before time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	deleteItemsQuery, deleteItemsArgs, err := c.db.builder.
		Delete(cartItemsTable).
		Where(sq.Expr("cart_id IN (SELECT id FROM "+cartsTable+" WHERE updated_at < ?)", before)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.DeleteStaleCarts").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deleteCartsQuery, deleteCartsArgs, err := c.db.builder.
		Delete(cartsTable).
		Where(sq.Lt{"updated_at": before}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.DeleteStaleCarts").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.DeleteStaleCarts").Msg("failed to begin transaction")
		return 0, c.db.wrapError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteItemsQuery, deleteItemsArgs...); err != nil {
		log.Err(err).Str("func", "*cartRepository.DeleteStaleCarts").Msg("error deleting stale cart items")
		return 0, c.db.wrapError(ErrExecutingStatement, err)
	}

	result, err := tx.ExecContext(ctx, deleteCartsQuery, deleteCartsArgs...)
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.DeleteStaleCarts").Msg("error deleting stale carts")
		return 0, c.db.wrapError(ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, c.db.wrapError(ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*cartRepository.DeleteStaleCarts").Msg("failed to commit transaction")
		return 0, c.db.wrapError(ErrCommitingTransaction, err)
	}

	return deleted, nil
}

// FindCartItemByID returns the cart line with the id of its cart's owner, or
// [ErrCartItemNotFound].
func (c *cartRepository) FindCartItemByID(ctx context.Context, cartItemID string) (models.CartItem, error) {
	return c.findCartItem(ctx, "*cartRepository.FindCartItemByID", sq.Eq{"ci.id": cartItemID})
}

// FindCartItemByFood returns the line of cartID holding foodID, or
// [ErrCartItemNotFound].
func (c *cartRepository) FindCartItemByFood(ctx context.Context, cartID, foodID string) (models.CartItem, error) {
	return c.findCartItem(ctx, "*cartRepository.FindCartItemByFood", sq.Eq{"ci.cart_id": cartID, "ci.food_id": foodID})
}

// CreateCartItem inserts a new line into item.CartID.
func (c *cartRepository) CreateCartItem(ctx context.Context, item models.CartItem) (models.CartItem, error) {
	log := logger.FromContext(ctx)

	item.CartItemID = c.db.ids.Generate()

	query, args, err := c.db.builder.
		Insert(cartItemsTable).
		Columns("id", "cart_id", "food_id", "quantity", "user_note").
		Values(item.CartItemID, item.CartID, item.FoodID, item.Quantity, item.UserNote).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.CreateCartItem").Msg("error building query")
		return models.CartItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.db.ExecContext(ctx, query, args...); err != nil {
		if c.db.isForeignKeyViolation(err) {
			return models.CartItem{}, ErrCartNotFound
		}
		log.Err(err).Str("func", "*cartRepository.CreateCartItem").Msg("error inserting cart item")
		return models.CartItem{}, c.db.wrapError(ErrExecutingStatement, err)
	}

	return c.FindCartItemByID(ctx, item.CartItemID)
}

// UpdateCartItem writes the non-nil fields of update.
func (c *cartRepository) UpdateCartItem(ctx context.Context, cartItemID string, update models.CartItemUpdate) (models.CartItem, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return c.FindCartItemByID(ctx, cartItemID)
	}

	builder := c.db.builder.
		Update(cartItemsTable).
		Where(sq.Eq{"id": cartItemID})
	if update.Quantity != nil {
		builder = builder.Set("quantity", *update.Quantity)
	}
	if update.UserNote != nil {
		builder = builder.Set("user_note", *update.UserNote)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.UpdateCartItem").Msg("error building query")
		return models.CartItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.UpdateCartItem").Str("cart_item_id", cartItemID).Msg("error updating cart item")
		return models.CartItem{}, c.db.wrapError(ErrExecutingStatement, err)
	}

	if err = c.db.expectAffected(result, ErrCartItemNotFound); err != nil {
		return models.CartItem{}, err
	}

	return c.FindCartItemByID(ctx, cartItemID)
}

// DeleteCartItem removes a single cart line.
func (c *cartRepository) DeleteCartItem(ctx context.Context, cartItemID string) error {
	log := logger.FromContext(ctx)

	query, args, err := c.db.builder.
		Delete(cartItemsTable).
		Where(sq.Eq{"id": cartItemID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.DeleteCartItem").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.DeleteCartItem").Str("cart_item_id", cartItemID).Msg("error deleting cart item")
		return c.db.wrapError(ErrExecutingStatement, err)
	}

	return c.db.expectAffected(result, ErrCartItemNotFound)
}

func (c *cartRepository) scanCartRow(ctx context.Context, funcName, query string, args []any) (models.Cart, error) {
	var cart models.Cart

	err := c.db.QueryRowContext(ctx, query, args...).Scan(
		&cart.CartID,
		&cart.UserID,
		&cart.RestaurantID,
		&cart.CreatedAt,
		&cart.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Cart{}, ErrCartNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error scanning cart")
		return models.Cart{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return cart, nil
}

func (c *cartRepository) findCartRestaurant(ctx context.Context, restaurantID string) (models.Restaurant, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectRestaurants(c.db.builder).Where(sq.Eq{"r.id": restaurantID}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.findCartRestaurant").Msg("error building query")
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	restaurant, err := scanRestaurant(c.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Restaurant{}, ErrRestaurantNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.findCartRestaurant").Msg("error scanning restaurant")
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return restaurant, nil
}

func (c *cartRepository) listCartItemsWithFood(ctx context.Context, cartID string) ([]models.CartItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectCartItemsWithFood(c.db.builder).
		Where(sq.Eq{"ci.cart_id": cartID}).
		OrderBy("ci.id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.listCartItemsWithFood").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.listCartItemsWithFood").Msg("error querying cart items")
		return nil, c.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.CartItem, 0)
	for rows.Next() {
		var (
			item models.CartItem
			food models.FoodItem
		)
		scanErr := rows.Scan(
			&item.CartItemID, &item.CartID, &item.FoodID, &item.Quantity, &item.UserNote, &item.OwnerID,
			&food.FoodID, &food.RestaurantID, &food.Name, &food.Price, &food.InStock, &food.CreatedAt, &food.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*cartRepository.listCartItemsWithFood").Msg("error scanning cart item")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		item.FoodItem = &food
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (c *cartRepository) findCartItem(ctx context.Context, funcName string, where sq.Eq) (models.CartItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectCartItems(c.db.builder).Where(where).ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return models.CartItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var item models.CartItem
	err = c.db.QueryRowContext(ctx, query, args...).Scan(
		&item.CartItemID,
		&item.CartID,
		&item.FoodID,
		&item.Quantity,
		&item.UserNote,
		&item.OwnerID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CartItem{}, ErrCartItemNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error scanning cart item")
		return models.CartItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}
