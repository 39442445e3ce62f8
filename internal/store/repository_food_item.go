package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/models"
	sq "github.com/Masterminds/squirrel"
)

type foodItemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFoodItemRepository constructs a [FoodItemRepository] backed by db.
func NewFoodItemRepository(db *DB, logger *logger.Logger) FoodItemRepository {
	logger.Debug().Msg("creating food item repository")
	return &foodItemRepository{
		db:     db,
		logger: logger,
	}
}

// CreateFoodItem inserts item. A missing restaurant yields [ErrRestaurantNotFound].
func (f *foodItemRepository) CreateFoodItem(ctx context.Context, item models.FoodItem) (models.FoodItem, error) {
	log := logger.FromContext(ctx)

	now := f.db.clock()
	item.FoodID = f.db.ids.Generate()
	item.CreatedAt, item.UpdatedAt = now, now

	query, args, err := f.db.builder.
		Insert(foodItemsTable).
		Columns(foodItemColumns...).
		Values(item.FoodID, item.RestaurantID, item.Name, item.Price, item.InStock, item.CreatedAt, item.UpdatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*foodItemRepository.CreateFoodItem").Msg("error building query")
		return models.FoodItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = f.db.ExecContext(ctx, query, args...); err != nil {
		if f.db.isForeignKeyViolation(err) {
			return models.FoodItem{}, ErrRestaurantNotFound
		}
		log.Err(err).Str("func", "*foodItemRepository.CreateFoodItem").Msg("error inserting food item")
		return models.FoodItem{}, f.db.wrapError(ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "*foodItemRepository.CreateFoodItem").Str("food_id", item.FoodID).Msg("food item created")
	return item, nil
}

// ListFoodItemsByRestaurant returns the menu of a restaurant, oldest first.
// An unknown restaurant yields an empty slice.
func (f *foodItemRepository) ListFoodItemsByRestaurant(ctx context.Context, restaurantID string) ([]models.FoodItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := f.db.builder.
		Select(foodItemColumns...).
		From(foodItemsTable).
		Where(sq.Eq{"restaurant_id": restaurantID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*foodItemRepository.ListFoodItemsByRestaurant").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := f.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*foodItemRepository.ListFoodItemsByRestaurant").Msg("error querying food items")
		return nil, f.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.FoodItem, 0)
	for rows.Next() {
		item, scanErr := scanFoodItem(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*foodItemRepository.ListFoodItemsByRestaurant").Msg("error scanning food item")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// FindFoodItemByID returns the food item or [ErrFoodItemNotFound].
func (f *foodItemRepository) FindFoodItemByID(ctx context.Context, foodID string) (models.FoodItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := f.db.builder.
		Select(foodItemColumns...).
		From(foodItemsTable).
		Where(sq.Eq{"id": foodID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*foodItemRepository.FindFoodItemByID").Msg("error building query")
		return models.FoodItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanFoodItem(f.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.FoodItem{}, ErrFoodItemNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*foodItemRepository.FindFoodItemByID").Msg("error scanning food item")
		return models.FoodItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// UpdateFoodItem writes the non-nil fields of update. The restaurant of a
// food item is never changed.
func (f *foodItemRepository) UpdateFoodItem(ctx context.Context, foodID string, update models.FoodItemUpdate) (models.FoodItem, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return f.FindFoodItemByID(ctx, foodID)
	}

	builder := f.db.builder.
		Update(foodItemsTable).
		Set("updated_at", f.db.clock()).
		Where(sq.Eq{"id": foodID})
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Price != nil {
		builder = builder.Set("price", *update.Price)
	}
	if update.InStock != nil {
		builder = builder.Set("in_stock", *update.InStock)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*foodItemRepository.UpdateFoodItem").Msg("error building query")
		return models.FoodItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := f.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*foodItemRepository.UpdateFoodItem").Str("food_id", foodID).Msg("error updating food item")
		return models.FoodItem{}, f.db.wrapError(ErrExecutingStatement, err)
	}

	if err = f.db.expectAffected(result, ErrFoodItemNotFound); err != nil {
		return models.FoodItem{}, err
	}

	return f.FindFoodItemByID(ctx, foodID)
}

// DeleteFoodItem removes the food item. Cart lines referencing it are
// removed by the cascading foreign key.
func (f *foodItemRepository) DeleteFoodItem(ctx context.Context, foodID string) error {
	log := logger.FromContext(ctx)

	query, args, err := f.db.builder.
		Delete(foodItemsTable).
		Where(sq.Eq{"id": foodID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*foodItemRepository.DeleteFoodItem").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := f.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*foodItemRepository.DeleteFoodItem").Str("food_id", foodID).Msg("error deleting food item")
		return f.db.wrapError(ErrExecutingStatement, err)
	}

	return f.db.expectAffected(result, ErrFoodItemNotFound)
}

func scanFoodItem(row rowScanner) (models.FoodItem, error) {
	var item models.FoodItem
	err := row.Scan(
		&item.FoodID,
		&item.RestaurantID,
		&item.Name,
		&item.Price,
		&item.InStock,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	return item, err
}
