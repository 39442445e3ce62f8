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

// restaurantRepository is the SQL implementation of [RestaurantRepository].
type restaurantRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRestaurantRepository constructs a [RestaurantRepository] backed by db.
func NewRestaurantRepository(db *DB, logger *logger.Logger) RestaurantRepository {
	logger.Debug().Msg("creating restaurant repository")
	return &restaurantRepository{
		db:     db,
		logger: logger,
	}
}

// CreateRestaurant inserts restaurant and returns it with its owner embedded.
//
// Error handling:
//   - owner already has a restaurant → [ErrRestaurantAlreadyExists].
//   - owner does not exist → [ErrUserNotFound].
func (r *restaurantRepository) CreateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	log := logger.FromContext(ctx)

	now := r.db.clock()
	restaurant.RestaurantID = r.db.ids.Generate()
	restaurant.CreatedAt, restaurant.UpdatedAt = now, now

	query, args, err := r.db.builder.
		Insert(restaurantsTable).
		Columns("id", "name", "address", "owner_id", "created_at", "updated_at").
		Values(restaurant.RestaurantID, restaurant.Name, restaurant.Address, restaurant.OwnerID, restaurant.CreatedAt, restaurant.UpdatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*restaurantRepository.CreateRestaurant").Msg("error building query")
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		switch {
		case r.db.isUniqueViolation(err):
			log.Warn().Str("func", "*restaurantRepository.CreateRestaurant").Str("owner_id", restaurant.OwnerID).Msg("owner already has a restaurant")
			return models.Restaurant{}, ErrRestaurantAlreadyExists
		case r.db.isForeignKeyViolation(err):
			return models.Restaurant{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*restaurantRepository.CreateRestaurant").Msg("error inserting restaurant")
		return models.Restaurant{}, r.db.wrapError(ErrExecutingStatement, err)
	}

	return r.FindRestaurantByID(ctx, restaurant.RestaurantID)
}

// ListRestaurants returns every restaurant, oldest first.
func (r *restaurantRepository) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectRestaurants(r.db.builder).
		OrderBy("r.created_at", "r.id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*restaurantRepository.ListRestaurants").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*restaurantRepository.ListRestaurants").Msg("error querying restaurants")
		return nil, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	restaurants := make([]models.Restaurant, 0)
	for rows.Next() {
		restaurant, scanErr := scanRestaurant(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*restaurantRepository.ListRestaurants").Msg("error scanning restaurant")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		restaurants = append(restaurants, restaurant)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*restaurantRepository.ListRestaurants").Msg("error iterating restaurants")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return restaurants, nil
}

// FindRestaurantByID returns the restaurant or [ErrRestaurantNotFound].
func (r *restaurantRepository) FindRestaurantByID(ctx context.Context, restaurantID string) (models.Restaurant, error) {
	return r.findRestaurant(ctx, "*restaurantRepository.FindRestaurantByID", sq.Eq{"r.id": restaurantID})
}

// FindRestaurantByOwner returns the restaurant owned by ownerID or [ErrRestaurantNotFound].
func (r *restaurantRepository) FindRestaurantByOwner(ctx context.Context, ownerID string) (models.Restaurant, error) {
	return r.findRestaurant(ctx, "*restaurantRepository.FindRestaurantByOwner", sq.Eq{"r.owner_id": ownerID})
}

func (r *restaurantRepository) findRestaurant(ctx context.Context, funcName string, where sq.Eq) (models.Restaurant, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectRestaurants(r.db.builder).Where(where).ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	restaurant, err := scanRestaurant(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Restaurant{}, ErrRestaurantNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error scanning restaurant")
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return restaurant, nil
}

// UpdateRestaurant writes the non-nil fields of update and bumps updated_at.
func (r *restaurantRepository) UpdateRestaurant(ctx context.Context, restaurantID string, update models.RestaurantUpdate) (models.Restaurant, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return r.FindRestaurantByID(ctx, restaurantID)
	}

	builder := r.db.builder.
		Update(restaurantsTable).
		Set("updated_at", r.db.clock()).
		Where(sq.Eq{"id": restaurantID})
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Address != nil {
		builder = builder.Set("address", *update.Address)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*restaurantRepository.UpdateRestaurant").Msg("error building query")
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*restaurantRepository.UpdateRestaurant").Str("restaurant_id", restaurantID).Msg("error updating restaurant")
		return models.Restaurant{}, r.db.wrapError(ErrExecutingStatement, err)
	}

	if err = r.db.expectAffected(result, ErrRestaurantNotFound); err != nil {
		return models.Restaurant{}, err
	}

	return r.FindRestaurantByID(ctx, restaurantID)
}

func scanRestaurant(row rowScanner) (models.Restaurant, error) {
	var (
		restaurant models.Restaurant
		owner      models.Owner
	)

	err := row.Scan(
		&restaurant.RestaurantID,
		&restaurant.Name,
		&restaurant.Address,
		&restaurant.OwnerID,
		&restaurant.CreatedAt,
		&restaurant.UpdatedAt,
		&owner.FirstName,
		&owner.LastName,
		&owner.Email,
	)
	if err != nil {
		return models.Restaurant{}, err
	}

	restaurant.Owner = &owner
	return restaurant, nil
}
