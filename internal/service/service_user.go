package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/store"
	"github.com/MKhiriev/go-food-order/internal/utils"
	"github.com/MKhiriev/go-food-order/internal/validators"
	"github.com/MKhiriev/go-food-order/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

// GetUser returns the profile of userID or store.ErrUserNotFound.
func (u *userService) GetUser(ctx context.Context, userID string) (models.User, error) {
	if !utils.IsValidID(userID) {
		return models.User{}, store.ErrUserNotFound
	}

	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// UpdateUser applies a partial profile update. A new email that belongs to
// another user yields store.ErrEmailAlreadyExists and leaves the profile
// unchanged.
func (u *userService) UpdateUser(ctx context.Context, request models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, request); err != nil {
		return models.User{}, err
	}
	if !utils.IsValidID(request.UserID) {
		return models.User{}, store.ErrUserNotFound
	}

	user, err := u.userRepository.UpdateUser(ctx, request.UserID, models.UserUpdate{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
	})
	if err != nil {
		log.Err(err).Str("user_id", request.UserID).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	return user, nil
}
