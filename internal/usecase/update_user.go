package usecase

import (
	"context"
	"fmt"

	"userservice/internal/models"
	"userservice/internal/repository"
	"userservice/internal/validation"
)

// UpdateUser applies a partial profile update after validating the phone
// format when one is supplied.
type UpdateUser struct {
	users repository.UserRepository
}

func NewUpdateUser(users repository.UserRepository) *UpdateUser {
	return &UpdateUser{users: users}
}

func (uc *UpdateUser) Execute(ctx context.Context, userID string, data models.UserUpdate) (*models.User, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fail(KindNotFound, "user not found")
	}

	if data.Phone != nil && *data.Phone != "" && !validation.ValidPhone(*data.Phone) {
		return nil, fail(KindInvalidPhone, "invalid phone number format")
	}

	updated, err := uc.users.Update(ctx, userID, data)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if updated == nil {
		return nil, fail(KindNotFound, "user not found")
	}
	return updated, nil
}
