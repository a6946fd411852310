package usecase

import (
	"context"
	"fmt"

	"userservice/internal/models"
	"userservice/internal/repository"
)

// GetUser looks up a user by id.
type GetUser struct {
	users repository.UserRepository
}

func NewGetUser(users repository.UserRepository) *GetUser {
	return &GetUser{users: users}
}

func (uc *GetUser) Execute(ctx context.Context, userID string) (*models.User, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fail(KindNotFound, "user not found")
	}
	return user, nil
}
