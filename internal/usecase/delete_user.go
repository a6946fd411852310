package usecase

import (
	"context"
	"fmt"

	"userservice/internal/repository"
)

// DeleteUser removes a user account. Addresses owned by the user are not
// cascade-deleted; the addresses collection keeps its own records.
type DeleteUser struct {
	users repository.UserRepository
}

func NewDeleteUser(users repository.UserRepository) *DeleteUser {
	return &DeleteUser{users: users}
}

func (uc *DeleteUser) Execute(ctx context.Context, userID string) error {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return fail(KindNotFound, "user not found")
	}

	deleted, err := uc.users.Delete(ctx, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if !deleted {
		// Another request removed the user between the check and the delete.
		return fail(KindNotFound, "user not found")
	}
	return nil
}
