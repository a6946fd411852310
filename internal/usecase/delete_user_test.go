package usecase

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"userservice/internal/models"
	"userservice/internal/repository/mocks"
)

func TestDeleteUserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)

	users.EXPECT().
		FindByID(gomock.Any(), "missing").
		Return(nil, nil)
	// Delete must never be invoked for an absent user.

	uc := NewDeleteUser(users)
	err := uc.Execute(context.Background(), "missing")
	if !IsKind(err, KindNotFound) {
		t.Fatalf("expected NOT_FOUND failure, got %v", err)
	}
}

func TestDeleteUserSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)

	users.EXPECT().
		FindByID(gomock.Any(), "u-1").
		Return(&models.User{UserID: "u-1"}, nil)
	users.EXPECT().
		Delete(gomock.Any(), "u-1").
		Return(true, nil)

	uc := NewDeleteUser(users)
	if err := uc.Execute(context.Background(), "u-1"); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
}

func TestDeleteUserRacedDeletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)

	users.EXPECT().
		FindByID(gomock.Any(), "u-1").
		Return(&models.User{UserID: "u-1"}, nil)
	users.EXPECT().
		Delete(gomock.Any(), "u-1").
		Return(false, nil)

	uc := NewDeleteUser(users)
	err := uc.Execute(context.Background(), "u-1")
	if !IsKind(err, KindNotFound) {
		t.Fatalf("expected NOT_FOUND failure, got %v", err)
	}
}
