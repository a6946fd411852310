package usecase

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"userservice/internal/models"
	"userservice/internal/repository/mocks"
)

func TestGetUserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)

	users.EXPECT().
		FindByID(gomock.Any(), "missing").
		Return(nil, nil)

	uc := NewGetUser(users)
	_, err := uc.Execute(context.Background(), "missing")
	if !IsKind(err, KindNotFound) {
		t.Fatalf("expected NOT_FOUND failure, got %v", err)
	}
}

func TestGetUserFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)

	users.EXPECT().
		FindByID(gomock.Any(), "u-1").
		Return(&models.User{UserID: "u-1", Email: "one@example.com"}, nil)

	uc := NewGetUser(users)
	user, err := uc.Execute(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if user.Email != "one@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}
