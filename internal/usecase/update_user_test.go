package usecase

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"userservice/internal/models"
	"userservice/internal/repository/mocks"
)

func strptr(s string) *string { return &s }

func TestUpdateUserInvalidPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)

	users.EXPECT().
		FindByID(gomock.Any(), "u-1").
		Return(&models.User{UserID: "u-1"}, nil)

	uc := NewUpdateUser(users)
	_, err := uc.Execute(context.Background(), "u-1", models.UserUpdate{Phone: strptr("12345")})
	if !IsKind(err, KindInvalidPhone) {
		t.Fatalf("expected INVALID_PHONE_FORMAT failure, got %v", err)
	}
}

func TestUpdateUserValidPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)

	data := models.UserUpdate{Phone: strptr("9876543210")}
	users.EXPECT().
		FindByID(gomock.Any(), "u-1").
		Return(&models.User{UserID: "u-1"}, nil)
	users.EXPECT().
		Update(gomock.Any(), "u-1", data).
		Return(&models.User{UserID: "u-1", Phone: "9876543210"}, nil)

	uc := NewUpdateUser(users)
	user, err := uc.Execute(context.Background(), "u-1", data)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if user.Phone != "9876543210" {
		t.Fatalf("expected phone to be updated, got %q", user.Phone)
	}
}

func TestUpdateUserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)

	users.EXPECT().
		FindByID(gomock.Any(), "missing").
		Return(nil, nil)

	uc := NewUpdateUser(users)
	_, err := uc.Execute(context.Background(), "missing", models.UserUpdate{FullName: strptr("Anyone")})
	if !IsKind(err, KindNotFound) {
		t.Fatalf("expected NOT_FOUND failure, got %v", err)
	}
}
