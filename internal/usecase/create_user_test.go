package usecase

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"userservice/internal/models"
	"userservice/internal/repository"
	"userservice/internal/repository/mocks"
)

func TestCreateUserDuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)

	users.EXPECT().
		FindByEmail(gomock.Any(), "taken@example.com").
		Return(&models.User{UserID: "u-1", Email: "taken@example.com"}, nil)
	// Create must never be reached when the email pre-check resolves.

	uc := NewCreateUser(users)
	_, err := uc.Execute(context.Background(), CreateUserInput{
		UserID:   "u-2",
		FullName: "Second User",
		Email:    "taken@example.com",
	})
	if !IsKind(err, KindDuplicateEmail) {
		t.Fatalf("expected DUPLICATE_EMAIL failure, got %v", err)
	}
}

func TestCreateUserInvalidEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)

	uc := NewCreateUser(users)
	_, err := uc.Execute(context.Background(), CreateUserInput{
		UserID:   "u-1",
		FullName: "Some User",
		Email:    "not-an-email",
	})
	if !IsKind(err, KindInvalidEmail) {
		t.Fatalf("expected INVALID_EMAIL_FORMAT failure, got %v", err)
	}
}

func TestCreateUserInvalidPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)

	uc := NewCreateUser(users)
	_, err := uc.Execute(context.Background(), CreateUserInput{
		UserID:   "u-1",
		FullName: "Some User",
		Phone:    "12345",
		Email:    "someone@example.com",
	})
	if !IsKind(err, KindInvalidPhone) {
		t.Fatalf("expected INVALID_PHONE_FORMAT failure, got %v", err)
	}
}

func TestCreateUserDefaultsAndReferral(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)

	users.EXPECT().
		FindByEmail(gomock.Any(), "new@example.com").
		Return(nil, nil)
	users.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) (*models.User, error) {
			return user, nil
		})

	uc := NewCreateUser(users)
	user, err := uc.Execute(context.Background(), CreateUserInput{
		UserID:   "u-1",
		FullName: "New User",
		Phone:    "9876543210",
		Email:    "new@example.com",
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if user.OnlineStatus || user.IsVerified {
		t.Fatalf("expected onlineStatus=false isVerified=false, got %+v", user)
	}
	if !user.Status {
		t.Fatal("expected new user to be active")
	}
	if len(user.Addresses) != 0 {
		t.Fatalf("expected empty address list, got %v", user.Addresses)
	}
	if !strings.HasPrefix(user.ReferralID, "REF-") || len(user.ReferralID) != 9 {
		t.Fatalf("expected referral id REF-XXXXX, got %q", user.ReferralID)
	}
	for _, r := range user.ReferralID[4:] {
		if !strings.ContainsRune(referralCharset, r) {
			t.Fatalf("unexpected referral character %q in %q", r, user.ReferralID)
		}
	}
}

func TestCreateUserIndexCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)

	// The pre-check misses a concurrent insert; the unique index still wins.
	users.EXPECT().
		FindByEmail(gomock.Any(), "race@example.com").
		Return(nil, nil)
	users.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, repository.ErrDuplicateKey)

	uc := NewCreateUser(users)
	_, err := uc.Execute(context.Background(), CreateUserInput{
		UserID:   "u-1",
		FullName: "Race User",
		Email:    "race@example.com",
	})
	if !IsKind(err, KindDuplicateEmail) {
		t.Fatalf("expected DUPLICATE_EMAIL failure, got %v", err)
	}
}
