package usecase

import (
	"context"
	"crypto/rand"
	"fmt"

	"userservice/internal/models"
	"userservice/internal/repository"
	"userservice/internal/validation"
)

const referralCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CreateUser registers a new user account. The userId comes pre-assigned
// from the auth service.
type CreateUser struct {
	users repository.UserRepository
}

func NewCreateUser(users repository.UserRepository) *CreateUser {
	return &CreateUser{users: users}
}

type CreateUserInput struct {
	UserID   string
	FullName string
	Phone    string
	Email    string
}

func (uc *CreateUser) Execute(ctx context.Context, input CreateUserInput) (*models.User, error) {
	if !validation.ValidEmail(input.Email) {
		return nil, fail(KindInvalidEmail, "invalid email format")
	}
	if input.Phone != "" && !validation.ValidPhone(input.Phone) {
		return nil, fail(KindInvalidPhone, "invalid phone number format")
	}

	existing, err := uc.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, fail(KindDuplicateEmail, "email already exists")
	}

	referralID, err := generateReferralID()
	if err != nil {
		return nil, fmt.Errorf("generate referral id: %w", err)
	}

	user := &models.User{
		UserID:       input.UserID,
		FullName:     input.FullName,
		Phone:        input.Phone,
		Email:        input.Email,
		ReferralID:   referralID,
		Addresses:    []string{},
		OnlineStatus: false,
		IsVerified:   false,
		Status:       true,
	}

	created, err := uc.users.Create(ctx, user)
	if err != nil {
		// The unique index is the authoritative guard; the FindByEmail
		// pre-check above only produces a friendlier error.
		if repository.IsDuplicate(err) {
			return nil, fail(KindDuplicateEmail, "email already exists")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// generateReferralID builds a REF-XXXXX code from 5 random uppercase
// alphanumeric characters. Collisions are not checked; the code is not a
// load-bearing identifier.
func generateReferralID() (string, error) {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = referralCharset[int(buf[i])%len(referralCharset)]
	}
	return "REF-" + string(buf), nil
}
