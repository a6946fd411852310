package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"userservice/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mocks/repository_mock.go -package=mocks

// ErrDuplicateKey is returned by implementations without driver-level
// duplicate errors (the in-memory store) when a unique field collides.
var ErrDuplicateKey = errors.New("duplicate key")

// IsDuplicate reports whether err was caused by a unique-index collision.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateKey) || mongo.IsDuplicateKeyError(err)
}

// UserRepository persists user accounts. Lookups for absent records return
// (nil, nil); only storage failures produce an error.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, userID string, data models.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, userID string) (bool, error)
	FindAll(ctx context.Context) ([]models.User, error)
	UpdateStatus(ctx context.Context, userID string, status bool) (*models.User, error)
	UpdateProfileImage(ctx context.Context, userID string, profileImage string) (*models.User, error)
}

// AddressRepository persists addresses and owns the single-default invariant:
// after any Create, Update or SetDefault, a user has at most one address with
// IsDefault set. Lookups for absent records return (nil, nil).
type AddressRepository interface {
	Create(ctx context.Context, address *models.Address) (*models.Address, error)
	FindByID(ctx context.Context, addressID string) (*models.Address, error)
	Update(ctx context.Context, addressID string, data models.AddressUpdate) (*models.Address, error)
	Delete(ctx context.Context, addressID string) (bool, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Address, error)
	SetDefault(ctx context.Context, userID, addressID string) (*models.Address, error)
}
