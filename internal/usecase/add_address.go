package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"userservice/internal/models"
	"userservice/internal/repository"
)

// AddAddress attaches a new address to an existing user. The owning user
// must exist; the address repository takes care of the default invariant
// when the new address is flagged default.
type AddAddress struct {
	addresses repository.AddressRepository
	users     repository.UserRepository
}

func NewAddAddress(addresses repository.AddressRepository, users repository.UserRepository) *AddAddress {
	return &AddAddress{addresses: addresses, users: users}
}

type AddAddressInput struct {
	Type           string
	Street         string
	StreetNumber   string
	BuildingNumber string
	FloorNumber    string
	Latitude       *float64
	Longitude      *float64
	ContactName    string
	ContactPhone   string
	IsDefault      bool
}

func (uc *AddAddress) Execute(ctx context.Context, userID string, input AddAddressInput) (*models.Address, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fail(KindNotFound, "user not found")
	}

	address := &models.Address{
		AddressID:      uuid.NewString(),
		UserID:         userID,
		Type:           input.Type,
		Street:         input.Street,
		StreetNumber:   input.StreetNumber,
		BuildingNumber: input.BuildingNumber,
		FloorNumber:    input.FloorNumber,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		ContactName:    input.ContactName,
		ContactPhone:   input.ContactPhone,
		IsDefault:      input.IsDefault,
	}

	created, err := uc.addresses.Create(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("create address: %w", err)
	}
	return created, nil
}
