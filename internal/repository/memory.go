package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"userservice/internal/models"
)

// MemoryUserRepository is a mutex-guarded map-backed UserRepository used in
// tests and local development without a MongoDB instance.
type MemoryUserRepository struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: map[string]models.User{}}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.UserID]; exists {
		return nil, ErrDuplicateKey
	}
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, ErrDuplicateKey
		}
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Addresses == nil {
		user.Addresses = []string{}
	}
	r.users[user.UserID] = *user
	return user, nil
}

func (r *MemoryUserRepository) FindByID(_ context.Context, userID string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user, ok := r.users[userID]; ok {
		return &user, nil
	}
	return nil, nil
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) Update(_ context.Context, userID string, data models.UserUpdate) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	if data.FullName != nil {
		user.FullName = *data.FullName
	}
	if data.Phone != nil {
		user.Phone = *data.Phone
	}
	if data.ProfileImage != nil {
		user.ProfileImage = *data.ProfileImage
	}
	if data.OnlineStatus != nil {
		user.OnlineStatus = *data.OnlineStatus
	}
	if data.IsVerified != nil {
		user.IsVerified = *data.IsVerified
	}
	user.UpdatedAt = time.Now()
	r.users[userID] = user
	return &user, nil
}

func (r *MemoryUserRepository) UpdateStatus(_ context.Context, userID string, status bool) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	user.Status = status
	user.UpdatedAt = time.Now()
	r.users[userID] = user
	return &user, nil
}

func (r *MemoryUserRepository) UpdateProfileImage(_ context.Context, userID string, profileImage string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	user.ProfileImage = profileImage
	user.UpdatedAt = time.Now()
	r.users[userID] = user
	return &user, nil
}

func (r *MemoryUserRepository) Delete(_ context.Context, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[userID]; !ok {
		return false, nil
	}
	delete(r.users, userID)
	return true, nil
}

func (r *MemoryUserRepository) FindAll(_ context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].UserID < users[j].UserID })
	return users, nil
}

// MemoryAddressRepository is a mutex-guarded map-backed AddressRepository.
// The mutex is held across every unset-all-then-set-one sequence, giving the
// same atomicity the mongo implementation gets from transactions.
type MemoryAddressRepository struct {
	mu        sync.Mutex
	addresses map[string]models.Address
	seq       int
}

func NewMemoryAddressRepository() *MemoryAddressRepository {
	return &MemoryAddressRepository{addresses: map[string]models.Address{}}
}

func (r *MemoryAddressRepository) Create(_ context.Context, address *models.Address) (*models.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if address.AddressID == "" {
		address.AddressID = uuid.NewString()
	}
	if _, exists := r.addresses[address.AddressID]; exists {
		return nil, ErrDuplicateKey
	}

	if address.IsDefault {
		r.clearDefaultsLocked(address.UserID, "")
	}

	// Creation order tiebreaker for FindByUserID when timestamps collide.
	r.seq++
	now := time.Now().Add(time.Duration(r.seq) * time.Nanosecond)
	address.CreatedAt = now
	address.UpdatedAt = now
	r.addresses[address.AddressID] = *address
	return address, nil
}

func (r *MemoryAddressRepository) FindByID(_ context.Context, addressID string) (*models.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if address, ok := r.addresses[addressID]; ok {
		return &address, nil
	}
	return nil, nil
}

func (r *MemoryAddressRepository) Update(_ context.Context, addressID string, data models.AddressUpdate) (*models.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	address, ok := r.addresses[addressID]
	if !ok {
		return nil, nil
	}

	if data.IsDefault != nil && *data.IsDefault {
		r.clearDefaultsLocked(address.UserID, addressID)
	}
	if data.Type != nil {
		address.Type = *data.Type
	}
	if data.Street != nil {
		address.Street = *data.Street
	}
	if data.StreetNumber != nil {
		address.StreetNumber = *data.StreetNumber
	}
	if data.BuildingNumber != nil {
		address.BuildingNumber = *data.BuildingNumber
	}
	if data.FloorNumber != nil {
		address.FloorNumber = *data.FloorNumber
	}
	if data.Latitude != nil {
		address.Latitude = data.Latitude
	}
	if data.Longitude != nil {
		address.Longitude = data.Longitude
	}
	if data.ContactName != nil {
		address.ContactName = *data.ContactName
	}
	if data.ContactPhone != nil {
		address.ContactPhone = *data.ContactPhone
	}
	if data.IsDefault != nil {
		address.IsDefault = *data.IsDefault
	}
	address.UpdatedAt = time.Now()
	r.addresses[addressID] = address
	return &address, nil
}

func (r *MemoryAddressRepository) Delete(_ context.Context, addressID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.addresses[addressID]; !ok {
		return false, nil
	}
	delete(r.addresses, addressID)
	return true, nil
}

func (r *MemoryAddressRepository) FindByUserID(_ context.Context, userID string) ([]models.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	addresses := []models.Address{}
	for _, address := range r.addresses {
		if address.UserID == userID {
			addresses = append(addresses, address)
		}
	}
	sort.Slice(addresses, func(i, j int) bool {
		if addresses[i].IsDefault != addresses[j].IsDefault {
			return addresses[i].IsDefault
		}
		return addresses[i].CreatedAt.After(addresses[j].CreatedAt)
	})
	return addresses, nil
}

func (r *MemoryAddressRepository) SetDefault(_ context.Context, userID, addressID string) (*models.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	address, ok := r.addresses[addressID]
	if !ok || address.UserID != userID {
		return nil, nil
	}

	r.clearDefaultsLocked(userID, addressID)
	address.IsDefault = true
	address.UpdatedAt = time.Now()
	r.addresses[addressID] = address
	return &address, nil
}

func (r *MemoryAddressRepository) clearDefaultsLocked(userID, keepID string) {
	for id, address := range r.addresses {
		if address.UserID == userID && address.IsDefault && id != keepID {
			address.IsDefault = false
			r.addresses[id] = address
		}
	}
}
