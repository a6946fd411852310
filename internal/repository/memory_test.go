package repository

import (
	"context"
	"sync"
	"testing"

	"userservice/internal/models"
)

func boolptr(b bool) *bool        { return &b }
func floatptr(f float64) *float64 { return &f }

func countDefaults(t *testing.T, r AddressRepository, userID string) int {
	t.Helper()
	addresses, err := r.FindByUserID(context.Background(), userID)
	if err != nil {
		t.Fatalf("FindByUserID returned error: %v", err)
	}
	defaults := 0
	for _, address := range addresses {
		if address.IsDefault {
			defaults++
		}
	}
	return defaults
}

func TestAddressRoundTrip(t *testing.T) {
	r := NewMemoryAddressRepository()
	ctx := context.Background()

	created, err := r.Create(ctx, &models.Address{
		UserID:         "u-1",
		Type:           models.AddressTypeHome,
		Street:         "Main Street",
		StreetNumber:   "12",
		BuildingNumber: "B",
		FloorNumber:    "3",
		Latitude:       floatptr(12.9716),
		Longitude:      floatptr(77.5946),
		ContactName:    "Asha",
		ContactPhone:   "9876543210",
		IsDefault:      true,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.AddressID == "" {
		t.Fatal("expected a generated address id")
	}

	found, err := r.FindByID(ctx, created.AddressID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if found == nil {
		t.Fatal("expected to find the created address")
	}
	if found.Street != "Main Street" || found.StreetNumber != "12" ||
		found.BuildingNumber != "B" || found.FloorNumber != "3" ||
		found.ContactName != "Asha" || found.ContactPhone != "9876543210" {
		t.Fatalf("fields did not round-trip: %+v", found)
	}
	if found.Latitude == nil || *found.Latitude != 12.9716 ||
		found.Longitude == nil || *found.Longitude != 77.5946 {
		t.Fatalf("coordinates did not round-trip: %+v", found)
	}
	if !found.IsDefault {
		t.Fatal("expected isDefault to round-trip")
	}
}

func TestCreateDefaultClearsPreviousDefault(t *testing.T) {
	r := NewMemoryAddressRepository()
	ctx := context.Background()

	first, _ := r.Create(ctx, &models.Address{UserID: "u-1", Type: "home", Street: "One", IsDefault: true})
	second, _ := r.Create(ctx, &models.Address{UserID: "u-1", Type: "work", Street: "Two", IsDefault: true})

	if got := countDefaults(t, r, "u-1"); got != 1 {
		t.Fatalf("expected exactly 1 default, got %d", got)
	}
	found, _ := r.FindByID(ctx, first.AddressID)
	if found.IsDefault {
		t.Fatal("expected the first default to be cleared")
	}
	found, _ = r.FindByID(ctx, second.AddressID)
	if !found.IsDefault {
		t.Fatal("expected the second address to be default")
	}
}

func TestUpdateToDefaultClearsOtherDefault(t *testing.T) {
	r := NewMemoryAddressRepository()
	ctx := context.Background()

	a, _ := r.Create(ctx, &models.Address{UserID: "u-1", Type: "home", Street: "A", IsDefault: true})
	b, _ := r.Create(ctx, &models.Address{UserID: "u-1", Type: "work", Street: "B"})

	updated, err := r.Update(ctx, b.AddressID, models.AddressUpdate{IsDefault: boolptr(true)})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if !updated.IsDefault {
		t.Fatal("expected B to become default")
	}

	foundA, _ := r.FindByID(ctx, a.AddressID)
	if foundA.IsDefault {
		t.Fatal("expected A to lose the default flag")
	}
	if got := countDefaults(t, r, "u-1"); got != 1 {
		t.Fatalf("expected exactly 1 default, got %d", got)
	}
}

func TestSetDefaultIdempotent(t *testing.T) {
	r := NewMemoryAddressRepository()
	ctx := context.Background()

	a, _ := r.Create(ctx, &models.Address{UserID: "u-1", Type: "home", Street: "A"})
	_, _ = r.Create(ctx, &models.Address{UserID: "u-1", Type: "work", Street: "B", IsDefault: true})

	for i := 0; i < 2; i++ {
		updated, err := r.SetDefault(ctx, "u-1", a.AddressID)
		if err != nil {
			t.Fatalf("SetDefault returned error: %v", err)
		}
		if updated == nil || !updated.IsDefault {
			t.Fatalf("expected A to be default after call %d", i+1)
		}
	}
	if got := countDefaults(t, r, "u-1"); got != 1 {
		t.Fatalf("expected exactly 1 default, got %d", got)
	}
}

func TestSetDefaultWrongOwner(t *testing.T) {
	r := NewMemoryAddressRepository()
	ctx := context.Background()

	foreign, _ := r.Create(ctx, &models.Address{UserID: "u-2", Type: "home", Street: "Elsewhere", IsDefault: true})
	mine, _ := r.Create(ctx, &models.Address{UserID: "u-1", Type: "home", Street: "Here", IsDefault: true})

	updated, err := r.SetDefault(ctx, "u-1", foreign.AddressID)
	if err != nil {
		t.Fatalf("SetDefault returned error: %v", err)
	}
	if updated != nil {
		t.Fatal("expected not-found for an address owned by another user")
	}

	// A failed SetDefault must not disturb existing defaults.
	found, _ := r.FindByID(ctx, mine.AddressID)
	if !found.IsDefault {
		t.Fatal("expected the caller's default to survive a failed SetDefault")
	}
	found, _ = r.FindByID(ctx, foreign.AddressID)
	if !found.IsDefault {
		t.Fatal("expected the other user's default to be untouched")
	}
}

func TestSetDefaultConcurrent(t *testing.T) {
	r := NewMemoryAddressRepository()
	ctx := context.Background()

	a, _ := r.Create(ctx, &models.Address{UserID: "u-1", Type: "home", Street: "A"})
	b, _ := r.Create(ctx, &models.Address{UserID: "u-1", Type: "work", Street: "B"})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		target := a.AddressID
		if i%2 == 1 {
			target = b.AddressID
		}
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if _, err := r.SetDefault(ctx, "u-1", id); err != nil {
				t.Errorf("SetDefault returned error: %v", err)
			}
		}(target)
	}
	wg.Wait()

	if got := countDefaults(t, r, "u-1"); got != 1 {
		t.Fatalf("expected exactly 1 default after concurrent SetDefault calls, got %d", got)
	}
}

func TestFindByUserIDOrdering(t *testing.T) {
	r := NewMemoryAddressRepository()
	ctx := context.Background()

	oldest, _ := r.Create(ctx, &models.Address{UserID: "u-1", Type: "home", Street: "Oldest"})
	middle, _ := r.Create(ctx, &models.Address{UserID: "u-1", Type: "work", Street: "Middle"})
	newest, _ := r.Create(ctx, &models.Address{UserID: "u-1", Type: "other", Street: "Newest"})
	_, _ = r.Create(ctx, &models.Address{UserID: "u-2", Type: "home", Street: "Foreign"})

	if _, err := r.SetDefault(ctx, "u-1", middle.AddressID); err != nil {
		t.Fatalf("SetDefault returned error: %v", err)
	}

	addresses, err := r.FindByUserID(ctx, "u-1")
	if err != nil {
		t.Fatalf("FindByUserID returned error: %v", err)
	}
	if len(addresses) != 3 {
		t.Fatalf("expected 3 addresses, got %d", len(addresses))
	}
	want := []string{middle.AddressID, newest.AddressID, oldest.AddressID}
	for i, id := range want {
		if addresses[i].AddressID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, addresses[i].AddressID)
		}
	}
}

func TestDeleteAddressReportsExistence(t *testing.T) {
	r := NewMemoryAddressRepository()
	ctx := context.Background()

	a, _ := r.Create(ctx, &models.Address{UserID: "u-1", Type: "home", Street: "A"})

	deleted, err := r.Delete(ctx, a.AddressID)
	if err != nil || !deleted {
		t.Fatalf("expected successful delete, got deleted=%v err=%v", deleted, err)
	}
	deleted, err = r.Delete(ctx, a.AddressID)
	if err != nil || deleted {
		t.Fatalf("expected delete of absent record to report false, got deleted=%v err=%v", deleted, err)
	}
}

func TestUserRepositoryUniqueness(t *testing.T) {
	r := NewMemoryUserRepository()
	ctx := context.Background()

	if _, err := r.Create(ctx, &models.User{UserID: "u-1", Email: "one@example.com"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := r.Create(ctx, &models.User{UserID: "u-1", Email: "other@example.com"}); !IsDuplicate(err) {
		t.Fatalf("expected duplicate userId error, got %v", err)
	}
	if _, err := r.Create(ctx, &models.User{UserID: "u-2", Email: "one@example.com"}); !IsDuplicate(err) {
		t.Fatalf("expected duplicate email error, got %v", err)
	}
}

func TestUserRepositoryPartialUpdate(t *testing.T) {
	r := NewMemoryUserRepository()
	ctx := context.Background()

	_, err := r.Create(ctx, &models.User{
		UserID:   "u-1",
		FullName: "Before",
		Email:    "one@example.com",
		Phone:    "9876543210",
		Status:   true,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	name := "After"
	updated, err := r.Update(ctx, "u-1", models.UserUpdate{FullName: &name})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.FullName != "After" {
		t.Fatalf("expected updated name, got %q", updated.FullName)
	}
	if updated.Phone != "9876543210" || updated.Email != "one@example.com" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) && !updated.UpdatedAt.Equal(updated.CreatedAt) {
		t.Fatal("expected updatedAt to be stamped")
	}
}

func TestUserRepositoryStatusAndImage(t *testing.T) {
	r := NewMemoryUserRepository()
	ctx := context.Background()

	_, _ = r.Create(ctx, &models.User{UserID: "u-1", Email: "one@example.com", Status: true})

	user, err := r.UpdateStatus(ctx, "u-1", false)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if user.Status {
		t.Fatal("expected blocked account")
	}

	user, err = r.UpdateProfileImage(ctx, "u-1", "https://cdn.example.com/p.png")
	if err != nil {
		t.Fatalf("UpdateProfileImage returned error: %v", err)
	}
	if user.ProfileImage != "https://cdn.example.com/p.png" {
		t.Fatalf("expected stored image url, got %q", user.ProfileImage)
	}

	if user, _ := r.UpdateStatus(ctx, "missing", true); user != nil {
		t.Fatal("expected nil for absent user")
	}
}
