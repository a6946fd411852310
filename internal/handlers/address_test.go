package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"userservice/internal/models"
	"userservice/internal/repository"
)

func seedAddress(t *testing.T, r repository.AddressRepository, userID string) *models.Address {
	t.Helper()
	address, err := r.Create(context.Background(), &models.Address{
		UserID: userID,
		Type:   models.AddressTypeHome,
		Street: "Main Street",
	})
	if err != nil {
		t.Fatalf("seed address: %v", err)
	}
	return address
}

func TestUpdateAddressOwnershipCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	addresses := repository.NewMemoryAddressRepository()
	address := seedAddress(t, addresses, "owner")

	body, _ := json.Marshal(gin.H{"street": "Hijacked"})
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest("PUT", "/addresses/"+address.AddressID, bytes.NewReader(body))
	c.Params = gin.Params{{Key: "addressId", Value: address.AddressID}}
	c.Set("userId", "intruder")

	UpdateAddress(addresses)(c)

	if recorder.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", recorder.Code, recorder.Body.String())
	}
	var resp struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Code != "PERMISSION_DENIED" {
		t.Fatalf("expected PERMISSION_DENIED code, got %q", resp.Code)
	}

	found, _ := addresses.FindByID(context.Background(), address.AddressID)
	if found.Street != "Main Street" {
		t.Fatalf("address must not change on denied update, got %q", found.Street)
	}
}

func TestUpdateAddressNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	addresses := repository.NewMemoryAddressRepository()

	body, _ := json.Marshal(gin.H{"street": "Anywhere"})
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest("PUT", "/addresses/nope", bytes.NewReader(body))
	c.Params = gin.Params{{Key: "addressId", Value: "nope"}}
	c.Set("userId", "anyone")

	UpdateAddress(addresses)(c)

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestSetDefaultAddressWrongOwner(t *testing.T) {
	gin.SetMode(gin.TestMode)
	users := repository.NewMemoryUserRepository()
	addresses := repository.NewMemoryAddressRepository()

	_, _ = users.Create(context.Background(), &models.User{UserID: "u-1", Email: "one@example.com", Status: true})
	foreign := seedAddress(t, addresses, "u-2")

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest("PUT", "/users/u-1/addresses/"+foreign.AddressID+"/default", nil)
	c.Params = gin.Params{
		{Key: "userId", Value: "u-1"},
		{Key: "addressId", Value: foreign.AddressID},
	}

	SetDefaultAddress(addresses, users)(c)

	if recorder.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", recorder.Code, recorder.Body.String())
	}
}
