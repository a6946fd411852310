package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"userservice/internal/models"
	"userservice/internal/repository"
	"userservice/internal/usecase"
)

type addressRequest struct {
	Type           string   `json:"type" binding:"required"`
	Street         string   `json:"street" binding:"required"`
	StreetNumber   string   `json:"streetNumber"`
	BuildingNumber string   `json:"buildingNumber"`
	FloorNumber    string   `json:"floorNumber"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	ContactName    string   `json:"contactName"`
	ContactPhone   string   `json:"contactPhone"`
	IsDefault      bool     `json:"isDefault"`
}

// callerID returns the authenticated user id injected by the auth
// middleware, or "" when the route is unauthenticated.
func callerID(c *gin.Context) string {
	if value, ok := c.Get("userId"); ok {
		if id, ok := value.(string); ok {
			return id
		}
	}
	return ""
}

// AddAddress handles POST /users/:userId/addresses.
func AddAddress(uc *usecase.AddAddress) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.Param("userId"))
		if userID == "" {
			respondBadRequest(c, "ADDRESS", "user id is required")
			return
		}

		var req addressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Println("[ADDRESS] [ERROR] invalid address body:", err)
			respondBadRequest(c, "ADDRESS", "address type and street are required")
			return
		}
		if !models.ValidAddressType(req.Type) {
			respondBadRequest(c, "ADDRESS", "address type must be home, work or other")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		address, err := uc.Execute(ctx, userID, usecase.AddAddressInput{
			Type:           req.Type,
			Street:         strings.TrimSpace(req.Street),
			StreetNumber:   strings.TrimSpace(req.StreetNumber),
			BuildingNumber: strings.TrimSpace(req.BuildingNumber),
			FloorNumber:    strings.TrimSpace(req.FloorNumber),
			Latitude:       req.Latitude,
			Longitude:      req.Longitude,
			ContactName:    strings.TrimSpace(req.ContactName),
			ContactPhone:   strings.TrimSpace(req.ContactPhone),
			IsDefault:      req.IsDefault,
		})
		if err != nil {
			respondError(c, "ADDRESS", err)
			return
		}

		log.Println("[ADDRESS] [INFO] address created:", address.AddressID)
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "address added successfully",
			"address": address,
		})
	}
}

// GetUserAddresses handles GET /users/:userId/addresses. Default addresses
// sort first, then most recently created.
func GetUserAddresses(addresses repository.AddressRepository, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.Param("userId"))
		if userID == "" {
			respondBadRequest(c, "ADDRESS", "user id is required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		user, err := users.FindByID(ctx, userID)
		if err != nil {
			respondError(c, "ADDRESS", err)
			return
		}
		if user == nil {
			respondKind(c, "ADDRESS", usecase.KindNotFound, "user not found")
			return
		}

		list, err := addresses.FindByUserID(ctx, userID)
		if err != nil {
			respondError(c, "ADDRESS", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "addresses": list})
	}
}

// GetAddress handles GET /addresses/:addressId.
func GetAddress(addresses repository.AddressRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		addressID := strings.TrimSpace(c.Param("addressId"))
		if addressID == "" {
			respondBadRequest(c, "ADDRESS", "address id is required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		address, err := addresses.FindByID(ctx, addressID)
		if err != nil {
			respondError(c, "ADDRESS", err)
			return
		}
		if address == nil {
			respondKind(c, "ADDRESS", usecase.KindNotFound, "address not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "address": address})
	}
}

// UpdateAddress handles PUT /addresses/:addressId. The caller must own the
// address.
func UpdateAddress(addresses repository.AddressRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		addressID := strings.TrimSpace(c.Param("addressId"))
		if addressID == "" {
			respondBadRequest(c, "ADDRESS", "address id is required")
			return
		}

		var req models.AddressUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Println("[ADDRESS] [ERROR] invalid update body:", err)
			respondBadRequest(c, "ADDRESS", "invalid body")
			return
		}
		if req.Type != nil && !models.ValidAddressType(*req.Type) {
			respondBadRequest(c, "ADDRESS", "address type must be home, work or other")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		existing, err := addresses.FindByID(ctx, addressID)
		if err != nil {
			respondError(c, "ADDRESS", err)
			return
		}
		if existing == nil {
			respondKind(c, "ADDRESS", usecase.KindNotFound, "address not found")
			return
		}
		if caller := callerID(c); caller != "" && existing.UserID != caller {
			respondKind(c, "ADDRESS", usecase.KindPermissionDenied, "you do not have permission to update this address")
			return
		}

		address, err := addresses.Update(ctx, addressID, req)
		if err != nil {
			respondError(c, "ADDRESS", err)
			return
		}
		if address == nil {
			respondKind(c, "ADDRESS", usecase.KindNotFound, "address not found")
			return
		}

		log.Println("[ADDRESS] [INFO] address updated:", addressID)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "address updated successfully",
			"address": address,
		})
	}
}

// DeleteAddress handles DELETE /addresses/:addressId. The caller must own
// the address.
func DeleteAddress(addresses repository.AddressRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		addressID := strings.TrimSpace(c.Param("addressId"))
		if addressID == "" {
			respondBadRequest(c, "ADDRESS", "address id is required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		existing, err := addresses.FindByID(ctx, addressID)
		if err != nil {
			respondError(c, "ADDRESS", err)
			return
		}
		if existing == nil {
			respondKind(c, "ADDRESS", usecase.KindNotFound, "address not found")
			return
		}
		if caller := callerID(c); caller != "" && existing.UserID != caller {
			respondKind(c, "ADDRESS", usecase.KindPermissionDenied, "you do not have permission to delete this address")
			return
		}

		deleted, err := addresses.Delete(ctx, addressID)
		if err != nil {
			respondError(c, "ADDRESS", err)
			return
		}
		if !deleted {
			respondKind(c, "ADDRESS", usecase.KindNotFound, "address not found")
			return
		}

		log.Println("[ADDRESS] [INFO] address deleted:", addressID)
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "address deleted successfully",
			"addressId": addressID,
		})
	}
}

// SetDefaultAddress handles PUT /users/:userId/addresses/:addressId/default.
func SetDefaultAddress(addresses repository.AddressRepository, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.Param("userId"))
		addressID := strings.TrimSpace(c.Param("addressId"))
		if userID == "" || addressID == "" {
			respondBadRequest(c, "ADDRESS", "user id and address id are required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		user, err := users.FindByID(ctx, userID)
		if err != nil {
			respondError(c, "ADDRESS", err)
			return
		}
		if user == nil {
			respondKind(c, "ADDRESS", usecase.KindNotFound, "user not found")
			return
		}

		existing, err := addresses.FindByID(ctx, addressID)
		if err != nil {
			respondError(c, "ADDRESS", err)
			return
		}
		if existing == nil {
			respondKind(c, "ADDRESS", usecase.KindNotFound, "address not found")
			return
		}
		if existing.UserID != userID {
			respondKind(c, "ADDRESS", usecase.KindPermissionDenied, "this address does not belong to the specified user")
			return
		}

		address, err := addresses.SetDefault(ctx, userID, addressID)
		if err != nil {
			respondError(c, "ADDRESS", err)
			return
		}
		if address == nil {
			respondKind(c, "ADDRESS", usecase.KindNotFound, "address not found")
			return
		}

		log.Println("[ADDRESS] [INFO] default address set:", addressID)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "address set as default successfully",
			"address": address,
		})
	}
}
