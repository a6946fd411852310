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
	"userservice/internal/validation"
)

type createUserRequest struct {
	UserID   string `json:"userId" binding:"required"`
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"required"`
}

type updateStatusRequest struct {
	Status *bool `json:"status" binding:"required"`
}

type profileImageRequest struct {
	ProfileImage string `json:"profileImage" binding:"required,url"`
}

// CreateUser handles POST /users.
func CreateUser(uc *usecase.CreateUser) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Println("[USER] [ERROR] invalid create body:", err)
			respondBadRequest(c, "USER", "missing required fields")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		user, err := uc.Execute(ctx, usecase.CreateUserInput{
			UserID:   strings.TrimSpace(req.UserID),
			FullName: strings.TrimSpace(req.FullName),
			Phone:    strings.TrimSpace(req.Phone),
			Email:    strings.TrimSpace(req.Email),
		})
		if err != nil {
			respondError(c, "USER", err)
			return
		}

		log.Println("[USER] [INFO] user created:", user.UserID)
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "user created successfully",
			"user":    user,
		})
	}
}

// GetUser handles GET /users/:userId.
func GetUser(uc *usecase.GetUser) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.Param("userId"))
		if userID == "" {
			respondBadRequest(c, "USER", "user id is required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		user, err := uc.Execute(ctx, userID)
		if err != nil {
			respondError(c, "USER", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}

// GetUsers handles GET /users.
func GetUsers(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		all, err := users.FindAll(ctx)
		if err != nil {
			respondError(c, "USER", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "users": all})
	}
}

// GetUserByEmail handles GET /users/by-email/:email.
func GetUserByEmail(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.TrimSpace(c.Param("email"))
		if !validation.ValidEmail(email) {
			respondKind(c, "USER", usecase.KindInvalidEmail, "invalid email format")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		user, err := users.FindByEmail(ctx, email)
		if err != nil {
			respondError(c, "USER", err)
			return
		}
		if user == nil {
			respondKind(c, "USER", usecase.KindNotFound, "user not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}

// UpdateUser handles PUT /users/:userId.
func UpdateUser(uc *usecase.UpdateUser) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.Param("userId"))
		if userID == "" {
			respondBadRequest(c, "USER", "user id is required")
			return
		}

		var req models.UserUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Println("[USER] [ERROR] invalid update body:", err)
			respondBadRequest(c, "USER", "invalid body")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		user, err := uc.Execute(ctx, userID, req)
		if err != nil {
			respondError(c, "USER", err)
			return
		}

		log.Println("[USER] [INFO] user updated:", userID)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "user updated successfully",
			"user":    user,
		})
	}
}

// UpdateUserStatus handles PUT /users/:userId/status. A false status blocks
// the account.
func UpdateUserStatus(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.Param("userId"))
		if userID == "" {
			respondBadRequest(c, "USER", "user id is required")
			return
		}

		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Status == nil {
			respondBadRequest(c, "USER", "status is required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		user, err := users.UpdateStatus(ctx, userID, *req.Status)
		if err != nil {
			respondError(c, "USER", err)
			return
		}
		if user == nil {
			respondKind(c, "USER", usecase.KindNotFound, "user not found")
			return
		}

		log.Println("[USER] [INFO] status updated:", userID)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "status updated successfully",
			"userId":  user.UserID,
			"status":  user.Status,
		})
	}
}

// UpdateProfileImage handles PUT /users/:userId/profile-image. The image is
// uploaded elsewhere; this endpoint stores the resulting URL.
func UpdateProfileImage(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.Param("userId"))
		if userID == "" {
			respondBadRequest(c, "USER", "user id is required")
			return
		}

		var req profileImageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "USER", "profile image url is required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		user, err := users.UpdateProfileImage(ctx, userID, strings.TrimSpace(req.ProfileImage))
		if err != nil {
			respondError(c, "USER", err)
			return
		}
		if user == nil {
			respondKind(c, "USER", usecase.KindNotFound, "user not found")
			return
		}

		log.Println("[USER] [INFO] profile image updated:", userID)
		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"message":      "profile image updated successfully",
			"profileImage": user.ProfileImage,
		})
	}
}

// DeleteUser handles DELETE /users/:userId.
func DeleteUser(uc *usecase.DeleteUser) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.Param("userId"))
		if userID == "" {
			respondBadRequest(c, "USER", "user id is required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := uc.Execute(ctx, userID); err != nil {
			respondError(c, "USER", err)
			return
		}

		log.Println("[USER] [INFO] user deleted:", userID)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "user deleted successfully",
			"userId":  userID,
		})
	}
}
