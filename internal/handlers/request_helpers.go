package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"userservice/internal/usecase"
)

func statusForKind(kind usecase.Kind) int {
	switch kind {
	case usecase.KindNotFound:
		return http.StatusNotFound
	case usecase.KindDuplicateEmail, usecase.KindInvalidPhone, usecase.KindInvalidEmail:
		return http.StatusBadRequest
	case usecase.KindPermissionDenied:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondError maps a use-case error to a response: business failures keep
// their kind as a stable code, anything else becomes a generic 500.
func respondError(c *gin.Context, route string, err error) {
	if f := usecase.AsFailure(err); f != nil {
		log.Printf("[%s] [WARN] %s: %s", route, f.Kind, f.Message)
		c.JSON(statusForKind(f.Kind), gin.H{
			"success": false,
			"error":   f.Message,
			"code":    string(f.Kind),
		})
		return
	}

	log.Printf("[%s] [ERROR] %v", route, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   "internal server error",
		"code":    string(usecase.KindPersistence),
	})
}

func respondKind(c *gin.Context, route string, kind usecase.Kind, message string) {
	respondError(c, route, &usecase.Failure{Kind: kind, Message: message})
}

func respondBadRequest(c *gin.Context, route string, message string) {
	log.Printf("[%s] [WARN] %s", route, message)
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   message,
		"code":    "VALIDATION_ERROR",
	})
}
