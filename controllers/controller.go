package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"skillshare-api/models"
	"skillshare-api/services"
)

// currentUser resolves the authenticated principal set by the auth
// middleware to a full user record.
func currentUser(c *gin.Context, db *gorm.DB) (*models.User, error) {
	userID := c.GetString("user_id")
	if userID == "" {
		return nil, services.ErrPrincipalNotFound
	}

	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrPrincipalNotFound
		}
		return nil, err
	}
	return &user, nil
}

// sendServiceError maps engine error kinds to HTTP status codes.
func sendServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Reason})
	case errors.Is(err, services.ErrSelfReference):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrPrincipalNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrAlreadyFollowing), errors.Is(err, services.ErrNotFollowing):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
