package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"skillshare-api/models"
	"skillshare-api/services"
	"skillshare-api/utils"
)

type UserController struct {
	db        *gorm.DB
	jwtSecret string
	follows   *services.FollowService
}

func NewUserController(db *gorm.DB, jwtSecret string, follows *services.FollowService) *UserController {
	return &UserController{db: db, jwtSecret: jwtSecret, follows: follows}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	user, err := currentUser(c, uc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, user)
}

type UpdateProfileRequest struct {
	FirstName       *string  `json:"firstName"`
	LastName        *string  `json:"lastName"`
	Bio             *string  `json:"bio"`
	Skills          []string `json:"skills"`
	ProfilePicture  *string  `json:"profilePicture"`
	Email           *string  `json:"email"`
	CurrentPassword string   `json:"currentPassword"`
	NewPassword     string   `json:"newPassword"`
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	user, err := currentUser(c, uc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	originalEmail := user.Email

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Skills != nil {
		user.Skills = models.StringSlice(req.Skills)
	}
	if req.ProfilePicture != nil {
		user.ProfilePicture = req.ProfilePicture
	}

	if req.Email != nil && *req.Email != "" && *req.Email != originalEmail {
		if !utils.IsValidEmail(*req.Email) {
			utils.SendValidationError(c, "Invalid email address")
			return
		}
		var count int64
		uc.db.Model(&models.User{}).Where("email = ?", *req.Email).Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
			return
		}
		user.Email = *req.Email
	}

	if req.NewPassword != "" {
		if req.CurrentPassword == "" {
			utils.SendValidationError(c, "Current password is required to update password")
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect"})
			return
		}
		if !utils.IsValidPassword(req.NewPassword) {
			utils.SendValidationError(c, "Password must be at least 6 characters and mix letter cases, numbers or symbols")
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user.Password = string(hashed)
	}

	if err := uc.db.Save(user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	// The token carries the email; reissue it when the email changes.
	if user.Email != originalEmail {
		claims := jwt.MapClaims{
			"user_id": user.ID,
			"email":   user.Email,
			"exp":     time.Now().Add(time.Hour * 24 * 7).Unix(),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(uc.jwtSecret))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		user.Password = ""
		c.JSON(http.StatusOK, gin.H{"user": user, "token": token, "emailChanged": true})
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, user)
}

// SearchUsers matches the query against names, usernames and skills,
// excluding the caller from the results.
func (uc *UserController) SearchUsers(c *gin.Context) {
	viewer, err := currentUser(c, uc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		c.JSON(http.StatusOK, []models.UserSummary{})
		return
	}

	pattern := "%" + query + "%"

	// skills is a JSON array column; LIKE matches against its serialized text,
	// relying on the dialect coercing JSON to string. Matches are substring
	// hits anywhere in the array, not per-element equality.
	var users []models.User
	if err := uc.db.Where(
		"first_name LIKE ? OR last_name LIKE ? OR username LIKE ? OR skills LIKE ?",
		pattern, pattern, pattern, pattern,
	).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search users"})
		return
	}

	results := make([]models.UserSummary, 0, len(users))
	for i := range users {
		if users[i].ID == viewer.ID {
			continue
		}
		results = append(results, users[i].ToSummary(viewer))
	}

	c.JSON(http.StatusOK, results)
}

func (uc *UserController) GetUser(c *gin.Context) {
	viewer, err := currentUser(c, uc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	var user models.User
	if err := uc.db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user.ToSummary(viewer))
}

func (uc *UserController) FollowUser(c *gin.Context) {
	actor, err := currentUser(c, uc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	updated, err := uc.follows.Follow(actor, c.Param("id"))
	if err != nil {
		sendServiceError(c, err)
		return
	}

	updated.Password = ""
	c.JSON(http.StatusOK, gin.H{"success": true, "user": updated})
}

func (uc *UserController) UnfollowUser(c *gin.Context) {
	actor, err := currentUser(c, uc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	updated, err := uc.follows.Unfollow(actor, c.Param("id"))
	if err != nil {
		sendServiceError(c, err)
		return
	}

	updated.Password = ""
	c.JSON(http.StatusOK, gin.H{"success": true, "user": updated})
}

func (uc *UserController) GetFollowers(c *gin.Context) {
	viewer, err := currentUser(c, uc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	followers, err := uc.follows.Followers(viewer, c.Param("id"))
	if err != nil {
		sendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, followers)
}

func (uc *UserController) GetFollowing(c *gin.Context) {
	viewer, err := currentUser(c, uc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	following, err := uc.follows.Following(viewer, c.Param("id"))
	if err != nil {
		sendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, following)
}
