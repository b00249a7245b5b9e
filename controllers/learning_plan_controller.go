package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillshare-api/models"
)

type LearningPlanController struct {
	db *gorm.DB
}

func NewLearningPlanController(db *gorm.DB) *LearningPlanController {
	return &LearningPlanController{db: db}
}

// CreatePlan creates a learning plan owned by the caller.
func (pc *LearningPlanController) CreatePlan(c *gin.Context) {
	actor, err := currentUser(c, pc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	var plan models.LearningPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(plan.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	plan.ID = uuid.New().String()
	plan.UserID = actor.ID
	plan.SourcePlanID = nil
	plan.CreatedAt = time.Now()
	plan.UpdatedAt = plan.CreatedAt
	for i := range plan.Weeks {
		if plan.Weeks[i].Status == "" {
			plan.Weeks[i].Status = models.WeekStatusNotStarted
		}
	}

	if err := pc.db.Create(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create learning plan"})
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GetUserPlans lists a user's learning plans, newest first.
func (pc *LearningPlanController) GetUserPlans(c *gin.Context) {
	var plans []models.LearningPlan
	if err := pc.db.Where("user_id = ?", c.Param("userId")).
		Order("created_at DESC").
		Find(&plans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch learning plans"})
		return
	}

	c.JSON(http.StatusOK, plans)
}

// GetPlan fetches a single learning plan by id.
func (pc *LearningPlanController) GetPlan(c *gin.Context) {
	var plan models.LearningPlan
	if err := pc.db.First(&plan, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Learning plan not found"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// UpdatePlan edits an owned learning plan.
func (pc *LearningPlanController) UpdatePlan(c *gin.Context) {
	actor, err := currentUser(c, pc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	var plan models.LearningPlan
	if err := pc.db.First(&plan, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Learning plan not found"})
		return
	}
	if plan.UserID != actor.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to update this learning plan"})
		return
	}

	var req models.LearningPlan
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(req.Title) != "" {
		plan.Title = req.Title
	}
	plan.Description = req.Description
	if req.Resources != nil {
		plan.Resources = req.Resources
	}
	if req.Weeks != nil {
		plan.Weeks = req.Weeks
	}
	plan.UpdatedAt = time.Now()

	if err := pc.db.Save(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update learning plan"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeletePlan removes an owned learning plan.
func (pc *LearningPlanController) DeletePlan(c *gin.Context) {
	actor, err := currentUser(c, pc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	var plan models.LearningPlan
	if err := pc.db.First(&plan, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Learning plan not found"})
		return
	}
	if plan.UserID != actor.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to delete this learning plan"})
		return
	}

	if err := pc.db.Delete(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete learning plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Learning plan deleted successfully"})
}

// CopyPlan clones another user's plan into the caller's account. Week
// progress is reset and the copy keeps a reference to its source.
func (pc *LearningPlanController) CopyPlan(c *gin.Context) {
	actor, err := currentUser(c, pc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	var source models.LearningPlan
	if err := pc.db.First(&source, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Learning plan not found"})
		return
	}

	now := time.Now()
	copied := models.LearningPlan{
		ID:           uuid.New().String(),
		UserID:       actor.ID,
		Title:        source.Title,
		Description:  source.Description,
		Resources:    source.Resources,
		SourcePlanID: &source.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, week := range source.Weeks {
		copied.Weeks = append(copied.Weeks, models.Week{
			Title:       week.Title,
			Description: week.Description,
			Status:      models.WeekStatusNotStarted,
		})
	}

	if err := pc.db.Create(&copied).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to copy learning plan"})
		return
	}

	c.JSON(http.StatusCreated, copied)
}
