package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"skillshare-api/models"
	"skillshare-api/services"
)

type LearningController struct {
	db      *gorm.DB
	streaks *services.StreakService
}

func NewLearningController(db *gorm.DB, streaks *services.StreakService) *LearningController {
	return &LearningController{db: db, streaks: streaks}
}

type templateField struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

type learningTemplate struct {
	Title    string          `json:"title"`
	Category string          `json:"category"`
	Fields   []templateField `json:"fields"`
}

var difficultyOptions = []string{models.DifficultyBeginner, models.DifficultyIntermediate, models.DifficultyAdvanced}

func updateTemplate(title, category, resourceLabel, descriptionLabel string, descriptionRequired bool) learningTemplate {
	return learningTemplate{
		Title:    title,
		Category: category,
		Fields: []templateField{
			{Name: "resourceName", Label: resourceLabel, Type: "text", Required: true},
			{Name: "description", Label: descriptionLabel, Type: "textarea", Required: descriptionRequired},
			{Name: "skillsLearned", Label: "Skills Learned", Type: "tags", Required: true},
			{Name: "hoursSpent", Label: "Hours Spent", Type: "number", Required: true},
			{Name: "difficulty", Label: "Difficulty Level", Type: "select", Required: true, Options: difficultyOptions},
		},
	}
}

// GetTemplates lists the learning update form templates.
func (lc *LearningController) GetTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"templates": []learningTemplate{
			updateTemplate("Completed a Tutorial", models.CategoryTutorial, "Tutorial Name", "What did you learn?", false),
			updateTemplate("Completed a Course", models.CategoryCourse, "Course Name", "What did you learn?", false),
			updateTemplate("Completed a Project", models.CategoryProject, "Project Name", "Describe your project", true),
		},
	})
}

// AddUpdate logs a learning activity, which merges new skills into the
// caller's profile and advances the streak.
func (lc *LearningController) AddUpdate(c *gin.Context) {
	actor, err := currentUser(c, lc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	var update models.LearningUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, user, err := lc.streaks.RecordUpdate(actor, &update)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, gin.H{"learningUpdate": saved, "user": user})
}

// GetUserUpdates lists a user's learning updates, most recently completed
// first.
func (lc *LearningController) GetUserUpdates(c *gin.Context) {
	var updates []models.LearningUpdate
	if err := lc.db.Where("user_id = ?", c.Param("userId")).
		Order("completed_at DESC").
		Find(&updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch learning updates"})
		return
	}

	c.JSON(http.StatusOK, updates)
}

// UpdateUpdate edits an owned learning update. New skills appearing in the
// edit are merged into the caller's skill set; the streak is not replayed.
func (lc *LearningController) UpdateUpdate(c *gin.Context) {
	actor, err := currentUser(c, lc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	var existing models.LearningUpdate
	if err := lc.db.First(&existing, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Learning update not found"})
		return
	}

	if existing.UserID != actor.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to update this learning update"})
		return
	}

	var req models.LearningUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing.Title = req.Title
	existing.Description = req.Description
	existing.Category = req.Category
	existing.ResourceName = req.ResourceName
	existing.Difficulty = req.Difficulty
	existing.HoursSpent = req.HoursSpent
	if !req.CompletedAt.IsZero() {
		existing.CompletedAt = req.CompletedAt
	}

	skillsChanged := false
	if req.SkillsLearned != nil {
		for _, skill := range req.SkillsLearned {
			if !actor.Skills.Contains(skill) {
				actor.Skills = actor.Skills.Add(skill)
				skillsChanged = true
			}
		}
		existing.SkillsLearned = req.SkillsLearned
	}

	if skillsChanged {
		if err := lc.db.Model(actor).Update("skills", actor.Skills).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update skills"})
			return
		}
	}

	if err := lc.db.Save(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update learning update"})
		return
	}

	actor.Password = ""
	c.JSON(http.StatusOK, gin.H{"learningUpdate": existing, "user": actor})
}

// DeleteUpdate removes an owned learning update.
func (lc *LearningController) DeleteUpdate(c *gin.Context) {
	actor, err := currentUser(c, lc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	var update models.LearningUpdate
	if err := lc.db.First(&update, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Learning update not found"})
		return
	}

	if update.UserID != actor.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to delete this learning update"})
		return
	}

	if err := lc.db.Delete(&update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete learning update"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Learning update deleted successfully"})
}

// GetStreak returns streak counters and the trailing-6-month heatmap for a
// user.
func (lc *LearningController) GetStreak(c *gin.Context) {
	info, err := lc.streaks.Streak(c.Param("userId"))
	if err != nil {
		sendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}
