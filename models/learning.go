package models

import (
	"time"
)

// Learning update categories and difficulties
const (
	CategoryTutorial = "TUTORIAL"
	CategoryCourse   = "COURSE"
	CategoryProject  = "PROJECT"

	DifficultyBeginner     = "BEGINNER"
	DifficultyIntermediate = "INTERMEDIATE"
	DifficultyAdvanced     = "ADVANCED"
)

// LearningUpdate is a single logged learning activity. Creating one is the
// sole trigger for streak recomputation and for merging new skills into the
// owner's skill set.
type LearningUpdate struct {
	ID            string      `json:"id" gorm:"primaryKey;size:191"`
	UserID        string      `json:"userId" gorm:"not null;index;size:191"`
	Title         string      `json:"title" gorm:"size:255"`
	Description   string      `json:"description" gorm:"type:text"`
	Category      string      `json:"category" gorm:"size:20"`
	Difficulty    string      `json:"difficulty" gorm:"size:20"`
	SkillsLearned StringSlice `json:"skillsLearned" gorm:"type:json"`
	HoursSpent    float64     `json:"hoursSpent"`
	CompletedAt   time.Time   `json:"completedAt"`
	CreatedAt     time.Time   `json:"createdAt"`
	ResourceName  string      `json:"resourceName" gorm:"size:255"`
}

// LearningPlan is a user-authored study plan. SourcePlanID is set when the
// plan was copied from another user's plan.
type LearningPlan struct {
	ID           string       `json:"id" gorm:"primaryKey;size:191"`
	UserID       string       `json:"userId" gorm:"not null;index;size:191"`
	Title        string       `json:"title" gorm:"not null;size:255"`
	Description  string       `json:"description" gorm:"type:text"`
	Resources    ResourceList `json:"resources" gorm:"type:json"`
	Weeks        WeekList     `json:"weeks" gorm:"type:json"`
	SourcePlanID *string      `json:"sourcePlanId" gorm:"size:191"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

// Week statuses
const (
	WeekStatusNotStarted = "Not Started"
	WeekStatusInProgress = "In Progress"
	WeekStatusCompleted  = "Completed"
)

type Week struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}
