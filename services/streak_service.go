package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillshare-api/models"
)

// StreakService credits learning activity to calendar dates and derives the
// user's streak counters. A date is credited at most once no matter how many
// updates are logged on it.
type StreakService struct {
	db *gorm.DB

	// now supplies the server's wall clock; injectable for tests.
	now func() time.Time
}

func NewStreakService(db *gorm.DB) *StreakService {
	return &StreakService{db: db, now: time.Now}
}

// RecordUpdate persists a learning update for actor, merges any newly
// learned skills into the actor's skill set and applies the streak
// transition for the update's completion date. Returns the saved update and
// the updated user.
func (ss *StreakService) RecordUpdate(actor *models.User, update *models.LearningUpdate) (*models.LearningUpdate, *models.User, error) {
	if update.HoursSpent < 0 {
		return nil, nil, &ValidationError{Reason: "hoursSpent cannot be negative"}
	}

	update.ID = uuid.New().String()
	update.UserID = actor.ID
	update.CreatedAt = ss.now()
	if update.CompletedAt.IsZero() {
		update.CompletedAt = ss.now()
	}

	for _, skill := range update.SkillsLearned {
		actor.Skills = actor.Skills.Add(skill)
	}

	ss.creditDate(actor, update.CompletedAt.Format(models.DateLayout))

	if err := ss.db.Model(actor).Updates(map[string]interface{}{
		"skills":             actor.Skills,
		"current_streak":     actor.CurrentStreak,
		"longest_streak":     actor.LongestStreak,
		"last_learning_date": actor.LastLearningDate,
		"learning_dates":     actor.LearningDates,
	}).Error; err != nil {
		return nil, nil, fmt.Errorf("update streak state: %w", err)
	}

	if err := ss.db.Create(update).Error; err != nil {
		return nil, nil, fmt.Errorf("create learning update: %w", err)
	}

	return update, actor, nil
}

// creditDate applies the streak transition rule for one ISO calendar date.
// The yesterday-or-today check runs against the server's current date, not
// the activity's own date; backdated entries therefore extend a live streak
// and a date earlier than the last credited one leaves the counters alone.
func (ss *StreakService) creditDate(user *models.User, date string) {
	if user.LearningDates.Contains(date) {
		return
	}
	user.LearningDates = user.LearningDates.Add(date)

	today := ss.now().Format(models.DateLayout)
	yesterday := ss.now().AddDate(0, 0, -1).Format(models.DateLayout)

	switch {
	case user.LastLearningDate == nil:
		user.CurrentStreak = 1
		user.LastLearningDate = &date
	case *user.LastLearningDate == yesterday || *user.LastLearningDate == today:
		user.CurrentStreak++
		user.LastLearningDate = &date
	case date > *user.LastLearningDate:
		// Gap since the last credited day: streak starts over.
		user.CurrentStreak = 1
		user.LastLearningDate = &date
	}

	if user.CurrentStreak > user.LongestStreak {
		user.LongestStreak = user.CurrentStreak
	}
}

// StreakInfo is the streak view returned for a user, heatmap included.
type StreakInfo struct {
	CurrentStreak    int            `json:"currentStreak"`
	LongestStreak    int            `json:"longestStreak"`
	LastLearningDate *string        `json:"lastLearningDate"`
	HeatmapData      map[string]int `json:"heatmapData"`
}

// Streak returns the streak counters and calendar heatmap for userID.
func (ss *StreakService) Streak(userID string) (*StreakInfo, error) {
	var user models.User
	if err := ss.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load user %s: %w", userID, err)
	}

	return &StreakInfo{
		CurrentStreak:    user.CurrentStreak,
		LongestStreak:    user.LongestStreak,
		LastLearningDate: user.LastLearningDate,
		HeatmapData:      ss.Heatmap(&user),
	}, nil
}

// Heatmap maps each credited date in the trailing six months to its count.
// Dates are deduplicated at credit time, so the count is always 1.
func (ss *StreakService) Heatmap(user *models.User) map[string]int {
	cutoff := ss.now().AddDate(0, -6, 0).Format(models.DateLayout)

	heatmap := make(map[string]int)
	for _, date := range user.LearningDates {
		if date >= cutoff {
			heatmap[date]++
		}
	}
	return heatmap
}
