package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"skillshare-api/models"
)

func streakServiceAt(db *gorm.DB, now time.Time) *StreakService {
	ss := NewStreakService(db)
	ss.now = func() time.Time { return now }
	return ss
}

func learningUpdate(completedAt time.Time, skills ...string) *models.LearningUpdate {
	return &models.LearningUpdate{
		Title:         "Did a thing",
		Category:      models.CategoryTutorial,
		SkillsLearned: models.StringSlice(skills),
		HoursSpent:    1.5,
		CompletedAt:   completedAt,
	}
}

func TestFirstUpdateStartsStreak(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	ss := streakServiceAt(db, now)

	alice := createUser(t, db, "alice")

	saved, user, err := ss.RecordUpdate(alice, learningUpdate(now, "go"))
	assert.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, alice.ID, saved.UserID)

	assert.Equal(t, 1, user.CurrentStreak)
	assert.Equal(t, 1, user.LongestStreak)
	assert.Equal(t, "2026-03-10", *user.LastLearningDate)
	assert.Equal(t, models.StringSlice{"2026-03-10"}, user.LearningDates)
	assert.True(t, user.Skills.Contains("go"))

	stored := reloadUser(t, db, alice.ID)
	assert.Equal(t, 1, stored.CurrentStreak)
	assert.True(t, stored.Skills.Contains("go"))
}

func TestSecondUpdateSameDayDoesNotIncrement(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	ss := streakServiceAt(db, now)

	alice := createUser(t, db, "alice")

	_, _, err := ss.RecordUpdate(alice, learningUpdate(now))
	assert.NoError(t, err)
	_, user, err := ss.RecordUpdate(alice, learningUpdate(now.Add(2*time.Hour)))
	assert.NoError(t, err)

	assert.Equal(t, 1, user.CurrentStreak)
	assert.Len(t, user.LearningDates, 1)

	var count int64
	assert.NoError(t, db.Model(&models.LearningUpdate{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestConsecutiveDaysExtendStreak(t *testing.T) {
	db := newTestDB(t)
	day1 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	alice := createUser(t, db, "alice")

	_, _, err := streakServiceAt(db, day1).RecordUpdate(alice, learningUpdate(day1))
	assert.NoError(t, err)

	_, user, err := streakServiceAt(db, day2).RecordUpdate(alice, learningUpdate(day2))
	assert.NoError(t, err)

	assert.Equal(t, 2, user.CurrentStreak)
	assert.Equal(t, 2, user.LongestStreak)
	assert.Equal(t, "2026-03-11", *user.LastLearningDate)
}

func TestGapResetsCurrentButKeepsLongest(t *testing.T) {
	db := newTestDB(t)
	day1 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	day5 := day1.AddDate(0, 0, 4)

	alice := createUser(t, db, "alice")

	_, _, err := streakServiceAt(db, day1).RecordUpdate(alice, learningUpdate(day1))
	assert.NoError(t, err)
	_, _, err = streakServiceAt(db, day2).RecordUpdate(alice, learningUpdate(day2))
	assert.NoError(t, err)

	_, user, err := streakServiceAt(db, day5).RecordUpdate(alice, learningUpdate(day5))
	assert.NoError(t, err)

	assert.Equal(t, 1, user.CurrentStreak)
	assert.Equal(t, 2, user.LongestStreak)
	assert.Equal(t, "2026-03-14", *user.LastLearningDate)
}

func TestBackdatedEntryWithStaleStreakLeavesCounters(t *testing.T) {
	db := newTestDB(t)
	day1 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	now := day1.AddDate(0, 0, 9)

	alice := createUser(t, db, "alice")

	_, _, err := streakServiceAt(db, day1).RecordUpdate(alice, learningUpdate(day1))
	assert.NoError(t, err)

	// The last credited date is far in the past, so an even older entry
	// neither extends nor resets anything; the date is still recorded.
	backdated := day1.AddDate(0, 0, -3)
	_, user, err := streakServiceAt(db, now).RecordUpdate(alice, learningUpdate(backdated))
	assert.NoError(t, err)

	assert.Equal(t, 1, user.CurrentStreak)
	assert.Equal(t, "2026-03-01", *user.LastLearningDate)
	assert.True(t, user.LearningDates.Contains("2026-02-26"))
}

func TestBackdatedEntryExtendsLiveStreak(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	ss := streakServiceAt(db, now)

	alice := createUser(t, db, "alice")

	_, _, err := ss.RecordUpdate(alice, learningUpdate(now))
	assert.NoError(t, err)

	// Last credit is today, so a backfilled earlier day still counts toward
	// the running streak.
	_, user, err := ss.RecordUpdate(alice, learningUpdate(now.AddDate(0, 0, -5)))
	assert.NoError(t, err)

	assert.Equal(t, 2, user.CurrentStreak)
	assert.Equal(t, 2, user.LongestStreak)
}

func TestNegativeHoursRejected(t *testing.T) {
	db := newTestDB(t)
	ss := streakServiceAt(db, time.Now())

	alice := createUser(t, db, "alice")

	update := learningUpdate(time.Now())
	update.HoursSpent = -1

	_, _, err := ss.RecordUpdate(alice, update)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestStreakInfoForUnknownUser(t *testing.T) {
	db := newTestDB(t)
	ss := streakServiceAt(db, time.Now())

	_, err := ss.Streak("no-such-user")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHeatmapCoversTrailingSixMonths(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	ss := streakServiceAt(db, now)

	alice := createUser(t, db, "alice")
	alice.LearningDates = models.StringSlice{"2026-01-15", "2026-03-02", "2026-08-31"}
	assert.NoError(t, db.Model(alice).Update("learning_dates", alice.LearningDates).Error)

	info, err := ss.Streak(alice.ID)
	assert.NoError(t, err)

	assert.Len(t, info.HeatmapData, 2)
	assert.Equal(t, 1, info.HeatmapData["2026-03-02"])
	assert.Equal(t, 1, info.HeatmapData["2026-08-31"])
	assert.NotContains(t, info.HeatmapData, "2026-01-15")
}
