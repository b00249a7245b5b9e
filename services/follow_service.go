package services

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"skillshare-api/models"
)

// FollowService maintains the mirrored follower/following sets on user
// records: B ∈ A.following exactly when A ∈ B.followers. The two sides are
// written as sequential, independently durable saves; set semantics keep a
// retried call from ever corrupting the mirror.
type FollowService struct {
	db            *gorm.DB
	notifications *NotificationService
}

func NewFollowService(db *gorm.DB, notifications *NotificationService) *FollowService {
	return &FollowService{db: db, notifications: notifications}
}

// Follow adds targetID to actor's following set and actor to the target's
// followers set, then emits a FOLLOW notification to the target. A fully
// applied relation yields ErrAlreadyFollowing; a half-applied one (crash
// between the two writes on a previous attempt) is completed instead of
// rejected. Returns the updated actor.
func (fs *FollowService) Follow(actor *models.User, targetID string) (*models.User, error) {
	if actor.ID == targetID {
		return nil, ErrSelfReference
	}

	var target models.User
	if err := fs.db.First(&target, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load user %s: %w", targetID, err)
	}

	if actor.Following.Contains(target.ID) && target.Followers.Contains(actor.ID) {
		return nil, ErrAlreadyFollowing
	}

	actor.Following = actor.Following.Add(target.ID)
	if err := fs.db.Model(actor).Update("following", actor.Following).Error; err != nil {
		return nil, fmt.Errorf("update following set: %w", err)
	}

	target.Followers = target.Followers.Add(actor.ID)
	if err := fs.db.Model(&target).Update("followers", target.Followers).Error; err != nil {
		return nil, fmt.Errorf("update followers set: %w", err)
	}

	// Best-effort: the follow stands even if the notification write fails.
	if err := fs.notifications.Emit(actor, target.ID, models.NotificationTypeFollow, nil); err != nil {
		log.Printf("failed to create follow notification for %s: %v", target.ID, err)
	}

	return actor, nil
}

// Unfollow removes both mirror entries. No notification is emitted.
func (fs *FollowService) Unfollow(actor *models.User, targetID string) (*models.User, error) {
	if actor.ID == targetID {
		return nil, ErrSelfReference
	}

	var target models.User
	if err := fs.db.First(&target, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load user %s: %w", targetID, err)
	}

	if !actor.Following.Contains(target.ID) {
		return nil, ErrNotFollowing
	}

	actor.Following = actor.Following.Remove(target.ID)
	if err := fs.db.Model(actor).Update("following", actor.Following).Error; err != nil {
		return nil, fmt.Errorf("update following set: %w", err)
	}

	target.Followers = target.Followers.Remove(actor.ID)
	if err := fs.db.Model(&target).Update("followers", target.Followers).Error; err != nil {
		return nil, fmt.Errorf("update followers set: %w", err)
	}

	return actor, nil
}

// Followers resolves the follower set of userID into user summaries as seen
// by viewer.
func (fs *FollowService) Followers(viewer *models.User, userID string) ([]models.UserSummary, error) {
	return fs.resolveSet(viewer, userID, func(u *models.User) models.StringSlice { return u.Followers })
}

// Following resolves the following set of userID into user summaries as seen
// by viewer.
func (fs *FollowService) Following(viewer *models.User, userID string) ([]models.UserSummary, error) {
	return fs.resolveSet(viewer, userID, func(u *models.User) models.StringSlice { return u.Following })
}

func (fs *FollowService) resolveSet(viewer *models.User, userID string, pick func(*models.User) models.StringSlice) ([]models.UserSummary, error) {
	var user models.User
	if err := fs.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load user %s: %w", userID, err)
	}

	ids := pick(&user)
	summaries := make([]models.UserSummary, 0, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}

	var users []models.User
	if err := fs.db.Where("id IN ?", []string(ids)).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	for i := range users {
		summaries = append(summaries, users[i].ToSummary(viewer))
	}
	return summaries, nil
}
