package services

import (
	"fmt"

	"gorm.io/gorm"

	"skillshare-api/models"
)

// FeedService composes chronological post listings from the follow graph.
// Purely reads; never mutates.
type FeedService struct {
	db *gorm.DB
}

func NewFeedService(db *gorm.DB) *FeedService {
	return &FeedService{db: db}
}

// Feed returns posts authored by the users actor follows plus actor's own,
// newest first. Ties on created_at break on id so repeated calls return the
// same order.
func (fs *FeedService) Feed(actor *models.User) ([]models.Post, error) {
	authorIDs := actor.Following.Add(actor.ID)

	var posts []models.Post
	if err := fs.db.Where("author_id IN ?", []string(authorIDs)).
		Order("created_at DESC, id DESC").
		Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("load feed: %w", err)
	}
	return posts, nil
}

// UserPosts returns every post by one author in feed order, independent of
// who is asking. Used for profile pages.
func (fs *FeedService) UserPosts(userID string) ([]models.Post, error) {
	var posts []models.Post
	if err := fs.db.Where("author_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("load posts for user %s: %w", userID, err)
	}
	return posts, nil
}
