package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillshare-api/models"
)

// EngagementService mutates post engagement state: likes, comments and
// shares. Each operation loads the post, computes replacement sets/lists and
// writes them back; derived notifications are best-effort side effects.
type EngagementService struct {
	db            *gorm.DB
	notifications *NotificationService
}

func NewEngagementService(db *gorm.DB, notifications *NotificationService) *EngagementService {
	return &EngagementService{db: db, notifications: notifications}
}

// LikeResult reports the membership state after a like toggle.
type LikeResult struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}

func (es *EngagementService) loadPost(postID string) (*models.Post, error) {
	var post models.Post
	if err := es.db.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load post %s: %w", postID, err)
	}
	return &post, nil
}

// ToggleLike flips actor's membership in the post's likes set. Liking
// someone else's post emits a LIKE notification; unliking emits nothing.
func (es *EngagementService) ToggleLike(actor *models.User, postID string) (*LikeResult, error) {
	post, err := es.loadPost(postID)
	if err != nil {
		return nil, err
	}

	liked := false
	if post.Likes.Contains(actor.ID) {
		post.Likes = post.Likes.Remove(actor.ID)
	} else {
		post.Likes = post.Likes.Add(actor.ID)
		liked = true
	}

	if err := es.db.Model(post).Update("likes", post.Likes).Error; err != nil {
		return nil, fmt.Errorf("update likes: %w", err)
	}

	if liked && post.AuthorID != actor.ID {
		if err := es.notifications.Emit(actor, post.AuthorID, models.NotificationTypeLike, &post.ID); err != nil {
			log.Printf("failed to create like notification for %s: %v", post.AuthorID, err)
		}
	}

	return &LikeResult{Liked: liked, LikeCount: len(post.Likes)}, nil
}

// AddComment appends a comment to the end of the post's comment list and
// notifies the author unless the commenter is the author. Returns the
// updated post.
func (es *EngagementService) AddComment(actor *models.User, postID, content string) (*models.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, &ValidationError{Reason: "comment content cannot be empty"}
	}

	post, err := es.loadPost(postID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		ID:                 uuid.New().String(),
		UserID:             actor.ID,
		Username:           actor.Username,
		UserProfilePicture: actor.ProfilePicture,
		Content:            content,
		CreatedAt:          time.Now(),
	}

	post.Comments = append(post.Comments, comment)
	if err := es.db.Model(post).Update("comments", post.Comments).Error; err != nil {
		return nil, fmt.Errorf("update comments: %w", err)
	}

	if post.AuthorID != actor.ID {
		if err := es.notifications.Emit(actor, post.AuthorID, models.NotificationTypeComment, &post.ID); err != nil {
			log.Printf("failed to create comment notification for %s: %v", post.AuthorID, err)
		}
	}

	return post, nil
}

// DeleteComment removes one comment, preserving the order of the rest. Only
// the comment's author or the post's author may delete it.
func (es *EngagementService) DeleteComment(actor *models.User, postID, commentID string) (*models.Post, error) {
	post, err := es.loadPost(postID)
	if err != nil {
		return nil, err
	}

	index := -1
	for i, c := range post.Comments {
		if c.ID == commentID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, ErrNotFound
	}

	if post.Comments[index].UserID != actor.ID && post.AuthorID != actor.ID {
		return nil, ErrForbidden
	}

	remaining := make(models.CommentList, 0, len(post.Comments)-1)
	remaining = append(remaining, post.Comments[:index]...)
	remaining = append(remaining, post.Comments[index+1:]...)
	post.Comments = remaining

	if err := es.db.Model(post).Update("comments", post.Comments).Error; err != nil {
		return nil, fmt.Errorf("update comments: %w", err)
	}

	return post, nil
}

// SharePost creates a repost of the original under actor's name and records
// actor in the original's shares set. The two writes are independent: if the
// second fails the repost stays visible with the original's share counter
// lagging by one, which is accepted.
func (es *EngagementService) SharePost(actor *models.User, postID, shareMessage string) (*models.Post, error) {
	original, err := es.loadPost(postID)
	if err != nil {
		return nil, err
	}

	shared := models.Post{
		ID:                   uuid.New().String(),
		AuthorID:             actor.ID,
		AuthorUsername:       actor.Username,
		AuthorFirstName:      actor.FirstName,
		AuthorLastName:       actor.LastName,
		AuthorProfilePicture: actor.ProfilePicture,
		Content:              original.Content,
		MediaURL:             original.MediaURL,
		MediaType:            original.MediaType,
		Likes:                models.StringSlice{},
		Comments:             models.CommentList{},
		OriginalPostID:       &original.ID,
		ShareMessage:         shareMessage,
	}

	if err := es.db.Create(&shared).Error; err != nil {
		return nil, fmt.Errorf("create shared post: %w", err)
	}

	original.Shares = original.Shares.Add(actor.ID)
	if err := es.db.Model(original).Update("shares", original.Shares).Error; err != nil {
		// The repost already exists; an under-counted shares set is tolerated.
		log.Printf("failed to update shares on post %s: %v", original.ID, err)
	}

	if original.AuthorID != actor.ID {
		if err := es.notifications.Emit(actor, original.AuthorID, models.NotificationTypeShare, &original.ID); err != nil {
			log.Printf("failed to create share notification for %s: %v", original.AuthorID, err)
		}
	}

	return &shared, nil
}

// DeletePost removes a post owned by actor. Deleting an original post
// cascades to every share of it; deleting a share removes only that share.
func (es *EngagementService) DeletePost(actor *models.User, postID string) error {
	post, err := es.loadPost(postID)
	if err != nil {
		return err
	}

	if post.AuthorID != actor.ID {
		return ErrForbidden
	}

	if !post.IsShare() {
		if err := es.db.Where("original_post_id = ?", post.ID).Delete(&models.Post{}).Error; err != nil {
			return fmt.Errorf("delete shares of post %s: %w", post.ID, err)
		}
	}

	if err := es.db.Delete(post).Error; err != nil {
		return fmt.Errorf("delete post %s: %w", post.ID, err)
	}

	return nil
}
