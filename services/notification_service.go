package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillshare-api/models"
)

// NotificationService maintains the per-user notification mailbox. Entries
// are written once by the engagement and follow operations and afterwards
// only their read flag changes.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// Emit appends a notification to recipientID's mailbox. The message is
// rendered once from the sender's display name. Self-notifications are
// skipped, not an error. Callers treat a returned error as best-effort: log
// and carry on.
func (ns *NotificationService) Emit(sender *models.User, recipientID string, notificationType models.NotificationType, resourceID *string) error {
	if sender.ID == recipientID {
		return nil
	}

	notification := models.Notification{
		ID:                   uuid.New().String(),
		UserID:               recipientID,
		SenderID:             sender.ID,
		SenderUsername:       sender.Username,
		SenderProfilePicture: sender.ProfilePicture,
		Type:                 notificationType,
		ResourceID:           resourceID,
		Message:              fmt.Sprintf("%s %s", sender.FullName(), notificationType.Action()),
		Read:                 false,
	}

	return ns.db.Create(&notification).Error
}

// ListForUser returns all of userID's notifications, newest first.
func (ns *NotificationService) ListForUser(userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := ns.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// UnreadCount returns the number of unread notifications for userID.
func (ns *NotificationService) UnreadCount(userID string) (int64, error) {
	var count int64
	err := ns.db.Model(&models.Notification{}).
		Where("user_id = ? AND `read` = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkRead flags a single notification as read. The write is scoped to the
// caller's own mailbox; an unknown or foreign id affects nothing.
func (ns *NotificationService) MarkRead(userID, notificationID string) error {
	return ns.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read", true).Error
}

// MarkManyRead flags the given notifications as read. Ids that do not belong
// to userID are silently ignored.
func (ns *NotificationService) MarkManyRead(userID string, notificationIDs []string) error {
	if len(notificationIDs) == 0 {
		return nil
	}
	return ns.db.Model(&models.Notification{}).
		Where("user_id = ? AND id IN ?", userID, notificationIDs).
		Update("read", true).Error
}

// MarkAllRead flags every unread notification of userID as read.
func (ns *NotificationService) MarkAllRead(userID string) error {
	return ns.db.Model(&models.Notification{}).
		Where("user_id = ? AND `read` = ?", userID, false).
		Update("read", true).Error
}

// ClearAll deletes every notification of userID.
func (ns *NotificationService) ClearAll(userID string) error {
	return ns.db.Where("user_id = ?", userID).Delete(&models.Notification{}).Error
}
