package models

import (
	"time"
)

type NotificationType string

const (
	NotificationTypeLike    NotificationType = "LIKE"
	NotificationTypeComment NotificationType = "COMMENT"
	NotificationTypeShare   NotificationType = "SHARE"
	NotificationTypeFollow  NotificationType = "FOLLOW"
)

// Notification is an append-only mailbox entry. After creation only the Read
// flag ever changes; the message text is rendered once at write time.
type Notification struct {
	ID       string `json:"id" gorm:"primaryKey;size:191"`
	UserID   string `json:"userId" gorm:"not null;index;size:191"` // recipient
	SenderID string `json:"senderId" gorm:"not null;size:191"`

	// Sender snapshot, same copy-on-write rule as the post author snapshot.
	SenderUsername       string  `json:"senderUsername" gorm:"size:50"`
	SenderProfilePicture *string `json:"senderProfilePicture" gorm:"size:500"`

	Type       NotificationType `json:"type" gorm:"not null;size:20"`
	ResourceID *string          `json:"resourceId" gorm:"size:191"` // related post, if any
	Message    string           `json:"message" gorm:"size:500"`
	Read       bool             `json:"read" gorm:"default:false"`
	CreatedAt  time.Time        `json:"createdAt"`
}

// Action returns the message verb for a notification type, appended to the
// sender's display name when the message is rendered.
func (t NotificationType) Action() string {
	switch t {
	case NotificationTypeLike:
		return "liked your post"
	case NotificationTypeComment:
		return "commented on your post"
	case NotificationTypeShare:
		return "shared your post"
	case NotificationTypeFollow:
		return "started following you"
	default:
		return "interacted with your content"
	}
}
