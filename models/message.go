package models

import (
	"time"
)

type Message struct {
	ID         string    `json:"id" gorm:"primaryKey;size:191"`
	SenderID   string    `json:"senderId" gorm:"not null;index;size:191"`
	ReceiverID string    `json:"receiverId" gorm:"not null;index;size:191"`
	Content    string    `json:"content" gorm:"type:text"`
	Read       bool      `json:"read" gorm:"default:false"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Conversation summarizes a message thread with one partner for the
// conversation list view.
type Conversation struct {
	UserID         string   `json:"userId"`
	Username       string   `json:"username"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	ProfilePicture *string  `json:"profilePicture"`
	LatestMessage  *Message `json:"latestMessage"`
	UnreadCount    int64    `json:"unreadCount"`
}
