package models

import (
	"time"
)

type Post struct {
	ID       string `json:"id" gorm:"primaryKey;size:191"`
	AuthorID string `json:"authorId" gorm:"not null;index;size:191"`

	// Author snapshot copied at creation time. Not live-joined: it goes stale
	// if the profile later changes.
	AuthorUsername       string  `json:"authorUsername" gorm:"size:50"`
	AuthorFirstName      string  `json:"authorFirstName" gorm:"size:100"`
	AuthorLastName       string  `json:"authorLastName" gorm:"size:100"`
	AuthorProfilePicture *string `json:"authorProfilePicture" gorm:"size:500"`

	Content   string `json:"content" gorm:"type:text"`
	MediaURL  string `json:"mediaUrl" gorm:"size:500"`
	MediaType string `json:"mediaType" gorm:"size:20"` // IMAGE, VIDEO, etc.

	Likes    StringSlice `json:"likes" gorm:"type:json"`
	Comments CommentList `json:"comments" gorm:"type:json"`
	Shares   StringSlice `json:"shares" gorm:"type:json"`

	// Set when this post is a share of another post. Shares always reference
	// the root post, never another share.
	OriginalPostID *string `json:"originalPostId" gorm:"index;size:191"`
	ShareMessage   string  `json:"shareMessage" gorm:"size:1000"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsShare reports whether this post is a repost of another post.
func (p *Post) IsShare() bool {
	return p.OriginalPostID != nil && *p.OriginalPostID != ""
}

// Comment is embedded in a post's comment list.
type Comment struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId"`
	Username           string    `json:"username"`
	UserProfilePicture *string   `json:"userProfilePicture"`
	Content            string    `json:"content"`
	CreatedAt          time.Time `json:"createdAt"`
}
