package models

import (
	"time"
)

// User roles
const (
	RoleBeginner     = "BEGINNER"
	RoleProfessional = "PROFESSIONAL"
	RoleMentor       = "MENTOR"
)

// DateLayout is the ISO calendar-date format used for streak bookkeeping.
// ISO dates compare correctly as plain strings.
const DateLayout = "2006-01-02"

type User struct {
	ID             string      `json:"id" gorm:"primaryKey;size:191"`
	FirstName      string      `json:"firstName" gorm:"size:100"`
	LastName       string      `json:"lastName" gorm:"size:100"`
	Username       string      `json:"username" gorm:"uniqueIndex;not null;size:50"`
	Email          string      `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password       string      `json:"-" gorm:"not null;size:255"`
	Role           string      `json:"role" gorm:"size:20"`
	Skills         StringSlice `json:"skills" gorm:"type:json"`
	ProfilePicture *string     `json:"profilePicture" gorm:"size:500"`
	Bio            string      `json:"bio" gorm:"size:1000"`
	Followers      StringSlice `json:"followers" gorm:"type:json"`
	Following      StringSlice `json:"following" gorm:"type:json"`
	Enabled        bool        `json:"enabled" gorm:"default:true"`

	// Learning streak state. LastLearningDate and LearningDates hold ISO
	// calendar dates (DateLayout).
	CurrentStreak    int         `json:"currentStreak" gorm:"default:0"`
	LongestStreak    int         `json:"longestStreak" gorm:"default:0"`
	LastLearningDate *string     `json:"lastLearningDate" gorm:"size:10"`
	LearningDates    StringSlice `json:"learningDates" gorm:"type:json"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FullName returns the user's display name: "first last" when both are set,
// whichever of the two is present otherwise, falling back to the username.
func (u *User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	default:
		return u.Username
	}
}

// UserSummary is the public view of a user returned by search, follower and
// following listings. IsFollowing is relative to the requesting user.
type UserSummary struct {
	ID             string  `json:"id"`
	Username       string  `json:"username"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	FullName       string  `json:"fullName"`
	ProfilePicture *string `json:"profilePicture"`
	Bio            string  `json:"bio"`
	IsFollowing    bool    `json:"isFollowing"`
}

// ToSummary builds the public view of u as seen by viewer.
func (u *User) ToSummary(viewer *User) UserSummary {
	return UserSummary{
		ID:             u.ID,
		Username:       u.Username,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		FullName:       u.FullName(),
		ProfilePicture: u.ProfilePicture,
		Bio:            u.Bio,
		IsFollowing:    viewer != nil && viewer.Following.Contains(u.ID),
	}
}
