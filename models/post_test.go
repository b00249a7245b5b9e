package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsShare(t *testing.T) {
	original := Post{ID: "p1"}
	assert.False(t, original.IsShare())

	empty := ""
	assert.False(t, (&Post{OriginalPostID: &empty}).IsShare())

	shared := Post{ID: "p2", OriginalPostID: &original.ID}
	assert.True(t, shared.IsShare())
}

func TestNotificationActionVerbs(t *testing.T) {
	assert.Equal(t, "liked your post", NotificationTypeLike.Action())
	assert.Equal(t, "commented on your post", NotificationTypeComment.Action())
	assert.Equal(t, "shared your post", NotificationTypeShare.Action())
	assert.Equal(t, "started following you", NotificationTypeFollow.Action())
	assert.Equal(t, "interacted with your content", NotificationType("OTHER").Action())
}
