package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skillshare-api/models"
)

func TestFollowMirrorsBothSets(t *testing.T) {
	db := newTestDB(t)
	fs := NewFollowService(db, NewNotificationService(db))

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	updated, err := fs.Follow(alice, bob.ID)
	assert.NoError(t, err)
	assert.True(t, updated.Following.Contains(bob.ID))

	assert.True(t, reloadUser(t, db, alice.ID).Following.Contains(bob.ID))
	assert.True(t, reloadUser(t, db, bob.ID).Followers.Contains(alice.ID))
}

func TestFollowSelfRejected(t *testing.T) {
	db := newTestDB(t)
	fs := NewFollowService(db, NewNotificationService(db))

	alice := createUser(t, db, "alice")

	_, err := fs.Follow(alice, alice.ID)
	assert.ErrorIs(t, err, ErrSelfReference)
}

func TestFollowUnknownTarget(t *testing.T) {
	db := newTestDB(t)
	fs := NewFollowService(db, NewNotificationService(db))

	alice := createUser(t, db, "alice")

	_, err := fs.Follow(alice, "no-such-user")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFollowTwiceRejected(t *testing.T) {
	db := newTestDB(t)
	fs := NewFollowService(db, NewNotificationService(db))

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	_, err := fs.Follow(alice, bob.ID)
	assert.NoError(t, err)

	_, err = fs.Follow(alice, bob.ID)
	assert.ErrorIs(t, err, ErrAlreadyFollowing)
}

func TestFollowCompletesHalfAppliedRelation(t *testing.T) {
	db := newTestDB(t)
	fs := NewFollowService(db, NewNotificationService(db))

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	// Simulate a crash after the first of the two writes: alice's side is
	// recorded, bob's is not.
	alice.Following = alice.Following.Add(bob.ID)
	assert.NoError(t, db.Model(alice).Update("following", alice.Following).Error)

	_, err := fs.Follow(alice, bob.ID)
	assert.NoError(t, err)

	followedAlice := reloadUser(t, db, alice.ID)
	followedBob := reloadUser(t, db, bob.ID)
	assert.Equal(t, models.StringSlice{bob.ID}, followedAlice.Following)
	assert.Equal(t, models.StringSlice{alice.ID}, followedBob.Followers)
}

func TestFollowNotifiesTarget(t *testing.T) {
	db := newTestDB(t)
	fs := NewFollowService(db, NewNotificationService(db))

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	_, err := fs.Follow(alice, bob.ID)
	assert.NoError(t, err)

	notifications := userNotifications(t, db, bob.ID)
	if assert.Len(t, notifications, 1) {
		assert.Equal(t, models.NotificationTypeFollow, notifications[0].Type)
		assert.Equal(t, alice.ID, notifications[0].SenderID)
		assert.Equal(t, "alice started following you", notifications[0].Message)
	}
}

func TestFollowSucceedsWhenNotificationWriteFails(t *testing.T) {
	db := newTestDB(t)
	fs := NewFollowService(db, NewNotificationService(db))

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	assert.NoError(t, db.Migrator().DropTable(&models.Notification{}))

	_, err := fs.Follow(alice, bob.ID)
	assert.NoError(t, err)

	assert.True(t, reloadUser(t, db, alice.ID).Following.Contains(bob.ID))
	assert.True(t, reloadUser(t, db, bob.ID).Followers.Contains(alice.ID))
}

func TestUnfollowRemovesBothSides(t *testing.T) {
	db := newTestDB(t)
	fs := NewFollowService(db, NewNotificationService(db))

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	_, err := fs.Follow(alice, bob.ID)
	assert.NoError(t, err)

	_, err = fs.Unfollow(alice, bob.ID)
	assert.NoError(t, err)

	assert.False(t, reloadUser(t, db, alice.ID).Following.Contains(bob.ID))
	assert.False(t, reloadUser(t, db, bob.ID).Followers.Contains(alice.ID))
}

func TestUnfollowWithoutRelation(t *testing.T) {
	db := newTestDB(t)
	fs := NewFollowService(db, NewNotificationService(db))

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	_, err := fs.Unfollow(alice, bob.ID)
	assert.ErrorIs(t, err, ErrNotFollowing)
}

func TestFollowersSummariesRelativeToViewer(t *testing.T) {
	db := newTestDB(t)
	fs := NewFollowService(db, NewNotificationService(db))

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	_, err := fs.Follow(alice, carol.ID)
	assert.NoError(t, err)
	_, err = fs.Follow(bob, carol.ID)
	assert.NoError(t, err)
	_, err = fs.Follow(alice, bob.ID)
	assert.NoError(t, err)

	followers, err := fs.Followers(reloadUser(t, db, alice.ID), carol.ID)
	assert.NoError(t, err)
	assert.Len(t, followers, 2)

	byID := make(map[string]models.UserSummary, len(followers))
	for _, summary := range followers {
		byID[summary.ID] = summary
	}
	assert.True(t, byID[bob.ID].IsFollowing)
	assert.False(t, byID[alice.ID].IsFollowing)

	following, err := fs.Following(nil, alice.ID)
	assert.NoError(t, err)
	assert.Len(t, following, 2)
	for _, summary := range following {
		assert.False(t, summary.IsFollowing)
	}
}
