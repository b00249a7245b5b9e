package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFeedContainsFollowedAndOwnPosts(t *testing.T) {
	db := newTestDB(t)
	feeds := NewFeedService(db)
	follows := NewFollowService(db, NewNotificationService(db))

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")

	_, err := follows.Follow(alice, bob.ID)
	assert.NoError(t, err)

	createPost(t, db, alice, "from alice")
	createPost(t, db, bob, "from bob")
	createPost(t, db, carol, "from carol")

	posts, err := feeds.Feed(reloadUser(t, db, alice.ID))
	assert.NoError(t, err)
	assert.Len(t, posts, 2)
	for _, post := range posts {
		assert.NotEqual(t, carol.ID, post.AuthorID)
	}
}

func TestFeedNewestFirstWithStableTieBreak(t *testing.T) {
	db := newTestDB(t)
	feeds := NewFeedService(db)

	alice := createUser(t, db, "alice")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	old := createPost(t, db, alice, "old")
	assert.NoError(t, db.Model(old).Update("created_at", base.Add(-time.Hour)).Error)
	tied1 := createPost(t, db, alice, "tied one")
	assert.NoError(t, db.Model(tied1).Update("created_at", base).Error)
	tied2 := createPost(t, db, alice, "tied two")
	assert.NoError(t, db.Model(tied2).Update("created_at", base).Error)

	posts, err := feeds.Feed(alice)
	assert.NoError(t, err)
	if assert.Len(t, posts, 3) {
		assert.Equal(t, "old", posts[2].Content)
		// Equal timestamps order by id descending, so two reads agree.
		first := posts[0].ID
		second := posts[1].ID
		assert.Greater(t, first, second)
	}

	again, err := feeds.Feed(alice)
	assert.NoError(t, err)
	assert.Equal(t, posts[0].ID, again[0].ID)
	assert.Equal(t, posts[1].ID, again[1].ID)
}

func TestUserPostsOnlyOneAuthor(t *testing.T) {
	db := newTestDB(t)
	feeds := NewFeedService(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	createPost(t, db, alice, "a1")
	createPost(t, db, alice, "a2")
	createPost(t, db, bob, "b1")

	posts, err := feeds.UserPosts(alice.ID)
	assert.NoError(t, err)
	assert.Len(t, posts, 2)
	for _, post := range posts {
		assert.Equal(t, alice.ID, post.AuthorID)
	}
}

func TestFeedForUserFollowingNobody(t *testing.T) {
	db := newTestDB(t)
	feeds := NewFeedService(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	createPost(t, db, bob, "unseen")

	posts, err := feeds.Feed(alice)
	assert.NoError(t, err)
	assert.Empty(t, posts)
}
