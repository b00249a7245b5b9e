package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"skillshare-api/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("access sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Notification{},
		&models.LearningUpdate{},
		&models.LearningPlan{},
		&models.Message{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		ID:            uuid.New().String(),
		Username:      username,
		Email:         username + "@example.com",
		Password:      "not-a-real-hash",
		Role:          models.RoleBeginner,
		Skills:        models.StringSlice{},
		Followers:     models.StringSlice{},
		Following:     models.StringSlice{},
		LearningDates: models.StringSlice{},
		Enabled:       true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func createPost(t *testing.T, db *gorm.DB, author *models.User, content string) *models.Post {
	t.Helper()

	post := &models.Post{
		ID:                   uuid.New().String(),
		AuthorID:             author.ID,
		AuthorUsername:       author.Username,
		AuthorFirstName:      author.FirstName,
		AuthorLastName:       author.LastName,
		AuthorProfilePicture: author.ProfilePicture,
		Content:              content,
		Likes:                models.StringSlice{},
		Comments:             models.CommentList{},
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}

func reloadUser(t *testing.T, db *gorm.DB, id string) *models.User {
	t.Helper()

	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		t.Fatalf("reload user %s: %v", id, err)
	}
	return &user
}

func reloadPost(t *testing.T, db *gorm.DB, id string) *models.Post {
	t.Helper()

	var post models.Post
	if err := db.First(&post, "id = ?", id).Error; err != nil {
		t.Fatalf("reload post %s: %v", id, err)
	}
	return &post
}

func userNotifications(t *testing.T, db *gorm.DB, userID string) []models.Notification {
	t.Helper()

	var notifications []models.Notification
	if err := db.Where("user_id = ?", userID).Find(&notifications).Error; err != nil {
		t.Fatalf("load notifications for %s: %v", userID, err)
	}
	return notifications
}
