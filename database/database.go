package database

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"skillshare-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Info),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Notification{},
		&models.LearningUpdate{},
		&models.LearningPlan{},
		&models.Message{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Composite indexes for the hot read paths: feeds, mailboxes, histories.

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_posts_author_created ON posts(author_id, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for posts: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_notifications_user_created ON notifications(user_id, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for notifications: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_messages_sender_receiver ON messages(sender_id, receiver_id)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for messages: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_learning_updates_user_completed ON learning_updates(user_id, completed_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for learning_updates: %v\n", err)
	}

	return nil
}

// SeedData populates the database with sample users for development/testing
func SeedData(db *gorm.DB) error {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)

	if userCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	password, err := bcrypt.GenerateFromPassword([]byte("Password1!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	testUsers := []models.User{
		{
			ID:        uuid.New().String(),
			FirstName: "Ada",
			LastName:  "Lovelace",
			Username:  "ada",
			Email:     "ada@example.com",
			Password:  string(password),
			Role:      models.RoleMentor,
			Skills:    models.StringSlice{"mathematics", "algorithms"},
			Enabled:   true,
		},
		{
			ID:        uuid.New().String(),
			FirstName: "Grace",
			LastName:  "Hopper",
			Username:  "grace",
			Email:     "grace@example.com",
			Password:  string(password),
			Role:      models.RoleProfessional,
			Skills:    models.StringSlice{"compilers"},
			Enabled:   true,
		},
	}

	for _, user := range testUsers {
		if err := db.Create(&user).Error; err != nil {
			fmt.Printf("Warning: Could not create test user %s: %v\n", user.Username, err)
		}
	}

	fmt.Println("Database seeded with test users")
	return nil
}
