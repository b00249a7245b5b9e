package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"skillshare-api/config"
	"skillshare-api/controllers"
	"skillshare-api/middleware"
	"skillshare-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	// Services
	notificationService := services.NewNotificationService(db)
	followService := services.NewFollowService(db, notificationService)
	engagementService := services.NewEngagementService(db, notificationService)
	feedService := services.NewFeedService(db)
	streakService := services.NewStreakService(db)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService)
	userController := controllers.NewUserController(db, cfg.JWTSecret, followService)
	postController := controllers.NewPostController(db, engagementService, feedService)
	notificationController := controllers.NewNotificationController(db, notificationService)
	learningController := controllers.NewLearningController(db, streakService)
	planController := controllers.NewLearningPlanController(db)
	messageController := controllers.NewMessageController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		// User routes
		users := protected.Group("/users")
		{
			users.GET("/profile", userController.GetProfile)
			users.PUT("/profile", userController.UpdateProfile)
			users.GET("/search", userController.SearchUsers)
			users.GET("/:id", userController.GetUser)
			users.POST("/:id/follow", userController.FollowUser)
			users.DELETE("/:id/follow", userController.UnfollowUser)
			users.GET("/:id/followers", userController.GetFollowers)
			users.GET("/:id/following", userController.GetFollowing)
		}

		// Post routes
		posts := protected.Group("/posts")
		{
			posts.POST("/", postController.CreatePost)
			posts.GET("/feed", postController.GetFeed)
			posts.GET("/user/:userId", postController.GetUserPosts)
			posts.GET("/:id", postController.GetPost)
			posts.DELETE("/:id", postController.DeletePost)
			posts.POST("/:id/like", postController.LikePost)
			posts.POST("/:id/comments", postController.AddComment)
			posts.DELETE("/:id/comments/:commentId", postController.DeleteComment)
			posts.POST("/:id/share", postController.SharePost)
		}

		// Notification routes
		notifications := protected.Group("/notifications")
		{
			notifications.GET("/", notificationController.GetNotifications)
			notifications.GET("/unread/count", notificationController.GetUnreadCount)
			notifications.PUT("/read", notificationController.MarkManyAsRead)
			notifications.PUT("/read/all", notificationController.MarkAllAsRead)
			notifications.PUT("/:id/read", notificationController.MarkAsRead)
			notifications.DELETE("/", notificationController.ClearAll)
		}

		// Learning update and streak routes
		learning := protected.Group("/learning")
		{
			learning.GET("/templates", learningController.GetTemplates)
			learning.POST("/updates", learningController.AddUpdate)
			learning.GET("/updates/user/:userId", learningController.GetUserUpdates)
			learning.PUT("/updates/:id", learningController.UpdateUpdate)
			learning.DELETE("/updates/:id", learningController.DeleteUpdate)
			learning.GET("/streak/:userId", learningController.GetStreak)
		}

		// Learning plan routes
		plans := protected.Group("/plans")
		{
			plans.POST("/", planController.CreatePlan)
			plans.GET("/user/:userId", planController.GetUserPlans)
			plans.GET("/:id", planController.GetPlan)
			plans.PUT("/:id", planController.UpdatePlan)
			plans.DELETE("/:id", planController.DeletePlan)
			plans.POST("/:id/copy", planController.CopyPlan)
		}

		// Messaging routes
		messages := protected.Group("/messages")
		{
			messages.GET("/", messageController.GetConversations)
			messages.GET("/unread/count", messageController.GetUnreadCount)
			messages.GET("/:userId", messageController.GetConversation)
			messages.POST("/:userId", messageController.SendMessage)
		}
	}
}
