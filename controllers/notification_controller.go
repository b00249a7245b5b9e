package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"skillshare-api/services"
)

type NotificationController struct {
	db            *gorm.DB
	notifications *services.NotificationService
}

func NewNotificationController(db *gorm.DB, notifications *services.NotificationService) *NotificationController {
	return &NotificationController{db: db, notifications: notifications}
}

// GetNotifications returns the caller's notifications, newest first.
func (nc *NotificationController) GetNotifications(c *gin.Context) {
	user, err := currentUser(c, nc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	notifications, err := nc.notifications.ListForUser(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// GetUnreadCount returns the caller's unread notification count.
func (nc *NotificationController) GetUnreadCount(c *gin.Context) {
	user, err := currentUser(c, nc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	count, err := nc.notifications.UnreadCount(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notification count"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkAsRead marks one of the caller's notifications as read.
func (nc *NotificationController) MarkAsRead(c *gin.Context) {
	user, err := currentUser(c, nc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	if err := nc.notifications.MarkRead(user.ID, c.Param("id")); err != nil {
		sendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// MarkManyAsRead marks a batch of the caller's notifications as read. Ids
// belonging to other users are ignored.
func (nc *NotificationController) MarkManyAsRead(c *gin.Context) {
	user, err := currentUser(c, nc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	var ids []string
	if err := c.ShouldBindJSON(&ids); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := nc.notifications.MarkManyRead(user.ID, ids); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notifications as read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notifications marked as read"})
}

// MarkAllAsRead marks every unread notification of the caller as read.
func (nc *NotificationController) MarkAllAsRead(c *gin.Context) {
	user, err := currentUser(c, nc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	if err := nc.notifications.MarkAllRead(user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notifications as read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

// ClearAll deletes every notification of the caller.
func (nc *NotificationController) ClearAll(c *gin.Context) {
	user, err := currentUser(c, nc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	if err := nc.notifications.ClearAll(user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notifications cleared"})
}
