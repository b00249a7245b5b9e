package controllers

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillshare-api/models"
)

type MessageController struct {
	db *gorm.DB
}

func NewMessageController(db *gorm.DB) *MessageController {
	return &MessageController{db: db}
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// SendMessage sends a direct message to another user.
func (mc *MessageController) SendMessage(c *gin.Context) {
	actor, err := currentUser(c, mc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	receiverID := c.Param("userId")
	if receiverID == actor.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot message yourself"})
		return
	}

	var receiver models.User
	if err := mc.db.First(&receiver, "id = ?", receiverID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message content cannot be empty"})
		return
	}

	message := models.Message{
		ID:         uuid.New().String(),
		SenderID:   actor.ID,
		ReceiverID: receiver.ID,
		Content:    req.Content,
		Read:       false,
		CreatedAt:  time.Now(),
	}
	if err := mc.db.Create(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, message)
}

// GetConversation returns the full thread between the caller and one partner
// in chronological order. Messages the partner sent are marked read as a side
// effect of fetching.
func (mc *MessageController) GetConversation(c *gin.Context) {
	actor, err := currentUser(c, mc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	partnerID := c.Param("userId")

	var messages []models.Message
	if err := mc.db.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		actor.ID, partnerID, partnerID, actor.ID,
	).Order("created_at ASC").Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch conversation"})
		return
	}

	if err := mc.db.Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND `read` = ?", partnerID, actor.ID, false).
		Update("read", true).Error; err == nil {
		for i := range messages {
			if messages[i].SenderID == partnerID {
				messages[i].Read = true
			}
		}
	}

	c.JSON(http.StatusOK, messages)
}

// GetConversations lists the caller's conversation partners with the latest
// message and unread count per partner, most recent conversation first.
func (mc *MessageController) GetConversations(c *gin.Context) {
	actor, err := currentUser(c, mc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	var messages []models.Message
	if err := mc.db.Where("sender_id = ? OR receiver_id = ?", actor.ID, actor.ID).
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch conversations"})
		return
	}

	latest := make(map[string]models.Message)
	unread := make(map[string]int64)
	for _, message := range messages {
		partnerID := message.SenderID
		if partnerID == actor.ID {
			partnerID = message.ReceiverID
		}
		if _, seen := latest[partnerID]; !seen {
			latest[partnerID] = message
		}
		if message.ReceiverID == actor.ID && !message.Read {
			unread[partnerID]++
		}
	}

	conversations := make([]models.Conversation, 0, len(latest))
	for partnerID, message := range latest {
		var partner models.User
		if err := mc.db.First(&partner, "id = ?", partnerID).Error; err != nil {
			continue
		}
		message := message
		conversations = append(conversations, models.Conversation{
			UserID:         partner.ID,
			Username:       partner.Username,
			FirstName:      partner.FirstName,
			LastName:       partner.LastName,
			ProfilePicture: partner.ProfilePicture,
			LatestMessage:  &message,
			UnreadCount:    unread[partnerID],
		})
	}

	sort.Slice(conversations, func(i, j int) bool {
		return conversations[i].LatestMessage.CreatedAt.After(conversations[j].LatestMessage.CreatedAt)
	})

	c.JSON(http.StatusOK, conversations)
}

// GetUnreadCount returns the caller's total unread message count.
func (mc *MessageController) GetUnreadCount(c *gin.Context) {
	actor, err := currentUser(c, mc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	var count int64
	if err := mc.db.Model(&models.Message{}).
		Where("receiver_id = ? AND `read` = ?", actor.ID, false).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count unread messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
