package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillshare-api/models"
	"skillshare-api/services"
)

type PostController struct {
	db         *gorm.DB
	engagement *services.EngagementService
	feed       *services.FeedService
}

func NewPostController(db *gorm.DB, engagement *services.EngagementService, feed *services.FeedService) *PostController {
	return &PostController{db: db, engagement: engagement, feed: feed}
}

type CreatePostRequest struct {
	Content   string `json:"content" binding:"required"`
	MediaURL  string `json:"mediaUrl"`
	MediaType string `json:"mediaType"`
}

func (pc *PostController) CreatePost(c *gin.Context) {
	actor, err := currentUser(c, pc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Post content cannot be empty"})
		return
	}

	post := models.Post{
		ID:                   uuid.New().String(),
		AuthorID:             actor.ID,
		AuthorUsername:       actor.Username,
		AuthorFirstName:      actor.FirstName,
		AuthorLastName:       actor.LastName,
		AuthorProfilePicture: actor.ProfilePicture,
		Content:              req.Content,
		MediaURL:             req.MediaURL,
		MediaType:            req.MediaType,
		Likes:                models.StringSlice{},
		Comments:             models.CommentList{},
	}

	if err := pc.db.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (pc *PostController) GetFeed(c *gin.Context) {
	actor, err := currentUser(c, pc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	posts, err := pc.feed.Feed(actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feed"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (pc *PostController) GetUserPosts(c *gin.Context) {
	posts, err := pc.feed.UserPosts(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (pc *PostController) GetPost(c *gin.Context) {
	var post models.Post
	if err := pc.db.First(&post, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

func (pc *PostController) DeletePost(c *gin.Context) {
	actor, err := currentUser(c, pc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	if err := pc.engagement.DeletePost(actor, c.Param("id")); err != nil {
		sendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

func (pc *PostController) LikePost(c *gin.Context) {
	actor, err := currentUser(c, pc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	result, err := pc.engagement.ToggleLike(actor, c.Param("id"))
	if err != nil {
		sendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

type CreateCommentRequest struct {
	Content string `json:"content"`
}

func (pc *PostController) AddComment(c *gin.Context) {
	actor, err := currentUser(c, pc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := pc.engagement.AddComment(actor, c.Param("id"), req.Content)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (pc *PostController) DeleteComment(c *gin.Context) {
	actor, err := currentUser(c, pc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	post, err := pc.engagement.DeleteComment(actor, c.Param("id"), c.Param("commentId"))
	if err != nil {
		sendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully", "post": post})
}

type SharePostRequest struct {
	ShareMessage string `json:"shareMessage"`
}

func (pc *PostController) SharePost(c *gin.Context) {
	actor, err := currentUser(c, pc.db)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	// Share message is optional; an absent body means an empty one.
	var req SharePostRequest
	_ = c.ShouldBindJSON(&req)

	post, err := pc.engagement.SharePost(actor, c.Param("id"), req.ShareMessage)
	if err != nil {
		sendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "post": post})
}
