package messageControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/PerryB-GIT/sweetmeadow-bakery/models"
)

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type UpdateMessageRequest struct {
	Read *bool `json:"read" binding:"required"`
}

// SubmitContactHandler stores a public contact-form submission.
func SubmitContactHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		message := models.ContactMessage{
			ID:      uuid.NewString(),
			Name:    req.Name,
			Email:   req.Email,
			Message: req.Message,
		}
		if err := db.Create(&message).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true})
	}
}

func GetAllMessagesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var messages []models.ContactMessage
		if err := db.Order("created_at DESC").Find(&messages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"messages": messages})
	}
}

func UpdateMessageHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var message models.ContactMessage
		if err := db.First(&message, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}

		var req UpdateMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := db.Model(&message).Update("read", *req.Read).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update message"})
			return
		}

		message.Read = *req.Read
		c.JSON(http.StatusOK, gin.H{"message": message})
	}
}

func DeleteMessageHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var message models.ContactMessage
		if err := db.First(&message, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}

		if err := db.Delete(&message).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
