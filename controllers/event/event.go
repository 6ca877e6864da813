package eventControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/PerryB-GIT/sweetmeadow-bakery/middleware"
	"github.com/PerryB-GIT/sweetmeadow-bakery/models"
)

type InquiryRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	EventType  string `json:"event_type" binding:"required"`
	EventDate  string `json:"event_date" binding:"required"`
	GuestCount int    `json:"guest_count"`
	Message    string `json:"message"`
}

type AdminEventRequest struct {
	UserID     string `json:"user_id"`
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
	GuestPhone string `json:"guest_phone"`
	EventType  string `json:"event_type" binding:"required"`
	EventDate  string `json:"event_date" binding:"required"`
	GuestCount int    `json:"guest_count"`
	Message    string `json:"message"`
	AdminNotes string `json:"admin_notes"`
}

type UpdateEventRequest struct {
	Status     *string `json:"status"`
	GuestName  *string `json:"guest_name"`
	GuestEmail *string `json:"guest_email"`
	GuestPhone *string `json:"guest_phone"`
	EventType  *string `json:"event_type"`
	EventDate  *string `json:"event_date"`
	GuestCount *int    `json:"guest_count"`
	Message    *string `json:"message"`
	AdminNotes *string `json:"admin_notes"`
}

func parseEventDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized date format")
}

// SubmitInquiryHandler is the public event inquiry form. Logged-in callers
// get the booking attached to their account; guests supply contact fields.
func SubmitInquiryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req InquiryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		callerID := middleware.UserID(c)
		if callerID == "" && (req.Name == "" || req.Email == "") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and email are required"})
			return
		}

		eventDate, err := parseEventDate(req.EventDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event date"})
			return
		}

		booking := models.EventBooking{
			ID:         uuid.NewString(),
			GuestName:  req.Name,
			GuestEmail: req.Email,
			GuestPhone: req.Phone,
			EventType:  req.EventType,
			EventDate:  eventDate,
			GuestCount: req.GuestCount,
			Status:     models.EventStatusInquiry,
			Message:    req.Message,
		}
		if callerID != "" {
			booking.UserID = &callerID
		}

		if err := db.Create(&booking).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit inquiry"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"event": booking})
	}
}

func GetAllEventsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var events []models.EventBooking
		if err := db.
			Preload("User").
			Order("event_date ASC").
			Find(&events).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"events": events})
	}
}

func CreateEventHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdminEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		eventDate, err := parseEventDate(req.EventDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event date"})
			return
		}

		event := models.EventBooking{
			ID:         uuid.NewString(),
			GuestName:  req.GuestName,
			GuestEmail: req.GuestEmail,
			GuestPhone: req.GuestPhone,
			EventType:  req.EventType,
			EventDate:  eventDate,
			GuestCount: req.GuestCount,
			Status:     models.EventStatusInquiry,
			Message:    req.Message,
			AdminNotes: req.AdminNotes,
		}
		if req.UserID != "" {
			event.UserID = &req.UserID
		}

		if err := db.Create(&event).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"event": event})
	}
}

func UpdateEventHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var event models.EventBooking
		if err := db.First(&event, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}

		var req UpdateEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if req.Status != nil {
			status, err := models.MapEventStatus(*req.Status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			updates["status"] = status
		}
		if req.GuestName != nil {
			updates["guest_name"] = *req.GuestName
		}
		if req.GuestEmail != nil {
			updates["guest_email"] = *req.GuestEmail
		}
		if req.GuestPhone != nil {
			updates["guest_phone"] = *req.GuestPhone
		}
		if req.EventType != nil {
			updates["event_type"] = *req.EventType
		}
		if req.EventDate != nil {
			eventDate, err := parseEventDate(*req.EventDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event date"})
				return
			}
			updates["event_date"] = eventDate
		}
		if req.GuestCount != nil {
			updates["guest_count"] = *req.GuestCount
		}
		if req.Message != nil {
			updates["message"] = *req.Message
		}
		if req.AdminNotes != nil {
			updates["admin_notes"] = *req.AdminNotes
		}

		if len(updates) > 0 {
			if err := db.Model(&event).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"event": event})
	}
}

func DeleteEventHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var event models.EventBooking
		if err := db.First(&event, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}

		if err := db.Delete(&event).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
