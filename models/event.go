package models

import (
	"errors"
	"strings"
	"time"
)

type EventStatus string

const (
	EventStatusInquiry   EventStatus = "INQUIRY"
	EventStatusPending   EventStatus = "PENDING"
	EventStatusConfirmed EventStatus = "CONFIRMED"
	EventStatusCompleted EventStatus = "COMPLETED"
	EventStatusCancelled EventStatus = "CANCELLED"
)

func MapEventStatus(status string) (EventStatus, error) {
	switch strings.ToUpper(status) {
	case string(EventStatusInquiry):
		return EventStatusInquiry, nil
	case string(EventStatusPending):
		return EventStatusPending, nil
	case string(EventStatusConfirmed):
		return EventStatusConfirmed, nil
	case string(EventStatusCompleted):
		return EventStatusCompleted, nil
	case string(EventStatusCancelled):
		return EventStatusCancelled, nil
	default:
		return "", errors.New("invalid event status")
	}
}

// EventBooking covers both public inquiries and admin-created bookings.
// EventType is free-form; the storefront offers suggestions but the server
// does not restrict the value.
type EventBooking struct {
	ID         string      `gorm:"primaryKey" json:"id"`
	UserID     *string     `json:"user_id"`
	User       *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	GuestName  string      `json:"guest_name"`
	GuestEmail string      `json:"guest_email"`
	GuestPhone string      `json:"guest_phone"`
	EventType  string      `json:"event_type"`
	EventDate  time.Time   `json:"event_date"`
	GuestCount int         `json:"guest_count"`
	Status     EventStatus `gorm:"type:VARCHAR(20);default:'INQUIRY'" json:"status"`
	Message    string      `json:"message"`
	AdminNotes string      `json:"admin_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
