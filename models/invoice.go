package models

import (
	"errors"
	"strings"
	"time"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "DRAFT"
	InvoiceStatusSent      InvoiceStatus = "SENT"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusOverdue   InvoiceStatus = "OVERDUE"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

// MapInvoiceStatus validates a raw status string against the invoice enum.
// OVERDUE is only ever assigned manually; no sweep job sets it.
func MapInvoiceStatus(status string) (InvoiceStatus, error) {
	switch strings.ToUpper(status) {
	case string(InvoiceStatusDraft):
		return InvoiceStatusDraft, nil
	case string(InvoiceStatusSent):
		return InvoiceStatusSent, nil
	case string(InvoiceStatusPaid):
		return InvoiceStatusPaid, nil
	case string(InvoiceStatusOverdue):
		return InvoiceStatusOverdue, nil
	case string(InvoiceStatusCancelled):
		return InvoiceStatusCancelled, nil
	default:
		return "", errors.New("invalid invoice status")
	}
}

type Invoice struct {
	ID            string        `gorm:"primaryKey" json:"id"`
	InvoiceNumber string        `gorm:"unique;not null" json:"invoice_number"`
	UserID        *string       `json:"user_id"`
	User          *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	GuestName     string        `json:"guest_name"`
	GuestEmail    string        `json:"guest_email"`
	GuestPhone    string        `json:"guest_phone"`
	GuestAddress  string        `json:"guest_address"`
	Status        InvoiceStatus `gorm:"type:VARCHAR(20);default:'DRAFT'" json:"status"`
	Subtotal      float64       `json:"subtotal"`
	Tax           float64       `json:"tax"`
	Total         float64       `json:"total"`
	DueDate       *time.Time    `json:"due_date"`
	SentAt        *time.Time    `json:"sent_at"`
	PaidDate      *time.Time    `json:"paid_date"`
	Notes         string        `json:"notes"`
	Terms         string        `json:"terms"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type InvoiceItem struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	InvoiceID   string  `gorm:"index;not null" json:"invoice_id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}
