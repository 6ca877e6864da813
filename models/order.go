package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusInProgress OrderStatus = "IN_PROGRESS"
	OrderStatusReady      OrderStatus = "READY"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// MapOrderStatus validates a raw status string against the order enum.
func MapOrderStatus(status string) (OrderStatus, error) {
	switch strings.ToUpper(status) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusConfirmed):
		return OrderStatusConfirmed, nil
	case string(OrderStatusInProgress):
		return OrderStatusInProgress, nil
	case string(OrderStatusReady):
		return OrderStatusReady, nil
	case string(OrderStatusCompleted):
		return OrderStatusCompleted, nil
	case string(OrderStatusCancelled):
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

type Order struct {
	ID          string      `gorm:"primaryKey" json:"id"`
	OrderNumber string      `gorm:"unique;not null" json:"order_number"`
	UserID      *string     `json:"user_id"`
	User        *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	GuestName   string      `json:"guest_name"`
	GuestEmail  string      `json:"guest_email"`
	GuestPhone  string      `json:"guest_phone"`
	Status      OrderStatus `gorm:"type:VARCHAR(20);default:'PENDING'" json:"status"`
	Subtotal    float64     `json:"subtotal"`
	Tax         float64     `json:"tax"`
	Total       float64     `json:"total"`
	PickupDate  *time.Time  `json:"pickup_date"`
	PickupTime  string      `json:"pickup_time"`
	Notes       string      `json:"notes"`

	Items         []OrderItem          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	StatusHistory []OrderStatusHistory `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"status_history,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderItem struct {
	ID        string  `gorm:"primaryKey" json:"id"`
	OrderID   string  `gorm:"index;not null" json:"order_id"`
	ProductID string  `json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int     `json:"quantity"`
	// Snapshot of the product price at order time; later catalog changes
	// never touch it.
	UnitPrice float64 `json:"unit_price"`
}

type OrderStatusHistory struct {
	ID        string      `gorm:"primaryKey" json:"id"`
	OrderID   string      `gorm:"index;not null" json:"order_id"`
	Status    OrderStatus `gorm:"type:VARCHAR(20)" json:"status"`
	ChangedBy string      `json:"changed_by"`
	CreatedAt time.Time   `json:"created_at"`
}
