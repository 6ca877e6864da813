package models

import "time"

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"unique;not null" json:"email"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         Role   `gorm:"type:VARCHAR(20);default:'CUSTOMER'" json:"role"`

	Orders        []Order        `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	Favorites     []Favorite     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"favorites,omitempty"`
	LoyaltyPoints []LoyaltyPoint `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"loyalty_points,omitempty"`
	EventBookings []EventBooking `gorm:"foreignKey:UserID" json:"event_bookings,omitempty"`
	Invoices      []Invoice      `gorm:"foreignKey:UserID" json:"invoices,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
