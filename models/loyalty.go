package models

import "time"

type LoyaltyType string

const (
	LoyaltyEarned   LoyaltyType = "EARNED"
	LoyaltyRedeemed LoyaltyType = "REDEEMED"
	LoyaltyBonus    LoyaltyType = "BONUS"
)

// LoyaltyPoint is an append-only ledger entry. A user's balance is always
// SUM(points) over their rows and is never materialized.
type LoyaltyPoint struct {
	ID          string      `gorm:"primaryKey" json:"id"`
	UserID      string      `gorm:"index;not null" json:"user_id"`
	Points      int         `json:"points"`
	Type        LoyaltyType `gorm:"type:VARCHAR(20)" json:"type"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
}
