package models

import "time"

type StockStatus string

const (
	StockStatusOut StockStatus = "OUT_OF_STOCK"
	StockStatusLow StockStatus = "LOW_STOCK"
	StockStatusIn  StockStatus = "IN_STOCK"
)

type Inventory struct {
	ID            string `gorm:"primaryKey" json:"id"`
	ProductID     string `gorm:"uniqueIndex;not null" json:"product_id"`
	Quantity      int    `json:"quantity"`
	LowStockAlert int    `gorm:"default:5" json:"low_stock_alert"`

	Logs []InventoryLog `gorm:"foreignKey:InventoryID;constraint:OnDelete:CASCADE" json:"logs,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Status is derived at read time and never stored.
func (i Inventory) Status() StockStatus {
	switch {
	case i.Quantity == 0:
		return StockStatusOut
	case i.Quantity <= i.LowStockAlert:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// InventoryLog is an append-only audit trail of manual quantity changes.
type InventoryLog struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	InventoryID string    `gorm:"index;not null" json:"inventory_id"`
	Change      int       `json:"change"`
	Reason      string    `json:"reason"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}
