package models

import "time"

type Product struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Image       string  `json:"image"`
	CategoryID  *string `json:"category_id"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Featured    bool    `json:"featured"`
	Available   bool    `gorm:"default:true" json:"available"`

	// One inventory record per product, created and deleted with it.
	Inventory *Inventory `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"inventory,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Category struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"unique;not null" json:"name"`
	Slug      string    `gorm:"unique;not null" json:"slug"`
	SortOrder int       `json:"sort_order"`
	Products  []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}
