package models

import "time"

type Favorite struct {
	ID        string   `gorm:"primaryKey" json:"id"`
	UserID    string   `gorm:"index:idx_fav_user_product,unique;not null" json:"user_id"`
	ProductID string   `gorm:"index:idx_fav_user_product,unique;not null" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
