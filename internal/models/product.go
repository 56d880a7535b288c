package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents an item sold by a store.
type Product struct {
	ID         string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	StoreID    string          `json:"storeId" gorm:"type:varchar(36);index;not null"`
	CategoryID string          `json:"categoryId" gorm:"type:varchar(36);index;not null"`
	Category   *Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Name       string          `json:"name" gorm:"type:varchar(255);not null"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	IsFeatured bool            `json:"isFeatured" gorm:"not null;default:false"`
	IsArchived bool            `json:"isArchived" gorm:"not null;default:false"`
	Images     []Image         `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time       `json:"createdAt" gorm:"index"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Image is a picture attached to a product. Position keeps the order in
// which the images were submitted.
type Image struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID string    `json:"productId" gorm:"type:varchar(36);index;not null"`
	URL       string    `json:"url" gorm:"type:text;not null"`
	Position  int       `json:"position" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
