package models

import "time"

// Banner is a labelled hero image shown on top of a category page.
type Banner struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	StoreID   string    `json:"storeId" gorm:"type:varchar(36);index;not null"`
	Label     string    `json:"label" gorm:"type:varchar(255);not null"`
	ImageURL  string    `json:"imageUrl" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}
