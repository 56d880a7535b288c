package models

import "time"

// Category groups products and points at the banner shown for it.
type Category struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	StoreID   string    `json:"storeId" gorm:"type:varchar(36);index;not null"`
	BannerID  string    `json:"bannerId" gorm:"type:varchar(36);index;not null"`
	Banner    *Banner   `json:"banner,omitempty" gorm:"foreignKey:BannerID"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}
