package models

import "time"

// Store is a tenant. Every banner, category and product belongs to exactly
// one store, and only the owning user may change them.
type Store struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	UserID    string    `json:"userId" gorm:"type:varchar(36);index;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
