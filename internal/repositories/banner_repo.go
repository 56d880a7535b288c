package repositories

import (
	"context"

	"toko-admin/internal/models"
)

// BannerRepository defines the interface for banner data access.
type BannerRepository interface {
	ListByStore(ctx context.Context, storeID string) ([]models.Banner, error)
	GetByID(ctx context.Context, storeID, id string) (*models.Banner, error)
	Create(ctx context.Context, banner *models.Banner) error
	Update(ctx context.Context, banner *models.Banner) error
	Delete(ctx context.Context, storeID, id string) (*models.Banner, error)
}
