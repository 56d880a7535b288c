package repositories

import (
	"context"

	"toko-admin/internal/models"
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	ListByStore(ctx context.Context, storeID string) ([]models.Category, error)
	GetByID(ctx context.Context, storeID, id string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, storeID, id string) (*models.Category, error)
}
