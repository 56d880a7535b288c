package repositories

import (
	"context"

	"toko-admin/internal/models"
)

// StoreRepository defines the interface for store data access.
type StoreRepository interface {
	Create(ctx context.Context, store *models.Store) error
	// GetByIDAndUser only matches a store owned by userID.
	GetByIDAndUser(ctx context.Context, id, userID string) (*models.Store, error)
	ListByUser(ctx context.Context, userID string) ([]models.Store, error)
}
