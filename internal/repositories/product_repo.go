package repositories

import (
	"context"

	"toko-admin/internal/models"
)

// ProductFilter narrows a product listing. Empty fields do not filter.
type ProductFilter struct {
	StoreID    string
	CategoryID string
	IsFeatured *bool
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// List never returns archived products.
	List(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	GetByID(ctx context.Context, storeID, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, storeID, id string) (*models.Product, error)
}
