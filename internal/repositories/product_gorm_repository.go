package repositories

import (
	"context"
	"errors"
	"fmt"

	"toko-admin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Preload("Category")
}

// List retrieves the non-archived products matching filter, newest first.
func (r *GORMProductRepository) List(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	query := withRelations(r.db.WithContext(ctx)).
		Where("store_id = ? AND is_archived = ?", filter.StoreID, false)
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.IsFeatured != nil {
		query = query.Where("is_featured = ?", *filter.IsFeatured)
	}

	products := []models.Product{}
	if err := query.Order("created_at desc").Order("id desc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a product of the given store with images and category.
func (r *GORMProductRepository) GetByID(ctx context.Context, storeID, id string) (*models.Product, error) {
	var product models.Product
	err := withRelations(r.db.WithContext(ctx)).
		Where("id = ? AND store_id = ?", id, storeID).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return &product, nil
}

// Create inserts a product and its images in one transaction.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(product).Error; err != nil {
			return err
		}
		return createImages(tx, product)
	})
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update overwrites the product fields and replaces its images.
func (r *GORMProductRepository) Update(ctx context.Context, product *models.Product) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Product{}).
			Where("id = ? AND store_id = ?", product.ID, product.StoreID).
			Updates(map[string]interface{}{
				"name":        product.Name,
				"price":       product.Price,
				"category_id": product.CategoryID,
				"is_featured": product.IsFeatured,
				"is_archived": product.IsArchived,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("product %s: %w", product.ID, ErrNotFound)
		}
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.Image{}).Error; err != nil {
			return err
		}
		return createImages(tx, product)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// Delete removes a product together with its images and returns it as it
// was before deletion.
func (r *GORMProductRepository) Delete(ctx context.Context, storeID, id string) (*models.Product, error) {
	product, err := r.GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.Image{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}
	return product, nil
}

func createImages(tx *gorm.DB, product *models.Product) error {
	if len(product.Images) == 0 {
		return nil
	}
	for i := range product.Images {
		product.Images[i].ID = uuid.New().String()
		product.Images[i].ProductID = product.ID
		product.Images[i].Position = i
	}
	return tx.Create(&product.Images).Error
}
