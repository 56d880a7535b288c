package repositories

import (
	"context"
	"errors"
	"fmt"

	"toko-admin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{db: db}
}

// ListByStore retrieves the categories of a store with their banner, newest first.
func (r *GORMCategoryRepository) ListByStore(ctx context.Context, storeID string) ([]models.Category, error) {
	categories := []models.Category{}
	err := r.db.WithContext(ctx).
		Preload("Banner").
		Where("store_id = ?", storeID).
		Order("created_at desc").
		Order("id desc").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// GetByID retrieves a category of the given store with its banner.
func (r *GORMCategoryRepository) GetByID(ctx context.Context, storeID, id string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Preload("Banner").
		Where("id = ? AND store_id = ?", id, storeID).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category %s: %w", id, err)
	}
	return &category, nil
}

// Create creates a new category in the database.
func (r *GORMCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	// The banner is referenced by id only; never upsert it from here.
	err := r.db.WithContext(ctx).Omit("Banner").Create(category).Error
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Update overwrites name and banner of an existing category.
func (r *GORMCategoryRepository) Update(ctx context.Context, category *models.Category) error {
	res := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ? AND store_id = ?", category.ID, category.StoreID).
		Updates(map[string]interface{}{
			"name":      category.Name,
			"banner_id": category.BannerID,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category %s: %w", category.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a category and returns it as it was before deletion. A category
// still referenced by a product is kept and ErrInUse returned.
func (r *GORMCategoryRepository) Delete(ctx context.Context, storeID, id string) (*models.Category, error) {
	category, err := r.GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteUnreferenced(tx, &models.Category{}, id, &models.Product{}, "category_id")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete category %s: %w", id, err)
	}
	return category, nil
}
