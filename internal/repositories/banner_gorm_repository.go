package repositories

import (
	"context"
	"errors"
	"fmt"

	"toko-admin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMBannerRepository is a GORM implementation of BannerRepository.
type GORMBannerRepository struct {
	db *gorm.DB
}

// NewGORMBannerRepository creates a new instance of GORMBannerRepository.
func NewGORMBannerRepository(db *gorm.DB) *GORMBannerRepository {
	return &GORMBannerRepository{db: db}
}

// ListByStore retrieves the banners of a store, newest first.
func (r *GORMBannerRepository) ListByStore(ctx context.Context, storeID string) ([]models.Banner, error) {
	banners := []models.Banner{}
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at desc").
		Order("id desc").
		Find(&banners).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}
	return banners, nil
}

// GetByID retrieves a banner of the given store.
func (r *GORMBannerRepository) GetByID(ctx context.Context, storeID, id string) (*models.Banner, error) {
	var banner models.Banner
	err := r.db.WithContext(ctx).
		Where("id = ? AND store_id = ?", id, storeID).
		First(&banner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("banner %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get banner %s: %w", id, err)
	}
	return &banner, nil
}

// Create creates a new banner in the database.
func (r *GORMBannerRepository) Create(ctx context.Context, banner *models.Banner) error {
	if banner.ID == "" {
		banner.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(banner).Error; err != nil {
		return fmt.Errorf("failed to create banner: %w", err)
	}
	return nil
}

// Update overwrites label and image of an existing banner.
func (r *GORMBannerRepository) Update(ctx context.Context, banner *models.Banner) error {
	res := r.db.WithContext(ctx).
		Model(&models.Banner{}).
		Where("id = ? AND store_id = ?", banner.ID, banner.StoreID).
		Updates(map[string]interface{}{
			"label":     banner.Label,
			"image_url": banner.ImageURL,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update banner: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("banner %s: %w", banner.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a banner and returns it as it was before deletion. A banner
// still referenced by a category is kept and ErrInUse returned.
func (r *GORMBannerRepository) Delete(ctx context.Context, storeID, id string) (*models.Banner, error) {
	banner, err := r.GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteUnreferenced(tx, &models.Banner{}, id, &models.Category{}, "banner_id")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete banner %s: %w", id, err)
	}
	return banner, nil
}
