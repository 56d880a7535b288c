package services

import (
	"context"
	"errors"

	"toko-admin/internal/models"
	"toko-admin/internal/repositories"
)

// CategoryInput carries the editable fields of a category.
type CategoryInput struct {
	Name     string
	BannerID string
}

// CategoryService handles business logic related to categories.
type CategoryService struct {
	stores    *StoreService
	repo      repositories.CategoryRepository
	banners   repositories.BannerRepository
	publisher EventPublisher
}

// NewCategoryService creates a new CategoryService. publisher may be nil.
func NewCategoryService(stores *StoreService, repo repositories.CategoryRepository, banners repositories.BannerRepository, publisher EventPublisher) *CategoryService {
	return &CategoryService{stores: stores, repo: repo, banners: banners, publisher: publisher}
}

// ListCategories retrieves every category of a store with its banner.
func (s *CategoryService) ListCategories(ctx context.Context, storeID string) ([]models.Category, error) {
	return s.repo.ListByStore(ctx, storeID)
}

// GetCategory retrieves a single category of a store.
func (s *CategoryService) GetCategory(ctx context.Context, storeID, id string) (*models.Category, error) {
	return s.repo.GetByID(ctx, storeID, id)
}

// CreateCategory creates a category in a store owned by userID. The banner
// must belong to the same store.
func (s *CategoryService) CreateCategory(ctx context.Context, userID, storeID string, in CategoryInput) (*models.Category, error) {
	if _, err := s.stores.VerifyOwnership(ctx, storeID, userID); err != nil {
		return nil, err
	}
	if err := s.checkBanner(ctx, storeID, in.BannerID); err != nil {
		return nil, err
	}

	category := &models.Category{
		StoreID:  storeID,
		BannerID: in.BannerID,
		Name:     in.Name,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, Event{Type: "category.created", StoreID: storeID, ResourceID: category.ID, UserID: userID})
	return category, nil
}

// UpdateCategory overwrites a category in a store owned by userID.
func (s *CategoryService) UpdateCategory(ctx context.Context, userID, storeID, id string, in CategoryInput) (*models.Category, error) {
	if _, err := s.stores.VerifyOwnership(ctx, storeID, userID); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(ctx, storeID, id); err != nil {
		return nil, err
	}
	if err := s.checkBanner(ctx, storeID, in.BannerID); err != nil {
		return nil, err
	}

	category := &models.Category{
		ID:       id,
		StoreID:  storeID,
		BannerID: in.BannerID,
		Name:     in.Name,
	}
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, Event{Type: "category.updated", StoreID: storeID, ResourceID: id, UserID: userID})
	return s.repo.GetByID(ctx, storeID, id)
}

// DeleteCategory removes a category from a store owned by userID. A category
// still used by a product is kept and a *ConflictError returned.
func (s *CategoryService) DeleteCategory(ctx context.Context, userID, storeID, id string) (*models.Category, error) {
	if _, err := s.stores.VerifyOwnership(ctx, storeID, userID); err != nil {
		return nil, err
	}

	category, err := s.repo.Delete(ctx, storeID, id)
	if err != nil {
		return nil, inUse(err, "Kategori Masih Digunakan")
	}

	publish(ctx, s.publisher, Event{Type: "category.deleted", StoreID: storeID, ResourceID: id, UserID: userID})
	return category, nil
}

func (s *CategoryService) checkBanner(ctx context.Context, storeID, bannerID string) error {
	if _, err := s.banners.GetByID(ctx, storeID, bannerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return NewValidationError("bannerId", "Banner Tidak Ditemukan")
		}
		return err
	}
	return nil
}
