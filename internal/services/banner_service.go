package services

import (
	"context"

	"toko-admin/internal/models"
	"toko-admin/internal/repositories"
)

// BannerInput carries the editable fields of a banner.
type BannerInput struct {
	Label    string
	ImageURL string
}

// BannerService handles business logic related to banners.
type BannerService struct {
	stores    *StoreService
	repo      repositories.BannerRepository
	publisher EventPublisher
}

// NewBannerService creates a new BannerService. publisher may be nil.
func NewBannerService(stores *StoreService, repo repositories.BannerRepository, publisher EventPublisher) *BannerService {
	return &BannerService{stores: stores, repo: repo, publisher: publisher}
}

// ListBanners retrieves every banner of a store.
func (s *BannerService) ListBanners(ctx context.Context, storeID string) ([]models.Banner, error) {
	return s.repo.ListByStore(ctx, storeID)
}

// GetBanner retrieves a single banner of a store.
func (s *BannerService) GetBanner(ctx context.Context, storeID, id string) (*models.Banner, error) {
	return s.repo.GetByID(ctx, storeID, id)
}

// CreateBanner creates a banner in a store owned by userID.
func (s *BannerService) CreateBanner(ctx context.Context, userID, storeID string, in BannerInput) (*models.Banner, error) {
	if _, err := s.stores.VerifyOwnership(ctx, storeID, userID); err != nil {
		return nil, err
	}

	banner := &models.Banner{
		StoreID:  storeID,
		Label:    in.Label,
		ImageURL: in.ImageURL,
	}
	if err := s.repo.Create(ctx, banner); err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, Event{Type: "banner.created", StoreID: storeID, ResourceID: banner.ID, UserID: userID})
	return banner, nil
}

// UpdateBanner overwrites a banner in a store owned by userID.
func (s *BannerService) UpdateBanner(ctx context.Context, userID, storeID, id string, in BannerInput) (*models.Banner, error) {
	if _, err := s.stores.VerifyOwnership(ctx, storeID, userID); err != nil {
		return nil, err
	}

	banner := &models.Banner{
		ID:       id,
		StoreID:  storeID,
		Label:    in.Label,
		ImageURL: in.ImageURL,
	}
	if err := s.repo.Update(ctx, banner); err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, Event{Type: "banner.updated", StoreID: storeID, ResourceID: id, UserID: userID})
	return s.repo.GetByID(ctx, storeID, id)
}

// DeleteBanner removes a banner from a store owned by userID. A banner
// still used by a category is kept and a *ConflictError returned.
func (s *BannerService) DeleteBanner(ctx context.Context, userID, storeID, id string) (*models.Banner, error) {
	if _, err := s.stores.VerifyOwnership(ctx, storeID, userID); err != nil {
		return nil, err
	}

	banner, err := s.repo.Delete(ctx, storeID, id)
	if err != nil {
		return nil, inUse(err, "Banner Masih Digunakan")
	}

	publish(ctx, s.publisher, Event{Type: "banner.deleted", StoreID: storeID, ResourceID: id, UserID: userID})
	return banner, nil
}
