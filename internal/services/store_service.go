package services

import (
	"context"
	"errors"
	"fmt"

	"toko-admin/internal/models"
	"toko-admin/internal/repositories"
)

// StoreService handles stores and the ownership check every mutation
// goes through.
type StoreService struct {
	repo repositories.StoreRepository
}

// NewStoreService creates a new StoreService.
func NewStoreService(repo repositories.StoreRepository) *StoreService {
	return &StoreService{repo: repo}
}

// VerifyOwnership returns the store when userID owns it. A store that does
// not exist and a store owned by someone else both yield ErrForbidden, so
// callers cannot probe for other tenants.
func (s *StoreService) VerifyOwnership(ctx context.Context, storeID, userID string) (*models.Store, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	store, err := s.repo.GetByIDAndUser(ctx, storeID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrForbidden
		}
		return nil, fmt.Errorf("failed to verify store ownership: %w", err)
	}
	return store, nil
}

// CreateStore creates a store owned by userID.
func (s *StoreService) CreateStore(ctx context.Context, userID, name string) (*models.Store, error) {
	store := &models.Store{Name: name, UserID: userID}
	if err := s.repo.Create(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// ListStores returns the stores owned by userID.
func (s *StoreService) ListStores(ctx context.Context, userID string) ([]models.Store, error) {
	return s.repo.ListByUser(ctx, userID)
}
