package services_test

import (
	"context"
	"fmt"
	"testing"

	"toko-admin/internal/models"
	"toko-admin/internal/repositories"
	"toko-admin/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBannerService_CreateBanner(t *testing.T) {
	stores := new(MockStoreRepository)
	banners := new(MockBannerRepository)
	service := services.NewBannerService(services.NewStoreService(stores), banners, nil)

	stores.On("GetByIDAndUser", mock.Anything, "store1", "user1").Return(&models.Store{ID: "store1"}, nil).Once()
	banners.On("Create", mock.Anything, mock.MatchedBy(func(b *models.Banner) bool {
		return b.StoreID == "store1" && b.Label == "Summer" && b.ImageURL == "http://x/y.png"
	})).Return(nil).Once()

	banner, err := service.CreateBanner(context.Background(), "user1", "store1", services.BannerInput{
		Label:    "Summer",
		ImageURL: "http://x/y.png",
	})

	require.NoError(t, err)
	assert.Equal(t, "Summer", banner.Label)
	assert.Equal(t, "store1", banner.StoreID)
	banners.AssertExpectations(t)
}

func TestBannerService_UpdateMissingBanner(t *testing.T) {
	stores := new(MockStoreRepository)
	banners := new(MockBannerRepository)
	service := services.NewBannerService(services.NewStoreService(stores), banners, nil)

	stores.On("GetByIDAndUser", mock.Anything, "store1", "user1").Return(&models.Store{ID: "store1"}, nil).Once()
	banners.On("Update", mock.Anything, mock.Anything).
		Return(fmt.Errorf("banner b9: %w", repositories.ErrNotFound)).Once()

	_, err := service.UpdateBanner(context.Background(), "user1", "store1", "b9", services.BannerInput{Label: "x", ImageURL: "y"})

	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestBannerService_DeleteBannerForeignStore(t *testing.T) {
	stores := new(MockStoreRepository)
	banners := new(MockBannerRepository)
	service := services.NewBannerService(services.NewStoreService(stores), banners, nil)

	stores.On("GetByIDAndUser", mock.Anything, "store1", "intruder").
		Return(nil, fmt.Errorf("store store1: %w", repositories.ErrNotFound)).Once()

	_, err := service.DeleteBanner(context.Background(), "intruder", "store1", "b1")

	assert.ErrorIs(t, err, services.ErrForbidden)
	banners.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestBannerService_DeleteBannerInUse(t *testing.T) {
	stores := new(MockStoreRepository)
	banners := new(MockBannerRepository)
	service := services.NewBannerService(services.NewStoreService(stores), banners, nil)

	stores.On("GetByIDAndUser", mock.Anything, "store1", "user1").Return(&models.Store{ID: "store1"}, nil).Once()
	banners.On("Delete", mock.Anything, "store1", "b1").
		Return(nil, fmt.Errorf("failed to delete banner b1: %w", repositories.ErrInUse)).Once()

	_, err := service.DeleteBanner(context.Background(), "user1", "store1", "b1")

	var cerr *services.ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "Banner Masih Digunakan", cerr.Message)
}
