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
)

func TestStoreService_VerifyOwnership(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockStoreRepository)
	service := services.NewStoreService(mockRepo)

	owned := &models.Store{ID: "store1", UserID: "user1", Name: "Toko Satu"}

	// Owner
	mockRepo.On("GetByIDAndUser", mock.Anything, "store1", "user1").Return(owned, nil).Once()
	store, err := service.VerifyOwnership(ctx, "store1", "user1")
	assert.NoError(t, err)
	assert.Equal(t, owned, store)

	// Someone else's store looks exactly like a missing one
	mockRepo.On("GetByIDAndUser", mock.Anything, "store1", "intruder").
		Return(nil, fmt.Errorf("store store1: %w", repositories.ErrNotFound)).Once()
	store, err = service.VerifyOwnership(ctx, "store1", "intruder")
	assert.ErrorIs(t, err, services.ErrForbidden)
	assert.Nil(t, store)

	// Database failure is not an ownership failure
	mockRepo.On("GetByIDAndUser", mock.Anything, "store1", "user1").
		Return(nil, fmt.Errorf("connection refused")).Once()
	_, err = service.VerifyOwnership(ctx, "store1", "user1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrForbidden)
	assert.Contains(t, err.Error(), "connection refused")

	mockRepo.AssertExpectations(t)
}

func TestStoreService_VerifyOwnershipWithoutUser(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := services.NewStoreService(mockRepo)

	_, err := service.VerifyOwnership(context.Background(), "store1", "")
	assert.ErrorIs(t, err, services.ErrUnauthenticated)
	mockRepo.AssertNotCalled(t, "GetByIDAndUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestStoreService_CreateStore(t *testing.T) {
	mockRepo := new(MockStoreRepository)
	service := services.NewStoreService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *models.Store) bool {
		return s.Name == "Toko Baru" && s.UserID == "user1"
	})).Return(nil).Once()

	store, err := service.CreateStore(context.Background(), "user1", "Toko Baru")
	assert.NoError(t, err)
	assert.Equal(t, "user1", store.UserID)
	mockRepo.AssertExpectations(t)
}
