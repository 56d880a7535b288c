package services

import (
	"context"
	"errors"

	"toko-admin/internal/models"
	"toko-admin/internal/repositories"

	"github.com/shopspring/decimal"
)

// ProductInput carries the editable fields of a product. ImageURLs keeps
// the submission order.
type ProductInput struct {
	Name       string
	Price      decimal.Decimal
	CategoryID string
	ImageURLs  []string
	IsFeatured bool
	IsArchived bool
}

// ProductListOptions are the optional filters of a public product listing.
type ProductListOptions struct {
	CategoryID   string
	FeaturedOnly bool
}

// ProductService handles business logic related to products.
type ProductService struct {
	stores     *StoreService
	repo       repositories.ProductRepository
	categories repositories.CategoryRepository
	publisher  EventPublisher
}

// NewProductService creates a new ProductService. publisher may be nil.
func NewProductService(stores *StoreService, repo repositories.ProductRepository, categories repositories.CategoryRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		stores:     stores,
		repo:       repo,
		categories: categories,
		publisher:  publisher,
	}
}

// ListProducts retrieves the non-archived products of a store.
func (s *ProductService) ListProducts(ctx context.Context, storeID string, opts ProductListOptions) ([]models.Product, error) {
	filter := repositories.ProductFilter{
		StoreID:    storeID,
		CategoryID: opts.CategoryID,
	}
	if opts.FeaturedOnly {
		featured := true
		filter.IsFeatured = &featured
	}
	return s.repo.List(ctx, filter)
}

// GetProduct retrieves a single product of a store, archived or not.
func (s *ProductService) GetProduct(ctx context.Context, storeID, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, storeID, id)
}

// CreateProduct creates a product and its images in a store owned by userID.
func (s *ProductService) CreateProduct(ctx context.Context, userID, storeID string, in ProductInput) (*models.Product, error) {
	if _, err := s.stores.VerifyOwnership(ctx, storeID, userID); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, storeID, in.CategoryID); err != nil {
		return nil, err
	}

	product := in.toModel(storeID)
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, Event{Type: "product.created", StoreID: storeID, ResourceID: product.ID, UserID: userID})
	return product, nil
}

// UpdateProduct overwrites a product in a store owned by userID and
// replaces its images.
func (s *ProductService) UpdateProduct(ctx context.Context, userID, storeID, id string, in ProductInput) (*models.Product, error) {
	if _, err := s.stores.VerifyOwnership(ctx, storeID, userID); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(ctx, storeID, id); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, storeID, in.CategoryID); err != nil {
		return nil, err
	}

	product := in.toModel(storeID)
	product.ID = id
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, Event{Type: "product.updated", StoreID: storeID, ResourceID: id, UserID: userID})
	return s.repo.GetByID(ctx, storeID, id)
}

// DeleteProduct removes a product and its images from a store owned by userID.
func (s *ProductService) DeleteProduct(ctx context.Context, userID, storeID, id string) (*models.Product, error) {
	if _, err := s.stores.VerifyOwnership(ctx, storeID, userID); err != nil {
		return nil, err
	}

	product, err := s.repo.Delete(ctx, storeID, id)
	if err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, Event{Type: "product.deleted", StoreID: storeID, ResourceID: id, UserID: userID})
	return product, nil
}

func (s *ProductService) checkCategory(ctx context.Context, storeID, categoryID string) error {
	if _, err := s.categories.GetByID(ctx, storeID, categoryID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return NewValidationError("categoryId", "Kategori Tidak Ditemukan")
		}
		return err
	}
	return nil
}

func (in ProductInput) toModel(storeID string) *models.Product {
	images := make([]models.Image, 0, len(in.ImageURLs))
	for _, url := range in.ImageURLs {
		images = append(images, models.Image{URL: url})
	}
	return &models.Product{
		StoreID:    storeID,
		CategoryID: in.CategoryID,
		Name:       in.Name,
		Price:      in.Price,
		IsFeatured: in.IsFeatured,
		IsArchived: in.IsArchived,
		Images:     images,
	}
}
