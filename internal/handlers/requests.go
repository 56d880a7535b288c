package handlers

import (
	"toko-admin/internal/services"

	"github.com/shopspring/decimal"
)

// Field order matters: the first violated field, in declaration order, is
// the one reported to the caller.

// BannerRequest is the body of banner create and update calls.
type BannerRequest struct {
	Label    string `json:"label" validate:"required"`
	ImageURL string `json:"imageUrl" validate:"required"`
	StoreID  string `json:"storeId" validate:"required"`
}

// UpdateBannerRequest adds the addressed banner to BannerRequest.
type UpdateBannerRequest struct {
	BannerRequest
	BannerID string `json:"bannerId" validate:"required"`
}

var bannerMessages = map[string]string{
	"label":    "Nama Banner Harus Diisi",
	"imageUrl": "Image Banner Harus Diisi",
	"storeId":  msgStoreRequired,
	"bannerId": "Id Banner Harus Diisi",
}

func (r BannerRequest) input() services.BannerInput {
	return services.BannerInput{Label: r.Label, ImageURL: r.ImageURL}
}

// CategoryRequest is the body of category create and update calls.
type CategoryRequest struct {
	Name     string `json:"name" validate:"required"`
	BannerID string `json:"bannerId" validate:"required"`
	StoreID  string `json:"storeId" validate:"required"`
}

// UpdateCategoryRequest adds the addressed category to CategoryRequest.
type UpdateCategoryRequest struct {
	CategoryRequest
	CategoryID string `json:"categoryId" validate:"required"`
}

var categoryMessages = map[string]string{
	"name":       "Nama Harus Diisi",
	"bannerId":   "Banner Harus Diisi",
	"storeId":    msgStoreRequired,
	"categoryId": "Id Kategori Harus Diisi",
}

func (r CategoryRequest) input() services.CategoryInput {
	return services.CategoryInput{Name: r.Name, BannerID: r.BannerID}
}

// ImageRequest is one entry of ProductRequest.Images.
type ImageRequest struct {
	URL string `json:"url" validate:"required"`
}

// ProductRequest is the body of product create and update calls.
type ProductRequest struct {
	Name       string          `json:"name" validate:"required"`
	Images     []ImageRequest  `json:"images" validate:"required,min=1,dive"`
	Price      decimal.Decimal `json:"price" validate:"required,gt=0,price"`
	CategoryID string          `json:"categoryId" validate:"required"`
	IsFeatured bool            `json:"isFeatured"`
	IsArchived bool            `json:"isArchived"`
	StoreID    string          `json:"storeId" validate:"required"`
}

// UpdateProductRequest adds the addressed product to ProductRequest.
type UpdateProductRequest struct {
	ProductRequest
	ProductID string `json:"productId" validate:"required"`
}

var productMessages = map[string]string{
	"name":        "Nama Harus Diisi",
	"images":      "Image Harus Diisi",
	"url":         "Image Harus Diisi",
	"price":       "Harga Harus Diisi",
	"price.price": "Harga Tidak Valid",
	"categoryId":  "Kategori Harus Diisi",
	"storeId":     msgStoreRequired,
	"productId":   "Id Product Harus Diisi",
}

func (r ProductRequest) input() services.ProductInput {
	urls := make([]string, 0, len(r.Images))
	for _, image := range r.Images {
		urls = append(urls, image.URL)
	}
	return services.ProductInput{
		Name:       r.Name,
		Price:      r.Price,
		CategoryID: r.CategoryID,
		ImageURLs:  urls,
		IsFeatured: r.IsFeatured,
		IsArchived: r.IsArchived,
	}
}

// StoreRequest is the body of a store create call.
type StoreRequest struct {
	Name string `json:"name" validate:"required"`
}

var storeMessages = map[string]string{
	"name": "Nama Harus Diisi",
}
