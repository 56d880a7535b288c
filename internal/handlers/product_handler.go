package handlers

import (
	"strconv"

	"toko-admin/internal/middleware"
	"toko-admin/internal/services"
	"toko-admin/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const msgProductNotFound = "Product Tidak Ditemukan"

// ProductHandler handles HTTP requests for the products of a store.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validation.New(),
	}
}

// RegisterRoutes registers the product routes. Reads are public, writes go
// through auth.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	productRoutes := router.Group("/:storeId/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Post("/", auth, h.HandleCreateProduct)
	productRoutes.Get("/:productId", h.HandleGetProduct)
	productRoutes.Patch("/:productId", auth, h.HandleUpdateProduct)
	productRoutes.Delete("/:productId", auth, h.HandleDeleteProduct)
}

// HandleGetProducts lists the non-archived products of a store, newest
// first. categoryId narrows the list; isFeatured only filters when true.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	const tag = "PRODUCTS_GET"
	storeID := c.Params("storeId")
	if storeID == "" {
		return c.Status(fiber.StatusBadRequest).SendString(msgStoreRequired)
	}

	opts := services.ProductListOptions{CategoryID: c.Query("categoryId")}
	if featured, err := strconv.ParseBool(c.Query("isFeatured")); err == nil {
		opts.FeaturedOnly = featured
	}

	products, err := h.service.ListProducts(c.UserContext(), storeID, opts)
	if err != nil {
		return respondError(c, tag, err, msgProductNotFound)
	}
	return c.JSON(products)
}

// HandleGetProduct returns a single product with its images and category.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	const tag = "PRODUCT_GET"
	storeID, productID := c.Params("storeId"), c.Params("productId")
	if storeID == "" {
		return c.Status(fiber.StatusBadRequest).SendString(msgStoreRequired)
	}
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).SendString(productMessages["productId"])
	}

	product, err := h.service.GetProduct(c.UserContext(), storeID, productID)
	if err != nil {
		return respondError(c, tag, err, msgProductNotFound)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a product and its images in a store owned by
// the caller.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	const tag = "PRODUCTS_POST"
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, tag, err)
	}
	req.StoreID = c.Params("storeId")

	if err := h.validate.Struct(req); err != nil {
		return respondInvalid(c, tag, err, productMessages)
	}

	product, err := h.service.CreateProduct(c.UserContext(), middleware.UserID(c), req.StoreID, req.input())
	if err != nil {
		return respondError(c, tag, err, msgProductNotFound)
	}
	return c.JSON(product)
}

// HandleUpdateProduct overwrites a product and replaces its images.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	const tag = "PRODUCT_PATCH"
	var req UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, tag, err)
	}
	req.StoreID = c.Params("storeId")
	req.ProductID = c.Params("productId")

	if err := h.validate.Struct(req); err != nil {
		return respondInvalid(c, tag, err, productMessages)
	}

	product, err := h.service.UpdateProduct(c.UserContext(), middleware.UserID(c), req.StoreID, req.ProductID, req.input())
	if err != nil {
		return respondError(c, tag, err, msgProductNotFound)
	}
	return c.JSON(product)
}

// HandleDeleteProduct removes a product and its images.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	const tag = "PRODUCT_DELETE"
	storeID, productID := c.Params("storeId"), c.Params("productId")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).SendString(productMessages["productId"])
	}
	if storeID == "" {
		return c.Status(fiber.StatusBadRequest).SendString(msgStoreRequired)
	}

	product, err := h.service.DeleteProduct(c.UserContext(), middleware.UserID(c), storeID, productID)
	if err != nil {
		return respondError(c, tag, err, msgProductNotFound)
	}
	return c.JSON(product)
}
