package handlers

import (
	"toko-admin/internal/middleware"
	"toko-admin/internal/services"
	"toko-admin/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const msgCategoryNotFound = "Kategori Tidak Ditemukan"

// CategoryHandler handles HTTP requests for the categories of a store.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validation.New(),
	}
}

// RegisterRoutes registers the category routes. Reads are public, writes go
// through auth.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	categoryRoutes := router.Group("/:storeId/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Post("/", auth, h.HandleCreateCategory)
	categoryRoutes.Get("/:categoryId", h.HandleGetCategory)
	categoryRoutes.Patch("/:categoryId", auth, h.HandleUpdateCategory)
	categoryRoutes.Delete("/:categoryId", auth, h.HandleDeleteCategory)
}

// HandleGetCategories lists the categories of a store with their banner.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	const tag = "CATEGORIES_GET"
	storeID := c.Params("storeId")
	if storeID == "" {
		return c.Status(fiber.StatusBadRequest).SendString(msgStoreRequired)
	}

	categories, err := h.service.ListCategories(c.UserContext(), storeID)
	if err != nil {
		return respondError(c, tag, err, msgCategoryNotFound)
	}
	return c.JSON(categories)
}

// HandleGetCategory returns a single category with its banner.
func (h *CategoryHandler) HandleGetCategory(c *fiber.Ctx) error {
	const tag = "CATEGORY_GET"
	storeID, categoryID := c.Params("storeId"), c.Params("categoryId")
	if storeID == "" {
		return c.Status(fiber.StatusBadRequest).SendString(msgStoreRequired)
	}
	if categoryID == "" {
		return c.Status(fiber.StatusBadRequest).SendString(categoryMessages["categoryId"])
	}

	category, err := h.service.GetCategory(c.UserContext(), storeID, categoryID)
	if err != nil {
		return respondError(c, tag, err, msgCategoryNotFound)
	}
	return c.JSON(category)
}

// HandleCreateCategory creates a category in a store owned by the caller.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	const tag = "CATEGORIES_POST"
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, tag, err)
	}
	req.StoreID = c.Params("storeId")

	if err := h.validate.Struct(req); err != nil {
		return respondInvalid(c, tag, err, categoryMessages)
	}

	category, err := h.service.CreateCategory(c.UserContext(), middleware.UserID(c), req.StoreID, req.input())
	if err != nil {
		return respondError(c, tag, err, msgCategoryNotFound)
	}
	return c.JSON(category)
}

// HandleUpdateCategory overwrites a category in a store owned by the caller.
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	const tag = "CATEGORY_PATCH"
	var req UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, tag, err)
	}
	req.StoreID = c.Params("storeId")
	req.CategoryID = c.Params("categoryId")

	if err := h.validate.Struct(req); err != nil {
		return respondInvalid(c, tag, err, categoryMessages)
	}

	category, err := h.service.UpdateCategory(c.UserContext(), middleware.UserID(c), req.StoreID, req.CategoryID, req.input())
	if err != nil {
		return respondError(c, tag, err, msgCategoryNotFound)
	}
	return c.JSON(category)
}

// HandleDeleteCategory removes a category from a store owned by the caller.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	const tag = "CATEGORY_DELETE"
	storeID, categoryID := c.Params("storeId"), c.Params("categoryId")
	if categoryID == "" {
		return c.Status(fiber.StatusBadRequest).SendString(categoryMessages["categoryId"])
	}
	if storeID == "" {
		return c.Status(fiber.StatusBadRequest).SendString(msgStoreRequired)
	}

	category, err := h.service.DeleteCategory(c.UserContext(), middleware.UserID(c), storeID, categoryID)
	if err != nil {
		return respondError(c, tag, err, msgCategoryNotFound)
	}
	return c.JSON(category)
}
