package handlers

import (
	"toko-admin/internal/middleware"
	"toko-admin/internal/services"
	"toko-admin/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// StoreHandler handles HTTP requests for the caller's stores.
type StoreHandler struct {
	service  *services.StoreService
	validate *validator.Validate
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(service *services.StoreService) *StoreHandler {
	return &StoreHandler{
		service:  service,
		validate: validation.New(),
	}
}

// RegisterRoutes registers the store routes. Both need auth.
func (h *StoreHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	storeRoutes := router.Group("/stores", auth)
	storeRoutes.Get("/", h.HandleGetStores)
	storeRoutes.Post("/", h.HandleCreateStore)
}

// HandleGetStores lists the stores owned by the caller.
func (h *StoreHandler) HandleGetStores(c *fiber.Ctx) error {
	stores, err := h.service.ListStores(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, "STORES_GET", err, msgStoreNotFound)
	}
	return c.JSON(stores)
}

// HandleCreateStore creates a store owned by the caller.
func (h *StoreHandler) HandleCreateStore(c *fiber.Ctx) error {
	const tag = "STORES_POST"
	var req StoreRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, tag, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondInvalid(c, tag, err, storeMessages)
	}

	store, err := h.service.CreateStore(c.UserContext(), middleware.UserID(c), req.Name)
	if err != nil {
		return respondError(c, tag, err, msgStoreNotFound)
	}
	return c.JSON(store)
}
