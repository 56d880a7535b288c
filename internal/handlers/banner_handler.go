package handlers

import (
	"toko-admin/internal/middleware"
	"toko-admin/internal/services"
	"toko-admin/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const msgBannerNotFound = "Banner Tidak Ditemukan"

// BannerHandler handles HTTP requests for the banners of a store.
type BannerHandler struct {
	service  *services.BannerService
	validate *validator.Validate
}

// NewBannerHandler creates a new BannerHandler.
func NewBannerHandler(service *services.BannerService) *BannerHandler {
	return &BannerHandler{
		service:  service,
		validate: validation.New(),
	}
}

// RegisterRoutes registers the banner routes. Reads are public, writes go
// through auth.
func (h *BannerHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	bannerRoutes := router.Group("/:storeId/banners")
	bannerRoutes.Get("/", h.HandleGetBanners)
	bannerRoutes.Post("/", auth, h.HandleCreateBanner)
	bannerRoutes.Get("/:bannerId", h.HandleGetBanner)
	bannerRoutes.Patch("/:bannerId", auth, h.HandleUpdateBanner)
	bannerRoutes.Delete("/:bannerId", auth, h.HandleDeleteBanner)
}

// HandleGetBanners lists the banners of a store.
func (h *BannerHandler) HandleGetBanners(c *fiber.Ctx) error {
	const tag = "BANNERS_GET"
	storeID := c.Params("storeId")
	if storeID == "" {
		return c.Status(fiber.StatusBadRequest).SendString(msgStoreRequired)
	}

	banners, err := h.service.ListBanners(c.UserContext(), storeID)
	if err != nil {
		return respondError(c, tag, err, msgBannerNotFound)
	}
	return c.JSON(banners)
}

// HandleGetBanner returns a single banner.
func (h *BannerHandler) HandleGetBanner(c *fiber.Ctx) error {
	const tag = "BANNER_GET"
	storeID, bannerID := c.Params("storeId"), c.Params("bannerId")
	if storeID == "" {
		return c.Status(fiber.StatusBadRequest).SendString(msgStoreRequired)
	}
	if bannerID == "" {
		return c.Status(fiber.StatusBadRequest).SendString(bannerMessages["bannerId"])
	}

	banner, err := h.service.GetBanner(c.UserContext(), storeID, bannerID)
	if err != nil {
		return respondError(c, tag, err, msgBannerNotFound)
	}
	return c.JSON(banner)
}

// HandleCreateBanner creates a banner in a store owned by the caller.
func (h *BannerHandler) HandleCreateBanner(c *fiber.Ctx) error {
	const tag = "BANNERS_POST"
	var req BannerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, tag, err)
	}
	req.StoreID = c.Params("storeId")

	if err := h.validate.Struct(req); err != nil {
		return respondInvalid(c, tag, err, bannerMessages)
	}

	banner, err := h.service.CreateBanner(c.UserContext(), middleware.UserID(c), req.StoreID, req.input())
	if err != nil {
		return respondError(c, tag, err, msgBannerNotFound)
	}
	return c.JSON(banner)
}

// HandleUpdateBanner overwrites a banner in a store owned by the caller.
func (h *BannerHandler) HandleUpdateBanner(c *fiber.Ctx) error {
	const tag = "BANNER_PATCH"
	var req UpdateBannerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, tag, err)
	}
	req.StoreID = c.Params("storeId")
	req.BannerID = c.Params("bannerId")

	if err := h.validate.Struct(req); err != nil {
		return respondInvalid(c, tag, err, bannerMessages)
	}

	banner, err := h.service.UpdateBanner(c.UserContext(), middleware.UserID(c), req.StoreID, req.BannerID, req.input())
	if err != nil {
		return respondError(c, tag, err, msgBannerNotFound)
	}
	return c.JSON(banner)
}

// HandleDeleteBanner removes a banner from a store owned by the caller.
func (h *BannerHandler) HandleDeleteBanner(c *fiber.Ctx) error {
	const tag = "BANNER_DELETE"
	storeID, bannerID := c.Params("storeId"), c.Params("bannerId")
	if bannerID == "" {
		return c.Status(fiber.StatusBadRequest).SendString(bannerMessages["bannerId"])
	}
	if storeID == "" {
		return c.Status(fiber.StatusBadRequest).SendString(msgStoreRequired)
	}

	banner, err := h.service.DeleteBanner(c.UserContext(), middleware.UserID(c), storeID, bannerID)
	if err != nil {
		return respondError(c, tag, err, msgBannerNotFound)
	}
	return c.JSON(banner)
}
