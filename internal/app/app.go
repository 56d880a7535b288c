// Package app assembles the HTTP API: repositories, services, handlers and
// the middleware stack around them.
package app

import (
	"time"

	"toko-admin/internal/handlers"
	"toko-admin/internal/middleware"
	"toko-admin/internal/repositories"
	"toko-admin/internal/services"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// Options configures New.
type Options struct {
	JWTSecret string
	// Publisher receives domain events. Nil disables publishing.
	Publisher services.EventPublisher
	// AccessLog enables the request logger middleware.
	AccessLog bool
}

// New builds the Fiber application on top of db.
func New(db *gorm.DB, opts Options) *fiber.App {
	userRepo := repositories.NewGORMUserRepository(db)
	storeRepo := repositories.NewGORMStoreRepository(db)
	bannerRepo := repositories.NewGORMBannerRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	authService := services.NewAuthService(userRepo, opts.JWTSecret)
	storeService := services.NewStoreService(storeRepo)
	bannerService := services.NewBannerService(storeService, bannerRepo, opts.Publisher)
	categoryService := services.NewCategoryService(storeService, categoryRepo, bannerRepo, opts.Publisher)
	productService := services.NewProductService(storeService, productRepo, categoryRepo, opts.Publisher)

	app := fiber.New(fiber.Config{
		AppName:      "toko-admin",
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(logger.New())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	auth := middleware.AuthRequired(authService)
	api := app.Group("/api")

	handlers.NewAuthHandler(authService).RegisterRoutes(api)
	handlers.NewStoreHandler(storeService).RegisterRoutes(api, auth)
	handlers.NewBannerHandler(bannerService).RegisterRoutes(api, auth)
	handlers.NewCategoryHandler(categoryService).RegisterRoutes(api, auth)
	handlers.NewProductHandler(productService).RegisterRoutes(api, auth)

	return app
}
