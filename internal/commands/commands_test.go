package commands

import (
	"bytes"
	"context"
	"io"
	"net"
	"testing"

	"toko-admin/internal/app"
	"toko-admin/internal/config"
	"toko-admin/internal/dashboard"
	"toko-admin/internal/database"
	"toko-admin/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	logrus.SetOutput(io.Discard)
	return out.String(), err
}

func TestMigrateUsesFlags(t *testing.T) {
	_, err := execute(t,
		"--log-level", "warn",
		"migrate",
		"--db-driver", "sqlite",
		"--dsn", database.MemoryDSN("commands_migrate"),
	)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, database.MemoryDSN("commands_migrate"), cfg.DatabaseDSN)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestMigrateRejectsUnknownDriver(t *testing.T) {
	_, err := execute(t, "migrate", "--db-driver", "oracle", "--dsn", "x")
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestDashboardCommandsAgainstServer(t *testing.T) {
	logrus.SetOutput(io.Discard)
	db, err := database.Open("sqlite", database.MemoryDSN("commands_dashboard"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	api := app.New(db, app.Options{JWTSecret: "commands-secret"})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = api.Listener(ln) }()
	t.Cleanup(func() { _ = api.Shutdown() })
	baseURL := "http://" + ln.Addr().String()

	ctx := context.Background()
	public := dashboard.NewClient(baseURL, "")
	require.NoError(t, public.Post(ctx, "/api/auth/register", map[string]string{
		"username": "owner", "email": "owner@example.com", "password": "password123",
	}))

	out, err := execute(t, "--api-url", baseURL, "login", "--username", "owner", "--password", "password123")
	require.NoError(t, err)
	token := string(bytes.TrimSpace([]byte(out)))
	require.NotEmpty(t, token)

	client := dashboard.NewClient(baseURL, token)
	require.NoError(t, client.Post(ctx, "/api/stores", map[string]string{"name": "Toko"}))
	var stores []models.Store
	require.NoError(t, client.Get(ctx, "/api/stores", &stores))
	require.Len(t, stores, 1)
	storeID := stores[0].ID
	require.NoError(t, client.Post(ctx, "/api/"+storeID+"/banners", map[string]string{
		"label": "Summer", "imageUrl": "http://x/s.png",
	}))
	var banners []models.Banner
	require.NoError(t, client.Get(ctx, "/api/"+storeID+"/banners", &banners))
	require.Len(t, banners, 1)

	out, err = execute(t, "--api-url", baseURL, "--token", token,
		"category", "save", "--store", storeID, "--name", "S", "--banner-id", banners[0].ID)
	assert.Error(t, err)
	assert.Contains(t, out, "name: terlalu pendek")

	out, err = execute(t, "--api-url", baseURL, "--token", token,
		"category", "save", "--store", storeID, "--name", "Sepatu", "--banner-id", banners[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Create Category")
	assert.Contains(t, out, "Category berhasil dibuat")
	assert.Contains(t, out, "Sepatu")

	var categories []models.Category
	require.NoError(t, client.Get(ctx, "/api/"+storeID+"/categories", &categories))
	require.Len(t, categories, 1)

	out, err = execute(t, "--api-url", baseURL, "--token", token,
		"product", "save", "--store", storeID, "--name", "Sepatu Lari", "--price", "150000",
		"--category-id", categories[0].ID, "--image", "http://x/1.png", "--featured")
	require.NoError(t, err)
	assert.Contains(t, out, "Product berhasil dibuat")

	var products []models.Product
	require.NoError(t, client.Get(ctx, "/api/"+storeID+"/products", &products))
	require.Len(t, products, 1)
	assert.True(t, products[0].IsFeatured)

	out, err = execute(t, "--api-url", baseURL, "--token", token,
		"product", "delete", "--store", storeID, "--id", products[0].ID, "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Berhasil menghapus product")
}

func TestServeRefusesWeakJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	dsn := database.MemoryDSN("commands_serve")

	_, err := execute(t, "serve", "--db-driver", "sqlite", "--dsn", dsn)
	assert.ErrorIs(t, err, config.ErrWeakJWTSecret)

	_, err = execute(t, "serve", "--db-driver", "sqlite", "--dsn", dsn, "--jwt-secret", "change-me")
	assert.ErrorIs(t, err, config.ErrWeakJWTSecret)
}
