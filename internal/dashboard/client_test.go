package dashboard_test

import (
	"context"
	"io"
	"net"
	"testing"

	"toko-admin/internal/app"
	"toko-admin/internal/dashboard"
	"toko-admin/internal/database"
	"toko-admin/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNavigator struct {
	refreshed int
	pushed    []string
}

func (n *recordingNavigator) Refresh(context.Context) { n.refreshed++ }

func (n *recordingNavigator) Push(_ context.Context, path string) { n.pushed = append(n.pushed, path) }

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) { n.successes = append(n.successes, message) }

func (n *recordingNotifier) Error(message string) { n.errors = append(n.errors, message) }

type autoConfirm bool

func (a autoConfirm) Confirm(context.Context, string, string) (bool, error) { return bool(a), nil }

// startServer serves the API on a random local port and returns its URL.
func startServer(t *testing.T) string {
	t.Helper()
	logrus.SetOutput(io.Discard)

	db, err := database.Open("sqlite", database.MemoryDSN("dashboard_"+t.Name()))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	api := app.New(db, app.Options{JWTSecret: "dashboard-secret"})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = api.Listener(ln) }()
	t.Cleanup(func() { _ = api.Shutdown() })

	return "http://" + ln.Addr().String()
}

func TestFormsAgainstServer(t *testing.T) {
	baseURL := startServer(t)
	ctx := context.Background()

	public := dashboard.NewClient(baseURL, "")
	require.NoError(t, public.Post(ctx, "/api/auth/register", map[string]string{
		"username": "owner",
		"email":    "owner@example.com",
		"password": "password123",
	}))
	token, err := public.Login(ctx, "owner", "password123")
	require.NoError(t, err)

	client := dashboard.NewClient(baseURL, token)
	require.NoError(t, client.Post(ctx, "/api/stores", map[string]string{"name": "Toko Sepatu"}))
	var stores []models.Store
	require.NoError(t, client.Get(ctx, "/api/stores", &stores))
	require.Len(t, stores, 1)
	storeID := stores[0].ID

	require.NoError(t, client.Post(ctx, "/api/"+storeID+"/banners", map[string]string{
		"label": "Summer", "imageUrl": "http://x/summer.png",
	}))
	var banners []models.Banner
	require.NoError(t, client.Get(ctx, "/api/"+storeID+"/banners", &banners))
	require.Len(t, banners, 1)

	nav := &recordingNavigator{}
	notify := &recordingNotifier{}
	deps := dashboard.Deps{API: client, Navigator: nav, Notifier: notify, Confirmer: autoConfirm(true)}

	categoryForm := dashboard.NewCategoryForm(storeID, nil, banners, deps)
	categoryForm.SetDraft(dashboard.CategoryFormValues{Name: "Sepatu", BannerID: banners[0].ID})
	require.NoError(t, categoryForm.Submit(ctx))
	assert.Equal(t, []string{"/" + storeID + "/categories"}, nav.pushed)
	assert.Equal(t, []string{"Category berhasil dibuat"}, notify.successes)

	var categories []models.Category
	require.NoError(t, client.Get(ctx, "/api/"+storeID+"/categories", &categories))
	require.Len(t, categories, 1)

	productForm := dashboard.NewProductForm(storeID, nil, categories, deps)
	productForm.SetDraft(dashboard.ProductFormValues{
		Name:       "Sepatu Lari",
		Price:      decimal.RequireFromString("150000.50"),
		CategoryID: categories[0].ID,
		Images:     []dashboard.ImageValue{{URL: "http://x/1.png"}},
		IsFeatured: true,
	})
	require.NoError(t, productForm.Submit(ctx))

	var products []models.Product
	require.NoError(t, public.Get(ctx, "/api/"+storeID+"/products?isFeatured=true", &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Sepatu Lari", products[0].Name)
	assert.Equal(t, "150000.50", products[0].Price.StringFixed(2))

	productID := products[0].ID
	edit := dashboard.NewProductForm(storeID, &products[0], categories, deps)
	draft := edit.Draft()
	draft.IsArchived = true
	edit.SetDraft(draft)
	require.NoError(t, edit.Submit(ctx))
	assert.Contains(t, notify.successes, "Product berhasil diedit")

	products = nil
	require.NoError(t, public.Get(ctx, "/api/"+storeID+"/products", &products))
	assert.Empty(t, products)

	require.NoError(t, edit.Delete(ctx))
	assert.Contains(t, notify.successes, "Berhasil menghapus product")

	err = public.Get(ctx, "/api/"+storeID+"/products/"+productID, nil)
	var statusErr *dashboard.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 404, statusErr.Code)
	assert.Equal(t, "Product Tidak Ditemukan", statusErr.Body)
	assert.Empty(t, notify.errors)
}

func TestFormFailureWithoutToken(t *testing.T) {
	baseURL := startServer(t)
	ctx := context.Background()

	nav := &recordingNavigator{}
	notify := &recordingNotifier{}
	deps := dashboard.Deps{
		API:       dashboard.NewClient(baseURL, ""),
		Navigator: nav,
		Notifier:  notify,
		Confirmer: autoConfirm(true),
	}

	form := dashboard.NewCategoryForm("store1", nil, nil, deps)
	draft := dashboard.CategoryFormValues{Name: "Sepatu", BannerID: "b1"}
	form.SetDraft(draft)

	err := form.Submit(ctx)
	var statusErr *dashboard.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 401, statusErr.Code)
	assert.Equal(t, []string{"Gagal mengubah data toko"}, notify.errors)
	assert.Empty(t, nav.pushed)
	assert.Equal(t, draft, form.Draft())
}
