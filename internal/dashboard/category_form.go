package dashboard

import (
	"toko-admin/internal/models"
	"toko-admin/internal/validation"
)

var categoryResource = Resource{
	Name:    "Category",
	Path:    "categories",
	Created: "Category berhasil dibuat",
	Updated: "Category berhasil diedit",
	Deleted: "Berhasil menghapus kategori",
}

// NewCategoryForm returns the category form of a store. A nil initial
// opens it in create mode. banners are the choices for bannerId.
func NewCategoryForm(storeID string, initial *models.Category, banners []models.Banner, deps Deps) *Form[CategoryFormValues] {
	var (
		draft    CategoryFormValues
		entityID string
	)
	if initial != nil {
		draft = CategoryFormValues{Name: initial.Name, BannerID: initial.BannerID}
		entityID = initial.ID
	}

	ids := make([]string, 0, len(banners))
	for _, b := range banners {
		ids = append(ids, b.ID)
	}
	validate := func(v CategoryFormValues) []validation.FieldError {
		return collect(v, "bannerId", v.BannerID, ids)
	}
	return newForm(categoryResource, storeID, entityID, draft, validate, deps)
}
