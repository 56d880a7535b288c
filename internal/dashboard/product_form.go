package dashboard

import (
	"toko-admin/internal/models"
	"toko-admin/internal/validation"
)

var productResource = Resource{
	Name:    "Product",
	Path:    "products",
	Created: "Product berhasil dibuat",
	Updated: "Product berhasil diedit",
	Deleted: "Berhasil menghapus product",
}

// NewProductForm returns the product form of a store. A nil initial opens
// it in create mode with an empty, non-featured, non-archived draft.
// categories are the choices for categoryId.
func NewProductForm(storeID string, initial *models.Product, categories []models.Category, deps Deps) *Form[ProductFormValues] {
	draft := ProductFormValues{Images: []ImageValue{}}
	var entityID string
	if initial != nil {
		draft = ProductFormValues{
			Name:       initial.Name,
			Images:     make([]ImageValue, 0, len(initial.Images)),
			Price:      initial.Price,
			CategoryID: initial.CategoryID,
			IsFeatured: initial.IsFeatured,
			IsArchived: initial.IsArchived,
		}
		for _, img := range initial.Images {
			draft.Images = append(draft.Images, ImageValue{URL: img.URL})
		}
		entityID = initial.ID
	}

	ids := make([]string, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}
	validate := func(v ProductFormValues) []validation.FieldError {
		return collect(v, "categoryId", v.CategoryID, ids)
	}
	return newForm(productResource, storeID, entityID, draft, validate, deps)
}
