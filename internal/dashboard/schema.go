package dashboard

import (
	"sync"

	"toko-admin/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func formValidator() *validator.Validate {
	validateOnce.Do(func() { validate = validation.New() })
	return validate
}

// CategoryFormValues is the draft of the category form.
type CategoryFormValues struct {
	Name     string `json:"name" validate:"min=2"`
	BannerID string `json:"bannerId" validate:"min=1"`
}

// ImageValue is one uploaded image of a product draft.
type ImageValue struct {
	URL string `json:"url"`
}

// ProductFormValues is the draft of the product form.
type ProductFormValues struct {
	Name       string          `json:"name" validate:"min=6"`
	Images     []ImageValue    `json:"images"`
	Price      decimal.Decimal `json:"price" validate:"gte=1,price"`
	CategoryID string          `json:"categoryId" validate:"min=1"`
	IsFeatured bool            `json:"isFeatured"`
	IsArchived bool            `json:"isArchived"`
}

// collect runs the struct rules and, when refs is not empty, checks that
// ref is one of them. Violations keep declaration order.
func collect(values interface{}, refField, ref string, refs []string) []validation.FieldError {
	fields := validation.Fields(formValidator().Struct(values))
	if len(refs) == 0 || ref == "" {
		return fields
	}
	for _, id := range refs {
		if id == ref {
			return fields
		}
	}
	return append(fields, validation.FieldError{Field: refField, Tag: "oneof"})
}
