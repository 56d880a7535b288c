package commands

import (
	"fmt"

	"toko-admin/internal/dashboard"
	"toko-admin/internal/models"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	productSaveFlags   storeFlags
	productDeleteFlags storeFlags
	productName        string
	productPrice       string
	productCategoryID  string
	productImages      []string
	productFeatured    bool
	productArchived    bool
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage the products of a store",
}

var productSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Create or edit a product",
	Long: `Create a product, or edit one when --id is given. Flags left out
keep the current values of the edited product. --image replaces every
image and keeps the order given. --price takes at most two decimal
places and at most 99999999.99.

The product list printed afterwards is the public one, so an archived
product does not appear in it. Use --id to keep editing it.

Examples:
  toko product save --store STORE --name "Sepatu Lari" --price 150000 \
    --category-id CATEGORY --image https://cdn/x.png --featured
  toko product save --store STORE --id PRODUCT --archived`,
	RunE: runProductSave,
}

var productDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a product and its images",
	RunE:  runProductDelete,
}

func init() {
	rootCmd.AddCommand(productCmd)
	productCmd.AddCommand(productSaveCmd, productDeleteCmd)

	productSaveFlags.register(productSaveCmd, false)
	flags := productSaveCmd.Flags()
	flags.StringVar(&productName, "name", "", "Product name")
	flags.StringVar(&productPrice, "price", "", "Price, e.g. 150000 or 99.95")
	flags.StringVar(&productCategoryID, "category-id", "", "Category of the product")
	flags.StringArrayVar(&productImages, "image", nil, "Image URL; repeat for several images")
	flags.BoolVar(&productFeatured, "featured", false, "Show the product in featured listings")
	flags.BoolVar(&productArchived, "archived", false, "Hide the product from listings")

	productDeleteFlags.register(productDeleteCmd, true)
}

func newProductForm(cmd *cobra.Command, flags storeFlags) (*dashboard.Form[dashboard.ProductFormValues], error) {
	client := newAPIClient()
	var initial *models.Product
	if flags.entityID != "" {
		var product models.Product
		if err := client.Get(cmd.Context(), "/api/"+flags.storeID+"/products/"+flags.entityID, &product); err != nil {
			return nil, err
		}
		initial = &product
	}
	var categories []models.Category
	if err := client.Get(cmd.Context(), "/api/"+flags.storeID+"/categories", &categories); err != nil {
		return nil, err
	}
	return dashboard.NewProductForm(flags.storeID, initial, categories, newDeps(client, cmd.OutOrStdout(), flags.assumeYes)), nil
}

func runProductSave(cmd *cobra.Command, args []string) error {
	form, err := newProductForm(cmd, productSaveFlags)
	if err != nil {
		return err
	}
	printHeading(cmd.OutOrStdout(), form)

	draft := form.Draft()
	changed := cmd.Flags().Changed
	if changed("name") {
		draft.Name = productName
	}
	if changed("price") {
		price, err := decimal.NewFromString(productPrice)
		if err != nil {
			return fmt.Errorf("invalid --price %q: %w", productPrice, err)
		}
		draft.Price = price
	}
	if changed("category-id") {
		draft.CategoryID = productCategoryID
	}
	if changed("image") {
		draft.Images = make([]dashboard.ImageValue, 0, len(productImages))
		for _, url := range productImages {
			draft.Images = append(draft.Images, dashboard.ImageValue{URL: url})
		}
	}
	if changed("featured") {
		draft.IsFeatured = productFeatured
	}
	if changed("archived") {
		draft.IsArchived = productArchived
	}
	form.SetDraft(draft)

	return reportInvalid(cmd.OutOrStdout(), form.Submit(cmd.Context()))
}

func runProductDelete(cmd *cobra.Command, args []string) error {
	form, err := newProductForm(cmd, productDeleteFlags)
	if err != nil {
		return err
	}
	return form.Delete(cmd.Context())
}
