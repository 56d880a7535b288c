package commands

import (
	"toko-admin/internal/dashboard"
	"toko-admin/internal/models"

	"github.com/spf13/cobra"
)

var (
	categorySaveFlags   storeFlags
	categoryDeleteFlags storeFlags
	categoryName        string
	categoryBannerID    string
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage the categories of a store",
}

var categorySaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Create or edit a category",
	Long: `Create a category, or edit one when --id is given. Flags left out
keep the current values of the edited category.

Examples:
  toko category save --store STORE --name Sepatu --banner-id BANNER
  toko category save --store STORE --id CATEGORY --name Sneakers`,
	RunE: runCategorySave,
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a category",
	Long:  "Delete a category. A category still used by a product, archived or not, is kept.",
	RunE:  runCategoryDelete,
}

func init() {
	rootCmd.AddCommand(categoryCmd)
	categoryCmd.AddCommand(categorySaveCmd, categoryDeleteCmd)

	categorySaveFlags.register(categorySaveCmd, false)
	categorySaveCmd.Flags().StringVar(&categoryName, "name", "", "Category name")
	categorySaveCmd.Flags().StringVar(&categoryBannerID, "banner-id", "", "Banner shown for the category")

	categoryDeleteFlags.register(categoryDeleteCmd, true)
}

func loadCategory(cmd *cobra.Command, client *dashboard.Client, storeID, id string) (*models.Category, error) {
	if id == "" {
		return nil, nil
	}
	var category models.Category
	if err := client.Get(cmd.Context(), "/api/"+storeID+"/categories/"+id, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func newCategoryForm(cmd *cobra.Command, flags storeFlags) (*dashboard.Form[dashboard.CategoryFormValues], error) {
	client := newAPIClient()
	initial, err := loadCategory(cmd, client, flags.storeID, flags.entityID)
	if err != nil {
		return nil, err
	}
	var banners []models.Banner
	if err := client.Get(cmd.Context(), "/api/"+flags.storeID+"/banners", &banners); err != nil {
		return nil, err
	}
	return dashboard.NewCategoryForm(flags.storeID, initial, banners, newDeps(client, cmd.OutOrStdout(), flags.assumeYes)), nil
}

func runCategorySave(cmd *cobra.Command, args []string) error {
	form, err := newCategoryForm(cmd, categorySaveFlags)
	if err != nil {
		return err
	}
	printHeading(cmd.OutOrStdout(), form)

	draft := form.Draft()
	if cmd.Flags().Changed("name") {
		draft.Name = categoryName
	}
	if cmd.Flags().Changed("banner-id") {
		draft.BannerID = categoryBannerID
	}
	form.SetDraft(draft)

	return reportInvalid(cmd.OutOrStdout(), form.Submit(cmd.Context()))
}

func runCategoryDelete(cmd *cobra.Command, args []string) error {
	form, err := newCategoryForm(cmd, categoryDeleteFlags)
	if err != nil {
		return err
	}
	return form.Delete(cmd.Context())
}
