package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comfort-hq/digital-catalogue/internal/catalog"
	"github.com/comfort-hq/digital-catalogue/internal/model"
)

// NewProductsCommand creates the products command group
func NewProductsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Query the product catalogue",
	}
	cmd.AddCommand(newProductsListCommand(rootOpts))
	cmd.AddCommand(newProductsSearchCommand(rootOpts))
	return cmd
}

func newProductsListCommand(rootOpts *RootOptions) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products, optionally of one category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := model.Category(category)
			if category != "" && !filter.IsValid() {
				return &commandError{fmt.Errorf("unknown category %q: must be one of %v", category, model.CategoryLabels())}
			}

			products, err := rootOpts.client().List(cmd.Context())
			if err != nil {
				return err
			}
			if category != "" {
				products = catalog.ByCategory(products, filter)
			}
			return writeProducts(cmd.OutOrStdout(), rootOpts.Format, products)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only products of this category")
	return cmd
}

func newProductsSearchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Search products by name or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := rootOpts.client().List(cmd.Context())
			if err != nil {
				return err
			}
			return writeProducts(cmd.OutOrStdout(), rootOpts.Format, catalog.Search(products, args[0]))
		},
	}
}
