package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shopverse/storefront/internal/domain/catalog"
)

func newBrowseCommand(app *App) *cobra.Command {
	var (
		search   string
		category string
		sortMode string
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "List catalog products with optional search, category, and sort",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := catalog.Filter{
				Search:   search,
				Category: category,
				Sort:     catalog.SortMode(sortMode),
			}
			products := app.Browse.Search(filter)

			if len(products) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No products found")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK\tRATING")
			for _, p := range products {
				fmt.Fprintf(w, "%d\t%s\t%s\t$%s\t%d\t%.1f\n",
					p.ID, p.Name, p.Category, p.Price.StringFixed(2), p.Stock, p.Rating)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if search != "" || (category != "" && category != catalog.CategoryAll) {
				fmt.Fprintf(cmd.OutOrStdout(), "Found %d products\n", len(products))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "case-insensitive text to match against name, description, and category")
	cmd.Flags().StringVar(&category, "category", catalog.CategoryAll, "category to filter by")
	cmd.Flags().StringVar(&sortMode, "sort", string(catalog.SortDefault),
		"sort mode: default, price-asc, price-desc, rating-desc, name-asc")
	return cmd
}

func newCategoriesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the catalog categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(app.Browse.Categories(), "\n"))
			return nil
		},
	}
}
