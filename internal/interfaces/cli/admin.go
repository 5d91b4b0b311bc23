package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	adminapp "github.com/shopverse/storefront/internal/application/admin"
)

func newAdminCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administer the inventory working copy",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Rehydrate first so a persisted admin session passes the gate.
			if err := app.Sessions.Rehydrate(cmd.Context()); err != nil {
				return err
			}
			return app.Gate.RequireAdmin()
		},
	}

	cmd.AddCommand(
		newAdminStatsCommand(app),
		newAdminListCommand(app),
		newAdminAddCommand(app),
		newAdminUpdateCommand(app),
		newAdminDeleteCommand(app),
	)
	return cmd
}

func newAdminStatsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show inventory dashboard statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := app.NewInventory().Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "Total products: %d\n", stats.TotalProducts)
			fmt.Fprintf(cmd.OutOrStdout(), "Total value:    $%s\n", stats.TotalValue.StringFixed(2))
			fmt.Fprintf(cmd.OutOrStdout(), "Avg rating:     %.1f\n", stats.AverageRating)
			fmt.Fprintf(cmd.OutOrStdout(), "Low stock:      %d\n", stats.LowStock)
			return nil
		},
	}
}

func newAdminListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the inventory working copy",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK\tRATING\tREVIEWS")
			for _, p := range app.NewInventory().Products() {
				fmt.Fprintf(w, "%d\t%s\t%s\t$%s\t%d\t%.1f\t%d\n",
					p.ID, p.Name, p.Category, p.Price.StringFixed(2), p.Stock, p.Rating, p.Reviews)
			}
			return w.Flush()
		},
	}
}

func productInputFlags(cmd *cobra.Command, input *adminapp.ProductInput) {
	cmd.Flags().StringVar(&input.Name, "name", "", "product name")
	cmd.Flags().StringVar(&input.Description, "description", "", "product description")
	cmd.Flags().Float64Var(&input.Price, "price", 0, "unit price")
	cmd.Flags().StringVar(&input.Category, "category", "", "category label")
	cmd.Flags().IntVar(&input.Stock, "stock", 0, "units in stock")
	cmd.Flags().Float64Var(&input.Rating, "rating", 0, "rating from 0 to 5")
}

func printValidationFailure(cmd *cobra.Command, err error) bool {
	validationErr, ok := err.(*adminapp.ValidationError)
	if !ok {
		return false
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Validation failed:")
	for _, d := range validationErr.Details {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", d.Field, d.Message)
	}
	return true
}

func newAdminAddCommand(app *App) *cobra.Command {
	var input adminapp.ProductInput
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product to the working copy",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := app.NewInventory().Create(input)
			if err != nil {
				if printValidationFailure(cmd, err) {
					return nil
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created product %d\n", created.ID)
			return nil
		},
	}
	productInputFlags(cmd, &input)
	return cmd
}

func newAdminUpdateCommand(app *App) *cobra.Command {
	var input adminapp.ProductInput
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a working-copy product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			updated, err := app.NewInventory().Update(id, input)
			if err != nil {
				if printValidationFailure(cmd, err) {
					return nil
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated product %d\n", updated.ID)
			return nil
		},
	}
	productInputFlags(cmd, &input)
	return cmd
}

func newAdminDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a working-copy product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			if app.NewInventory().Delete(id) {
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted product %d\n", id)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "No product with id %d\n", id)
			}
			return nil
		},
	}
}
