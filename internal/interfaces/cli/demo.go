package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// The cart lives and dies with the process, so the demo walks one scripted
// shopping trip end to end: browse, fill the cart, and price the order.
func newDemoCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted cart walkthrough",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			products := app.Browse.Products()
			if len(products) < 2 {
				fmt.Fprintln(out, "Catalog too small for the demo")
				return nil
			}

			app.Cart.AddToCart(products[len(products)-1])
			app.Cart.AddToCart(products[len(products)-1])
			app.Cart.AddToCart(products[1])
			app.Cart.UpdateQuantity(products[1].ID, 2)
			app.Cart.RemoveFromCart(products[len(products)-1].ID)
			app.Cart.AddToCart(products[0])

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Cart:")
			for _, line := range app.Cart.Items() {
				fmt.Fprintf(out, "  %dx %s @ $%s = $%s\n",
					line.Quantity, line.Name, line.Price.StringFixed(2), line.Total().StringFixed(2))
			}

			summary := app.Pricing.Summarize(app.Cart.CartTotal())
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Subtotal: $%s\n", summary.Subtotal.StringFixed(2))
			fmt.Fprintf(out, "Shipping: $%s\n", summary.Shipping.StringFixed(2))
			fmt.Fprintf(out, "Tax:      $%s\n", summary.Tax.StringFixed(2))
			fmt.Fprintf(out, "Total:    $%s\n", summary.Total.StringFixed(2))
			return nil
		},
	}
}
