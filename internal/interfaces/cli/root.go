// Package cli is the delivery shell around the storefront core: thin cobra
// commands that render store state and forward input. No business rules
// live here.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	adminapp "github.com/shopverse/storefront/internal/application/admin"
	cartapp "github.com/shopverse/storefront/internal/application/cart"
	catalogapp "github.com/shopverse/storefront/internal/application/catalog"
	identityapp "github.com/shopverse/storefront/internal/application/identity"
	"github.com/shopverse/storefront/internal/domain/pricing"
	"github.com/shopverse/storefront/internal/infrastructure/auth"
	"github.com/shopverse/storefront/internal/infrastructure/notify"
)

// App bundles the wired services the commands operate on
type App struct {
	Logger   *zap.Logger
	Notifier notify.Notifier
	Browse   *catalogapp.BrowseService
	Cart     *cartapp.Service
	Sessions *identityapp.Service
	Gate     *auth.Gate
	Pricing  *pricing.Calculator

	// NewInventory builds a fresh admin working copy of the catalog.
	// Admin edits are deliberately scoped to one invocation.
	NewInventory func() *adminapp.Service
}

// NewRootCommand builds the storefront command tree
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "ShopVerse storefront",
		Long:          "Browse the ShopVerse catalog, manage a cart, and administer inventory.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.Sessions.Rehydrate(cmd.Context())
		},
	}

	root.AddCommand(
		newBrowseCommand(app),
		newCategoriesCommand(app),
		newLoginCommand(app),
		newLogoutCommand(app),
		newRegisterCommand(app),
		newWhoamiCommand(app),
		newAdminCommand(app),
		newDemoCommand(app),
	)
	return root
}

// ConsoleNotifier renders store notifications for the terminal
type ConsoleNotifier struct {
	Out io.Writer
}

// Publish implements notify.Notifier
func (n *ConsoleNotifier) Publish(notification notify.Notification) {
	marker := "*"
	if notification.Severity == notify.SeverityDestructive {
		marker = "!"
	}
	fmt.Fprintf(n.Out, "%s %s: %s\n", marker, notification.Title, notification.Description)
}
