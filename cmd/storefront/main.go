package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	adminapp "github.com/shopverse/storefront/internal/application/admin"
	cartapp "github.com/shopverse/storefront/internal/application/cart"
	catalogapp "github.com/shopverse/storefront/internal/application/catalog"
	identityapp "github.com/shopverse/storefront/internal/application/identity"
	"github.com/shopverse/storefront/internal/domain/catalog"
	"github.com/shopverse/storefront/internal/domain/identity"
	"github.com/shopverse/storefront/internal/domain/pricing"
	"github.com/shopverse/storefront/internal/infrastructure/auth"
	"github.com/shopverse/storefront/internal/infrastructure/config"
	"github.com/shopverse/storefront/internal/infrastructure/logger"
	"github.com/shopverse/storefront/internal/infrastructure/storage"
	"github.com/shopverse/storefront/internal/interfaces/cli"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	store, err := storage.Open(cfg.Store.Path, logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level)))
	if err != nil {
		log.Fatal("failed to open record store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("error closing record store", zap.Error(err))
		}
	}()

	notifier := &cli.ConsoleNotifier{Out: os.Stdout}
	repo := catalog.NewRepository(catalog.Seed())

	sessions := identityapp.NewService(
		identity.SeedCredentials(),
		store,
		identityapp.Config{StorageKey: cfg.Store.SessionKey, Latency: cfg.Auth.Latency},
		notifier,
		log,
	)

	app := &cli.App{
		Logger:   log,
		Notifier: notifier,
		Browse:   catalogapp.NewBrowseService(repo, log),
		Cart:     cartapp.NewService(notifier, log),
		Sessions: sessions,
		Gate:     auth.NewGate(sessions),
		Pricing: pricing.NewCalculator(
			decimal.NewFromFloat(cfg.Pricing.FreeShippingThreshold),
			decimal.NewFromFloat(cfg.Pricing.FlatShippingRate),
			decimal.NewFromFloat(cfg.Pricing.TaxRate),
		),
		NewInventory: func() *adminapp.Service {
			return adminapp.NewService(repo.All(), notifier, log)
		},
	}

	if err := cli.NewRootCommand(app).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
