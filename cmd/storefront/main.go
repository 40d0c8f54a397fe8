package main

import (
	"context"
	"log"
	"os"

	"github.com/Yui-Mika/Clothing-website/internal/config"
	"github.com/Yui-Mika/Clothing-website/internal/notify"
	"github.com/Yui-Mika/Clothing-website/internal/shop"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.LUTC)

	app := shop.New(shop.Options{
		BaseURL:        cfg.APIBaseURL,
		RequestTimeout: cfg.RequestTimeout,
		Rollback:       cfg.RollbackOnFailure,
		Notifier:       &notify.LogNotifier{Logger: logger},
		Navigator:      &notify.LogNavigator{Logger: logger},
		Logger:         logger,
	})

	ctx := context.Background()
	if err := app.Bootstrap(ctx); err != nil {
		logger.Fatalf("bootstrap against %s: %v", cfg.APIBaseURL, err)
	}

	products := app.Catalog.Products()
	categories := app.Catalog.Categories()
	logger.Printf("catalog loaded: %d products in %d categories", len(products), len(categories))

	if identity := app.Session.Identity(); identity != nil {
		logger.Printf("signed in as %s (%s), privileged=%t", identity.Name, identity.Role, app.Session.Privileged())
		logger.Printf("cart: %d items, total %s", app.Cart.Count(), app.Cart.Amount(app.Catalog))
	} else {
		logger.Printf("browsing anonymously; log in to use the cart")
	}
}
