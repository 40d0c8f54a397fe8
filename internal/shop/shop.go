// Package shop is the composition root for the client: it wires the API
// client, session store, catalog cache, cart aggregator, and checkout
// assembler into one explicitly-passed application state object.
package shop

import (
	"context"
	"log"
	"time"

	"github.com/Yui-Mika/Clothing-website/internal/api"
	"github.com/Yui-Mika/Clothing-website/internal/cart"
	"github.com/Yui-Mika/Clothing-website/internal/catalog"
	"github.com/Yui-Mika/Clothing-website/internal/checkout"
	"github.com/Yui-Mika/Clothing-website/internal/notify"
	"github.com/Yui-Mika/Clothing-website/internal/session"
)

// Shop bundles the client-side components.
type Shop struct {
	Client   *api.Client
	Catalog  *catalog.Cache
	Session  *session.Store
	Cart     *cart.Aggregator
	Checkout *checkout.Assembler
	logger   *log.Logger
}

// Options for constructing a Shop.
type Options struct {
	BaseURL        string
	RequestTimeout time.Duration
	Rollback       bool
	Notifier       notify.Notifier
	Navigator      notify.Navigator
	Logger         *log.Logger
}

// New wires the components. The session store is created before the cart
// aggregator (which gates mutations on it) and then bound back to the cart
// so teardown can clear it.
func New(opts Options) *Shop {
	client := api.New(opts.BaseURL, opts.RequestTimeout, opts.Logger)
	sess := session.New(client, opts.Notifier, opts.Navigator)
	client.SetUnauthorizedHandler(sess.HandleUnauthorized)

	cat := catalog.New(client)
	agg := cart.New(client, sess, opts.Notifier, cart.WithRollback(opts.Rollback))
	sess.BindCart(agg)
	co := checkout.New(client, agg, cat, opts.Notifier, opts.Navigator)

	return &Shop{
		Client:   client,
		Catalog:  cat,
		Session:  sess,
		Cart:     agg,
		Checkout: co,
		logger:   opts.Logger,
	}
}

// Bootstrap runs the startup sequence: identity check, then catalog
// hydration. An anonymous visitor makes the identity check fail, which is
// expected and not fatal; a catalog failure is.
func (s *Shop) Bootstrap(ctx context.Context) error {
	if err := s.Session.RefreshIdentity(ctx); err != nil {
		s.logger.Printf("no active session: %v", err)
	}
	return s.Catalog.Refresh(ctx)
}
