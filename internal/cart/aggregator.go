// Package cart owns the local view of what the current user intends to buy
// and keeps it synchronized with the backend cart record. Mutations are
// optimistic: the local state is updated first, then the remote sync is
// dispatched, and a failed sync either rolls the snapshot back or stands,
// depending on the configured policy.
package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Yui-Mika/Clothing-website/internal/domain"
	"github.com/Yui-Mika/Clothing-website/internal/notify"
)

type syncer interface {
	CartAdd(ctx context.Context, itemID, size string) (string, error)
	CartUpdate(ctx context.Context, itemID, size string, quantity int) (string, error)
}

// Session gates cart mutations: every mutation requires a logged-in user.
type Session interface {
	LoggedIn() bool
}

// Resolver looks up current product snapshots for price computation.
type Resolver interface {
	Product(id string) (domain.Product, bool)
}

// Aggregator maintains the cart mapping. All mutations clone the whole
// mapping and swap the reference, so a snapshot handed to a reader never
// changes underneath it.
type Aggregator struct {
	client   syncer
	session  Session
	notifier notify.Notifier
	rollback bool

	mu    sync.RWMutex
	items domain.CartData
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithRollback controls whether a failed remote sync restores the
// pre-mutation snapshot. Defaults to true.
func WithRollback(enabled bool) Option {
	return func(a *Aggregator) { a.rollback = enabled }
}

// New creates an empty Aggregator.
func New(client syncer, session Session, notifier notify.Notifier, opts ...Option) *Aggregator {
	a := &Aggregator{
		client:   client,
		session:  session,
		notifier: notifier,
		rollback: true,
		items:    domain.CartData{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AddItem increments the quantity for (productID, size) by one, initializing
// the line at one if absent, then syncs the increment to the backend. It
// requires a selected size and a logged-in session; neither failure mutates
// local state.
func (a *Aggregator) AddItem(ctx context.Context, productID, size string) error {
	size = strings.TrimSpace(size)
	if size == "" {
		return fmt.Errorf("%w: select a size first", domain.ErrValidation)
	}
	if !a.session.LoggedIn() {
		return domain.ErrAuthRequired
	}

	a.mu.Lock()
	prev := a.items
	next := prev.Clone()
	if next[productID] == nil {
		next[productID] = make(map[string]int)
	}
	next[productID][size]++
	a.items = next
	a.mu.Unlock()

	msg, err := a.client.CartAdd(ctx, productID, size)
	if err != nil {
		a.syncFailed(prev, err)
		return err
	}
	a.notifier.Success(msg)
	return nil
}

// UpdateQuantity sets the quantity for an existing line directly. Quantity
// zero is the removal signal: the entry is kept at zero, never deleted, and
// aggregates skip it. Addressing a line that does not exist is an error.
func (a *Aggregator) UpdateQuantity(ctx context.Context, productID, size string, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", domain.ErrValidation)
	}
	if !a.session.LoggedIn() {
		return domain.ErrAuthRequired
	}

	a.mu.Lock()
	sizes, ok := a.items[productID]
	if ok {
		_, ok = sizes[size]
	}
	if !ok {
		a.mu.Unlock()
		return fmt.Errorf("cart line %s/%s: %w", productID, size, domain.ErrNotFound)
	}
	prev := a.items
	next := prev.Clone()
	next[productID][size] = quantity
	a.items = next
	a.mu.Unlock()

	msg, err := a.client.CartUpdate(ctx, productID, size, quantity)
	if err != nil {
		a.syncFailed(prev, err)
		return err
	}
	a.notifier.Success(msg)
	return nil
}

func (a *Aggregator) syncFailed(prev domain.CartData, err error) {
	// A 401 already tore the whole session down, cart included; restoring
	// the snapshot would resurrect a cart that must stay cleared.
	if a.rollback && !errors.Is(err, domain.ErrSessionExpired) {
		a.mu.Lock()
		a.items = prev
		a.mu.Unlock()
	}
	a.notifier.Error(err.Error())
}

// Count sums every quantity across all products and sizes. Zero entries
// contribute nothing.
func (a *Aggregator) Count() int {
	a.mu.RLock()
	items := a.items
	a.mu.RUnlock()

	count := 0
	for _, sizes := range items {
		for _, qty := range sizes {
			count += qty
		}
	}
	return count
}

// Amount totals offerPrice multiplied by quantity over all lines, using the
// product's current price from the catalog. Lines whose product can no
// longer be resolved are excluded, not priced at zero.
func (a *Aggregator) Amount(catalog Resolver) decimal.Decimal {
	a.mu.RLock()
	items := a.items
	a.mu.RUnlock()

	total := decimal.Zero
	for productID, sizes := range items {
		product, ok := catalog.Product(productID)
		if !ok {
			continue
		}
		for _, qty := range sizes {
			if qty <= 0 {
				continue
			}
			total = total.Add(product.OfferPrice.Mul(decimal.NewFromInt(int64(qty))))
		}
	}
	return total
}

// Items returns a deep copy of the current mapping.
func (a *Aggregator) Items() domain.CartData {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.items.Clone()
}

// Replace swaps in a cart fetched from the user record on login.
func (a *Aggregator) Replace(items domain.CartData) {
	if items == nil {
		items = domain.CartData{}
	}
	a.mu.Lock()
	a.items = items.Clone()
	a.mu.Unlock()
}

// Clear resets the cart to empty. Called on logout and after a successful
// cash-on-delivery order.
func (a *Aggregator) Clear() {
	a.mu.Lock()
	a.items = domain.CartData{}
	a.mu.Unlock()
}
