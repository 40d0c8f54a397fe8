// Package checkout turns the cart's nested mapping into the flat order
// payload the backend expects and drives the two settlement paths.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Yui-Mika/Clothing-website/internal/cart"
	"github.com/Yui-Mika/Clothing-website/internal/domain"
	"github.com/Yui-Mika/Clothing-website/internal/notify"
)

// Pricing constants mirrored from the backend's order computation.
var (
	DeliveryCharge = decimal.NewFromInt(10)
	TaxRate        = decimal.NewFromFloat(0.02)
)

// ErrSubmitInFlight is returned when Submit is called while a previous
// submission has not finished. A submission cannot be aborted once started.
var ErrSubmitInFlight = errors.New("order submission already in flight")

// State of the most recent checkout attempt.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	// StateSucceeded: the order is placed and the cart was cleared.
	StateSucceeded
	// StateRedirectPending: the order is created but settlement happens on
	// an external payment page; the cart is intentionally left intact until
	// the backend confirms payment.
	StateRedirectPending
	// StateFailed: the submission was rejected; the cart is untouched and
	// the attempt can be retried.
	StateFailed
)

type orderAPI interface {
	PlaceOrderCOD(ctx context.Context, items []domain.OrderLine, address domain.Address) (string, error)
	PlaceOrderStripe(ctx context.Context, items []domain.OrderLine, address domain.Address) (string, error)
}

type cartState interface {
	Items() domain.CartData
	Clear()
}

// Assembler builds and submits order drafts.
type Assembler struct {
	client    orderAPI
	cart      cartState
	catalog   cart.Resolver
	notifier  notify.Notifier
	navigator notify.Navigator

	mu    sync.Mutex
	state State
}

// New creates an idle Assembler.
func New(client orderAPI, c cartState, catalog cart.Resolver, notifier notify.Notifier, navigator notify.Navigator) *Assembler {
	return &Assembler{
		client:    client,
		cart:      c,
		catalog:   catalog,
		notifier:  notifier,
		navigator: navigator,
	}
}

// State returns the state of the last checkout attempt.
func (a *Assembler) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// BuildOrderItems flattens the cart into order lines. Only lines with a
// positive quantity and a still-resolvable product are emitted; the rest are
// silently skipped.
func BuildOrderItems(items domain.CartData, catalog cart.Resolver) []domain.OrderLine {
	var out []domain.OrderLine
	for productID, sizes := range items {
		if _, ok := catalog.Product(productID); !ok {
			continue
		}
		for size, qty := range sizes {
			if qty <= 0 {
				continue
			}
			out = append(out, domain.OrderLine{Product: productID, Quantity: qty, Size: size})
		}
	}
	return out
}

// Totals is the checkout summary shown next to the shipping form.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Delivery decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals prices the given lines at their current offer price and adds
// the flat delivery charge and tax. An empty order costs nothing.
func ComputeTotals(lines []domain.OrderLine, catalog cart.Resolver) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		product, ok := catalog.Product(line.Product)
		if !ok {
			continue
		}
		subtotal = subtotal.Add(product.OfferPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	if subtotal.IsZero() {
		return Totals{Subtotal: decimal.Zero, Tax: decimal.Zero, Delivery: decimal.Zero, Total: decimal.Zero}
	}
	tax := subtotal.Mul(TaxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Delivery: DeliveryCharge,
		Total:    subtotal.Add(tax).Add(DeliveryCharge),
	}
}

// Result reports the outcome of a submission.
type Result struct {
	State State
	// RedirectURL is set on the online-payment path; the caller performs a
	// full navigation to it.
	RedirectURL string
}

// SubmitInput is the order draft: built fresh from the current cart and form
// state, sent once, never mutated.
type SubmitInput struct {
	Address domain.Address
	Method  string
}

// Submit builds the order payload from the current cart and sends it down
// the selected settlement path. Cash on delivery clears the cart on success
// and navigates to the order history; online payment returns the external
// payment URL and leaves the cart alone. Failures leave the cart intact for
// retry.
func (a *Assembler) Submit(ctx context.Context, in SubmitInput) (Result, error) {
	lines := BuildOrderItems(a.cart.Items(), a.catalog)
	if len(lines) == 0 {
		return Result{State: StateIdle}, fmt.Errorf("%w: add a product first", domain.ErrValidation)
	}

	a.mu.Lock()
	if a.state == StateSubmitting {
		a.mu.Unlock()
		return Result{State: StateSubmitting}, ErrSubmitInFlight
	}
	a.state = StateSubmitting
	a.mu.Unlock()

	switch in.Method {
	case domain.PaymentStripe:
		return a.submitStripe(ctx, lines, in.Address)
	default:
		return a.submitCOD(ctx, lines, in.Address)
	}
}

func (a *Assembler) submitCOD(ctx context.Context, lines []domain.OrderLine, address domain.Address) (Result, error) {
	msg, err := a.client.PlaceOrderCOD(ctx, lines, address)
	if err != nil {
		a.setState(StateFailed)
		a.notifier.Error(err.Error())
		return Result{State: StateFailed}, err
	}
	a.cart.Clear()
	a.setState(StateSucceeded)
	a.notifier.Success(msg)
	a.navigator.Navigate("/my-orders")
	return Result{State: StateSucceeded}, nil
}

func (a *Assembler) submitStripe(ctx context.Context, lines []domain.OrderLine, address domain.Address) (Result, error) {
	url, err := a.client.PlaceOrderStripe(ctx, lines, address)
	if err != nil {
		a.setState(StateFailed)
		a.notifier.Error(err.Error())
		return Result{State: StateFailed}, err
	}
	a.setState(StateRedirectPending)
	return Result{State: StateRedirectPending, RedirectURL: url}, nil
}

func (a *Assembler) setState(s State) {
	a.mu.Lock()
	a.state = s
	a.mu.Unlock()
}
