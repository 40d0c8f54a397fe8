// Package session is the single source of truth for who is using the client.
// It holds the current identity and the role-derived privilege flag, and owns
// the forced-teardown path taken when any remote call answers 401.
package session

import (
	"context"
	"strings"
	"sync"

	"github.com/Yui-Mika/Clothing-website/internal/domain"
	"github.com/Yui-Mika/Clothing-website/internal/notify"
)

type authAPI interface {
	IsAuth(ctx context.Context) (*domain.Identity, error)
	Login(ctx context.Context, email, password string) (string, *domain.Identity, error)
	Register(ctx context.Context, name, email, password string) (string, *domain.Identity, error)
	Logout(ctx context.Context) (string, error)
	SetToken(token string)
	ClearToken()
}

// Cart is the slice of the cart aggregator the session drives: hydration on
// login and clearing on teardown.
type Cart interface {
	Replace(items domain.CartData)
	Clear()
}

// Store holds the current identity behind a mutex.
type Store struct {
	client    authAPI
	notifier  notify.Notifier
	navigator notify.Navigator

	mu         sync.RWMutex
	identity   *domain.Identity
	privileged bool
	cart       Cart
}

// New creates a logged-out Store. BindCart must be called before any
// authentication flow runs.
func New(client authAPI, notifier notify.Notifier, navigator notify.Navigator) *Store {
	return &Store{client: client, notifier: notifier, navigator: navigator}
}

// BindCart attaches the cart aggregator. Split from New because the
// aggregator itself needs the session for its login gate.
func (s *Store) BindCart(cart Cart) {
	s.mu.Lock()
	s.cart = cart
	s.mu.Unlock()
}

// LoggedIn reports whether an identity is held.
func (s *Store) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil
}

// Identity returns a copy of the current identity, or nil when anonymous.
func (s *Store) Identity() *domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	copied := *s.identity
	return &copied
}

// Privileged reports whether the current role grants back-office access.
func (s *Store) Privileged() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.privileged
}

// RefreshIdentity runs the who-am-I check. On success the identity is
// stored, the privilege flag is derived from its role field (no second
// remote call), and the cart is hydrated from the user record. Any failure
// leaves the client anonymous.
func (s *Store) RefreshIdentity(ctx context.Context) error {
	identity, err := s.client.IsAuth(ctx)
	if err != nil {
		s.clearLocal()
		return err
	}
	s.adopt(identity)
	return nil
}

// Login exchanges credentials for a token, adopts it, and loads the identity
// behind it. Privileged users land on the admin product list, customers on
// the storefront root.
func (s *Store) Login(ctx context.Context, email, password string) error {
	token, _, err := s.client.Login(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return err
	}
	s.client.SetToken(token)
	if err := s.RefreshIdentity(ctx); err != nil {
		return err
	}
	s.routeAfterLogin()
	return nil
}

// Register creates an account and signs it in.
func (s *Store) Register(ctx context.Context, name, email, password string) error {
	token, _, err := s.client.Register(ctx, strings.TrimSpace(name), strings.TrimSpace(email), password)
	if err != nil {
		return err
	}
	s.client.SetToken(token)
	if err := s.RefreshIdentity(ctx); err != nil {
		return err
	}
	s.navigator.Navigate("/")
	return nil
}

// Logout fires the remote logout, then tears down local state regardless of
// its outcome and navigates to the storefront root. Safe to call when
// already logged out.
func (s *Store) Logout(ctx context.Context) {
	if msg, err := s.client.Logout(ctx); err == nil {
		s.notifier.Success(msg)
	} else {
		s.notifier.Error(err.Error())
	}
	s.clearLocal()
	s.navigator.Navigate("/")
}

// HandleUnauthorized is the hook wired into the API client's 401 inspection:
// the held credential is no longer valid, so local state is torn down the
// same way logout does it, minus the remote call.
func (s *Store) HandleUnauthorized() {
	s.clearLocal()
	s.navigator.Navigate("/")
}

func (s *Store) adopt(identity *domain.Identity) {
	s.mu.Lock()
	s.identity = identity
	s.privileged = identity != nil && identity.Privileged()
	cart := s.cart
	s.mu.Unlock()
	if cart != nil && identity != nil {
		cart.Replace(identity.CartData)
	}
}

func (s *Store) clearLocal() {
	s.mu.Lock()
	s.identity = nil
	s.privileged = false
	cart := s.cart
	s.mu.Unlock()
	s.client.ClearToken()
	if cart != nil {
		cart.Clear()
	}
}

func (s *Store) routeAfterLogin() {
	if s.Privileged() {
		s.navigator.Navigate("/admin/list")
		return
	}
	s.navigator.Navigate("/")
}
