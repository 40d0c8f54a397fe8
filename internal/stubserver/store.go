package stubserver

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/Yui-Mika/Clothing-website/internal/domain"
)

type userRecord struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CartData     domain.CartData
	Wishlist     []string
}

// Store is the in-memory state behind the stub backend. Everything lives in
// maps guarded by one mutex; nothing survives a restart.
type Store struct {
	mu         sync.RWMutex
	products   map[string]domain.Product
	categories []domain.Category
	usersByID  map[string]*userRecord
	emailIndex map[string]string
	tokens     map[string]string
	orders     []domain.Order
	orderOwner map[string]string
	reviews    []domain.Review
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		products:   make(map[string]domain.Product),
		usersByID:  make(map[string]*userRecord),
		emailIndex: make(map[string]string),
		tokens:     make(map[string]string),
		orderOwner: make(map[string]string),
	}
}

// SeedProducts replaces the catalog.
func (s *Store) SeedProducts(products []domain.Product, categories []domain.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = make(map[string]domain.Product, len(products))
	for _, p := range products {
		s.products[p.ID] = p
	}
	s.categories = categories
}

// SeedUser registers an account with a fixed role, for seeding staff/admin.
func (s *Store) SeedUser(name, email, password, role string) (string, error) {
	id, err := s.createUser(name, email, password, role)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) createUser(name, email, password, role string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.emailIndex[email]; exists {
		return "", fmt.Errorf("user %s already exists", email)
	}
	id := uuid.NewString()
	s.usersByID[id] = &userRecord{
		ID:           id,
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
		CartData:     domain.CartData{},
	}
	s.emailIndex[email] = id
	return id, nil
}

func (s *Store) authenticate(email, password string) (*userRecord, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	s.mu.RLock()
	id, ok := s.emailIndex[email]
	var user *userRecord
	if ok {
		user = s.usersByID[id]
	}
	s.mu.RUnlock()
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	return user, nil
}

// issueToken mints an opaque bearer token bound to the user.
func (s *Store) issueToken(userID string) string {
	var buf [32]byte
	if _, err := rand.Read(buf[:]); err != nil {
		copy(buf[:], fmt.Sprintf("%032d", time.Now().UnixNano()))
	}
	token := base64.RawURLEncoding.EncodeToString(buf[:])
	s.mu.Lock()
	s.tokens[token] = userID
	s.mu.Unlock()
	return token
}

func (s *Store) revokeToken(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}

func (s *Store) userByToken(token string) *userRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.tokens[token]
	if !ok {
		return nil
	}
	return s.usersByID[id]
}

func (s *Store) identityOf(u *userRecord) domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Identity{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		CartData: u.CartData.Clone(),
	}
}

func (s *Store) listProducts() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out
}

func (s *Store) listCategories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *Store) product(id string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	return p, ok
}

// DeleteProduct removes a product from the catalog; carts referencing it keep
// their lines, which simply stop resolving.
func (s *Store) DeleteProduct(id string) {
	s.mu.Lock()
	delete(s.products, id)
	s.mu.Unlock()
}

func (s *Store) cartAdd(userID, itemID, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := s.usersByID[userID]
	if user == nil {
		return
	}
	if user.CartData[itemID] == nil {
		user.CartData[itemID] = make(map[string]int)
	}
	user.CartData[itemID][size]++
}

func (s *Store) cartUpdate(userID, itemID, size string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := s.usersByID[userID]
	if user == nil {
		return
	}
	if user.CartData[itemID] == nil {
		user.CartData[itemID] = make(map[string]int)
	}
	user.CartData[itemID][size] = quantity
}

func (s *Store) clearCart(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user := s.usersByID[userID]; user != nil {
		user.CartData = domain.CartData{}
	}
}

func (s *Store) placeOrder(userID string, items []domain.OrderLine, address domain.Address, method string, paid bool) domain.Order {
	amount := s.orderAmount(items)
	order := domain.Order{
		ID:            uuid.NewString(),
		Items:         items,
		Amount:        amount,
		Address:       address,
		PaymentMethod: method,
		IsPaid:        paid,
		Status:        "Pending",
		CreatedAt:     time.Now().UTC(),
	}
	s.mu.Lock()
	s.orders = append(s.orders, order)
	s.orderOwner[order.ID] = userID
	s.mu.Unlock()
	return order
}

// orderAmount mirrors the real backend: offer-price subtotal plus 2% tax
// plus a flat delivery charge, skipping unresolvable products.
func (s *Store) orderAmount(items []domain.OrderLine) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	subtotal := decimal.Zero
	for _, line := range items {
		p, ok := s.products[line.Product]
		if !ok {
			continue
		}
		subtotal = subtotal.Add(p.OfferPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	tax := subtotal.Mul(decimal.NewFromFloat(0.02))
	return subtotal.Add(tax).Add(decimal.NewFromInt(10))
}

func (s *Store) ordersOf(userID string) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Order
	for i := len(s.orders) - 1; i >= 0; i-- {
		o := s.orders[i]
		if s.orderOwner[o.ID] != userID {
			continue
		}
		if o.PaymentMethod == domain.PaymentCOD || o.IsPaid {
			out = append(out, o)
		}
	}
	return out
}

func (s *Store) allOrders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, 0, len(s.orders))
	for i := len(s.orders) - 1; i >= 0; i-- {
		o := s.orders[i]
		if o.PaymentMethod == domain.PaymentCOD || o.IsPaid {
			out = append(out, o)
		}
	}
	return out
}

func (s *Store) setOrderStatus(orderID, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			return true
		}
	}
	return false
}

func (s *Store) wishlistOf(userID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user := s.usersByID[userID]
	if user == nil {
		return nil
	}
	out := make([]string, len(user.Wishlist))
	copy(out, user.Wishlist)
	return out
}

func (s *Store) wishlistAdd(userID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := s.usersByID[userID]
	if user == nil {
		return
	}
	for _, id := range user.Wishlist {
		if id == productID {
			return
		}
	}
	user.Wishlist = append(user.Wishlist, productID)
}

func (s *Store) wishlistRemove(userID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := s.usersByID[userID]
	if user == nil {
		return
	}
	for i, id := range user.Wishlist {
		if id == productID {
			user.Wishlist = append(user.Wishlist[:i], user.Wishlist[i+1:]...)
			return
		}
	}
}

func (s *Store) reviewsFor(productID string) []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Review
	for _, r := range s.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) addReview(r domain.Review) domain.Review {
	r.ID = uuid.NewString()
	r.CreatedAt = time.Now().UTC()
	s.mu.Lock()
	s.reviews = append(s.reviews, r)
	s.mu.Unlock()
	return r
}
