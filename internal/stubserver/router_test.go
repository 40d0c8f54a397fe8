package stubserver

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Yui-Mika/Clothing-website/internal/domain"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := NewStore()
	if err := SeedDemo(store); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	logger := log.New(io.Discard, "", 0)
	return BuildRouter(logger, store), store
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, payload any) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	fields := map[string]json.RawMessage{}
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &fields); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, fields
}

func success(t *testing.T, fields map[string]json.RawMessage) bool {
	t.Helper()
	var ok bool
	if raw, present := fields["success"]; present {
		if err := json.Unmarshal(raw, &ok); err != nil {
			t.Fatalf("decode success field: %v", err)
		}
	}
	return ok
}

func registerAndToken(t *testing.T, router *gin.Engine) string {
	t.Helper()
	rec, fields := doJSON(t, router, http.MethodPost, "/api/user/register", "", map[string]string{
		"name":     "Test Customer",
		"email":    "customer@example.com",
		"password": "Sup3rSecret",
	})
	if rec.Code != http.StatusOK || !success(t, fields) {
		t.Fatalf("register failed: %d %v", rec.Code, fields)
	}
	var token string
	if err := json.Unmarshal(fields["token"], &token); err != nil || token == "" {
		t.Fatalf("expected a token, got %s", fields["token"])
	}
	return token
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestProductList(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, fields := doJSON(t, router, http.MethodGet, "/api/product/list", "", nil)

	if rec.Code != http.StatusOK || !success(t, fields) {
		t.Fatalf("product list failed: %d", rec.Code)
	}
	var products []domain.Product
	if err := json.Unmarshal(fields["products"], &products); err != nil {
		t.Fatalf("decode products: %v", err)
	}
	if len(products) == 0 {
		t.Fatalf("expected seeded products")
	}
}

func TestCartAdd_RequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodPost, "/api/cart/add", "", map[string]string{
		"itemId": "prod-tshirt-01", "size": "M",
	})

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestCartAdd_PersistsOnUserRecord(t *testing.T) {
	router, _ := newTestRouter(t)
	token := registerAndToken(t, router)

	for i := 0; i < 2; i++ {
		rec, fields := doJSON(t, router, http.MethodPost, "/api/cart/add", token, map[string]string{
			"itemId": "prod-tshirt-01", "size": "M",
		})
		if rec.Code != http.StatusOK || !success(t, fields) {
			t.Fatalf("cart add failed: %d %v", rec.Code, fields)
		}
	}

	_, fields := doJSON(t, router, http.MethodGet, "/api/user/is-auth", token, nil)
	var user domain.Identity
	if err := json.Unmarshal(fields["user"], &user); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if got := user.CartData["prod-tshirt-01"]["M"]; got != 2 {
		t.Fatalf("expected quantity 2 on the user record, got %d", got)
	}
}

func TestCartAdd_UnknownSize(t *testing.T) {
	router, _ := newTestRouter(t)
	token := registerAndToken(t, router)

	rec, fields := doJSON(t, router, http.MethodPost, "/api/cart/add", token, map[string]string{
		"itemId": "prod-hoodie-01", "size": "S",
	})

	if rec.Code != http.StatusOK || success(t, fields) {
		t.Fatalf("expected envelope failure for unavailable size, got %d %v", rec.Code, fields)
	}
}

func TestOrderCOD_ClearsServerCart(t *testing.T) {
	router, _ := newTestRouter(t)
	token := registerAndToken(t, router)

	doJSON(t, router, http.MethodPost, "/api/cart/add", token, map[string]string{
		"itemId": "prod-tshirt-01", "size": "M",
	})

	rec, fields := doJSON(t, router, http.MethodPost, "/api/order/cod", token, map[string]any{
		"items":   []domain.OrderLine{{Product: "prod-tshirt-01", Quantity: 1, Size: "M"}},
		"address": domain.Address{FirstName: "Test", City: "Hanoi"},
	})
	if rec.Code != http.StatusOK || !success(t, fields) {
		t.Fatalf("order failed: %d %v", rec.Code, fields)
	}

	_, fields = doJSON(t, router, http.MethodGet, "/api/user/is-auth", token, nil)
	var user domain.Identity
	if err := json.Unmarshal(fields["user"], &user); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if len(user.CartData) != 0 {
		t.Fatalf("expected server cart cleared after COD order, got %v", user.CartData)
	}

	_, fields = doJSON(t, router, http.MethodPost, "/api/order/userorders", token, nil)
	var orders []domain.Order
	if err := json.Unmarshal(fields["orders"], &orders); err != nil {
		t.Fatalf("decode orders: %v", err)
	}
	if len(orders) != 1 || orders[0].PaymentMethod != domain.PaymentCOD || !orders[0].IsPaid {
		t.Fatalf("unexpected orders: %+v", orders)
	}
}

func TestOrderStripe_ReturnsRedirectWithoutClearing(t *testing.T) {
	router, _ := newTestRouter(t)
	token := registerAndToken(t, router)

	doJSON(t, router, http.MethodPost, "/api/cart/add", token, map[string]string{
		"itemId": "prod-tshirt-01", "size": "M",
	})

	rec, fields := doJSON(t, router, http.MethodPost, "/api/order/stripe", token, map[string]any{
		"items":   []domain.OrderLine{{Product: "prod-tshirt-01", Quantity: 1, Size: "M"}},
		"address": domain.Address{FirstName: "Test"},
	})
	if rec.Code != http.StatusOK || !success(t, fields) {
		t.Fatalf("stripe order failed: %d %v", rec.Code, fields)
	}
	var url string
	if err := json.Unmarshal(fields["url"], &url); err != nil || url == "" {
		t.Fatalf("expected a redirect url, got %s", fields["url"])
	}

	_, fields = doJSON(t, router, http.MethodGet, "/api/user/is-auth", token, nil)
	var user domain.Identity
	if err := json.Unmarshal(fields["user"], &user); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if user.CartData["prod-tshirt-01"]["M"] != 1 {
		t.Fatalf("server cart must stay intact until payment confirms, got %v", user.CartData)
	}

	// Unpaid online orders stay hidden from the history.
	_, fields = doJSON(t, router, http.MethodPost, "/api/order/userorders", token, nil)
	var orders []domain.Order
	if err := json.Unmarshal(fields["orders"], &orders); err != nil {
		t.Fatalf("decode orders: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected no visible orders before payment, got %+v", orders)
	}
}

func TestOrderList_RequiresStaffRole(t *testing.T) {
	router, _ := newTestRouter(t)
	token := registerAndToken(t, router)

	rec, _ := doJSON(t, router, http.MethodPost, "/api/order/list", token, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for customer, got %d", rec.Code)
	}

	_, fields := doJSON(t, router, http.MethodPost, "/api/user/login", "", map[string]string{
		"email": "admin@example.com", "password": "Admin12345",
	})
	var adminToken string
	if err := json.Unmarshal(fields["token"], &adminToken); err != nil {
		t.Fatalf("decode admin token: %v", err)
	}

	rec, fields = doJSON(t, router, http.MethodPost, "/api/order/list", adminToken, nil)
	if rec.Code != http.StatusOK || !success(t, fields) {
		t.Fatalf("admin order list failed: %d %v", rec.Code, fields)
	}
}

func TestLogout_RevokesToken(t *testing.T) {
	router, _ := newTestRouter(t)
	token := registerAndToken(t, router)

	rec, fields := doJSON(t, router, http.MethodPost, "/api/user/logout", token, nil)
	if rec.Code != http.StatusOK || !success(t, fields) {
		t.Fatalf("logout failed: %d %v", rec.Code, fields)
	}

	rec, _ = doJSON(t, router, http.MethodGet, "/api/user/is-auth", token, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 after logout, got %d", rec.Code)
	}
}

func TestWishlistRoundTrip(t *testing.T) {
	router, _ := newTestRouter(t)
	token := registerAndToken(t, router)

	rec, fields := doJSON(t, router, http.MethodPost, "/api/wishlist/add", token, map[string]string{
		"productId": "prod-jeans-01",
	})
	if rec.Code != http.StatusOK || !success(t, fields) {
		t.Fatalf("wishlist add failed: %d %v", rec.Code, fields)
	}

	_, fields = doJSON(t, router, http.MethodGet, "/api/wishlist/list", token, nil)
	var wishlist []string
	if err := json.Unmarshal(fields["wishlist"], &wishlist); err != nil {
		t.Fatalf("decode wishlist: %v", err)
	}
	if len(wishlist) != 1 || wishlist[0] != "prod-jeans-01" {
		t.Fatalf("unexpected wishlist: %v", wishlist)
	}

	doJSON(t, router, http.MethodPost, "/api/wishlist/remove", token, map[string]string{
		"productId": "prod-jeans-01",
	})
	_, fields = doJSON(t, router, http.MethodGet, "/api/wishlist/list", token, nil)
	if err := json.Unmarshal(fields["wishlist"], &wishlist); err != nil {
		t.Fatalf("decode wishlist: %v", err)
	}
	if len(wishlist) != 0 {
		t.Fatalf("expected empty wishlist, got %v", wishlist)
	}
}

func TestReviewRoundTrip(t *testing.T) {
	router, _ := newTestRouter(t)
	token := registerAndToken(t, router)

	rec, fields := doJSON(t, router, http.MethodPost, "/api/review/add", token, map[string]any{
		"productId": "prod-tshirt-01", "rating": 5, "comment": "fits well",
	})
	if rec.Code != http.StatusOK || !success(t, fields) {
		t.Fatalf("review add failed: %d %v", rec.Code, fields)
	}

	_, fields = doJSON(t, router, http.MethodGet, "/api/review/list?productId=prod-tshirt-01", "", nil)
	var reviews []domain.Review
	if err := json.Unmarshal(fields["reviews"], &reviews); err != nil {
		t.Fatalf("decode reviews: %v", err)
	}
	if len(reviews) != 1 || reviews[0].Rating != 5 {
		t.Fatalf("unexpected reviews: %+v", reviews)
	}
}
