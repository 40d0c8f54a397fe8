package stubserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Yui-Mika/Clothing-website/internal/domain"
)

type placeOrderRequest struct {
	Items   []domain.OrderLine `json:"items"`
	Address domain.Address     `json:"address"`
}

func (h *handlers) orderCOD(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid payload"})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Please add product first"})
		return
	}
	user := currentUser(c)
	h.store.placeOrder(user.ID, req.Items, req.Address, domain.PaymentCOD, true)
	h.store.clearCart(user.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order Placed"})
}

// orderStripe records an unpaid order and answers with the external payment
// page URL. The cart is NOT cleared here; that happens when the payment
// webhook confirms settlement.
func (h *handlers) orderStripe(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid payload"})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Please add product first"})
		return
	}
	user := currentUser(c)
	order := h.store.placeOrder(user.ID, req.Items, req.Address, domain.PaymentStripe, false)

	origin := c.GetHeader("Origin")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	url := origin + "/loader?next=my-orders&order=" + order.ID
	c.JSON(http.StatusOK, gin.H{"success": true, "url": url})
}

func (h *handlers) myOrders(c *gin.Context) {
	orders := h.store.ordersOf(currentUser(c).ID)
	if orders == nil {
		orders = []domain.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

func (h *handlers) orderList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": h.store.allOrders()})
}

type orderStatusRequest struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

func (h *handlers) orderStatus(c *gin.Context) {
	var req orderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid payload"})
		return
	}
	if strings.TrimSpace(req.Status) == "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Status is required"})
		return
	}
	if !h.store.setOrderStatus(req.OrderID, req.Status) {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order Status Updated"})
}
