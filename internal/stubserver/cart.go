package stubserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type cartAddRequest struct {
	ItemID string `json:"itemId"`
	Size   string `json:"size"`
}

func (h *handlers) cartAdd(c *gin.Context) {
	var req cartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid payload"})
		return
	}
	if strings.TrimSpace(req.Size) == "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Size is required"})
		return
	}
	product, ok := h.store.product(req.ItemID)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Product not found"})
		return
	}
	if !product.HasSize(req.Size) {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Size not available"})
		return
	}
	h.store.cartAdd(currentUser(c).ID, req.ItemID, req.Size)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Added to Cart"})
}

type cartUpdateRequest struct {
	ItemID   string `json:"itemId"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

func (h *handlers) cartUpdate(c *gin.Context) {
	var req cartUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid payload"})
		return
	}
	if req.Quantity < 0 {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Quantity must not be negative"})
		return
	}
	h.store.cartUpdate(currentUser(c).ID, req.ItemID, req.Size, req.Quantity)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart Updated"})
}
