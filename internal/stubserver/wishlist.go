package stubserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type wishlistRequest struct {
	ProductID string `json:"productId"`
}

func (h *handlers) wishlistList(c *gin.Context) {
	wishlist := h.store.wishlistOf(currentUser(c).ID)
	if wishlist == nil {
		wishlist = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "wishlist": wishlist})
}

func (h *handlers) wishlistAdd(c *gin.Context) {
	var req wishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid payload"})
		return
	}
	if _, ok := h.store.product(req.ProductID); !ok {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Product not found"})
		return
	}
	h.store.wishlistAdd(currentUser(c).ID, req.ProductID)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Added to Wishlist"})
}

func (h *handlers) wishlistRemove(c *gin.Context) {
	var req wishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid payload"})
		return
	}
	h.store.wishlistRemove(currentUser(c).ID, req.ProductID)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Removed from Wishlist"})
}
