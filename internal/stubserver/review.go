package stubserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Yui-Mika/Clothing-website/internal/domain"
)

type reviewAddRequest struct {
	ProductID string `json:"productId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

func (h *handlers) reviewList(c *gin.Context) {
	productID := strings.TrimSpace(c.Query("productId"))
	if productID == "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "productId is required"})
		return
	}
	reviews := h.store.reviewsFor(productID)
	if reviews == nil {
		reviews = []domain.Review{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reviews": reviews})
}

func (h *handlers) reviewAdd(c *gin.Context) {
	var req reviewAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid payload"})
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Rating must be between 1 and 5"})
		return
	}
	if _, ok := h.store.product(req.ProductID); !ok {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Product not found"})
		return
	}
	review := h.store.addReview(domain.Review{
		ProductID: req.ProductID,
		UserName:  currentUser(c).Name,
		Rating:    req.Rating,
		Comment:   strings.TrimSpace(req.Comment),
	})
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Review Added", "review": review})
}
