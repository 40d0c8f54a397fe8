package stubserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *handlers) productList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "products": h.store.listProducts()})
}

func (h *handlers) categoryList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "categories": h.store.listCategories()})
}
