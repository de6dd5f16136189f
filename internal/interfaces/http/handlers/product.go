// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/pos-terminal/internal/domain/pos"
)

// ProductHandler serves the catalog with live availability
type ProductHandler struct {
	session *pos.Session
}

// NewProductHandler creates a new product handler
func NewProductHandler(session *pos.Session) *ProductHandler {
	return &ProductHandler{
		session: session,
	}
}

// GetProducts handles GET /products?search=
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products := h.session.Search(c.Query("search"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    products,
		"count":   len(products),
	})
}

// GetProduct handles GET /products/:name
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.session.Product(c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}
