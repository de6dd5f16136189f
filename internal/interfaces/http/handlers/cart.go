// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/pos-terminal/internal/domain/pos"
)

// AddToCartRequest is the body of POST /cart/items. Quantity is taken as the
// operator typed it, number or string, and parsed by the terminal.
type AddToCartRequest struct {
	Product  string          `json:"product" binding:"required"`
	Quantity json.RawMessage `json:"quantity"`
}

// CartHandler handles cart endpoints
type CartHandler struct {
	session *pos.Session
}

// NewCartHandler creates a new cart handler
func NewCartHandler(session *pos.Session) *CartHandler {
	return &CartHandler{
		session: session,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    h.session.CartView(),
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	line, err := h.session.AddToCartInput(req.Product, quantityText(req.Quantity))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Item added to cart successfully",
		"data": gin.H{
			"line": line,
			"cart": h.session.CartView(),
		},
	})
}

// RemoveFromCart handles DELETE /cart/items/:index. Without an index nothing
// is selected and the cart comes back unchanged.
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	if c.Param("index") == "" {
		c.JSON(http.StatusOK, gin.H{
			"message": "No cart line selected",
			"data":    h.session.CartView(),
		})
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid line index",
		})
		return
	}

	removed, err := h.session.RemoveLine(index)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data": gin.H{
			"removed": removed,
			"cart":    h.session.CartView(),
		},
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.session.ClearCart()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    h.session.CartView(),
	})
}

// quantityText turns a JSON number or string into the text ParseQuantity
// expects. Anything else comes back as-is and fails parsing.
func quantityText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
