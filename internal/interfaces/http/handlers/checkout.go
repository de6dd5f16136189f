// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/pos-terminal/internal/domain/pos"
)

// CheckoutHandler handles checkout
type CheckoutHandler struct {
	session *pos.Session
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(session *pos.Session) *CheckoutHandler {
	return &CheckoutHandler{
		session: session,
	}
}

// Checkout handles POST /checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	r, err := h.session.Checkout(c.Request.Context())
	if errors.Is(err, pos.ErrPersistence) {
		// The sale went through; only the log record is missing
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Receipt issued but could not be written to the receipt log",
			"data":  receiptResponse(r),
		})
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Checkout completed successfully",
		"data":    receiptResponse(r),
	})
}
