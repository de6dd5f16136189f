// internal/interfaces/http/handlers/receipt.go
package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/pos-terminal/internal/domain/pos"
	"github.com/your-org/pos-terminal/internal/domain/receipt"
)

// ReceiptRenderer produces a printable receipt document
type ReceiptRenderer interface {
	GenerateReceipt(r *receipt.Receipt) (*bytes.Buffer, error)
}

// ReceiptHandler serves issued receipts
type ReceiptHandler struct {
	session  *pos.Session
	renderer ReceiptRenderer
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(session *pos.Session, renderer ReceiptRenderer) *ReceiptHandler {
	return &ReceiptHandler{
		session:  session,
		renderer: renderer,
	}
}

// GetLastReceipt handles GET /receipts/last
func (h *ReceiptHandler) GetLastReceipt(c *gin.Context) {
	r, err := h.session.LastReceipt()
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Receipt retrieved successfully",
		"data":    receiptResponse(r),
	})
}

// GetLastReceiptPDF handles GET /receipts/last/pdf
func (h *ReceiptHandler) GetLastReceiptPDF(c *gin.Context) {
	r, err := h.session.LastReceipt()
	if err != nil {
		writeError(c, err)
		return
	}

	pdfBuffer, err := h.renderer.GenerateReceipt(r)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate receipt PDF",
		})
		return
	}

	filename := fmt.Sprintf("receipt-%s.pdf", r.ID)
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}

func receiptResponse(r *receipt.Receipt) gin.H {
	return gin.H{
		"receipt":  r,
		"currency": r.CurrencyCode(),
		"text":     r.Format(),
	}
}
