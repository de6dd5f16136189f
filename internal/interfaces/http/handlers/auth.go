// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/pos-terminal/internal/config"
	"github.com/your-org/pos-terminal/internal/pkg/auth"
)

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	PIN string `json:"pin" binding:"required"`
}

// AuthHandler opens an operator shift
type AuthHandler struct {
	config     *config.Config
	pins       *auth.PINManager
	jwtManager *auth.JWTManager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		config:     cfg,
		pins:       auth.NewPINManager(cfg),
		jwtManager: auth.NewJWTManager(cfg),
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	if !h.config.AuthEnabled() {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Operator login is not enabled on this terminal",
		})
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.pins.VerifyPIN(req.PIN); err != nil {
		if !errors.Is(err, auth.ErrInvalidPIN) {
			_ = c.Error(err)
		}
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid PIN",
		})
		return
	}

	token, expiresAt, err := h.jwtManager.GenerateAccessToken(h.config.Operator.Name)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": gin.H{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_at":   expiresAt,
			"operator":     h.config.Operator.Name,
		},
	})
}
