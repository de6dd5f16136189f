// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/pos-terminal/internal/config"
	"github.com/your-org/pos-terminal/internal/domain/pos"
	"github.com/your-org/pos-terminal/internal/interfaces/http/handlers"
	"github.com/your-org/pos-terminal/internal/interfaces/http/middleware"
)

// SetupRoutes mounts every terminal route under rg
func SetupRoutes(rg *gin.RouterGroup, session *pos.Session, renderer handlers.ReceiptRenderer, cfg *config.Config) {
	SetupAuthRoutes(rg, cfg)
	SetupProductRoutes(rg, session)
	SetupCartRoutes(rg, session, cfg)
	SetupReceiptRoutes(rg, session, renderer)
}

// SetupAuthRoutes sets up operator login
func SetupAuthRoutes(rg *gin.RouterGroup, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(cfg)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}
}

// SetupProductRoutes sets up read-only catalog routes
func SetupProductRoutes(rg *gin.RouterGroup, session *pos.Session) {
	productHandler := handlers.NewProductHandler(session)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:name", productHandler.GetProduct)
	}
}

// SetupCartRoutes sets up the cart and checkout. Mutations need an operator
// token when a PIN is configured.
func SetupCartRoutes(rg *gin.RouterGroup, session *pos.Session, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(session)
	checkoutHandler := handlers.NewCheckoutHandler(session)

	rg.GET("/cart", cartHandler.GetCart)

	protected := rg.Group("")
	protected.Use(middleware.AuthMiddleware(cfg))
	{
		protected.POST("/cart/items", cartHandler.AddToCart)
		protected.DELETE("/cart/items", cartHandler.RemoveFromCart)
		protected.DELETE("/cart/items/:index", cartHandler.RemoveFromCart)
		protected.DELETE("/cart", cartHandler.ClearCart)
		protected.POST("/checkout", checkoutHandler.Checkout)
	}
}

// SetupReceiptRoutes sets up receipt retrieval
func SetupReceiptRoutes(rg *gin.RouterGroup, session *pos.Session, renderer handlers.ReceiptRenderer) {
	receiptHandler := handlers.NewReceiptHandler(session, renderer)

	receipts := rg.Group("/receipts")
	{
		receipts.GET("/last", receiptHandler.GetLastReceipt)
		receipts.GET("/last/pdf", receiptHandler.GetLastReceiptPDF)
	}
}
