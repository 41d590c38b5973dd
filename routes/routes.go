package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/valleyautoparts/shop-api/controllers/cart"
	checkoutControllers "github.com/valleyautoparts/shop-api/controllers/checkout"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the storefront pages,
// account flows, cart, checkout, and the JSON API.
func SetupRoutes(r *gin.Engine, db *gorm.DB, carts *cartControllers.Store, provider checkoutControllers.Provider) {
	// Public storefront + account pages (no middleware)
	SetupShopRoutes(r, db)
	SetupAccountRoutes(r, db)

	// Cart + checkout pages (session-protected)
	SetupCartRoutes(r, db, carts)
	SetupPaymentRoutes(r, db, carts, provider)

	// JSON API (session cookie or bearer token)
	SetupAPIRoutes(r, db)
}
