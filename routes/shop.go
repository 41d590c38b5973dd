package routes

import (
	"github.com/gin-gonic/gin"
	catalogControllers "github.com/valleyautoparts/shop-api/controllers/catalog"
	orderControllers "github.com/valleyautoparts/shop-api/controllers/order"
	"github.com/valleyautoparts/shop-api/middleware"
	"gorm.io/gorm"
)

// SetupShopRoutes registers catalog browsing and the order-history page.
func SetupShopRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/", catalogControllers.ShopPageHandler(db))
	r.GET("/product/:id", catalogControllers.ProductPageHandler(db))
	r.GET("/orders", middleware.RequireLogin, orderControllers.OrdersPageHandler(db))
}
