package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/valleyautoparts/shop-api/controllers/cart"
	checkoutControllers "github.com/valleyautoparts/shop-api/controllers/checkout"
	"github.com/valleyautoparts/shop-api/middleware"
	"gorm.io/gorm"
)

// SetupPaymentRoutes registers the hosted-checkout flow.
func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB, carts *cartControllers.Store, provider checkoutControllers.Provider) {
	payment := r.Group("/payment")
	payment.Use(middleware.RequireLogin)
	{
		payment.GET("", checkoutControllers.PaymentPageHandler(db, carts))
		payment.POST("/checkout", checkoutControllers.BeginCheckoutHandler(db, carts, provider))
		payment.GET("/success", checkoutControllers.CheckoutSuccessHandler(db, carts, provider))
	}
}
