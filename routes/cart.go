package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/valleyautoparts/shop-api/controllers/cart"
	"github.com/valleyautoparts/shop-api/middleware"
	"gorm.io/gorm"
)

// SetupCartRoutes registers the cart page and its mutation endpoints.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB, carts *cartControllers.Store) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.RequireLogin)
	{
		cartGroup.GET("", cartControllers.CartPageHandler(db, carts))
		cartGroup.POST("/add", cartControllers.AddToCartHandler(db, carts))
		cartGroup.POST("/remove", cartControllers.RemoveFromCartHandler(carts))
		cartGroup.POST("/clear", cartControllers.ClearCartHandler(carts))
	}
}
