package routes

import (
	"github.com/gin-gonic/gin"
	accountControllers "github.com/valleyautoparts/shop-api/controllers/account"
	catalogControllers "github.com/valleyautoparts/shop-api/controllers/catalog"
	orderControllers "github.com/valleyautoparts/shop-api/controllers/order"
	"github.com/valleyautoparts/shop-api/middleware"
	"gorm.io/gorm"
)

// SetupAPIRoutes registers the JSON API. Public endpoints first, then the
// authenticated group (session cookie or bearer token).
func SetupAPIRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		api.GET("/session", accountControllers.SessionAPIHandler)
		api.POST("/login", accountControllers.LoginAPIHandler(db))
		api.GET("/products", catalogControllers.ListProductsAPIHandler(db))

		authed := api.Group("")
		authed.Use(middleware.RequireAPIUser)
		{
			authed.GET("/orders", orderControllers.ListOrdersAPIHandler(db))
			authed.POST("/orders", orderControllers.CreateOrderAPIHandler(db))
		}
	}
}
