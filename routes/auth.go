package routes

import (
	"github.com/gin-gonic/gin"
	accountControllers "github.com/valleyautoparts/shop-api/controllers/account"
	"github.com/valleyautoparts/shop-api/middleware"
	"gorm.io/gorm"
)

// SetupAccountRoutes registers registration, login, password reset, and the
// profile page.
func SetupAccountRoutes(r *gin.Engine, db *gorm.DB) {
	register := accountControllers.RegisterHandler(db)
	r.GET("/register", register)
	r.POST("/register", register)

	login := accountControllers.LoginHandler(db)
	r.GET("/login", login)
	r.POST("/login", login)

	r.GET("/logout", accountControllers.LogoutHandler)

	reset := accountControllers.ResetRequestHandler(db)
	r.GET("/reset", reset)
	r.POST("/reset", reset)

	resetConfirm := accountControllers.ResetConfirmHandler(db)
	r.GET("/reset/:token", resetConfirm)
	r.POST("/reset/:token", resetConfirm)

	profile := accountControllers.ProfileHandler(db)
	r.GET("/profile", middleware.RequireLogin, profile)
	r.POST("/profile", middleware.RequireLogin, profile)
}
