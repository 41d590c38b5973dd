package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/valleyautoparts/shop-api/middleware"
	"gorm.io/gorm"
)

// GET /cart
func CartPageHandler(db *gorm.DB, s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := middleware.Username(c)

		lines, total, err := View(db, s, username)
		if err != nil {
			c.String(http.StatusInternalServerError, "Failed to load cart")
			return
		}

		c.HTML(http.StatusOK, "cart.html", gin.H{
			"Username": username,
			"Lines":    lines,
			"Total":    total,
			"Banner":   middleware.PopFlash(c),
		})
	}
}

// POST /cart/add
func AddToCartHandler(db *gorm.DB, s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := middleware.Username(c)
		productID := c.PostForm("product_id")

		added, err := AddItem(db, s, username, productID)
		if err != nil {
			c.String(http.StatusInternalServerError, "Failed to add item")
			return
		}
		if !added {
			middleware.Flash(c, "That part is no longer available.")
			c.Redirect(http.StatusSeeOther, "/")
			return
		}

		middleware.Flash(c, "Added to cart.")
		c.Redirect(http.StatusSeeOther, "/cart")
	}
}

// POST /cart/remove
func RemoveFromCartHandler(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := middleware.Username(c)
		productID := c.PostForm("product_id")

		if s.Remove(username, productID) {
			middleware.Flash(c, "Removed from cart.")
		}
		c.Redirect(http.StatusSeeOther, "/cart")
	}
}

// POST /cart/clear
func ClearCartHandler(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.Clear(middleware.Username(c))
		middleware.Flash(c, "Cart cleared.")
		c.Redirect(http.StatusSeeOther, "/cart")
	}
}
