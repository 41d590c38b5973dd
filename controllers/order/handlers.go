package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/valleyautoparts/shop-api/middleware"
	"gorm.io/gorm"
)

// GET /orders
func OrdersPageHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := middleware.Username(c)

		orders, err := UserOrders(db, username)
		if err != nil {
			c.String(http.StatusInternalServerError, "Failed to load orders")
			return
		}

		c.HTML(http.StatusOK, "orders.html", gin.H{
			"Username": username,
			"Orders":   orders,
			"Banner":   middleware.PopFlash(c),
		})
	}
}

// GET /api/orders
func ListOrdersAPIHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := UserOrders(db, middleware.Username(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

type createOrderRequest struct {
	Items []string `json:"items"`
}

// POST /api/orders
// Body: {"items": ["product-id", ...]} — duplicates raise quantity.
// An empty list and a list of only unknown IDs fail distinctly.
func CreateOrderAPIHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		order, err := PlaceOrder(db, PlaceOrderInput{
			Username: middleware.Username(c),
			ItemIDs:  req.Items,
		})
		switch {
		case errors.Is(err, ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		case errors.Is(err, ErrInvalidItems):
			c.JSON(http.StatusBadRequest, gin.H{"error": "no valid items in cart"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
			return
		}

		c.JSON(http.StatusCreated, order)
	}
}
