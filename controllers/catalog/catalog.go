package catalogControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/valleyautoparts/shop-api/middleware"
	"github.com/valleyautoparts/shop-api/models"
	"gorm.io/gorm"
)

// ListProducts filters the catalog by a free-text query (name, description,
// category) and a vehicle-fitment substring. Matches are case-insensitive.
func ListProducts(db *gorm.DB, query, vehicle string) ([]models.Product, error) {
	q := db.Model(&models.Product{})

	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where(
			"lower(name) LIKE ? OR lower(description) LIKE ? OR lower(category) LIKE ?",
			like, like, like,
		)
	}
	if vehicle != "" {
		q = q.Where("lower(fitment) LIKE ?", "%"+strings.ToLower(vehicle)+"%")
	}

	var products []models.Product
	err := q.Order("name").Find(&products).Error
	return products, err
}

// GET /  (query params: q, vehicle)
func ShopPageHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")
		vehicle := c.Query("vehicle")

		products, err := ListProducts(db, query, vehicle)
		if err != nil {
			c.String(http.StatusInternalServerError, "Failed to load catalog")
			return
		}

		username, loggedIn := middleware.SessionUser(c)
		c.HTML(http.StatusOK, "shop.html", gin.H{
			"Products": products,
			"Query":    query,
			"Vehicle":  vehicle,
			"LoggedIn": loggedIn,
			"Username": username,
			"Banner":   middleware.PopFlash(c),
		})
	}
}

// GET /product/:id
func ProductPageHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.String(http.StatusNotFound, "Product not found")
				return
			}
			c.String(http.StatusInternalServerError, "Failed to load product")
			return
		}

		username, loggedIn := middleware.SessionUser(c)
		c.HTML(http.StatusOK, "product.html", gin.H{
			"Product":  product,
			"LoggedIn": loggedIn,
			"Username": username,
			"Banner":   middleware.PopFlash(c),
		})
	}
}

// GET /api/products
func ListProductsAPIHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := ListProducts(db, c.Query("q"), c.Query("vehicle"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
