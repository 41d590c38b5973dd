package accountControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/valleyautoparts/shop-api/auth"
	"github.com/valleyautoparts/shop-api/middleware"
	"gorm.io/gorm"
)

// GET /api/session
// Reports login state for the session cookie or a bearer token.
func SessionAPIHandler(c *gin.Context) {
	username, ok := middleware.SessionUser(c)
	if !ok {
		header := c.GetHeader("Authorization")
		if token, found := strings.CutPrefix(header, "Bearer "); found {
			if u, err := auth.ParseToken(token); err == nil {
				username, ok = u, true
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"logged_in": ok,
		"username":  username,
	})
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/login
// Issues a bearer token for JSON API clients.
func LoginAPIHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
			return
		}

		if !Authenticate(db, req.Username, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}

		token, err := auth.IssueToken(req.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
