package accountControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/valleyautoparts/shop-api/middleware"
	"github.com/valleyautoparts/shop-api/models"
	"gorm.io/gorm"
)

// GET|POST /register
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.HTML(http.StatusOK, "register.html", gin.H{"Username": "", "Email": ""})
			return
		}

		username := c.PostForm("username")
		email := c.PostForm("email")
		password := c.PostForm("password")

		render := func(msg string) {
			c.HTML(http.StatusOK, "register.html", gin.H{
				"Msg":      msg,
				"Username": username,
				"Email":    email,
			})
		}

		if username == "" || email == "" || password == "" {
			render("All fields are required.")
			return
		}

		_, err := Register(db, username, email, password)
		switch {
		case errors.Is(err, ErrUsernameTaken):
			render("Username already exists.")
			return
		case err != nil:
			render("Registration failed, please try again.")
			return
		}

		middleware.Flash(c, "Account created successfully. Please log in.")
		c.Redirect(http.StatusSeeOther, "/login")
	}
}

// GET|POST /login
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.HTML(http.StatusOK, "login.html", gin.H{
				"Banner":   middleware.PopFlash(c),
				"Username": "",
			})
			return
		}

		username := c.PostForm("username")
		password := c.PostForm("password")

		if !Authenticate(db, username, password) {
			// One generic message for unknown user and wrong password alike.
			c.HTML(http.StatusOK, "login.html", gin.H{
				"Msg":      "Invalid username or password.",
				"Username": username,
			})
			return
		}

		if err := middleware.Login(c, username); err != nil {
			c.String(http.StatusInternalServerError, "Failed to start session")
			return
		}
		middleware.Flash(c, "Login successful.")
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// GET /logout
func LogoutHandler(c *gin.Context) {
	_ = middleware.Logout(c)
	c.Redirect(http.StatusSeeOther, "/")
}

// GET|POST /reset
func ResetRequestHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.HTML(http.StatusOK, "reset.html", gin.H{})
			return
		}

		account := c.PostForm("account")
		if account == "" {
			c.HTML(http.StatusOK, "reset.html", gin.H{"Msg": "Enter your username or email."})
			return
		}

		// There is no mail subsystem; the token is logged for the operator.
		// The response is identical whether or not the account exists.
		if token, err := IssueResetToken(db, account); err == nil {
			log.Printf("🔑 Password reset token for %s: /reset/%s", account, token)
		}

		c.HTML(http.StatusOK, "reset.html", gin.H{
			"Msg": "If the account exists, a reset link has been issued.",
		})
	}
}

// GET|POST /reset/:token
func ResetConfirmHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("token")

		if c.Request.Method == http.MethodGet {
			if _, err := UserByResetToken(db, token); err != nil {
				c.HTML(http.StatusOK, "reset.html", gin.H{"Msg": "Invalid or expired reset link."})
				return
			}
			c.HTML(http.StatusOK, "reset_token.html", gin.H{"Token": token})
			return
		}

		password := c.PostForm("password")
		if password == "" {
			c.HTML(http.StatusOK, "reset_token.html", gin.H{
				"Token": token,
				"Msg":   "Enter a new password.",
			})
			return
		}

		if err := ResetPassword(db, token, password); err != nil {
			c.HTML(http.StatusOK, "reset.html", gin.H{"Msg": "Invalid or expired reset link."})
			return
		}

		middleware.Flash(c, "Password updated. Please log in.")
		c.Redirect(http.StatusSeeOther, "/login")
	}
}

// GET|POST /profile
func ProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := middleware.Username(c)

		var user models.User
		if err := db.First(&user, "username = ?", username).Error; err != nil {
			c.String(http.StatusInternalServerError, "Failed to load profile")
			return
		}

		if c.Request.Method == http.MethodGet {
			c.HTML(http.StatusOK, "profile.html", gin.H{
				"User":   user,
				"Banner": middleware.PopFlash(c),
			})
			return
		}

		var shipping models.Address
		_ = c.ShouldBind(&shipping)

		updates := map[string]interface{}{
			"display_name":     c.PostForm("display_name"),
			"vehicle":          c.PostForm("vehicle"),
			"card_brand":       c.PostForm("card_brand"),
			"card_last4":       c.PostForm("card_last4"),
			"card_expiry":      c.PostForm("card_expiry"),
			"ship_name":        shipping.Name,
			"ship_line1":       shipping.Line1,
			"ship_line2":       shipping.Line2,
			"ship_city":        shipping.City,
			"ship_state":       shipping.State,
			"ship_postal_code": shipping.PostalCode,
		}
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			c.String(http.StatusInternalServerError, "Failed to update profile")
			return
		}

		middleware.Flash(c, "Profile updated.")
		c.Redirect(http.StatusSeeOther, "/profile")
	}
}
