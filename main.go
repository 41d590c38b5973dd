package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	cartControllers "github.com/valleyautoparts/shop-api/controllers/cart"
	checkoutControllers "github.com/valleyautoparts/shop-api/controllers/checkout"
	"github.com/valleyautoparts/shop-api/models"
	"github.com/valleyautoparts/shop-api/routes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting Valley Auto Parts...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Seed the catalog on first startup
	if err := models.SeedProducts(db); err != nil {
		log.Fatalf("❌ Catalog seed failed: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// Cookie sessions (login + one-time flash banners)
	sessionStore := cookie.NewStore([]byte(sessionSecret()))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int((24 * time.Hour).Seconds()),
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("vap_session", sessionStore))

	// CORS settings for the JSON API
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Server-rendered pages
	r.LoadHTMLGlob("templates/*.html")

	// In-memory carts: lost on restart, by design for now
	carts := cartControllers.NewStore()

	// Hosted checkout provider; nil when STRIPE_SECRET_KEY is unset
	var checkoutProvider checkoutControllers.Provider
	if provider := checkoutControllers.NewStripeProviderFromEnv(); provider != nil {
		checkoutProvider = provider
	} else {
		log.Println("⚠️ STRIPE_SECRET_KEY not set; checkout is disabled")
	}

	// Setup routes
	routes.SetupRoutes(r, db, carts, checkoutProvider)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func sessionSecret() string {
	if s := os.Getenv("SESSION_SECRET"); s != "" {
		return s
	}
	log.Println("⚠️ SESSION_SECRET not set; using an insecure development secret")
	return "valleyautoparts_dev_secret"
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{TranslateError: true})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}
