package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/daraghmehsaleh9-dot/Saleh/auth"
	"github.com/daraghmehsaleh9-dot/Saleh/cache"
	adminController "github.com/daraghmehsaleh9-dot/Saleh/controllers/admin"
	paymentControllers "github.com/daraghmehsaleh9-dot/Saleh/controllers/payment"
	productControllers "github.com/daraghmehsaleh9-dot/Saleh/controllers/product"
	"github.com/daraghmehsaleh9-dot/Saleh/gemini"
	"github.com/daraghmehsaleh9-dot/Saleh/i18n"
	"github.com/daraghmehsaleh9-dot/Saleh/models"
	"github.com/daraghmehsaleh9-dot/Saleh/routes"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	ctx := context.Background()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Brand{},
		&models.AdminGrant{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Seed the starter catalog on first boot
	if err := productControllers.SeedCatalog(db); err != nil {
		log.Fatalf("❌ Catalog seeding failed: %v", err)
	}

	// Translations
	tr, err := i18n.Load("locales")
	if err != nil {
		log.Fatalf("❌ Failed to load translations: %v", err)
	}

	// Redis (buy-now overrides + cart change events)
	rdb, err := cache.NewRedis(ctx)
	if err != nil {
		log.Fatalf("❌ Redis connection failed: %v", err)
	}
	buyNow := cache.NewBuyNowStore(rdb)
	events := cache.NewCartEvents(rdb)

	// Identity provider
	authSvc, err := auth.NewService(ctx)
	if err != nil {
		log.Fatalf("❌ Firebase init failed: %v", err)
	}

	// Payment gateway
	gateway, err := paymentControllers.NewGatewayFromEnv()
	if err != nil {
		log.Fatalf("❌ Payment gateway init failed: %v", err)
	}

	// Chat model
	chatModel, err := gemini.NewClientFromEnv()
	if err != nil {
		log.Fatalf("❌ Chat model init failed: %v", err)
	}

	// Gin setup
	r := gin.Default()
	r.MaxMultipartMemory = 8 << 20 // 8 MB, logo uploads only

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded brand logos
	r.Static("/uploads", "./uploads")

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		DB:      db,
		Auth:    authSvc,
		BuyNow:  buyNow,
		Events:  events,
		Gateway: gateway,
		Gemini:  chatModel,
		I18n:    tr,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	g, gctx := errgroup.WithContext(ctx)

	// Retry admin claims for accounts that did not exist at grant time
	g.Go(func() error {
		adminController.ReconcilePendingGrants(gctx, db, authSvc, time.Minute)
		return nil
	})

	g.Go(func() error {
		log.Printf("🚀 Server running on port %s...", port)
		return r.Run(":" + port)
	})

	if err := g.Wait(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
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

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}
